// Package scenario holds named circuit recipes and exposes each one as a
// core.Sim so the viewer and the headless runners can drive it.
package scenario

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/circuit"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/placement"
	pcore "github.com/Darsh-A/MCS-M1-CGoL/pkg/core"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
)

// ErrUnknownScenario reports a lookup for a recipe that does not exist.
var ErrUnknownScenario = errors.New("unknown scenario")

// Options are the per-build inputs of a recipe.
type Options struct {
	Inputs placement.Inputs
	Seed   int64
}

// Recipe builds one circuit on a fresh builder.
type Recipe struct {
	Name    string
	Summary string
	// Inputs are used when the caller supplies none.
	Inputs placement.Inputs
	// Steps is a generation count long enough to show the circuit working.
	Steps int
	Build func(b *circuit.Builder, opts Options) error
}

var recipes = []Recipe{
	{
		Name:    "glider",
		Summary: "a single glider",
		Steps:   90,
		Build: func(b *circuit.Builder, _ Options) error {
			_, err := b.AddComponent("g1", catalog.SingleGlider, 0, 0, geom.Rot0, placement.Options{})
			return err
		},
	},
	{
		Name:    "reflector_gun",
		Summary: "a glider gun turned by a reflector",
		Steps:   320,
		Build: func(b *circuit.Builder, _ Options) error {
			_, err := b.AddComponent("rg1", catalog.ReflectorGun, 0, 0, geom.Rot0, placement.Options{})
			return err
		},
	},
	gateRecipe(catalog.NotGate, placement.Inputs{"A": true}),
	gateRecipe(catalog.AndGate, placement.Inputs{"A": true, "B": true}),
	gateRecipe(catalog.OrGate, placement.Inputs{"A": true, "B": true}),
	{
		Name:    "and_to_not",
		Summary: "an AND gate feeding a NOT gate attached to its output",
		Inputs:  placement.Inputs{"A": true, "B": true},
		Steps:   420,
		Build: func(b *circuit.Builder, opts Options) error {
			phase := placement.Options{Phase: placement.Phase(1)}
			if _, err := b.AddComponent("and1", catalog.AndGate, 0, 0, geom.Rot0, phase); err != nil {
				return err
			}
			if _, err := b.AddComponentAligned("not1", catalog.NotGate, "and1", "Y", "A", 120, circuit.AlignOptions{Options: phase}); err != nil {
				return err
			}
			return setInputs(b, "and1", opts.Inputs)
		},
	},
	{
		Name:    "gun_reflector_eater",
		Summary: "a gun stream turned twice and absorbed by an eater",
		Steps:   480,
		Build: func(b *circuit.Builder, _ Options) error {
			phase := placement.Options{Phase: placement.Phase(1)}
			if _, err := b.AddComponent("gun1", catalog.GliderGun, 0, 0, geom.Rot0, phase); err != nil {
				return err
			}
			chain := []struct {
				id, config, source string
				distance           int
			}{
				{"refl1", catalog.ReflectorConfig, "gun1", 140},
				{"refl2", catalog.ReflectorConfig, "refl1", 140},
				{"eat1", catalog.EaterComponent, "refl2", 120},
			}
			for _, c := range chain {
				if _, err := b.AddComponentAligned(c.id, c.config, c.source, "out", "in", c.distance, circuit.AlignOptions{Options: phase}); err != nil {
					return err
				}
			}
			return nil
		},
	},
	{
		Name:    "gun_route_eater",
		Summary: "a gun routed into a distant eater through repeaters",
		Steps:   240,
		Build: func(b *circuit.Builder, _ Options) error {
			if _, err := b.AddComponent("gun1", catalog.GliderGun, 0, 0, geom.Rot0, placement.Options{}); err != nil {
				return err
			}
			if _, err := b.AddComponent("eat1", catalog.EaterComponent, 2, -1, geom.Rot0, placement.Options{}); err != nil {
				return err
			}
			_, err := b.Route("gun1", "out", "eat1", "in")
			return err
		},
	},
	{
		Name:    "sourced_not",
		Summary: "a NOT gate whose input stream comes from an upstream gun",
		Steps:   660,
		Build: func(b *circuit.Builder, _ Options) error {
			if _, err := b.AddComponent("g1", catalog.NotGate, 0, 0, geom.Rot0, placement.Options{Phase: placement.Phase(1)}); err != nil {
				return err
			}
			_, err := b.AddInputSource("src1", "g1", "A", circuit.DefaultSource(), circuit.AlignOptions{})
			return err
		},
	},
	{
		Name:    "soup",
		Summary: "a seeded random soup",
		Steps:   200,
		Build: func(b *circuit.Builder, opts Options) error {
			rng := pcore.NewRNG(opts.Seed)
			var cells []geom.Point
			for y := 0; y < soupSize; y++ {
				for x := 0; x < soupSize; x++ {
					if rng.Chance(soupDensity) {
						cells = append(cells, geom.Point{X: x, Y: -y})
					}
				}
			}
			b.Life().Add(cells, geom.Point{})
			return nil
		},
	},
}

const (
	soupSize    = 64
	soupDensity = 0.35
)

func gateRecipe(config string, inputs placement.Inputs) Recipe {
	return Recipe{
		Name:    config,
		Summary: "the " + config + " configuration with its input guns",
		Inputs:  inputs,
		Steps:   420,
		Build: func(b *circuit.Builder, opts Options) error {
			if _, err := b.AddComponent("g1", config, 0, 0, geom.Rot0, placement.Options{Phase: placement.Phase(1)}); err != nil {
				return err
			}
			return setInputs(b, "g1", opts.Inputs)
		},
	}
}

func setInputs(b *circuit.Builder, id string, inputs placement.Inputs) error {
	if len(inputs) == 0 {
		return nil
	}
	_, err := b.SetComponentInputs(id, inputs)
	return err
}

// Lookup returns the recipe registered under name.
func Lookup(name string) (Recipe, error) {
	i := slices.IndexFunc(recipes, func(r Recipe) bool { return r.Name == name })
	if i < 0 {
		return Recipe{}, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	return recipes[i], nil
}

// Recipes returns every recipe in declaration order.
func Recipes() []Recipe { return slices.Clone(recipes) }

// Names lists the recipe names in declaration order.
func Names() []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Name
	}
	return out
}
