package scenario

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/circuit"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/core"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/placement"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/pattern"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/sims/life"
)

// Sim runs a recipe on an unbounded automaton and shows a fixed-size window
// of it.
type Sim struct {
	recipe Recipe
	cfg    Config
	cat    *catalog.Catalog
	lib    *pattern.Library
	log    *slog.Logger

	builder *circuit.Builder
	window  geom.Rect
	grid    *core.ByteGrid
	dirty   bool
	err     error
}

// New builds recipe once to size the view window from the initial layout.
// The build error, if any, is returned alongside a usable sim.
func New(recipe Recipe, cfg Config, cat *catalog.Catalog, lib *pattern.Library) (*Sim, error) {
	if cfg.StepsPerTick <= 0 {
		cfg.StepsPerTick = 1
	}
	s := &Sim{
		recipe: recipe,
		cfg:    cfg,
		cat:    cat,
		lib:    lib,
		log:    slog.Default().With(slog.String("component", "scenario"), slog.String("scenario", recipe.Name)),
	}
	s.Reset(0)
	box, ok := s.builder.Life().BoundingBox()
	if !ok {
		box = geom.Rect{}
	}
	m := cfg.Margin
	s.window = geom.Rect{XMin: box.XMin - m, XMax: box.XMax + m, YMin: box.YMin - m, YMax: box.YMax + m}
	s.grid = core.NewByteGrid(s.window.Width(), s.window.Height())
	s.dirty = true
	return s, s.err
}

// Build looks up name and constructs its sim over the built-in catalog and
// patterns.
func Build(name string, cfg Config) (*Sim, error) {
	recipe, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	lib, err := pattern.Default()
	if err != nil {
		return nil, err
	}
	return New(recipe, cfg, catalog.Default(), lib)
}

func init() {
	for _, r := range recipes {
		r := r
		core.Register(r.Name, func(cfg map[string]string) core.Sim {
			lib, err := pattern.Default()
			if err != nil {
				panic(fmt.Sprintf("scenario %s: %v", r.Name, err))
			}
			s, err := New(r, FromMap(cfg), catalog.Default(), lib)
			if err != nil {
				slog.Error("scenario build failed", slog.String("scenario", r.Name), slog.Any("err", err))
			}
			return s
		})
	}
}

// Name returns the recipe name.
func (s *Sim) Name() string { return s.recipe.Name }

// Size returns the view window dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.window.Width(), H: s.window.Height()} }

// Reset rebuilds the circuit on a fresh automaton. The seed only affects
// recipes that draw random cells.
func (s *Sim) Reset(seed int64) {
	inputs := s.cfg.Inputs
	if inputs == nil {
		inputs = s.recipe.Inputs
	}
	b := circuit.New(life.New(), placement.New(s.cat, s.lib), s.cfg.Circuit)
	s.err = s.recipe.Build(b, Options{Inputs: inputs, Seed: seed})
	if s.err != nil {
		s.err = fmt.Errorf("scenario %s: %w", s.recipe.Name, s.err)
		s.log.Warn("build incomplete", slog.Any("err", s.err))
	}
	s.builder = b
	s.dirty = true
}

// Step advances the automaton by the configured number of generations.
func (s *Sim) Step() {
	s.builder.Run(s.cfg.StepsPerTick, nil)
	s.dirty = true
}

// Cells rasterizes the view window.
func (s *Sim) Cells() []uint8 {
	if s.dirty {
		s.builder.Life().Rasterize(s.window, s.grid.Cells())
		s.dirty = false
	}
	return s.grid.Cells()
}

// Err reports the error of the most recent build.
func (s *Sim) Err() error { return s.err }

// Builder exposes the circuit of the most recent build.
func (s *Sim) Builder() *circuit.Builder { return s.builder }

// Recipe returns the recipe the sim runs.
func (s *Sim) Recipe() Recipe { return s.recipe }

// Window returns the part of the plane currently shown.
func (s *Sim) Window() geom.Rect { return s.window }

// Pan moves the view window by (dx, dy) cells.
func (s *Sim) Pan(dx, dy int) {
	s.window = s.window.Translate(geom.Point{X: dx, Y: dy})
	s.dirty = true
}

// ToView maps a plane cell to view coordinates, with y growing downward.
func (s *Sim) ToView(p geom.Point) (x, y int) {
	return p.X - s.window.XMin, s.window.YMax - p.Y
}

// Probe is the live cell count of one component region.
type Probe struct {
	Component string
	Region    placement.Region
	Live      int
}

// Probes counts live cells in every region of every component, in
// component insertion order.
func (s *Sim) Probes() []Probe {
	var out []Probe
	lf := s.builder.Life()
	for _, id := range s.builder.IDs() {
		pc, err := s.builder.Component(id)
		if err != nil {
			continue
		}
		for _, name := range pc.RegionNames() {
			r := pc.Regions[name]
			out = append(out, Probe{Component: id, Region: r, Live: lf.RegionCount(r.Rect)})
		}
	}
	return out
}

// Parameters reports the automaton, component and probe state for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	lf := s.builder.Life()
	run := core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			intParam("generation", "Generation", lf.Generation()),
			intParam("live", "Live cells", lf.Len()),
			intParam("steps_per_tick", "Steps/tick", s.cfg.StepsPerTick),
			intParam("view_x", "View x", s.window.XMin),
			intParam("view_y", "View y", s.window.YMin),
		},
	}
	comps := core.ParameterGroup{Name: "Components"}
	for _, id := range s.builder.IDs() {
		pc, err := s.builder.Component(id)
		if err != nil {
			continue
		}
		comps.Params = append(comps.Params, core.Parameter{
			Key:         "component." + id,
			Label:       id,
			Type:        core.ParamTypeText,
			Value:       fmt.Sprintf("%s@%d", pc.Config, pc.Orientation),
			Description: fmt.Sprintf("origin (%d, %d)", pc.Origin.X, pc.Origin.Y),
		})
	}
	probes := core.ParameterGroup{Name: "Probes"}
	for _, p := range s.Probes() {
		key := "probe." + p.Component + "." + p.Region.Name
		probes.Params = append(probes.Params, intParam(key, p.Component+" "+p.Region.Name, p.Live))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{run, comps, probes}}
}

// ParameterControls lists the HUD adjustable values.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "steps_per_tick", Label: "Steps/tick", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 60, HasMin: true, HasMax: true},
		{Key: "view_x", Label: "View x", Type: core.ParamTypeInt, Step: 20},
		{Key: "view_y", Label: "View y", Type: core.ParamTypeInt, Step: 20},
	}
}

// SetIntParameter applies a HUD adjustment.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "steps_per_tick":
		if value <= 0 {
			return false
		}
		s.cfg.StepsPerTick = value
	case "view_x":
		s.Pan(value-s.window.XMin, 0)
	case "view_y":
		s.Pan(0, value-s.window.YMin)
	default:
		return false
	}
	return true
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}
