// Package catalog describes the circuit components that can be placed: which
// base patterns make them up, where their ports sit and which way gliders
// leave or enter through them, and which probe regions are worth watching.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/pattern"
)

var (
	// ErrUnknownConfig reports a configuration name missing from the catalog.
	ErrUnknownConfig = errors.New("unknown configuration")
	// ErrUnknownPort reports a port name missing from a configuration.
	ErrUnknownPort = errors.New("unknown port")
)

// PortKind says whether gliders enter or leave through a port.
type PortKind string

const (
	Input  PortKind = "input"
	Output PortKind = "output"
)

// PartMode selects when a part is stamped and how its phase delay is chosen.
type PartMode int

const (
	// Always parts are placed on every placement.
	Always PartMode = iota
	// Conditional parts are placed only when their EnabledBy input is set.
	Conditional
	// PhaseOverridable parts use the caller's phase override, when given,
	// in place of PhaseDelay.
	PhaseOverridable
)

// Part is one base pattern inside a component.
type Part struct {
	Pattern    string
	Offset     geom.Point
	Rotation   geom.Rotation
	Mode       PartMode
	EnabledBy  string
	PhaseDelay int
}

// Place returns an always-placed part.
func Place(name string, x, y int, rot geom.Rotation) Part {
	return Part{Pattern: name, Offset: geom.Point{X: x, Y: y}, Rotation: rot}
}

// After sets the number of generations to advance before stamping the part.
func (p Part) After(steps int) Part {
	p.PhaseDelay = steps
	return p
}

// Overridable marks the part's phase delay as replaceable by the caller.
func (p Part) Overridable() Part {
	p.Mode = PhaseOverridable
	return p
}

// When makes the part conditional on the named input.
func (p Part) When(key string) Part {
	p.Mode = Conditional
	p.EnabledBy = key
	return p
}

// InputGun is an optional part switched on by an input flag of the same name.
type InputGun struct {
	Name string
	Part
}

// PortSpec is a port in component-local coordinates.
type PortSpec struct {
	Name      string
	Kind      PortKind
	Offset    geom.Point
	Direction geom.Direction
}

// RegionSpec is a named probe rectangle in component-local coordinates.
type RegionSpec struct {
	Name string
	Kind string
	Rect geom.Rect
}

// Size is a component footprint before rotation.
type Size struct {
	Width, Height int
}

// Config is an immutable catalog entry.
type Config struct {
	Name      string
	Size      Size
	Parts     []Part
	InputGuns []InputGun
	Ports     []PortSpec
	Regions   []RegionSpec
}

// Port looks up a port by name.
func (c *Config) Port(name string) (PortSpec, bool) {
	for _, p := range c.Ports {
		if p.Name == name {
			return p, true
		}
	}
	return PortSpec{}, false
}

// Catalog is a read-only set of configurations keyed by name.
type Catalog struct {
	configs map[string]*Config
}

// New builds a catalog from cfgs. Later entries replace earlier ones with the
// same name.
func New(cfgs ...Config) *Catalog {
	c := &Catalog{configs: make(map[string]*Config, len(cfgs))}
	for i := range cfgs {
		cfg := cfgs[i]
		c.configs[cfg.Name] = &cfg
	}
	return c
}

// Lookup returns the configuration called name.
func (c *Catalog) Lookup(name string) (*Config, error) {
	cfg, ok := c.configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConfig, name)
	}
	return cfg, nil
}

// Names lists every configuration in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.configs))
	for name := range c.configs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PortSpec returns the named port of the named configuration.
func (c *Catalog) PortSpec(config, port string) (PortSpec, error) {
	cfg, err := c.Lookup(config)
	if err != nil {
		return PortSpec{}, err
	}
	p, ok := cfg.Port(port)
	if !ok {
		return PortSpec{}, fmt.Errorf("%w '%s' for configuration '%s'", ErrUnknownPort, port, config)
	}
	return p, nil
}

// OrientationsMatchingDirection returns, in ascending order, every
// orientation under which the port points along desired. The result may be
// empty; callers decide whether that is an error.
func (c *Catalog) OrientationsMatchingDirection(config, port string, desired geom.Direction) ([]geom.Rotation, error) {
	p, err := c.PortSpec(config, port)
	if err != nil {
		return nil, err
	}
	want := desired.Canonical()
	var out []geom.Rotation
	for _, rot := range geom.Rotations {
		d, err := p.Direction.Turn(rot)
		if err != nil {
			return nil, err
		}
		if d == want {
			out = append(out, rot)
		}
	}
	return out, nil
}

// Validate checks every entry for names, rotations, directions and pattern
// references that placement would later trip over.
func (c *Catalog) Validate(lib *pattern.Library) error {
	var errs []error
	for _, name := range c.Names() {
		cfg := c.configs[name]
		check := func(where string, p Part) {
			if err := p.Rotation.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s %s: %w", name, where, err))
			}
			if lib != nil && !lib.Has(p.Pattern) {
				errs = append(errs, fmt.Errorf("%s %s: %w: %s", name, where, pattern.ErrUnknownPattern, p.Pattern))
			}
			if p.PhaseDelay < 0 {
				errs = append(errs, fmt.Errorf("%s %s: negative phase delay %d", name, where, p.PhaseDelay))
			}
			if p.Mode == Conditional && p.EnabledBy == "" {
				errs = append(errs, fmt.Errorf("%s %s: conditional part without an input key", name, where))
			}
		}
		for i, p := range cfg.Parts {
			check(fmt.Sprintf("part %d", i), p)
		}
		for _, g := range cfg.InputGuns {
			if g.Name == "" {
				errs = append(errs, fmt.Errorf("%s: unnamed input gun", name))
			}
			check("input gun "+g.Name, g.Part)
		}
		seen := make(map[string]bool, len(cfg.Ports))
		for _, p := range cfg.Ports {
			if seen[p.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate port %q", name, p.Name))
			}
			seen[p.Name] = true
			if p.Kind != Input && p.Kind != Output {
				errs = append(errs, fmt.Errorf("%s port %s: bad kind %q", name, p.Name, p.Kind))
			}
			if err := p.Direction.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s port %s: %w", name, p.Name, err))
			}
		}
		for _, r := range cfg.Regions {
			if r.Rect.XMin > r.Rect.XMax || r.Rect.YMin > r.Rect.YMax {
				errs = append(errs, fmt.Errorf("%s region %s: inverted bounds %+v", name, r.Name, r.Rect))
			}
		}
	}
	return errors.Join(errs...)
}
