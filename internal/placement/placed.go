package placement

import (
	"slices"
	"strings"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
)

// Handle identifies a placement in an Engine's arena.
type Handle int

// Inputs switches optional input guns on by name.
type Inputs map[string]bool

// Enabled reports whether name is switched on, looking it up as given, in
// lower case, and under the "input_" prefixed alias in both cases.
func (in Inputs) Enabled(name string) bool {
	prefixed := "input_" + name
	for _, key := range []string{name, strings.ToLower(name), prefixed, strings.ToLower(prefixed)} {
		if in[key] {
			return true
		}
	}
	return false
}

// Options carries the optional arguments of a placement.
type Options struct {
	// Phase replaces the delay of phase-overridable parts when non-nil.
	Phase  *int
	Inputs Inputs
}

// Phase returns a phase override of n generations.
func Phase(n int) *int { return &n }

// Port is a port resolved to world coordinates.
type Port struct {
	Name      string
	Kind      catalog.PortKind
	X, Y      int
	Direction geom.Direction
}

// Pos returns the port position.
func (p Port) Pos() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

// Region is a probe rectangle resolved to world coordinates.
type Region struct {
	Name string
	Kind string
	geom.Rect
}

// PlacedComponent records where and how a configuration was stamped.
type PlacedComponent struct {
	Handle      Handle
	Config      string
	Origin      geom.Point
	Orientation geom.Rotation
	Ports       map[string]Port
	Regions     map[string]Region
	Width       int
	Height      int
	Options     Options

	applied []Inputs
}

// Port returns the named world port.
func (pc *PlacedComponent) Port(name string) (Port, bool) {
	p, ok := pc.Ports[name]
	return p, ok
}

// Region returns the named world region.
func (pc *PlacedComponent) Region(name string) (Region, bool) {
	r, ok := pc.Regions[name]
	return r, ok
}

// PortNames lists the ports in sorted order.
func (pc *PlacedComponent) PortNames() []string {
	names := make([]string, 0, len(pc.Ports))
	for name := range pc.Ports {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RegionNames lists the regions in sorted order.
func (pc *PlacedComponent) RegionNames() []string {
	names := make([]string, 0, len(pc.Regions))
	for name := range pc.Regions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// AppliedInputs returns the input sets activated after placement, oldest
// first.
func (pc *PlacedComponent) AppliedInputs() []Inputs {
	return slices.Clone(pc.applied)
}
