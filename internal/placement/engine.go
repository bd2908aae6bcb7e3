// Package placement stamps catalog configurations onto an automaton. It
// rotates every part, port and probe region by the requested orientation,
// advances the automaton through each part's phase delay, and keeps an arena
// of everything it has placed.
package placement

import (
	"fmt"
	"maps"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/pattern"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/sims/life"
)

// Engine resolves configurations against a pattern library.
type Engine struct {
	catalog *catalog.Catalog
	library *pattern.Library
	arena   []*PlacedComponent
}

// New returns an engine with an empty arena.
func New(cat *catalog.Catalog, lib *pattern.Library) *Engine {
	return &Engine{catalog: cat, library: lib}
}

// NewDefault returns an engine over the built-in catalog and patterns.
func NewDefault() (*Engine, error) {
	lib, err := pattern.Default()
	if err != nil {
		return nil, err
	}
	return New(catalog.Default(), lib), nil
}

// Catalog exposes the configuration table the engine places from.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Library exposes the pattern library.
func (e *Engine) Library() *pattern.Library { return e.library }

// PlaceAtomic stamps a single base pattern with its minimum corner at at.
func (e *Engine) PlaceAtomic(lf *life.Life, name string, at geom.Point, rot geom.Rotation) error {
	cells, err := e.library.Cells(name, rot)
	if err != nil {
		return err
	}
	lf.Add(cells, at)
	return nil
}

// PlaceConfigured stamps every part of config at origin under orientation.
//
// Parts are handled in catalog order. Before each part the whole automaton
// is advanced by the part's phase delay, so earlier parts, and anything
// placed before this call, keep evolving while later parts are phased in.
// Input guns switched on by opts.Inputs follow the parts. Nothing is
// stamped or stepped unless the whole placement is valid.
func (e *Engine) PlaceConfigured(lf *life.Life, config string, originX, originY int, orientation geom.Rotation, opts Options) (*PlacedComponent, error) {
	if err := orientation.Validate(); err != nil {
		return nil, err
	}
	cfg, err := e.catalog.Lookup(config)
	if err != nil {
		return nil, err
	}
	origin := geom.Point{X: originX, Y: originY}

	var steps []stamp
	for _, part := range cfg.Parts {
		if part.Mode == catalog.Conditional && !opts.Inputs[part.EnabledBy] {
			continue
		}
		delay := part.PhaseDelay
		if part.Mode == catalog.PhaseOverridable && opts.Phase != nil {
			delay = *opts.Phase
		}
		s, err := e.resolve(part, delay, origin, orientation)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config, err)
		}
		steps = append(steps, s)
	}
	guns, err := e.resolveGuns(cfg, origin, orientation, opts.Inputs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config, err)
	}
	steps = append(steps, guns...)

	ports, regions, err := resolveFrame(cfg, origin, orientation)
	if err != nil {
		return nil, err
	}

	for _, s := range steps {
		s.apply(lf)
	}

	w, h := cfg.Size.Width, cfg.Size.Height
	if orientation == geom.Rot90 || orientation == geom.Rot270 {
		w, h = h, w
	}
	pc := &PlacedComponent{
		Handle:      Handle(len(e.arena)),
		Config:      config,
		Origin:      origin,
		Orientation: orientation,
		Ports:       ports,
		Regions:     regions,
		Width:       w,
		Height:      h,
		Options:     Options{Phase: clonePhase(opts.Phase), Inputs: maps.Clone(opts.Inputs)},
	}
	e.arena = append(e.arena, pc)
	return pc, nil
}

// ApplyComponentInputs places the input guns of an already placed component
// that inputs switches on, and records inputs in its history. Base parts are
// not placed again.
func (e *Engine) ApplyComponentInputs(lf *life.Life, pc *PlacedComponent, inputs Inputs) error {
	cfg, err := e.catalog.Lookup(pc.Config)
	if err != nil {
		return err
	}
	guns, err := e.resolveGuns(cfg, pc.Origin, pc.Orientation, inputs)
	if err != nil {
		return fmt.Errorf("%s: %w", pc.Config, err)
	}
	for _, s := range guns {
		s.apply(lf)
	}
	pc.applied = append(pc.applied, maps.Clone(inputs))
	return nil
}

// ComputeOriginForPort returns the origin at which placing config under
// orientation puts port exactly on (worldX, worldY).
func (e *Engine) ComputeOriginForPort(config, port string, worldX, worldY int, orientation geom.Rotation) (geom.Point, error) {
	spec, err := e.catalog.PortSpec(config, port)
	if err != nil {
		return geom.Point{}, err
	}
	d, err := geom.RotatePoint(spec.Offset, orientation)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: worldX, Y: worldY}.Sub(d), nil
}

// Route is the straight-line relation between two placed ports.
type Route struct {
	From, To geom.Point
	Delta    geom.Point
}

// RoutePorts measures the offset from one placed port to another.
func (e *Engine) RoutePorts(src *PlacedComponent, srcPort string, dst *PlacedComponent, dstPort string) (Route, error) {
	a, ok := src.Port(srcPort)
	if !ok {
		return Route{}, fmt.Errorf("%w: source port %s.%s", catalog.ErrUnknownPort, src.Config, srcPort)
	}
	b, ok := dst.Port(dstPort)
	if !ok {
		return Route{}, fmt.Errorf("%w: target port %s.%s", catalog.ErrUnknownPort, dst.Config, dstPort)
	}
	return Route{From: a.Pos(), To: b.Pos(), Delta: b.Pos().Sub(a.Pos())}, nil
}

// Placement returns the arena entry for h.
func (e *Engine) Placement(h Handle) (*PlacedComponent, bool) {
	if h < 0 || int(h) >= len(e.arena) {
		return nil, false
	}
	return e.arena[h], true
}

// Placements returns every placement in the order it was made.
func (e *Engine) Placements() []*PlacedComponent {
	out := make([]*PlacedComponent, len(e.arena))
	copy(out, e.arena)
	return out
}

// Len reports the number of placements made.
func (e *Engine) Len() int { return len(e.arena) }

// stamp is a fully resolved part: wait delay generations, then add cells.
type stamp struct {
	delay int
	cells []geom.Point
	at    geom.Point
}

func (s stamp) apply(lf *life.Life) {
	if s.delay > 0 {
		lf.Run(s.delay, nil)
	}
	lf.Add(s.cells, s.at)
}

func (e *Engine) resolve(part catalog.Part, delay int, origin geom.Point, orientation geom.Rotation) (stamp, error) {
	d, err := geom.RotatePoint(part.Offset, orientation)
	if err != nil {
		return stamp{}, err
	}
	cells, err := e.library.Cells(part.Pattern, part.Rotation.Then(orientation))
	if err != nil {
		return stamp{}, err
	}
	return stamp{delay: delay, cells: cells, at: origin.Add(d)}, nil
}

func (e *Engine) resolveGuns(cfg *catalog.Config, origin geom.Point, orientation geom.Rotation, inputs Inputs) ([]stamp, error) {
	var out []stamp
	for _, g := range cfg.InputGuns {
		if !inputs.Enabled(g.Name) {
			continue
		}
		s, err := e.resolve(g.Part, g.PhaseDelay, origin, orientation)
		if err != nil {
			return nil, fmt.Errorf("input gun %s: %w", g.Name, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func resolveFrame(cfg *catalog.Config, origin geom.Point, orientation geom.Rotation) (map[string]Port, map[string]Region, error) {
	ports := make(map[string]Port, len(cfg.Ports))
	for _, p := range cfg.Ports {
		d, err := geom.RotatePoint(p.Offset, orientation)
		if err != nil {
			return nil, nil, err
		}
		dir, err := p.Direction.Turn(orientation)
		if err != nil {
			return nil, nil, err
		}
		at := origin.Add(d)
		ports[p.Name] = Port{Name: p.Name, Kind: p.Kind, X: at.X, Y: at.Y, Direction: dir}
	}
	regions := make(map[string]Region, len(cfg.Regions))
	for _, r := range cfg.Regions {
		rect, err := r.Rect.Rotate(orientation)
		if err != nil {
			return nil, nil, err
		}
		kind := r.Kind
		if kind == "" {
			kind = "probe"
		}
		regions[r.Name] = Region{Name: r.Name, Kind: kind, Rect: rect.Translate(origin)}
	}
	return ports, regions, nil
}

func clonePhase(p *int) *int {
	if p == nil {
		return nil
	}
	return Phase(*p)
}
