// Package circuit assembles placed components into circuits: it keeps an
// id registry over a placement engine, attaches components to each other's
// ports, and routes signals between ports along Manhattan paths dotted with
// repeaters.
package circuit

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/placement"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/sims/life"
)

// AlignOptions configures placements that are aligned to an existing port.
// A nil Orientation picks the lowest orientation that matches.
type AlignOptions struct {
	Orientation *geom.Rotation
	placement.Options
}

// Orient returns a pointer to r for use in AlignOptions.
func Orient(r geom.Rotation) *geom.Rotation { return &r }

// Source describes the upstream component placed by AddInputSource.
type Source struct {
	Config   string
	Port     string
	Distance int
}

// DefaultSource is a glider gun placed 240 cells upstream.
func DefaultSource() Source {
	return Source{Config: catalog.GliderGun, Port: "out", Distance: 240}
}

// Builder places components on one automaton and records how they connect.
type Builder struct {
	cfg    Config
	life   *life.Life
	engine *placement.Engine
	log    *slog.Logger

	nodes map[string]*placement.PlacedComponent
	order []string
	conns []Connection
}

// New returns a builder that places onto lf through engine.
func New(lf *life.Life, engine *placement.Engine, cfg Config) *Builder {
	return &Builder{
		cfg:    cfg,
		life:   lf,
		engine: engine,
		log:    slog.Default().With(slog.String("component", "circuit")),
		nodes:  make(map[string]*placement.PlacedComponent),
	}
}

// SetLogger replaces the builder's logger.
func (b *Builder) SetLogger(l *slog.Logger) {
	if l != nil {
		b.log = l
	}
}

// Config returns the configuration the builder was created with.
func (b *Builder) Config() Config { return b.cfg }

// Life returns the automaton being built on.
func (b *Builder) Life() *life.Life { return b.life }

// Engine returns the placement engine the builder places through.
func (b *Builder) Engine() *placement.Engine { return b.engine }

// IDs lists registered component ids in insertion order.
func (b *Builder) IDs() []string { return slices.Clone(b.order) }

// Connections returns a copy of the connection log.
func (b *Builder) Connections() []Connection { return slices.Clone(b.conns) }

// Component returns the placement registered under id.
func (b *Builder) Component(id string) (*placement.PlacedComponent, error) {
	pc, ok := b.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponentID, id)
	}
	return pc, nil
}

// Run advances the automaton, calling fn after every generation.
func (b *Builder) Run(steps int, fn func(*life.Life, int)) {
	b.life.Run(steps, fn)
}

// AddComponent places config with its origin at grid cell (gridX, gridY).
func (b *Builder) AddComponent(id, config string, gridX, gridY int, orientation geom.Rotation, opts placement.Options) (*placement.PlacedComponent, error) {
	if err := b.free(id); err != nil {
		return nil, err
	}
	x, y := gridX*b.cfg.CellWidth, gridY*b.cfg.CellHeight
	pc, err := b.engine.PlaceConfigured(b.life, config, x, y, orientation, opts)
	if err != nil {
		return nil, fmt.Errorf("add %s: %w", id, err)
	}
	b.register(id, pc)
	b.log.Debug("placed component",
		slog.String("id", id),
		slog.String("config", config),
		slog.Int("x", x), slog.Int("y", y),
		slog.Int("orientation", int(orientation)))
	return pc, nil
}

// AddComponentAligned places config so that its targetPort sits distance
// cells downstream of the output port sourceID.sourcePort, facing the same
// way.
func (b *Builder) AddComponentAligned(id, config, sourceID, sourcePort, targetPort string, distance int, opts AlignOptions) (*placement.PlacedComponent, error) {
	if err := b.free(id); err != nil {
		return nil, err
	}
	src, err := b.port(sourceID, sourcePort)
	if err != nil {
		return nil, err
	}
	if src.Kind != catalog.Output {
		return nil, fmt.Errorf("%w: %s", ErrNotAnOutputPort, endpoint(sourceID, sourcePort))
	}
	rot, err := b.orient(config, targetPort, src.Direction, opts.Orientation)
	if err != nil {
		return nil, err
	}
	unit, err := src.Direction.Unit()
	if err != nil {
		return nil, err
	}
	target := src.Pos().Add(unit.Scale(distance))
	origin, err := b.engine.ComputeOriginForPort(config, targetPort, target.X, target.Y, rot)
	if err != nil {
		return nil, err
	}
	pc, err := b.engine.PlaceConfigured(b.life, config, origin.X, origin.Y, rot, opts.Options)
	if err != nil {
		return nil, fmt.Errorf("add %s: %w", id, err)
	}
	b.register(id, pc)
	b.conns = append(b.conns, Connection{
		Kind:   AlignedAttach,
		From:   src.Pos(),
		To:     target,
		Source: endpoint(sourceID, sourcePort),
		Target: endpoint(id, targetPort),
	})
	b.log.Debug("attached component",
		slog.String("id", id),
		slog.String("config", config),
		slog.String("source", endpoint(sourceID, sourcePort)),
		slog.Int("orientation", int(rot)))
	return pc, nil
}

// Connect routes sourceID.sourcePort to targetID.targetPort along a
// three-point Manhattan path and places a repeater every spacing cells
// inside each leg. Port kinds are not checked; see DriveInput.
func (b *Builder) Connect(sourceID, sourcePort, targetID, targetPort string, spacing int, style RouteStyle) (Connection, error) {
	src, err := b.port(sourceID, sourcePort)
	if err != nil {
		return Connection{}, err
	}
	dst, err := b.port(targetID, targetPort)
	if err != nil {
		return Connection{}, err
	}
	path, err := waypoints(src.Pos(), dst.Pos(), style)
	if err != nil {
		return Connection{}, err
	}
	points, err := repeaterPoints(path, spacing)
	if err != nil {
		return Connection{}, err
	}

	repeaters := make([]*placement.PlacedComponent, 0, len(points))
	for _, p := range points {
		pc, err := b.engine.PlaceConfigured(b.life, b.cfg.RepeaterConfig, p.X, p.Y, geom.Rot0, placement.Options{})
		if err != nil {
			return Connection{}, fmt.Errorf("repeater at %v: %w", p, err)
		}
		repeaters = append(repeaters, pc)
	}

	conn := Connection{
		Kind:      Route,
		From:      src.Pos(),
		To:        dst.Pos(),
		Source:    endpoint(sourceID, sourcePort),
		Target:    endpoint(targetID, targetPort),
		Waypoints: path,
		Repeaters: repeaters,
	}
	b.conns = append(b.conns, conn)
	b.log.Debug("routed connection",
		slog.String("source", conn.Source),
		slog.String("target", conn.Target),
		slog.String("style", string(style)),
		slog.Int("repeaters", len(repeaters)))
	return conn, nil
}

// DriveInput is Connect restricted to output-to-input routes.
func (b *Builder) DriveInput(sourceID, sourcePort, targetID, targetPort string, spacing int, style RouteStyle) (Connection, error) {
	src, err := b.port(sourceID, sourcePort)
	if err != nil {
		return Connection{}, err
	}
	dst, err := b.port(targetID, targetPort)
	if err != nil {
		return Connection{}, err
	}
	if src.Kind != catalog.Output {
		return Connection{}, fmt.Errorf("%w: %s", ErrNotAnOutputPort, endpoint(sourceID, sourcePort))
	}
	if dst.Kind != catalog.Input {
		return Connection{}, fmt.Errorf("%w: %s", ErrNotAnInputPort, endpoint(targetID, targetPort))
	}
	return b.Connect(sourceID, sourcePort, targetID, targetPort, spacing, style)
}

// Route drives the input port targetID.targetPort from the output port
// sourceID.sourcePort using the configured repeater spacing and route style.
func (b *Builder) Route(sourceID, sourcePort, targetID, targetPort string) (Connection, error) {
	return b.DriveInput(sourceID, sourcePort, targetID, targetPort, b.cfg.RepeaterSpacing, b.cfg.RouteStyle)
}

// AddInputSource places src upstream of the input port targetID.targetPort
// so that its output lane runs into the port.
func (b *Builder) AddInputSource(id, targetID, targetPort string, src Source, opts AlignOptions) (*placement.PlacedComponent, error) {
	if err := b.free(id); err != nil {
		return nil, err
	}
	dst, err := b.port(targetID, targetPort)
	if err != nil {
		return nil, err
	}
	if dst.Kind != catalog.Input {
		return nil, fmt.Errorf("%w: %s", ErrNotAnInputPort, endpoint(targetID, targetPort))
	}
	rot, err := b.orient(src.Config, src.Port, dst.Direction, opts.Orientation)
	if err != nil {
		return nil, err
	}
	unit, err := dst.Direction.Unit()
	if err != nil {
		return nil, err
	}
	out := dst.Pos().Sub(unit.Scale(src.Distance))
	origin, err := b.engine.ComputeOriginForPort(src.Config, src.Port, out.X, out.Y, rot)
	if err != nil {
		return nil, err
	}
	pc, err := b.engine.PlaceConfigured(b.life, src.Config, origin.X, origin.Y, rot, opts.Options)
	if err != nil {
		return nil, fmt.Errorf("add %s: %w", id, err)
	}
	b.register(id, pc)
	placed, _ := pc.Port(src.Port)
	b.conns = append(b.conns, Connection{
		Kind:   InputSource,
		From:   placed.Pos(),
		To:     dst.Pos(),
		Source: endpoint(id, src.Port),
		Target: endpoint(targetID, targetPort),
	})
	b.log.Debug("placed input source",
		slog.String("id", id),
		slog.String("config", src.Config),
		slog.String("target", endpoint(targetID, targetPort)),
		slog.Int("distance", src.Distance))
	return pc, nil
}

// SetComponentInputs switches on input guns of an already placed component.
func (b *Builder) SetComponentInputs(id string, inputs placement.Inputs) (*placement.PlacedComponent, error) {
	pc, err := b.Component(id)
	if err != nil {
		return nil, err
	}
	if err := b.engine.ApplyComponentInputs(b.life, pc, inputs); err != nil {
		return nil, err
	}
	b.conns = append(b.conns, Connection{
		Kind:      LocalInputs,
		Component: id,
		Inputs:    maps.Clone(inputs),
	})
	b.log.Debug("enabled inputs", slog.String("id", id), slog.Any("inputs", inputs))
	return pc, nil
}

func (b *Builder) free(id string) error {
	if _, ok := b.nodes[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateComponentID, id)
	}
	return nil
}

func (b *Builder) register(id string, pc *placement.PlacedComponent) {
	b.nodes[id] = pc
	b.order = append(b.order, id)
}

func (b *Builder) port(id, name string) (placement.Port, error) {
	pc, err := b.Component(id)
	if err != nil {
		return placement.Port{}, err
	}
	p, ok := pc.Port(name)
	if !ok {
		return placement.Port{}, fmt.Errorf("%w: %s", catalog.ErrUnknownPort, endpoint(id, name))
	}
	return p, nil
}

// orient resolves the orientation under which config's port faces dir.
func (b *Builder) orient(config, port string, dir geom.Direction, want *geom.Rotation) (geom.Rotation, error) {
	if want != nil {
		if err := want.Validate(); err != nil {
			return 0, fmt.Errorf("%s.%s: %w", config, port, err)
		}
	}
	matches, err := b.engine.Catalog().OrientationsMatchingDirection(config, port, dir)
	if err != nil {
		return 0, err
	}
	if want == nil {
		if len(matches) == 0 {
			return 0, fmt.Errorf("%w: %s.%s toward %d", ErrNoValidOrientation, config, port, dir)
		}
		return matches[0], nil
	}
	if !slices.Contains(matches, *want) {
		return 0, fmt.Errorf("%w: %s.%s at %d toward %d", ErrOrientationMismatch, config, port, *want, dir)
	}
	return *want, nil
}
