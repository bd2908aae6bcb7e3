package circuit

import (
	"bytes"
	"errors"
	"flag"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/placement"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/sims/life"
)

func newBuilder(t *testing.T, cfg Config) *Builder {
	t.Helper()
	e, err := placement.NewDefault()
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return New(life.New(), e, cfg)
}

func mustAdd(t *testing.T, b *Builder, id, config string, gx, gy int) *placement.PlacedComponent {
	t.Helper()
	pc, err := b.AddComponent(id, config, gx, gy, geom.Rot0, placement.Options{})
	if err != nil {
		t.Fatalf("add %s: %v", id, err)
	}
	return pc
}

func origins(pcs []*placement.PlacedComponent) []geom.Point {
	out := make([]geom.Point, len(pcs))
	for i, pc := range pcs {
		out[i] = pc.Origin
	}
	return out
}

func smallGrid() Config {
	cfg := DefaultConfig()
	cfg.CellWidth, cfg.CellHeight = 120, 120
	return cfg
}

func TestAddComponentUsesGrid(t *testing.T) {
	b := newBuilder(t, DefaultConfig())
	pc := mustAdd(t, b, "gate", catalog.NotGate, 2, -1)
	if pc.Origin != (geom.Point{X: 440, Y: -220}) {
		t.Fatalf("origin = %v", pc.Origin)
	}
	y, _ := pc.Port("Y")
	if y.Pos() != (geom.Point{X: 600, Y: -380}) {
		t.Fatalf("Y port = %v", y.Pos())
	}
}

func TestDuplicateIDLeavesAutomatonUntouched(t *testing.T) {
	b := newBuilder(t, DefaultConfig())
	mustAdd(t, b, "g", catalog.SingleGlider, 0, 0)
	n := b.Life().Len()
	if _, err := b.AddComponent("g", catalog.EaterComponent, 1, 0, geom.Rot0, placement.Options{}); !errors.Is(err, ErrDuplicateComponentID) {
		t.Fatalf("err = %v", err)
	}
	if b.Life().Len() != n {
		t.Fatal("duplicate id must not place cells")
	}
	if got := b.IDs(); !slices.Equal(got, []string{"g"}) {
		t.Fatalf("ids = %v", got)
	}
}

func TestConnectPlacesRepeatersInsideSegments(t *testing.T) {
	b := newBuilder(t, smallGrid())
	mustAdd(t, b, "g", catalog.SingleGlider, 0, 0)
	mustAdd(t, b, "e", catalog.EaterComponent, 3, 0)

	conn, err := b.Connect("g", "out", "e", "in", 120, HV)
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{{X: 120}, {X: 240}}
	if got := origins(conn.Repeaters); !slices.Equal(got, want) {
		t.Fatalf("repeaters at %v, want %v", got, want)
	}
	if !slices.Equal(conn.Waypoints, []geom.Point{{}, {X: 360}, {X: 360}}) {
		t.Fatalf("waypoints = %v", conn.Waypoints)
	}
	for _, r := range conn.Repeaters {
		if r.Config != catalog.Repeater || r.Orientation != geom.Rot0 {
			t.Fatalf("repeater placed as %s@%d", r.Config, r.Orientation)
		}
	}
	log := b.Connections()
	if len(log) != 1 || log[0].Kind != Route || log[0].Source != "g.out" || log[0].Target != "e.in" {
		t.Fatalf("log = %+v", log)
	}
}

func TestConnectVerticalFirst(t *testing.T) {
	b := newBuilder(t, smallGrid())
	mustAdd(t, b, "g", catalog.SingleGlider, 0, 0)
	mustAdd(t, b, "e", catalog.EaterComponent, 3, 2)

	conn, err := b.Connect("g", "out", "e", "in", 120, VH)
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{{X: 0, Y: 120}, {X: 120, Y: 240}, {X: 240, Y: 240}}
	if got := origins(conn.Repeaters); !slices.Equal(got, want) {
		t.Fatalf("repeaters at %v, want %v", got, want)
	}
}

func TestConnectErrors(t *testing.T) {
	b := newBuilder(t, smallGrid())
	mustAdd(t, b, "g", catalog.SingleGlider, 0, 0)
	mustAdd(t, b, "e", catalog.EaterComponent, 3, 0)
	before := b.Life().Len()

	cases := []struct {
		name string
		err  error
		call func() error
	}{
		{"spacing", ErrInvalidSpacing, func() error { _, err := b.Connect("g", "out", "e", "in", 0, HV); return err }},
		{"style", ErrInvalidRouteStyle, func() error { _, err := b.Connect("g", "out", "e", "in", 120, "diag"); return err }},
		{"source id", ErrUnknownComponentID, func() error { _, err := b.Connect("x", "out", "e", "in", 120, HV); return err }},
		{"target id", ErrUnknownComponentID, func() error { _, err := b.Connect("g", "out", "x", "in", 120, HV); return err }},
		{"port", catalog.ErrUnknownPort, func() error { _, err := b.Connect("g", "in", "e", "in", 120, HV); return err }},
		{"drive from input", ErrNotAnOutputPort, func() error { _, err := b.DriveInput("e", "in", "e", "in", 120, HV); return err }},
		{"drive into output", ErrNotAnInputPort, func() error { _, err := b.DriveInput("g", "out", "g", "out", 120, HV); return err }},
	}
	for _, tc := range cases {
		if err := tc.call(); !errors.Is(err, tc.err) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.err)
		}
	}
	if b.Life().Len() != before || len(b.Connections()) != 0 {
		t.Fatal("failed connections must not change the circuit")
	}
}

func TestSegmentPoints(t *testing.T) {
	t.Parallel()
	got, err := segmentPoints(geom.Point{X: 0, Y: 300}, geom.Point{X: 0, Y: 0}, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []geom.Point{{Y: 200}, {Y: 100}}) {
		t.Fatalf("points = %v", got)
	}
	if got, _ := segmentPoints(geom.Point{X: 5, Y: 5}, geom.Point{X: 5, Y: 5}, 1); len(got) != 0 {
		t.Fatalf("zero-length segment gave %v", got)
	}
	if got, _ := segmentPoints(geom.Point{}, geom.Point{X: 50}, 120); len(got) != 0 {
		t.Fatalf("short segment gave %v", got)
	}
	if _, err := segmentPoints(geom.Point{}, geom.Point{X: 3, Y: 4}, 1); !errors.Is(err, ErrNonAxisAlignedSegment) {
		t.Fatalf("diagonal err = %v", err)
	}
}

func TestAddComponentAligned(t *testing.T) {
	b := newBuilder(t, DefaultConfig())
	mustAdd(t, b, "gun", catalog.GliderGun, 0, 0)

	pc, err := b.AddComponentAligned("sink", catalog.EaterComponent, "gun", "out", "in", 10, AlignOptions{})
	if err != nil {
		t.Fatal(err)
	}
	in, _ := pc.Port("in")
	if in.Pos() != (geom.Point{X: 46, Y: -5}) || in.Direction != 315 || pc.Orientation != geom.Rot0 {
		t.Fatalf("in port = %+v at %d", in, pc.Orientation)
	}
	log := b.Connections()
	if len(log) != 1 || log[0].Kind != AlignedAttach || log[0].From != (geom.Point{X: 36, Y: 5}) || log[0].To != in.Pos() {
		t.Fatalf("log = %+v", log)
	}

	_, err = b.AddComponentAligned("sink2", catalog.EaterComponent, "gun", "out", "in", 10, AlignOptions{Orientation: Orient(geom.Rot90)})
	if !errors.Is(err, ErrOrientationMismatch) {
		t.Fatalf("explicit mismatch err = %v", err)
	}
	before := b.Life().Len()
	_, err = b.AddComponentAligned("sink4", catalog.EaterComponent, "gun", "out", "in", 10, AlignOptions{Orientation: Orient(45)})
	if !errors.Is(err, geom.ErrInvalidRotation) || errors.Is(err, ErrOrientationMismatch) {
		t.Fatalf("invalid explicit orientation err = %v", err)
	}
	if b.Life().Len() != before {
		t.Fatal("invalid orientation placed cells")
	}
	_, err = b.AddComponentAligned("sink3", catalog.EaterComponent, "sink", "in", "in", 10, AlignOptions{})
	if !errors.Is(err, ErrNotAnOutputPort) {
		t.Fatalf("input source err = %v", err)
	}
}

func routeRepeaters(t *testing.T, cfg Config) Connection {
	t.Helper()
	b := newBuilder(t, cfg)
	mustAdd(t, b, "gun", catalog.GliderGun, 0, 0)
	mustAdd(t, b, "sink", catalog.EaterComponent, 2, -1)
	conn, err := b.Route("gun", "out", "sink", "in")
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	return conn
}

func TestRouteUsesConfiguredSpacingAndStyle(t *testing.T) {
	// gun.out sits at (36,5) and sink.in at (440,-220).
	conn := routeRepeaters(t, DefaultConfig())
	if conn.Kind != Route || len(conn.Repeaters) != 4 {
		t.Fatalf("default route: kind %s with %d repeaters", conn.Kind, len(conn.Repeaters))
	}
	if conn.Waypoints[1] != (geom.Point{X: 440, Y: 5}) {
		t.Fatalf("hv corner = %v", conn.Waypoints[1])
	}

	cfg := DefaultConfig()
	cfg.RepeaterSpacing = 50
	if n := len(routeRepeaters(t, cfg).Repeaters); n != 12 {
		t.Fatalf("spacing 50 placed %d repeaters, want 12", n)
	}

	cfg = DefaultConfig()
	cfg.RouteStyle = VH
	conn = routeRepeaters(t, cfg)
	if conn.Waypoints[1] != (geom.Point{X: 36, Y: -220}) || len(conn.Repeaters) != 4 {
		t.Fatalf("vh route: corner %v with %d repeaters", conn.Waypoints[1], len(conn.Repeaters))
	}
}

func TestRouteFollowsFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-spacing", "50", "-route", "vh"}); err != nil {
		t.Fatal(err)
	}
	conn := routeRepeaters(t, cfg)
	if len(conn.Repeaters) != 12 || conn.Waypoints[1] != (geom.Point{X: 36, Y: -220}) {
		t.Fatalf("flagged route: corner %v with %d repeaters", conn.Waypoints[1], len(conn.Repeaters))
	}
}

func TestRouteChecksPortKinds(t *testing.T) {
	b := newBuilder(t, DefaultConfig())
	mustAdd(t, b, "gun", catalog.GliderGun, 0, 0)
	mustAdd(t, b, "sink", catalog.EaterComponent, 2, -1)
	if _, err := b.Route("sink", "in", "gun", "out"); !errors.Is(err, ErrNotAnOutputPort) {
		t.Fatalf("err = %v", err)
	}
	if len(b.Connections()) != 0 {
		t.Fatal("failed route was logged")
	}
}

func TestAlignedWithoutMatchingOrientation(t *testing.T) {
	b := newBuilder(t, DefaultConfig())
	mustAdd(t, b, "pair", catalog.AnnihilationPair, 0, 0)
	before := b.Life().Len()

	_, err := b.AddComponentAligned("r", catalog.ReflectorConfig, "pair", "output", "in", 20, AlignOptions{})
	if !errors.Is(err, ErrNoValidOrientation) {
		t.Fatalf("err = %v", err)
	}
	if b.Life().Len() != before {
		t.Fatal("failed alignment must not place cells")
	}
	if _, err := b.Component("r"); !errors.Is(err, ErrUnknownComponentID) {
		t.Fatalf("component registered after failure: %v", err)
	}
}

func TestAddInputSource(t *testing.T) {
	b := newBuilder(t, DefaultConfig())
	mustAdd(t, b, "not", catalog.NotGate, 0, 0)

	src, err := b.AddInputSource("srcA", "not", "A", DefaultSource(), AlignOptions{})
	if err != nil {
		t.Fatal(err)
	}
	out, _ := src.Port("out")
	if out.Pos() != (geom.Point{X: -240, Y: 240}) || out.Direction != 315 {
		t.Fatalf("source out = %+v", out)
	}
	if src.Origin != (geom.Point{X: -276, Y: 235}) {
		t.Fatalf("source origin = %v", src.Origin)
	}
	log := b.Connections()
	if len(log) != 1 || log[0].Kind != InputSource || log[0].Target != "not.A" || log[0].From != out.Pos() {
		t.Fatalf("log = %+v", log)
	}

	_, err = b.AddInputSource("srcY", "not", "Y", DefaultSource(), AlignOptions{})
	if !errors.Is(err, ErrNotAnInputPort) {
		t.Fatalf("output target err = %v", err)
	}
}

func TestSetComponentInputs(t *testing.T) {
	b := newBuilder(t, DefaultConfig())
	mustAdd(t, b, "and", catalog.AndGate, 0, 0)
	before := b.Life().Len()

	pc, err := b.SetComponentInputs("and", placement.Inputs{"A": true})
	if err != nil {
		t.Fatal(err)
	}
	if b.Life().Len() <= before {
		t.Fatal("enabling A should add a gun")
	}
	if len(pc.AppliedInputs()) != 1 {
		t.Fatalf("history = %v", pc.AppliedInputs())
	}
	log := b.Connections()
	if len(log) != 1 || log[0].Kind != LocalInputs || log[0].Component != "and" || !log[0].Inputs["A"] {
		t.Fatalf("log = %+v", log)
	}
	if _, err := b.SetComponentInputs("or", placement.Inputs{"A": true}); !errors.Is(err, ErrUnknownComponentID) {
		t.Fatalf("unknown id err = %v", err)
	}
}

func TestConnectionsIsACopy(t *testing.T) {
	b := newBuilder(t, DefaultConfig())
	mustAdd(t, b, "and", catalog.AndGate, 0, 0)
	if _, err := b.SetComponentInputs("and", placement.Inputs{"B": true}); err != nil {
		t.Fatal(err)
	}
	log := b.Connections()
	log[0].Component = "changed"
	if b.Connections()[0].Component != "and" {
		t.Fatal("Connections exposed the internal log")
	}
}

func TestBuilderLogs(t *testing.T) {
	var buf bytes.Buffer
	b := newBuilder(t, smallGrid())
	b.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	mustAdd(t, b, "g", catalog.SingleGlider, 0, 0)
	mustAdd(t, b, "e", catalog.EaterComponent, 3, 0)
	if _, err := b.Connect("g", "out", "e", "in", 120, HV); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"placed component", "id=g", "routed connection", "repeaters=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestRunAdvancesAutomaton(t *testing.T) {
	b := newBuilder(t, DefaultConfig())
	mustAdd(t, b, "g", catalog.SingleGlider, 0, 0)
	calls := 0
	b.Run(8, func(*life.Life, int) { calls++ })
	if calls != 8 || b.Life().Generation() != 8 {
		t.Fatalf("calls = %d, generation = %d", calls, b.Life().Generation())
	}
}
