package placement

import (
	"errors"
	"slices"
	"testing"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/core"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/pattern"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/sims/life"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	return e
}

func TestComputeOriginForPortInvertsPlacement(t *testing.T) {
	e := newEngine(t)
	rng := core.NewRNG(5)
	for _, name := range e.Catalog().Names() {
		for _, rot := range geom.Rotations {
			origin := geom.Point{X: rng.IntRange(-1000, 1000), Y: rng.IntRange(-1000, 1000)}
			pc, err := e.PlaceConfigured(life.New(), name, origin.X, origin.Y, rot, Options{})
			if err != nil {
				t.Fatalf("place %s@%d: %v", name, rot, err)
			}
			for _, portName := range pc.PortNames() {
				p := pc.Ports[portName]
				got, err := e.ComputeOriginForPort(name, portName, p.X, p.Y, rot)
				if err != nil {
					t.Fatal(err)
				}
				if got != origin {
					t.Fatalf("%s.%s@%d: origin %v, want %v", name, portName, rot, got, origin)
				}
			}
		}
	}
}

func TestPlacementResolvesFrame(t *testing.T) {
	e := newEngine(t)
	pc, err := e.PlaceConfigured(life.New(), catalog.GliderGun, 100, 50, geom.Rot90, Options{})
	if err != nil {
		t.Fatal(err)
	}
	out := pc.Ports["out"]
	// (36, 5) turned a quarter is (-5, 36); 315 turned a quarter is 45.
	if out.X != 95 || out.Y != 86 || out.Direction != 45 || out.Kind != catalog.Output {
		t.Fatalf("out port = %+v", out)
	}
	lane, ok := pc.Region(catalog.OutputLane)
	if !ok {
		t.Fatal("missing output lane")
	}
	want := geom.Rect{XMin: 115, XMax: 160, YMin: 90, YMax: 135}
	if lane.Rect != want {
		t.Fatalf("output lane = %+v, want %+v", lane.Rect, want)
	}
	if pc.Width != 9 || pc.Height != 36 {
		t.Fatalf("size = %dx%d, want 9x36", pc.Width, pc.Height)
	}
}

func TestPlacementStampsRotatedPattern(t *testing.T) {
	e := newEngine(t)
	lf := life.New()
	if _, err := e.PlaceConfigured(lf, catalog.SingleGlider, 10, 20, geom.Rot180, Options{}); err != nil {
		t.Fatal(err)
	}
	cells, err := e.Library().Cells(pattern.Glider, geom.Rot180)
	if err != nil {
		t.Fatal(err)
	}
	want := life.FromCells(geom.Translate(cells, geom.Point{X: 10, Y: 20})).Cells()
	if got := lf.Cells(); !slices.Equal(got, want) {
		t.Fatalf("cells = %v, want %v", got, want)
	}
}

func TestPartRotationComposesWithOrientation(t *testing.T) {
	lib, err := pattern.Default()
	if err != nil {
		t.Fatal(err)
	}
	cat := catalog.New(catalog.Config{
		Name:  "turned_gun",
		Parts: []catalog.Part{catalog.Place(pattern.Gun, 0, 0, geom.Rot270)},
	})
	lf := life.New()
	if _, err := New(cat, lib).PlaceConfigured(lf, "turned_gun", 0, 0, geom.Rot180, Options{}); err != nil {
		t.Fatal(err)
	}
	cells, err := lib.Cells(pattern.Gun, geom.Rot90)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := lf.Cells(), life.FromCells(cells).Cells(); !slices.Equal(got, want) {
		t.Fatalf("270 part at 180 should stamp the 90 variant: got %d cells", len(got))
	}
}

func TestPlacementKeepsItsOwnPhase(t *testing.T) {
	e := newEngine(t)
	phase := Phase(3)
	opts := Options{Phase: phase}
	a, err := e.PlaceConfigured(life.New(), catalog.AnnihilationPair, 0, 0, geom.Rot0, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.PlaceConfigured(life.New(), catalog.AnnihilationPair, 0, 0, geom.Rot0, opts)
	if err != nil {
		t.Fatal(err)
	}
	*phase = 11
	if *a.Options.Phase != 3 || *b.Options.Phase != 3 {
		t.Fatalf("recorded phases changed with the caller's: %d, %d", *a.Options.Phase, *b.Options.Phase)
	}
	if a.Options.Phase == b.Options.Phase {
		t.Fatal("placements share a phase pointer")
	}
}

func TestInvalidPlacementLeavesAutomatonUntouched(t *testing.T) {
	e := newEngine(t)
	lf := life.FromCells([]geom.Point{{0, 0}, {1, 0}, {2, 0}})
	before := lf.Cells()

	if _, err := e.PlaceConfigured(lf, catalog.AnnihilationPair, 0, 0, 45, Options{}); !errors.Is(err, geom.ErrInvalidRotation) {
		t.Fatalf("rotation 45 err = %v", err)
	}
	if _, err := e.PlaceConfigured(lf, "xor_gate", 0, 0, geom.Rot0, Options{}); !errors.Is(err, catalog.ErrUnknownConfig) {
		t.Fatalf("unknown config err = %v", err)
	}
	if !slices.Equal(lf.Cells(), before) || lf.Generation() != 0 {
		t.Fatal("failed placements must not touch the automaton")
	}
	if e.Len() != 0 {
		t.Fatalf("arena holds %d failed placements", e.Len())
	}
}

func TestPhaseDelayAdvancesAutomaton(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		phase *int
		want  int
	}{
		{nil, 1},
		{Phase(0), 0},
		{Phase(7), 7},
	}
	for _, tc := range cases {
		lf := life.New()
		if _, err := e.PlaceConfigured(lf, catalog.AnnihilationPair, 0, 0, geom.Rot0, Options{Phase: tc.phase}); err != nil {
			t.Fatal(err)
		}
		if lf.Generation() != tc.want {
			t.Fatalf("phase %v: generation %d, want %d", tc.phase, lf.Generation(), tc.want)
		}
	}

	// A phase override only applies to overridable parts.
	lf := life.New()
	if _, err := e.PlaceConfigured(lf, catalog.NotGate, 0, 0, geom.Rot0, Options{Phase: Phase(9)}); err != nil {
		t.Fatal(err)
	}
	if lf.Generation() != 0 {
		t.Fatalf("not_gate with override stepped %d generations", lf.Generation())
	}
}

func TestPhaseDelayEvolvesEarlierCells(t *testing.T) {
	e := newEngine(t)
	lf := life.FromCells([]geom.Point{{-500, 0}, {-499, 0}, {-498, 0}})
	if _, err := e.PlaceConfigured(lf, catalog.AnnihilationPair, 0, 0, geom.Rot0, Options{Phase: Phase(1)}); err != nil {
		t.Fatal(err)
	}
	if !lf.Alive(-499, 1) || lf.Alive(-500, 0) {
		t.Fatal("the blinker placed earlier should have advanced one generation")
	}
}

func TestInputGunAliases(t *testing.T) {
	e := newEngine(t)
	gunCells, _ := e.Library().Cells(pattern.Gun, geom.Rot0)
	base := len(gunCells)
	for _, inputs := range []Inputs{{"A": true}, {"a": true}, {"input_A": true}, {"input_a": true}} {
		lf := life.New()
		if _, err := e.PlaceConfigured(lf, catalog.NotGate, 0, 0, geom.Rot0, Options{Inputs: inputs}); err != nil {
			t.Fatal(err)
		}
		if lf.Len() != 2*base {
			t.Fatalf("inputs %v: %d cells, want %d", inputs, lf.Len(), 2*base)
		}
	}
	lf := life.New()
	if _, err := e.PlaceConfigured(lf, catalog.NotGate, 0, 0, geom.Rot0, Options{Inputs: Inputs{"A": false, "B": true}}); err != nil {
		t.Fatal(err)
	}
	if lf.Len() != base {
		t.Fatalf("disabled input placed a gun: %d cells", lf.Len())
	}
}

func TestConditionalParts(t *testing.T) {
	lib, err := pattern.Default()
	if err != nil {
		t.Fatal(err)
	}
	cat := catalog.New(catalog.Config{
		Name: "eater_pair",
		Parts: []catalog.Part{
			catalog.Place(pattern.Eater, 0, 0, geom.Rot0),
			catalog.Place(pattern.Eater, 20, 0, geom.Rot0).When("second"),
		},
	})
	e := New(cat, lib)
	eater, _ := lib.Cells(pattern.Eater, geom.Rot0)

	lf := life.New()
	if _, err := e.PlaceConfigured(lf, "eater_pair", 0, 0, geom.Rot0, Options{}); err != nil {
		t.Fatal(err)
	}
	if lf.Len() != len(eater) {
		t.Fatalf("conditional part placed without its input: %d cells", lf.Len())
	}

	lf = life.New()
	if _, err := e.PlaceConfigured(lf, "eater_pair", 0, 0, geom.Rot0, Options{Inputs: Inputs{"second": true}}); err != nil {
		t.Fatal(err)
	}
	if lf.Len() != 2*len(eater) {
		t.Fatalf("conditional part missing: %d cells", lf.Len())
	}
}

func TestApplyComponentInputs(t *testing.T) {
	e := newEngine(t)
	lf := life.New()
	pc, err := e.PlaceConfigured(lf, catalog.AndGate, 0, 0, geom.Rot90, Options{})
	if err != nil {
		t.Fatal(err)
	}
	gunCells, _ := e.Library().Cells(pattern.Gun, geom.Rot0)
	if err := e.ApplyComponentInputs(lf, pc, Inputs{"B": true}); err != nil {
		t.Fatal(err)
	}
	if lf.Len() != 2*len(gunCells) {
		t.Fatalf("after enabling B: %d cells", lf.Len())
	}
	// Gun B sits at (-60, 0) turned a quarter: (0, -60), drawn as gun_90.
	turned, _ := e.Library().Cells(pattern.Gun, geom.Rot90)
	for _, c := range turned {
		if !lf.Alive(c.X, c.Y-60) {
			t.Fatalf("gun B cell %v missing", c)
		}
	}
	if err := e.ApplyComponentInputs(lf, pc, Inputs{"input_A": true}); err != nil {
		t.Fatal(err)
	}
	hist := pc.AppliedInputs()
	if len(hist) != 2 || !hist[0]["B"] || !hist[1]["input_A"] {
		t.Fatalf("history = %v", hist)
	}
}

func TestArenaHandles(t *testing.T) {
	e := newEngine(t)
	lf := life.New()
	var placed []*PlacedComponent
	for i := 0; i < 3; i++ {
		pc, err := e.PlaceConfigured(lf, catalog.EaterComponent, i*10, 0, geom.Rot0, Options{})
		if err != nil {
			t.Fatal(err)
		}
		placed = append(placed, pc)
	}
	for i, pc := range placed {
		if pc.Handle != Handle(i) {
			t.Fatalf("placement %d has handle %d", i, pc.Handle)
		}
		got, ok := e.Placement(pc.Handle)
		if !ok || got != pc {
			t.Fatalf("Placement(%d) = %v, %v", pc.Handle, got, ok)
		}
	}
	if _, ok := e.Placement(3); ok {
		t.Fatal("Placement beyond the arena must fail")
	}
	if got := e.Placements(); len(got) != 3 || got[2] != placed[2] {
		t.Fatalf("Placements = %v", got)
	}
}

func TestRoutePorts(t *testing.T) {
	e := newEngine(t)
	lf := life.New()
	gun, _ := e.PlaceConfigured(lf, catalog.GliderGun, 0, 0, geom.Rot0, Options{})
	eat, _ := e.PlaceConfigured(lf, catalog.EaterComponent, 100, -60, geom.Rot0, Options{})
	r, err := e.RoutePorts(gun, "out", eat, "in")
	if err != nil {
		t.Fatal(err)
	}
	if r.From != (geom.Point{X: 36, Y: 5}) || r.Delta != (geom.Point{X: 64, Y: -65}) {
		t.Fatalf("route = %+v", r)
	}
	if _, err := e.RoutePorts(gun, "in", eat, "in"); !errors.Is(err, catalog.ErrUnknownPort) {
		t.Fatalf("unknown port err = %v", err)
	}
}
