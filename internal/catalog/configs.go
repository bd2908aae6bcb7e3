package catalog

import (
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/pattern"
)

// Built-in configuration names.
const (
	SingleGlider     = "single_glider"
	GliderGun        = "glider_gun_component"
	EaterComponent   = "eater_component"
	AnnihilationPair = "annihilation_pair"
	AndGate          = "and_gate"
	OrGate           = "or_gate"
	NotGate          = "not_gate"
	ReflectorConfig  = "reflector"
	Repeater         = "repeater"
	ReflectorGun     = "reflector_gun"
)

// Probe region names shared by several configurations.
const (
	InputLane  = "input_lane"
	OutputLane = "output_lane"
	InputSink  = "input_sink"
)

func port(name string, kind PortKind, x, y int, dir geom.Direction) PortSpec {
	return PortSpec{Name: name, Kind: kind, Offset: geom.Point{X: x, Y: y}, Direction: dir}
}

func region(name, kind string, xmin, xmax, ymin, ymax int) RegionSpec {
	return RegionSpec{Name: name, Kind: kind, Rect: geom.Rect{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}}
}

func gun(name string, x, y int, rot geom.Rotation) InputGun {
	return InputGun{Name: name, Part: Place(pattern.Gun, x, y, rot)}
}

// reflectorSpec is shared by the reflector and repeater entries; a repeater
// is a reflector used to regenerate a routed signal.
func reflectorSpec(name string) Config {
	return Config{
		Name:  name,
		Size:  Size{Width: 9, Height: 23},
		Parts: []Part{Place(pattern.Reflector, 0, 0, geom.Rot0)},
		Ports: []PortSpec{
			port("in", Input, 0, 0, 315),
			port("out", Output, 0, 0, 225),
		},
		Regions: []RegionSpec{
			region(InputLane, "input", -10, 15, -20, 10),
			region(OutputLane, "output", -50, -10, -70, -5),
		},
	}
}

// Configs returns the built-in component table.
func Configs() []Config {
	return []Config{
		{
			Name:  SingleGlider,
			Size:  Size{Width: 3, Height: 3},
			Parts: []Part{Place(pattern.Glider, 0, 0, geom.Rot0)},
			Ports: []PortSpec{port("out", Output, 0, 0, 315)},
		},
		{
			Name:    GliderGun,
			Size:    Size{Width: 36, Height: 9},
			Parts:   []Part{Place(pattern.Gun, 0, 0, geom.Rot0)},
			Ports:   []PortSpec{port("out", Output, 36, 5, 315)},
			Regions: []RegionSpec{region(OutputLane, "output", 40, 85, -60, -15)},
		},
		{
			Name:    EaterComponent,
			Size:    Size{Width: 4, Height: 4},
			Parts:   []Part{Place(pattern.Eater, 0, 0, geom.Rot0)},
			Ports:   []PortSpec{port("in", Input, 0, 0, 315)},
			Regions: []RegionSpec{region(InputLane, "input", -10, 20, -20, 10)},
		},
		{
			Name: AnnihilationPair,
			Size: Size{Width: 36, Height: 209},
			Parts: []Part{
				Place(pattern.Gun, 0, -100, geom.Rot90),
				Place(pattern.Gun, 0, 100, geom.Rot180).After(1).Overridable(),
			},
			Ports: []PortSpec{
				port("input_nw", Input, 0, -100, 90),
				port("input_sw", Input, 0, 100, 180),
				port("output", Output, 0, 0, 180),
			},
		},
		{
			Name:      AndGate,
			Size:      Size{Width: 200, Height: 220},
			Parts:     []Part{Place(pattern.Gun, 120, -60, geom.Rot270)},
			InputGuns: []InputGun{gun("A", 0, 0, geom.Rot0), gun("B", -60, 0, geom.Rot0)},
			Ports: []PortSpec{
				port("A", Input, -60, 60, 315),
				port("B", Input, -120, 60, 315),
				port("Y", Output, 36, 45, 315),
			},
			Regions: []RegionSpec{region(OutputLane, "output", 130, 200, -200, -100)},
		},
		{
			Name: OrGate,
			Size: Size{Width: 220, Height: 240},
			Parts: []Part{
				Place(pattern.Gun, 120, -60, geom.Rot270),
				Place(pattern.Gun, -60, -60, geom.Rot0),
				Place(pattern.Eater, 82, -123, geom.Rot0),
			},
			InputGuns: []InputGun{gun("A", 0, 0, geom.Rot0), gun("B", -60, 0, geom.Rot0)},
			Ports: []PortSpec{
				port("A", Input, 0, 0, 315),
				port("B", Input, -60, 0, 315),
				port("Y", Output, 36, 45, 315),
			},
			Regions: []RegionSpec{region(OutputLane, "output", 100, 170, -230, -170)},
		},
		{
			Name:      NotGate,
			Size:      Size{Width: 220, Height: 220},
			Parts:     []Part{Place(pattern.Gun, 120, -60, geom.Rot270)},
			InputGuns: []InputGun{gun("A", 0, 0, geom.Rot0)},
			Ports: []PortSpec{
				port("A", Input, 0, 0, 315),
				port("Y", Output, 160, -160, 315),
			},
			Regions: []RegionSpec{
				region(OutputLane, "output", 0, 60, -170, -110),
				region(InputSink, "input", 100, 150, -150, -100),
			},
		},
		reflectorSpec(ReflectorConfig),
		reflectorSpec(Repeater),
		{
			Name: ReflectorGun,
			Size: Size{Width: 39, Height: 37},
			Parts: []Part{
				Place(pattern.Gun, 0, 28, geom.Rot0),
				Place(pattern.Reflector, 30, 0, geom.Rot0),
			},
			Ports: []PortSpec{port("out", Output, -5, -5, 225)},
		},
	}
}

// Default returns a catalog holding the built-in table.
func Default() *Catalog { return New(Configs()...) }
