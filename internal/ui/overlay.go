//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/circuit"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/core"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type circuitView interface {
	Builder() *circuit.Builder
	ToView(p geom.Point) (x, y int)
}

// Overlay draws probe regions, ports and routes on top of the cell view.
type Overlay struct {
	sim         core.Sim
	scale       int
	showRegions bool
	showPorts   bool
	showRoutes  bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showRegions: true, showPorts: true, showRoutes: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRegions = !o.showRegions
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showPorts = !o.showPorts
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showRoutes = !o.showRoutes
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	view, ok := o.sim.(circuitView)
	if !ok {
		return
	}
	b := view.Builder()
	if b == nil {
		return
	}
	scale := float64(max(o.scale, 1))
	at := func(p geom.Point) (float64, float64) {
		x, y := view.ToView(p)
		return (float64(x) + 0.5) * scale, (float64(y) + 0.5) * scale
	}

	if o.showRoutes {
		for _, c := range b.Connections() {
			switch c.Kind {
			case circuit.Route:
				for i := 0; i+1 < len(c.Waypoints); i++ {
					x1, y1 := at(c.Waypoints[i])
					x2, y2 := at(c.Waypoints[i+1])
					o.drawLine(screen, x1, y1, x2, y2, 1, color.RGBA{R: 200, G: 160, B: 60, A: 160})
				}
			case circuit.AlignedAttach, circuit.InputSource:
				x1, y1 := at(c.From)
				x2, y2 := at(c.To)
				o.drawLine(screen, x1, y1, x2, y2, 1, color.RGBA{R: 140, G: 140, B: 160, A: 120})
			}
		}
	}

	for _, id := range b.IDs() {
		pc, err := b.Component(id)
		if err != nil {
			continue
		}
		if o.showRegions {
			for _, name := range pc.RegionNames() {
				r := pc.Regions[name]
				o.drawRect(screen, at, r.Rect, regionColor(r.Kind))
			}
		}
		if o.showPorts {
			for _, name := range pc.PortNames() {
				p := pc.Ports[name]
				x, y := at(p.Pos())
				col := color.RGBA{R: 80, G: 160, B: 255, A: 230}
				if p.Kind == catalog.Output {
					col = color.RGBA{R: 90, G: 230, B: 120, A: 230}
				}
				o.drawPoint(screen, x, y, 3*scale, col)
				if u, err := p.Direction.Unit(); err == nil {
					n := math.Hypot(float64(u.X), float64(u.Y))
					tick := 6 * scale
					o.drawLine(screen, x, y, x+float64(u.X)/n*tick, y-float64(u.Y)/n*tick, scale, col)
				}
			}
		}
	}
}

func regionColor(kind string) color.RGBA {
	switch kind {
	case "output":
		return color.RGBA{R: 90, G: 230, B: 120, A: 140}
	case "input":
		return color.RGBA{R: 80, G: 160, B: 255, A: 140}
	}
	return color.RGBA{R: 180, G: 180, B: 180, A: 120}
}

func (o *Overlay) drawRect(screen *ebiten.Image, at func(geom.Point) (float64, float64), r geom.Rect, col color.RGBA) {
	x1, y1 := at(geom.Point{X: r.XMin, Y: r.YMax})
	x2, y2 := at(geom.Point{X: r.XMax, Y: r.YMin})
	o.drawLine(screen, x1, y1, x2, y1, 1, col)
	o.drawLine(screen, x2, y1, x2, y2, 1, col)
	o.drawLine(screen, x2, y2, x1, y2, 1, col)
	o.drawLine(screen, x1, y2, x1, y1, 1, col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
