//go:build ebiten

package app

import (
	"image"
	"time"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/core"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/render"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/ui"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type panner interface {
	Pan(dx, dy int)
}

type windowed interface {
	Window() geom.Rect
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	scale    int
	hudWidth int
	panStep  int
	grid     int
	showGrid bool
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		pacer:    core.NewFixedStep(cfg.GPS),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		panStep:  cfg.PanStep,
		grid:     cfg.Grid,
		showGrid: cfg.Grid > 0,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) && g.grid > 0 {
		g.showGrid = !g.showGrid
	}
	if p, ok := g.sim.(panner); ok {
		g.pan(p)
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())

	due := g.pacer.Due()
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = 1
		g.tickOnce = false
	}
	for i := 0; i < due; i++ {
		g.sim.Step()
	}
	return nil
}

func (g *Game) pan(p panner) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		p.Pan(-g.panStep, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		p.Pan(g.panStep, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		p.Pan(0, g.panStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		p.Pan(0, -g.panStep)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.gridLines(), g.scale)
	g.overlay.Draw(screen)
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "paused", 4, 4)
	}
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

func (g *Game) gridLines() render.GridLines {
	w, ok := g.sim.(windowed)
	if !ok || !g.showGrid {
		return render.GridLines{}
	}
	r := w.Window()
	return render.GridLines{Every: g.grid, Origin: image.Point{X: r.XMin, Y: r.YMax}}
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
