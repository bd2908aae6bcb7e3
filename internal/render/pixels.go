package render

import (
	"image"
	"image/color"
)

// Palette holds the colours of a binary cell view.
type Palette struct {
	Live color.RGBA
	Dead color.RGBA
	Grid color.RGBA
}

// DefaultPalette draws white cells on black with dim grid lines.
func DefaultPalette() Palette {
	return Palette{
		Live: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Dead: color.RGBA{A: 255},
		Grid: color.RGBA{R: 28, G: 30, B: 38, A: 255},
	}
}

// GridLines marks every Every-th plane column and row on dead cells. Origin is
// the plane cell shown at view (0, 0); plane y grows upward while view y grows
// downward. Every <= 0 disables the lines.
type GridLines struct {
	Every  int
	Origin image.Point
}

func (g GridLines) on(x, y int) bool {
	if g.Every <= 0 {
		return false
	}
	return mod(g.Origin.X+x, g.Every) == 0 || mod(g.Origin.Y-y, g.Every) == 0
}

func mod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}

// fillCellsRGBA converts row-major binary cells of width w into RGBA pixels.
func fillCellsRGBA(buf []byte, cells []uint8, w int, pal Palette, grid GridLines) {
	for i, c := range cells {
		col := pal.Dead
		switch {
		case c != 0:
			col = pal.Live
		case grid.on(i%w, i/w):
			col = pal.Grid
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
