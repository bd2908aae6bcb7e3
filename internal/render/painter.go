//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter keeps one view-sized image and refreshes it from cell data.
type GridPainter struct {
	w, h int
	pal  Palette
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w*h view.
func NewGridPainter(w, h int, pal Palette) *GridPainter {
	return &GridPainter{w: w, h: h, pal: pal, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit paints cells with optional grid lines and draws them scaled onto dst.
// Cells of the wrong length are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, grid GridLines, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.w, gp.pal, grid)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
