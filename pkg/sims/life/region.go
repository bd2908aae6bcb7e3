package life

import "github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"

// BoundingBox returns the smallest rectangle holding every live cell. ok is
// false when nothing is alive.
func (l *Life) BoundingBox() (box geom.Rect, ok bool) {
	first := true
	for c := range l.alive {
		if first {
			box = geom.Rect{XMin: c.X, XMax: c.X, YMin: c.Y, YMax: c.Y}
			first = false
			continue
		}
		box.XMin = min(box.XMin, c.X)
		box.XMax = max(box.XMax, c.X)
		box.YMin = min(box.YMin, c.Y)
		box.YMax = max(box.YMax, c.Y)
	}
	return box, !first
}

// RegionHasLive reports whether any live cell lies inside r.
func (l *Life) RegionHasLive(r geom.Rect) bool {
	for c := range l.alive {
		if r.Contains(c) {
			return true
		}
	}
	return false
}

// RegionCount counts the live cells inside r.
func (l *Life) RegionCount(r geom.Rect) int {
	n := 0
	for c := range l.alive {
		if r.Contains(c) {
			n++
		}
	}
	return n
}

// Rasterize writes the cells inside window into dst as 0/1 bytes, row-major,
// with the top row holding window.YMax so that y grows upward on screen.
// dst must hold window.Width()*window.Height() bytes.
func (l *Life) Rasterize(window geom.Rect, dst []uint8) {
	w, h := window.Width(), window.Height()
	if len(dst) < w*h {
		return
	}
	clear(dst[:w*h])
	for c := range l.alive {
		if !window.Contains(c) {
			continue
		}
		row := window.YMax - c.Y
		dst[row*w+(c.X-window.XMin)] = 1
	}
}
