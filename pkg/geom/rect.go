package geom

// Rect is an axis-aligned rectangle with inclusive bounds.
type Rect struct {
	XMin, XMax, YMin, YMax int
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return r.XMin <= p.X && p.X <= r.XMax && r.YMin <= p.Y && p.Y <= r.YMax
}

// Translate shifts r by offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{
		XMin: r.XMin + offset.X,
		XMax: r.XMax + offset.X,
		YMin: r.YMin + offset.Y,
		YMax: r.YMax + offset.Y,
	}
}

// Width is the inclusive horizontal extent.
func (r Rect) Width() int { return r.XMax - r.XMin + 1 }

// Height is the inclusive vertical extent.
func (r Rect) Height() int { return r.YMax - r.YMin + 1 }

// Rotate turns the four corners of r about the origin and returns their
// axis-aligned bounding box.
func (r Rect) Rotate(rot Rotation) (Rect, error) {
	corners := []Point{
		{X: r.XMin, Y: r.YMin},
		{X: r.XMin, Y: r.YMax},
		{X: r.XMax, Y: r.YMin},
		{X: r.XMax, Y: r.YMax},
	}
	turned, err := Rotate(corners, rot)
	if err != nil {
		return Rect{}, err
	}
	return Bounds(turned), nil
}

// Bounds returns the smallest Rect containing pts. pts must be non-empty.
func Bounds(pts []Point) Rect {
	b := Rect{XMin: pts[0].X, XMax: pts[0].X, YMin: pts[0].Y, YMax: pts[0].Y}
	for _, p := range pts[1:] {
		b.XMin = min(b.XMin, p.X)
		b.XMax = max(b.XMax, p.X)
		b.YMin = min(b.YMin, p.Y)
		b.YMax = max(b.YMax, p.Y)
	}
	return b
}
