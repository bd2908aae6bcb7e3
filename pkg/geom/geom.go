// Package geom holds the integer geometry shared by patterns, ports and
// regions: right-angle rotations, reflections, normalization and the
// eight compass directions gliders travel along.
package geom

// Point is an integer cell coordinate. Y grows upward.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Rotate90 maps every (x, y) to (-y, x).
func Rotate90(pts []Point) []Point {
	return mapPoints(pts, func(p Point) Point { return Point{X: -p.Y, Y: p.X} })
}

// Rotate180 maps every (x, y) to (-x, -y).
func Rotate180(pts []Point) []Point {
	return mapPoints(pts, func(p Point) Point { return Point{X: -p.X, Y: -p.Y} })
}

// Rotate270 maps every (x, y) to (y, -x).
func Rotate270(pts []Point) []Point {
	return mapPoints(pts, func(p Point) Point { return Point{X: p.Y, Y: -p.X} })
}

// ReflectHorizontal negates x.
func ReflectHorizontal(pts []Point) []Point {
	return mapPoints(pts, func(p Point) Point { return Point{X: -p.X, Y: p.Y} })
}

// ReflectVertical negates y.
func ReflectVertical(pts []Point) []Point {
	return mapPoints(pts, func(p Point) Point { return Point{X: p.X, Y: -p.Y} })
}

// Normalize translates pts so the minimum x and minimum y are both zero.
// Order is preserved. An empty input yields an empty result.
func Normalize(pts []Point) []Point {
	if len(pts) == 0 {
		return []Point{}
	}
	minX, minY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
	}
	shift := Point{X: -minX, Y: -minY}
	return mapPoints(pts, func(p Point) Point { return p.Add(shift) })
}

// Translate returns pts shifted by offset.
func Translate(pts []Point, offset Point) []Point {
	return mapPoints(pts, func(p Point) Point { return p.Add(offset) })
}

func mapPoints(pts []Point, fn func(Point) Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = fn(p)
	}
	return out
}
