package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidRotation reports an orientation outside 0/90/180/270.
var ErrInvalidRotation = errors.New("rotation must be one of: 0, 90, 180, 270")

// Rotation is a counter-clockwise right-angle turn in degrees.
type Rotation int

const (
	Rot0   Rotation = 0
	Rot90  Rotation = 90
	Rot180 Rotation = 180
	Rot270 Rotation = 270
)

// Rotations lists the valid orientations in ascending order.
var Rotations = [...]Rotation{Rot0, Rot90, Rot180, Rot270}

// ParseRotation converts a degree value into a Rotation.
func ParseRotation(deg int) (Rotation, error) {
	r := Rotation(deg)
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r, nil
}

// Validate reports ErrInvalidRotation unless r is a multiple of 90 in [0, 360).
func (r Rotation) Validate() error {
	switch r {
	case Rot0, Rot90, Rot180, Rot270:
		return nil
	}
	return fmt.Errorf("%w: got %d", ErrInvalidRotation, int(r))
}

// Then returns the rotation equivalent to applying r followed by s.
func (r Rotation) Then(s Rotation) Rotation {
	return Rotation(mod360(int(r) + int(s)))
}

// RotatePoint turns p about the origin. It is the single point mapping used
// for pattern offsets, port offsets and region corners alike.
func RotatePoint(p Point, r Rotation) (Point, error) {
	if err := r.Validate(); err != nil {
		return Point{}, err
	}
	return rotatePoint(p, r), nil
}

func rotatePoint(p Point, r Rotation) Point {
	switch r {
	case Rot90:
		return Point{X: -p.Y, Y: p.X}
	case Rot180:
		return Point{X: -p.X, Y: -p.Y}
	case Rot270:
		return Point{X: p.Y, Y: -p.X}
	}
	return p
}

// Rotate applies r to every point.
func Rotate(pts []Point, r Rotation) ([]Point, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return mapPoints(pts, func(p Point) Point { return rotatePoint(p, r) }), nil
}

// Compose adds an orientation to an angle (a part rotation or a port
// direction), modulo 360.
func Compose(angle int, r Rotation) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return mod360(angle + int(r)), nil
}

func mod360(v int) int {
	v %= 360
	if v < 0 {
		v += 360
	}
	return v
}
