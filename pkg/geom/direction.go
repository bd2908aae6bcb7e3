package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection reports an angle that is not one of the eight
// compass directions.
var ErrInvalidDirection = errors.New("direction must be one of 0,45,...,315")

// Direction is a travel heading in degrees, counter-clockwise from +x.
type Direction int

var units = map[Direction]Point{
	0:   {X: 1, Y: 0},
	45:  {X: 1, Y: 1},
	90:  {X: 0, Y: 1},
	135: {X: -1, Y: 1},
	180: {X: -1, Y: 0},
	225: {X: -1, Y: -1},
	270: {X: 0, Y: -1},
	315: {X: 1, Y: -1},
}

// Canonical reduces d into [0, 360).
func (d Direction) Canonical() Direction { return Direction(mod360(int(d))) }

// Validate reports ErrInvalidDirection for non-compass angles.
func (d Direction) Validate() error {
	if _, ok := units[d.Canonical()]; !ok {
		return fmt.Errorf("%w; got %d", ErrInvalidDirection, int(d))
	}
	return nil
}

// Unit returns the step vector for d with components in {-1, 0, 1}.
func (d Direction) Unit() (Point, error) {
	u, ok := units[d.Canonical()]
	if !ok {
		return Point{}, fmt.Errorf("%w; got %d", ErrInvalidDirection, int(d))
	}
	return u, nil
}

// Turn rotates the heading by r.
func (d Direction) Turn(r Rotation) (Direction, error) {
	v, err := Compose(int(d), r)
	if err != nil {
		return 0, err
	}
	return Direction(v), nil
}
