package circuit

import (
	"fmt"

	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
)

// waypoints returns the three-point Manhattan path from a to b.
func waypoints(a, b geom.Point, style RouteStyle) ([]geom.Point, error) {
	switch style {
	case HV:
		return []geom.Point{a, {X: b.X, Y: a.Y}, b}, nil
	case VH:
		return []geom.Point{a, {X: a.X, Y: b.Y}, b}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidRouteStyle, style)
}

// segmentPoints lists the points every spacing cells strictly between a and
// b, walking from a. Both ends are excluded.
func segmentPoints(a, b geom.Point, spacing int) ([]geom.Point, error) {
	if spacing < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpacing, spacing)
	}
	if a == b {
		return nil, nil
	}
	if a.X != b.X && a.Y != b.Y {
		return nil, fmt.Errorf("%w: %v to %v", ErrNonAxisAlignedSegment, a, b)
	}
	step := geom.Point{X: sign(b.X - a.X), Y: sign(b.Y - a.Y)}
	length := abs(b.X-a.X) + abs(b.Y-a.Y)

	var out []geom.Point
	for d := spacing; d < length; d += spacing {
		out = append(out, a.Add(step.Scale(d)))
	}
	return out, nil
}

// repeaterPoints collects the repeater positions along every segment of
// path.
func repeaterPoints(path []geom.Point, spacing int) ([]geom.Point, error) {
	var out []geom.Point
	for i := 0; i+1 < len(path); i++ {
		pts, err := segmentPoints(path[i], path[i+1], spacing)
		if err != nil {
			return nil, err
		}
		out = append(out, pts...)
	}
	return out, nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
