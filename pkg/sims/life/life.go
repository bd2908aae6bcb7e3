// Package life implements Conway's Game of Life on an unbounded plane. Live
// cells are kept in a sparse set, so the cost of a generation follows the
// live population rather than any grid area.
package life

import (
	"cmp"
	"slices"

	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
)

// Life is a sparse B3/S23 automaton.
type Life struct {
	alive map[geom.Point]struct{}
	gen   int
}

// New returns an empty automaton.
func New() *Life {
	return &Life{alive: make(map[geom.Point]struct{})}
}

// FromCells returns an automaton seeded with cells.
func FromCells(cells []geom.Point) *Life {
	l := New()
	l.Add(cells, geom.Point{})
	return l
}

// Add marks every cell, shifted by offset, as alive.
func (l *Life) Add(cells []geom.Point, offset geom.Point) {
	for _, c := range cells {
		l.alive[c.Add(offset)] = struct{}{}
	}
}

// Step advances the automaton by one generation. The neighbor census is
// taken from the current set before the new set replaces it.
func (l *Life) Step() {
	counts := make(map[geom.Point]uint8, len(l.alive)*4)
	for c := range l.alive {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				counts[geom.Point{X: c.X + dx, Y: c.Y + dy}]++
			}
		}
	}
	next := make(map[geom.Point]struct{}, len(l.alive))
	for c, n := range counts {
		if n == 3 {
			next[c] = struct{}{}
			continue
		}
		if n == 2 {
			if _, ok := l.alive[c]; ok {
				next[c] = struct{}{}
			}
		}
	}
	l.alive = next
	l.gen++
}

// Run applies Step steps times. When fn is non-nil it is called after each
// step with the 0-based index of that step.
func (l *Life) Run(steps int, fn func(l *Life, t int)) {
	for t := 0; t < steps; t++ {
		l.Step()
		if fn != nil {
			fn(l, t)
		}
	}
}

// Generation reports how many steps have been applied.
func (l *Life) Generation() int { return l.gen }

// Len returns the live population.
func (l *Life) Len() int { return len(l.alive) }

// Alive reports whether (x, y) is live.
func (l *Life) Alive(x, y int) bool {
	_, ok := l.alive[geom.Point{X: x, Y: y}]
	return ok
}

// Cells returns the live cells sorted by y, then x.
func (l *Life) Cells() []geom.Point {
	out := make([]geom.Point, 0, len(l.alive))
	for c := range l.alive {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b geom.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// Clone returns an independent copy, generation counter included.
func (l *Life) Clone() *Life {
	c := &Life{alive: make(map[geom.Point]struct{}, len(l.alive)), gen: l.gen}
	for p := range l.alive {
		c.alive[p] = struct{}{}
	}
	return c
}

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	clear(l.alive)
	l.gen = 0
}
