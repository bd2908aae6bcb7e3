// Package pattern loads the base still lifes, oscillators and spaceships
// that circuit components are assembled from, and serves their four
// right-angle variants from a fixed lookup table.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
)

// ErrMalformedRLE reports RLE input that cannot be decoded.
var ErrMalformedRLE = errors.New("malformed RLE")

// maxRun caps a single run count.
const maxRun = 1 << 20

// DecodeRLE reads a run-length encoded Life pattern. Comment lines start
// with '#'; the first remaining line is the "x = .., y = .." header. Rows
// grow downward in the encoding and are returned with y negated, so the
// pattern reads upright in a y-up plane.
func DecodeRLE(r io.Reader) ([]geom.Point, error) {
	sc := bufio.NewScanner(r)
	var body strings.Builder
	header := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !header {
			header = true
			if strings.HasPrefix(line, "x") {
				continue
			}
		}
		body.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read RLE: %w", err)
	}
	if !header {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedRLE)
	}

	var (
		cells []geom.Point
		x, y  int
		run   int
	)
	take := func() int {
		n := run
		run = 0
		if n == 0 {
			return 1
		}
		return n
	}
	for i, ch := range body.String() {
		switch {
		case ch >= '0' && ch <= '9':
			run = run*10 + int(ch-'0')
			if run > maxRun {
				return nil, fmt.Errorf("%w: run count over %d at offset %d", ErrMalformedRLE, maxRun, i)
			}
		case ch == 'o' || ch == 'A':
			for n := take(); n > 0; n-- {
				cells = append(cells, geom.Point{X: x, Y: -y})
				x++
			}
		case ch == 'b' || ch == '.':
			x += take()
		case ch == '$':
			y += take()
			x = 0
		case ch == '!':
			return cells, nil
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedRLE, ch, i)
		}
	}
	return cells, nil
}
