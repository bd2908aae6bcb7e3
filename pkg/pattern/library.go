package pattern

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
)

// ErrUnknownPattern reports a lookup for a pattern the library does not hold.
var ErrUnknownPattern = errors.New("unknown pattern")

// Base pattern names.
const (
	Glider    = "glider"
	Gun       = "gun"
	Eater     = "eater"
	Reflector = "reflector"
)

// Files maps each base pattern to the RLE file it is read from.
var Files = map[string]string{
	Glider:    "glider.rle",
	Gun:       "glider_gun.rle",
	Eater:     "eater.rle",
	Reflector: "reflector.rle",
}

//go:embed patterns/*.rle
var embedded embed.FS

type variantKey struct {
	name string
	rot  geom.Rotation
}

// Library holds every base pattern in its four orientations, each
// normalized so its minimum x and y are zero.
type Library struct {
	variants map[variantKey][]geom.Point
	names    []string
}

// NewLibrary derives the rotation variants for the given base patterns.
func NewLibrary(base map[string][]geom.Point) *Library {
	lib := &Library{variants: make(map[variantKey][]geom.Point, len(base)*4)}
	for name, cells := range base {
		b := geom.Normalize(cells)
		lib.variants[variantKey{name, geom.Rot0}] = b
		lib.variants[variantKey{name, geom.Rot90}] = geom.Normalize(geom.Rotate90(b))
		lib.variants[variantKey{name, geom.Rot180}] = geom.Normalize(geom.Rotate180(b))
		lib.variants[variantKey{name, geom.Rot270}] = geom.Normalize(geom.Rotate270(b))
		lib.names = append(lib.names, name)
	}
	slices.Sort(lib.names)
	return lib
}

// Default returns the library built from the patterns shipped with the
// package.
func Default() (*Library, error) {
	sub, err := fs.Sub(embedded, "patterns")
	if err != nil {
		return nil, err
	}
	return LoadDir(sub)
}

// LoadDir reads every file named in Files from fsys.
func LoadDir(fsys fs.FS) (*Library, error) {
	base := make(map[string][]geom.Point, len(Files))
	for name, file := range Files {
		f, err := fsys.Open(file)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		cells, err := DecodeRLE(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		base[name] = cells
	}
	return NewLibrary(base), nil
}

// Cells returns the named pattern turned by rot. The returned slice is
// shared and must not be modified.
func (l *Library) Cells(name string, rot geom.Rotation) ([]geom.Point, error) {
	if err := rot.Validate(); err != nil {
		return nil, err
	}
	cells, ok := l.variants[variantKey{name, rot}]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPattern, name)
	}
	return cells, nil
}

// Has reports whether name is a known base pattern.
func (l *Library) Has(name string) bool {
	_, ok := l.variants[variantKey{name, geom.Rot0}]
	return ok
}

// Names lists the base patterns in sorted order.
func (l *Library) Names() []string { return slices.Clone(l.names) }
