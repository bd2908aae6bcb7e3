package scenario

import (
	"fmt"
	"strings"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/placement"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/pattern"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/sims/life"
)

// Row is one line of a gate truth table.
type Row struct {
	Gate   string
	Inputs placement.Inputs
	Live   int
}

// Output reports whether the output probe saw any live cell.
func (r Row) Output() bool { return r.Live > 0 }

// Line formats the row as "A=1 B=0 -> 1".
func (r Row) Line(names []string) string {
	var sb strings.Builder
	for _, n := range names {
		fmt.Fprintf(&sb, "%s=%d ", n, bit(r.Inputs[n]))
	}
	fmt.Fprintf(&sb, "-> %d", bit(r.Output()))
	return sb.String()
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Gates lists the configurations that have input guns and an output probe.
func Gates(cat *catalog.Catalog) []string {
	var out []string
	for _, name := range cat.Names() {
		cfg, err := cat.Lookup(name)
		if err != nil || len(cfg.InputGuns) == 0 {
			continue
		}
		for _, r := range cfg.Regions {
			if r.Name == catalog.OutputLane {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// InputNames lists the input gun names of gate in catalog order.
func InputNames(cat *catalog.Catalog, gate string) ([]string, error) {
	cfg, err := cat.Lookup(gate)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cfg.InputGuns))
	for i, g := range cfg.InputGuns {
		names[i] = g.Name
	}
	return names, nil
}

// Combinations enumerates every on/off assignment of names, counting up in
// binary with the first name as the most significant bit.
func Combinations(names []string) []placement.Inputs {
	n := len(names)
	out := make([]placement.Inputs, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		in := make(placement.Inputs, n)
		for i, name := range names {
			in[name] = mask&(1<<(n-1-i)) != 0
		}
		out = append(out, in)
	}
	return out
}

// Evaluate places gate at the origin with inputs, runs steps generations
// and counts the live cells in its output probe. Each call uses its own
// automaton and engine, so calls may run concurrently over a shared
// catalog and library.
func Evaluate(cat *catalog.Catalog, lib *pattern.Library, gate string, inputs placement.Inputs, steps int) (Row, error) {
	lf := life.New()
	e := placement.New(cat, lib)
	pc, err := e.PlaceConfigured(lf, gate, 0, 0, geom.Rot0, placement.Options{Phase: placement.Phase(1), Inputs: inputs})
	if err != nil {
		return Row{}, err
	}
	out, ok := pc.Region(catalog.OutputLane)
	if !ok {
		return Row{}, fmt.Errorf("%s has no %s probe", gate, catalog.OutputLane)
	}
	lf.Run(steps, nil)
	return Row{Gate: gate, Inputs: inputs, Live: lf.RegionCount(out.Rect)}, nil
}
