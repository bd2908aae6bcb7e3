package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/circuit"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/scenario"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/pattern"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/sims/life"
)

func main() {
	name := flag.String("scenario", "not_gate", "scenario to build ("+strings.Join(scenario.Names(), ", ")+")")
	steps := flag.Int("steps", 0, "generations to run (0 uses the scenario default)")
	inputs := flag.String("inputs", "", "input overrides, e.g. A=1,B=0")
	patterns := flag.String("patterns", "", "directory of RLE files replacing the built-in patterns")
	every := flag.Int("every", 0, "report probes every N generations (0 reports only at the end)")
	verbose := flag.Bool("v", false, "log placements and routes")
	cc := circuit.DefaultConfig()
	cc.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	recipe, err := scenario.Lookup(*name)
	if err != nil {
		fatal("lookup", err)
	}
	lib, err := loadLibrary(*patterns)
	if err != nil {
		fatal("patterns", err)
	}
	cat := catalog.Default()
	if err := cat.Validate(lib); err != nil {
		fatal("catalog", err)
	}

	cfg := scenario.DefaultConfig()
	cfg.Circuit = cc
	if *inputs != "" {
		parsed, err := scenario.ParseInputs(*inputs)
		if err != nil {
			fatal("inputs", err)
		}
		cfg.Inputs = parsed
	}

	sim, err := scenario.New(recipe, cfg, cat, lib)
	if err != nil {
		fatal("build", err)
	}
	if *steps <= 0 {
		*steps = recipe.Steps
	}

	fmt.Printf("Scenario %s: %s\n", recipe.Name, recipe.Summary)
	printLayout(sim.Builder())

	sim.Builder().Run(*steps, func(lf *life.Life, t int) {
		if *every > 0 && (t+1)%*every == 0 && t+1 < *steps {
			printProbes(sim, lf)
		}
	})
	printProbes(sim, sim.Builder().Life())
}

func loadLibrary(dir string) (*pattern.Library, error) {
	if dir == "" {
		return pattern.Default()
	}
	return pattern.LoadDir(os.DirFS(dir))
}

func printLayout(b *circuit.Builder) {
	fmt.Println("Components:")
	for _, id := range b.IDs() {
		pc, err := b.Component(id)
		if err != nil {
			continue
		}
		fmt.Printf("  %-8s %-22s origin=(%d,%d) orientation=%d size=%dx%d\n",
			id, pc.Config, pc.Origin.X, pc.Origin.Y, pc.Orientation, pc.Width, pc.Height)
		for _, name := range pc.PortNames() {
			p := pc.Ports[name]
			fmt.Printf("    %-10s %-6s pos=(%d,%d) dir=%d\n", name, p.Kind, p.X, p.Y, p.Direction)
		}
	}
	conns := b.Connections()
	if len(conns) == 0 {
		return
	}
	fmt.Println("Connections:")
	for _, c := range conns {
		switch c.Kind {
		case circuit.LocalInputs:
			fmt.Printf("  %-14s %s %v\n", c.Kind, c.Component, c.Inputs)
		case circuit.Route:
			fmt.Printf("  %-14s %s -> %s waypoints=%v repeaters=%d\n", c.Kind, c.Source, c.Target, c.Waypoints, len(c.Repeaters))
		default:
			fmt.Printf("  %-14s %s (%d,%d) -> %s (%d,%d)\n", c.Kind, c.Source, c.From.X, c.From.Y, c.Target, c.To.X, c.To.Y)
		}
	}
}

func printProbes(sim *scenario.Sim, lf *life.Life) {
	fmt.Printf("Generation %d: %d live cells\n", lf.Generation(), lf.Len())
	for _, p := range sim.Probes() {
		fmt.Printf("  %-8s %-12s %-6s live=%d\n", p.Component, p.Region.Name, p.Region.Kind, p.Live)
	}
}

func fatal(stage string, err error) {
	slog.Error("circuit-run failed", slog.String("stage", stage), slog.Any("err", err))
	os.Exit(1)
}
