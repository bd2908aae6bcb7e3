package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/placement"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/scenario"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/pattern"

	"golang.org/x/sync/errgroup"
)

type job struct {
	gate   string
	inputs placement.Inputs
}

func main() {
	steps := flag.Int("steps", 900, "generations to simulate per input combination")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent simulations")
	gates := flag.String("gates", "", "comma separated gate configurations (default: all)")
	verbose := flag.Bool("v", false, "log each finished simulation")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lib, err := pattern.Default()
	if err != nil {
		logger.Error("load patterns", slog.Any("err", err))
		os.Exit(1)
	}
	cat := catalog.Default()

	names := scenario.Gates(cat)
	if *gates != "" {
		names = strings.Split(*gates, ",")
	}

	var jobs []job
	inputNames := make(map[string][]string, len(names))
	for _, gate := range names {
		in, err := scenario.InputNames(cat, gate)
		if err != nil {
			logger.Error("unknown gate", slog.String("gate", gate), slog.Any("err", err))
			os.Exit(1)
		}
		inputNames[gate] = in
		for _, combo := range scenario.Combinations(in) {
			jobs = append(jobs, job{gate: gate, inputs: combo})
		}
	}

	fmt.Printf("Checking %d input combinations (%d workers, %d steps)\n", len(jobs), *workers, *steps)

	start := time.Now()
	rows := make([]scenario.Row, len(jobs))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := scenario.Evaluate(cat, lib, j.gate, j.inputs, *steps)
			if err != nil {
				return fmt.Errorf("%s %v: %w", j.gate, j.inputs, err)
			}
			logger.Debug("simulated", slog.String("gate", j.gate), slog.Any("inputs", j.inputs), slog.Int("live", row.Live))
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("sweep failed", slog.Any("err", err))
		os.Exit(1)
	}

	current := ""
	for _, row := range rows {
		if row.Gate != current {
			current = row.Gate
			fmt.Printf("\n%s\n", current)
		}
		fmt.Printf("  %s  (%d live)\n", row.Line(inputNames[row.Gate]), row.Live)
	}
	fmt.Printf("\nDone in %s\n", time.Since(start).Round(time.Millisecond))
}
