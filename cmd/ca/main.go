//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/app"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/core"
	_ "github.com/Darsh-A/MCS-M1-CGoL/internal/scenario"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("glider circuits: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
