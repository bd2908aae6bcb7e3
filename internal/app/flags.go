package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	GPS      int
	Seed     int64
	HUDWidth int
	PanStep  int
	Grid     int
	Inputs   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "not_gate", Scale: 2, TPS: 60, GPS: 30, Seed: 42, HUDWidth: 260, PanStep: 20, Grid: 20}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "scenario to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.IntVar(&c.PanStep, "pan", c.PanStep, "cells moved per arrow key press")
	fs.IntVar(&c.Grid, "grid", c.Grid, "grid line spacing in cells (0 disables, G toggles)")
	fs.StringVar(&c.Inputs, "inputs", c.Inputs, "input overrides, e.g. A=1,B=0")
}

// SimConfig returns the factory options the flags describe.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{}
	if c.Inputs != "" {
		m["inputs"] = c.Inputs
	}
	return m
}
