package circuit

import (
	"flag"
	"strconv"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/catalog"
)

// RouteStyle picks which leg of a Manhattan route comes first.
type RouteStyle string

const (
	// HV runs horizontally first, then vertically.
	HV RouteStyle = "hv"
	// VH runs vertically first, then horizontally.
	VH RouteStyle = "vh"
)

// Config controls grid placement and routing defaults.
type Config struct {
	CellWidth       int
	CellHeight      int
	RepeaterSpacing int
	RouteStyle      RouteStyle
	RepeaterConfig  string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		CellWidth:       220,
		CellHeight:      220,
		RepeaterSpacing: 120,
		RouteStyle:      HV,
		RepeaterConfig:  catalog.Repeater,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cell_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellWidth = parsed
		}
	}
	if v, ok := cfg["cell_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellHeight = parsed
		}
	}
	if v, ok := cfg["spacing"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.RepeaterSpacing = parsed
		}
	}
	if v, ok := cfg["route"]; ok {
		if s := RouteStyle(v); s == HV || s == VH {
			c.RouteStyle = s
		}
	}
	if v, ok := cfg["repeater"]; ok && v != "" {
		c.RepeaterConfig = v
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.CellWidth, "cell-w", c.CellWidth, "grid cell width in automaton cells")
	fs.IntVar(&c.CellHeight, "cell-h", c.CellHeight, "grid cell height in automaton cells")
	fs.IntVar(&c.RepeaterSpacing, "spacing", c.RepeaterSpacing, "cells between repeaters on a route")
	fs.Func("route", "route style, hv or vh", func(s string) error {
		if st := RouteStyle(s); st == HV || st == VH {
			c.RouteStyle = st
			return nil
		}
		return ErrInvalidRouteStyle
	})
	fs.StringVar(&c.RepeaterConfig, "repeater", c.RepeaterConfig, "configuration placed along routes")
}
