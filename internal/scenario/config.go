package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Darsh-A/MCS-M1-CGoL/internal/circuit"
	"github.com/Darsh-A/MCS-M1-CGoL/internal/placement"
)

// Config controls how a scenario sim builds and displays its circuit.
type Config struct {
	Circuit circuit.Config
	// Inputs override the recipe's default inputs when non-nil.
	Inputs       placement.Inputs
	StepsPerTick int
	// Margin pads the initial bounding box to form the view window.
	Margin int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Circuit:      circuit.DefaultConfig(),
		StepsPerTick: 1,
		Margin:       40,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Circuit keys are read by circuit.FromMap.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Circuit = circuit.FromMap(cfg)
	if v, ok := cfg["inputs"]; ok {
		if parsed, err := ParseInputs(v); err == nil {
			c.Inputs = parsed
		}
	}
	if v, ok := cfg["steps_per_tick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StepsPerTick = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Margin = parsed
		}
	}
	return c
}

// ParseInputs reads a comma separated list of name=bool pairs such as
// "A=1,B=false". A bare name switches that input on. The empty string
// yields an empty, non-nil set.
func ParseInputs(s string) (placement.Inputs, error) {
	out := placement.Inputs{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, value, found := strings.Cut(field, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("input %q has no name", field)
		}
		if !found {
			out[name] = true
			continue
		}
		on, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", name, err)
		}
		out[name] = on
	}
	return out, nil
}
