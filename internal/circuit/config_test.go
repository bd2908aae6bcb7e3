package circuit

import (
	"flag"
	"testing"
)

func TestFromMap(t *testing.T) {
	t.Parallel()
	c := FromMap(map[string]string{"cell_w": "300", "cell_h": "-1", "spacing": "90", "route": "vh", "repeater": "reflector"})
	if c.CellWidth != 300 || c.CellHeight != 220 || c.RepeaterSpacing != 90 || c.RouteStyle != VH || c.RepeaterConfig != "reflector" {
		t.Fatalf("config = %+v", c)
	}
	if c := FromMap(map[string]string{"route": "zigzag"}); c.RouteStyle != HV {
		t.Fatalf("bad route style accepted: %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestBindFlags(t *testing.T) {
	t.Parallel()
	c := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-cell-w", "100", "-route", "vh"}); err != nil {
		t.Fatal(err)
	}
	if c.CellWidth != 100 || c.RouteStyle != VH {
		t.Fatalf("config = %+v", c)
	}
	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(discard{})
	c.Bind(fs)
	if err := fs.Parse([]string{"-route", "up"}); err == nil {
		t.Fatal("invalid route style should fail to parse")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
