package circuit

import (
	"github.com/Darsh-A/MCS-M1-CGoL/internal/placement"
	"github.com/Darsh-A/MCS-M1-CGoL/pkg/geom"
)

// Kind tags a connection log entry.
type Kind string

const (
	AlignedAttach Kind = "aligned_attach"
	Route         Kind = "route"
	InputSource   Kind = "input_source"
	LocalInputs   Kind = "local_inputs"
)

// Connection is one entry of the builder's connection log. Which fields are
// set depends on Kind: routes carry waypoints and repeaters, local input
// entries carry the component and inputs, the rest carry endpoints only.
type Connection struct {
	Kind Kind

	From, To       geom.Point
	Source, Target string

	Waypoints []geom.Point
	Repeaters []*placement.PlacedComponent

	Component string
	Inputs    placement.Inputs
}

func endpoint(id, port string) string { return id + "." + port }
