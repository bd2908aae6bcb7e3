package circuit

import "errors"

var (
	ErrNotAnOutputPort       = errors.New("not an output port")
	ErrNotAnInputPort        = errors.New("not an input port")
	ErrNoValidOrientation    = errors.New("no orientation matches direction")
	ErrOrientationMismatch   = errors.New("orientation does not match direction")
	ErrNonAxisAlignedSegment = errors.New("segment must be axis-aligned")
	ErrDuplicateComponentID  = errors.New("duplicate component id")
	ErrUnknownComponentID    = errors.New("unknown component id")
	ErrInvalidSpacing        = errors.New("repeater spacing must be positive")
	ErrInvalidRouteStyle     = errors.New("route style must be hv or vh")
)
