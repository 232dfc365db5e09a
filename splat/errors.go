package splat

import "github.com/pkg/errors"

// ErrUnsupportedWirePattern is returned when a splat is requested for a
// direction pair this contract does not model — currently anything that
// crosses a layer boundary rather than bending within one, and the
// straight-through North-South and East-West pairs.
var ErrUnsupportedWirePattern = errors.New("splat: unsupported wire pattern")
