package routing

import "github.com/pkg/errors"

// ErrUnroutable is returned when no path exists between a driver and a
// sink within the current search bounds, or when a pin points directly at
// a cell that is blocked or owned by a different net.
var ErrUnroutable = errors.New("routing: net is unroutable")

// ErrOutOfBounds is returned when a grid position falls outside the
// router's allocated grid extents.
var ErrOutOfBounds = errors.New("routing: position out of bounds")

// ErrBacktrackStalled is returned when a backtrack step fails to make
// progress toward the sink, which would otherwise loop forever.
var ErrBacktrackStalled = errors.New("routing: backtrack made no progress")
