package diffusion

import "errors"

// ErrRegionSizeNotExact indicates the design extents do not divide evenly
// by the chosen region size; the density grid would otherwise have a
// fractional last cell, which this package does not model.
var ErrRegionSizeNotExact = errors.New("diffusion: region size does not divide design extents exactly")
