package legalize

import "errors"

// ErrNoRowFits indicates that no row in the legalization region could
// accommodate a cell without exceeding the region's x extent.
var ErrNoRowFits = errors.New("legalize: no row fits cell")

// ErrIncompleteCoverage indicates the output buffer was not fully written:
// some input cell id never received a legalized position. This replaces
// the original's unsafe/MaybeUninit output buffer with a pre-filled
// sentinel plus an explicit coverage assertion.
var ErrIncompleteCoverage = errors.New("legalize: incomplete output coverage")
