package netlist

import "errors"

// Sentinel errors for the netlist package. Every ingestion-boundary failure
// wraps one of these; callers should use errors.Is, never string matching.
var (
	// ErrAttributeMissing indicates a required cell attribute was absent.
	ErrAttributeMissing = errors.New("netlist: attribute missing")

	// ErrParseFailed indicates an attribute or parameter value could not be
	// parsed into its expected type (e.g. a non-numeric i64 parameter).
	ErrParseFailed = errors.New("netlist: parse failed")

	// ErrStructureParse indicates a technology-library template failed to
	// parse (bounding box or pin metadata malformed).
	ErrStructureParse = errors.New("netlist: structure parse failed")

	// ErrEmptyModule indicates a module with zero cells was passed to
	// construction; there is nothing to place.
	ErrEmptyModule = errors.New("netlist: module has no cells")
)
