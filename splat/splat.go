package splat

import (
	"github.com/mcpnr/mcpnr/routing"
)

// BlockOffset is a position offset, relative to the transition cell, one
// block of a footprint template occupies.
type BlockOffset struct {
	DX, DY, DZ int
}

// BlockPattern is a template of abstract block placements a renderer maps
// to concrete block types. Material is either Splatter.SignalMaterial or
// Splatter.SupportMaterial.
type BlockPattern struct {
	Offset   BlockOffset
	Material string
}

// directionPair is an unordered pair of directions describing how a path
// enters and exits one grid cell.
type directionPair struct {
	a, b routing.Direction
}

func normalizePair(a, b routing.Direction) directionPair {
	if a <= b {
		return directionPair{a: a, b: b}
	}
	return directionPair{a: b, b: a}
}

// Splatter maps same-layer direction-pair transitions to fixed block
// footprints. It is parameterized over the two materials a footprint uses
// rather than hardcoding concrete Minecraft block names, since this module
// has no block registry dependency.
type Splatter struct {
	// SignalMaterial is the material carrying the routed signal itself
	// (the original's redstone_wire equivalent).
	SignalMaterial string
	// SupportMaterial is the material a signal block must rest on to
	// function (the original's calcite equivalent).
	SupportMaterial string
}

// NewSplatter builds a Splatter with the given materials.
func NewSplatter(signalMaterial, supportMaterial string) *Splatter {
	return &Splatter{SignalMaterial: signalMaterial, SupportMaterial: supportMaterial}
}

// nsPattern is the North-South/South-West footprint: a two-wide support row
// (DZ 0 and 1) carrying a two-wide signal row directly above it. Covers
// North-North, South-South, and South-West transitions.
func (s *Splatter) nsPattern() []BlockPattern {
	return []BlockPattern{
		{Offset: BlockOffset{0, 0, 0}, Material: s.SupportMaterial},
		{Offset: BlockOffset{0, 0, 1}, Material: s.SupportMaterial},
		{Offset: BlockOffset{0, 1, 0}, Material: s.SignalMaterial},
		{Offset: BlockOffset{0, 1, 1}, Material: s.SignalMaterial},
	}
}

// ewPattern is the East-West/North-East footprint: a two-wide support row
// (DX 0 and 1) carrying a two-wide signal row directly above it. Covers
// East-East, West-West, and North-East transitions.
func (s *Splatter) ewPattern() []BlockPattern {
	return []BlockPattern{
		{Offset: BlockOffset{0, 0, 0}, Material: s.SupportMaterial},
		{Offset: BlockOffset{1, 0, 0}, Material: s.SupportMaterial},
		{Offset: BlockOffset{0, 1, 0}, Material: s.SignalMaterial},
		{Offset: BlockOffset{1, 1, 0}, Material: s.SignalMaterial},
	}
}

// nwPattern is the North-West diagonal footprint: a single support block
// with a single signal block directly above it.
func (s *Splatter) nwPattern() []BlockPattern {
	return []BlockPattern{
		{Offset: BlockOffset{0, 0, 0}, Material: s.SupportMaterial},
		{Offset: BlockOffset{0, 1, 0}, Material: s.SignalMaterial},
	}
}

// sePattern is the South-East diagonal footprint: an L-shaped three-block
// support layer carrying an L-shaped three-block signal layer above it.
func (s *Splatter) sePattern() []BlockPattern {
	return []BlockPattern{
		{Offset: BlockOffset{0, 0, 0}, Material: s.SupportMaterial},
		{Offset: BlockOffset{0, 0, 1}, Material: s.SupportMaterial},
		{Offset: BlockOffset{1, 0, 0}, Material: s.SupportMaterial},
		{Offset: BlockOffset{0, 1, 0}, Material: s.SignalMaterial},
		{Offset: BlockOffset{0, 1, 1}, Material: s.SignalMaterial},
		{Offset: BlockOffset{1, 1, 0}, Material: s.SignalMaterial},
	}
}

// footprintTable enumerates the same-layer direction pairs this contract
// models. Only four footprint shapes occur, each shared by the transitions
// that are geometrically equivalent up to the 90-degree rotation the
// direction names already encode: North-South and East-West straight-throughs,
// and any pair touching Up or Down (a layer-crossing via, not a same-layer
// bend) are not modeled here and fall through to ErrUnsupportedWirePattern.
func (s *Splatter) footprintTable() map[directionPair][]BlockPattern {
	ns := s.nsPattern()
	ew := s.ewPattern()
	nw := s.nwPattern()
	se := s.sePattern()

	return map[directionPair][]BlockPattern{
		normalizePair(routing.North, routing.North): ns,
		normalizePair(routing.South, routing.South): ns,
		normalizePair(routing.South, routing.West):  ns,

		normalizePair(routing.East, routing.East):  ew,
		normalizePair(routing.West, routing.West):  ew,
		normalizePair(routing.North, routing.East): ew,

		normalizePair(routing.North, routing.West): nw,

		normalizePair(routing.South, routing.East): se,
	}
}

// Splat returns the block footprint for a path transitioning through one
// cell between neighbor directions a and b. Returns ErrUnsupportedWirePattern
// for any pair this contract does not model: the straight-through
// North-South and East-West transitions, and any transition touching Up or
// Down (a layer-crossing via the detail router resolves separately rather
// than splatting as an in-layer footprint).
func (s *Splatter) Splat(a, b routing.Direction) ([]BlockPattern, error) {
	pattern, ok := s.footprintTable()[normalizePair(a, b)]
	if !ok {
		return nil, ErrUnsupportedWirePattern
	}
	return pattern, nil
}
