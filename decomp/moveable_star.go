package decomp

import "github.com/mcpnr/mcpnr/netlist"

// MoveableStar allocates one pseudo-node per net with 2 or more mobile
// pins, connecting every pin to that star with weight 1/m (m = mobile pin
// count). Nets with fewer than 2 mobile pins fall back to Clique, which for
// a single mobile pin degenerates to a direct fixed-mobile anchor.
type MoveableStar struct {
	allocator *StarAllocator
	fallback  *Clique
}

// NewMoveableStar returns a ready-to-use MoveableStar strategy.
func NewMoveableStar() *MoveableStar {
	return &MoveableStar{allocator: NewStarAllocator(), fallback: NewClique()}
}

// Reset rewinds the star allocator for a fresh pass.
func (s *MoveableStar) Reset() {
	s.allocator.Reset()
	s.fallback.Reset()
}

// Analyze classifies sig: AllFixed if no mobile pins, Clique if exactly
// one, otherwise StarModel with a freshly allocated pseudo-node index.
func (s *MoveableStar) Analyze(net *netlist.NetlistHypergraph, sig *netlist.Signal) NetStrategy {
	switch {
	case sig.MoveableCells == 0:
		return NetStrategy{Kind: AllFixed}
	case sig.MoveableCells == 1:
		return s.fallback.Analyze(net, sig)
	default:
		return NetStrategy{Kind: StarModel, StarIdx: s.allocator.Next()}
	}
}

// ExtraEntries returns the number of star pseudo-nodes allocated so far.
func (s *MoveableStar) ExtraEntries() int { return int(s.allocator.next) }
