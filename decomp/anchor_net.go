package decomp

import "github.com/mcpnr/mcpnr/netlist"

// AnchoredByNet ties every mobile pin in a net to that net's current center
// of gravity (the mean of every pin's center, mobile and locked alike) with
// weight 1/m. Allocates no pseudo-nodes; typically used to recover
// wirelength quality after a diffusion pass has perturbed cell positions.
type AnchoredByNet struct{}

// NewAnchoredByNet returns a ready-to-use AnchoredByNet strategy.
func NewAnchoredByNet() *AnchoredByNet { return &AnchoredByNet{} }

// Reset is a no-op: AnchoredByNet carries no per-pass state.
func (a *AnchoredByNet) Reset() {}

// Analyze classifies sig as AllFixed (no mobile pins) or Anchor.
func (a *AnchoredByNet) Analyze(net *netlist.NetlistHypergraph, sig *netlist.Signal) NetStrategy {
	if sig.MoveableCells == 0 {
		return NetStrategy{Kind: AllFixed}
	}
	return NetStrategy{Kind: Anchor}
}

// ExtraEntries is always zero: AnchoredByNet never allocates pseudo-nodes.
func (a *AnchoredByNet) ExtraEntries() int { return 0 }
