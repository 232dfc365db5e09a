package decomp

import "github.com/mcpnr/mcpnr/netlist"

// Clique connects every pair of pins in a net with weight 1/(k-1), where k
// is the pin count. Allocates no pseudo-nodes. O(k^2) per net, acceptable
// for the small nets typical of gate-level logic.
type Clique struct{}

// NewClique returns a ready-to-use Clique strategy.
func NewClique() *Clique { return &Clique{} }

// Reset is a no-op: Clique carries no per-pass state.
func (c *Clique) Reset() {}

// Analyze classifies sig as AllFixed (no mobile pins) or CliqueModel.
func (c *Clique) Analyze(net *netlist.NetlistHypergraph, sig *netlist.Signal) NetStrategy {
	if sig.MoveableCells == 0 {
		return NetStrategy{Kind: AllFixed}
	}
	return NetStrategy{Kind: CliqueModel}
}

// ExtraEntries is always zero: Clique never allocates pseudo-nodes.
func (c *Clique) ExtraEntries() int { return 0 }
