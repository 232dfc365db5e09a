package decomp

import "github.com/mcpnr/mcpnr/netlist"

// ThresholdCrossover dispatches each signal to one of two inner strategies
// based on its mobile pin count: Small for signals with fewer than
// Threshold mobile pins, Large otherwise. Invariant: at most one of
// Small/Large may allocate extra pseudo-nodes in a given pass — mixing two
// star-allocating strategies would require disjoint pseudo-node index
// spaces, which this type does not arrange for.
type ThresholdCrossover struct {
	Small, Large DecompositionStrategy
	Threshold    int
}

// NewThresholdCrossover returns a ThresholdCrossover dispatching to small
// for signals with fewer than threshold mobile pins, large otherwise.
func NewThresholdCrossover(small, large DecompositionStrategy, threshold int) *ThresholdCrossover {
	return &ThresholdCrossover{Small: small, Large: large, Threshold: threshold}
}

// Reset resets both inner strategies.
func (t *ThresholdCrossover) Reset() {
	t.Small.Reset()
	t.Large.Reset()
}

// Analyze dispatches sig to Small or Large based on its mobile pin count.
func (t *ThresholdCrossover) Analyze(net *netlist.NetlistHypergraph, sig *netlist.Signal) NetStrategy {
	if sig.MoveableCells < t.Threshold {
		return t.Small.Analyze(net, sig)
	}
	return t.Large.Analyze(net, sig)
}

// ExtraEntries sums both inner strategies' pseudo-node counts, asserting
// the documented invariant that at most one side ever allocates any.
func (t *ThresholdCrossover) ExtraEntries() int {
	small := t.Small.ExtraEntries()
	large := t.Large.ExtraEntries()
	if small > 0 && large > 0 {
		panic("decomp: ThresholdCrossover invariant violated: both children allocated pseudo-nodes")
	}
	return small + large
}
