package decomp

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mcpnr/mcpnr/netlist"
	"github.com/mcpnr/mcpnr/solver"
)

// StarIndex names a pseudo-node allocated by a star-shaped decomposition.
type StarIndex int

// StarAllocator hands out sequentially increasing StarIndex values, reset
// at the start of every analysis pass.
type StarAllocator struct {
	next StarIndex
}

// NewStarAllocator returns an allocator starting from index zero.
func NewStarAllocator() *StarAllocator { return &StarAllocator{} }

// Reset rewinds the allocator back to zero.
func (a *StarAllocator) Reset() { a.next = 0 }

// Next allocates and returns the next StarIndex.
func (a *StarAllocator) Next() StarIndex {
	idx := a.next
	a.next++
	return idx
}

// NetStrategy is the closed set of ways a single signal may be decomposed.
type NetStrategy struct {
	Kind    NetStrategyKind
	StarIdx StarIndex // only meaningful when Kind == StarModel
}

// NetStrategyKind enumerates NetStrategy variants.
type NetStrategyKind int

const (
	// AllFixed: every pin in the net is locked; nothing to contribute.
	AllFixed NetStrategyKind = iota
	// CliqueModel: connect all pairs of pins with weight 1/(k-1).
	CliqueModel
	// StarModel: connect every pin to one shared mobile pseudo-node.
	StarModel
	// Anchor: tie every mobile pin to the net's fixed center of gravity.
	Anchor
)

// DecompositionStrategy is implemented by each net-decomposition model. It
// is run in two passes over the netlist: Reset+Analyze alone to size the
// problem (tally ExtraEntries), then Reset+Analyze again while Execute
// applies the resulting NetStrategy to the solver's problem builder.
type DecompositionStrategy interface {
	// Reset prepares the strategy for a fresh analysis pass.
	Reset()
	// Analyze classifies one signal. Called exactly once per signal per pass.
	Analyze(net *netlist.NetlistHypergraph, sig *netlist.Signal) NetStrategy
	// ExtraEntries returns how many pseudo-node rows/cols the strategy has
	// allocated so far in the current pass.
	ExtraEntries() int
}

// Execute runs the standard two-pass analytical placement step: a prepass
// to size the problem, then a full pass that builds the problem, solves it,
// and writes the result back into net's mobile cell positions.
func Execute(strategy DecompositionStrategy, net *netlist.NetlistHypergraph) error {
	// Prepass: only needs ExtraEntries, so Analyze's decisions are thrown away.
	strategy.Reset()
	for _, sig := range net.Signals {
		strategy.Analyze(net, sig)
	}
	extra := strategy.ExtraEntries()

	problem, err := solver.NewProblem(net.MobileCellCount + extra)
	if err != nil {
		return errors.Wrap(err, "decomp: allocate problem")
	}

	const weight = 1.0

	strategy.Reset()
	for _, sig := range net.Signals {
		ns := strategy.Analyze(net, sig)
		applyStrategy(problem, net, sig, ns, weight)
	}

	x, y, z, err := problem.Solve()
	if err != nil {
		return errors.Wrap(err, "decomp: final solve")
	}

	logrus.WithField("mobile_cells", net.MobileCellCount).Debug("decomp: writeback")
	for i := 0; i < net.MobileCellCount; i++ {
		net.Cells.X[i] = x[i] - net.Cells.SX[i]/2.0
		net.Cells.Y[i] = y[i] - net.Cells.SY[i]/2.0
		net.Cells.Z[i] = z[i] - net.Cells.SZ[i]/2.0
	}

	return nil
}

func applyStrategy(problem *solver.AnalyticWirelengthProblem, net *netlist.NetlistHypergraph, sig *netlist.Signal, ns NetStrategy, weight float64) {
	switch ns.Kind {
	case AllFixed:
		// Nothing to do; every pin is locked.

	case CliqueModel:
		k := len(sig.ConnectedCells)
		if k < 2 {
			return
		}
		w := weight / float64(k-1)
		for a := 0; a < len(sig.ConnectedCells); a++ {
			i := sig.ConnectedCells[a]
			for b := a + 1; b < len(sig.ConnectedCells); b++ {
				j := sig.ConnectedCells[b]
				iLocked, jLocked := net.IsLocked(i), net.IsLocked(j)
				switch {
				case iLocked && jLocked:
					// Both fixed; nothing to do.
				case iLocked && !jLocked:
					problem.CellFixedMobile(j, w, net.Cells.CenterPos(i))
				case !iLocked && jLocked:
					problem.CellFixedMobile(i, w, net.Cells.CenterPos(j))
				default:
					problem.CellMobileMobile(i, j, w)
				}
			}
		}

	case StarModel:
		if sig.MoveableCells == 0 {
			return
		}
		w := weight / float64(sig.MoveableCells)
		starRow := net.MobileCellCount + int(ns.StarIdx)
		for _, i := range sig.ConnectedCells {
			if net.IsLocked(i) {
				problem.CellFixedMobile(starRow, w, net.Cells.CenterPos(i))
			} else {
				problem.CellMobileMobile(starRow, i, w)
			}
		}

	case Anchor:
		if sig.MoveableCells == 0 {
			return
		}
		var cog netlist.Vector3
		for _, i := range sig.ConnectedCells {
			cog = cog.Add(net.Cells.CenterPos(i))
		}
		cog = cog.Scale(1.0 / float64(len(sig.ConnectedCells)))

		w := weight / float64(sig.MoveableCells)
		for _, i := range sig.IterMobile(net) {
			problem.CellFixedMobile(i, w, cog)
		}
	}
}
