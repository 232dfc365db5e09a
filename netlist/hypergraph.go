package netlist

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Signal is a hyperedge: the set of cell ids connected by one logical net.
// MoveableCells caches how many of ConnectedCells are mobile, computed once
// at construction and kept in sync by index rewrites under Invariant C1.
type Signal struct {
	ConnectedCells []int
	MoveableCells  int
	Name           string
}

// IterMobile returns the subset of s.ConnectedCells that are mobile,
// relative to the given hypergraph's MobileCellCount.
func (s *Signal) IterMobile(net *NetlistHypergraph) []int {
	out := make([]int, 0, len(s.ConnectedCells))
	for _, idx := range s.ConnectedCells {
		if idx < net.MobileCellCount {
			out = append(out, idx)
		}
	}
	return out
}

// NetlistHypergraph represents the netlist as a hypergraph: Cells are the
// nodes, Signals are the hyperedges. Ownership: this type exclusively owns
// Cells, Metadata, and Signals; strategies borrow it read-only during
// analysis and read-write during writeback, never both at once.
type NetlistHypergraph struct {
	Cells            *CellData
	Metadata         []CellMetadata
	MobileCellCount  int
	Signals          []*Signal
	NetNames         []string
}

// ModuleCell is the minimal external-parser shape this package consumes:
// one cell instance with a type, locked flag, declared position (meaningful
// only when locked), size, attributes/parameters, and named connections
// whose bits reference signal ids (a negative id marks a constant bit,
// which contributes no hyperedge membership).
type ModuleCell struct {
	Name       string
	Type       string
	Locked     bool
	X, Y, Z    float64
	SX, SY, SZ float64
	Attributes map[string]string
	Parameter  map[string]string
	Connection map[string][]int
}

// Module is the minimal external-parser shape for a whole design: an
// ordered list of cells (order is the insertion order signals are built in,
// per spec.md's "netlist's stored order" determinism requirement) plus any
// net names worth preserving through to the placed design.
type Module struct {
	Cells    []ModuleCell
	NetNames []string
}

// TestNew builds a hypergraph directly from cell/signal literals, bypassing
// module parsing. Intended for unit tests exercising the solver and
// decomposition strategies in isolation. cells must already be ordered with
// mobile cells first, matching Invariant C1.
func TestNew(cells *CellData, mobileCellCount int, signals []*Signal) *NetlistHypergraph {
	return &NetlistHypergraph{
		Cells:           cells,
		Metadata:        make([]CellMetadata, cells.Len()),
		MobileCellCount: mobileCellCount,
		Signals:         signals,
	}
}

// FromModule constructs a NetlistHypergraph from a parsed Module. Cells are
// grouped into signals by shared connection ids, then partitioned in place
// so all mobile cells precede all locked cells (Invariant C1), rewriting
// every signal's connected-cell indices as cells are swapped.
func FromModule(m Module) (*NetlistHypergraph, error) {
	if len(m.Cells) == 0 {
		return nil, errors.Wrap(ErrEmptyModule, "FromModule")
	}

	cells := NewCellData(len(m.Cells))
	metadata := make([]CellMetadata, 0, len(m.Cells))
	locks := make([]bool, 0, len(m.Cells))
	signalCells := map[int][]int{}

	for _, mc := range m.Cells {
		idx := cells.Len()
		cells.Push(mc.X, mc.Y, mc.Z, mc.SX, mc.SY, mc.SZ, mc.Locked)
		locks = append(locks, mc.Locked)
		metadata = append(metadata, CellMetadata{
			Type:       mc.Type,
			Attributes: mc.Attributes,
			Connection: mc.Connection,
			Parameter:  mc.Parameter,
		})

		for _, bits := range mc.Connection {
			for _, sig := range bits {
				if sig < 0 {
					continue // constant bit, not a hyperedge membership
				}
				signalCells[sig] = append(signalCells[sig], idx)
			}
		}
	}

	// Build signals in ascending signal-id order so the stored order does
	// not depend on map iteration.
	sigIDs := make([]int, 0, len(signalCells))
	for sig := range signalCells {
		sigIDs = append(sigIDs, sig)
	}
	sort.Ints(sigIDs)

	signals := make([]*Signal, 0, len(signalCells))
	for _, sig := range sigIDs {
		cellIdxs := signalCells[sig]
		moveable := 0
		for _, idx := range cellIdxs {
			if !locks[idx] {
				moveable++
			}
		}
		signals = append(signals, &Signal{ConnectedCells: cellIdxs, MoveableCells: moveable})
	}

	mobileCellCount := partitionByLock(cells, metadata, locks, signals)

	logrus.WithFields(logrus.Fields{
		"cells":   cells.Len(),
		"signals": len(signals),
		"mobile":  mobileCellCount,
	}).Debug("netlist: hypergraph constructed")

	return &NetlistHypergraph{
		Cells:           cells,
		Metadata:        metadata,
		MobileCellCount: mobileCellCount,
		Signals:         signals,
		NetNames:        m.NetNames,
	}, nil
}

// partitionByLock performs the two-pointer scan that swaps locked cells to
// the end of every parallel array, rewriting every signal's connected-cell
// indices as it goes. Returns the resulting mobile cell count.
func partitionByLock(cells *CellData, metadata []CellMetadata, locks []bool, signals []*Signal) int {
	n := cells.Len()
	if n == 0 {
		return 0
	}

	nextMobileIndex := n - 1
	for nextMobileIndex >= 0 && locks[nextMobileIndex] {
		nextMobileIndex--
	}

	mobileCellCount := 0
	for i := 0; i < n; i++ {
		if i >= nextMobileIndex {
			break
		}
		if locks[i] {
			cells.Swap(i, nextMobileIndex)
			locks[i], locks[nextMobileIndex] = locks[nextMobileIndex], locks[i]
			metadata[i], metadata[nextMobileIndex] = metadata[nextMobileIndex], metadata[i]

			rewriteSignalIndex(signals, i, nextMobileIndex)

			for nextMobileIndex >= 0 && locks[nextMobileIndex] {
				nextMobileIndex--
			}
		} else {
			mobileCellCount++
		}
	}

	for mobileCellCount < n && !locks[mobileCellCount] {
		mobileCellCount++
	}

	return mobileCellCount
}

// rewriteSignalIndex swaps every occurrence of a and b across all signals'
// connected-cell lists, keeping hyperedge membership correct after a swap.
func rewriteSignalIndex(signals []*Signal, a, b int) {
	for _, sig := range signals {
		for k, idx := range sig.ConnectedCells {
			if idx == a {
				sig.ConnectedCells[k] = b
			} else if idx == b {
				sig.ConnectedCells[k] = a
			}
		}
	}
}

// IsLocked reports whether cell i is locked (cannot be moved).
func (n *NetlistHypergraph) IsLocked(i int) bool {
	return i >= n.MobileCellCount
}

// PlacedCell is one emitted cell: its final integer position plus its
// preserved metadata, ready for a downstream serializer.
type PlacedCell struct {
	X, Y, Z  int
	Type     string
	Metadata CellMetadata
}

// PlacedDesign is the final output of the placement pipeline: the net names
// carried through untouched, plus one PlacedCell per input cell.
type PlacedDesign struct {
	Creator string
	Nets    []string
	Cells   []PlacedCell
}

// BuildOutput zips metadata with truncated integer positions into a
// PlacedDesign, stamping a provenance string in the creator field:
// "Placed by mcpnr-go <version>, Synth: <creator>".
func (n *NetlistHypergraph) BuildOutput(version, creator string) PlacedDesign {
	cells := make([]PlacedCell, n.Cells.Len())
	for i := range cells {
		cells[i] = PlacedCell{
			X:        int(n.Cells.X[i]),
			Y:        int(n.Cells.Y[i]),
			Z:        int(n.Cells.Z[i]),
			Type:     n.Metadata[i].Type,
			Metadata: n.Metadata[i],
		}
	}

	return PlacedDesign{
		Creator: "Placed by mcpnr-go " + version + ", Synth: " + creator,
		Nets:    n.NetNames,
		Cells:   cells,
	}
}
