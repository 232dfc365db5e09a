// Package netlist implements the placer's internal representation of a
// gate-level netlist as a hypergraph: cells are nodes, signals are
// hyperedges. Cell data is stored structure-of-arrays for cache-friendly
// access during the analytical solver and diffusion passes.
//
// Invariant C1: after construction, mobile cells occupy indices [0, M) and
// locked cells occupy [M, N), where M is MobileCellCount. Any operation that
// reorders cells must rewrite every signal's ConnectedCells indices so they
// keep pointing at the same logical cell.
package netlist
