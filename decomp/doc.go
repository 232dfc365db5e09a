// Package decomp implements net-decomposition strategies: per-signal
// selection of how a multi-pin net contributes to the analytical solver's
// quadratic form (all-pairs clique, a single moveable-star pseudo-node, or
// anchoring every pin to the net's center of gravity).
package decomp
