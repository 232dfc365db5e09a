// Package placement orchestrates the placement pipeline: a fixed,
// caller-configured sequence of steps (center, unconstrained analytical
// solve, diffusion, constrained analytical recovery) run in order against
// a netlist hypergraph.
package placement
