// Package routing implements the detail router: a 3D multi-layer grid
// search that connects a driver pin to a sink pin with a lowest-cost path,
// backtracking from the first point the forward search touches the target
// net back to the sink to materialize the actual wire.
package routing
