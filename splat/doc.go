// Package splat translates a routed path's local cell-to-cell transitions
// into the abstract block patterns a renderer would materialize. It holds
// no state beyond its configured materials: every call is a pure function
// of the one transition it is given.
package splat
