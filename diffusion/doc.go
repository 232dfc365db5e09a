// Package diffusion implements the density-smoothing placement pass: cell
// volume is splatted onto a coarse 3D density grid, then relaxed by a
// forward-time centered-space (FTCS) discretization of the heat equation,
// and finally fed back into cell motion via a velocity field derived from
// the density gradient.
package diffusion
