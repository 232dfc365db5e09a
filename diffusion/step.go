package diffusion

// neighborOffsets lists the six face-neighbor offsets used by the FTCS
// stencil and by gradient estimation.
var neighborOffsets = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// StepTime advances the density field by one FTCS (forward-time
// centered-space) step of the heat equation with time step dt. For every
// cell, new = (1-3dt)*old + (dt/2)*sum(six face neighbors), with missing
// neighbors (grid boundary) contributing zero — a Neumann/leak boundary.
// Callers must choose dt <= 1/6 for the scheme to be non-amplifying.
func (f *DensityField) StepTime(dt float64) {
	next := make([]float64, len(f.data))

	for x := 0; x < f.nx; x++ {
		for y := 0; y < f.ny; y++ {
			for z := 0; z < f.nz; z++ {
				old := f.At(x, y, z)
				var sum float64
				for _, off := range neighborOffsets {
					nxp, nyp, nzp := x+off[0], y+off[1], z+off[2]
					if f.inBounds(nxp, nyp, nzp) {
						sum += f.At(nxp, nyp, nzp)
					}
				}
				next[f.idx(x, y, z)] = (1-3*dt)*old + (dt/2)*sum
			}
		}
	}

	f.data = next
}

// Gradient returns the central-difference gradient of density at (x, y, z)
// along each axis, with one-sided differences at the boundary (the missing
// neighbor is treated as equal to the cell itself, giving zero contribution
// rather than a false outward gradient).
func (f *DensityField) Gradient(x, y, z int) (gx, gy, gz float64) {
	center := f.At(x, y, z)
	gx = centralDiff(f, x, y, z, 1, 0, 0, center)
	gy = centralDiff(f, x, y, z, 0, 1, 0, center)
	gz = centralDiff(f, x, y, z, 0, 0, 1, center)
	return gx, gy, gz
}

func centralDiff(f *DensityField, x, y, z, dx, dy, dz int, center float64) float64 {
	plus := center
	if f.inBounds(x+dx, y+dy, z+dz) {
		plus = f.At(x+dx, y+dy, z+dz)
	}
	minus := center
	if f.inBounds(x-dx, y-dy, z-dz) {
		minus = f.At(x-dx, y-dy, z-dz)
	}
	return (plus - minus) / 2.0
}
