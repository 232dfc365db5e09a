package diffusion

// Advect resolves the placer's velocity-driven cell-motion contract
// (spec.md §9 Open Question (a)): velocity at a cell's region is the
// negative density gradient (descending density, i.e. moving away from
// crowded regions) scaled by velocityGain, and one iteration's
// displacement is velocity*dt clamped to at most one region width so a
// single diffusion iteration can never skip over a neighboring region.
func (f *DensityField) Advect(x, y, z int, dt, velocityGain float64) (dx, dy, dz float64) {
	gx, gy, gz := f.Gradient(x, y, z)

	dx = clamp(-gx*velocityGain*dt, f.region)
	dy = clamp(-gy*velocityGain*dt, f.region)
	dz = clamp(-gz*velocityGain*dt, f.region)
	return dx, dy, dz
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// TotalMass returns the sum of the density field, used by tests to verify
// the FTCS step's conservation invariant.
func (f *DensityField) TotalMass() float64 {
	var sum float64
	for _, v := range f.data {
		sum += v
	}
	return sum
}

// RegionSize returns the region resolution r this field was built with.
func (f *DensityField) RegionSize() float64 { return f.region }
