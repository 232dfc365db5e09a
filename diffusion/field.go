package diffusion

import (
	"fmt"

	"github.com/mcpnr/mcpnr/netlist"
)

// DensityField is a 3D array of floats sized (sizeX/r, sizeY/r, sizeZ/r)
// for region size r, modeling cell volume as a fluid density on a coarse
// grid. Conserves total mass (sum) across FTCS time steps in the interior.
type DensityField struct {
	nx, ny, nz int
	region     float64
	data       []float64
}

// NewDensityField allocates a zeroed density field covering designX,
// designY, designZ at region resolution r. Returns ErrRegionSizeNotExact
// if r does not divide each extent exactly.
func NewDensityField(designX, designY, designZ, r float64) (*DensityField, error) {
	nx, err := exactDiv(designX, r)
	if err != nil {
		return nil, err
	}
	ny, err := exactDiv(designY, r)
	if err != nil {
		return nil, err
	}
	nz, err := exactDiv(designZ, r)
	if err != nil {
		return nil, err
	}

	return &DensityField{
		nx: nx, ny: ny, nz: nz,
		region: r,
		data:   make([]float64, nx*ny*nz),
	}, nil
}

func exactDiv(extent, r float64) (int, error) {
	q := extent / r
	n := int(q)
	if float64(n) != q {
		return 0, fmt.Errorf("%w: extent=%g region=%g", ErrRegionSizeNotExact, extent, r)
	}
	return n, nil
}

// Dims returns the field's grid dimensions.
func (f *DensityField) Dims() (nx, ny, nz int) { return f.nx, f.ny, f.nz }

func (f *DensityField) idx(x, y, z int) int { return (x*f.ny+y)*f.nz + z }

func (f *DensityField) inBounds(x, y, z int) bool {
	return x >= 0 && x < f.nx && y >= 0 && y < f.ny && z >= 0 && z < f.nz
}

// At returns the density at grid cell (x, y, z).
func (f *DensityField) At(x, y, z int) float64 {
	return f.data[f.idx(x, y, z)]
}

// Add accumulates delta into the density at grid cell (x, y, z).
func (f *DensityField) Add(x, y, z int, delta float64) {
	f.data[f.idx(x, y, z)] += delta
}

// Splat deposits a cell's volume into every region it overlaps, weighted by
// the intersection length along each axis; negative coordinates clamp to
// zero. Total deposited mass equals the cell's volume (ignoring clamping at
// the negative boundary).
func (f *DensityField) Splat(cell netlist.Vector3, size netlist.Vector3) {
	xLo, xHi := splatRange(cell.X, size.X, f.region, f.nx)
	yLo, yHi := splatRange(cell.Y, size.Y, f.region, f.ny)
	zLo, zHi := splatRange(cell.Z, size.Z, f.region, f.nz)

	for x := xLo; x < xHi; x++ {
		wx := overlap(cell.X, cell.X+size.X, float64(x)*f.region, float64(x+1)*f.region)
		for y := yLo; y < yHi; y++ {
			wy := overlap(cell.Y, cell.Y+size.Y, float64(y)*f.region, float64(y+1)*f.region)
			for z := zLo; z < zHi; z++ {
				wz := overlap(cell.Z, cell.Z+size.Z, float64(z)*f.region, float64(z+1)*f.region)
				f.Add(x, y, z, wx*wy*wz)
			}
		}
	}
}

// splatRange returns the half-open grid-index range [lo, hi) a cell's span
// along one axis overlaps, clamped to [0, n).
func splatRange(pos, size, region float64, n int) (lo, hi int) {
	lo = int(pos / region)
	if pos < 0 {
		lo = 0
	}
	hi = int((pos+size)/region) + 1
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

// overlap returns the length of the intersection of [aLo,aHi) and
// [bLo,bHi), clamped to zero when disjoint.
func overlap(aLo, aHi, bLo, bHi float64) float64 {
	lo := aLo
	if bLo > lo {
		lo = bLo
	}
	hi := aHi
	if bHi < hi {
		hi = bHi
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}
