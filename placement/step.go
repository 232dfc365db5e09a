package placement

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mcpnr/mcpnr/decomp"
	"github.com/mcpnr/mcpnr/diffusion"
	"github.com/mcpnr/mcpnr/netlist"
)

// Step is one stage of the placement schedule. Each step reads and mutates
// the hypergraph's continuous mobile-cell positions; any step failure
// aborts the whole schedule with context attached.
type Step interface {
	Apply(net *netlist.NetlistHypergraph, geo GeometryConfig) error
}

// CenterCells offsets all mobile cells so their mean position equals the
// region center.
type CenterCells struct{}

// Apply implements Step.
func (CenterCells) Apply(net *netlist.NetlistHypergraph, geo GeometryConfig) error {
	if net.MobileCellCount == 0 {
		return nil
	}

	var meanX, meanY, meanZ float64
	for i := 0; i < net.MobileCellCount; i++ {
		c := net.Cells.CenterPos(i)
		meanX += c.X
		meanY += c.Y
		meanZ += c.Z
	}
	n := float64(net.MobileCellCount)
	meanX /= n
	meanY /= n
	meanZ /= n

	bx, by, bz := geo.BlockExtents()
	offsetX := bx/2.0 - meanX
	offsetY := by/2.0 - meanY
	offsetZ := bz/2.0 - meanZ

	for i := 0; i < net.MobileCellCount; i++ {
		net.Cells.X[i] += offsetX
		net.Cells.Y[i] += offsetY
		net.Cells.Z[i] += offsetZ
	}

	logrus.WithFields(logrus.Fields{"offset_x": offsetX, "offset_y": offsetY, "offset_z": offsetZ}).
		Debug("placement: center_cells")
	return nil
}

// UnconstrainedAnalytical runs an initial ThresholdCrossover(Clique,
// MoveableStar) solve, cheap for small nets and scalable for large ones.
type UnconstrainedAnalytical struct {
	CliqueThreshold int
}

// Apply implements Step.
func (s UnconstrainedAnalytical) Apply(net *netlist.NetlistHypergraph, geo GeometryConfig) error {
	strategy := decomp.NewThresholdCrossover(decomp.NewClique(), decomp.NewMoveableStar(), s.CliqueThreshold)
	if err := decomp.Execute(strategy, net); err != nil {
		return errors.Wrap(err, "placement: UnconstrainedAnalytical")
	}
	return nil
}

// Diffusion splats cell volume onto a density field, relaxes it for
// Iterations FTCS steps, then advects each mobile cell by the resulting
// velocity field.
type Diffusion struct {
	RegionSize float64
	Iterations int
	DT         float64
}

// Apply implements Step.
func (s Diffusion) Apply(net *netlist.NetlistHypergraph, geo GeometryConfig) error {
	bx, by, bz := geo.BlockExtents()
	field, err := diffusion.NewDensityField(bx, by, bz, s.RegionSize)
	if err != nil {
		return errors.Wrap(err, "placement: Diffusion allocate field")
	}

	for i := 0; i < net.MobileCellCount; i++ {
		pos := netlist.Vector3{X: net.Cells.X[i], Y: net.Cells.Y[i], Z: net.Cells.Z[i]}
		size := netlist.Vector3{X: net.Cells.SX[i], Y: net.Cells.SY[i], Z: net.Cells.SZ[i]}
		field.Splat(pos, size)
	}

	for iter := 0; iter < s.Iterations; iter++ {
		field.StepTime(s.DT)
	}
	logrus.WithFields(logrus.Fields{"iterations": s.Iterations, "dt": s.DT}).Debug("placement: diffusion steps")

	nx, ny, nz := field.Dims()
	for i := 0; i < net.MobileCellCount; i++ {
		gx := clampIndex(int(net.Cells.X[i]/s.RegionSize), nx)
		gy := clampIndex(int(net.Cells.Y[i]/s.RegionSize), ny)
		gz := clampIndex(int(net.Cells.Z[i]/s.RegionSize), nz)

		dx, dy, dz := field.Advect(gx, gy, gz, s.DT, geo.VelocityGain)
		net.Cells.X[i] += dx
		net.Cells.Y[i] += dy
		net.Cells.Z[i] += dz
	}

	return nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// ConstrainedAnalytical repeats a ThresholdCrossover(Clique, AnchoredByNet)
// solve Iterations times, recovering wirelength quality around the net
// anchors diffusion left behind.
type ConstrainedAnalytical struct {
	CliqueThreshold int
	Iterations      int
}

// Apply implements Step.
func (s ConstrainedAnalytical) Apply(net *netlist.NetlistHypergraph, geo GeometryConfig) error {
	for iter := 0; iter < s.Iterations; iter++ {
		strategy := decomp.NewThresholdCrossover(decomp.NewClique(), decomp.NewAnchoredByNet(), s.CliqueThreshold)
		if err := decomp.Execute(strategy, net); err != nil {
			return errors.Wrapf(err, "placement: ConstrainedAnalytical iteration %d", iter)
		}
	}
	return nil
}
