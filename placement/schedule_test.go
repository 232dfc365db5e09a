package placement_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mcpnr/mcpnr/netlist"
	"github.com/mcpnr/mcpnr/placement"
)

func twoMobileOneLocked() *netlist.NetlistHypergraph {
	cells := netlist.NewCellData(3)
	cells.Push(0, 0, 0, 1, 1, 1, false)
	cells.Push(10, 0, 0, 1, 1, 1, false)
	cells.Push(50, 0, 0, 1, 1, 1, true)

	signal := &netlist.Signal{ConnectedCells: []int{0, 1, 2}, MoveableCells: 2}
	return netlist.TestNew(cells, 2, []*netlist.Signal{signal})
}

func TestCenterCells_MovesMeanToRegionCenter(t *testing.T) {
	t.Parallel()

	net := twoMobileOneLocked()
	geo := placement.GeometryConfig{SizeX: 4, SizeY: 4, SizeZ: 4}

	err := placement.CenterCells{}.Apply(net, geo)
	require.NoError(t, err)

	bx, by, bz := geo.BlockExtents()
	var meanX, meanY, meanZ float64
	for i := 0; i < net.MobileCellCount; i++ {
		c := net.Cells.CenterPos(i)
		meanX += c.X
		meanY += c.Y
		meanZ += c.Z
	}
	n := float64(net.MobileCellCount)
	require.InDelta(t, bx/2.0, meanX/n, 1e-9)
	require.InDelta(t, by/2.0, meanY/n, 1e-9)
	require.InDelta(t, bz/2.0, meanZ/n, 1e-9)

	// Locked cell never moves.
	require.Equal(t, 50.0, net.Cells.X[2])
}

func TestCenterCells_EmptyMobileSetIsNoop(t *testing.T) {
	t.Parallel()

	cells := netlist.NewCellData(1)
	cells.Push(5, 5, 5, 1, 1, 1, true)
	net := netlist.TestNew(cells, 0, nil)

	err := placement.CenterCells{}.Apply(net, placement.GeometryConfig{SizeX: 4, SizeY: 4, SizeZ: 4})
	require.NoError(t, err)
	require.Equal(t, 5.0, net.Cells.X[0])
}

func TestOrchestrator_Run_AbortsOnFirstFailingStep(t *testing.T) {
	t.Parallel()

	net := twoMobileOneLocked()
	orch := placement.Orchestrator{
		Schedule: placement.Schedule{
			placement.CenterCells{},
			failingStep{},
			placement.CenterCells{},
		},
		Geometry: placement.GeometryConfig{SizeX: 4, SizeY: 4, SizeZ: 4},
	}

	err := orch.Run(net)
	require.Error(t, err)
	require.Contains(t, err.Error(), "step 1")
}

type failingStep struct{}

func (failingStep) Apply(_ *netlist.NetlistHypergraph, _ placement.GeometryConfig) error {
	return errors.New("injected failure")
}

func TestDefaultSchedule_MatchesReferenceElevenStepOrder(t *testing.T) {
	t.Parallel()

	sched := placement.DefaultSchedule()
	require.Len(t, sched, 11)
	require.IsType(t, placement.UnconstrainedAnalytical{}, sched[0])
	require.IsType(t, placement.CenterCells{}, sched[1])

	for _, i := range []int{2, 4, 6, 8, 10} {
		require.IsTypef(t, placement.Diffusion{}, sched[i], "index %d", i)
	}
	for _, i := range []int{3, 5, 7, 9} {
		require.IsTypef(t, placement.ConstrainedAnalytical{}, sched[i], "index %d", i)
	}
}

// TestDefaultSchedule_DiffusionStepsRespectStabilityBound guards against a
// regression where a default DT exceeds the FTCS stability bound dt <= 1/6
// (spec.md §4.4): an unstable default would make the whole pipeline diverge
// silently, and nothing short of checking the value itself catches that.
func TestDefaultSchedule_DiffusionStepsRespectStabilityBound(t *testing.T) {
	t.Parallel()

	const stabilityBound = 1.0 / 6.0

	sched := placement.DefaultSchedule()
	for i, step := range sched {
		d, ok := step.(placement.Diffusion)
		if !ok {
			continue
		}
		require.LessOrEqualf(t, d.DT, stabilityBound, "step %d: DT=%v exceeds stability bound", i, d.DT)
	}
}
