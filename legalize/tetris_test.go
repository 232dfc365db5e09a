package legalize_test

import (
	"testing"

	"github.com/mcpnr/mcpnr/legalize"
	"github.com/stretchr/testify/require"
)

func TestLegalize_NoOverlapInSameRow(t *testing.T) {
	t.Parallel()

	cells := []legalize.Cell{
		{ID: 0, X: 0.2, TierY: 0, Z: 1, SX: 2},
		{ID: 1, X: 1.0, TierY: 0, Z: 1, SX: 2},
		{ID: 2, X: 2.5, TierY: 0, Z: 1, SX: 2},
	}

	out, err := legalize.Legalize(cells, 100, 1, 6, 0)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Group by row (Y, Z) and assert intervals are disjoint.
	type interval struct{ lo, hi int }
	byRow := map[[2]int][]interval{}
	for i, p := range out {
		key := [2]int{p.Y, p.Z}
		byRow[key] = append(byRow[key], interval{lo: p.X, hi: p.X + int(cells[i].SX)})
	}
	for _, ivs := range byRow {
		for a := 0; a < len(ivs); a++ {
			for b := a + 1; b < len(ivs); b++ {
				disjoint := ivs[a].hi <= ivs[b].lo || ivs[b].hi <= ivs[a].lo
				require.True(t, disjoint, "intervals overlap: %+v %+v", ivs[a], ivs[b])
			}
		}
	}
}

func TestLegalize_LockedCellPlacedAtStatedPosition(t *testing.T) {
	t.Parallel()

	cells := []legalize.Cell{
		{ID: 0, Locked: true, LockedX: 5, LockedY: 0, LockedZ: 0, SX: 1},
	}

	out, err := legalize.Legalize(cells, 100, 1, 6, 0)
	require.NoError(t, err)
	require.Equal(t, legalize.Placed{X: 5, Y: 0, Z: 0}, out[0])
}

func TestLegalize_NoRowFitsRejectedRegion(t *testing.T) {
	t.Parallel()

	cells := []legalize.Cell{
		{ID: 0, X: 99, TierY: 0, Z: 0, SX: 5},
	}

	_, err := legalize.Legalize(cells, 100, 1, 6, 0)
	require.ErrorIs(t, err, legalize.ErrNoRowFits)
}
