package legalize

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

const (
	// TierWidth scales the tier-distance term of the row-selection score;
	// rows in a different tier than the cell's current one are penalized
	// by this many "x units" per tier of separation. Matches BLOCKS_PER_TIER.
	TierWidth = 16
	// ZRowBlocks is the width, in blocks along Z, of one legalization row.
	ZRowBlocks = 6
)

// Cell is one legalizer input: a continuous position plus the tier its
// current Y coordinate falls in, and (if locked) the already-decided
// integer position it must occupy.
type Cell struct {
	ID     int
	X      float64
	TierY  int
	Z      float64
	SX     float64
	Locked bool

	// LockedX/Y/Z are only meaningful when Locked is true.
	LockedX, LockedY, LockedZ int
}

// Placed is one legalized output position, indexed by the input cell's ID.
type Placed struct {
	X, Y, Z int
}

// row tracks the minimum X at which the next cell in this (tierY, zRow) row
// may be placed.
type row struct {
	tierY, zRow int
	minX        float64
}

// Legalize converts cells' continuous positions into non-overlapping
// integer positions. numTiers and sizeZBlocks bound the valid rows;
// regionSizeX bounds how far right a cell may be placed; leftLimit is the
// horizontal backtrack budget (how far left of a cell's current X a row's
// min_x may still accept it).
//
// Cells are processed in x-ascending order, locked cells first among ties,
// sorted via a permutation array (not the input slice) so callers relying
// on index-stable cell metadata (Invariant C1) are unaffected. The output
// buffer is pre-filled with a sentinel and a coverage assertion is run at
// the end, in place of the unsafe out-of-order write the original performs.
func Legalize(cells []Cell, regionSizeX float64, numTiers, sizeZBlocks int, leftLimit float64) ([]Placed, error) {
	numZRows := sizeZBlocks / ZRowBlocks

	order := make([]int, len(cells))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ca, cb := cells[order[a]], cells[order[b]]
		if ca.X != cb.X {
			return ca.X < cb.X
		}
		return ca.Locked && !cb.Locked
	})

	rows := make(map[[2]int]*row)
	getRow := func(tierY, zRow int) *row {
		key := [2]int{tierY, zRow}
		r, ok := rows[key]
		if !ok {
			r = &row{tierY: tierY, zRow: zRow}
			rows[key] = r
		}
		return r
	}

	out := make([]Placed, len(cells))
	written := make([]bool, len(cells))
	for i := range out {
		out[i] = Placed{X: math.MinInt32, Y: math.MinInt32, Z: math.MinInt32}
	}

	for _, idx := range order {
		c := cells[idx]

		if c.Locked {
			out[idx] = Placed{X: c.LockedX, Y: c.LockedY, Z: c.LockedZ}
			written[idx] = true
			zRow := c.LockedZ / ZRowBlocks
			r := getRow(c.TierY, zRow)
			candidate := float64(c.LockedX) + c.SX
			if candidate > r.minX {
				r.minX = candidate
			}
			continue
		}

		bestScore := math.Inf(1)
		var bestRow *row
		var bestX float64
		found := false

		for tierY := 0; tierY < numTiers; tierY++ {
			for zRow := 0; zRow < numZRows; zRow++ {
				r := getRow(tierY, zRow)
				x := c.X - leftLimit
				if r.minX > x {
					x = r.minX
				}
				if x+c.SX > regionSizeX {
					continue
				}
				score := math.Abs(x-c.X) + math.Abs(float64(tierY-c.TierY))*TierWidth + math.Abs(float64(zRow*ZRowBlocks)-c.Z)*ZRowBlocks
				if score < bestScore {
					bestScore = score
					bestRow = r
					bestX = x
					found = true
				}
			}
		}

		if !found {
			return nil, errors.Wrapf(ErrNoRowFits, "cell id %d", c.ID)
		}

		out[idx] = Placed{X: int(bestX), Y: bestRow.tierY, Z: bestRow.zRow * ZRowBlocks}
		written[idx] = true
		bestRow.minX = bestX + c.SX
	}

	for i, ok := range written {
		if !ok {
			return nil, errors.Wrapf(ErrIncompleteCoverage, "cell index %d", i)
		}
	}

	return out, nil
}
