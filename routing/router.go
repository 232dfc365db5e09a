package routing

import (
	"container/heap"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DetailRouter owns a fixed-size 3D routing grid and the per-net search
// state used to connect driver pins to sink pins within it.
type DetailRouter struct {
	sizeX, sizeY, sizeZ int

	zStride, yStride int

	grid      []GridCell
	scoreGrid []uint32

	boundsMin, boundsMax GridCellPosition
}

// NewDetailRouter allocates a grid of the given extents, every cell
// initially free.
func NewDetailRouter(sizeX, sizeY, sizeZ int) *DetailRouter {
	capacity := sizeX * sizeY * sizeZ
	return &DetailRouter{
		sizeX: sizeX, sizeY: sizeY, sizeZ: sizeZ,
		zStride: sizeX,
		yStride: sizeX * sizeZ,
		grid:    make([]GridCell, capacity),
		scoreGrid: make([]uint32, capacity),
	}
}

// GetCell returns the cell at pos.
func (r *DetailRouter) GetCell(pos GridCellPosition) (GridCell, error) {
	idx, err := r.posToIdx(pos)
	if err != nil {
		return GridCell{}, err
	}
	return r.grid[idx], nil
}

// SetCell overwrites the cell at pos, e.g. to mark a placed cell's body as
// CellBlocked before routing begins.
func (r *DetailRouter) SetCell(pos GridCellPosition, cell GridCell) error {
	idx, err := r.posToIdx(pos)
	if err != nil {
		return err
	}
	r.grid[idx] = cell
	return nil
}

func (r *DetailRouter) posToIdx(pos GridCellPosition) (int, error) {
	if pos.X < 0 || pos.Y < 0 || pos.Z < 0 ||
		pos.X >= r.sizeX || pos.Y >= r.sizeY || pos.Z >= r.sizeZ {
		return 0, errors.Wrapf(ErrOutOfBounds, "%+v exceeds (%d, %d, %d)", pos, r.sizeX, r.sizeY, r.sizeZ)
	}
	return pos.X + pos.Z*r.zStride + pos.Y*r.yStride, nil
}

func (r *DetailRouter) isInBounds(pos GridCellPosition) bool {
	return pos.InBoundingBox(r.boundsMin, r.boundsMax)
}

func (r *DetailRouter) isBlocked(pos GridCellPosition, id RouteID) bool {
	cell, err := r.GetCell(pos)
	if err != nil {
		return true
	}
	switch cell.State {
	case CellFree:
		return false
	case CellBlocked:
		return true
	case CellOccupied:
		return cell.OccupiedRoute != id
	default:
		return true
	}
}

// forEachNeighbor invokes f for every in-grid, unblocked neighbor of pos
// reachable without doubling back through illegalDirection.
func (r *DetailRouter) forEachNeighbor(pos GridCellPosition, illegalDirection Direction, id RouteID, f func(neighbor GridCellPosition, moveDirection Direction) error) error {
	for _, d := range AllDirections {
		if d == illegalDirection {
			continue
		}
		neighbor := pos.Offset(d)
		if r.isBlocked(neighbor, id) {
			continue
		}
		if err := f(neighbor, d); err != nil {
			return err
		}
	}
	return nil
}

// routeQueueItem is one entry in the search priority queue: lower cost
// pops first, with an (x, y) tie-break for determinism.
type routeQueueItem struct {
	cost             uint32
	pos              GridCellPosition
	illegalDirection Direction
}

type routeQueue []routeQueueItem

func (q routeQueue) Len() int { return len(q) }
func (q routeQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	if q[i].pos.X != q[j].pos.X {
		return q[i].pos.X < q[j].pos.X
	}
	return q[i].pos.Y < q[j].pos.Y
}
func (q routeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *routeQueue) Push(x any)   { *q = append(*q, x.(routeQueueItem)) }
func (q *routeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Route searches for a lowest-cost path from driver to sink and, if found,
// backtracks to materialize it, marking every traversed cell as occupied
// by id. The search region is the driver/sink bounding box expanded by 2
// cells in every direction.
func (r *DetailRouter) Route(driver GridCellPosition, driverDirection Direction, sink GridCellPosition, sinkDirection Direction, id RouteID) error {
	logrus.WithFields(logrus.Fields{"route_id": id, "driver": driver, "sink": sink}).Info("routing: begin route")

	for i := range r.scoreGrid {
		r.scoreGrid[i] = math.MaxUint32
	}

	r.boundsMin = GridCellPosition{
		X: maxInt(minInt(driver.X, sink.X)-2, 0),
		Y: maxInt(minInt(driver.Y, sink.Y)-2, 0),
		Z: maxInt(minInt(driver.Z, sink.Z)-2, 0),
	}
	// boundsMax is exclusive, so +3 keeps max+2 inside the box.
	r.boundsMax = GridCellPosition{
		X: minInt(maxInt(driver.X, sink.X)+3, r.sizeX),
		Y: minInt(maxInt(driver.Y, sink.Y)+3, r.sizeY),
		Z: minInt(maxInt(driver.Z, sink.Z)+3, r.sizeZ),
	}

	// Start the driver one cell away in the direction that will cause
	// entry into the driver; start the sink one cell away in the
	// direction the pin requests.
	driverStart := driver.Offset(driverDirection.Mirror())
	sinkStart := sink.Offset(sinkDirection)

	if err := r.checkPinReachable(driverStart, id, "driver"); err != nil {
		return err
	}

	// Mark the driver position as occupied immediately. This terminates
	// the search early and someone needs to claim the cell anyway.
	if err := r.SetCell(driverStart, GridCell{State: CellOccupied, OccupiedDirection: driverDirection, OccupiedRoute: id}); err != nil {
		return errors.Wrap(err, "routing: mark driver pin")
	}

	if err := r.checkPinReachable(sinkStart, id, "sink"); err != nil {
		return err
	}

	q := &routeQueue{{cost: 0, pos: sinkStart, illegalDirection: sinkDirection.Mirror()}}
	heap.Init(q)

	for q.Len() > 0 {
		item := heap.Pop(q).(routeQueueItem)

		idx, err := r.posToIdx(item.pos)
		if err != nil {
			return errors.Wrap(err, "routing: indexing popped item")
		}
		if item.cost >= r.scoreGrid[idx] {
			continue
		}
		r.scoreGrid[idx] = item.cost

		cell := r.grid[idx]
		if cell.State == CellOccupied && cell.OccupiedRoute == id {
			return r.backtrack(sinkStart, item.pos, item.illegalDirection, id)
		}

		err = r.forEachNeighbor(item.pos, item.illegalDirection, id, func(neighbor GridCellPosition, moveDirection Direction) error {
			if !r.isInBounds(neighbor) {
				return nil
			}
			nIdx, err := r.posToIdx(neighbor)
			if err != nil {
				return errors.Wrap(err, "routing: indexing neighbor")
			}

			ncell := r.grid[nIdx]
			var stepCost uint32
			switch ncell.State {
			case CellFree:
				stepCost = 100
			case CellBlocked:
				stepCost = 10_000_000
			case CellOccupied:
				if ncell.OccupiedRoute != id {
					return nil // blocked by a different net, but not an error
				}
				stepCost = 25
			}
			if moveDirection == Up || moveDirection == Down {
				stepCost += 1000
			}

			cost := item.cost + stepCost
			if cost < r.scoreGrid[nIdx] {
				heap.Push(q, routeQueueItem{cost: cost, pos: neighbor, illegalDirection: moveDirection.Mirror()})
			}
			return nil
		})
		if err != nil {
			return errors.Wrap(err, "routing: forward search neighbors")
		}
	}

	logrus.WithFields(logrus.Fields{"route_id": id}).Debug("routing: search exhausted, unroutable")
	return errors.Wrapf(ErrUnroutable, "net %d from %+v to %+v", id, driver, sink)
}

func (r *DetailRouter) checkPinReachable(pos GridCellPosition, id RouteID, label string) error {
	cell, err := r.GetCell(pos)
	if err != nil {
		return errors.Wrapf(err, "routing: %s pin offset", label)
	}
	switch cell.State {
	case CellFree:
		return nil
	case CellBlocked:
		return errors.Wrapf(ErrUnroutable, "%s pin points directly at an unroutable cell", label)
	case CellOccupied:
		if cell.OccupiedRoute != id {
			return errors.Wrapf(ErrUnroutable, "%s pin points directly at a cell occupied by another route", label)
		}
	}
	return nil
}

// backtrack walks from firstNetTouch back to sink by always stepping to the
// neighbor with strictly the lowest recorded score, marking every cell it
// passes through as occupied by id. Reports ErrBacktrackStalled if a step
// fails to make progress.
func (r *DetailRouter) backtrack(sink, firstNetTouch GridCellPosition, startDirection Direction, id RouteID) error {
	minDirection := startDirection.Mirror()
	minPosition := firstNetTouch
	minIdx, err := r.posToIdx(minPosition)
	if err != nil {
		return err
	}
	minCost := r.scoreGrid[minIdx]
	lastMinPosition := minPosition

	for minPosition != sink {
		err := r.forEachNeighbor(minPosition, minDirection, id, func(neighbor GridCellPosition, moveDirection Direction) error {
			nIdx, err := r.posToIdx(neighbor)
			if err != nil {
				return err
			}
			if r.scoreGrid[nIdx] < minCost {
				minCost = r.scoreGrid[nIdx]
				minPosition = neighbor
				// Mirror because this step moves toward the sink, but the
				// recorded direction describes the path away from it.
				minDirection = moveDirection.Mirror()
			}
			return nil
		})
		if err != nil {
			return errors.Wrap(err, "routing: backtrack neighbor scan")
		}

		idx, err := r.posToIdx(minPosition)
		if err != nil {
			return err
		}
		r.grid[idx] = GridCell{State: CellOccupied, OccupiedDirection: minDirection, OccupiedRoute: id}

		if lastMinPosition == minPosition {
			return errors.Wrapf(ErrBacktrackStalled, "net %d at %+v", id, minPosition)
		}
		lastMinPosition = minPosition
	}

	return nil
}

// RipUp frees every cell currently occupied by id, allowing it to be
// rerouted.
func (r *DetailRouter) RipUp(id RouteID) {
	for i, cell := range r.grid {
		if cell.State == CellOccupied && cell.OccupiedRoute == id {
			r.grid[i] = GridCell{}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
