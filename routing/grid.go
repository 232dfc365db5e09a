package routing

// RouteID identifies one net's route within a DetailRouter's grid.
type RouteID int

// GridCellState distinguishes the three ways a grid cell may be occupied.
type GridCellState int

const (
	// CellFree means nothing has claimed this cell.
	CellFree GridCellState = iota
	// CellBlocked means the cell is permanently unavailable (e.g. part of
	// a placed cell's body).
	CellBlocked
	// CellOccupied means a route has claimed this cell, entering from
	// OccupiedDirection, and belongs to OccupiedRoute.
	CellOccupied
)

// GridCell is one cell of the routing grid.
type GridCell struct {
	State             GridCellState
	OccupiedDirection Direction
	OccupiedRoute     RouteID
}
