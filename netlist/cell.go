package netlist

// Vector3 is a plain 3-component float vector, used for cell centers and
// anchor positions. It intentionally carries no methods beyond arithmetic
// helpers needed by the placer passes.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// CellData is a structure-of-arrays container for placeable cells: every
// field is a parallel slice indexed by cell id. Kept SoA (rather than one
// struct per cell) so the solver and diffusion passes can stream whole
// columns without pointer-chasing.
type CellData struct {
	X, Y, Z    []float64 // minimum corner of the cell box
	SX, SY, SZ []float64 // box size along each axis
	PosLocked  []bool    // true if the cell may not move
}

// NewCellData allocates a CellData arena with the given capacity hint.
func NewCellData(capacity int) *CellData {
	return &CellData{
		X:         make([]float64, 0, capacity),
		Y:         make([]float64, 0, capacity),
		Z:         make([]float64, 0, capacity),
		SX:        make([]float64, 0, capacity),
		SY:        make([]float64, 0, capacity),
		SZ:        make([]float64, 0, capacity),
		PosLocked: make([]bool, 0, capacity),
	}
}

// Len returns the number of cells currently stored.
func (c *CellData) Len() int { return len(c.X) }

// Push appends one cell's geometry to the arena.
func (c *CellData) Push(x, y, z, sx, sy, sz float64, locked bool) {
	c.X = append(c.X, x)
	c.Y = append(c.Y, y)
	c.Z = append(c.Z, z)
	c.SX = append(c.SX, sx)
	c.SY = append(c.SY, sy)
	c.SZ = append(c.SZ, sz)
	c.PosLocked = append(c.PosLocked, locked)
}

// Swap exchanges the data of cells i and j in every parallel slice.
func (c *CellData) Swap(i, j int) {
	c.X[i], c.X[j] = c.X[j], c.X[i]
	c.Y[i], c.Y[j] = c.Y[j], c.Y[i]
	c.Z[i], c.Z[j] = c.Z[j], c.Z[i]
	c.SX[i], c.SX[j] = c.SX[j], c.SX[i]
	c.SY[i], c.SY[j] = c.SY[j], c.SY[i]
	c.SZ[i], c.SZ[j] = c.SZ[j], c.SZ[i]
	c.PosLocked[i], c.PosLocked[j] = c.PosLocked[j], c.PosLocked[i]
}

// CenterPos returns the geometric center of cell i.
func (c *CellData) CenterPos(i int) Vector3 {
	return Vector3{
		X: c.X[i] + c.SX[i]/2.0,
		Y: c.Y[i] + c.SY[i]/2.0,
		Z: c.Z[i] + c.SZ[i]/2.0,
	}
}

// CellMetadata preserves the original attributes, connections, and
// parameters of one cell, enough to reconstruct it in the placed design.
type CellMetadata struct {
	Type       string
	Attributes map[string]string
	Connection map[string][]int // port name -> signal ids (or negative for constant bits)
	Parameter  map[string]string
}
