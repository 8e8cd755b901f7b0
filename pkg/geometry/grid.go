package geometry

// CellState is the contents of a single grid cell.
type CellState int

const (
	Empty CellState = iota
	Wall
)

// Grid is a rectangular array of cells. Coordinates outside [0,Rows)x[0,Cols)
// are implicitly Wall.
type Grid struct {
	Rows, Cols int
	cells      [][]CellState
}

// NewGrid returns a Rows x Cols grid with every cell Empty.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]CellState, rows)
	for r := range cells {
		cells[r] = make([]CellState, cols)
	}
	return &Grid{Rows: rows, Cols: cols, cells: cells}
}

// InBounds reports whether p lies within the grid's dimensions.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// IsFree reports whether p is in bounds and Empty.
func (g *Grid) IsFree(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Empty
}

// SetWall marks p as Wall. No-op if p is out of bounds.
func (g *Grid) SetWall(p Position) {
	if g.InBounds(p) {
		g.cells[p.Row][p.Col] = Wall
	}
}

// SetFree marks p as Empty. No-op if p is out of bounds.
func (g *Grid) SetFree(p Position) {
	if g.InBounds(p) {
		g.cells[p.Row][p.Col] = Empty
	}
}

// State returns the cell state at p, or Wall if p is out of bounds.
func (g *Grid) State(p Position) CellState {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Row][p.Col]
}

// Neighbors returns the in-bounds orthogonal neighbors of p, regardless of
// their wall state.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range [...]Direction{Up, Down, Left, Right} {
		n := p.Step(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// FreeNeighbors returns the in-bounds, Empty orthogonal neighbors of p.
func (g *Grid) FreeNeighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range [...]Direction{Up, Down, Left, Right} {
		n := p.Step(d)
		if g.IsFree(n) {
			out = append(out, n)
		}
	}
	return out
}

// FreeCells returns every Empty position in the grid, in row-major order.
func (g *Grid) FreeCells() []Position {
	var out []Position
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.cells[r][c] == Empty {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}
