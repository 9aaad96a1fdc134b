package tetris

// Grid is a fixed-size boolean occupancy matrix. Row 0 is the bottom row
// and the row index grows upward; this matches the level coordinate system
// where gravity decreases the row of a falling shape.
//
// Dimensions never change after construction. Accessing a cell outside the
// grid is a programmer error and panics.
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewGrid creates a grid of the given dimensions with every cell false.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Get returns the occupancy of the cell at (row, col).
func (g *Grid) Get(row, col int) bool {
	return g.cells[row][col]
}

// Set writes the occupancy of the cell at (row, col).
func (g *Grid) Set(row, col int, v bool) {
	g.cells[row][col] = v
}

// Clear resets every cell to false in place.
func (g *Grid) Clear() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = false
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	n := NewGrid(g.rows, g.cols)
	for r := range g.cells {
		copy(n.cells[r], g.cells[r])
	}
	return n
}

// Equal reports whether two grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] {
				n++
			}
		}
	}
	return n
}
