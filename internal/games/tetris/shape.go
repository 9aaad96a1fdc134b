package tetris

// Shape is a piece you can control in a tetris level. A true cell means the
// shape occupies that position of its own bounding grid. The grid uses the
// same bottom-up row order as the level.
type Shape struct {
	grid *Grid
}

// newShape builds a shape from a literal occupancy table, bottom row first.
func newShape(rows [][]bool) Shape {
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		for c, v := range row {
			g.Set(r, c, v)
		}
	}
	return Shape{grid: g}
}

// Width returns the current width of the shape's bounding grid.
func (s *Shape) Width() int {
	return s.grid.Cols()
}

// Height returns the current height of the shape's bounding grid.
func (s *Shape) Height() int {
	return s.grid.Rows()
}

// Cell returns the occupancy at (row, col) of the shape's bounding grid.
func (s *Shape) Cell(row, col int) bool {
	return s.grid.Get(row, col)
}

// Clone returns an independent copy of the shape.
func (s *Shape) Clone() Shape {
	return Shape{grid: s.grid.Clone()}
}

// Equal reports whether two shapes occupy the same cells.
func (s *Shape) Equal(other Shape) bool {
	return s.grid.Equal(other.grid)
}

// Count returns the number of occupied cells. Rotation preserves it.
func (s *Shape) Count() int {
	return s.grid.Count()
}

// Rotate rotates the shape clockwise by 90°, replacing the backing grid.
// For a shape of height H and width W the result has height W and width H,
// with rotated (r, c) taken from the original (c, H-r-1). It is a pure
// geometric transform with no per-shape special casing.
func (s *Shape) Rotate() {
	rotated := NewGrid(s.Width(), s.Height())
	for r := 0; r < rotated.Rows(); r++ {
		for c := 0; c < rotated.Cols(); c++ {
			rotated.Set(r, c, s.grid.Get(c, rotated.Rows()-r-1))
		}
	}
	s.grid = rotated
}
