package tetris

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	EngineTicks int
	State       string
	Rows        int
	Cols        int
	LockedCells int

	// Falling shape; zero-valued when absent (before the first spawn).
	ShapeRow    int
	ShapeCol    int
	ShapeWidth  int
	ShapeHeight int

	LevelHash uint64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        g.tick,
		EngineTicks: g.engineTicks,
		State:       g.engine.State().String(),
		Rows:        g.engine.Level().Rows(),
		Cols:        g.engine.Level().Cols(),
		LockedCells: g.engine.Level().Count(),
		LevelHash:   hashGrid(g.engine.Level()),
	}

	if s := g.engine.falling; s != nil {
		snap.ShapeRow = s.row
		snap.ShapeCol = s.col
		snap.ShapeWidth = s.shape.Width()
		snap.ShapeHeight = s.shape.Height()
	}
	return snap
}

// hashGrid folds the cells of a grid into a position-sensitive hash.
func hashGrid(g *Grid) uint64 {
	h := uint64(1469598103934665603) // FNV offset basis
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			bit := uint64(0)
			if g.Get(r, c) {
				bit = 1
			}
			h ^= bit + uint64(r)*31 + uint64(c)
			h *= 1099511628211
		}
	}
	return h
}
