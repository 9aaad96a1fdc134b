package tetris

import "testing"

// squareRand makes the factory always produce the 2x2 square, which keeps
// positions in the scenarios below easy to reason about.
func squareRand() Rand {
	return &seqRand{vals: []int{0}}
}

func TestEngineInitialState(t *testing.T) {
	e := NewEngine(6, 6, squareRand())

	if e.State() != StateInit {
		t.Errorf("State() = %v, expected init", e.State())
	}
	if e.Level().Count() != 0 {
		t.Error("A new engine should have an empty level")
	}
	if e.falling != nil {
		t.Error("No shape should exist before the game starts")
	}
}

func TestEngineStartSpawnsShape(t *testing.T) {
	e := NewEngine(6, 6, squareRand())
	e.HandleEvent(EventStart)

	if e.State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", e.State())
	}
	if e.falling == nil {
		t.Fatal("Start should spawn a shape")
	}
	// Top-aligned, horizontally centered: a 2x2 square in a 6x6 level.
	if e.falling.row != 4 || e.falling.col != 3 {
		t.Errorf("Spawn position = (%d, %d), expected (4, 3)", e.falling.row, e.falling.col)
	}
}

func TestEngineEventsIgnoredBeforeStart(t *testing.T) {
	e := NewEngine(6, 6, squareRand())

	for _, ev := range []Event{EventLeft, EventRight, EventRotate, EventPause} {
		if !e.HandleEvent(ev) {
			t.Errorf("HandleEvent(%d) should return true", ev)
		}
	}
	if e.State() != StateInit {
		t.Errorf("State() = %v, expected init", e.State())
	}
}

func TestEngineQuitEvent(t *testing.T) {
	e := NewEngine(6, 6, squareRand())
	e.HandleEvent(EventStart)

	if e.HandleEvent(EventQuit) {
		t.Error("HandleEvent(EventQuit) should return false")
	}
	if e.State() != StatePlaying {
		t.Error("Quit must not change the game state")
	}
}

func TestEnginePauseResume(t *testing.T) {
	e := NewEngine(6, 6, squareRand())
	e.HandleEvent(EventStart)
	e.level.Set(0, 0, true)

	e.HandleEvent(EventPause)
	if e.State() != StatePaused {
		t.Fatalf("State() = %v, expected paused", e.State())
	}

	// Nothing moves while paused.
	row := e.falling.row
	e.Tick()
	e.HandleEvent(EventLeft)
	if e.falling.row != row || e.falling.col != 3 {
		t.Error("The shape must not move while paused")
	}

	e.HandleEvent(EventStart)
	if e.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing after resume", e.State())
	}
	if !e.level.Get(0, 0) {
		t.Error("Resuming must not reset the level")
	}
}

func TestEngineMoveStopsAtWalls(t *testing.T) {
	e := NewEngine(4, 4, squareRand())
	e.HandleEvent(EventStart) // square at col 2

	for i := 0; i < 5; i++ {
		e.HandleEvent(EventLeft)
	}
	if e.falling.col != 0 {
		t.Errorf("col = %d after moving left into the wall, expected 0", e.falling.col)
	}

	for i := 0; i < 5; i++ {
		e.HandleEvent(EventRight)
	}
	// A 2-wide shape in a 4-wide level may touch the rightmost column.
	if e.falling.col != 2 {
		t.Errorf("col = %d after moving right into the wall, expected 2", e.falling.col)
	}
}

func TestEngineGravityAndLock(t *testing.T) {
	e := NewEngine(4, 4, squareRand())
	e.HandleEvent(EventStart) // square at (2, 2)

	e.Tick()
	if e.falling.row != 1 {
		t.Errorf("row = %d after one tick, expected 1", e.falling.row)
	}
	e.Tick()
	if e.falling.row != 0 {
		t.Errorf("row = %d after two ticks, expected 0", e.falling.row)
	}

	// On the floor: the next tick locks the shape and spawns a new one.
	e.Tick()
	for _, pos := range [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}} {
		if !e.level.Get(pos[0], pos[1]) {
			t.Errorf("Level cell (%d, %d) should be locked", pos[0], pos[1])
		}
	}
	if e.level.Count() != 4 {
		t.Errorf("Level has %d locked cells, expected 4", e.level.Count())
	}
	if e.falling == nil || e.falling.row != 2 || e.falling.col != 2 {
		t.Error("A new shape should spawn at the top after locking")
	}
	if e.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing", e.State())
	}
}

func TestEngineRowElimination(t *testing.T) {
	e := NewEngine(4, 4, squareRand())
	e.HandleEvent(EventStart)

	// Drop the first square on the right half.
	e.Tick()
	e.Tick()
	e.Tick() // locks at rows 0-1, cols 2-3; spawns the next square

	// Steer the second square to the left half and drop it.
	e.HandleEvent(EventLeft)
	e.HandleEvent(EventLeft)
	e.Tick()
	e.Tick()
	e.Tick() // locks at rows 0-1, cols 0-1; both rows complete

	if e.level.Count() != 0 {
		t.Errorf("Level has %d locked cells after clearing two rows, expected 0", e.level.Count())
	}
	if e.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing", e.State())
	}
}

func TestEngineSquareFillsNarrowLevel(t *testing.T) {
	// A square spanning the full width of a 2-column level: locking it
	// completes the bottom rows and the same tick clears them.
	e := NewEngine(4, 2, squareRand())
	e.state = StatePlaying
	e.falling = &fallingShape{shape: e.factory.Create(), row: 2, col: 0}

	e.Tick()
	e.Tick()
	if e.falling.row != 0 {
		t.Fatalf("row = %d after two ticks, expected 0", e.falling.row)
	}

	e.Tick()
	if e.level.Count() != 0 {
		t.Errorf("Level has %d locked cells, expected the full rows cleared", e.level.Count())
	}
}

func TestEngineEliminateRowsShiftsDown(t *testing.T) {
	e := NewEngine(5, 3, squareRand())
	// Full bottom row, partial rows above.
	for c := 0; c < 3; c++ {
		e.level.Set(0, c, true)
	}
	e.level.Set(1, 0, true)
	e.level.Set(1, 2, true)
	e.level.Set(2, 1, true)

	if !e.eliminateRows() {
		t.Fatal("eliminateRows() should report a removed row")
	}

	if e.level.Rows() != 5 || e.level.Cols() != 3 {
		t.Error("Elimination must not change the level dimensions")
	}
	wantRow0 := []bool{true, false, true}
	wantRow1 := []bool{false, true, false}
	for c := 0; c < 3; c++ {
		if e.level.Get(0, c) != wantRow0[c] {
			t.Errorf("Row 0 col %d = %v, expected %v", c, e.level.Get(0, c), wantRow0[c])
		}
		if e.level.Get(1, c) != wantRow1[c] {
			t.Errorf("Row 1 col %d = %v, expected %v", c, e.level.Get(1, c), wantRow1[c])
		}
	}
	for r := 2; r < 5; r++ {
		for c := 0; c < 3; c++ {
			if e.level.Get(r, c) {
				t.Errorf("Row %d should be vacated", r)
			}
		}
	}
}

func TestEngineEliminateRowsNoFullRows(t *testing.T) {
	e := NewEngine(4, 3, squareRand())
	e.level.Set(0, 0, true)
	e.level.Set(1, 2, true)
	before := e.level.Clone()

	if e.eliminateRows() {
		t.Error("eliminateRows() should report nothing removed")
	}
	if !e.level.Equal(before) {
		t.Error("Elimination without full rows must not change the level")
	}
}

func TestEngineRotateRejectedAtWall(t *testing.T) {
	// The stick spawns upright and cannot lie down in a 4-wide level when
	// its left edge sits at the center column.
	e := NewEngine(4, 4, &seqRand{vals: []int{1}})
	e.HandleEvent(EventStart) // 1x4 stick at (0, 2)

	e.HandleEvent(EventRotate)
	if e.falling.shape.Height() != 4 || e.falling.shape.Width() != 1 {
		t.Error("A rotation that does not fit must keep the orientation")
	}

	// After moving to the left wall the rotation fits.
	e.HandleEvent(EventLeft)
	e.HandleEvent(EventLeft)
	e.HandleEvent(EventRotate)
	if e.falling.shape.Height() != 1 || e.falling.shape.Width() != 4 {
		t.Error("The rotation should be accepted once there is room")
	}
}

func TestEngineSpawnClimbsOverBlockedCells(t *testing.T) {
	e := NewEngine(4, 4, squareRand())
	e.HandleEvent(EventStart)
	for r := 0; r < 4; r++ {
		e.level.Set(r, 2, true)
		e.level.Set(r, 3, true)
	}

	e.spawnShape()
	if e.falling.row != 4 {
		t.Errorf("Spawn row = %d, expected 4 (pushed above the stack)", e.falling.row)
	}
	if !e.outOfBounds(e.falling) {
		t.Error("A shape pushed past the top row should be out of bounds")
	}
}

func TestEngineGameOverOnFullColumn(t *testing.T) {
	e := NewEngine(4, 4, squareRand())
	e.HandleEvent(EventStart)

	// Squares stack on the center columns without any input: the first
	// fills rows 0-1, the second rows 2-3, and the third has no room.
	for i := 0; i < 4; i++ {
		e.Tick()
	}

	if e.State() != StateEnd {
		t.Fatalf("State() = %v, expected end", e.State())
	}
	if e.level.Count() != 8 {
		t.Errorf("Level has %d locked cells, expected 8", e.level.Count())
	}

	// Restarting clears the level and resumes play.
	e.HandleEvent(EventStart)
	if e.State() != StatePlaying {
		t.Errorf("State() = %v, expected playing after restart", e.State())
	}
	if e.level.Count() != 0 {
		t.Error("Restart should clear the level")
	}
}

func TestEngineRenderGridOverlay(t *testing.T) {
	e := NewEngine(4, 4, squareRand())
	e.HandleEvent(EventStart)
	e.level.Set(0, 0, true)

	rg := e.RenderGrid()

	if !rg.Get(0, 0) {
		t.Error("Locked cells should appear in the render grid")
	}
	for _, pos := range [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}} {
		if !rg.Get(pos[0], pos[1]) {
			t.Errorf("Falling shape cell (%d, %d) should appear in the render grid", pos[0], pos[1])
		}
	}
	// The overlay renders into a copy.
	if e.level.Count() != 1 {
		t.Error("RenderGrid must not modify the level")
	}
}

func TestEngineRenderGridClipsAboveTop(t *testing.T) {
	e := NewEngine(4, 4, squareRand())
	e.HandleEvent(EventStart)
	e.falling.row = 3 // top half of the square pokes past row 3

	rg := e.RenderGrid()
	if !rg.Get(3, 2) || !rg.Get(3, 3) {
		t.Error("In-range shape cells should render")
	}
	if rg.Count() != 2 {
		t.Errorf("Render grid has %d cells, expected 2 with the rest clipped", rg.Count())
	}
}
