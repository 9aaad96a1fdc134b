package tetris

// State is the phase of a game.
type State int

const (
	StateInit State = iota
	StatePlaying
	StatePaused
	StateEnd
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Event is a discrete input to the engine's state machine.
type Event int

const (
	EventStart Event = iota
	EventLeft
	EventRight
	EventRotate
	EventPause
	// EventQuit makes HandleEvent return false; the engine performs no
	// transition. Stopping the outer loop is the caller's concern.
	EventQuit
)

// fallingShape is a shape plus the level position of its grid's bottom-left
// origin. The position may be transiently out of range while a candidate
// move is validated.
type fallingShape struct {
	shape Shape
	row   int
	col   int
}

func (f *fallingShape) clone() fallingShape {
	return fallingShape{shape: f.shape.Clone(), row: f.row, col: f.col}
}

// Engine is the rules engine and state machine of a tetris game. It owns
// the level grid, the currently falling shape and the shape catalog.
//
// The engine is a plain synchronous value: no goroutines, no I/O, no
// timing. The caller drives gravity by calling Tick and feeds input
// through HandleEvent. The falling shape is absent only before the first
// spawn; operations that need it (Tick in Playing, RenderGrid) panic if
// called before Start, which is a programmer error rather than a
// recoverable condition.
type Engine struct {
	state   State
	level   *Grid
	falling *fallingShape
	factory *ShapeFactory
}

// NewEngine creates an engine with an empty level of the given dimensions,
// in state Init. Shape selection draws from rng.
func NewEngine(rows, cols int, rng Rand) *Engine {
	return &Engine{
		state:   StateInit,
		level:   NewGrid(rows, cols),
		factory: NewShapeFactory(rng),
	}
}

// State returns the current phase of the game.
func (e *Engine) State() State {
	return e.state
}

// Level returns the level grid of locked cells. Callers use it for sizing
// queries and must not mutate it.
func (e *Engine) Level() *Grid {
	return e.level
}

// HandleEvent feeds one event to the state machine. It returns false if
// the caller should quit the game, which only EventQuit requests.
func (e *Engine) HandleEvent(ev Event) bool {
	switch ev {
	case EventStart:
		switch e.state {
		case StateInit, StateEnd:
			e.reset()
		case StatePaused:
			e.state = StatePlaying
		}
	case EventLeft:
		if e.state == StatePlaying {
			e.moveShape(0, -1)
		}
	case EventRight:
		if e.state == StatePlaying {
			e.moveShape(0, 1)
		}
	case EventRotate:
		if e.state == StatePlaying {
			e.rotateShape()
		}
	case EventPause:
		if e.state == StatePlaying {
			e.state = StatePaused
		}
	case EventQuit:
		return false
	}
	return true
}

// Tick advances the simulation by one gravity step. It is a no-op unless
// the game is Playing. If the falling shape cannot drop it is locked into
// the level, full rows are eliminated and a new shape is spawned; if the
// new shape does not fit, the game ends.
func (e *Engine) Tick() {
	if e.state != StatePlaying {
		return
	}

	if e.dropShape() {
		return
	}

	e.eliminateRows()
	e.spawnShape()
	if e.outOfBounds(e.falling) || e.collides(e.falling) {
		e.state = StateEnd
	}
}

// reset clears the level, spawns a fresh shape and starts playing.
func (e *Engine) reset() {
	e.level.Clear()
	e.spawnShape()
	e.state = StatePlaying
}

// spawnShape creates a random shape, top-aligned and horizontally centered.
// While the position collides with locked cells the shape is pushed up one
// row at a time; Tick then detects the out-of-bounds result as game over.
func (e *Engine) spawnShape() {
	s := fallingShape{shape: e.factory.Create()}
	s.row = e.level.Rows() - s.shape.Height()
	s.col = e.level.Cols() / 2

	for e.collides(&s) {
		s.row++
	}
	e.falling = &s
}

// dropShape moves the falling shape down one row. If the shape cannot drop
// it is locked into the level and false is returned.
func (e *Engine) dropShape() bool {
	if e.moveShape(-1, 0) {
		return true
	}

	s := e.falling
	e.falling = nil
	for h := 0; h < s.shape.Height(); h++ {
		for w := 0; w < s.shape.Width(); w++ {
			// Merge semantics: locking only sets cells, never clears.
			if s.shape.Cell(h, w) {
				e.level.Set(s.row+h, s.col+w, true)
			}
		}
	}
	return false
}

// moveShape tries to move the falling shape by the given delta. The move
// is committed only if the candidate position is neither out of bounds nor
// colliding; otherwise the original position is kept. Returns whether the
// move was accepted.
func (e *Engine) moveShape(dRow, dCol int) bool {
	if e.state != StatePlaying {
		return false
	}

	s := e.falling
	origRow, origCol := s.row, s.col
	s.row += dRow
	s.col += dCol

	ok := !e.outOfBounds(s) && !e.collides(s)
	if !ok {
		s.row, s.col = origRow, origCol
	}
	return ok
}

// rotateShape rotates a copy of the falling shape in place and commits it
// only if the rotated shape fits. There are no wall-kick attempts: on
// failure the original orientation is kept.
func (e *Engine) rotateShape() {
	rotated := e.falling.clone()
	rotated.shape.Rotate()
	if !e.outOfBounds(&rotated) && !e.collides(&rotated) {
		e.falling = &rotated
	}
}

// outOfBounds reports whether any part of the shape lies outside the
// level. A shape may touch the rightmost column and the top row exactly.
func (e *Engine) outOfBounds(s *fallingShape) bool {
	return s.row < 0 ||
		s.row+s.shape.Height() > e.level.Rows() ||
		s.col < 0 ||
		s.col+s.shape.Width() > e.level.Cols()
}

// collides reports whether any occupied shape cell overlaps a locked level
// cell. Shape cells outside the level count as empty; the spawn climb may
// probe positions above the top row, and outOfBounds covers those.
func (e *Engine) collides(s *fallingShape) bool {
	for h := 0; h < s.shape.Height(); h++ {
		row := s.row + h
		if row < 0 || row >= e.level.Rows() {
			continue
		}
		for w := 0; w < s.shape.Width(); w++ {
			col := s.col + w
			if col < 0 || col >= e.level.Cols() {
				continue
			}
			if s.shape.Cell(h, w) && e.level.Get(row, col) {
				return true
			}
		}
	}
	return false
}

// eliminateRows removes every fully occupied row, shifting the rows above
// down and leaving vacated all-false rows at the top. The grid keeps its
// dimensions. Returns whether any row was eliminated.
func (e *Engine) eliminateRows() bool {
	full := make(map[int]bool)
	for row := 0; row < e.level.Rows(); row++ {
		isFull := true
		for col := 0; col < e.level.Cols(); col++ {
			if !e.level.Get(row, col) {
				isFull = false
				break
			}
		}
		if isFull {
			full[row] = true
		}
	}
	if len(full) == 0 {
		return false
	}

	next := NewGrid(e.level.Rows(), e.level.Cols())
	dst := 0
	for src := 0; src < e.level.Rows(); src++ {
		if full[src] {
			continue
		}
		for col := 0; col < e.level.Cols(); col++ {
			next.Set(dst, col, e.level.Get(src, col))
		}
		dst++
	}
	e.level = next
	return true
}

// RenderGrid returns a copy of the level with the falling shape overlaid.
// Shape cells outside the level are clipped silently. It must not be
// called before the first spawn.
func (e *Engine) RenderGrid() *Grid {
	res := e.level.Clone()
	s := e.falling

	for h := 0; h < s.shape.Height(); h++ {
		row := s.row + h
		if row < 0 || row >= res.Rows() {
			continue
		}
		for w := 0; w < s.shape.Width(); w++ {
			col := s.col + w
			if col < 0 || col >= res.Cols() {
				continue
			}
			if s.shape.Cell(h, w) {
				res.Set(row, col, true)
			}
		}
	}
	return res
}
