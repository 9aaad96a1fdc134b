// Package tetris implements the falling-block game: the pure rules engine
// (grid, shapes, state machine) plus the platform adapter that drives it
// from input frames and ticks.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

const hudHeight = 2 // HUD line plus separator

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the Engine to the platform's registry.Game interface. It
// owns the tick-to-gravity translation: the platform steps at TickRate
// frames per second while the engine drops the shape once per drop
// interval.
type Game struct {
	engine *Engine
	rng    *rand.Rand

	cfg     config.TetrisConfig
	runtime core.RuntimeConfig

	tick        uint64 // Platform ticks since Reset
	engineTicks int    // Gravity ticks fed to the engine
	dropEvery   int    // Platform ticks per gravity tick
	dropTicker  int    // Counts ticks until next gravity step

	tooSmall bool
}

// New creates a new tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.engine = NewEngine(cfg.Level.Rows, cfg.Level.Columns, g.rng)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dropEvery = core.Max(1, tickRate*cfg.Gravity.DropIntervalMs/1000)
	g.dropTicker = 0
	g.tick = 0
	g.engineTicks = 0

	// The board renders double-width plus a border, under a 2-line HUD.
	requiredW := cfg.Level.Columns*2 + 2
	requiredH := cfg.Level.Rows + 2 + hudHeight
	g.tooSmall = runtime.ScreenW < requiredW || runtime.ScreenH < requiredH

	g.engine.HandleEvent(EventStart)
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.engine.State() == StateEnd {
		g.engine.HandleEvent(EventStart)
		g.engineTicks = 0
		g.dropTicker = 0
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionStart) {
		g.engine.HandleEvent(EventStart)
	}

	if input.Has(core.ActionPause) {
		// The pause key toggles: resuming goes through Start.
		if g.engine.State() == StatePaused {
			g.engine.HandleEvent(EventStart)
		} else {
			g.engine.HandleEvent(EventPause)
		}
	}

	if input.Has(core.ActionLeft) {
		g.engine.HandleEvent(EventLeft)
	}
	if input.Has(core.ActionRight) {
		g.engine.HandleEvent(EventRight)
	}
	if input.Has(core.ActionRotate) {
		g.engine.HandleEvent(EventRotate)
	}

	if input.Has(core.ActionDrop) {
		g.fastDrop()
	}

	g.dropTicker++
	if g.dropTicker >= g.dropEvery {
		g.dropTicker = 0
		g.gravityTick()
	}

	return core.StepResult{State: g.State()}
}

// fastDrop runs several gravity ticks at once, as the original down-key
// behavior does, and restarts the drop interval.
func (g *Game) fastDrop() {
	for i := 0; i < g.cfg.Gravity.FastDropTicks; i++ {
		if g.engine.State() != StatePlaying {
			break
		}
		g.gravityTick()
	}
	g.dropTicker = 0
}

func (g *Game) gravityTick() {
	if g.engine.State() != StatePlaying {
		return
	}
	g.engine.Tick()
	g.engineTicks++
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.engine.State() == StateEnd,
		Paused:   g.engine.State() == StatePaused,
		Ticks:    g.engineTicks,
	}
}

// Engine exposes the underlying rules engine, mainly for tests.
func (g *Game) Engine() *Engine {
	return g.engine
}
