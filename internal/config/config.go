// Package config provides YAML-based game configuration loading for the
// tetris platform.
package config

// TetrisConfig contains all configuration for the tetris game.
type TetrisConfig struct {
	Level   LevelConfig   `yaml:"level"`
	Gravity GravityConfig `yaml:"gravity"`
}

// LevelConfig defines the playing field dimensions.
type LevelConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// GravityConfig defines how the falling shape drops over time.
type GravityConfig struct {
	// DropIntervalMs is the wall-clock interval between gravity steps.
	DropIntervalMs int `yaml:"drop_interval_ms"`
	// FastDropTicks is how many gravity steps a single fast-drop input
	// triggers at once.
	FastDropTicks int `yaml:"fast_drop_ticks"`
}

// Validate replaces out-of-range values with defaults. A level must be
// able to hold the tallest shape.
func (c *TetrisConfig) Validate() {
	def := DefaultTetrisConfig()
	if c.Level.Rows < 4 {
		c.Level.Rows = def.Level.Rows
	}
	if c.Level.Columns < 4 {
		c.Level.Columns = def.Level.Columns
	}
	if c.Gravity.DropIntervalMs <= 0 {
		c.Gravity.DropIntervalMs = def.Gravity.DropIntervalMs
	}
	if c.Gravity.FastDropTicks <= 0 {
		c.Gravity.FastDropTicks = def.Gravity.FastDropTicks
	}
}
