package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration: a 22x16
// level with a 200ms gravity step and a 5-step fast drop.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Level: LevelConfig{
			Rows:    22,
			Columns: 16,
		},
		Gravity: GravityConfig{
			DropIntervalMs: 200,
			FastDropTicks:  5,
		},
	}
}
