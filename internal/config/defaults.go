package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Gravity: TetrisGravity{
			IntervalMs:  1000,
			Accelerate:  true,
			DownGravity: false,
		},
		Randomizer: "bag",
	}
}
