// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors.
var (
	ErrInvalidBoardSize = errors.New("config: invalid board size")
	ErrInvalidInterval  = errors.New("config: invalid gravity interval")
	ErrInvalidRandom    = errors.New("config: unknown randomizer")
)

// Minimum well dimensions. A 4×4 bounding box must fit.
const (
	MinBoardWidth  = 4
	MinBoardHeight = 4
)

// TetrisConfig contains all configuration for the tetris game.
type TetrisConfig struct {
	Board      TetrisBoard   `yaml:"board"`
	Gravity    TetrisGravity `yaml:"gravity"`
	Randomizer string        `yaml:"randomizer"` // "bag" or "random"
}

// TetrisBoard defines the well dimensions.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisGravity defines how fast pieces fall and how that changes.
type TetrisGravity struct {
	IntervalMs  int  `yaml:"interval_ms"`  // initial interval between gravity steps
	Accelerate  bool `yaml:"accelerate"`   // speed up on every level
	DownGravity bool `yaml:"down_gravity"` // soft drop also applies a gravity step
}

// Interval returns the initial gravity interval.
func (g TetrisGravity) Interval() time.Duration {
	return time.Duration(g.IntervalMs) * time.Millisecond
}

// Validate checks the config for values the game cannot run with.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < MinBoardWidth || c.Board.Height < MinBoardHeight {
		return fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrInvalidBoardSize, c.Board.Width, c.Board.Height, MinBoardWidth, MinBoardHeight)
	}
	if c.Gravity.IntervalMs <= 0 {
		return fmt.Errorf("%w: %dms", ErrInvalidInterval, c.Gravity.IntervalMs)
	}
	switch c.Randomizer {
	case "", "bag", "random":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRandom, c.Randomizer)
	}
	return nil
}
