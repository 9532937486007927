// Package config provides YAML-based configuration loading for the snake
// game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by Validate for every rejected value.
var ErrInvalid = errors.New("config: invalid value")

// Limits for a playable board.
const (
	MinBoardSize = 3
	MaxBoardSize = 200
	MaxTickRate  = 120
)

// SnakeConfig contains the startup constants of the game.
type SnakeConfig struct {
	Board    BoardConfig `yaml:"board"`
	TickRate int         `yaml:"tick_rate"` // Moves per second
	Growth   string      `yaml:"growth"`    // "backward" or "trail"
}

// BoardConfig defines the board dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < MinBoardSize || c.Board.Width > MaxBoardSize {
		return fmt.Errorf("%w: board.width %d not in [%d, %d]", ErrInvalid, c.Board.Width, MinBoardSize, MaxBoardSize)
	}
	if c.Board.Height < MinBoardSize || c.Board.Height > MaxBoardSize {
		return fmt.Errorf("%w: board.height %d not in [%d, %d]", ErrInvalid, c.Board.Height, MinBoardSize, MaxBoardSize)
	}
	if c.TickRate <= 0 || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick_rate %d not in [1, %d]", ErrInvalid, c.TickRate, MaxTickRate)
	}
	switch c.Growth {
	case "", "backward", "trail":
	default:
		return fmt.Errorf("%w: growth %q (want backward or trail)", ErrInvalid, c.Growth)
	}
	return nil
}
