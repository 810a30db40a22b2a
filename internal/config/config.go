// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Grid         GridConfig  `yaml:"grid"`
	TickMS       int         `yaml:"tick_ms"`
	ScorePerFood int         `yaml:"score_per_food"`
	Spawn        SpawnConfig `yaml:"spawn"`
}

// GridConfig defines the playfield. The grid is always square.
type GridConfig struct {
	Size int `yaml:"size"`
}

// SpawnConfig places the snake on reset. The body extends to the left of the
// head because a new snake always heads right.
type SpawnConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Length int `yaml:"length"`
}

// Minimum values accepted by Validate.
const (
	MinGridSize    = 5
	MinSpawnLength = 3
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Size < MinGridSize:
		return fmt.Errorf("%w: grid.size %d is below %d", ErrInvalid, c.Grid.Size, MinGridSize)
	case c.TickMS <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, c.TickMS)
	case c.ScorePerFood <= 0:
		return fmt.Errorf("%w: score_per_food must be positive, got %d", ErrInvalid, c.ScorePerFood)
	case c.Spawn.Length < MinSpawnLength:
		return fmt.Errorf("%w: spawn.length %d is below %d", ErrInvalid, c.Spawn.Length, MinSpawnLength)
	}

	grid := core.NewGrid(c.Grid.Size)
	head := core.Point{X: c.Spawn.X, Y: c.Spawn.Y}
	tail := core.Point{X: c.Spawn.X - (c.Spawn.Length - 1), Y: c.Spawn.Y}
	if !grid.Contains(head) || !grid.Contains(tail) {
		return fmt.Errorf("%w: spawn body %v..%v leaves the %dx%d grid",
			ErrInvalid, head, tail, c.Grid.Size, c.Grid.Size)
	}
	// A straight spawn inside the grid is at most one row long, so with
	// size >= MinGridSize there is always a free cell for food.
	return nil
}

// RuntimeConfig converts the file settings into the engine's runtime form.
func (c SnakeConfig) RuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		GridSize:     c.Grid.Size,
		TickInterval: time.Duration(c.TickMS) * time.Millisecond,
		ScorePerFood: c.ScorePerFood,
		Spawn:        core.Point{X: c.Spawn.X, Y: c.Spawn.Y},
		SpawnLength:  c.Spawn.Length,
		Seed:         seed,
	}
}
