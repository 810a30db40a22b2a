package core

import "time"

// RuntimeConfig contains the resolved settings a game session runs with.
// Values are fixed for the lifetime of a session.
type RuntimeConfig struct {
	GridSize     int           // Cells per side of the square board
	TickInterval time.Duration // Time between simulation steps
	ScorePerFood int           // Points awarded for each food eaten
	Spawn        Point         // Initial head position
	SpawnLength  int           // Initial body length, extending left of the head
	Seed         int64         // RNG seed for deterministic food placement
}

// DefaultConfig returns a RuntimeConfig with the classic settings:
// a 20x20 board, 150ms ticks and a three-cell snake at (6, 10) heading right.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridSize:     20,
		TickInterval: 150 * time.Millisecond,
		ScorePerFood: 10,
		Spawn:        Point{X: 6, Y: 10},
		SpawnLength:  3,
		Seed:         0,
	}
}
