package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Snapshot is a read-only copy of the game state for renderers.
type Snapshot struct {
	Tick      uint64
	Status    Status
	Body      []core.Point // Head first
	Food      core.Point
	Score     int
	BestScore int
	Direction snake.Direction
	GridSize  int
}

// Head returns the head cell, or the zero point for an empty body.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}
