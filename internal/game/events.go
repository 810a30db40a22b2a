package game

import "github.com/vovakirdan/tui-snake/internal/snake"

// Event is emitted by the Controller to its listeners.
type Event interface {
	gameEvent()
}

// Listener receives controller events. Listeners run outside the controller
// lock and may call back into the controller.
type Listener func(Event)

// SnapshotEvent carries the board after a reset or a committed tick.
type SnapshotEvent struct {
	Snapshot Snapshot
}

func (SnapshotEvent) gameEvent() {}

// StatusEvent is sent on every state transition.
type StatusEvent struct {
	From Status
	To   Status
}

func (StatusEvent) gameEvent() {}

// GameOverEvent is sent when the snake hits a wall or itself.
type GameOverEvent struct {
	Score     int
	Length    int // Body length at the end of the game
	Collision snake.Collision
}

func (GameOverEvent) gameEvent() {}

// NewBestEvent is sent when the score passes the previous best.
type NewBestEvent struct {
	Previous int
	Score    int
}

func (NewBestEvent) gameEvent() {}
