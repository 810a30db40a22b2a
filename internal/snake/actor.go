// Package snake implements the movement rules of a single snake on a
// square grid: direction buffering, collision checks, growth and scoring.
// It knows nothing about timing, rendering or persistence.
package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// TickResult describes the outcome of one Actor.Tick.
type TickResult struct {
	Collision Collision  // CollisionNone unless the move was fatal
	Ate       bool       // Head landed on the food
	Food      core.Point // New food cell, valid only when Ate is true
}

// Collided reports whether the tick ended the game.
func (r TickResult) Collided() bool {
	return r.Collision != CollisionNone
}

// Actor owns the snake body, its heading and its score.
type Actor struct {
	body         []core.Point // Head at index 0
	direction    Direction
	nextDir      Direction // Buffered direction for next move
	score        int
	scorePerFood int
}

// NewActor creates a snake of length cells with its head at head, laid out
// opposite to dir so the first move is always forward.
func NewActor(head core.Point, length int, dir Direction, scorePerFood int) *Actor {
	body := make([]core.Point, length)
	back := dir.Opposite().Vector()
	body[0] = head
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Add(back)
	}
	return NewActorFromBody(body, dir, scorePerFood)
}

// NewActorFromBody creates a snake with an explicit body, head first.
// The slice is copied.
func NewActorFromBody(body []core.Point, dir Direction, scorePerFood int) *Actor {
	return &Actor{
		body:         append([]core.Point(nil), body...),
		direction:    dir,
		nextDir:      dir,
		scorePerFood: scorePerFood,
	}
}

// RequestDirection buffers d for the next tick. A request for the exact
// reverse of the current direction is dropped. Only the last accepted
// request before a tick takes effect.
func (a *Actor) RequestDirection(d Direction) bool {
	if d == a.direction.Opposite() {
		return false
	}
	a.nextDir = d
	return true
}

// Tick advances the snake by one cell.
//
// On a collision the actor is left unchanged apart from its direction, which
// has already taken the buffered value. On food the snake grows by one and a
// new food cell is drawn over the grown body.
func (a *Actor) Tick(grid core.Grid, placer Placer, food core.Point) TickResult {
	a.direction = a.nextDir

	newHead := a.Head().Add(a.direction.Vector())

	if c := Classify(grid, newHead, a.body); c != CollisionNone {
		return TickResult{Collision: c}
	}

	a.body = append(a.body, core.Point{})
	copy(a.body[1:], a.body)
	a.body[0] = newHead

	if newHead == food {
		a.score += a.scorePerFood
		return TickResult{Ate: true, Food: placer.Place(a.Occupied())}
	}

	a.body = a.body[:len(a.body)-1]
	return TickResult{}
}

// Head returns the first body segment.
func (a *Actor) Head() core.Point {
	return a.body[0]
}

// Body returns a copy of the body, head first.
func (a *Actor) Body() []core.Point {
	return append([]core.Point(nil), a.body...)
}

// Len returns the number of segments.
func (a *Actor) Len() int {
	return len(a.body)
}

// Occupied returns the set of cells covered by the body.
func (a *Actor) Occupied() map[core.Point]bool {
	occupied := make(map[core.Point]bool, len(a.body))
	for _, seg := range a.body {
		occupied[seg] = true
	}
	return occupied
}

// Direction returns the direction of the last committed move.
func (a *Actor) Direction() Direction {
	return a.direction
}

// PendingDirection returns the direction the next tick will use.
func (a *Actor) PendingDirection() Direction {
	return a.nextDir
}

// Score returns the points collected so far.
func (a *Actor) Score() int {
	return a.score
}
