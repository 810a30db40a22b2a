package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Collision classifies a candidate head position.
type Collision int

const (
	CollisionNone Collision = iota // Safe to move
	CollisionWall                  // Head would leave the grid
	CollisionSelf                  // Head would land on the body
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Classify checks head against the grid bounds and the full pre-move body.
// The tail counts as occupied even though it would be vacated this tick.
func Classify(grid core.Grid, head core.Point, body []core.Point) Collision {
	if !grid.Contains(head) {
		return CollisionWall
	}
	for _, seg := range body {
		if seg == head {
			return CollisionSelf
		}
	}
	return CollisionNone
}
