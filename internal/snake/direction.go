package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit displacement for one step in d.
// Y grows downwards, matching screen rows.
func (d Direction) Vector() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	case DirRight:
		return core.Point{X: 1, Y: 0}
	default:
		return core.Point{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
