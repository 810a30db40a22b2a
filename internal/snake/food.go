package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Placer chooses the next food cell.
type Placer interface {
	Place(occupied map[core.Point]bool) core.Point
}

// FoodPlacer draws food cells uniformly at random from the grid.
type FoodPlacer struct {
	grid core.Grid
	rng  *rand.Rand
}

// NewFoodPlacer creates a placer over grid using rng for every draw.
func NewFoodPlacer(grid core.Grid, rng *rand.Rand) *FoodPlacer {
	return &FoodPlacer{grid: grid, rng: rng}
}

// Place samples cells until it finds one not in occupied.
//
// There is no attempt limit: if occupied covers every cell of the grid,
// Place never returns.
func (f *FoodPlacer) Place(occupied map[core.Point]bool) core.Point {
	for {
		p := core.Point{
			X: f.rng.Intn(f.grid.Size),
			Y: f.rng.Intn(f.grid.Size),
		}
		if !occupied[p] {
			return p
		}
	}
}
