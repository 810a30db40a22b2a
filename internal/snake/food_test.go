package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestFoodSpawnValidity(t *testing.T) {
	grid := core.NewGrid(20)
	placer := NewFoodPlacer(grid, rand.New(rand.NewSource(999)))
	occupied := NewActor(core.Point{X: 6, Y: 10}, 3, DirRight, 10).Occupied()

	for i := 0; i < 200; i++ {
		food := placer.Place(occupied)
		if occupied[food] {
			t.Errorf("Food spawned on snake at %v", food)
		}
		if !grid.Contains(food) {
			t.Errorf("Food spawned out of bounds at %v", food)
		}
	}
}

func TestFoodFindsLastFreeCell(t *testing.T) {
	grid := core.NewGrid(4)
	placer := NewFoodPlacer(grid, rand.New(rand.NewSource(1)))

	occupied := make(map[core.Point]bool)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			occupied[core.Point{X: x, Y: y}] = true
		}
	}
	free := core.Point{X: 2, Y: 3}
	delete(occupied, free)

	if got := placer.Place(occupied); got != free {
		t.Errorf("Place() = %v, expected the only free cell %v", got, free)
	}
}

func TestFoodDeterminism(t *testing.T) {
	grid := core.NewGrid(20)
	p1 := NewFoodPlacer(grid, rand.New(rand.NewSource(42)))
	p2 := NewFoodPlacer(grid, rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		a, b := p1.Place(nil), p2.Place(nil)
		if a != b {
			t.Fatalf("draw %d: %v vs %v", i, a, b)
		}
	}
}
