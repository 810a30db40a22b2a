package snake

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fixedPlacer returns a preset cell and records what it was asked to avoid.
type fixedPlacer struct {
	next     core.Point
	occupied map[core.Point]bool
	calls    int
}

func (f *fixedPlacer) Place(occupied map[core.Point]bool) core.Point {
	f.calls++
	f.occupied = occupied
	return f.next
}

func startBody() []core.Point {
	return []core.Point{{X: 6, Y: 10}, {X: 5, Y: 10}, {X: 4, Y: 10}}
}

func TestNewActorLayout(t *testing.T) {
	a := NewActor(core.Point{X: 6, Y: 10}, 3, DirRight, 10)

	if !slices.Equal(a.Body(), startBody()) {
		t.Errorf("Body() = %v, expected %v", a.Body(), startBody())
	}
	if a.Direction() != DirRight || a.PendingDirection() != DirRight {
		t.Errorf("direction = %v/%v, expected right/right", a.Direction(), a.PendingDirection())
	}
}

func TestTickMovesForward(t *testing.T) {
	grid := core.NewGrid(20)
	a := NewActorFromBody(startBody(), DirRight, 10)
	placer := &fixedPlacer{}

	res := a.Tick(grid, placer, core.Point{X: 20, Y: 20})

	if res.Collided() || res.Ate {
		t.Fatalf("Tick() = %+v, expected plain move", res)
	}
	expected := []core.Point{{X: 7, Y: 10}, {X: 6, Y: 10}, {X: 5, Y: 10}}
	if !slices.Equal(a.Body(), expected) {
		t.Errorf("Body() = %v, expected %v", a.Body(), expected)
	}
	if a.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", a.Score())
	}
	if placer.calls != 0 {
		t.Errorf("placer called %d times, expected 0", placer.calls)
	}
}

func TestTickEatsAndGrows(t *testing.T) {
	grid := core.NewGrid(20)
	a := NewActorFromBody(startBody(), DirRight, 10)
	placer := &fixedPlacer{next: core.Point{X: 1, Y: 1}}

	res := a.Tick(grid, placer, core.Point{X: 7, Y: 10})

	if !res.Ate || res.Collided() {
		t.Fatalf("Tick() = %+v, expected food eaten", res)
	}
	expected := []core.Point{{X: 7, Y: 10}, {X: 6, Y: 10}, {X: 5, Y: 10}, {X: 4, Y: 10}}
	if !slices.Equal(a.Body(), expected) {
		t.Errorf("Body() = %v, expected %v", a.Body(), expected)
	}
	if a.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", a.Score())
	}
	if res.Food != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Food = %v, expected (1,1)", res.Food)
	}
	// New food is drawn over the grown body
	if len(placer.occupied) != 4 || !placer.occupied[core.Point{X: 7, Y: 10}] {
		t.Errorf("placer saw %v, expected the 4-segment body", placer.occupied)
	}
}

func TestTickWallCollision(t *testing.T) {
	grid := core.NewGrid(20)
	body := []core.Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}
	a := NewActorFromBody(body, DirLeft, 10)

	res := a.Tick(grid, &fixedPlacer{}, core.Point{X: 5, Y: 5})

	if res.Collision != CollisionWall {
		t.Fatalf("Collision = %v, expected wall", res.Collision)
	}
	if !slices.Equal(a.Body(), body) {
		t.Errorf("Body() = %v, expected unchanged %v", a.Body(), body)
	}
}

func TestTickSelfCollision(t *testing.T) {
	grid := core.NewGrid(20)
	// Head at (5,5) moving down into its own body at (5,6)
	body := []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}
	a := NewActorFromBody(body, DirLeft, 10)
	a.RequestDirection(DirDown)

	res := a.Tick(grid, &fixedPlacer{}, core.Point{X: 0, Y: 0})

	if res.Collision != CollisionSelf {
		t.Fatalf("Collision = %v, expected self", res.Collision)
	}
}

func TestTickIntoTailIsFatal(t *testing.T) {
	grid := core.NewGrid(20)
	// A 2x2 loop: the next cell is the current tail
	body := []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	a := NewActorFromBody(body, DirLeft, 10)
	a.RequestDirection(DirDown)

	res := a.Tick(grid, &fixedPlacer{}, core.Point{X: 0, Y: 0})

	if res.Collision != CollisionSelf {
		t.Errorf("Collision = %v, expected self (tail cell counts)", res.Collision)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	a := NewActorFromBody(startBody(), DirRight, 10)

	if a.RequestDirection(DirLeft) {
		t.Error("RequestDirection(Left) should be rejected while heading right")
	}
	if a.PendingDirection() != DirRight {
		t.Errorf("PendingDirection() = %v, expected right", a.PendingDirection())
	}

	for _, d := range []Direction{DirUp, DirDown} {
		a := NewActorFromBody(startBody(), DirRight, 10)
		if !a.RequestDirection(d) || a.PendingDirection() != d {
			t.Errorf("RequestDirection(%v) should be accepted", d)
		}
	}
}

func TestReversalCheckedAgainstCommittedDirection(t *testing.T) {
	// Reversal is judged against the committed direction, not the pending one.
	a := NewActorFromBody(startBody(), DirRight, 10)
	a.RequestDirection(DirUp)
	a.RequestDirection(DirLeft)

	if a.PendingDirection() != DirUp {
		t.Errorf("PendingDirection() = %v, expected up", a.PendingDirection())
	}
}

func TestLastRequestWins(t *testing.T) {
	a := NewActorFromBody(startBody(), DirRight, 10)
	a.RequestDirection(DirUp)
	a.RequestDirection(DirDown)

	a.Tick(core.NewGrid(20), &fixedPlacer{}, core.Point{X: 0, Y: 0})

	if a.Head() != (core.Point{X: 6, Y: 11}) {
		t.Errorf("Head() = %v, expected (6,11)", a.Head())
	}
	if a.Direction() != DirDown {
		t.Errorf("Direction() = %v, expected down", a.Direction())
	}
}

func TestRandomWalkKeepsBodyOnGrid(t *testing.T) {
	grid := core.NewGrid(10)
	rng := rand.New(rand.NewSource(7))
	placer := NewFoodPlacer(grid, rng)
	a := NewActor(core.Point{X: 4, Y: 5}, 3, DirRight, 10)
	food := placer.Place(a.Occupied())
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for i := 0; i < 500; i++ {
		a.RequestDirection(dirs[rng.Intn(len(dirs))])
		before := a.Len()
		res := a.Tick(grid, placer, food)
		if res.Collided() {
			return
		}

		expected := before
		if res.Ate {
			expected++
		}
		if a.Len() != expected {
			t.Fatalf("tick %d: Len() = %d, expected %d", i, a.Len(), expected)
		}
		for _, seg := range a.Body() {
			if !grid.Contains(seg) {
				t.Fatalf("tick %d: segment %v off grid", i, seg)
			}
		}
		if len(a.Occupied()) != a.Len() {
			t.Fatalf("tick %d: body overlaps itself: %v", i, a.Body())
		}
		if res.Ate {
			food = res.Food
		}
	}
}
