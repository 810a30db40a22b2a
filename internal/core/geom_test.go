package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestGridContains(t *testing.T) {
	g := NewGrid(20)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Point{0, 0}, true},
		{"far corner", Point{19, 19}, true},
		{"center", Point{10, 10}, true},
		{"x at size", Point{20, 5}, false},
		{"y at size", Point{5, 20}, false},
		{"negative x", Point{-1, 10}, false},
		{"negative y", Point{10, -1}, false},
		{"both at size", Point{20, 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	got := Point{6, 10}.Add(Point{1, 0})
	if got != (Point{7, 10}) {
		t.Errorf("Add() = %v, expected (7,10)", got)
	}
}
