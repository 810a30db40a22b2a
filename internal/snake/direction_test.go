package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDirectionVectorAndOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		vector   core.Point
		opposite Direction
	}{
		{DirUp, core.Point{X: 0, Y: -1}, DirDown},
		{DirDown, core.Point{X: 0, Y: 1}, DirUp},
		{DirLeft, core.Point{X: -1, Y: 0}, DirRight},
		{DirRight, core.Point{X: 1, Y: 0}, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Vector(); got != tc.vector {
				t.Errorf("Vector() = %v, expected %v", got, tc.vector)
			}
			if got := tc.dir.Opposite(); got != tc.opposite {
				t.Errorf("Opposite() = %v, expected %v", got, tc.opposite)
			}
			// Opposite vectors cancel out
			if sum := tc.dir.Vector().Add(tc.opposite.Vector()); sum != (core.Point{}) {
				t.Errorf("vector sum = %v, expected zero", sum)
			}
		})
	}
}
