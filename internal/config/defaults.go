package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded defaults, matching
// core.DefaultConfig.
func DefaultSnakeConfig() SnakeConfig {
	rc := core.DefaultConfig()
	return SnakeConfig{
		Grid:         GridConfig{Size: rc.GridSize},
		TickMS:       int(rc.TickInterval / time.Millisecond),
		ScorePerFood: rc.ScorePerFood,
		Spawn: SpawnConfig{
			X:      rc.Spawn.X,
			Y:      rc.Spawn.Y,
			Length: rc.SpawnLength,
		},
	}
}
