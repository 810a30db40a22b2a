package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 99
	script := "....DDDD....LLLL....UUUU....RRRR"

	var a, b bytes.Buffer
	first := simulate(cfg, script, &a, true, log.New(io.Discard))
	second := simulate(cfg, script, &b, true, log.New(io.Discard))

	if a.String() != b.String() {
		t.Error("same seed and script produced different frames")
	}
	if first.Score != second.Score || first.Tick != second.Tick || first.Food != second.Food {
		t.Errorf("final snapshots differ: %+v vs %+v", first, second)
	}
}

func TestSimulateWallCollision(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	// Heading right from x=6 on a 20-wide board: the 14th tick leaves the grid.
	script := strings.Repeat(".", 20)

	var out bytes.Buffer
	final := simulate(cfg, script, &out, false, log.New(io.Discard))

	if final.Status != game.StatusOver {
		t.Fatalf("Status = %v, expected over", final.Status)
	}
	if final.Tick != 14 {
		t.Errorf("Tick = %d, expected 14", final.Tick)
	}
	if !strings.Contains(out.String(), "GAME OVER") {
		t.Errorf("final board missing game over notice:\n%s", out.String())
	}
}

func TestSimulateIgnoresReversal(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1

	final := simulate(cfg, "L", io.Discard, false, log.New(io.Discard))

	if final.Head() != (core.Point{X: 7, Y: 10}) {
		t.Errorf("Head() = %v, expected (7,10)", final.Head())
	}
}
