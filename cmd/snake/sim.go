package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/scheduler"
)

var (
	flagMoves  string
	flagFrames bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game and print the board",
	Long: `Play a game from a script without a terminal UI.

The game starts immediately. Each character of --moves is one tick: a
steering letter (U, D, L, R) is applied before the tick, any other
character just lets the snake advance. P toggles pause, S starts and X
restarts; these also use up their tick. The same --seed and --moves always
give the same game.

Examples:
  snake sim --seed 7 --moves "....DDDLLL"
  snake sim --seed 7 --moves "RRRRDDDD" --frames`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Input script, one character per tick")
	simCmd.Flags().BoolVar(&flagFrames, "frames", false, "Print the board after every tick")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "snake-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	// Replays must be reproducible, so a zero seed stays zero.
	cfg, err := loadConfig(logger, true)
	if err != nil {
		return err
	}

	final := simulate(cfg, flagMoves, os.Stdout, flagFrames, logger)
	fmt.Printf("status=%s score=%d length=%d ticks=%d\n",
		final.Status, final.Score, len(final.Body), final.Tick)
	return nil
}

// simulate plays script against a controller driven by a manual scheduler
// and writes the final board, or every board when frames is set.
func simulate(cfg core.RuntimeConfig, script string, w io.Writer, frames bool, logger *log.Logger) game.Snapshot {
	sched := scheduler.NewManual()
	ctrl := game.NewController(game.Options{
		Config:    cfg,
		Scheduler: sched,
		Logger:    logger,
	})
	defer ctrl.Close()

	screen := core.NewScreen(game.BoardSize(cfg.GridSize))
	draw := func() {
		snap := ctrl.Snapshot()
		snap.Render(screen, snap.Notice())
		fmt.Fprintln(w, screen.String())
	}

	ctrl.Start()
	for _, ch := range script {
		ctrl.Apply(core.ParseAction(ch))
		sched.Fire()
		if frames {
			draw()
		}
	}
	if !frames {
		draw()
	}
	return ctrl.Snapshot()
}
