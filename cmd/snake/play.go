package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/hjkl  - Steer
  Enter             - Start
  Space/P/Esc       - Pause
  R                 - Restart
  ?                 - Help
  Q/Ctrl+C          - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./big-board.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to Bubble Tea; logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger, false)
	if err != nil {
		return err
	}

	needW, needH := game.BoardSize(cfg.GridSize)
	needH++ // help bar
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		return fmt.Errorf("terminal is %dx%d, the %dx%d board needs at least %dx%d",
			w, h, cfg.GridSize, cfg.GridSize, needW, needH)
	}

	board := storage.BoardID(cfg.GridSize)
	opts := game.Options{Config: cfg, Logger: logger}
	var recorder tui.ScoreRecorder
	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Best = store.Best(board)
		recorder = store
	}

	ctrl := game.NewController(opts)
	session := tui.NewSession(ctrl, recorder, board, logger)

	logger.Info("game session started", "board", board, "seed", cfg.Seed)
	if err := tui.Run(ctrl, session); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("game session ended", "best", ctrl.Snapshot().BestScore)
	return nil
}
