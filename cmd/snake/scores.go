package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagClear bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display high scores for the configured board size.

On a terminal this opens an interactive table; tab switches between board
sizes. When output is piped, or with --plain, the top 10 are printed.

Examples:
  snake scores
  snake scores --plain
  snake scores --config ./big-board.yaml
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the board")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text even on a terminal")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	board := storage.BoardID(cfg.Grid.Size)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(board); err != nil {
			return err
		}
		logger.Info("scores cleared", "board", board)
		fmt.Printf("Cleared scores for %s\n", board)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, board, width, height)
	}

	return printScores(os.Stdout, store, board)
}

// printScores writes the top 10 and a stats summary as plain text.
func printScores(w io.Writer, store tui.ScoreSource, board string) error {
	scores, err := store.TopScores(board, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", board)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Length", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.Length,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(board)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.StatsLine(stats))
	return nil
}
