// snake is a terminal snake game.
//
// Usage:
//
//	snake play              - Play in this terminal
//	snake serve             - Start SSH server for remote play
//	snake scores            - Show high scores
//	snake sim --moves ...   - Run a scripted game headless and print the board
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--config <path>     - Use a specific config YAML
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic grid game for the terminal.

Steer the snake to the food, grow longer and avoid the walls and your
own tail. Every piece of food is worth 10 points.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a scripted game without a terminal UI

Examples:
  snake play
  snake play --seed 42
  snake serve --ssh :2222
  snake scores
  snake sim --seed 7 --moves "....DDDLLL"`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig resolves the game settings. A zero --seed is replaced by the
// current time unless keepZeroSeed is set.
func loadConfig(logger *log.Logger, keepZeroSeed bool) (core.RuntimeConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	logger.Debug("config loaded", "source", source, "grid", cfg.Grid.Size, "tick_ms", cfg.TickMS)

	seed := flagSeed
	if seed == 0 && !keepZeroSeed {
		seed = time.Now().UnixNano()
	}
	return cfg.RuntimeConfig(seed), nil
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned close function releases the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the scores database, or returns nil with a warning so the
// game still runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
