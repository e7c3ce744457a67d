// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris list                 - List game variants
//	tetris play [variant]       - Play (default: tetris)
//	tetris serve                - Start SSH server for remote play
//	tetris scores [variant]     - Show high scores
//	tetris autoplay             - Let the bot play headless games
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible piece sequences
//	--db <path>        - Set database path (default: ~/.tetris/scores.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Log game events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tetris",
	Short:         "Tetris in your terminal",
	SilenceErrors: true,
	Long: `A falling-block puzzle game for the terminal, playable locally or over SSH.

Available commands:
  list      - Show game variants
  play      - Play a game
  serve     - Start SSH server for remote play
  scores    - View high scores
  autoplay  - Watch the bot play headless games

Examples:
  tetris play
  tetris play tetris_hard --difficulty easy
  tetris serve --ssh :2222
  tetris scores --interactive
  tetris autoplay --games 5`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every game event")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoplayCmd)
}

// newLogger returns a logger writing to --log-file when set, otherwise to
// fallback. The returned func closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// variantArg returns the first argument or the classic variant.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "tetris"
}
