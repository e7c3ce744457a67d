package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagGames     int
	flagMaxPieces int
	flagRealtime  bool
	flagSave      bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let the bot play headless games",
	Long: `Run games without a terminal UI, steered by the placement bot.

By default the bot drops pieces as fast as it can. With --realtime gravity
runs on its normal timer alongside the bot.

Examples:
  tetris autoplay
  tetris autoplay --games 10 --max-pieces 1000
  tetris autoplay --seed 42 --difficulty fixed
  tetris autoplay --save`,
	Args:         cobra.NoArgs,
	RunE:         runAutoplay,
	SilenceUsage: true,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	autoplayCmd.Flags().IntVar(&flagMaxPieces, "max-pieces", 500, "Stop a game after this many pieces (0 = until game over)")
	autoplayCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run gravity on its timer while the bot plays")
	autoplayCmd.Flags().BoolVar(&flagSave, "save", false, "Store results in the scores database")
	autoplayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	autoplayCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runAutoplay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("autoplay", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagDifficulty != "" {
		preset, perr := config.ParsePreset(flagDifficulty)
		if perr != nil {
			return perr
		}
		config.ApplyTetrisPreset(&cfg, preset)
	}

	var store *storage.Store
	if flagSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	best := 0
	for i := range flagGames {
		snap, err := autoplayGame(ctx, cfg, seed+int64(i), logger.With("game", i+1))
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Warn("interrupted")
				return nil
			}
			return err
		}

		logger.Info("game finished",
			"game", i+1,
			"score", snap.Score,
			"level", snap.Level,
			"lines", snap.Lines,
			"over", snap.State == tetris.StateGameOver,
		)
		best = max(best, snap.Score)

		if store != nil {
			if _, err := store.SaveResult(storage.GameResult{
				GameID: "tetris",
				Score:  snap.Score,
				Level:  snap.Level,
				Lines:  snap.Lines,
			}); err != nil {
				logger.Error("could not save result", "error", err)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Played %d game(s), best score %d\n", flagGames, best)
	return nil
}

// autoplayGame plays one game to completion or the piece limit and returns
// the final state.
func autoplayGame(ctx context.Context, cfg config.TetrisConfig, seed int64, logger *log.Logger) (tetris.Snapshot, error) {
	src, err := tetris.NewSource(tetris.Randomizer(cfg.Randomizer), seed)
	if err != nil {
		return tetris.Snapshot{}, err
	}

	board := tetris.NewBoard(
		tetris.WithSize(cfg.Board.Width, cfg.Board.Height),
		tetris.WithSource(src),
	)
	keeper := tetris.NewScoreKeeper(cfg.Gravity.Interval())
	keeper.SetAcceleration(cfg.Gravity.Accelerate)

	d := tetris.NewDriver(board, keeper, logger)
	d.SetDownGravity(cfg.Gravity.DownGravity)
	d.Do(tetris.CmdNewGame)

	if flagRealtime {
		gctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go d.Run(gctx)
	}

	err = tetris.Play(ctx, d, flagMaxPieces)
	return d.Snapshot(), err
}
