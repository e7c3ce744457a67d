// Package tetris adapts the board simulation in internal/tetris to the
// platform's fixed-step Game interface.
package tetris

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Variant selects the rule set.
type Variant string

const (
	VariantClassic Variant = "tetris"
	VariantHard    Variant = "tetris_hard"
)

// Game implements registry.Game for tetris.
type Game struct {
	variant Variant
	cfg     config.TetrisConfig
	board   *tetris.Board
	keeper  *tetris.ScoreKeeper
	log     *log.Logger

	tick     uint64
	stepDur  time.Duration // simulated time per Step
	gravity  time.Duration // accumulated time since the last gravity step
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the logger used for game events. nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a classic tetris game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewHard creates a game where every soft drop is followed by an extra
// gravity step.
func NewHard() *Game {
	return &Game{variant: VariantHard}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantHard), func() registry.Game {
		return NewHard()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantHard {
		return "Tetris (Hard)"
	}
	return "Tetris"
}

// Reset builds a fresh board from the current config and starts a new game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.log = logger.With("game", g.ID())
	g.cfg = g.loadConfig()

	src, err := tetris.NewSource(tetris.Randomizer(g.cfg.Randomizer), rc.Seed)
	if err != nil {
		g.log.Warn("falling back to bag randomizer", "err", err)
		src = tetris.NewBagSource(rc.Seed)
	}

	g.board = tetris.NewBoard(
		tetris.WithSize(g.cfg.Board.Width, g.cfg.Board.Height),
		tetris.WithSource(src),
	)
	g.keeper = tetris.NewScoreKeeper(g.cfg.Gravity.Interval())
	g.keeper.SetAcceleration(g.cfg.Gravity.Accelerate)
	g.keeper.OnIntervalChange(func(d time.Duration) {
		g.gravity = 0
		g.log.Debug("gravity interval", "interval", d)
	})
	g.board.Subscribe(g.keeper)
	g.board.Subscribe(tetris.ListenerFunc(g.logEvent))

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.stepDur = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.paused = false
	g.Resize(rc.ScreenW, rc.ScreenH)

	g.board.NewGame()
}

func (g *Game) loadConfig() config.TetrisConfig {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		g.log.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultTetrisConfig()
	}

	if difficultyPreset != "" {
		preset, err := config.ParsePreset(difficultyPreset)
		if err != nil {
			g.log.Warn("ignoring difficulty", "err", err)
		} else {
			config.ApplyTetrisPreset(&cfg, preset)
		}
	}

	if g.variant == VariantHard {
		cfg.Gravity.DownGravity = true
	}
	return cfg
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	lw, lh := g.layoutSize()
	g.tooSmall = w < lw || h < lh
}

func (g *Game) logEvent(ev tetris.Event) {
	switch e := ev.(type) {
	case tetris.NewGameEvent:
		g.log.Debug("new game", "interval", g.keeper.Interval())
	case tetris.RowsClearedEvent:
		g.log.Debug("rows cleared", "count", e.Count, "score", g.keeper.Score(), "level", g.keeper.Level())
	case tetris.NextPieceChangedEvent:
		g.log.Debug("next piece", "shape", e.Shape)
	case tetris.GameOverEvent:
		g.log.Info("game over", "score", g.keeper.Score(), "level", g.keeper.Level(), "lines", g.keeper.LinesCleared())
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		g.paused = false
		g.gravity = 0
		g.board.NewGame()
		return core.StepResult{State: g.State()}
	}

	over := g.board.State() == tetris.StateGameOver
	if input.Has(core.ActionPause) && !over {
		g.paused = !g.paused
		g.board.SetPaused(g.paused)
	}

	if over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	g.applyGravity()

	return core.StepResult{State: g.State()}
}

// processInput applies at most one command per action for this frame.
func (g *Game) processInput(input core.InputFrame) {
	if input.Has(core.ActionLeft) {
		g.board.MoveLeft()
	}
	if input.Has(core.ActionRight) {
		g.board.MoveRight()
	}
	if input.Has(core.ActionRotate) {
		g.board.RotateCW()
	}
	if input.Has(core.ActionSoftDrop) {
		g.board.Down()
		// With down gravity the extra step replaces the countdown restart.
		if g.cfg.Gravity.DownGravity {
			g.board.Tick()
		} else {
			g.gravity = 0
		}
	}
	if input.Has(core.ActionHardDrop) {
		g.board.Drop()
		g.gravity = 0
	}
}

// applyGravity fires one board tick for every full interval accumulated.
func (g *Game) applyGravity() {
	g.gravity += g.stepDur
	for g.board.State() == tetris.StateRunning {
		interval := g.keeper.Interval()
		if g.gravity < interval {
			return
		}
		g.gravity -= interval
		g.board.Tick()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.keeper.Score(),
		Level:    g.keeper.Level(),
		Lines:    g.keeper.LinesCleared(),
		GameOver: g.board.State() == tetris.StateGameOver,
		Paused:   g.paused,
	}
}
