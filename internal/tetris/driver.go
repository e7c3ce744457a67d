package tetris

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Command is a discrete instruction accepted by a Driver.
type Command int

const (
	CmdLeft Command = iota
	CmdRight
	CmdRotate
	CmdDown
	CmdDrop
	CmdTick
	CmdNewGame
	CmdPause
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdRotate:
		return "rotate"
	case CmdDown:
		return "down"
	case CmdDrop:
		return "drop"
	case CmdTick:
		return "tick"
	case CmdNewGame:
		return "new_game"
	case CmdPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of board and score state.
type Snapshot struct {
	Rows     [][]Cell
	Active   Piece
	Next     Piece
	State    State
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
}

// Driver is the single serialization point for a Board and its
// ScoreKeeper. Player commands and the gravity loop run under one mutex,
// so a lock, clear and spawn sequence never interleaves with input.
type Driver struct {
	mu     sync.Mutex
	board  *Board
	keeper *ScoreKeeper
	logger *log.Logger
	wake   chan struct{}

	downGravity bool
}

// NewDriver wires keeper to board and returns a driver for both.
// A nil logger discards output.
func NewDriver(board *Board, keeper *ScoreKeeper, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	d := &Driver{
		board:  board,
		keeper: keeper,
		logger: logger,
		wake:   make(chan struct{}, 1),
	}
	board.Subscribe(keeper)
	board.Subscribe(ListenerFunc(d.logEvent))
	keeper.OnIntervalChange(func(time.Duration) { d.poke() })
	return d
}

// poke re-arms the gravity timer. It never blocks: a pending wake-up
// already covers the new interval.
func (d *Driver) poke() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *Driver) logEvent(ev Event) {
	switch e := ev.(type) {
	case NewGameEvent:
		d.logger.Info("new game")
	case RowsClearedEvent:
		d.logger.Debug("rows cleared", "count", e.Count, "lines", d.keeper.LinesCleared(), "level", d.keeper.Level())
	case NextPieceChangedEvent:
		d.logger.Debug("next piece", "shape", e.Shape)
	case GameOverEvent:
		d.logger.Info("game over", "score", d.keeper.Score(), "level", d.keeper.Level(), "lines", d.keeper.LinesCleared())
	}
}

// SetDownGravity makes every CmdDown apply an extra gravity step instead
// of restarting the gravity countdown.
func (d *Driver) SetDownGravity(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.downGravity = on
}

// Do runs one command atomically.
func (d *Driver) Do(cmd Command) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch cmd {
	case CmdLeft:
		d.board.MoveLeft()
	case CmdRight:
		d.board.MoveRight()
	case CmdRotate:
		d.board.RotateCW()
	case CmdDown:
		d.board.Down()
		if d.downGravity {
			d.board.Tick()
		} else {
			d.poke()
		}
	case CmdDrop:
		d.board.Drop()
		d.poke()
	case CmdTick:
		d.board.Tick()
	case CmdNewGame:
		d.board.NewGame()
	case CmdPause:
		d.board.SetPaused(d.board.State() == StateRunning)
		d.poke()
	}
}

// Snapshot returns a consistent copy of the current state.
func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	return Snapshot{
		Rows:     d.board.Rows(),
		Active:   d.board.Active(),
		Next:     d.board.Next(),
		State:    d.board.State(),
		Score:    d.keeper.Score(),
		Level:    d.keeper.Level(),
		Lines:    d.keeper.LinesCleared(),
		Interval: d.keeper.Interval(),
	}
}

// View runs fn with exclusive access to the board and keeper. fn must not
// retain either after returning.
func (d *Driver) View(fn func(b *Board, k *ScoreKeeper)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.board, d.keeper)
}

func (d *Driver) interval() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.keeper.Interval()
}

// Run drives gravity until ctx is cancelled. Each time the current
// interval elapses one Tick is applied; ticks are no-ops while the board
// is paused or over. Soft drops, hard drops, pauses and level changes
// restart the countdown.
func (d *Driver) Run(ctx context.Context) error {
	timer := time.NewTimer(d.interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.wake:
			timer.Reset(d.interval())
		case <-timer.C:
			d.Do(CmdTick)
			timer.Reset(d.interval())
		}
	}
}
