package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	State    string // running, paused, game_over
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
	Active   tetris.Piece
	Next     tetris.Shape
	Filled   int // locked cells in the well
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	filled := 0
	for _, row := range g.board.Rows() {
		for _, c := range row {
			if c.Filled {
				filled++
			}
		}
	}

	state := g.board.State().String()
	if g.paused {
		state = tetris.StatePaused.String()
	}

	return Snapshot{
		Tick:     g.tick,
		State:    state,
		Score:    g.keeper.Score(),
		Level:    g.keeper.Level(),
		Lines:    g.keeper.LinesCleared(),
		Interval: g.keeper.Interval(),
		Active:   g.board.Active(),
		Next:     g.board.Next().Shape,
		Filled:   filled,
	}
}
