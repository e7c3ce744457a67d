package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// recorder captures every event a board emits.
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) reset() {
	r.events = nil
}

func (r *recorder) count(match func(Event) bool) int {
	n := 0
	for _, ev := range r.events {
		if match(ev) {
			n++
		}
	}
	return n
}

func isRowsCleared(ev Event) bool {
	_, ok := ev.(RowsClearedEvent)
	return ok
}

func isNextPiece(ev Event) bool {
	_, ok := ev.(NextPieceChangedEvent)
	return ok
}

func isGameOver(ev Event) bool {
	_, ok := ev.(GameOverEvent)
	return ok
}

// newTestBoard returns a started 10×20 board fed by a scripted source,
// with a recorder and a score keeper subscribed in that order.
func newTestBoard(t *testing.T, shapes ...Shape) (*Board, *recorder, *ScoreKeeper) {
	t.Helper()
	rec := &recorder{}
	keeper := NewScoreKeeper(DefaultInterval)
	b := NewBoard(WithSize(DefaultWidth, DefaultHeight), WithSource(NewQueueSource(shapes...)))
	b.Subscribe(rec)
	b.Subscribe(keeper)
	b.NewGame()
	return b, rec, keeper
}

// fillRow fills row y except the listed columns.
func fillRow(b *Board, y int, holes ...int) {
	skip := make(map[int]bool, len(holes))
	for _, x := range holes {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.grid.Set(Point{X: x, Y: y}, Occupied(core.ColorGray))
		}
	}
}
