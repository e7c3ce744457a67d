package tetris

import (
	"errors"
	"fmt"
	"time"
)

// Scoring constants.
const (
	LinesPerLevel    = 5
	NextPieceBonus   = 4
	DefaultInterval  = time.Second
	minIntervalMilli = 1
)

// lineClearPoints is the base award for clearing 1..4 rows at once,
// multiplied by the current level.
var lineClearPoints = [5]int{0, 40, 100, 300, 1200}

// ErrInvalidRowCount marks a RowsClearedEvent with a count outside 1..4.
// A board that honors its locking contract never produces one.
var ErrInvalidRowCount = errors.New("tetris: invalid cleared row count")

// ScoreKeeper derives score, lines and level from board events and
// computes the gravity interval that the scheduler should use.
//
// Subscribe it to a Board with board.Subscribe(keeper).
type ScoreKeeper struct {
	score    int
	lines    int
	level    int
	over     bool
	initial  time.Duration
	interval time.Duration
	constant bool
	hooks    []func(time.Duration)
}

// NewScoreKeeper creates a keeper whose gravity starts at initial.
// A non-positive initial interval falls back to DefaultInterval.
func NewScoreKeeper(initial time.Duration) *ScoreKeeper {
	if initial <= 0 {
		initial = DefaultInterval
	}
	return &ScoreKeeper{
		level:    1,
		initial:  initial,
		interval: initial,
	}
}

// SetAcceleration controls whether each level up shortens the interval.
// Levels keep counting either way.
func (s *ScoreKeeper) SetAcceleration(on bool) {
	s.constant = !on
}

// OnIntervalChange registers a hook that receives every new gravity
// interval, both on level up and on reset for a new game.
func (s *ScoreKeeper) OnIntervalChange(fn func(time.Duration)) {
	s.hooks = append(s.hooks, fn)
}

// OnEvent implements Listener.
func (s *ScoreKeeper) OnEvent(ev Event) {
	switch e := ev.(type) {
	case RowsClearedEvent:
		s.rowsCleared(e.Count)
	case NextPieceChangedEvent:
		s.score += NextPieceBonus
	case NewGameEvent:
		s.reset()
	case GameOverEvent:
		s.over = e.Over
	}
}

func (s *ScoreKeeper) rowsCleared(n int) {
	if n < 1 || n >= len(lineClearPoints) {
		panic(fmt.Errorf("%w: %d", ErrInvalidRowCount, n))
	}

	s.lines += n
	s.score += lineClearPoints[n] * s.level

	// Level up only when the total lands on a multiple of LinesPerLevel.
	if s.lines%LinesPerLevel == 0 {
		s.level++
		if !s.constant {
			s.setInterval(speedUp(s.interval))
		}
	}
}

// speedUp returns interval/2 + interval/4 in whole milliseconds.
// The one millisecond floor is a guard for intervals under 2ms, where the
// formula would reach zero; it is not part of the speed curve.
func speedUp(d time.Duration) time.Duration {
	ms := d.Milliseconds()
	ms = ms/2 + ms/4
	if ms < minIntervalMilli {
		ms = minIntervalMilli
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *ScoreKeeper) reset() {
	s.score = 0
	s.lines = 0
	s.level = 1
	s.over = false
	s.setInterval(s.initial)
}

func (s *ScoreKeeper) setInterval(d time.Duration) {
	s.interval = d
	for _, fn := range s.hooks {
		fn(d)
	}
}

// Score returns the current score.
func (s *ScoreKeeper) Score() int {
	return s.score
}

// Level returns the current level, starting at 1.
func (s *ScoreKeeper) Level() int {
	return s.level
}

// LinesCleared returns the total rows cleared this game.
func (s *ScoreKeeper) LinesCleared() int {
	return s.lines
}

// LinesUntilNextLevel returns how many more rows are needed to level up.
func (s *ScoreKeeper) LinesUntilNextLevel() int {
	return LinesPerLevel - s.lines%LinesPerLevel
}

// Interval returns the gravity interval for the current level.
func (s *ScoreKeeper) Interval() time.Duration {
	return s.interval
}

// Over reports whether the last game has ended.
func (s *ScoreKeeper) Over() bool {
	return s.over
}
