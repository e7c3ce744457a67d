package tetris

// Event is a state-change notification emitted by a Board.
// The set of events is closed; switch on the concrete type.
type Event interface {
	boardEvent()
}

// NewGameEvent is emitted after the board has been reset for a new game.
type NewGameEvent struct{}

func (NewGameEvent) boardEvent() {}

// GameOverEvent is emitted when a freshly spawned piece collides.
type GameOverEvent struct {
	Over bool
}

func (GameOverEvent) boardEvent() {}

// RowsClearedEvent is emitted after a lock that removed one or more rows.
// It is never emitted with a zero count.
type RowsClearedEvent struct {
	Count int
}

func (RowsClearedEvent) boardEvent() {}

// NextPieceChangedEvent is emitted each time a new next piece is drawn
// after a lock.
type NextPieceChangedEvent struct {
	Shape Shape
}

func (NextPieceChangedEvent) boardEvent() {}

// Listener receives board events. Delivery is synchronous and happens on
// the goroutine that issued the triggering command.
type Listener interface {
	OnEvent(ev Event)
}

// ListenerFunc adapts an ordinary function to a Listener.
type ListenerFunc func(ev Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev Event) {
	f(ev)
}
