package tetris

import "time"

// Default well dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// State is the lifecycle state of a Board.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Board owns the well, the active and next pieces and the game state.
// Commands never fail: an illegal move leaves the board unchanged.
//
// A Board is not safe for concurrent use. Hosts that issue commands from
// more than one goroutine serialize them through a Driver.
type Board struct {
	grid      *Grid
	source    PieceSource
	active    Piece
	next      Piece
	state     State
	listeners []Listener
}

// BoardOption configures a Board at construction.
type BoardOption func(*Board)

// WithSize sets the well dimensions.
func WithSize(width, height int) BoardOption {
	return func(b *Board) {
		b.grid = NewGrid(width, height)
	}
}

// WithSource sets the piece source.
func WithSource(src PieceSource) BoardOption {
	return func(b *Board) {
		b.source = src
	}
}

// NewBoard creates a board. It starts in StateGameOver with an empty well;
// call NewGame to begin play.
func NewBoard(opts ...BoardOption) *Board {
	b := &Board{
		grid:  NewGrid(DefaultWidth, DefaultHeight),
		state: StateGameOver,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.source == nil {
		b.source = NewBagSource(time.Now().UnixNano())
	}
	return b
}

// Subscribe registers a listener. Listeners are notified in registration order.
func (b *Board) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

func (b *Board) emit(ev Event) {
	for _, l := range b.listeners {
		l.OnEvent(ev)
	}
}

// Width returns the number of columns in the well.
func (b *Board) Width() int {
	return b.grid.Width()
}

// Height returns the number of rows in the well.
func (b *Board) Height() int {
	return b.grid.Height()
}

// State returns the current lifecycle state.
func (b *Board) State() State {
	return b.state
}

// Active returns the falling piece.
func (b *Board) Active() Piece {
	return b.active
}

// Next returns the queued piece at its spawn position.
func (b *Board) Next() Piece {
	return b.next
}

// Rows returns a copy of the locked cells, indexed [row][col].
func (b *Board) Rows() [][]Cell {
	return b.grid.Rows()
}

// Cell returns the locked cell at p.
func (b *Board) Cell(p Point) Cell {
	return b.grid.At(p)
}

// GhostRow returns the row the active piece's bounding box would occupy
// after a hard drop.
func (b *Board) GhostRow() int {
	p := b.active
	for b.grid.Fits(p.Moved(0, 1)) {
		p = p.Moved(0, 1)
	}
	return p.Pos.Y
}

// SetPaused moves the board between running and paused. It has no effect
// once the game is over.
func (b *Board) SetPaused(paused bool) {
	switch {
	case paused && b.state == StateRunning:
		b.state = StatePaused
	case !paused && b.state == StatePaused:
		b.state = StateRunning
	}
}

func (b *Board) playable() bool {
	return b.state == StateRunning
}

// NewGame clears the well, draws the active and next pieces and starts play.
func (b *Board) NewGame() {
	b.grid.Reset()
	w := b.grid.Width()
	b.active = SpawnPiece(b.source.NextShape(), w)
	b.next = SpawnPiece(b.source.NextShape(), w)
	b.state = StateRunning
	b.emit(NewGameEvent{})
}

// MoveLeft shifts the active piece one column left if there is room.
func (b *Board) MoveLeft() {
	b.shift(-1)
}

// MoveRight shifts the active piece one column right if there is room.
func (b *Board) MoveRight() {
	b.shift(1)
}

func (b *Board) shift(dx int) {
	if !b.playable() {
		return
	}
	if moved := b.active.Moved(dx, 0); b.grid.Fits(moved) {
		b.active = moved
	}
}

// RotateCW turns the active piece clockwise, trying each wall kick in
// order. If no candidate fits the piece is left as it was.
func (b *Board) RotateCW() {
	if !b.playable() {
		return
	}
	rotated := b.active.Rotated()
	for _, kick := range KickOffsets(b.active.Shape, b.active.Rot) {
		if cand := rotated.Moved(kick.X, kick.Y); b.grid.Fits(cand) {
			b.active = cand
			return
		}
	}
}

// Down moves the active piece one row down, or locks it if it is resting
// on the floor or on locked cells.
func (b *Board) Down() {
	if !b.playable() {
		return
	}
	b.stepDown()
}

// Tick is one gravity step. It behaves exactly like Down and is the entry
// point for the periodic scheduler.
func (b *Board) Tick() {
	b.Down()
}

// Drop moves the active piece down as far as it goes and locks it.
func (b *Board) Drop() {
	if !b.playable() {
		return
	}
	for b.grid.Fits(b.active.Moved(0, 1)) {
		b.active = b.active.Moved(0, 1)
	}
	b.lock()
}

func (b *Board) stepDown() {
	if moved := b.active.Moved(0, 1); b.grid.Fits(moved) {
		b.active = moved
		return
	}
	b.lock()
}

// lock fuses the active piece into the well, clears full rows, promotes
// the next piece and checks for game over. Events go out in that order.
func (b *Board) lock() {
	b.grid.Lock(b.active)

	if n := b.grid.ClearRows(b.grid.FullRows()); n > 0 {
		b.emit(RowsClearedEvent{Count: n})
	}

	w := b.grid.Width()
	b.active = SpawnPiece(b.next.Shape, w)
	b.next = SpawnPiece(b.source.NextShape(), w)
	b.emit(NextPieceChangedEvent{Shape: b.next.Shape})

	if !b.grid.Fits(b.active) {
		b.state = StateGameOver
		b.emit(GameOverEvent{Over: true})
	}
}
