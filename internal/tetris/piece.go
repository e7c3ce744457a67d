// Package tetris is the board simulation and scoring state machine of the
// falling-block game. It knows nothing about terminals, timers or storage:
// drivers issue commands to a Board and react to the events it emits.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Point is a board coordinate or offset. X is the column, Y is the row;
// row 0 is the top of the well and rows grow downward.
type Point struct {
	X, Y int
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// AllShapes lists every shape in declaration order.
var AllShapes = [...]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// String returns the conventional one-letter name.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// ParseShape converts a one-letter name back to a Shape.
func ParseShape(s string) (Shape, bool) {
	for _, shape := range AllShapes {
		if shape.String() == s {
			return shape, true
		}
	}
	return ShapeI, false
}

// Color returns the cell color used when a piece of this shape locks.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeI:
		return core.ColorCyan
	case ShapeO:
		return core.ColorYellow
	case ShapeT:
		return core.ColorMagenta
	case ShapeS:
		return core.ColorGreen
	case ShapeZ:
		return core.ColorRed
	case ShapeJ:
		return core.ColorBlue
	case ShapeL:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// Rotation is one of four orientations, 0 being the spawn orientation.
type Rotation int

// CW returns the orientation after a clockwise quarter turn.
func (r Rotation) CW() Rotation {
	return (r + 1) % 4
}

// shapeCells holds the four occupied cells of every shape in every rotation,
// as offsets inside a 4×4 bounding box.
var shapeCells = [7][4][4]Point{
	ShapeI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	ShapeO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	ShapeT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	ShapeJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	ShapeL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Offsets returns the cell offsets of a shape in a rotation, relative to
// the top-left corner of its bounding box.
func Offsets(s Shape, r Rotation) [4]Point {
	return shapeCells[s][r%4]
}

// Piece is a tetromino placed on the board. It is a value type: moving or
// rotating returns a new Piece.
type Piece struct {
	Shape Shape
	Rot   Rotation
	Pos   Point // top-left corner of the bounding box
}

// SpawnPiece returns a piece of the given shape at the canonical spawn
// position for a well of the given width.
func SpawnPiece(s Shape, width int) Piece {
	return Piece{
		Shape: s,
		Rot:   0,
		Pos:   Point{X: (width - 4) / 2, Y: 0},
	}
}

// Cells returns the four absolute board cells covered by the piece.
func (p Piece) Cells() [4]Point {
	var cells [4]Point
	for i, off := range Offsets(p.Shape, p.Rot) {
		cells[i] = p.Pos.Add(off)
	}
	return cells
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Pos = p.Pos.Add(Point{X: dx, Y: dy})
	return p
}

// Rotated returns the piece turned a quarter clockwise in place,
// before any wall kick is applied.
func (p Piece) Rotated() Piece {
	p.Rot = p.Rot.CW()
	return p
}
