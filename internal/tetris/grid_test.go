package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestGridFits(t *testing.T) {
	g := NewGrid(10, 20)

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"spawn", SpawnPiece(ShapeT, 10), true},
		{"past left wall", Piece{Shape: ShapeI, Pos: Point{X: -1, Y: 0}}, false},
		{"past right wall", Piece{Shape: ShapeI, Pos: Point{X: 7, Y: 0}}, false},
		{"below floor", Piece{Shape: ShapeO, Pos: Point{X: 0, Y: 19}}, false},
		{"resting on floor", Piece{Shape: ShapeO, Pos: Point{X: 0, Y: 18}}, true},
		{"empty box columns may hang outside", Piece{Shape: ShapeO, Pos: Point{X: -1, Y: 0}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Fits(tc.piece))
		})
	}

	g.Set(Point{X: 4, Y: 1}, Occupied(core.ColorRed))
	assert.False(t, g.Fits(SpawnPiece(ShapeT, 10)), "overlap with locked cell")
}

func TestGridLockAndFullRows(t *testing.T) {
	g := NewGrid(4, 4)
	g.Lock(Piece{Shape: ShapeI, Pos: Point{X: 0, Y: 2}})

	assert.Equal(t, []int{3}, g.FullRows())
	assert.True(t, g.At(Point{X: 2, Y: 3}).Filled)
	assert.Equal(t, core.ColorCyan, g.At(Point{X: 2, Y: 3}).Color)
}

func TestGridClearRowsPreservesOrder(t *testing.T) {
	g := NewGrid(3, 6)
	mark := func(x, y int, c core.Color) { g.Set(Point{X: x, Y: y}, Occupied(c)) }

	// row 1: marker A, row 2: full, row 3: marker B, row 4: full, row 5: marker C
	mark(0, 1, core.ColorRed)
	for x := 0; x < 3; x++ {
		mark(x, 2, core.ColorGray)
		mark(x, 4, core.ColorGray)
	}
	mark(1, 3, core.ColorGreen)
	mark(2, 5, core.ColorBlue)

	full := g.FullRows()
	require.Equal(t, []int{2, 4}, full)
	assert.Equal(t, 2, g.ClearRows(full))

	rows := g.Rows()
	for x := 0; x < 3; x++ {
		assert.False(t, rows[0][x].Filled, "new top row must be empty")
		assert.False(t, rows[1][x].Filled, "new top row must be empty")
	}
	assert.Equal(t, core.ColorRed, rows[3][0].Color, "A dropped by two")
	assert.Equal(t, core.ColorGreen, rows[4][1].Color, "B dropped by one")
	assert.Equal(t, core.ColorBlue, rows[5][2].Color, "C stayed")
	assert.Empty(t, g.FullRows())
}

func TestGridClearRowsNone(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(Point{X: 0, Y: 2}, Occupied(core.ColorRed))
	before := g.Rows()

	assert.Equal(t, 0, g.ClearRows(nil))
	assert.Equal(t, before, g.Rows())
}

func TestGridClearFourRows(t *testing.T) {
	g := NewGrid(4, 6)
	g.Set(Point{X: 3, Y: 1}, Occupied(core.ColorYellow))
	for y := 2; y < 6; y++ {
		for x := 0; x < 4; x++ {
			g.Set(Point{X: x, Y: y}, Occupied(core.ColorGray))
		}
	}

	assert.Equal(t, 4, g.ClearRows(g.FullRows()))
	assert.True(t, g.At(Point{X: 3, Y: 5}).Filled)
	filled := 0
	for _, row := range g.Rows() {
		for _, c := range row {
			if c.Filled {
				filled++
			}
		}
	}
	assert.Equal(t, 1, filled)
}

func TestGridResetAndClone(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(Point{X: 1, Y: 1}, Occupied(core.ColorRed))

	c := g.Clone()
	g.Reset()

	assert.False(t, g.At(Point{X: 1, Y: 1}).Filled)
	assert.True(t, c.At(Point{X: 1, Y: 1}).Filled, "clone must be independent")
}

func TestGridColumnHeight(t *testing.T) {
	g := NewGrid(3, 5)
	g.Set(Point{X: 0, Y: 2}, Occupied(core.ColorRed))
	g.Set(Point{X: 1, Y: 4}, Occupied(core.ColorRed))

	assert.Equal(t, 3, g.ColumnHeight(0))
	assert.Equal(t, 1, g.ColumnHeight(1))
	assert.Equal(t, 0, g.ColumnHeight(2))
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(Point{X: 5, Y: 5}, Occupied(core.ColorRed))
	assert.Equal(t, Empty, g.At(Point{X: 5, Y: 5}))
	assert.Equal(t, Empty, g.At(Point{X: -1, Y: 0}))
}
