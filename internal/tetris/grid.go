package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Cell is one square of the well. The zero value is an empty cell.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Empty is the unoccupied cell.
var Empty = Cell{}

// Occupied returns a filled cell carrying the given color.
func Occupied(c core.Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Grid is a fixed-size well of cells, indexed [row][col].
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid allocates an empty grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p lies inside the well.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p. Out-of-bounds points read as Empty.
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Empty
	}
	return g.cells[p.Y][p.X]
}

// Set writes a cell. Out-of-bounds points are ignored.
func (g *Grid) Set(p Point, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y][p.X] = c
}

// Reset empties every cell in place.
func (g *Grid) Reset() {
	for y := range g.cells {
		clear(g.cells[y])
	}
}

// Fits reports whether every cell of the piece is inside the well and empty.
func (g *Grid) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if !g.InBounds(c) || g.cells[c.Y][c.X].Filled {
			return false
		}
	}
	return true
}

// Lock writes the piece's cells into the grid permanently.
func (g *Grid) Lock(p Piece) {
	cell := Occupied(p.Shape.Color())
	for _, c := range p.Cells() {
		g.Set(c, cell)
	}
}

// RowFull reports whether every cell of row y is filled.
func (g *Grid) RowFull(y int) bool {
	for _, c := range g.cells[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, top to bottom.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := range g.cells {
		if g.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes the given rows in a single bottom-up pass. Surviving
// rows keep their relative order and drop by the number of removed rows
// beneath them; the same number of empty rows appear at the top.
// Returns the number of rows removed.
func (g *Grid) ClearRows(rows []int) int {
	if len(rows) == 0 {
		return 0
	}

	remove := make([]bool, g.height)
	removed := 0
	for _, y := range rows {
		if y >= 0 && y < g.height && !remove[y] {
			remove[y] = true
			removed++
		}
	}

	dst := g.height - 1
	for src := g.height - 1; src >= 0; src-- {
		if remove[src] {
			continue
		}
		if dst != src {
			copy(g.cells[dst], g.cells[src])
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		clear(g.cells[dst])
	}

	return removed
}

// Rows returns a deep copy of the cells, indexed [row][col].
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for y := range g.cells {
		rows[y] = append([]Cell(nil), g.cells[y]...)
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: g.Rows()}
}

// ColumnHeight returns the height of the highest filled cell in column x,
// measured from the floor. An empty column has height 0.
func (g *Grid) ColumnHeight(x int) int {
	for y := 0; y < g.height; y++ {
		if g.cells[y][x].Filled {
			return g.height - y
		}
	}
	return 0
}
