package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Layout constants. Each well cell is two columns wide so blocks look square.
const (
	cellW    = 2
	panelW   = 22
	gap      = 2
	titleH   = 1
	previewH = 6
)

const (
	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'
)

func (g *Game) wellSize() (w, h int) {
	return g.cfg.Board.Width*cellW + 2, g.cfg.Board.Height + 2
}

func (g *Game) layoutSize() (w, h int) {
	ww, wh := g.wellSize()
	return ww + gap + panelW, titleH + wh
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}

	lw, lh := g.layoutSize()
	if dst.Width() < lw || dst.Height() < lh {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", lw, lh))
		return
	}

	area := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(lw, lh)
	ww, wh := g.wellSize()
	well := core.NewRect(area.X, area.Y+titleH, ww, wh)
	panel := core.NewRect(well.Right()+gap, well.Y, panelW, wh)

	dst.DrawTextColored(well.X, area.Y, g.Title(), core.ColorBrightWhite)
	g.renderWell(dst, well)
	g.renderPanel(dst, panel)

	switch {
	case g.board.State() == tetris.StateGameOver:
		g.renderOverlay(dst, well, "GAME OVER", fmt.Sprintf("Score %d", g.keeper.Score()), "R to restart")
	case g.paused:
		g.renderOverlay(dst, well, "PAUSED", "", "P to resume")
	}
}

func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well, core.ColorGray)

	originX, originY := well.X+1, well.Y+1
	put := func(p tetris.Point, r rune, c core.Color) {
		x := originX + p.X*cellW
		for i := range cellW {
			dst.SetColored(x+i, originY+p.Y, r, c)
		}
	}

	for y, row := range g.board.Rows() {
		for x, cell := range row {
			p := tetris.Point{X: x, Y: y}
			if cell.Filled {
				put(p, blockRune, cell.Color)
			} else {
				dst.SetColored(originX+x*cellW+1, originY+y, emptyRune, core.ColorGray)
			}
		}
	}

	if g.board.State() == tetris.StateGameOver {
		return
	}

	active := g.board.Active()
	ghost := active
	ghost.Pos.Y = g.board.GhostRow()
	if ghost.Pos.Y != active.Pos.Y {
		for _, c := range ghost.Cells() {
			put(c, ghostRune, core.ColorGray)
		}
	}
	for _, c := range active.Cells() {
		put(c, blockRune, active.Shape.Color())
	}
}

func (g *Game) renderPanel(dst *core.Screen, panel core.Rect) {
	preview := core.NewRect(panel.X, panel.Y, 4*cellW+4, previewH)
	dst.DrawBox(preview, core.ColorGray)
	dst.DrawText(preview.X+2, preview.Y, " Next ")

	next := g.board.Next()
	for _, off := range tetris.Offsets(next.Shape, 0) {
		x := preview.X + 2 + off.X*cellW
		for i := range cellW {
			dst.SetColored(x+i, preview.Y+1+off.Y, blockRune, next.Shape.Color())
		}
	}

	y := preview.Bottom() + 1
	stat := func(label string, value int) {
		dst.DrawTextColored(panel.X, y, label, core.ColorGray)
		dst.DrawTextColored(panel.X+8, y, fmt.Sprintf("%d", value), core.ColorBrightWhite)
		y++
	}
	stat("Score", g.keeper.Score())
	stat("Level", g.keeper.Level())
	stat("Lines", g.keeper.LinesCleared())

	y++
	n := g.keeper.LinesUntilNextLevel()
	unit := "lines"
	if n == 1 {
		unit = "line"
	}
	dst.DrawText(panel.X, y, fmt.Sprintf("Next level in %d %s", n, unit))

	help := []string{
		"←/→ move   ↑ rotate",
		"↓ soft   space drop",
		"p pause  r restart",
	}
	for i, line := range help {
		dst.DrawTextColored(panel.X, panel.Bottom()-len(help)+i, line, core.ColorGray)
	}
}

// renderOverlay draws a centered message box over the well.
func (g *Game) renderOverlay(dst *core.Screen, well core.Rect, title, line, hint string) {
	box := well.Centered(well.W-2, 5)
	dst.FillRect(box)
	dst.DrawBox(box, core.ColorBrightWhite)

	center := func(y int, text string, c core.Color) {
		x := box.X + (box.W-len([]rune(text)))/2
		dst.DrawTextColored(x, y, text, c)
	}
	center(box.Y+1, title, core.ColorBrightWhite)
	if line != "" {
		center(box.Y+2, line, core.ColorDefault)
	}
	center(box.Y+3, hint, core.ColorGray)
}
