package tetris

import (
	"context"
	"math"
)

// Placement is a target orientation and column for the active piece.
type Placement struct {
	Rot Rotation
	X   int
}

// Heuristic weights for board evaluation.
const (
	weightHeight    = -0.51
	weightLines     = 0.76
	weightHoles     = -0.36
	weightBumpiness = -0.18
)

// BestPlacement evaluates every orientation and column for the active
// piece, simulating a hard drop on a copy of the well, and returns the
// highest-scoring placement. ok is false when no placement fits.
func BestPlacement(rows [][]Cell, active Piece) (best Placement, ok bool) {
	if len(rows) == 0 {
		return Placement{}, false
	}
	width, height := len(rows[0]), len(rows)
	base := &Grid{width: width, height: height, cells: rows}

	bestScore := math.Inf(-1)
	for rot := Rotation(0); rot < 4; rot++ {
		for x := -3; x < width; x++ {
			p := Piece{Shape: active.Shape, Rot: rot, Pos: Point{X: x, Y: active.Pos.Y}}
			if !base.Fits(p) {
				continue
			}
			for base.Fits(p.Moved(0, 1)) {
				p = p.Moved(0, 1)
			}

			g := base.Clone()
			g.Lock(p)
			cleared := g.ClearRows(g.FullRows())

			if score := evaluate(g, cleared); score > bestScore {
				bestScore = score
				best = Placement{Rot: rot, X: x}
				ok = true
			}
		}
	}
	return best, ok
}

func evaluate(g *Grid, cleared int) float64 {
	aggregate, bumpiness, holes := 0, 0, 0
	prev := -1
	for x := 0; x < g.width; x++ {
		h := g.ColumnHeight(x)
		aggregate += h
		if prev >= 0 {
			bumpiness += abs(h - prev)
		}
		prev = h

		for y := g.height - h; y < g.height; y++ {
			if !g.cells[y][x].Filled {
				holes++
			}
		}
	}
	return weightHeight*float64(aggregate) +
		weightLines*float64(cleared) +
		weightHoles*float64(holes) +
		weightBumpiness*float64(bumpiness)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Play lets the placement heuristic steer pieces through d until the game
// ends, ctx is cancelled, or maxPieces pieces have been dropped (0 means
// no limit). Gravity may run concurrently; a piece that locks early is
// simply re-planned.
func Play(ctx context.Context, d *Driver, maxPieces int) error {
	for dropped := 0; maxPieces == 0 || dropped < maxPieces; dropped++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		snap := d.Snapshot()
		if snap.State == StateGameOver {
			return nil
		}
		if snap.State == StatePaused {
			d.Do(CmdPause)
		}

		target, ok := BestPlacement(snap.Rows, snap.Active)
		if ok {
			steer(d, target, len(snap.Rows[0]))
		}
		d.Do(CmdDrop)
	}
	return nil
}

// steer rotates and shifts the active piece toward target on a well of
// the given width. Rotation goes first because wall kicks may shift the
// piece sideways.
func steer(d *Driver, target Placement, width int) {
	for range 4 {
		if d.Snapshot().Active.Rot == target.Rot {
			break
		}
		d.Do(CmdRotate)
	}

	for range width + 4 {
		dx := target.X - d.Snapshot().Active.Pos.X
		switch {
		case dx < 0:
			d.Do(CmdLeft)
		case dx > 0:
			d.Do(CmdRight)
		default:
			return
		}
	}
}
