package tetris

// Wall kick candidates for clockwise rotation, indexed by the rotation the
// piece is turning FROM. Values are the standard SRS offsets with the row
// axis flipped so that +Y points down the well. The first candidate is
// always the unshifted rotation.
var (
	kicksJLSTZ = [4][5]Point{
		// 0 -> 1
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		// 1 -> 2
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		// 2 -> 3
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		// 3 -> 0
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	}

	kicksI = [4][5]Point{
		// 0 -> 1
		{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		// 1 -> 2
		{{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		// 2 -> 3
		{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		// 3 -> 0
		{{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	}

	kicksO = []Point{{0, 0}}
)

// KickOffsets returns the ordered offsets to try when rotating a piece of
// the given shape clockwise out of rotation from.
func KickOffsets(s Shape, from Rotation) []Point {
	switch s {
	case ShapeO:
		return kicksO
	case ShapeI:
		return kicksI[from%4][:]
	default:
		return kicksJLSTZ[from%4][:]
	}
}
