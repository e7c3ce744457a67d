package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)

	inner := outer.Centered(22, 22)
	if inner.X != 29 || inner.Y != 1 {
		t.Errorf("Centered(22, 22) = (%d, %d), expected (29, 1)", inner.X, inner.Y)
	}
	if inner.W != 22 || inner.H != 22 {
		t.Errorf("Centered should keep size, got %dx%d", inner.W, inner.H)
	}

	// Larger than the container: offset goes negative
	big := NewRect(0, 0, 10, 10).Centered(20, 20)
	if big.X != -5 || big.Y != -5 {
		t.Errorf("Centered(20, 20) = (%d, %d), expected (-5, -5)", big.X, big.Y)
	}
}
