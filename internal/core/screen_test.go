package core

import (
	"strings"
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if runeAt(s, x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", runeAt(s, x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if runeAt(s, 5, 5) != 'X' {
		t.Errorf("rune at (5, 5) = %q, expected 'X'", runeAt(s, 5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if runeAt(s, -1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if runeAt(s, 100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(1, 2, '█', ColorCyan)
	cell := s.GetCell(1, 2)
	if cell.Rune != '█' || cell.Color != ColorCyan {
		t.Errorf("GetCell(1, 2) = %+v, expected cyan block", cell)
	}

	s.Clear()
	if s.GetCell(1, 2).Color != ColorDefault {
		t.Error("Clear should reset cell color")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if runeAt(s, 2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, runeAt(s, 2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if runeAt(s, 18, 0) != 'H' || runeAt(s, 19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextColoredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "─x", ColorGray)

	if runeAt(s, 0, 0) != '─' || runeAt(s, 1, 0) != 'x' {
		t.Errorf("Multibyte runes should occupy one cell each, got %q", s.Row(0))
	}
	if s.GetCell(1, 0).Color != ColorGray {
		t.Error("DrawTextColored should apply color to every rune")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if runeAt(s, x, 2) != 'H' || runeAt(s, x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r, ColorWhite)

	if runeAt(s, 1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", runeAt(s, 1, 1))
	}
	if runeAt(s, 5, 1) != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", runeAt(s, 5, 1))
	}
	if runeAt(s, 1, 4) != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", runeAt(s, 1, 4))
	}
	if runeAt(s, 5, 4) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", runeAt(s, 5, 4))
	}

	for x := 2; x < 5; x++ {
		if runeAt(s, x, 1) != '─' || runeAt(s, x, 4) != '─' {
			t.Errorf("Horizontal edges should be '─' at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if runeAt(s, 1, y) != '│' || runeAt(s, 5, y) != '│' {
			t.Errorf("Vertical edges should be '│' at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorWhite {
		t.Error("Box should carry the requested color")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 5)
	for y := 0; y < 5; y++ {
		s.DrawText(0, y, "#####")
	}

	s.FillRect(NewRect(1, 1, 3, 3))

	if runeAt(s, 2, 2) != ' ' {
		t.Error("FillRect should blank the area")
	}
	if runeAt(s, 0, 0) != '#' || runeAt(s, 4, 4) != '#' {
		t.Error("FillRect should not touch outside area")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
