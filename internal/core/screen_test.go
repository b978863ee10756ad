package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with blanks
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '~', ColorBlue)
	cell := s.GetCell(3, 4)
	if cell.Rune != '~' {
		t.Errorf("GetCell rune = %q, expected '~'", cell.Rune)
	}
	if cell.Color != ColorBlue {
		t.Errorf("GetCell color = %v, expected blue", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(3, 4, 'X')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should reset the cell to the default color")
	}

	// Out of bounds GetCell returns a blank cell
	if s.GetCell(-1, -1) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != (Cell{Rune: ' ', Color: ColorDefault}) {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(2, 3, 'X', ColorGreen)

	s.Resize(20, 15)
	if s.Width() != 20 || s.Height() != 15 {
		t.Errorf("after Resize: %dx%d, expected 20x15", s.Width(), s.Height())
	}
	cell := s.GetCell(2, 3)
	if cell.Rune != 'X' || cell.Color != ColorGreen {
		t.Errorf("Resize lost content: got %+v at (2, 3)", cell)
	}
	if s.Get(19, 14) != ' ' {
		t.Error("new cells after growth should be blank")
	}

	// Shrinking clips content outside the new bounds
	s.Resize(3, 3)
	if s.Get(2, 2) != ' ' {
		t.Errorf("Get(2, 2) after shrink = %q, expected space", s.Get(2, 2))
	}
	s.Set(2, 3, 'Y') // out of bounds now, should be silent
	if s.Get(2, 3) != ' ' {
		t.Error("writes beyond the shrunk screen should be ignored")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello")
	}

	// Text extending past the edge is clipped
	s.DrawText(7, 0, "abcdef")
	if got := s.Row(0); got != "       abc" {
		t.Errorf("Row(0) = %q, expected %q", got, "       abc")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(0, 0, "hit", ColorRed)

	for i, r := range "hit" {
		cell := s.GetCell(i, 0)
		if cell.Rune != r || cell.Color != ColorRed {
			t.Errorf("cell %d = %+v, expected %q in red", i, cell, r)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	if s.Get(4, 0) != 'a' || s.Get(5, 0) != 'b' || s.Get(6, 0) != 'c' {
		t.Errorf("Row(0) = %q, expected abc centered at column 4", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(1, 1, 5, 3))

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 3, '└'},
		{5, 3, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}
	if s.Get(3, 1) != '─' {
		t.Errorf("top edge = %q, expected '─'", s.Get(3, 1))
	}
	if s.Get(1, 2) != '│' {
		t.Errorf("left edge = %q, expected '│'", s.Get(1, 2))
	}
	if s.Get(3, 2) != ' ' {
		t.Errorf("box interior = %q, expected space", s.Get(3, 2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected four spaces", got)
	}
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, expected four spaces", got)
	}
}
