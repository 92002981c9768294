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

	// Check that it's initialized with spaces
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

	s.SetColored(3, 3, '@', ColorRed)
	cell := s.GetCell(3, 3)
	if cell.Rune != '@' {
		t.Errorf("GetCell(3, 3).Rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("GetCell(3, 3).Color = %v, expected ColorRed", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(3, 3, '#')
	if s.GetCell(3, 3).Color != ColorDefault {
		t.Error("Set should reset the cell to the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorGreen)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank default cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')

	s.Resize(20, 15)

	if s.Width() != 20 || s.Height() != 15 {
		t.Errorf("After Resize, size = %dx%d, expected 20x15", s.Width(), s.Height())
	}

	// New cells should be writable
	s.Set(19, 14, 'Y')
	if s.Get(19, 14) != 'Y' {
		t.Error("Should be able to write to new cells after resize")
	}

	// Resize to same size should be a no-op
	s.Set(1, 1, 'Z')
	s.Resize(20, 15)
	if s.Get(1, 1) != 'Z' {
		t.Error("Resize to same dimensions should not clear the buffer")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, r := range expected {
		if s.Get(2+i, 1) != r {
			t.Errorf("Expected %q at (%d, 1), got %q", r, 2+i, s.Get(2+i, 1))
		}
	}

	// Text running off the edge should be clipped, not panic
	s.DrawText(18, 0, "Overflow")
	if s.Get(18, 0) != 'O' || s.Get(19, 0) != 'v' {
		t.Error("Clipped text should still draw within bounds")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(0, 0, "hit", ColorBrightGreen)

	for i := range 3 {
		if s.GetCell(i, 0).Color != ColorBrightGreen {
			t.Errorf("Expected ColorBrightGreen at (%d, 0)", i)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4)

	if s.Get(1, 1) != '┌' {
		t.Errorf("Expected '┌' at top-left, got %q", s.Get(1, 1))
	}
	if s.Get(5, 1) != '┐' {
		t.Errorf("Expected '┐' at top-right, got %q", s.Get(5, 1))
	}
	if s.Get(1, 4) != '└' {
		t.Errorf("Expected '└' at bottom-left, got %q", s.Get(1, 4))
	}
	if s.Get(5, 4) != '┘' {
		t.Errorf("Expected '┘' at bottom-right, got %q", s.Get(5, 4))
	}
	if s.Get(3, 1) != '─' {
		t.Errorf("Expected '─' on top edge, got %q", s.Get(3, 1))
	}
	if s.Get(1, 2) != '│' {
		t.Errorf("Expected '│' on left edge, got %q", s.Get(1, 2))
	}
}

func TestScreenDrawMessageBox(t *testing.T) {
	s := NewScreen(40, 12)
	s.DrawMessageBox("GAME OVER", "Press R to restart")

	out := s.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("Message box should contain the title")
	}
	if !strings.Contains(out, "Press R to restart") {
		t.Error("Message box should contain the subtitle")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	result := s.String()
	expected := "A  \n  B"
	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}
