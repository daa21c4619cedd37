package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 6)

	if s.Width() != 20 || s.Height() != 6 {
		t.Errorf("size = %dx%d, expected 20x6", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}

	neg := NewScreen(-3, -1)
	if neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size should clamp to 0, got %dx%d", neg.Width(), neg.Height())
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: '█', Color: ColorSand})
	c := s.GetCell(5, 5)
	if c.Rune != '█' || c.Color != ColorSand {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	s.Set(1, 1, 'X')
	if s.Get(1, 1) != 'X' || s.GetCell(1, 1).Color != ColorDefault {
		t.Errorf("Set should write an uncoloured rune, got %+v", s.GetCell(1, 1))
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(2, 0, "héllo", ColorAmber)

	if got := s.Row(0); got != "  héllo   " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(3, 0).Color != ColorAmber {
		t.Error("DrawText should colour its cells")
	}

	// Clipped at the right edge
	s.DrawText(8, 1, "abc", ColorDefault)
	if got := s.Row(1); got != "        ab" {
		t.Errorf("clipped Row(1) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "hi", ColorDefault)
	if got := s.Row(0); got != "    hi    " {
		t.Errorf("centered Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := strings.Join([]string{
		"┌───┐",
		"│   │",
		"└───┘",
	}, "\n")
	if s.String() != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", s.String(), expected)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should use the given colour")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Errorf("Resize size = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the screen")
	}

	// Same size is a no-op
	s.Set(0, 0, 'Y')
	s.Resize(6, 2)
	if s.Get(0, 0) != 'Y' {
		t.Error("Resize to the same size should keep content")
	}
}

func TestScreenClearAndRow(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Clear()
	if s.String() != "   \n   " {
		t.Errorf("after Clear String() = %q", s.String())
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("out of range Row = %q", got)
	}
}
