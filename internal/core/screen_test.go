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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')
	if s.Get(4, 4) != '#' {
		t.Errorf("After Fill, expected '#', got %q", s.Get(4, 4))
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Error("After Clear, screen should be blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1)[2:7]; got != "Hello" {
		t.Errorf("Row(1)[2:7] = %q, expected %q", got, "Hello")
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, got row %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("unexpected corners:\n%s", s.String())
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Errorf("unexpected edges:\n%s", s.String())
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'Z')
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'Z' {
		t.Errorf("Get(1, 1) = %q, expected 'Z'", s.Get(1, 1))
	}
}

func TestViewportMapsWorldToCells(t *testing.T) {
	s := NewScreen(80, 26)
	v := FitViewport(s, 800, 500, 1)

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 1},
		{"center", 400, 250, 40, 13},
		{"far corner clamps", 800, 500, 79, 25},
		{"negative clamps", -10, -10, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := v.Cell(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("Cell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}

	v.FillRect(s, NewRect(0, 0, 20, 20), '#', ColorRed)
	if s.Get(0, 1) != '#' || s.Get(1, 1) != '#' {
		t.Errorf("FillRect did not paint the expected cells: %q", s.Row(1))
	}
}

func TestViewportWorldXInvertsCell(t *testing.T) {
	s := NewScreen(80, 24)
	v := FitViewport(s, 800, 500, 2)

	for _, col := range []int{0, 1, 40, 79} {
		x := v.WorldX(col)
		if got, _ := v.Cell(x, 0); got != col {
			t.Errorf("Cell(WorldX(%d)) = %d", col, got)
		}
	}
}
