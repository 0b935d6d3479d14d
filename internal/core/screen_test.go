package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '●', StyleFruit)
	cell := s.Get(3, 2)
	if cell.Rune != '●' || cell.Style != StyleFruit {
		t.Errorf("Get(3, 2) = %+v, expected fruit cell", cell)
	}

	// Out-of-bounds writes are ignored, reads return a blank cell
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds Get = %+v, expected blank", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', StyleObstacle)
	s.Clear()
	if got := s.Get(1, 1); got.Rune != ' ' || got.Style != StyleDefault {
		t.Errorf("after Clear, Get(1, 1) = %+v", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Resize(20, 8)
	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("Resize: got %dx%d, expected 20x8", s.Width(), s.Height())
	}
	// Same size is a no-op
	s.Resize(20, 8)
	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("no-op Resize changed dimensions")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")
	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)
	want := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, want)
	}
}

func TestDrawDottedBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawDottedBox(0, 0, 5, 3)
	want := strings.Join([]string{
		"·⋯⋯⋯·",
		"⋮   ⋮",
		"·⋯⋯⋯·",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("DrawDottedBox:\n%s\nexpected:\n%s", got, want)
	}
}

func TestRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q", got)
	}
}
