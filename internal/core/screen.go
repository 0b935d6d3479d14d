package core

import "strings"

// StyleID identifies one of the semantic styles used by the game. The
// platform layer maps each ID to a concrete terminal style; the core only
// tags cells with intent.
type StyleID uint8

const (
	StyleDefault StyleID = iota
	StyleSnake
	StyleFruit
	StyleObstacle
	StyleCollision
	StyleKey      // key hints in help lines
	StyleScoreBar // the score line above the level
	StyleSelected // the highlighted menu item
)

// Cell is one character of the screen buffer together with its style.
type Cell struct {
	Rune  rune
	Style StyleID
}

// Screen is a 2D cell buffer for composing a frame. It decouples drawing
// from the terminal: screens render themselves into it, and the platform
// turns the buffer into styled output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the buffer width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the buffer height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the buffer dimensions and clears the content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the buffer with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places an unstyled rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, r, StyleDefault)
}

// SetCell places a styled rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, style StyleID) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at the given position, or an unstyled space for
// out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipped to the
// buffer.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawStyled(x, y, text, StyleDefault)
}

// DrawStyled writes a styled string horizontally starting at (x, y).
func (s *Screen) DrawStyled(x, y int, text string, style StyleID) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, r, style)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// FillRow sets every cell of a row to the given rune and style.
func (s *Screen) FillRow(y int, r rune, style StyleID) {
	for x := 0; x < s.width; x++ {
		s.SetCell(x, y, r, style)
	}
}

// DrawBox draws a solid box outline with corners at (x, y) and
// (x+w-1, y+h-1) using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int) {
	s.Set(x, y, '┌')
	s.Set(x+w-1, y, '┐')
	s.Set(x, y+h-1, '└')
	s.Set(x+w-1, y+h-1, '┘')
	for i := x + 1; i < x+w-1; i++ {
		s.Set(i, y, '─')
		s.Set(i, y+h-1, '─')
	}
	for j := y + 1; j < y+h-1; j++ {
		s.Set(x, j, '│')
		s.Set(x+w-1, j, '│')
	}
}

// DrawDottedBox draws a dotted box outline, used for wraparound levels
// where the border is permeable.
func (s *Screen) DrawDottedBox(x, y, w, h int) {
	s.Set(x, y, '·')
	s.Set(x+w-1, y, '·')
	s.Set(x, y+h-1, '·')
	s.Set(x+w-1, y+h-1, '·')
	for i := x + 1; i < x+w-1; i++ {
		s.Set(i, y, '⋯')
		s.Set(i, y+h-1, '⋯')
	}
	for j := y + 1; j < y+h-1; j++ {
		s.Set(x, j, '⋮')
		s.Set(x+w-1, j, '⋮')
	}
}

// String flattens the buffer to plain text, one line per row. Styles are
// dropped; this is mainly for tests and screenshots.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.cells[y][x].Rune)
	}
	return sb.String()
}
