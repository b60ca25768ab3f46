package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one terminal position.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' '}

// Screen is an off-terminal character buffer. Games draw into it and the
// front end turns it into styled text. Writes outside the buffer are dropped.
type Screen struct {
	w, h  int
	cells []Cell // row-major, w*h
}

func NewScreen(width, height int) *Screen {
	s := &Screen{w: width, h: height, cells: make([]Cell, width*height)}
	s.Clear()
	return s
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

// Resize changes the buffer size and keeps the overlapping top-left region.
func (s *Screen) Resize(width, height int) {
	if width == s.w && height == s.h {
		return
	}
	old := *s
	*s = *NewScreen(width, height)
	keepW := min(old.w, width)
	for y := range min(old.h, height) {
		copy(s.cells[y*width:y*width+keepW], old.cells[y*old.w:y*old.w+keepW])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) Set(x, y int, r rune) {
	s.SetWithColor(x, y, r, ColorDefault)
}

func (s *Screen) SetWithColor(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.w+x] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space outside the buffer.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.w+x]
}

// DrawText writes text left to right from (x, y), one cell per rune.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextWithColor(x, y, text, ColorDefault)
}

func (s *Screen) DrawTextWithColor(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetWithColor(x, y, r, c)
		x++
	}
}

// DrawTextCentered centers text horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.w-utf8.RuneCountInString(text))/2, y, text)
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// DrawRect fills r with fill.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// Row returns row y without colors. Rows outside the buffer are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var b strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// String returns all rows joined by newlines, without colors.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
