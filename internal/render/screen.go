// Package render draws the runner's frame state into a 2D character buffer,
// decoupled from the terminal. The platform layer converts the buffer into
// styled output; games and the engine never touch the terminal directly.
package render

import "strings"

// Color is a foreground color slot for a screen cell, mapped to terminal
// colors by the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Cell is one character cell of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a double-buffered 2D cell buffer. Draw calls write into the back
// buffer; Flip publishes it as the front buffer read by the display. With
// double buffering disabled both names refer to the same storage.
type Screen struct {
	width   int
	height  int
	back    [][]Cell
	front   [][]Cell
	doubled bool
}

// NewScreen creates a screen buffer with the given dimensions.
func NewScreen(width, height int, doubleBuffered bool) *Screen {
	s := &Screen{
		width:   width,
		height:  height,
		doubled: doubleBuffered,
	}
	s.allocate()
	s.Clear()
	s.Flip()
	return s
}

func (s *Screen) allocate() {
	s.back = allocCells(s.width, s.height)
	if s.doubled {
		s.front = allocCells(s.width, s.height)
	} else {
		s.front = s.back
	}
}

func allocCells(w, h int) [][]Cell {
	cells := make([][]Cell, h)
	for y := range cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = blank
		}
		cells[y] = row
	}
	return cells
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the dimensions, discarding current content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
	s.Flip()
}

// Clear fills the back buffer with blanks.
func (s *Screen) Clear() {
	for y := range s.back {
		for x := range s.back[y] {
			s.back[y][x] = blank
		}
	}
}

// Flip publishes the back buffer. With double buffering the buffers swap so
// the next draw pass reuses the previous front storage.
func (s *Screen) Flip() {
	if s.doubled {
		s.back, s.front = s.front, s.back
	}
}

// Set places a rune with the default color. Out-of-bounds writes are
// silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r, Color: ColorDefault})
}

// SetColored places a rune with an explicit color.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	s.SetCell(x, y, Cell{Rune: r, Color: c})
}

// SetCell places a full cell.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.back[y][x] = c
}

// GetCell returns the front-buffer cell at (x, y), blank when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.front[y][x]
}

// DrawText writes a string horizontally, clipped at the bounds.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for i, r := range text {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally at row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	s.DrawText((s.width-len(text))/2, y, text, c)
}

// DrawHLine draws a horizontal run of the given rune.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// FillRect fills a rectangular area.
func (s *Screen) FillRect(x, y, w, h int, r rune, c Color) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.SetColored(x+dx, y+dy, r, c)
		}
	}
}

// OutlineRect draws a box outline with box-drawing characters.
func (s *Screen) OutlineRect(x, y, w, h int, c Color) {
	if w < 2 || h < 2 {
		return
	}
	s.SetColored(x, y, '┌', c)
	s.SetColored(x+w-1, y, '┐', c)
	s.SetColored(x, y+h-1, '└', c)
	s.SetColored(x+w-1, y+h-1, '┘', c)
	for i := 1; i < w-1; i++ {
		s.SetColored(x+i, y, '─', c)
		s.SetColored(x+i, y+h-1, '─', c)
	}
	for i := 1; i < h-1; i++ {
		s.SetColored(x, y+i, '│', c)
		s.SetColored(x+w-1, y+i, '│', c)
	}
}

// String renders the front buffer as plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.front[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the front-buffer row y as a plain string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.front[y][x].Rune)
	}
	return sb.String()
}
