package core

import (
	"github.com/gdamore/tcell/v2"
)

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Cell represents a single character cell with its display style
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer represents a 2D grid of cells backing one drawable surface
type Buffer struct {
	width  int
	height int
	lines  [][]Cell
}

// NewBuffer creates a new buffer with the given dimensions, cleared to spaces
func NewBuffer(width, height int) *Buffer {
	lines := make([][]Cell, height)
	for y := 0; y < height; y++ {
		lines[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			lines[y][x] = Cell{Rune: ' ', Style: tcell.StyleDefault}
		}
	}

	return &Buffer{
		width:  width,
		height: height,
		lines:  lines,
	}
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// GetCell returns the cell at the given position
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.lines[y][x], true
}

// SetCell sets the cell at the given position. Out-of-bounds writes are
// dropped and reported via the return value
func (b *Buffer) SetCell(x, y int, cell Cell) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	b.lines[y][x] = cell
	return true
}

// Fill overwrites every cell with the given rune and style
func (b *Buffer) Fill(r rune, style tcell.Style) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.lines[y][x] = Cell{Rune: r, Style: style}
		}
	}
}

// Resize resizes the buffer, preserving existing content where possible
func (b *Buffer) Resize(newWidth, newHeight int) {
	newLines := make([][]Cell, newHeight)
	for y := 0; y < newHeight; y++ {
		newLines[y] = make([]Cell, newWidth)
		for x := 0; x < newWidth; x++ {
			if y < b.height && x < b.width {
				newLines[y][x] = b.lines[y][x]
			} else {
				newLines[y][x] = Cell{Rune: ' ', Style: tcell.StyleDefault}
			}
		}
	}

	b.width = newWidth
	b.height = newHeight
	b.lines = newLines
}
