package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gridmire/gridmire/core"
)

// Role identifies a surface's place in the standard stack
type Role uint8

const (
	RoleRoot Role = iota
	RoleContainer
	RoleViewport
	RoleStatus
)

func (r Role) String() string {
	switch r {
	case RoleRoot:
		return "root"
	case RoleContainer:
		return "container"
	case RoleViewport:
		return "viewport"
	case RoleStatus:
		return "status"
	}
	return "unknown"
}

// Surface is a rectangular drawable region with a fixed position on the
// terminal. Drawing mutates its cell buffer only; nothing reaches the
// display until the scheduler refreshes it. Surface identity is pointer
// identity: equality of content never makes two surfaces interchangeable
type Surface struct {
	role Role
	x, y int
	buf  *core.Buffer
}

// NewSurface creates a surface of the given role at terminal position
// (x, y) with the given dimensions
func NewSurface(role Role, x, y, width, height int) *Surface {
	return &Surface{
		role: role,
		x:    x,
		y:    y,
		buf:  core.NewBuffer(width, height),
	}
}

// Role returns the surface's role in the stack
func (s *Surface) Role() Role {
	return s.role
}

// Origin returns the surface's terminal position
func (s *Surface) Origin() (x, y int) {
	return s.x, s.y
}

// Size returns the surface's dimensions
func (s *Surface) Size() (width, height int) {
	return s.buf.Width(), s.buf.Height()
}

// SetCell writes a single cell at surface-local coordinates
func (s *Surface) SetCell(x, y int, r rune, style tcell.Style) bool {
	return s.buf.SetCell(x, y, core.Cell{Rune: r, Style: style})
}

// Print writes text at surface-local coordinates, clipping at the right
// edge. Wide runes occupy two columns; the trailing column is padded so
// the blit never emits a half rune
func (s *Surface) Print(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > s.buf.Width() {
			break
		}
		s.buf.SetCell(col, y, core.Cell{Rune: r, Style: style})
		for i := 1; i < w; i++ {
			s.buf.SetCell(col+i, y, core.Cell{Rune: ' ', Style: style})
		}
		col += w
	}
}

// Fill overwrites the whole surface with one rune and style
func (s *Surface) Fill(r rune, style tcell.Style) {
	s.buf.Fill(r, style)
}

// FillRow overwrites a single row with one rune and style
func (s *Surface) FillRow(y int, r rune, style tcell.Style) {
	for x := 0; x < s.buf.Width(); x++ {
		s.buf.SetCell(x, y, core.Cell{Rune: r, Style: style})
	}
}

// Box drawing characters: top-left, horizontal, top-right, vertical,
// bottom-left, bottom-right
var boxChars = [6]rune{'┌', '─', '┐', '│', '└', '┘'}

// Box draws a single-line border around the surface edge
func (s *Surface) Box(style tcell.Style) {
	w, h := s.buf.Width(), s.buf.Height()
	if w < 2 || h < 2 {
		return
	}

	s.SetCell(0, 0, boxChars[0], style)
	s.SetCell(w-1, 0, boxChars[2], style)
	s.SetCell(0, h-1, boxChars[4], style)
	s.SetCell(w-1, h-1, boxChars[5], style)

	for x := 1; x < w-1; x++ {
		s.SetCell(x, 0, boxChars[1], style)
		s.SetCell(x, h-1, boxChars[1], style)
	}
	for y := 1; y < h-1; y++ {
		s.SetCell(0, y, boxChars[3], style)
		s.SetCell(w-1, y, boxChars[3], style)
	}
}

// refresh stages the surface's cells into the display back buffer.
// No commit happens here; the scheduler decides when to Show
func (s *Surface) refresh(d Display) {
	w, h := s.buf.Width(), s.buf.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell, _ := s.buf.GetCell(x, y)
			d.SetContent(s.x+x, s.y+y, cell.Rune, nil, cell.Style)
		}
	}
}
