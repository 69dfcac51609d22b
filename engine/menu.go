package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gridmire/gridmire/render"
	"github.com/gridmire/gridmire/ui"
)

// selectMenu is a catalog picker drawn over the viewport. It captures
// key input while open; pick is called with the selected label index
type selectMenu struct {
	title    string
	labels   []string
	selected int
	top      int
	pick     func(i int)
}

// menuKey handles input while a menu is open. Navigation is j/k or
// arrows, Enter picks, Escape cancels
func (s *Session) menuKey(ev *tcell.EventKey) {
	m := s.menu

	switch ev.Key() {
	case tcell.KeyEnter:
		m.pick(m.selected)
		s.menu = nil
		s.scheduler.MarkRecompose()
		s.queueStatus()
		return
	case tcell.KeyEscape:
		s.menu = nil
		s.scheduler.MarkRecompose()
		s.queueStatus()
		return
	case tcell.KeyUp:
		m.move(-1)
		s.scheduler.MarkRecompose()
		return
	case tcell.KeyDown:
		m.move(1)
		s.scheduler.MarkRecompose()
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			m.move(-1)
			s.scheduler.MarkRecompose()
			return
		case 'j':
			m.move(1)
			s.scheduler.MarkRecompose()
			return
		}
	}

	s.sounds.Error()
}

func (m *selectMenu) move(delta int) {
	next := m.selected + delta
	if next < 0 || next >= len(m.labels) {
		return
	}
	m.selected = next
}

// visibleRows is how many labels fit inside the menu border
func (m *selectMenu) visibleRows(height int) int {
	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// draw paints the menu box into the viewport's top-left corner, scrolled
// so the selected label stays visible
func (m *selectMenu) draw(vp *render.Surface) {
	vw, vh := vp.Size()
	w, h := ui.SelectWidth, ui.SelectHeight
	if w > vw {
		w = vw
	}
	if h > vh {
		h = vh
	}
	if w < 3 || h < 3 {
		return
	}

	rows := m.visibleRows(h)
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+rows {
		m.top = m.selected - rows + 1
	}

	drawBox(vp, 0, 0, w, h, ui.StyleDefault)
	vp.Print(2, 0, " "+m.title+" ", ui.StyleTitle)

	for row := 0; row < rows; row++ {
		i := m.top + row
		if i >= len(m.labels) {
			break
		}
		style := ui.StyleDefault
		if i == m.selected {
			style = ui.StyleCursor
		}
		label := m.labels[i]
		if len(label) > w-2 {
			label = label[:w-2]
		}
		vp.Print(1, 1+row, label, style)
	}
}

// drawBox draws a single-line border for an inset region of a surface
func drawBox(vp *render.Surface, x, y, w, h int, style tcell.Style) {
	vp.SetCell(x, y, '┌', style)
	vp.SetCell(x+w-1, y, '┐', style)
	vp.SetCell(x, y+h-1, '└', style)
	vp.SetCell(x+w-1, y+h-1, '┘', style)
	for cx := x + 1; cx < x+w-1; cx++ {
		vp.SetCell(cx, y, '─', style)
		vp.SetCell(cx, y+h-1, '─', style)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		vp.SetCell(x, cy, '│', style)
		vp.SetCell(x+w-1, cy, '│', style)
		for cx := x + 1; cx < x+w-1; cx++ {
			vp.SetCell(cx, cy, ' ', style)
		}
	}
}
