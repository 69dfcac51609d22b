package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gridmire/gridmire/content"
	"github.com/gridmire/gridmire/ui"
)

// composeViewport repaints the whole viewport back buffer from the
// scene: tiles, then mobs over them, then the cursor cell reversed, then
// the selection menu when one is open. Callers queue the viewport after
func (s *Session) composeViewport() {
	vp := s.registry.Viewport()
	vp.Fill(' ', ui.StyleDefault)

	vw, vh := vp.Size()
	for y := 0; y < vh; y++ {
		for x := 0; x < vw; x++ {
			if mob, ok := s.scene.MobAt(x, y); ok {
				vp.SetCell(x, y, mob.Char, ui.StyleRed)
				continue
			}
			if tile, ok := s.scene.TileAt(x, y); ok {
				vp.SetCell(x, y, tile.Char, tileStyle(tile))
			}
		}
	}

	// Cursor keeps the rune beneath it visible
	under := ' '
	if mob, ok := s.scene.MobAt(s.cursorX, s.cursorY); ok {
		under = mob.Char
	} else if tile, ok := s.scene.TileAt(s.cursorX, s.cursorY); ok {
		under = tile.Char
	}
	vp.SetCell(s.cursorX, s.cursorY, under, ui.StyleCursor)

	if s.menu != nil {
		s.menu.draw(vp)
	}
}

func tileStyle(t content.Tile) tcell.Style {
	switch {
	case t.Name == "door":
		return ui.StyleGreen
	case t.Name == "enemy":
		return ui.StyleRed
	case t.Char >= '0' && t.Char <= '9':
		return ui.StyleBlue
	}
	return ui.StyleDefault
}
