package engine

import (
	"fmt"

	"github.com/gridmire/gridmire/content"
)

func (s *Session) execQuit() {
	s.quit = true
}

func (s *Session) execMove(dx, dy int) {
	vw, vh := s.scene.Size()
	nx, ny := s.cursorX+dx, s.cursorY+dy
	if nx < 0 || nx >= vw || ny < 0 || ny >= vh {
		s.sounds.Error()
		return
	}

	s.cursorX, s.cursorY = nx, ny
	s.statusMsg = ""
	s.scheduler.MarkRecompose()
	s.queueStatus()
}

func (s *Session) execPlaceTile() {
	if !s.scene.SetTile(s.cursorX, s.cursorY, s.brush) {
		s.sounds.Error()
		return
	}
	s.sounds.Place()
	s.statusMsg = ""
	s.scheduler.MarkRecompose()
	s.queueStatus()
}

func (s *Session) execErase() {
	s.scene.Erase(s.cursorX, s.cursorY)
	s.statusMsg = ""
	s.scheduler.MarkRecompose()
	s.queueStatus()
}

func (s *Session) execSpawnMob() {
	mob, ok := s.picker.Pick(s.playerLevel)
	if !ok {
		s.sounds.Error()
		s.statusMsg = "no encounters"
		s.queueStatus()
		return
	}

	s.scene.SetMob(s.cursorX, s.cursorY, mob)
	s.sounds.Place()
	s.statusMsg = mob.Name
	s.scheduler.MarkRecompose()
	s.queueStatus()
}

func (s *Session) execSelectTile() {
	names := content.TileNames()
	labels := make([]string, len(names))
	for i, name := range names {
		tile, _ := content.TileByName(name)
		labels[i] = tile.Label()
	}

	s.menu = &selectMenu{
		title:  "tile",
		labels: labels,
		pick: func(i int) {
			tile, _ := content.TileByName(names[i])
			s.brush = tile
		},
	}
	s.scheduler.MarkRecompose()
	s.queueStatus()
}

func (s *Session) execSelectMob() {
	names := content.MobNames()
	labels := make([]string, len(names))
	for i, name := range names {
		mob, _ := content.MobByName(name)
		labels[i] = mob.Label()
	}

	s.menu = &selectMenu{
		title:  "mob",
		labels: labels,
		pick: func(i int) {
			mob, _ := content.MobByName(names[i])
			s.scene.SetMob(s.cursorX, s.cursorY, mob)
			s.statusMsg = mob.Name
		},
	}
	s.scheduler.MarkRecompose()
	s.queueStatus()
}

func (s *Session) execLevelChange(delta int) {
	level := s.playerLevel + delta
	if level < 1 {
		s.sounds.Error()
		return
	}
	s.playerLevel = level
	s.statusMsg = fmt.Sprintf("level %d", level)
	s.queueStatus()
}

func (s *Session) execClearScene() {
	s.scene.Clear()
	s.statusMsg = "cleared"
	s.scheduler.MarkRecompose()
	s.queueStatus()
}

func (s *Session) execToggleSound() {
	if s.sounds.Toggle() {
		s.statusMsg = "sound on"
	} else {
		s.statusMsg = "sound off"
	}
	s.queueStatus()
}

// execRedraw forces a full repaint, the recovery path for a corrupted
// terminal
func (s *Session) execRedraw() {
	s.composeViewport()
	s.composeStatus()
	s.scheduler.RedrawAll()
	s.screen.Sync()
}
