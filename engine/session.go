// Package engine owns the editor's global state and frame loop: cursor,
// player level, current brush, the scene being edited, and the dispatch
// from key events to state changes. Each handled event ends with one
// flush of the redraw scheduler.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/gridmire/gridmire/config"
	"github.com/gridmire/gridmire/content"
	"github.com/gridmire/gridmire/input"
	"github.com/gridmire/gridmire/render"
	"github.com/gridmire/gridmire/scene"
	"github.com/gridmire/gridmire/ui"
)

// SoundPlayer is the feedback-tone surface the session drives
type SoundPlayer interface {
	Place()
	Error()
	Toggle() bool
}

// Session holds all editor state. It exclusively owns the scheduler;
// everything runs on the single frame-driving goroutine
type Session struct {
	screen    tcell.Screen
	cfg       config.Config
	keys      *input.KeyTable
	registry  *render.Registry
	scheduler *render.Scheduler
	scene     *scene.Scene
	sounds    SoundPlayer
	picker    *content.MobPicker

	cursorX, cursorY int
	playerLevel      int
	brush            content.Tile
	menu             *selectMenu
	statusMsg        string
	quit             bool
}

// NewSession builds the surface stack for the screen's current size and
// initializes editor state: cursor at the viewport center, floor brush,
// player level 1
func NewSession(screen tcell.Screen, cfg config.Config, sounds SoundPlayer, rng *rand.Rand) (*Session, error) {
	width, height := screen.Size()
	registry, err := ui.BuildSurfaces(width, height, cfg.Title)
	if err != nil {
		return nil, err
	}

	keys := input.DefaultKeyTable()
	cfg.ApplyKeys(keys)

	picker := content.NewMobPicker(rng)
	picker.IntervalSize = cfg.Mobs.IntervalSize
	picker.LevelFactor = cfg.Mobs.LevelFactor

	vw, vh := registry.Viewport().Size()
	floor, _ := content.TileByName("floor")

	s := &Session{
		screen:      screen,
		cfg:         cfg,
		keys:        keys,
		registry:    registry,
		scheduler:   render.NewScheduler(registry, screen),
		scene:       scene.New(vw, vh),
		sounds:      sounds,
		picker:      picker,
		cursorX:     vw / 2,
		cursorY:     vh / 2,
		playerLevel: 1,
		brush:       floor,
	}
	return s, nil
}

// Registry returns the session's surface registry
func (s *Session) Registry() *render.Registry {
	return s.registry
}

// Done reports whether a quit action was handled
func (s *Session) Done() bool {
	return s.quit
}

// Run paints the first frame and processes terminal events until quit.
// PollEvent returning nil means the screen was finalized
func (s *Session) Run() error {
	s.composeViewport()
	s.composeStatus()
	s.scheduler.RedrawAll()

	for !s.quit {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		s.Handle(ev)
	}
	return nil
}

// Handle processes one terminal event and flushes the queued redraws.
// The recompose flag is consumed here, before the flush, so a frame that
// touched the scene repaints the viewport exactly once
func (s *Session) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.resize()
		return
	case *tcell.EventKey:
		s.handleKey(ev)
	}

	if s.scheduler.TakeRecompose() {
		s.composeViewport()
		s.scheduler.Queue(s.registry.Viewport())
	}
	s.scheduler.FlushQueued()
}

func (s *Session) handleKey(ev *tcell.EventKey) {
	if s.menu != nil {
		s.menuKey(ev)
		return
	}

	switch s.keys.Lookup(ev) {
	case input.ActionQuit:
		s.execQuit()
	case input.ActionMoveUp:
		s.execMove(0, -1)
	case input.ActionMoveDown:
		s.execMove(0, 1)
	case input.ActionMoveLeft:
		s.execMove(-1, 0)
	case input.ActionMoveRight:
		s.execMove(1, 0)
	case input.ActionPlaceTile:
		s.execPlaceTile()
	case input.ActionErase:
		s.execErase()
	case input.ActionSpawnMob:
		s.execSpawnMob()
	case input.ActionSelectTile:
		s.execSelectTile()
	case input.ActionSelectMob:
		s.execSelectMob()
	case input.ActionLevelUp:
		s.execLevelChange(1)
	case input.ActionLevelDown:
		s.execLevelChange(-1)
	case input.ActionClearScene:
		s.execClearScene()
	case input.ActionToggleSound:
		s.execToggleSound()
	case input.ActionRedraw:
		s.execRedraw()
	}
}

// resize rebuilds the surface stack for the new terminal size and forces
// a full repaint. A terminal below the minimum layout size is ignored
// until it grows back
func (s *Session) resize() {
	width, height := s.screen.Size()
	registry, err := ui.BuildSurfaces(width, height, s.cfg.Title)
	if err != nil {
		return
	}

	s.registry = registry
	s.scheduler = render.NewScheduler(registry, s.screen)

	vw, vh := registry.Viewport().Size()
	s.scene.Resize(vw, vh)
	s.cursorX = clamp(s.cursorX, 0, vw-1)
	s.cursorY = clamp(s.cursorY, 0, vh-1)

	s.composeViewport()
	s.composeStatus()
	s.scheduler.RedrawAll()
	s.screen.Sync()
}

func (s *Session) queueStatus() {
	s.composeStatus()
	s.scheduler.Queue(s.registry.Status())
}

// composeStatus rewrites the status bar: a transient message when one is
// pending, otherwise the cursor/level/brush readout
func (s *Session) composeStatus() {
	status := s.registry.Status()
	status.FillRow(0, ' ', ui.StyleStatus)

	text := s.statusMsg
	if text == "" {
		text = fmt.Sprintf("%d,%d L%d %c", s.cursorX, s.cursorY, s.playerLevel, s.brush.Char)
	}
	status.Print(0, 0, text, ui.StyleStatus)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
