package input

import (
	"github.com/gdamore/tcell/v2"
)

// Action identifies an editor operation bound to a key
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionPlaceTile
	ActionErase
	ActionSpawnMob
	ActionSelectTile
	ActionSelectMob
	ActionLevelUp
	ActionLevelDown
	ActionClearScene
	ActionToggleSound
	ActionRedraw
	ActionCancel
)

// actionNames maps config binding names to actions
var actionNames = map[string]Action{
	"quit":         ActionQuit,
	"move_up":      ActionMoveUp,
	"move_down":    ActionMoveDown,
	"move_left":    ActionMoveLeft,
	"move_right":   ActionMoveRight,
	"place_tile":   ActionPlaceTile,
	"erase":        ActionErase,
	"spawn_mob":    ActionSpawnMob,
	"select_tile":  ActionSelectTile,
	"select_mob":   ActionSelectMob,
	"level_up":     ActionLevelUp,
	"level_down":   ActionLevelDown,
	"clear_scene":  ActionClearScene,
	"toggle_sound": ActionToggleSound,
	"redraw":       ActionRedraw,
}

// ParseAction resolves a config binding name to an action
func ParseAction(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

// KeyTable maps terminal keys to editor actions. Special keys and rune
// keys are kept separate because tcell reports them separately
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: vi motion keys plus
// arrows, space to place, single letters for the rest
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlL:  ActionRedraw,
			tcell.KeyEscape: ActionCancel,
			tcell.KeyDelete: ActionErase,
		},
		Runes: map[rune]Action{
			'k': ActionMoveUp,
			'j': ActionMoveDown,
			'h': ActionMoveLeft,
			'l': ActionMoveRight,
			' ': ActionPlaceTile,
			'x': ActionErase,
			'e': ActionSpawnMob,
			't': ActionSelectTile,
			'm': ActionSelectMob,
			'+': ActionLevelUp,
			'-': ActionLevelDown,
			'C': ActionClearScene,
			's': ActionToggleSound,
			'q': ActionQuit,
		},
	}
}

// Bind attaches an action to a rune, replacing any previous binding of
// that rune
func (kt *KeyTable) Bind(r rune, a Action) {
	kt.Runes[r] = a
}

// Lookup resolves a key event to an action. Unbound keys resolve to
// ActionNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		if a, ok := kt.Runes[ev.Rune()]; ok {
			return a
		}
		return ActionNone
	}
	if a, ok := kt.Keys[ev.Key()]; ok {
		return a
	}
	return ActionNone
}
