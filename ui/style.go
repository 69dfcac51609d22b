package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Styles mirror the fixed color pairs the editor uses. The terminal's
// default pair stays untouched for ordinary tiles
var (
	StyleDefault = tcell.StyleDefault
	StyleTitle   = tcell.StyleDefault.Reverse(true)
	StyleRed     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleGreen   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleBlue    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	StyleStatus  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	StyleCursor  = tcell.StyleDefault.Reverse(true)
)
