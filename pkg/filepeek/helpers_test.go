package filepeek

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func pressKey(p tview.Primitive, event *tcell.EventKey) {
	p.InputHandler()(event, func(tview.Primitive) {})
}

func enterKey() *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
}

func escKey() *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}
