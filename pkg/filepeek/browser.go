package filepeek

import (
	"context"
	"errors"

	"github.com/datatug/filepeek/pkg/browser"
	"github.com/datatug/filepeek/pkg/filepeek/navigator"
	"github.com/datatug/filepeek/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// Browser connects key presses to the navigation controller and the
// controller's frames to the View.
type Browser struct {
	ctx        context.Context
	app        navigator.App
	view       *View
	controller *browser.Controller
}

func NewBrowser(ctx context.Context, app navigator.App, store files.Store, logger zerolog.Logger) *Browser {
	view := NewView()
	view.SetFocusFunc(app.SetFocus)
	b := &Browser{
		ctx:        ctx,
		app:        app,
		view:       view,
		controller: browser.NewController(store, view, logger),
	}
	view.SetSelectedFunc(func(index int) {
		b.dispatch(browser.EntrySelected{Index: index})
	})
	return b
}

// Start installs the view as the application root and lists dir.
func (b *Browser) Start(dir string) error {
	b.app.EnableMouse(true)
	b.app.SetRoot(b.view, true)
	b.app.SetInputCapture(b.inputCapture)
	return b.controller.Start(b.ctx, dir)
}

func (b *Browser) State() browser.State {
	return b.controller.State()
}

func (b *Browser) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		b.dispatch(browser.Back{})
		return nil
	case tcell.KeyCtrlC:
		b.dispatch(browser.Quit{})
		return nil
	case tcell.KeyRune:
		if event.Rune() == 'q' {
			b.dispatch(browser.Quit{})
			return nil
		}
	default:
	}
	return event
}

func (b *Browser) dispatch(ev browser.Event) {
	if err := b.controller.Handle(b.ctx, ev); errors.Is(err, browser.ErrQuit) {
		b.app.Stop()
	}
}
