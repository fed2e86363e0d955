package navigator

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

//go:generate mockgen -destination=../../tviewmocks/mock_app.go -package=tviewmocks github.com/datatug/filepeek/pkg/filepeek/navigator App

// App is the subset of *tview.Application the browser talks to.
type App interface {
	Run() error
	Stop()
	SetRoot(root tview.Primitive, fullscreen bool)
	SetFocus(p tview.Primitive)
	EnableMouse(bool)
	SetInputCapture(capture KeyCapture)
}

type (
	Focuser    func(p tview.Primitive)
	RootSetter func(root tview.Primitive, fullscreen bool)
	KeyCapture func(event *tcell.EventKey) *tcell.EventKey
)

type AppMethod func(na *appProxy)

func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{}
	if app != nil {
		a.setFocus = func(primitive tview.Primitive) {
			_ = app.SetFocus(primitive)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.setInputCapture = func(capture KeyCapture) {
			_ = app.SetInputCapture(capture)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithSetFocus(setFocus Focuser) AppMethod {
	return func(na *appProxy) {
		na.setFocus = setFocus
	}
}

func WithSetRoot(setRoot RootSetter) AppMethod {
	return func(na *appProxy) {
		na.setRoot = setRoot
	}
}

func WithEnableMouse(enableMouse func(bool)) AppMethod {
	return func(na *appProxy) {
		na.enableMouse = enableMouse
	}
}

func WithSetInputCapture(setInputCapture func(KeyCapture)) AppMethod {
	return func(na *appProxy) {
		na.setInputCapture = setInputCapture
	}
}

func WithRun(run func() error) AppMethod {
	return func(na *appProxy) {
		na.run = run
	}
}

func WithStop(stop func()) AppMethod {
	return func(na *appProxy) {
		na.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	setFocus        Focuser
	setRoot         RootSetter
	setInputCapture func(KeyCapture)
	enableMouse     func(bool)
	run             func() error
	stop            func()
}

func (n appProxy) EnableMouse(b bool) {
	n.enableMouse(b)
}

func (n appProxy) SetFocus(p tview.Primitive) {
	n.setFocus(p)
}

func (n appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	n.setRoot(root, fullscreen)
}

func (n appProxy) SetInputCapture(capture KeyCapture) {
	n.setInputCapture(capture)
}

func (n appProxy) Run() error {
	return n.run()
}

func (n appProxy) Stop() {
	n.stop()
}
