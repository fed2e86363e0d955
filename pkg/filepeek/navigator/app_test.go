package navigator

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func TestNewApp(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		a := NewApp(nil)
		assert.NotNil(t, a)
		ap := a.(*appProxy)
		assert.Nil(t, ap.run)
		assert.Nil(t, ap.setInputCapture)
	})
	t.Run("not_nil", func(t *testing.T) {
		app := tview.NewApplication()
		a := NewApp(app)
		assert.NotNil(t, a)

		ap := a.(*appProxy)
		assert.NotNil(t, ap.setFocus)
		assert.NotNil(t, ap.setRoot)
		assert.NotNil(t, ap.enableMouse)
		assert.NotNil(t, ap.setInputCapture)
		assert.NotNil(t, ap.run)
		assert.NotNil(t, ap.stop)

		a.EnableMouse(true)
		root := tview.NewTextView()
		a.SetRoot(root, true)
		a.SetFocus(root)
		assert.Equal(t, root, app.GetFocus())

		capture := func(event *tcell.EventKey) *tcell.EventKey { return nil }
		a.SetInputCapture(capture)
		assert.NotNil(t, app.GetInputCapture())
	})
}

func TestAppProxy_Methods(t *testing.T) {
	var (
		focusCalled   bool
		rootCalled    bool
		mouseCalled   bool
		captureCalled bool
		runCalled     bool
		stopCalled    bool
	)

	errRun := errors.New("run failed")
	a := NewApp(nil,
		WithSetFocus(func(p tview.Primitive) { focusCalled = true }),
		WithSetRoot(func(root tview.Primitive, fullscreen bool) { rootCalled = true }),
		WithEnableMouse(func(b bool) { mouseCalled = true }),
		WithSetInputCapture(func(capture KeyCapture) { captureCalled = capture != nil }),
		WithRun(func() error { runCalled = true; return errRun }),
		WithStop(func() { stopCalled = true }),
	)

	t.Run("SetFocus", func(t *testing.T) {
		a.SetFocus(nil)
		assert.True(t, focusCalled)
	})

	t.Run("SetRoot", func(t *testing.T) {
		a.SetRoot(nil, true)
		assert.True(t, rootCalled)
	})

	t.Run("EnableMouse", func(t *testing.T) {
		a.EnableMouse(true)
		assert.True(t, mouseCalled)
	})

	t.Run("SetInputCapture", func(t *testing.T) {
		a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey { return event })
		assert.True(t, captureCalled)
	})

	t.Run("Run", func(t *testing.T) {
		err := a.Run()
		assert.ErrorIs(t, err, errRun)
		assert.True(t, runCalled)
	})

	t.Run("Stop", func(t *testing.T) {
		a.Stop()
		assert.True(t, stopCalled)
	})
}
