package filepeek

import (
	"context"
	"fmt"

	"github.com/datatug/filepeek/pkg/filepeek/fpsettings"
	"github.com/datatug/filepeek/pkg/filepeek/navigator"
	"github.com/datatug/filepeek/pkg/files"
	"github.com/datatug/filepeek/pkg/files/osfile"
	"github.com/datatug/filepeek/pkg/logging"
	"github.com/rivo/tview"
)

var (
	newApp = func() navigator.App {
		return navigator.NewApp(tview.NewApplication())
	}
	newStore = func() files.Store {
		return osfile.NewStore("/")
	}
	newLogger = logging.New
)

// Run browses o.Dir until the user quits. It fails without starting the UI
// when the log file or the starting directory cannot be opened.
func Run(ctx context.Context, o fpsettings.Options) error {
	o, err := fpsettings.Resolve(o)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(o.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		_ = closer.Close()
	}()

	app := newApp()
	b := NewBrowser(ctx, app, newStore(), logger)
	if err = b.Start(o.Dir); err != nil {
		return err
	}
	return app.Run()
}
