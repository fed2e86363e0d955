package browser

import (
	"context"
	"errors"

	"github.com/datatug/filepeek/pkg/files"
	"github.com/rs/zerolog"
)

// Controller owns the single State and pushes one frame to the renderer
// after every transition. It is not safe for concurrent use; the UI calls
// it from its event loop.
type Controller struct {
	store    files.Store
	renderer Renderer
	logger   zerolog.Logger
	state    State
}

func NewController(store files.Store, renderer Renderer, logger zerolog.Logger) *Controller {
	return &Controller{
		store:    store,
		renderer: renderer,
		logger:   logger,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Start lists the initial directory. An error here is fatal for the session.
func (c *Controller) Start(ctx context.Context, dir string) error {
	s, frame, err := Open(ctx, c.store, dir)
	if err != nil {
		c.logger.Error().Err(err).Str("dir", dir).Msg("failed to open initial directory")
		return err
	}
	root := c.store.RootURL()
	c.logger.Info().
		Str("store", c.store.RootTitle()).
		Stringer("root", &root).
		Str("dir", dir).
		Msg("browsing")
	c.state = s
	frame.Draw(c.renderer)
	return nil
}

// Handle processes one event. It returns ErrQuit for Quit and nil otherwise:
// navigation failures are reported through the renderer and logged.
// A file that can not be read is not a navigation failure: Step returns its
// *files.ReadError together with a content frame, so the error is logged and
// the frame showing the error message is still drawn.
func (c *Controller) Handle(ctx context.Context, ev Event) error {
	next, frame, err := Step(ctx, c.store, c.state, ev)
	if errors.Is(err, ErrQuit) {
		c.logger.Info().Msg("quit")
		return err
	}
	if frame == nil {
		if err != nil {
			c.logger.Error().Err(err).Str("dir", c.state.Dir).Msg("navigation failed")
			c.renderer.ReportError(err)
		}
		return nil
	}
	if err != nil {
		c.logger.Error().Err(err).Str("dir", next.Dir).Str("file", next.SelectedFile).Msg("failed to read file")
	}
	c.logger.Debug().
		Str("dir", next.Dir).
		Stringer("mode", next.Mode).
		Str("file", next.SelectedFile).
		Msg("navigated")
	c.state = next
	frame.Draw(c.renderer)
	return nil
}
