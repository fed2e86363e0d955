package browser

import "errors"

// Event is an input delivered by the UI.
type Event interface {
	isEvent()
}

// EntrySelected opens the entry at Index of the current listing, ".." included.
type EntrySelected struct {
	Index int
}

type Back struct{}

type Quit struct{}

func (EntrySelected) isEvent() {}
func (Back) isEvent()          {}
func (Quit) isEvent()          {}

var (
	// ErrQuit is returned for a Quit event. It is an exit signal, not a failure.
	ErrQuit = errors.New("quit")

	ErrNoSuchEntry = errors.New("no such entry")
)
