// Package browser holds the navigation state machine: which directory is
// listed, which file is open, and what the UI should render next.
package browser

import "github.com/datatug/filepeek/pkg/listing"

type ViewMode int

const (
	FileList ViewMode = iota
	FileContent
)

func (m ViewMode) String() string {
	if m == FileContent {
		return "content"
	}
	return "list"
}

// State is the whole navigation state. SelectedFile and Content are set
// only in FileContent mode. Listing is the listing of Dir last shown.
type State struct {
	Dir          string
	Mode         ViewMode
	SelectedFile string
	Content      string
	Listing      listing.Listing
}

func listState(l listing.Listing) State {
	return State{Dir: l.Dir, Mode: FileList, Listing: l}
}

func (s State) withContent(name, content string) State {
	s.Mode = FileContent
	s.SelectedFile = name
	s.Content = content
	return s
}
