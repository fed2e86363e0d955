package browser

import (
	"github.com/datatug/filepeek/pkg/listing"
)

//go:generate mockgen -source=renderer.go -destination=mock_renderer_test.go -package=browser

// Renderer is implemented by the UI. The browser decides what to show;
// the renderer decides how.
type Renderer interface {
	RenderList(title string, items []Item)
	RenderContent(title, body string)
	// ReportError shows a failure without replacing the current view.
	ReportError(err error)
}

type Item struct {
	Name        string
	Description string
}

// Frame is one render instruction.
type Frame interface {
	Draw(r Renderer)
}

type ListFrame struct {
	Title string
	Items []Item
}

func (f ListFrame) Draw(r Renderer) {
	r.RenderList(f.Title, f.Items)
}

type ContentFrame struct {
	Title string
	Body  string
}

func (f ContentFrame) Draw(r Renderer) {
	r.RenderContent(f.Title, f.Body)
}

func newListFrame(l listing.Listing) ListFrame {
	items := make([]Item, len(l.Entries))
	for i, e := range l.Entries {
		items[i] = Item{Name: e.Name(), Description: e.Description()}
	}
	return ListFrame{Title: l.Dir, Items: items}
}

// FrameOf returns the frame that renders s.
func FrameOf(s State) Frame {
	if s.Mode == FileContent {
		return ContentFrame{Title: s.SelectedFile, Body: s.Content}
	}
	return newListFrame(s.Listing)
}
