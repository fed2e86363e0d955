package filepeek

import (
	"github.com/datatug/filepeek/pkg/browser"
	"github.com/datatug/filepeek/pkg/viewers"
	"github.com/rivo/tview"
)

const (
	pageList    = "list"
	pageContent = "content"
)

var _ browser.Renderer = (*View)(nil)

// View is the whole screen: either the files list or a file's content,
// with a status line below.
type View struct {
	*tview.Flex
	pages   *tview.Pages
	files   *filesPanel
	content *viewers.TextViewer
	status  *statusLine

	setFocus func(p tview.Primitive)
}

func NewView() *View {
	v := &View{
		pages:    tview.NewPages(),
		files:    newFilesPanel(),
		content:  viewers.NewTextViewer(),
		status:   newStatusLine(),
		setFocus: func(tview.Primitive) {},
	}
	v.pages.AddPage(pageList, v.files, true, true)
	v.pages.AddPage(pageContent, v.content, true, false)
	v.status.showHelp(listHelp)

	v.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.pages, 0, 1, true).
		AddItem(v.status, 1, 0, false)
	return v
}

// SetSelectedFunc registers the handler for Enter on a list row.
func (v *View) SetSelectedFunc(f func(index int)) {
	v.files.SetSelectedFunc(func(row, _ int) {
		f(row)
	})
}

func (v *View) SetFocusFunc(f func(p tview.Primitive)) {
	v.setFocus = f
}

func (v *View) RenderList(title string, items []browser.Item) {
	v.files.setItems(title, items)
	v.pages.SwitchToPage(pageList)
	v.status.showHelp(listHelp)
	v.setFocus(v.files)
}

func (v *View) RenderContent(title, body string) {
	v.content.Show(title, body)
	v.pages.SwitchToPage(pageContent)
	v.status.showHelp(contentHelp)
	v.setFocus(v.content.Body())
}

func (v *View) ReportError(err error) {
	v.status.showError(err)
}

// Page returns the name of the page in front.
func (v *View) Page() string {
	name, _ := v.pages.GetFrontPage()
	return name
}
