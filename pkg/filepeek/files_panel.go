package filepeek

import (
	"fmt"
	"path/filepath"

	"github.com/datatug/filepeek/pkg/browser"
	"github.com/datatug/filepeek/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// filesPanel lists the entries of one directory, one row per item.
type filesPanel struct {
	*tview.Table
	dir   string
	names []string
}

func newFilesPanel() *filesPanel {
	f := &filesPanel{
		Table: tview.NewTable().
			SetSelectable(true, false).
			SetSelectedStyle(tcell.StyleDefault.
				Foreground(Style.SelectedColor).
				Background(tcell.ColorDefault).
				Bold(true)),
	}
	f.SetBorder(true)
	f.SetBorderColor(Style.BorderColor)
	f.SetTitleColor(Style.TitleColor)
	f.SetTitleAlign(tview.AlignLeft)
	return f
}

// setItems replaces the rows. The previously selected entry is selected
// again when the same directory is shown, and the directory just left is
// selected when moving to its parent.
func (f *filesPanel) setItems(dir string, items []browser.Item) {
	prevDir, prevName := f.dir, f.selectedName()

	f.dir = dir
	f.names = make([]string, len(items))
	f.Clear()
	f.SetTitle(fmt.Sprintf(" Files in %s ", tview.Escape(dir)))

	if len(items) == 0 {
		f.SetCell(0, 0, tview.NewTableCell("[::i]No entries[::-]").
			SetTextColor(Style.PlaceholderColor).
			SetSelectable(false))
		return
	}

	for i, item := range items {
		f.names[i] = item.Name
		f.SetCell(i, 0, tview.NewTableCell(tview.Escape(item.Name)).
			SetExpansion(1))
		f.SetCell(i, 1, tview.NewTableCell(tview.Escape(item.Description)).
			SetTextColor(Style.DescriptionColor).
			SetAlign(tview.AlignRight))
	}

	var target string
	switch {
	case prevDir == "":
	case dir == prevDir:
		target = prevName
	case !fsutils.IsRoot(prevDir) && fsutils.ParentDir(prevDir) == dir:
		target = filepath.Base(prevDir)
	}
	f.Select(f.rowOf(target), 0)
	f.ScrollToBeginning()
}

func (f *filesPanel) rowOf(name string) int {
	for i, n := range f.names {
		if name != "" && n == name {
			return i
		}
	}
	return 0
}

func (f *filesPanel) selectedName() string {
	row, _ := f.GetSelection()
	if row < 0 || row >= len(f.names) {
		return ""
	}
	return f.names[row]
}
