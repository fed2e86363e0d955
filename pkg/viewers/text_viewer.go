package viewers

import (
	"fmt"
	"strings"

	"github.com/datatug/filepeek/pkg/chroma2tcell"
	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var headerStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(62)).Bold(true)

// TextViewer shows a file name as heading over its scrollable text.
type TextViewer struct {
	*tview.Flex
	header *tview.TextView
	meta   *tview.TextView
	body   *tview.TextView
}

func NewTextViewer() *TextViewer {
	v := &TextViewer{
		header: tview.NewTextView().
			SetDynamicColors(false).
			SetTextStyle(headerStyle),
		meta: tview.NewTextView().
			SetTextAlign(tview.AlignRight).
			SetTextColor(tcell.ColorGray),
		body: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true).
			SetScrollable(true),
	}
	v.header.SetBorderPadding(0, 0, 1, 1)
	v.meta.SetBorderPadding(0, 0, 1, 1)
	v.body.SetBorderPadding(0, 0, 2, 2)

	top := tview.NewFlex().
		AddItem(v.header, 0, 1, false).
		AddItem(v.meta, 24, 0, false)

	v.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 1, 0, false).
		AddItem(v.body, 0, 1, true)
	return v
}

// Show replaces the heading and body and scrolls back to the top.
func (v *TextViewer) Show(name, text string) {
	v.header.SetText(name)
	v.meta.SetText(describeText(text))
	colorized, _ := chroma2tcell.ColorizeFile(name, text)
	v.body.SetText(colorized)
	v.body.ScrollToBeginning()
}

func (v *TextViewer) Title() string {
	return v.header.GetText(false)
}

// Text returns the body without colour tags.
func (v *TextViewer) Text() string {
	return v.body.GetText(true)
}

func (v *TextViewer) Body() *tview.TextView {
	return v.body
}

// describeText counts lines and the UTF-8 size of the decoded text, which can
// differ from the size on disk for UTF-16 files or invalid bytes.
func describeText(text string) string {
	lines := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		lines++
	}
	unit := "lines"
	if lines == 1 {
		unit = "line"
	}
	return fmt.Sprintf("%d %s, %s", lines, unit, humanize.Bytes(uint64(len(text))))
}
