package filepeek

import (
	"fmt"

	"github.com/rivo/tview"
)

const (
	listHelp    = "enter open · esc back · q quit"
	contentHelp = "esc back · q quit"
)

// statusLine shows key help, or the last error until the next render.
type statusLine struct {
	*tview.TextView
}

func newStatusLine() *statusLine {
	return &statusLine{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetTextColor(Style.HelpColor),
	}
}

func (s *statusLine) showHelp(help string) {
	s.SetText(" " + help)
}

func (s *statusLine) showError(err error) {
	s.SetText(fmt.Sprintf(" [%s]%s[-]", Style.ErrorColor.String(), tview.Escape(err.Error())))
}
