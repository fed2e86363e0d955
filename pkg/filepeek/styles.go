package filepeek

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	BorderColor   tcell.Color
	TitleColor    tcell.Color
	SelectedColor tcell.Color

	DescriptionColor tcell.Color
	PlaceholderColor tcell.Color

	HelpColor  tcell.Color
	ErrorColor tcell.Color
}

var Style = Styles{
	BorderColor:   tcell.ColorGray,
	TitleColor:    tcell.PaletteColor(62),
	SelectedColor: tcell.PaletteColor(170),

	DescriptionColor: tcell.ColorGray,
	PlaceholderColor: tcell.ColorLightGray,

	HelpColor:  tcell.ColorSlateGray,
	ErrorColor: tcell.ColorRed,
}
