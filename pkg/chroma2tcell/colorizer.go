// Package chroma2tcell turns chroma syntax highlighting into tview colour tags.
package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

var matchLexer = lexers.Match

// Colorize returns text with tview colour tags. Source text is escaped so
// square brackets in it are not taken for tags.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	// Uncoloured tokens are escaped as one run: "[", "red" and "]" escaped
	// one by one would still read as a tag once concatenated.
	var sb, plain strings.Builder
	flush := func() {
		sb.WriteString(tview.Escape(plain.String()))
		plain.Reset()
	}
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		if !entry.Colour.IsSet() {
			plain.WriteString(token.Value)
			continue
		}
		flush()
		sb.WriteString("[" + entry.Colour.String() + "]")
		sb.WriteString(tview.Escape(token.Value))
		sb.WriteString("[-]")
	}
	flush()

	return sb.String(), nil
}

// ColorizeFile highlights text when a lexer matches fileName. Otherwise, or if
// tokenising fails, it returns the escaped text and false.
func ColorizeFile(fileName, text string) (string, bool) {
	lexer := matchLexer(fileName)
	if lexer == nil {
		return tview.Escape(text), false
	}
	colorized, err := Colorize(text, DefaultStyle, lexer)
	if err != nil {
		return tview.Escape(text), false
	}
	return colorized, true
}
