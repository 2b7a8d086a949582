// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/quill/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the drawing code.
const (
	StyleDefault           = "Default"
	StyleLineNumber        = "LineNumber"
	StyleLineNumberCurrent = "LineNumber.current"
	StyleSelection         = "Selection"
	StyleSearchMatch       = "SearchMatch"
	StyleSearchCurrent     = "SearchMatch.current"
	StyleStatusBar         = "StatusBar"
	StyleStatusModified    = "StatusBar.modified"
	StyleStatusInfo        = "StatusBar.info"
	StyleStatusWarning     = "StatusBar.warning"
	StyleStatusError       = "StatusBar.error"
	StyleStatusPrompt      = "StatusBar.prompt"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style. A dotted name falls back to its base
// name (e.g. "StatusBar.error" to "StatusBar"), then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Default returns the built-in dark theme.
func Default() *Theme {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	comment := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	red := tcell.NewHexColor(0xe06c75)

	// Terminal background, theme foreground.
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)

	return &Theme{
		Name:   "Quill Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleLineNumber:        base.Foreground(comment),
			StyleLineNumberCurrent: base.Foreground(yellow).Bold(true),
			StyleSelection:         base.Reverse(true),
			StyleSearchMatch:       tcell.StyleDefault.Background(comment).Foreground(foreground),
			StyleSearchCurrent:     tcell.StyleDefault.Background(orange).Foreground(tcell.ColorBlack),
			StyleStatusBar:         bar,
			StyleStatusModified:    bar.Foreground(yellow),
			StyleStatusInfo:        bar.Bold(true),
			StyleStatusWarning:     bar.Foreground(yellow).Bold(true),
			StyleStatusError:       bar.Foreground(red).Bold(true),
			StyleStatusPrompt:      bar.Foreground(green).Bold(true),
		},
	}
}
