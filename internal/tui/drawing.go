// internal/tui/drawing.go
package tui

import (
	"sort"
	"strconv"

	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/core/cursor"
	"github.com/bethropolis/quill/internal/core/find"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// GutterWidth returns the width of the line-number column: the digits of
// the last line number plus one space on each side, at least 4.
func GutterWidth(lineCount int) int {
	digits := len(strconv.Itoa(max(lineCount, 1)))
	return max(digits+2, 4)
}

// Layout splits the screen into gutter, text area and status rows.
type Layout struct {
	Gutter     int
	TextWidth  int
	TextHeight int
}

// ComputeLayout returns the layout for a screen of the given size. The
// gutter is dropped when the screen is too narrow for it.
func ComputeLayout(width, height, lineCount int) Layout {
	gutter := GutterWidth(lineCount)
	if gutter >= width {
		gutter = 0
	}
	return Layout{
		Gutter:     gutter,
		TextWidth:  max(width-gutter, 0),
		TextHeight: max(height-config.StatusBarHeight, 0),
	}
}

// highlighter picks the style of each byte offset. Offsets must be asked
// for in increasing order.
type highlighter struct {
	matches    []find.Match
	next       int
	current    find.Match
	hasCurrent bool
	selStart   int
	selEnd     int
	hasSel     bool

	defaultStyle tcell.Style
	selStyle     tcell.Style
	matchStyle   tcell.Style
	currentStyle tcell.Style
}

func (h *highlighter) styleAt(off int) tcell.Style {
	if h.hasSel && off >= h.selStart && off < h.selEnd {
		return h.selStyle
	}
	for h.next < len(h.matches) && h.matches[h.next].End <= off {
		h.next++
	}
	if h.next < len(h.matches) && h.matches[h.next].Start <= off {
		if h.hasCurrent && h.matches[h.next] == h.current {
			return h.currentStyle
		}
		return h.matchStyle
	}
	return h.defaultStyle
}

// DrawBuffer draws the visible lines with their gutter, selection and
// search highlights.
func DrawBuffer(t *TUI, editor *core.Editor, th *theme.Theme) {
	width, height := t.Size()
	buf := editor.Buffer()
	lay := ComputeLayout(width, height, buf.LineCount())
	if lay.TextHeight <= 0 || width <= 0 {
		return
	}

	vp := editor.Viewport()
	tabWidth := editor.TabWidth()
	cursorLine := editor.Cursor().Line

	defaultStyle := th.GetStyle(theme.StyleDefault)
	lineNumberStyle := th.GetStyle(theme.StyleLineNumber)
	currentLineNumberStyle := th.GetStyle(theme.StyleLineNumberCurrent)

	hl := &highlighter{
		matches:      editor.SearchMatches(),
		defaultStyle: defaultStyle,
		selStyle:     th.GetStyle(theme.StyleSelection),
		matchStyle:   th.GetStyle(theme.StyleSearchMatch),
		currentStyle: th.GetStyle(theme.StyleSearchCurrent),
	}
	hl.selStart, hl.selEnd, hl.hasSel = editor.Selection()
	if r, ok := editor.CurrentMatch(); ok {
		hl.current, hl.hasCurrent = r.Match, true
	}
	if vp.Top < buf.LineCount() {
		first := buf.LineStart(vp.Top)
		hl.next = sort.Search(len(hl.matches), func(i int) bool { return hl.matches[i].End > first })
	}

	for screenY := 0; screenY < lay.TextHeight; screenY++ {
		line := vp.Top + screenY

		for x := 0; x < width; x++ {
			t.screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}

		if line >= buf.LineCount() {
			t.screen.SetContent(0, screenY, '~', nil, lineNumberStyle)
			continue
		}

		if lay.Gutter > 0 {
			style := lineNumberStyle
			if line == cursorLine {
				style = currentLineNumberStyle
			}
			num := strconv.Itoa(line + 1)
			x := max(lay.Gutter-1-len(num), 0)
			for _, r := range num {
				t.screen.SetContent(x, screenY, r, nil, style)
				x++
			}
		}

		drawLine(t.screen, screenY, lay, vp, buf.Line(line), buf.LineStart(line), tabWidth, hl)
	}
}

// drawLine draws one line's grapheme clusters, expanding tabs to the next
// tab stop and clipping at the viewport's horizontal window.
func drawLine(s tcell.Screen, y int, lay Layout, vp cursor.Viewport, line []byte, lineStart, tabWidth int, hl *highlighter) {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	right := vp.Left + lay.TextWidth
	visual := 0
	pos := 0
	state := -1
	rest := line
	for len(rest) > 0 && visual < right {
		var cluster []byte
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeCluster(rest, state)
		isTab := len(cluster) == 1 && cluster[0] == '\t'
		if isTab {
			width = tabWidth - visual%tabWidth
		}
		style := hl.styleAt(lineStart + pos)

		switch {
		case width == 0:
		case isTab || visual < vp.Left || visual+width > right:
			// Blanks for tabs and for clusters cut by either edge.
			for cx := max(visual, vp.Left); cx < min(visual+width, right); cx++ {
				s.SetContent(lay.Gutter+cx-vp.Left, y, ' ', nil, style)
			}
		default:
			runes := []rune(string(cluster))
			s.SetContent(lay.Gutter+visual-vp.Left, y, runes[0], runes[1:], style)
		}

		visual += width
		pos += len(cluster)
	}
}

// DrawCursor positions the terminal cursor using visual width calculations.
func DrawCursor(t *TUI, editor *core.Editor) {
	width, height := t.Size()
	buf := editor.Buffer()
	lay := ComputeLayout(width, height, buf.LineCount())
	vp := editor.Viewport()
	c := editor.Cursor()

	visual := cursor.VisualCol(buf.Line(c.Line), c.Col, editor.TabWidth())
	screenX := lay.Gutter + visual - vp.Left
	screenY := c.Line - vp.Top

	if visual < vp.Left || screenX >= width || screenY < 0 || screenY >= lay.TextHeight {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}

// ScreenToDocument maps a screen cell to a line and byte column. ok is
// false for cells in the gutter, the status rows, or below the last line.
func ScreenToDocument(editor *core.Editor, x, y, width, height int) (line, col int, ok bool) {
	buf := editor.Buffer()
	lay := ComputeLayout(width, height, buf.LineCount())
	if y < 0 || y >= lay.TextHeight || x < lay.Gutter {
		return 0, 0, false
	}
	vp := editor.Viewport()
	line = vp.Top + y
	if line >= buf.LineCount() {
		return 0, 0, false
	}
	visual := x - lay.Gutter + vp.Left
	return line, cursor.ByteColAt(buf.Line(line), visual, editor.TabWidth()), true
}
