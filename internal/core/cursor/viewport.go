package cursor

import (
	"github.com/bethropolis/quill/internal/buffer"
	"github.com/rivo/uniseg"
)

// Viewport is the visible window onto the buffer: Top is the first visible
// line, Left the first visible screen column.
type Viewport struct {
	Top       int
	Left      int
	Width     int
	Height    int
	ScrollOff int
}

// SetSize updates the view dimensions.
func (v *Viewport) SetSize(width, height int) {
	v.Width = max(width, 0)
	v.Height = max(height, 0)
}

// ScrollTo adjusts the viewport so that c is visible, keeping ScrollOff
// lines of context above and below when the view is tall enough.
func (v *Viewport) ScrollTo(buf buffer.Reader, c Cursor, tabWidth int) {
	if v.Height <= 0 || v.Width <= 0 {
		return
	}

	scrollOff := v.ScrollOff
	if scrollOff*2 >= v.Height {
		scrollOff = (v.Height - 1) / 2
	}

	if c.Line < v.Top+scrollOff {
		v.Top = c.Line - scrollOff
	} else if c.Line >= v.Top+v.Height-scrollOff {
		v.Top = c.Line - v.Height + 1 + scrollOff
	}
	v.Top = min(max(v.Top, 0), max(buf.LineCount()-1, 0))

	visual := VisualCol(buf.Line(c.Line), c.Col, tabWidth)
	if visual < v.Left {
		v.Left = visual
	} else if visual >= v.Left+v.Width {
		v.Left = visual - v.Width + 1
	}
	v.Left = max(v.Left, 0)
}

// VisualCol returns the screen column at which byteCol starts in line.
// Grapheme clusters use their display width and tabs advance to the next
// multiple of tabWidth.
func VisualCol(line []byte, byteCol int, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	visual := 0
	pos := 0
	state := -1
	rest := line
	for len(rest) > 0 && pos < byteCol {
		var cluster []byte
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeCluster(rest, state)
		if len(cluster) == 1 && cluster[0] == '\t' {
			visual = (visual/tabWidth + 1) * tabWidth
		} else {
			visual += width
		}
		pos += len(cluster)
	}
	return visual
}

// ByteColAt returns the byte column of the grapheme cluster displayed at
// screen column visualCol, or the line length when visualCol is past the end.
func ByteColAt(line []byte, visualCol int, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	visual := 0
	pos := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var cluster []byte
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeCluster(rest, state)
		next := visual + width
		if len(cluster) == 1 && cluster[0] == '\t' {
			next = (visual/tabWidth + 1) * tabWidth
		}
		if visualCol < next {
			return pos
		}
		visual = next
		pos += len(cluster)
	}
	return len(line)
}
