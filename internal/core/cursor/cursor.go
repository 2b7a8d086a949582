package cursor

import (
	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/types"
)

// Cursor is a caret position expressed as a line index and a byte column
// within that line. DesiredCol remembers the column that vertical moves
// try to return to when passing through shorter lines.
type Cursor struct {
	Line       int
	Col        int
	DesiredCol int
}

// Position returns the line/column pair of the cursor.
func (c Cursor) Position() types.Position {
	return types.Position{Line: c.Line, Col: c.Col}
}

// ByteOffset returns the absolute byte offset of the cursor in buf.
func (c Cursor) ByteOffset(buf buffer.Reader) int {
	return buf.LineStart(c.Line) + c.Col
}

// Clamp pulls the cursor back into the buffer. DesiredCol is kept.
func (c *Cursor) Clamp(buf buffer.Reader) {
	c.Line = min(max(c.Line, 0), buf.LineCount()-1)
	c.Col = min(max(c.Col, 0), buf.LineLen(c.Line))
}

// SetPosition places the cursor at line/col, clamped to the buffer.
func (c *Cursor) SetPosition(buf buffer.Reader, line, col int) {
	c.Line = line
	c.Col = col
	c.Clamp(buf)
	c.DesiredCol = c.Col
}

// SetOffset places the cursor at an absolute byte offset.
func (c *Cursor) SetOffset(buf buffer.Reader, offset int) {
	offset = min(max(offset, 0), buf.Len())
	c.Line = buf.ByteToLine(offset)
	c.Col = offset - buf.LineStart(c.Line)
	c.DesiredCol = c.Col
}
