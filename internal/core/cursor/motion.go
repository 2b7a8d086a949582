package cursor

import "github.com/bethropolis/quill/internal/buffer"

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// isWordByte treats ASCII letters, digits and underscore as word bytes.
// Non-ASCII bytes are separators.
func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

// MoveLeft moves one UTF-8 scalar left, wrapping to the end of the
// previous line at column zero.
func (c *Cursor) MoveLeft(buf buffer.Reader) {
	if c.Col > 0 {
		start := buf.LineStart(c.Line)
		pos := start + c.Col - 1
		for pos > start {
			b, _ := buf.ByteAt(pos)
			if !isContinuation(b) {
				break
			}
			pos--
		}
		c.Col = pos - start
	} else if c.Line > 0 {
		c.Line--
		c.Col = buf.LineLen(c.Line)
	}
	c.DesiredCol = c.Col
}

// MoveRight moves one UTF-8 scalar right, wrapping to the start of the
// next line at the end of a line.
func (c *Cursor) MoveRight(buf buffer.Reader) {
	lineLen := buf.LineLen(c.Line)
	if c.Col < lineLen {
		start := buf.LineStart(c.Line)
		pos := start + c.Col + 1
		end := start + lineLen
		for pos < end {
			b, _ := buf.ByteAt(pos)
			if !isContinuation(b) {
				break
			}
			pos++
		}
		c.Col = pos - start
	} else if c.Line+1 < buf.LineCount() {
		c.Line++
		c.Col = 0
	}
	c.DesiredCol = c.Col
}

// MoveUp moves to the previous line, aiming for DesiredCol.
func (c *Cursor) MoveUp(buf buffer.Reader) {
	if c.Line > 0 {
		c.Line--
		c.Col = min(c.DesiredCol, buf.LineLen(c.Line))
	}
}

// MoveDown moves to the next line, aiming for DesiredCol.
func (c *Cursor) MoveDown(buf buffer.Reader) {
	if c.Line+1 < buf.LineCount() {
		c.Line++
		c.Col = min(c.DesiredCol, buf.LineLen(c.Line))
	}
}

// MovePageUp moves up by height lines, stopping at the first line.
func (c *Cursor) MovePageUp(buf buffer.Reader, height int) {
	c.Line = max(c.Line-max(height, 0), 0)
	c.Col = min(c.DesiredCol, buf.LineLen(c.Line))
}

// MovePageDown moves down by height lines, stopping at the last line.
func (c *Cursor) MovePageDown(buf buffer.Reader, height int) {
	c.Line = min(c.Line+max(height, 0), buf.LineCount()-1)
	c.Col = min(c.DesiredCol, buf.LineLen(c.Line))
}

// MoveWordLeft skips separators and then a run of word bytes to the left.
// At column zero it wraps to the end of the previous line.
func (c *Cursor) MoveWordLeft(buf buffer.Reader) {
	if c.Col == 0 {
		if c.Line > 0 {
			c.Line--
			c.Col = buf.LineLen(c.Line)
		}
		c.DesiredCol = c.Col
		return
	}
	line := buf.Line(c.Line)
	pos := min(c.Col, len(line))
	for pos > 0 && !isWordByte(line[pos-1]) {
		pos--
	}
	for pos > 0 && isWordByte(line[pos-1]) {
		pos--
	}
	c.Col = pos
	c.DesiredCol = c.Col
}

// MoveWordRight skips a run of word bytes and then separators to the
// right. At the end of a line it wraps to the start of the next line.
func (c *Cursor) MoveWordRight(buf buffer.Reader) {
	line := buf.Line(c.Line)
	if c.Col >= len(line) {
		if c.Line+1 < buf.LineCount() {
			c.Line++
			c.Col = 0
		}
		c.DesiredCol = c.Col
		return
	}
	pos := c.Col
	for pos < len(line) && isWordByte(line[pos]) {
		pos++
	}
	for pos < len(line) && !isWordByte(line[pos]) {
		pos++
	}
	c.Col = pos
	c.DesiredCol = c.Col
}

// MoveHome toggles between the first non-blank byte of the line and
// column zero.
func (c *Cursor) MoveHome(buf buffer.Reader) {
	line := buf.Line(c.Line)
	first := 0
	for i, b := range line {
		if !isBlank(b) {
			first = i
			break
		}
	}
	switch {
	case c.Col > first:
		c.Col = first
	case c.Col == first && first != 0:
		c.Col = 0
	default:
		c.Col = first
	}
	c.DesiredCol = c.Col
}

// MoveEnd moves past the last byte of the line.
func (c *Cursor) MoveEnd(buf buffer.Reader) {
	c.Col = buf.LineLen(c.Line)
	c.DesiredCol = c.Col
}

// MoveToStart moves to the first byte of the document.
func (c *Cursor) MoveToStart() {
	c.Line, c.Col, c.DesiredCol = 0, 0, 0
}

// MoveToEnd moves past the last byte of the document.
func (c *Cursor) MoveToEnd(buf buffer.Reader) {
	c.Line = buf.LineCount() - 1
	c.Col = buf.LineLen(c.Line)
	c.DesiredCol = c.Col
}
