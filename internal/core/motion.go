package core

// Motion names a cursor movement.
type Motion int

const (
	MoveLeft Motion = iota
	MoveRight
	MoveUp
	MoveDown
	MoveWordLeft
	MoveWordRight
	MoveHome
	MoveEnd
	MovePageUp
	MovePageDown
	MoveDocStart
	MoveDocEnd
)

// Move moves the cursor. With extend the selection grows from where the
// cursor was; otherwise any selection is dropped.
func (e *Editor) Move(m Motion, extend bool) {
	if extend {
		e.selection.StartOrUpdate(e.CursorOffset())
	} else {
		e.selection.Clear()
	}

	buf := e.buffer
	c := &e.cursor
	switch m {
	case MoveLeft:
		c.MoveLeft(buf)
	case MoveRight:
		c.MoveRight(buf)
	case MoveUp:
		c.MoveUp(buf)
	case MoveDown:
		c.MoveDown(buf)
	case MoveWordLeft:
		c.MoveWordLeft(buf)
	case MoveWordRight:
		c.MoveWordRight(buf)
	case MoveHome:
		c.MoveHome(buf)
	case MoveEnd:
		c.MoveEnd(buf)
	case MovePageUp:
		c.MovePageUp(buf, e.pageHeight())
	case MovePageDown:
		c.MovePageDown(buf, e.pageHeight())
	case MoveDocStart:
		c.MoveToStart()
	case MoveDocEnd:
		c.MoveToEnd(buf)
	}

	if extend {
		e.selection.UpdateHead(e.CursorOffset())
	}
	e.cursorChanged()
}

func (e *Editor) pageHeight() int {
	return max(e.viewport.Height, 1)
}

// SetCursorPosition places the cursor at line/col, e.g. from a mouse
// click, and drops the selection.
func (e *Editor) SetCursorPosition(line, col int) {
	e.selection.Clear()
	e.cursor.SetPosition(e.buffer, line, col)
	e.cursorChanged()
}

// SelectAll selects the whole document and moves the cursor to its end.
func (e *Editor) SelectAll() {
	e.selection.SelectAll(e.buffer.Len())
	e.cursor.MoveToEnd(e.buffer)
	e.cursorChanged()
}

// ClearSelection drops the selection. It reports whether anything was
// selected.
func (e *Editor) ClearSelection() bool {
	return e.selection.Clear()
}
