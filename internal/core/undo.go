package core

import (
	"github.com/bethropolis/quill/internal/core/cursor"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// Undo reverts the most recent group of edits and restores the cursor from
// before it. It reports whether anything was undone.
func (e *Editor) Undo() bool {
	oldLen, oldEnd := e.buffer.Len(), e.positionAt(e.buffer.Len())
	c, ok := e.history.Undo(e.buffer, e.cursor)
	if !ok {
		return false
	}
	e.afterHistory(c, oldLen, oldEnd)
	logger.DebugTagf("core", "Editor: Undo applied")
	return true
}

// Redo reapplies the most recently undone group and restores the cursor
// from after it. It reports whether anything was redone.
func (e *Editor) Redo() bool {
	oldLen, oldEnd := e.buffer.Len(), e.positionAt(e.buffer.Len())
	c, ok := e.history.Redo(e.buffer)
	if !ok {
		return false
	}
	e.afterHistory(c, oldLen, oldEnd)
	logger.DebugTagf("core", "Editor: Redo applied")
	return true
}

// afterHistory restores the cursor after the buffer was rewritten by the
// history. The change is reported as covering the whole document.
func (e *Editor) afterHistory(c cursor.Cursor, oldLen int, oldEnd types.Position) {
	e.selection.Clear()
	e.cursor = c
	e.cursor.Clamp(e.buffer)
	e.modified(e.documentEdit(oldLen, oldEnd))
	e.cursorChanged()
}
