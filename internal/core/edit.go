package core

import (
	"bytes"

	"github.com/bethropolis/quill/internal/core/history"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// insert puts text at the cursor, records it under ctx and moves the
// cursor past it.
func (e *Editor) insert(text []byte, ctx history.Context) {
	if len(text) == 0 {
		return
	}
	before := e.cursor
	offset := e.CursorOffset()
	start := e.cursor.Position()

	e.buffer.Insert(offset, text)
	e.history.Record(history.InsertOp(offset, text), before, ctx)
	e.cursor.SetOffset(e.buffer, offset+len(text))

	e.modified(types.EditInfo{
		StartIndex:     offset,
		OldEndIndex:    offset,
		NewEndIndex:    offset + len(text),
		StartPosition:  start,
		OldEndPosition: start,
		NewEndPosition: e.cursor.Position(),
	})
	e.cursorChanged()
}

// remove deletes [start, end), records it under ctx and leaves the cursor
// at start.
func (e *Editor) remove(start, end int, ctx history.Context) []byte {
	if end <= start {
		return nil
	}
	before := e.cursor
	startPos := e.positionAt(start)
	endPos := e.positionAt(end)

	removed := e.buffer.Delete(start, end-start)
	if len(removed) == 0 {
		return nil
	}
	e.history.Record(history.DeleteOp(start, removed), before, ctx)
	e.cursor.SetOffset(e.buffer, start)

	e.modified(types.EditInfo{
		StartIndex:     start,
		OldEndIndex:    start + len(removed),
		NewEndIndex:    start,
		StartPosition:  startPos,
		OldEndPosition: endPos,
		NewEndPosition: startPos,
	})
	e.cursorChanged()
	return removed
}

func (e *Editor) deleteSelection(ctx history.Context) ([]byte, bool) {
	start, end, ok := e.selection.Range()
	e.selection.Clear()
	if !ok {
		return nil, false
	}
	removed := e.remove(start, end, ctx)
	logger.DebugTagf("core", "Editor: Deleted selection [%d, %d)", start, end)
	return removed, true
}

// DeleteSelection removes the selected text and places the cursor at the
// start of the former selection. ok is false when nothing was selected.
func (e *Editor) DeleteSelection() ([]byte, bool) {
	return e.deleteSelection(history.ContextOther)
}

// InsertText types text at the cursor, replacing any selection.
func (e *Editor) InsertText(text []byte) {
	e.deleteSelection(history.ContextOther)
	e.insert(text, history.ContextTyping)
}

// InsertRune types a single character.
func (e *Editor) InsertRune(r rune) {
	e.InsertText([]byte(string(r)))
}

// InsertNewline breaks the line at the cursor.
func (e *Editor) InsertNewline() {
	e.InsertText([]byte{'\n'})
}

// InsertTab inserts spaces up to the tab width, or a tab character when
// tabs are not expanded.
func (e *Editor) InsertTab() {
	if e.expandTab {
		e.InsertText(bytes.Repeat([]byte{' '}, e.tabWidth))
		return
	}
	e.InsertText([]byte{'\t'})
}

// DeleteBackward removes the selection, or the character before the
// cursor. At the start of a line the line break is removed.
func (e *Editor) DeleteBackward() {
	if _, ok := e.deleteSelection(history.ContextOther); ok {
		return
	}
	end := e.CursorOffset()
	prev := e.cursor
	prev.MoveLeft(e.buffer)
	start := prev.ByteOffset(e.buffer)
	e.remove(start, end, history.ContextDeleting)
}

// DeleteForward removes the selection, or the character under the
// cursor. At the end of a line the line break is removed.
func (e *Editor) DeleteForward() {
	if _, ok := e.deleteSelection(history.ContextOther); ok {
		return
	}
	start := e.CursorOffset()
	next := e.cursor
	next.MoveRight(e.buffer)
	e.remove(start, next.ByteOffset(e.buffer), history.ContextDeleting)
}
