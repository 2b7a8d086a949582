// internal/core/editor.go
package core

import (
	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/core/clipboard"
	"github.com/bethropolis/quill/internal/core/cursor"
	"github.com/bethropolis/quill/internal/core/find"
	"github.com/bethropolis/quill/internal/core/history"
	"github.com/bethropolis/quill/internal/core/selection"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/types"
)

// Options configures an Editor.
type Options struct {
	TabWidth  int
	ExpandTab bool
	ScrollOff int

	// Clipboard defaults to an internal register.
	Clipboard *clipboard.Manager
	// History options, e.g. history.WithClock in tests.
	History []history.Option
}

// Editor owns one document: its buffer, cursor, selection, undo history
// and search session. It turns edit intents into calls on those parts and
// keeps them consistent.
type Editor struct {
	buffer    *buffer.GapBuffer
	cursor    cursor.Cursor
	viewport  cursor.Viewport
	selection *selection.Manager
	history   *history.Manager
	find      *find.Manager
	clipboard *clipboard.Manager

	tabWidth  int
	expandTab bool

	eventManager *event.Manager
}

// NewEditor creates an editor for buf. A nil buf starts an empty document.
func NewEditor(buf *buffer.GapBuffer, opts Options) *Editor {
	if buf == nil {
		buf = buffer.New()
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewManager(false)
	}
	return &Editor{
		buffer:    buf,
		viewport:  cursor.Viewport{ScrollOff: opts.ScrollOff},
		selection: selection.NewManager(),
		history:   history.NewManager(opts.History...),
		find:      find.NewManager(),
		clipboard: opts.Clipboard,
		tabWidth:  opts.TabWidth,
		expandTab: opts.ExpandTab,
	}
}

// SetEventManager sets the event manager for dispatching events
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// Buffer returns a read-only view of the document.
func (e *Editor) Buffer() buffer.Reader {
	return e.buffer
}

// Cursor returns the current cursor.
func (e *Editor) Cursor() cursor.Cursor {
	return e.cursor
}

// CursorOffset returns the absolute byte offset of the cursor.
func (e *Editor) CursorOffset() int {
	return e.cursor.ByteOffset(e.buffer)
}

// TabWidth returns the display width of a tab stop.
func (e *Editor) TabWidth() int {
	return e.tabWidth
}

// Viewport returns the visible window onto the buffer.
func (e *Editor) Viewport() cursor.Viewport {
	return e.viewport
}

// SetViewSize updates the text area dimensions, excluding gutter and
// status bar.
func (e *Editor) SetViewSize(width, height int) {
	e.viewport.SetSize(width, height)
	e.ScrollToCursor()
}

// ScrollToCursor adjusts the viewport so the cursor is visible.
func (e *Editor) ScrollToCursor() {
	e.viewport.ScrollTo(e.buffer, e.cursor, e.tabWidth)
}

// Selection returns the normalized selected byte range.
func (e *Editor) Selection() (start, end int, ok bool) {
	return e.selection.Range()
}

// SelectedText returns a copy of the selected bytes.
func (e *Editor) SelectedText() ([]byte, bool) {
	start, end, ok := e.selection.Range()
	if !ok {
		return nil, false
	}
	return e.buffer.Slice(start, end), true
}

// IsModified reports whether the document differs from its last saved
// state.
func (e *Editor) IsModified() bool {
	return !e.history.IsAtSaved()
}

// MarkSaved records the current state as saved.
func (e *Editor) MarkSaved() {
	e.history.MarkSaved(e.cursor)
}

// CanUndo reports whether there is anything to undo.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether there is anything to redo.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// ReplaceBuffer swaps in a new document. History, selection and search
// are dropped. With keepCursor the cursor is clamped into the new content,
// otherwise it returns to the start.
func (e *Editor) ReplaceBuffer(buf *buffer.GapBuffer, keepCursor bool) {
	oldLen := e.buffer.Len()
	oldEnd := e.positionAt(oldLen)

	e.buffer = buf
	e.history.Clear()
	e.selection.Clear()
	e.find.End()
	if keepCursor {
		e.cursor.Clamp(e.buffer)
	} else {
		e.cursor = cursor.Cursor{}
		e.viewport.Top, e.viewport.Left = 0, 0
	}
	logger.DebugTagf("core", "Editor: Buffer replaced (%d bytes, %d lines)", buf.Len(), buf.LineCount())

	e.modified(e.documentEdit(oldLen, oldEnd))
	e.cursorChanged()
}

func (e *Editor) positionAt(offset int) types.Position {
	line := e.buffer.ByteToLine(offset)
	return types.Position{Line: line, Col: offset - e.buffer.LineStart(line)}
}

// documentEdit describes a change that may have touched the whole
// document, given its length and end position beforehand.
func (e *Editor) documentEdit(oldLen int, oldEnd types.Position) types.EditInfo {
	return types.EditInfo{
		OldEndIndex:    oldLen,
		NewEndIndex:    e.buffer.Len(),
		OldEndPosition: oldEnd,
		NewEndPosition: e.positionAt(e.buffer.Len()),
	}
}

// modified runs after every change to the buffer content.
func (e *Editor) modified(edit types.EditInfo) {
	if e.find.Active() {
		e.find.Refresh(e.buffer.Bytes(), e.CursorOffset())
	}
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: edit})
	}
}

// cursorChanged runs after every cursor move.
func (e *Editor) cursorChanged() {
	e.ScrollToCursor()
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.cursor.Position()})
	}
}
