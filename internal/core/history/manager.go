package history

import (
	"time"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/core/cursor"
	"github.com/bethropolis/quill/internal/logger"
)

// CoalesceWindow is how long after the previous edit a same-context edit
// still joins the open group.
const CoalesceWindow = 500 * time.Millisecond

// Manager holds the undo and redo stacks and the group being built.
type Manager struct {
	undo []Group
	redo []Group

	pending       []Operation
	pendingCursor cursor.Cursor
	context       Context
	lastEdit      time.Time

	savedAt int // undo depth at the last save, -1 if unreachable
	now     func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now. The returned times must carry a monotonic
// reading, or be otherwise monotonic, for coalescing to behave.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates an empty history.
func NewManager(opts ...Option) *Manager {
	m := &Manager{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Record adds an operation that has already been applied to the buffer.
// before is the cursor state prior to the edit.
func (m *Manager) Record(op Operation, before cursor.Cursor, ctx Context) {
	m.RecordBatch([]Operation{op}, before, ctx)
}

// RecordBatch adds operations that have already been applied, in order.
// A batch never splits across groups.
func (m *Manager) RecordBatch(ops []Operation, before cursor.Cursor, ctx Context) {
	if len(ops) == 0 {
		return
	}
	now := m.now()
	if m.shouldSplit(ctx, now) {
		m.commit(before)
		m.pendingCursor = before
		m.context = ctx
	}
	m.pending = append(m.pending, ops...)
	m.lastEdit = now
	m.redo = nil
	if len(m.undo) < m.savedAt {
		// The saved state was on the redo stack and can no longer be reached.
		m.savedAt = -1
	}
	logger.DebugTagf("history", "History: Recorded %d op(s) (%v). Pending: %d, Undo: %d",
		len(ops), ctx, len(m.pending), len(m.undo))
}

func (m *Manager) shouldSplit(ctx Context, now time.Time) bool {
	return len(m.pending) == 0 ||
		ctx != m.context ||
		ctx.Atomic() ||
		now.Sub(m.lastEdit) >= CoalesceWindow
}

// commit closes the pending group, if any, with after as its final cursor.
func (m *Manager) commit(after cursor.Cursor) {
	if len(m.pending) == 0 {
		return
	}
	m.undo = append(m.undo, Group{
		Ops:          m.pending,
		CursorBefore: m.pendingCursor,
		CursorAfter:  after,
	})
	m.pending = nil
}

// Commit closes the group being built so the next edit starts a new one.
func (m *Manager) Commit(current cursor.Cursor) {
	m.commit(current)
}

// Undo reverts the most recent group and returns the cursor state from
// before it. ok is false when there is nothing to undo.
func (m *Manager) Undo(buf buffer.Editable, current cursor.Cursor) (cursor.Cursor, bool) {
	m.commit(current)
	if len(m.undo) == 0 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return current, false
	}

	g := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	g.undo(buf)
	m.redo = append(m.redo, g)

	logger.DebugTagf("history", "History: Undid group of %d op(s). Undo: %d, Redo: %d",
		len(g.Ops), len(m.undo), len(m.redo))
	return g.CursorBefore, true
}

// Redo reapplies the most recently undone group and returns the cursor
// state from after it. ok is false when there is nothing to redo.
func (m *Manager) Redo(buf buffer.Editable) (cursor.Cursor, bool) {
	if len(m.redo) == 0 {
		logger.DebugTagf("history", "History: Nothing to redo.")
		return cursor.Cursor{}, false
	}

	g := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	g.redo(buf)
	m.undo = append(m.undo, g)

	logger.DebugTagf("history", "History: Redid group of %d op(s). Undo: %d, Redo: %d",
		len(g.Ops), len(m.undo), len(m.redo))
	return g.CursorAfter, true
}

// MarkSaved records the current history depth as the saved state.
func (m *Manager) MarkSaved(current cursor.Cursor) {
	m.commit(current)
	m.savedAt = len(m.undo)
	logger.DebugTagf("history", "History: Marked saved at depth %d.", m.savedAt)
}

// IsAtSaved reports whether the buffer matches the last saved state.
func (m *Manager) IsAtSaved() bool {
	return len(m.pending) == 0 && len(m.undo) == m.savedAt
}

// Clear drops all history. Call this when the document is replaced.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
	m.pending = nil
	m.savedAt = 0
	logger.DebugTagf("history", "History: Cleared.")
}

// CanUndo returns true if there is a group, committed or pending, to undo.
func (m *Manager) CanUndo() bool {
	return len(m.undo) > 0 || len(m.pending) > 0
}

// CanRedo returns true if there are undone groups to redo.
func (m *Manager) CanRedo() bool {
	return len(m.redo) > 0
}

// Depth returns the number of committed groups on the undo stack.
func (m *Manager) Depth() int {
	return len(m.undo)
}
