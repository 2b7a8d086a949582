package selection

import "github.com/bethropolis/quill/internal/logger"

// Manager tracks a selection as two byte offsets. The anchor stays where
// the selection began and the head follows the cursor.
type Manager struct {
	selecting bool
	anchor    int
	head      int
}

// NewManager creates a selection manager with nothing selected.
func NewManager() *Manager {
	return &Manager{}
}

// IsSelecting reports whether an anchor has been placed, even if the
// selected range is still empty.
func (m *Manager) IsSelecting() bool {
	return m.selecting
}

// HasSelection reports whether a non-empty range is selected.
func (m *Manager) HasSelection() bool {
	return m.selecting && m.anchor != m.head
}

// Anchor returns the fixed end of the selection.
func (m *Manager) Anchor() int { return m.anchor }

// Head returns the moving end of the selection.
func (m *Manager) Head() int { return m.head }

// Range returns the normalized selection [start, end). ok is false when
// the selection is empty.
func (m *Manager) Range() (start, end int, ok bool) {
	if !m.HasSelection() {
		return 0, 0, false
	}
	return min(m.anchor, m.head), max(m.anchor, m.head), true
}

// Contains reports whether offset lies inside the selected range.
func (m *Manager) Contains(offset int) bool {
	start, end, ok := m.Range()
	return ok && offset >= start && offset < end
}

// StartOrUpdate places the anchor at offset if no selection is in
// progress. Call it with the cursor offset before a shift-modified move.
func (m *Manager) StartOrUpdate(offset int) {
	if m.selecting {
		return
	}
	m.selecting = true
	m.anchor = offset
	m.head = offset
	logger.DebugTagf("core", "Selection started at %d", offset)
}

// UpdateHead moves the head to offset. Call it with the cursor offset
// after a shift-modified move.
func (m *Manager) UpdateHead(offset int) {
	if !m.selecting {
		return
	}
	m.head = offset
}

// SelectAll selects the whole document of the given length.
func (m *Manager) SelectAll(length int) {
	m.selecting = true
	m.anchor = 0
	m.head = length
}

// Clear drops the selection. It reports whether anything was selected.
func (m *Manager) Clear() bool {
	had := m.HasSelection()
	if m.selecting {
		logger.DebugTagf("core", "Selection cleared")
	}
	m.selecting = false
	m.anchor = 0
	m.head = 0
	return had
}
