package find

import "github.com/bethropolis/quill/internal/logger"

// Result describes the selected match of a search session. Index is
// 1-based.
type Result struct {
	Match Match
	Index int
	Total int
}

// Manager holds the state of one interactive search: the pattern, its
// matches in the current text and which one is selected.
type Manager struct {
	active  bool
	origin  int
	pattern string
	matches []Match
	current int
}

// NewManager creates an idle search manager.
func NewManager() *Manager {
	return &Manager{current: -1}
}

// Begin starts a session. origin is the cursor offset that the first
// match is chosen relative to.
func (m *Manager) Begin(origin int) {
	m.active = true
	m.origin = origin
	m.pattern = ""
	m.matches = nil
	m.current = -1
	logger.DebugTagf("find", "Find: Session started at offset %d", origin)
}

// End finishes the session and drops its matches.
func (m *Manager) End() {
	m.active = false
	m.pattern = ""
	m.matches = nil
	m.current = -1
}

// Active reports whether a session is in progress.
func (m *Manager) Active() bool { return m.active }

// Pattern returns the current search pattern.
func (m *Manager) Pattern() string { return m.pattern }

// Matches returns the matches of the current pattern, sorted by offset.
func (m *Manager) Matches() []Match { return m.matches }

// SetPattern recomputes the matches for pattern and selects the first one
// at or after the session origin, wrapping to the first match. ok is false
// when nothing matches.
func (m *Manager) SetPattern(text []byte, pattern string) (Result, bool) {
	m.pattern = pattern
	m.matches = FindAll(text, pattern)
	m.current = m.firstFrom(m.origin)
	logger.DebugTagf("find", "Find: Pattern %q has %d match(es)", pattern, len(m.matches))
	return m.Current()
}

// Refresh recomputes the matches after the text changed, selecting the
// first match at or after offset. offset is where the edit happened, not
// the search origin, and the cursor is deliberately left where it is.
func (m *Manager) Refresh(text []byte, offset int) {
	if m.pattern == "" {
		return
	}
	m.matches = FindAll(text, m.pattern)
	m.current = m.firstFrom(offset)
}

func (m *Manager) firstFrom(offset int) int {
	if len(m.matches) == 0 {
		return -1
	}
	for i, match := range m.matches {
		if match.Start >= offset {
			return i
		}
	}
	return 0
}

// Current returns the selected match.
func (m *Manager) Current() (Result, bool) {
	if m.current < 0 || m.current >= len(m.matches) {
		return Result{Total: len(m.matches)}, false
	}
	return Result{
		Match: m.matches[m.current],
		Index: m.current + 1,
		Total: len(m.matches),
	}, true
}

// Next selects the following match, wrapping to the first.
func (m *Manager) Next() (Result, bool) {
	if len(m.matches) == 0 {
		return Result{}, false
	}
	m.current = (m.current + 1) % len(m.matches)
	return m.Current()
}

// Prev selects the preceding match, wrapping to the last.
func (m *Manager) Prev() (Result, bool) {
	if len(m.matches) == 0 {
		return Result{}, false
	}
	if m.current <= 0 {
		m.current = len(m.matches) - 1
	} else {
		m.current--
	}
	return m.Current()
}
