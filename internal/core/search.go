package core

import (
	"github.com/bethropolis/quill/internal/core/find"
	"github.com/bethropolis/quill/internal/core/history"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
)

// BeginSearch starts a search session anchored at the cursor.
func (e *Editor) BeginSearch() {
	e.find.Begin(e.CursorOffset())
}

// EndSearch finishes the search session, leaving the cursor where it is.
func (e *Editor) EndSearch() {
	if !e.find.Active() {
		return
	}
	e.find.End()
	e.searchChanged(find.Result{})
}

// SearchActive reports whether a search session is in progress.
func (e *Editor) SearchActive() bool {
	return e.find.Active()
}

// SearchPattern returns the pattern of the current session.
func (e *Editor) SearchPattern() string {
	return e.find.Pattern()
}

// SearchMatches returns the matches of the current session.
func (e *Editor) SearchMatches() []find.Match {
	return e.find.Matches()
}

// CurrentMatch returns the selected match of the current session.
func (e *Editor) CurrentMatch() (find.Result, bool) {
	return e.find.Current()
}

// SetSearchPattern updates the pattern and moves the cursor to the first
// match at or after where the search began. ok is false when nothing
// matches.
func (e *Editor) SetSearchPattern(pattern string) (find.Result, bool) {
	if !e.find.Active() {
		e.BeginSearch()
	}
	r, ok := e.find.SetPattern(e.buffer.Bytes(), pattern)
	e.gotoMatch(r, ok)
	return r, ok
}

// FindNext moves the cursor to the next match, wrapping at the end.
func (e *Editor) FindNext() (find.Result, bool) {
	r, ok := e.find.Next()
	e.gotoMatch(r, ok)
	return r, ok
}

// FindPrev moves the cursor to the previous match, wrapping at the start.
func (e *Editor) FindPrev() (find.Result, bool) {
	r, ok := e.find.Prev()
	e.gotoMatch(r, ok)
	return r, ok
}

func (e *Editor) gotoMatch(r find.Result, ok bool) {
	if ok {
		e.selection.Clear()
		e.cursor.SetOffset(e.buffer, r.Match.Start)
		e.cursorChanged()
	}
	e.searchChanged(r)
}

func (e *Editor) searchChanged(r find.Result) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeSearchChanged, event.SearchChangedData{
			Pattern: e.find.Pattern(),
			Index:   r.Index,
			Total:   r.Total,
		})
	}
}

// ReplaceAll replaces every case-insensitive occurrence of pattern with
// replacement and returns the number of replacements. Matches are
// rewritten from the end of the document backwards so earlier offsets stay
// valid; each replacement is its own undo step. The search session ends.
func (e *Editor) ReplaceAll(pattern, replacement string) int {
	matches := find.FindAll(e.buffer.Bytes(), pattern)
	e.selection.Clear()
	e.find.End()
	if len(matches) == 0 {
		e.searchChanged(find.Result{})
		return 0
	}

	before := e.cursor
	oldLen, oldEnd := e.buffer.Len(), e.positionAt(e.buffer.Len())
	repl := []byte(replacement)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		ops := []history.Operation{history.DeleteOp(m.Start, e.buffer.Delete(m.Start, m.Len()))}
		if len(repl) > 0 {
			e.buffer.Insert(m.Start, repl)
			ops = append(ops, history.InsertOp(m.Start, repl))
		}
		e.history.RecordBatch(ops, before, history.ContextOther)
	}
	logger.DebugTagf("core", "Editor: Replaced %d occurrence(s) of %q", len(matches), pattern)

	e.cursor.SetOffset(e.buffer, matches[0].Start)
	e.modified(e.documentEdit(oldLen, oldEnd))
	e.searchChanged(find.Result{})
	e.cursorChanged()
	return len(matches)
}
