package history

import (
	"testing"
	"time"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/core/cursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager() (*Manager, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	return NewManager(WithClock(clock.now)), clock
}

func at(col int) cursor.Cursor {
	return cursor.Cursor{Line: 0, Col: col, DesiredCol: col}
}

// typeText inserts text one byte at a time at the end of buf, recording each
// insert as typing.
func typeText(m *Manager, buf *buffer.GapBuffer, text string) {
	for i := 0; i < len(text); i++ {
		pos := buf.Len()
		buf.Insert(pos, []byte{text[i]})
		m.Record(InsertOp(pos, []byte{text[i]}), at(pos), ContextTyping)
	}
}

func TestInvert(t *testing.T) {
	op := InsertOp(3, []byte("abc"))
	inv := op.Invert()

	assert.Equal(t, Delete, inv.Kind)
	assert.Equal(t, 3, inv.Pos)
	assert.Equal(t, []byte("abc"), inv.Text)
	assert.Equal(t, op, inv.Invert())
}

func TestOpsCopyText(t *testing.T) {
	text := []byte("abc")
	op := InsertOp(0, text)
	text[0] = 'X'
	assert.Equal(t, "abc", string(op.Text))
}

// TestTypingCoalesces verifies that a burst of typing undoes as one step.
func TestTypingCoalesces(t *testing.T) {
	m, _ := newTestManager()
	buf := buffer.New()

	typeText(m, buf, "hello")
	require.Equal(t, "hello", buf.String())

	c, ok := m.Undo(buf, at(5))
	require.True(t, ok)
	assert.Equal(t, "", buf.String())
	assert.Equal(t, at(0), c)

	_, ok = m.Undo(buf, at(0))
	assert.False(t, ok, "all five inserts were one group")
}

func TestCoalesceWindowSplits(t *testing.T) {
	m, clock := newTestManager()
	buf := buffer.New()

	typeText(m, buf, "ab")
	clock.advance(CoalesceWindow)
	typeText(m, buf, "cd")

	_, ok := m.Undo(buf, at(4))
	require.True(t, ok)
	assert.Equal(t, "ab", buf.String())

	_, ok = m.Undo(buf, at(2))
	require.True(t, ok)
	assert.Equal(t, "", buf.String())
}

func TestJustInsideWindowCoalesces(t *testing.T) {
	m, clock := newTestManager()
	buf := buffer.New()

	typeText(m, buf, "ab")
	clock.advance(CoalesceWindow - time.Millisecond)
	typeText(m, buf, "c")

	m.Undo(buf, at(3))
	assert.Equal(t, "", buf.String())
}

func TestContextChangeSplits(t *testing.T) {
	m, _ := newTestManager()
	buf := buffer.New()

	typeText(m, buf, "abc")
	removed := buf.Delete(2, 1)
	m.Record(DeleteOp(2, removed), at(3), ContextDeleting)

	c, ok := m.Undo(buf, at(2))
	require.True(t, ok)
	assert.Equal(t, "abc", buf.String())
	assert.Equal(t, at(3), c)

	c, ok = m.Undo(buf, at(3))
	require.True(t, ok)
	assert.Equal(t, "", buf.String())
	assert.Equal(t, at(0), c)
}

// TestSplitSetsCursorAfter verifies that a committed group ends at the
// cursor the next edit started from.
func TestSplitSetsCursorAfter(t *testing.T) {
	m, _ := newTestManager()
	buf := buffer.New()

	typeText(m, buf, "ab")
	buf.Insert(2, []byte("XY"))
	m.Record(InsertOp(2, []byte("XY")), at(2), ContextPaste)

	m.Undo(buf, at(4))
	m.Undo(buf, at(2))

	c, ok := m.Redo(buf)
	require.True(t, ok)
	assert.Equal(t, at(2), c)
	assert.Equal(t, "ab", buf.String())

	c, ok = m.Redo(buf)
	require.True(t, ok)
	assert.Equal(t, at(4), c)
	assert.Equal(t, "abXY", buf.String())
}

func TestAtomicContextsNeverCoalesce(t *testing.T) {
	for _, ctx := range []Context{ContextPaste, ContextCut, ContextOther} {
		t.Run(ctx.String(), func(t *testing.T) {
			m, _ := newTestManager()
			buf := buffer.New()

			for i := 0; i < 3; i++ {
				pos := buf.Len()
				buf.Insert(pos, []byte("x"))
				m.Record(InsertOp(pos, []byte("x")), at(pos), ctx)
			}

			m.Undo(buf, at(3))
			assert.Equal(t, "xx", buf.String())
			assert.Equal(t, 2, m.Depth())
		})
	}
}

func TestRecordBatchIsOneGroup(t *testing.T) {
	m, _ := newTestManager()
	buf := buffer.NewFromBytes([]byte("foo foo"))

	removed := buf.Delete(4, 3)
	buf.Insert(4, []byte("bar"))
	m.RecordBatch([]Operation{DeleteOp(4, removed), InsertOp(4, []byte("bar"))}, at(0), ContextOther)
	require.Equal(t, "foo bar", buf.String())

	m.Undo(buf, at(0))
	assert.Equal(t, "foo foo", buf.String())

	m.Redo(buf)
	assert.Equal(t, "foo bar", buf.String())
}

func TestRecordClearsRedo(t *testing.T) {
	m, _ := newTestManager()
	buf := buffer.New()

	typeText(m, buf, "a")
	m.Undo(buf, at(1))
	require.True(t, m.CanRedo())

	typeText(m, buf, "b")
	assert.False(t, m.CanRedo())
	_, ok := m.Redo(buf)
	assert.False(t, ok)
}

func TestSavedWatermark(t *testing.T) {
	m, _ := newTestManager()
	buf := buffer.New()
	assert.True(t, m.IsAtSaved())

	typeText(m, buf, "hello")
	assert.False(t, m.IsAtSaved(), "pending edits are unsaved")

	m.MarkSaved(at(5))
	assert.True(t, m.IsAtSaved())

	removed := buf.Delete(4, 1)
	m.Record(DeleteOp(4, removed), at(5), ContextDeleting)
	assert.False(t, m.IsAtSaved())

	m.Undo(buf, at(4))
	assert.True(t, m.IsAtSaved())

	m.Undo(buf, at(5))
	assert.False(t, m.IsAtSaved())

	m.Redo(buf)
	assert.True(t, m.IsAtSaved())
}

// TestSavedStateDiscarded verifies that editing after undoing past the
// saved point never reports the new content as saved.
func TestSavedStateDiscarded(t *testing.T) {
	m, _ := newTestManager()
	buf := buffer.New()

	typeText(m, buf, "a")
	m.MarkSaved(at(1))
	m.Undo(buf, at(1))

	buf.Insert(0, []byte("z"))
	m.Record(InsertOp(0, []byte("z")), at(0), ContextOther)
	m.Commit(at(1))

	assert.Equal(t, 1, m.Depth())
	assert.False(t, m.IsAtSaved())
}

func TestClear(t *testing.T) {
	m, _ := newTestManager()
	buf := buffer.New()
	typeText(m, buf, "abc")
	m.MarkSaved(at(3))
	typeText(m, buf, "d")

	m.Clear()

	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
	assert.True(t, m.IsAtSaved())
}

func TestUndoEmpty(t *testing.T) {
	m, _ := newTestManager()
	buf := buffer.NewFromBytes([]byte("keep"))

	c, ok := m.Undo(buf, at(2))
	assert.False(t, ok)
	assert.Equal(t, at(2), c)
	assert.Equal(t, "keep", buf.String())
}

// TestProperty_UndoRedoRoundTrip verifies that undoing every group restores
// the original content and cursor, and redoing all of them restores the
// edited content.
func TestProperty_UndoRedoRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.StringMatching(`[a-z\n]{0,30}`).Draw(t, "initial")
		buf := buffer.NewFromBytes([]byte(initial))
		clock := &fakeClock{t: time.Unix(0, 0)}
		m := NewManager(WithClock(clock.now))

		cur := cursor.Cursor{}
		start := cur
		contexts := []Context{ContextTyping, ContextDeleting, ContextPaste, ContextCut, ContextOther}

		steps := rapid.IntRange(1, 25).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			clock.advance(time.Duration(rapid.IntRange(0, 800).Draw(t, "ms")) * time.Millisecond)
			ctx := contexts[rapid.IntRange(0, len(contexts)-1).Draw(t, "ctx")]
			pos := rapid.IntRange(0, buf.Len()).Draw(t, "pos")
			before := cur
			if rapid.Bool().Draw(t, "insert") {
				text := []byte(rapid.StringMatching(`[a-z\n]{1,5}`).Draw(t, "text"))
				buf.Insert(pos, text)
				m.Record(InsertOp(pos, text), before, ctx)
				cur.SetOffset(buf, pos+len(text))
			} else {
				removed := buf.Delete(pos, rapid.IntRange(1, 4).Draw(t, "n"))
				if len(removed) == 0 {
					continue
				}
				m.Record(DeleteOp(pos, removed), before, ctx)
				cur.SetOffset(buf, pos)
			}
		}
		edited := buf.String()
		end := cur

		for {
			c, ok := m.Undo(buf, cur)
			if !ok {
				break
			}
			cur = c
		}
		if buf.String() != initial {
			t.Fatalf("after undo got %q, want %q", buf.String(), initial)
		}
		if cur != start {
			t.Fatalf("after undo cursor %+v, want %+v", cur, start)
		}

		for {
			c, ok := m.Redo(buf)
			if !ok {
				break
			}
			cur = c
		}
		if buf.String() != edited {
			t.Fatalf("after redo got %q, want %q", buf.String(), edited)
		}
		if cur != end {
			t.Fatalf("after redo cursor %+v, want %+v", cur, end)
		}
	})
}
