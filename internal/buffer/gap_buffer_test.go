package buffer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	b := New()

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, InitialGap, b.gapLen())
	assert.Empty(t, b.Bytes())
}

// TestLoad_LineSplitting verifies that a trailing newline starts a final empty line.
func TestLoad_LineSplitting(t *testing.T) {
	b := NewFromBytes([]byte("hello\nworld\n"))

	require.Equal(t, 3, b.LineCount())
	assert.Equal(t, "hello", string(b.Line(0)))
	assert.Equal(t, "world", string(b.Line(1)))
	assert.Equal(t, "", string(b.Line(2)))
	assert.Equal(t, 12, b.Len())
}

func TestLoad_GapSizing(t *testing.T) {
	small := NewFromBytes([]byte("abc"))
	assert.Equal(t, InitialGap, small.gapLen())

	content := bytes.Repeat([]byte("x"), 10000)
	large := NewFromBytes(content)
	assert.Equal(t, 2500, large.gapLen())
	assert.Equal(t, content, large.Bytes())
}

func TestInsert(t *testing.T) {
	b := NewFromBytes([]byte("hello world"))

	b.Insert(5, []byte(","))
	assert.Equal(t, "hello, world", b.String())

	b.Insert(0, []byte(">> "))
	assert.Equal(t, ">> hello, world", b.String())

	b.Insert(b.Len(), []byte("!\n"))
	assert.Equal(t, ">> hello, world!\n", b.String())
	assert.Equal(t, 2, b.LineCount())
}

func TestInsert_ClampsPosition(t *testing.T) {
	b := NewFromBytes([]byte("abc"))

	b.Insert(-5, []byte("<"))
	b.Insert(100, []byte(">"))

	assert.Equal(t, "<abc>", b.String())
}

func TestInsert_EmptyIsNoop(t *testing.T) {
	b := NewFromBytes([]byte("abc"))
	b.Insert(1, nil)
	assert.Equal(t, "abc", b.String())
}

// TestInsert_GrowsGap verifies that inserting more than the gap holds keeps
// both halves of the content intact.
func TestInsert_GrowsGap(t *testing.T) {
	b := NewFromBytes([]byte("head|tail"))
	big := bytes.Repeat([]byte("ab\n"), 2000)

	b.Insert(5, big)

	want := "head|" + string(big) + "tail"
	assert.Equal(t, want, b.String())
	assert.Equal(t, 2001, b.LineCount())
	assert.Equal(t, "tail", string(b.Line(2000)))
}

func TestDelete(t *testing.T) {
	b := NewFromBytes([]byte("hello\nworld"))

	removed := b.Delete(5, 1)

	assert.Equal(t, "\n", string(removed))
	assert.Equal(t, "helloworld", b.String())
	assert.Equal(t, 1, b.LineCount())
}

func TestDelete_Edges(t *testing.T) {
	b := NewFromBytes([]byte("abc"))

	assert.Empty(t, b.Delete(1, 0), "zero length")
	assert.Empty(t, b.Delete(3, 2), "at end")
	assert.Empty(t, b.Delete(10, 2), "past end")
	assert.Equal(t, "abc", b.String())

	assert.Equal(t, "bc", string(b.Delete(1, 100)), "length clamped to remaining")
	assert.Equal(t, "a", b.String())

	b = NewFromBytes([]byte("\nxy"))
	assert.Equal(t, "\n", string(b.Delete(-1, 1)), "negative pos clamps to 0")
	assert.Equal(t, "xy", b.String())
	assert.Equal(t, 1, b.LineCount())
}

func TestLineQueries(t *testing.T) {
	b := NewFromBytes([]byte("one\ntwo\n\nfour"))

	require.Equal(t, 4, b.LineCount())
	assert.Equal(t, []int{0, 4, 8, 9}, b.lines)

	assert.Equal(t, 4, b.LineStart(1))
	assert.Equal(t, 7, b.LineEnd(1))
	assert.Equal(t, 0, b.LineLen(2))
	assert.Equal(t, b.Len(), b.LineEnd(3))

	assert.Equal(t, 0, b.LineStart(-1), "negative line clamps to first")
	assert.Equal(t, 9, b.LineStart(42), "large line clamps to last")
}

func TestByteToLine(t *testing.T) {
	b := NewFromBytes([]byte("ab\ncd\n"))

	cases := []struct {
		pos  int
		line int
	}{
		{0, 0}, {2, 0}, {3, 1}, {5, 1}, {6, 2}, {99, 2}, {-1, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.line, b.ByteToLine(tc.pos), "pos %d", tc.pos)
	}
}

func TestByteAtAcrossGap(t *testing.T) {
	b := NewFromBytes([]byte("abcdef"))
	b.Insert(3, []byte("X"))

	var got []byte
	for i := 0; i < b.Len(); i++ {
		c, ok := b.ByteAt(i)
		require.True(t, ok)
		got = append(got, c)
	}
	assert.Equal(t, "abcXdef", string(got))

	_, ok := b.ByteAt(b.Len())
	assert.False(t, ok)
}

func TestSliceAcrossGap(t *testing.T) {
	b := NewFromBytes([]byte("abcdef"))
	b.Insert(3, []byte("X"))
	b.moveGap(2)

	assert.Equal(t, "bcXd", string(b.Slice(1, 5)))
	assert.Equal(t, "", string(b.Slice(4, 2)))
	assert.Equal(t, "abcXdef", string(b.Slice(-3, 300)))
}

type editModel struct {
	buf       *GapBuffer
	reference []byte
}

func (m *editModel) insert(pos int, text []byte) {
	m.buf.Insert(pos, text)
	pos = min(max(pos, 0), len(m.reference))
	next := append([]byte{}, m.reference[:pos]...)
	next = append(next, text...)
	m.reference = append(next, m.reference[pos:]...)
}

func (m *editModel) delete(pos, n int) []byte {
	removed := m.buf.Delete(pos, n)
	pos = max(pos, 0)
	if n > 0 && pos < len(m.reference) {
		end := min(pos+n, len(m.reference))
		m.reference = append(m.reference[:pos:pos], m.reference[end:]...)
	}
	return removed
}

// TestProperty_MatchesReference verifies that any sequence of edits leaves
// the buffer equal to a plain byte slice edited the same way, with a line
// index equal to a full rescan.
func TestProperty_MatchesReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.StringMatching(`[a-z\n]{0,40}`).Draw(t, "initial")
		m := &editModel{buf: NewFromBytes([]byte(initial)), reference: []byte(initial)}

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			pos := rapid.IntRange(-2, len(m.reference)+2).Draw(t, "pos")
			if rapid.Bool().Draw(t, "insert") {
				text := rapid.StringMatching(`[a-z\n]{0,12}`).Draw(t, "text")
				m.insert(pos, []byte(text))
			} else {
				n := rapid.IntRange(0, 8).Draw(t, "n")
				m.delete(pos, n)
			}

			if !bytes.Equal(m.reference, m.buf.Bytes()) {
				t.Fatalf("content mismatch: got %q, want %q", m.buf.Bytes(), m.reference)
			}
			want := scanLineStarts(m.reference)
			if len(want) != len(m.buf.lines) {
				t.Fatalf("line index mismatch: got %v, want %v", m.buf.lines, want)
			}
			for j := range want {
				if want[j] != m.buf.lines[j] {
					t.Fatalf("line index mismatch: got %v, want %v", m.buf.lines, want)
				}
			}
		}
	})
}

// TestProperty_LengthAccounting verifies that the length equals bytes
// inserted minus bytes actually removed.
func TestProperty_LengthAccounting(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := New()
		expected := 0

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			pos := rapid.IntRange(0, b.Len()).Draw(t, "pos")
			if rapid.Bool().Draw(t, "insert") {
				text := strings.Repeat("é", rapid.IntRange(0, 5).Draw(t, "runes"))
				b.Insert(pos, []byte(text))
				expected += len(text)
			} else {
				removed := b.Delete(pos, rapid.IntRange(0, 10).Draw(t, "n"))
				expected -= len(removed)
			}
			if b.Len() != expected {
				t.Fatalf("len = %d, want %d", b.Len(), expected)
			}
		}
	})
}
