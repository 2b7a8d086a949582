package find

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPatternSelectsFromOrigin(t *testing.T) {
	text := []byte("foo bar foo bar foo")
	m := NewManager()
	m.Begin(5)

	r, ok := m.SetPattern(text, "foo")
	require.True(t, ok)
	assert.Equal(t, Result{Match: Match{8, 11}, Index: 2, Total: 3}, r)
}

func TestSetPatternWrapsToFirst(t *testing.T) {
	text := []byte("foo bar foo")
	m := NewManager()
	m.Begin(10)

	r, ok := m.SetPattern(text, "foo")
	require.True(t, ok)
	assert.Equal(t, 1, r.Index)
	assert.Equal(t, Match{0, 3}, r.Match)
}

func TestSetPatternNoMatches(t *testing.T) {
	m := NewManager()
	m.Begin(0)

	r, ok := m.SetPattern([]byte("abc"), "zzz")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Total)

	_, ok = m.Next()
	assert.False(t, ok)
	_, ok = m.Prev()
	assert.False(t, ok)
}

func TestNextPrevWrap(t *testing.T) {
	m := NewManager()
	m.Begin(0)
	m.SetPattern([]byte("x.x.x"), "x")

	var got []int
	for i := 0; i < 4; i++ {
		r, ok := m.Next()
		require.True(t, ok)
		got = append(got, r.Index)
	}
	assert.Equal(t, []int{2, 3, 1, 2}, got)

	got = got[:0]
	for i := 0; i < 3; i++ {
		r, _ := m.Prev()
		got = append(got, r.Index)
	}
	assert.Equal(t, []int{1, 3, 2}, got)
}

func TestRefreshAfterEdit(t *testing.T) {
	m := NewManager()
	m.Begin(0)
	m.SetPattern([]byte("ab ab"), "ab")

	m.Refresh([]byte("ab xx ab ab"), 4)

	r, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, Result{Match: Match{6, 8}, Index: 2, Total: 3}, r)
}

func TestEnd(t *testing.T) {
	m := NewManager()
	m.Begin(0)
	m.SetPattern([]byte("ab"), "a")
	require.True(t, m.Active())

	m.End()

	assert.False(t, m.Active())
	assert.Empty(t, m.Matches())
	assert.Empty(t, m.Pattern())
	_, ok := m.Current()
	assert.False(t, ok)
}

func TestParseSubstitute(t *testing.T) {
	pattern, repl, err := ParseSubstitute("/foo/bar/")
	require.NoError(t, err)
	assert.Equal(t, "foo", pattern)
	assert.Equal(t, "bar", repl)

	pattern, repl, err = ParseSubstitute("/foo/")
	require.NoError(t, err)
	assert.Equal(t, "foo", pattern)
	assert.Equal(t, "", repl)

	_, _, err = ParseSubstitute("/a/b/g")
	assert.NoError(t, err)

	_, _, err = ParseSubstitute("foo/bar/")
	assert.ErrorIs(t, err, ErrSubstituteFormat)

	_, _, err = ParseSubstitute("/a/b/x")
	assert.ErrorIs(t, err, ErrSubstituteFormat)

	_, _, err = ParseSubstitute("//bar/")
	assert.ErrorIs(t, err, ErrEmptyPattern)
}
