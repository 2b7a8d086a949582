package find

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestFindAll(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		pattern string
		want    []Match
	}{
		{"non-overlapping", "aaa", "aa", []Match{{0, 2}}},
		{"repeated word", "hello hello", "hello", []Match{{0, 5}, {6, 11}}},
		{"case-insensitive", "Foo fOO foo", "FOO", []Match{{0, 3}, {4, 7}, {8, 11}}},
		{"across newline", "ab\ncd", "b\nc", []Match{{1, 4}}},
		{"no match", "abc", "z", nil},
		{"pattern longer than text", "ab", "abc", nil},
		{"empty pattern", "abc", "", nil},
		{"non-ascii fold", "ÉCOLE école", "école", []Match{{0, 6}, {7, 13}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FindAll([]byte(tc.text), tc.pattern))
		})
	}
}

// TestFoldKeepsOffsets verifies that runes whose lower case has a different
// encoded length are left alone.
func TestFoldKeepsOffsets(t *testing.T) {
	text := []byte("İx")
	assert.Len(t, fold(text), len(text))
	assert.Equal(t, []Match{{2, 3}}, FindAll(text, "X"))
}

// TestProperty_MatchesAreSortedAndDisjoint verifies that every reported
// match is in range, matches the pattern and does not overlap its
// predecessor.
func TestProperty_MatchesAreSortedAndDisjoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[abAB ]{0,40}`).Draw(t, "text")
		pattern := rapid.StringMatching(`[abAB]{1,3}`).Draw(t, "pattern")

		prevEnd := 0
		for _, m := range FindAll([]byte(text), pattern) {
			if m.Start < prevEnd {
				t.Fatalf("match %+v overlaps previous end %d", m, prevEnd)
			}
			if m.End > len(text) || m.Len() != len(pattern) {
				t.Fatalf("match %+v out of range for %q", m, text)
			}
			if string(fold([]byte(text[m.Start:m.End]))) != string(fold([]byte(pattern))) {
				t.Fatalf("match %+v is %q, not %q", m, text[m.Start:m.End], pattern)
			}
			prevEnd = m.End
		}
	})
}
