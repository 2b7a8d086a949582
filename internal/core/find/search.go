// Package find implements case-insensitive substring search over buffer
// content and the navigation state of an interactive search.
package find

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Match is the byte range [Start, End) of one occurrence.
type Match struct {
	Start int
	End   int
}

// Len returns the length of the match in bytes.
func (m Match) Len() int {
	return m.End - m.Start
}

// FindAll returns every non-overlapping, case-insensitive occurrence of
// pattern in text, left to right. Scanning resumes at the end of each
// match. An empty pattern matches nothing.
func FindAll(text []byte, pattern string) []Match {
	if pattern == "" {
		return nil
	}
	haystack := fold(text)
	needle := fold([]byte(pattern))

	var matches []Match
	for pos := 0; pos <= len(haystack)-len(needle); {
		i := bytes.Index(haystack[pos:], needle)
		if i < 0 {
			break
		}
		start := pos + i
		matches = append(matches, Match{Start: start, End: start + len(needle)})
		pos = start + len(needle)
	}
	return matches
}

// fold lowercases b rune by rune. A rune whose lower-case form encodes to a
// different number of bytes is kept as is, so offsets into the result are
// offsets into b.
func fold(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError || r < utf8.RuneSelf {
			if 'A' <= b[0] && b[0] <= 'Z' {
				out = append(out, b[0]+'a'-'A')
			} else {
				out = append(out, b[:size]...)
			}
			b = b[size:]
			continue
		}
		if lower := unicode.ToLower(r); utf8.RuneLen(lower) == size {
			out = utf8.AppendRune(out, lower)
		} else {
			out = append(out, b[:size]...)
		}
		b = b[size:]
	}
	return out
}
