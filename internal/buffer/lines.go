package buffer

import (
	"bytes"
	"sort"
)

func (b *GapBuffer) rebuildLines() {
	b.lines = scanLineStarts(b.Bytes())
}

func scanLineStarts(content []byte) []int {
	starts := make([]int, 1, bytes.Count(content, []byte{'\n'})+1)
	for i, c := range content {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// linesInserted updates the index after text was inserted at pos.
func (b *GapBuffer) linesInserted(pos int, text []byte) {
	line := b.lineOfIndexed(pos)
	var added []int
	for i, c := range text {
		if c == '\n' {
			added = append(added, pos+i+1)
		}
	}
	tail := b.lines[line+1:]
	for i := range tail {
		tail[i] += len(text)
	}
	if len(added) == 0 {
		return
	}
	lines := make([]int, 0, len(b.lines)+len(added))
	lines = append(lines, b.lines[:line+1]...)
	lines = append(lines, added...)
	lines = append(lines, tail...)
	b.lines = lines
}

// linesDeleted updates the index after n bytes were removed at pos. Line
// starts inside (pos, pos+n] belonged to removed newlines.
func (b *GapBuffer) linesDeleted(pos, n int) {
	end := pos + n
	out := b.lines[:0]
	for _, start := range b.lines {
		switch {
		case start <= pos:
			out = append(out, start)
		case start > end:
			out = append(out, start-n)
		}
	}
	b.lines = out
}

// lineOfIndexed is ByteToLine without clamping to the current length.
func (b *GapBuffer) lineOfIndexed(pos int) int {
	return sort.Search(len(b.lines), func(i int) bool { return b.lines[i] > pos }) - 1
}

// LineCount returns the number of lines. An empty buffer has one line and a
// trailing newline starts a final empty line.
func (b *GapBuffer) LineCount() int {
	return len(b.lines)
}

func (b *GapBuffer) clampLine(line int) int {
	return min(max(line, 0), len(b.lines)-1)
}

// LineStart returns the byte offset of the first byte of line.
func (b *GapBuffer) LineStart(line int) int {
	return b.lines[b.clampLine(line)]
}

// LineEnd returns the byte offset just past the last content byte of line,
// excluding its newline.
func (b *GapBuffer) LineEnd(line int) int {
	line = b.clampLine(line)
	if line+1 < len(b.lines) {
		return b.lines[line+1] - 1
	}
	return b.Len()
}

// LineLen returns the length of line in bytes, excluding its newline.
func (b *GapBuffer) LineLen(line int) int {
	return b.LineEnd(line) - b.LineStart(line)
}

// Line returns a copy of line without its newline.
func (b *GapBuffer) Line(line int) []byte {
	return b.Slice(b.LineStart(line), b.LineEnd(line))
}

// ByteToLine returns the line containing pos.
func (b *GapBuffer) ByteToLine(pos int) int {
	return b.lineOfIndexed(b.clampPos(pos))
}
