// internal/buffer/buffer.go
package buffer

// Reader is the read-only view of a text buffer. All positions are byte
// offsets into the logical content; out-of-range arguments are clamped.
type Reader interface {
	Len() int
	LineCount() int
	LineStart(line int) int
	LineEnd(line int) int
	LineLen(line int) int
	Line(line int) []byte
	ByteAt(pos int) (byte, bool)
	ByteToLine(pos int) int
	Slice(start, end int) []byte
	Bytes() []byte
}

// Editable is a Reader that can also be mutated.
type Editable interface {
	Reader
	Insert(pos int, text []byte)
	Delete(pos, n int) []byte
}
