package buffer

// InitialGap is the gap size preallocated for new buffers and the minimum
// amount the gap grows by.
const InitialGap = 1024

// GapBuffer stores text as a single byte slice with a movable gap at the
// edit point. The logical content is data[:gapStart] followed by
// data[gapEnd:]. A sorted index of line start offsets is kept in sync with
// every mutation.
type GapBuffer struct {
	data     []byte
	gapStart int
	gapEnd   int
	lines    []int
}

var _ Editable = (*GapBuffer)(nil)

// New returns an empty buffer.
func New() *GapBuffer {
	return &GapBuffer{
		data:     make([]byte, InitialGap),
		gapStart: 0,
		gapEnd:   InitialGap,
		lines:    []int{0},
	}
}

// NewFromBytes returns a buffer holding a copy of content.
func NewFromBytes(content []byte) *GapBuffer {
	b := &GapBuffer{}
	b.Load(content)
	return b
}

// Load replaces the buffer content with a copy of content. The gap is placed
// at the end and sized to a quarter of the content, at least InitialGap.
func (b *GapBuffer) Load(content []byte) {
	gap := max(InitialGap, len(content)/4)
	b.data = make([]byte, len(content)+gap)
	copy(b.data, content)
	b.gapStart = len(content)
	b.gapEnd = len(content) + gap
	b.rebuildLines()
}

// Len returns the number of content bytes.
func (b *GapBuffer) Len() int {
	return len(b.data) - b.gapLen()
}

func (b *GapBuffer) gapLen() int {
	return b.gapEnd - b.gapStart
}

// physical maps a logical offset to its index in data.
func (b *GapBuffer) physical(pos int) int {
	if pos < b.gapStart {
		return pos
	}
	return pos + b.gapLen()
}

func (b *GapBuffer) clampPos(pos int) int {
	return min(max(pos, 0), b.Len())
}

// ensureGap grows the backing array so that the gap holds at least needed bytes.
func (b *GapBuffer) ensureGap(needed int) {
	if b.gapLen() >= needed {
		return
	}
	grow := max(InitialGap, b.Len()/4, needed)
	newData := make([]byte, len(b.data)+grow)
	copy(newData, b.data[:b.gapStart])
	tail := len(b.data) - b.gapEnd
	newGapEnd := len(newData) - tail
	copy(newData[newGapEnd:], b.data[b.gapEnd:])
	b.data = newData
	b.gapEnd = newGapEnd
}

// moveGap relocates the gap so that it starts at pos. Only the bytes
// between the old and new gap position are copied.
func (b *GapBuffer) moveGap(pos int) {
	switch {
	case pos < b.gapStart:
		n := b.gapStart - pos
		copy(b.data[b.gapEnd-n:b.gapEnd], b.data[pos:b.gapStart])
		b.gapStart -= n
		b.gapEnd -= n
	case pos > b.gapStart:
		n := pos - b.gapStart
		copy(b.data[b.gapStart:b.gapStart+n], b.data[b.gapEnd:b.gapEnd+n])
		b.gapStart += n
		b.gapEnd += n
	}
}

// Insert copies text into the buffer at pos.
func (b *GapBuffer) Insert(pos int, text []byte) {
	if len(text) == 0 {
		return
	}
	pos = b.clampPos(pos)
	b.ensureGap(len(text))
	b.moveGap(pos)
	copy(b.data[b.gapStart:], text)
	b.gapStart += len(text)
	b.linesInserted(pos, text)
}

// Delete removes up to n bytes starting at pos and returns a copy of the
// removed bytes. Nothing happens, and nil is returned, when n is not
// positive or pos is at or past the end of the content.
func (b *GapBuffer) Delete(pos, n int) []byte {
	pos = max(pos, 0)
	if n <= 0 || pos >= b.Len() {
		return nil
	}
	n = min(n, b.Len()-pos)
	removed := b.Slice(pos, pos+n)
	b.moveGap(pos)
	b.gapEnd += n
	b.linesDeleted(pos, n)
	return removed
}

// ByteAt returns the byte at pos.
func (b *GapBuffer) ByteAt(pos int) (byte, bool) {
	if pos < 0 || pos >= b.Len() {
		return 0, false
	}
	return b.data[b.physical(pos)], true
}

// Slice returns a copy of the content in [start, end).
func (b *GapBuffer) Slice(start, end int) []byte {
	start = b.clampPos(start)
	end = b.clampPos(end)
	if end <= start {
		return []byte{}
	}
	out := make([]byte, 0, end-start)
	if start < b.gapStart {
		out = append(out, b.data[start:min(end, b.gapStart)]...)
	}
	if end > b.gapStart {
		from := max(start, b.gapStart)
		out = append(out, b.data[from+b.gapLen():end+b.gapLen()]...)
	}
	return out
}

// Bytes returns a copy of the whole content.
func (b *GapBuffer) Bytes() []byte {
	return b.Slice(0, b.Len())
}

func (b *GapBuffer) String() string {
	return string(b.Bytes())
}
