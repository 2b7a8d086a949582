package cursor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisualCol(t *testing.T) {
	assert.Equal(t, 0, VisualCol([]byte("abc"), 0, 4))
	assert.Equal(t, 3, VisualCol([]byte("abc"), 3, 4))
	assert.Equal(t, 4, VisualCol([]byte("\tx"), 1, 4))
	assert.Equal(t, 8, VisualCol([]byte("ab\tx\t"), 5, 4))
	assert.Equal(t, 4, VisualCol([]byte("世界x"), 6, 4), "wide runes take two columns")
	assert.Equal(t, 1, VisualCol([]byte("éx"), 3, 4), "combining mark shares its base column")
}

func TestByteColAt(t *testing.T) {
	line := []byte("\t世x")

	assert.Equal(t, 0, ByteColAt(line, 0, 4))
	assert.Equal(t, 0, ByteColAt(line, 3, 4), "inside tab expansion")
	assert.Equal(t, 1, ByteColAt(line, 4, 4))
	assert.Equal(t, 1, ByteColAt(line, 5, 4), "second half of a wide rune")
	assert.Equal(t, 4, ByteColAt(line, 6, 4))
	assert.Equal(t, len(line), ByteColAt(line, 50, 4))
}

func TestViewportScrollTo(t *testing.T) {
	buf := bufOf(strings.Repeat("line\n", 100))
	v := Viewport{Height: 10, Width: 20, ScrollOff: 3}

	v.ScrollTo(buf, Cursor{Line: 5}, 4)
	assert.Equal(t, 0, v.Top)

	v.ScrollTo(buf, Cursor{Line: 20}, 4)
	assert.Equal(t, 14, v.Top, "cursor kept scroll-off lines above the bottom")

	v.ScrollTo(buf, Cursor{Line: 15}, 4)
	assert.Equal(t, 12, v.Top, "cursor kept scroll-off lines below the top")

	v.ScrollTo(buf, Cursor{Line: 0}, 4)
	assert.Equal(t, 0, v.Top)
}

func TestViewportHorizontalScroll(t *testing.T) {
	buf := bufOf(strings.Repeat("x", 50))
	v := Viewport{Height: 5, Width: 10}

	v.ScrollTo(buf, Cursor{Col: 25}, 4)
	assert.Equal(t, 16, v.Left)

	v.ScrollTo(buf, Cursor{Col: 3}, 4)
	assert.Equal(t, 3, v.Left)
}

func TestViewportUninitialized(t *testing.T) {
	buf := bufOf("a\nb\nc")
	v := Viewport{}
	v.ScrollTo(buf, Cursor{Line: 2}, 4)
	assert.Equal(t, Viewport{}, v)
}
