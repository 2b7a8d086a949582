package event

import (
	"testing"

	"github.com/bethropolis/quill/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDispatchInOrder(t *testing.T) {
	m := NewManager()
	var calls []string

	m.Subscribe(TypeCursorMoved, func(e Event) bool {
		calls = append(calls, "first")
		return false
	})
	m.Subscribe(TypeCursorMoved, func(e Event) bool {
		data := e.Data.(CursorMovedData)
		calls = append(calls, "second")
		assert.Equal(t, types.Position{Line: 2, Col: 3}, data.NewPosition)
		return false
	})
	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		calls = append(calls, "wrong type")
		return false
	})

	m.Dispatch(TypeCursorMoved, CursorMovedData{NewPosition: types.Position{Line: 2, Col: 3}})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestConsumedStopsDelivery(t *testing.T) {
	m := NewManager()
	var calls int
	m.Subscribe(TypeFileChanged, func(Event) bool { calls++; return true })
	m.Subscribe(TypeFileChanged, func(Event) bool { calls++; return false })

	m.Dispatch(TypeFileChanged, FileChangedData{FilePath: "a.txt"})

	assert.Equal(t, 1, calls)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Dispatch(TypeAppQuit, nil) })
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "BufferModified", TypeBufferModified.String())
	assert.Equal(t, "Unknown", Type(99).String())
}
