package autosave

import (
	"errors"
	"testing"
	"time"

	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/plugin/plugintest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(enabled any, delay any) *plugintest.FakeAPI {
	cfg := map[string]any{}
	if enabled != nil {
		cfg["enabled"] = enabled
	}
	if delay != nil {
		cfg["delay"] = delay
	}
	return &plugintest.FakeAPI{
		Path:     "notes.txt",
		Modified: true,
		Config:   map[string]map[string]any{"autosave": cfg},
	}
}

func TestDisabledByDefault(t *testing.T) {
	api := newAPI(nil, nil)
	p := New().(*AutoSave)
	require.NoError(t, p.Initialize(api))

	assert.False(t, p.enabled)
	assert.Equal(t, defaultDelay, p.delay)
	assert.Empty(t, api.Handlers[event.TypeBufferModified])
}

func TestInvalidConfigKeepsDefaults(t *testing.T) {
	p := New().(*AutoSave)
	require.NoError(t, p.Initialize(newAPI("yes", "soon")))
	assert.False(t, p.enabled)
	assert.Equal(t, defaultDelay, p.delay)

	p = New().(*AutoSave)
	require.NoError(t, p.Initialize(newAPI(true, "-1s")))
	assert.True(t, p.enabled)
	assert.Equal(t, defaultDelay, p.delay)
}

func TestSavesAfterEditsPause(t *testing.T) {
	api := newAPI(true, "20ms")
	p := New()
	require.NoError(t, p.Initialize(api))
	t.Cleanup(func() { _ = p.Shutdown() })

	for i := 0; i < 3; i++ {
		api.DispatchEvent(event.TypeBufferModified, event.BufferModifiedData{})
	}

	assert.Eventually(t, func() bool { return api.SaveCount() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, api.SaveCount(), "a burst of edits saves once")
}

func TestShutdownCancelsPendingSave(t *testing.T) {
	api := newAPI(true, "30ms")
	p := New()
	require.NoError(t, p.Initialize(api))

	api.DispatchEvent(event.TypeBufferModified, event.BufferModifiedData{})
	require.NoError(t, p.Shutdown())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 0, api.SaveCount())
}

func TestSaveIfModifiedSkipsAndReports(t *testing.T) {
	api := newAPI(true, nil)
	p := New().(*AutoSave)
	require.NoError(t, p.Initialize(api))

	api.Path = ""
	p.saveIfModified()
	assert.Equal(t, 0, api.Saves, "unnamed documents are not saved")

	api.Path = "notes.txt"
	api.Modified = false
	p.saveIfModified()
	assert.Equal(t, 0, api.Saves)

	api.Modified = true
	api.SaveErr = errors.New("disk full")
	p.saveIfModified()
	assert.Equal(t, []string{"Auto-save failed: disk full"}, api.Messages)
}
