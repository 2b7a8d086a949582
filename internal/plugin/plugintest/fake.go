// Package plugintest provides an in-memory plugin.EditorAPI for plugin tests.
package plugintest

import (
	"fmt"
	"sync"

	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/types"
)

var _ plugin.EditorAPI = (*FakeAPI)(nil)

// FakeAPI records what plugins do. Post runs fn immediately under the
// fake's lock, so plugins may call it from timer goroutines.
type FakeAPI struct {
	mu sync.Mutex

	Text     []byte
	Selected []byte
	Path     string
	Modified bool
	Config   map[string]map[string]any
	SaveErr  error

	Saves    int
	Messages []string
	Commands map[string]plugin.CommandFunc
	Handlers map[event.Type][]event.Handler
}

func (f *FakeAPI) BufferBytes() []byte    { return f.Text }
func (f *FakeAPI) SelectedText() []byte   { return f.Selected }
func (f *FakeAPI) FilePath() string       { return f.Path }
func (f *FakeAPI) IsModified() bool       { return f.Modified }
func (f *FakeAPI) Cursor() types.Position { return types.Position{} }

func (f *FakeAPI) LineCount() int {
	n := 1
	for _, b := range f.Text {
		if b == '\n' {
			n++
		}
	}
	return n
}

func (f *FakeAPI) SaveBuffer() error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Saves++
	f.Modified = false
	return nil
}

func (f *FakeAPI) DispatchEvent(eventType event.Type, data any) {
	for _, h := range f.Handlers[eventType] {
		if h(event.Event{Type: eventType, Data: data}) {
			return
		}
	}
}

func (f *FakeAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	if f.Handlers == nil {
		f.Handlers = make(map[event.Type][]event.Handler)
	}
	f.Handlers[eventType] = append(f.Handlers[eventType], handler)
}

func (f *FakeAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if f.Commands == nil {
		f.Commands = make(map[string]plugin.CommandFunc)
	}
	if _, exists := f.Commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	f.Commands[name] = cmdFunc
	return nil
}

func (f *FakeAPI) SetStatusMessage(format string, args ...any) {
	f.Messages = append(f.Messages, fmt.Sprintf(format, args...))
}

func (f *FakeAPI) PluginConfigValue(pluginName, key string) (any, bool) {
	v, ok := f.Config[pluginName][key]
	return v, ok
}

func (f *FakeAPI) Post(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn()
}

// SaveCount returns Saves under the lock Post holds.
func (f *FakeAPI) SaveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Saves
}
