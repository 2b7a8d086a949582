// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/types"
)

// CommandFunc defines the signature for commands registered by plugins.
type CommandFunc func(args []string) error

// EditorAPI defines the methods plugins can use to interact with the editor.
// Every method must be called from the editor's main loop; code running on
// another goroutine (timers, watchers) hands work over with Post.
type EditorAPI interface {
	// --- Document ---
	BufferBytes() []byte
	LineCount() int
	SelectedText() []byte
	FilePath() string
	IsModified() bool
	SaveBuffer() error

	// --- Cursor ---
	Cursor() types.Position

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data any)
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...any)

	// --- Configuration ---
	PluginConfigValue(pluginName, key string) (any, bool)

	// Post runs fn on the main loop. It is safe to call from any goroutine
	// and drops fn once the editor is shutting down.
	Post(fn func())
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. Used for
	// subscribing to events and registering commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
