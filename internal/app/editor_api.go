// internal/app/editor_api.go
package app

import (
	"github.com/bethropolis/quill/internal/commands"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/modehandler"
	"github.com/bethropolis/quill/internal/plugin"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/bethropolis/quill/internal/theme"
	"github.com/bethropolis/quill/internal/types"
)

var (
	_ plugin.EditorAPI  = (*appEditorAPI)(nil)
	_ commands.ThemeAPI = (*appEditorAPI)(nil)
)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Document ---

func (api *appEditorAPI) BufferBytes() []byte {
	return api.app.editor.Buffer().Bytes()
}

func (api *appEditorAPI) LineCount() int {
	return api.app.editor.Buffer().LineCount()
}

func (api *appEditorAPI) SelectedText() []byte {
	text, _ := api.app.editor.SelectedText()
	return text
}

func (api *appEditorAPI) FilePath() string {
	return api.app.filePath
}

func (api *appEditorAPI) IsModified() bool {
	return api.app.editor.IsModified()
}

func (api *appEditorAPI) SaveBuffer() error {
	return api.app.Save()
}

// --- Cursor ---

func (api *appEditorAPI) Cursor() types.Position {
	c := api.app.editor.Cursor()
	return types.Position{Line: c.Line, Col: c.Col}
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data any) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.modeHandler.RegisterCommand(name, modehandler.CommandFunc(cmdFunc))
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...any) {
	api.app.statusBar.SetMessage(statusbar.MessageInfo, format, args...)
}

// --- Configuration ---

func (api *appEditorAPI) PluginConfigValue(pluginName, key string) (any, bool) {
	return api.app.cfg.PluginValue(pluginName, key)
}

func (api *appEditorAPI) Post(fn func()) {
	api.app.post(fn)
}

// --- Theme ---

func (api *appEditorAPI) Theme() *theme.Theme {
	return api.app.activeTheme
}

func (api *appEditorAPI) SetTheme(th *theme.Theme) {
	api.app.activeTheme = th
	api.app.tuiManager.GetScreen().SetStyle(th.GetStyle(theme.StyleDefault))
	api.app.requestRedraw()
}
