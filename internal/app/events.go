package app

import (
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/statusbar"
)

// subscribeEvents wires the app's reactions to editor events.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeSearchChanged, a.handleSearchChanged)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	a.eventManager.Subscribe(event.TypeFileChanged, a.handleFileChanged)
}

// handleSearchChanged shows the match counter while a search is active.
func (a *App) handleSearchChanged(e event.Event) bool {
	if data, ok := e.Data.(event.SearchChangedData); ok {
		active := a.editor.SearchActive() && data.Pattern != ""
		a.statusBar.SetSearchInfo(data.Index, data.Total, active)
	}
	return false
}

func (a *App) handleBufferLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		logger.Debugf("App: Loaded %s (%d bytes)", data.FilePath, a.editor.Buffer().Len())
	}
	a.statusBar.SetSearchInfo(0, 0, false)
	return false
}

// handleFileChanged reloads an unmodified document; with unsaved changes
// it only warns, leaving the choice to the user.
func (a *App) handleFileChanged(e event.Event) bool {
	data, ok := e.Data.(event.FileChangedData)
	if !ok {
		return false
	}
	if a.editor.IsModified() {
		a.statusBar.SetMessage(statusbar.MessageWarning,
			"File changed on disk. Ctrl+E reload to load it, or save to overwrite.")
		return false
	}
	if err := a.Reload(); err != nil {
		a.statusBar.SetMessage(statusbar.MessageError, "Reload failed: %v", err)
		return false
	}
	a.statusBar.SetTemporaryMessage("Reloaded %s (changed on disk)", data.FilePath)
	return false
}
