package app

import (
	"errors"

	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/event"
	"github.com/bethropolis/quill/internal/fileio"
	"github.com/bethropolis/quill/internal/logger"
)

var errNoFileName = errors.New("no file name (use 'w <path>' from the command prompt)")

// FilePath returns the document's path, empty for an unnamed document.
func (a *App) FilePath() string {
	return a.filePath
}

// Save writes the document to its path and marks it saved.
func (a *App) Save() error {
	if a.filePath == "" {
		return errNoFileName
	}
	if err := fileio.Save(a.filePath, a.editor.Buffer().Bytes()); err != nil {
		return err
	}
	a.editor.MarkSaved()
	if a.watcher != nil {
		a.watcher.Acknowledge()
	}
	logger.Infof("App: Saved %s", a.filePath)
	a.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: a.filePath})
	return nil
}

// SaveAs names the document path and saves it there.
func (a *App) SaveAs(path string) error {
	previous := a.filePath
	a.filePath = path
	if err := a.Save(); err != nil {
		a.filePath = previous
		return err
	}
	if path != previous {
		a.restartWatcher()
	}
	return nil
}

// Open replaces the document with the file at path. The current document
// is kept when the file cannot be read.
func (a *App) Open(path string) error {
	data, err := fileio.Load(path)
	if err != nil {
		return err
	}
	a.editor.ReplaceBuffer(buffer.NewFromBytes(data), false)
	a.filePath = path
	a.restartWatcher()
	a.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
	return nil
}

// Reload re-reads the document from disk, keeping the cursor where it
// still fits. Unsaved changes and undo history are discarded.
func (a *App) Reload() error {
	if a.filePath == "" {
		return errNoFileName
	}
	data, err := fileio.Load(a.filePath)
	if err != nil {
		return err
	}
	a.editor.ReplaceBuffer(buffer.NewFromBytes(data), true)
	if a.watcher != nil {
		a.watcher.Acknowledge()
	}
	a.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: a.filePath})
	return nil
}

// startWatcher watches the current file when enabled.
func (a *App) startWatcher() {
	if !a.cfg.Editor.WatchFile || a.filePath == "" {
		return
	}
	w, err := fileio.NewWatcher(a.filePath, config.WatchDebounce)
	if err != nil {
		logger.Warnf("App: Not watching %s: %v", a.filePath, err)
		return
	}
	a.watcher = w
}

func (a *App) stopWatcher() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Debugf("App: Closing watcher: %v", err)
		}
		a.watcher = nil
	}
}

func (a *App) restartWatcher() {
	a.stopWatcher()
	a.startWatcher()
}

// watchChanges returns the watcher's channel, or nil (never ready) when
// nothing is watched.
func (a *App) watchChanges() <-chan string {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Changes()
}
