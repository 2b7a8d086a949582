package core

import (
	"fmt"

	"github.com/bethropolis/quill/internal/core/history"
	"github.com/bethropolis/quill/internal/logger"
)

// Copy puts the selected text on the clipboard. It reports whether there
// was a selection.
func (e *Editor) Copy() (bool, error) {
	text, ok := e.SelectedText()
	if !ok {
		return false, nil
	}
	if err := e.clipboard.Write(text); err != nil {
		return true, fmt.Errorf("copy: %w", err)
	}
	return true, nil
}

// Cut copies the selection to the clipboard and removes it as one undo
// step.
func (e *Editor) Cut() (bool, error) {
	text, ok := e.SelectedText()
	if !ok {
		return false, nil
	}
	err := e.clipboard.Write(text)
	e.deleteSelection(history.ContextCut)
	if err != nil {
		return true, fmt.Errorf("cut: %w", err)
	}
	return true, nil
}

// Paste inserts text at the cursor as a single undo step, replacing any
// selection.
func (e *Editor) Paste(text []byte) {
	e.deleteSelection(history.ContextOther)
	e.insert(text, history.ContextPaste)
	logger.DebugTagf("core", "Editor: Pasted %d bytes", len(text))
}

// PasteClipboard pastes the clipboard content. It reports whether there
// was anything to paste.
func (e *Editor) PasteClipboard() bool {
	text := e.clipboard.Read()
	if len(text) == 0 {
		return false
	}
	e.Paste(text)
	return true
}
