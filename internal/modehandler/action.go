package modehandler

import (
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/statusbar"
)

var motions = map[input.Action]core.Motion{
	input.ActionMoveUp:        core.MoveUp,
	input.ActionMoveDown:      core.MoveDown,
	input.ActionMoveLeft:      core.MoveLeft,
	input.ActionMoveRight:     core.MoveRight,
	input.ActionMoveWordLeft:  core.MoveWordLeft,
	input.ActionMoveWordRight: core.MoveWordRight,
	input.ActionMovePageUp:    core.MovePageUp,
	input.ActionMovePageDown:  core.MovePageDown,
	input.ActionMoveHome:      core.MoveHome,
	input.ActionMoveEnd:       core.MoveEnd,
	input.ActionMoveDocStart:  core.MoveDocStart,
	input.ActionMoveDocEnd:    core.MoveDocEnd,
}

// handleActionNormal handles actions when editing the document.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	action := actionEvent.Action
	if action == input.ActionUnknown {
		return false
	}
	if action != input.ActionQuit {
		mh.resetQuit()
	}

	if motion, ok := motions[action]; ok {
		mh.editor.Move(motion, actionEvent.Extend)
		return true
	}

	switch action {
	// --- Quit/Save ---
	case input.ActionQuit:
		if mh.editor.IsModified() && !mh.quitConfirmed() {
			mh.quitPending = true
			mh.quitPendingAt = mh.now()
			mh.statusBar.SetMessage(statusbar.MessageWarning, "Unsaved changes! Press Ctrl+Q again to quit without saving.")
			return true
		}
		mh.requestQuit()
		return false

	case input.ActionSave:
		mh.save()

	case input.ActionCancel:
		if mh.editor.SearchActive() {
			mh.editor.EndSearch()
			return true
		}
		return mh.editor.ClearSelection()

	// --- Prompts ---
	case input.ActionOpen:
		mh.startPrompt(PromptOpen, "Open: ")
	case input.ActionCommand:
		mh.startPrompt(PromptCommand, "Command: ")
	case input.ActionFind:
		mh.editor.BeginSearch()
		mh.startPrompt(PromptFind, "Find: ")
	case input.ActionReplace:
		mh.startPrompt(PromptReplace, "Replace /pattern/replacement/: ")

	// --- Search ---
	case input.ActionFindNext, input.ActionFindPrevious:
		if mh.editor.SearchPattern() == "" {
			mh.statusBar.SetMessage(statusbar.MessageWarning, "No active search")
			return true
		}
		var ok bool
		if action == input.ActionFindNext {
			_, ok = mh.editor.FindNext()
		} else {
			_, ok = mh.editor.FindPrev()
		}
		if !ok {
			mh.statusBar.SetMessage(statusbar.MessageWarning, "Pattern not found: %s", mh.editor.SearchPattern())
		}

	// --- Text ---
	case input.ActionInsertRune:
		mh.editor.InsertRune(actionEvent.Rune)
	case input.ActionInsertNewLine:
		mh.editor.InsertNewline()
	case input.ActionInsertTab:
		mh.editor.InsertTab()
	case input.ActionDeleteCharBackward:
		mh.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		mh.editor.DeleteForward()

	// --- Selection / Clipboard ---
	case input.ActionSelectAll:
		mh.editor.SelectAll()
	case input.ActionCopy:
		copied, err := mh.editor.Copy()
		switch {
		case !copied:
			mh.statusBar.SetMessage(statusbar.MessageWarning, "Nothing selected to copy")
		case err != nil:
			logger.Warnf("ModeHandler: system clipboard write failed: %v", err)
			mh.statusBar.SetMessage(statusbar.MessageWarning, "Copied (system clipboard unavailable)")
		default:
			mh.statusBar.SetTemporaryMessage("Copied")
		}
	case input.ActionCut:
		cut, err := mh.editor.Cut()
		switch {
		case !cut:
			mh.statusBar.SetMessage(statusbar.MessageWarning, "Nothing selected to cut")
		case err != nil:
			logger.Warnf("ModeHandler: system clipboard write failed: %v", err)
			mh.statusBar.SetMessage(statusbar.MessageWarning, "Cut (system clipboard unavailable)")
		}
	case input.ActionPaste:
		if !mh.editor.PasteClipboard() {
			mh.statusBar.SetMessage(statusbar.MessageWarning, "Clipboard empty - nothing to paste")
		}

	// --- History ---
	case input.ActionUndo:
		if !mh.editor.Undo() {
			mh.statusBar.SetMessage(statusbar.MessageWarning, "Nothing to undo")
		}
	case input.ActionRedo:
		if !mh.editor.Redo() {
			mh.statusBar.SetMessage(statusbar.MessageWarning, "Nothing to redo")
		}

	default:
		return false
	}
	return true
}

func (mh *ModeHandler) save() {
	if err := mh.files.Save(); err != nil {
		mh.statusBar.SetMessage(statusbar.MessageError, "Save failed: %v", err)
		return
	}
	mh.statusBar.SetTemporaryMessage("Saved %s", mh.files.FilePath())
}
