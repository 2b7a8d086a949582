package modehandler

import (
	"errors"
	"strings"

	"github.com/bethropolis/quill/internal/core/find"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/statusbar"
)

// handleActionPrompt handles actions while a prompt is open.
func (mh *ModeHandler) handleActionPrompt(actionEvent input.ActionEvent) bool {
	p := mh.prompt
	edited := false

	switch actionEvent.Action {
	case input.ActionInsertRune:
		p.Insert(string(actionEvent.Rune))
		edited = true
	case input.ActionDeleteCharBackward:
		edited = p.Backspace()
	case input.ActionDeleteCharForward:
		edited = p.Delete()
	case input.ActionMoveLeft:
		p.Left()
	case input.ActionMoveRight:
		p.Right()
	case input.ActionMoveHome:
		p.Home()
	case input.ActionMoveEnd:
		p.End()

	case input.ActionInsertNewLine:
		mh.executePrompt()
		return true

	case input.ActionCancel, input.ActionQuit:
		if p.Kind == PromptFind {
			mh.editor.EndSearch()
		}
		mh.closePrompt()
		logger.DebugTagf("input", "ModeHandler: Canceled prompt")
		return true

	default:
		return false
	}

	if edited {
		mh.promptEdited()
	} else {
		mh.syncPrompt()
	}
	return true
}

// promptEdited reacts to a change of the prompt text. The find prompt
// searches as the user types.
func (mh *ModeHandler) promptEdited() {
	mh.statusBar.ResetTemporaryMessage()
	mh.syncPrompt()
	if mh.prompt.Kind != PromptFind {
		return
	}
	pattern := mh.prompt.Text()
	if _, ok := mh.editor.SetSearchPattern(pattern); !ok && pattern != "" {
		mh.statusBar.SetMessage(statusbar.MessageWarning, "No matches")
	}
}

// executePrompt runs the open prompt's input. An empty input cancels; a
// failing open or replace keeps the prompt open so the input can be fixed.
func (mh *ModeHandler) executePrompt() {
	p := mh.prompt
	text := p.Text()
	if text == "" {
		if p.Kind == PromptFind {
			mh.editor.EndSearch()
		}
		mh.closePrompt()
		return
	}

	switch p.Kind {
	case PromptFind:
		// The session stays active so F3 / Ctrl+G keep cycling.
		mh.closePrompt()
		if len(mh.editor.SearchMatches()) == 0 {
			mh.statusBar.SetMessage(statusbar.MessageWarning, "Pattern not found: %s", text)
		}

	case PromptReplace:
		pattern, replacement, err := find.ParseSubstitute(text)
		if err != nil {
			mh.statusBar.SetMessage(statusbar.MessageError, "%v", err)
			return
		}
		mh.closePrompt()
		n := mh.editor.ReplaceAll(pattern, replacement)
		if n == 0 {
			mh.statusBar.SetMessage(statusbar.MessageWarning, "Pattern not found: %s", pattern)
			return
		}
		mh.statusBar.SetTemporaryMessage("Replaced %d occurrence(s)", n)

	case PromptOpen:
		if err := mh.files.Open(text); err != nil {
			mh.statusBar.SetMessage(statusbar.MessageError, "Error: %v", err)
			return
		}
		mh.closePrompt()
		mh.statusBar.SetTemporaryMessage("Opened: %s", mh.files.FilePath())

	case PromptCommand:
		mh.closePrompt()
		mh.executeCommand(text)
	}
}

// executeCommand parses and runs a command line.
func (mh *ModeHandler) executeCommand(cmdStr string) {
	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		return
	}
	cmdName := parts[0]
	args := parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetMessage(statusbar.MessageError, "Unknown command: %s", cmdName)
		return
	}
	logger.DebugTagf("input", "ModeHandler: Executing command '%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetMessage(statusbar.MessageError, "Error executing command '%s': %v", cmdName, err)
	}
}

var errUnsaved = errors.New("unsaved changes (add ! to override)")

// editFile replaces the document with the file named by args[0].
func (mh *ModeHandler) editFile(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: e <path>")
	}
	if err := mh.files.Open(args[0]); err != nil {
		return err
	}
	mh.statusBar.SetTemporaryMessage("Opened: %s", mh.files.FilePath())
	return nil
}

// registerBuiltinCommands installs the commands every session has.
func (mh *ModeHandler) registerBuiltinCommands() {
	builtins := map[string]CommandFunc{
		"w": func(args []string) error {
			switch len(args) {
			case 0:
				mh.save()
			case 1:
				if err := mh.files.SaveAs(args[0]); err != nil {
					return err
				}
				mh.statusBar.SetTemporaryMessage("Saved %s", mh.files.FilePath())
			default:
				return errors.New("usage: w [path]")
			}
			return nil
		},
		"q": func(args []string) error {
			if mh.editor.IsModified() {
				return errUnsaved
			}
			mh.requestQuit()
			return nil
		},
		"q!": func(args []string) error {
			mh.requestQuit()
			return nil
		},
		"wq": func(args []string) error {
			if err := mh.files.Save(); err != nil {
				return err
			}
			mh.requestQuit()
			return nil
		},
		"e": func(args []string) error {
			if mh.editor.IsModified() {
				return errUnsaved
			}
			return mh.editFile(args)
		},
		"e!": mh.editFile,
		"reload": func(args []string) error {
			if err := mh.files.Reload(); err != nil {
				return err
			}
			mh.statusBar.SetTemporaryMessage("Reloaded %s", mh.files.FilePath())
			return nil
		},
	}
	for name, fn := range builtins {
		if err := mh.RegisterCommand(name, fn); err != nil {
			logger.Warnf("ModeHandler: %v", err)
		}
	}
}
