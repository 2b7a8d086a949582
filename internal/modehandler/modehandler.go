// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"time"

	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/core"
	"github.com/bethropolis/quill/internal/input"
	"github.com/bethropolis/quill/internal/logger"
	"github.com/bethropolis/quill/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModePrompt
)

// CommandFunc runs a command typed at the command prompt.
type CommandFunc func(args []string) error

// Files is implemented by the owner of the document's file.
type Files interface {
	FilePath() string
	Save() error
	SaveAs(path string) error
	Open(path string) error
	Reload() error
}

// ModeHandler manages input modes, prompts and command execution.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	files          Files
	quitSignal     chan<- struct{}
	now            func() time.Time

	currentMode InputMode
	prompt      *Prompt
	commands    map[string]CommandFunc

	quitPending   bool
	quitPendingAt time.Time
	quitting      bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	StatusBar      *statusbar.StatusBar
	Files          Files
	QuitSignal     chan<- struct{} // closed to ask the app to exit
	Now            func() time.Time
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.StatusBar == nil || cfg.Files == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	mh := &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		statusBar:      cfg.StatusBar,
		files:          cfg.Files,
		quitSignal:     cfg.QuitSignal,
		now:            now,
		currentMode:    ModeNormal,
		commands:       make(map[string]CommandFunc),
	}
	mh.registerBuiltinCommands()
	return mh
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "ModeHandler: key %s -> %s", ev.Name(), actionEvent.Action)

	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(actionEvent)
	case ModePrompt:
		return mh.handleActionPrompt(actionEvent)
	default:
		logger.Warnf("ModeHandler: Unknown input mode: %v", mh.currentMode)
		return false
	}
}

// HandlePaste inserts a bracketed paste into the prompt or the document.
func (mh *ModeHandler) HandlePaste(text []byte) bool {
	if len(text) == 0 {
		return false
	}
	if mh.currentMode == ModePrompt {
		mh.prompt.Insert(string(text))
		mh.promptEdited()
		return true
	}
	mh.resetQuit()
	mh.editor.Paste(text)
	return true
}

// startPrompt switches to prompt mode.
func (mh *ModeHandler) startPrompt(kind PromptKind, label string) {
	mh.prompt = NewPrompt(kind, label)
	mh.currentMode = ModePrompt
	mh.statusBar.ResetTemporaryMessage()
	mh.syncPrompt()
	logger.DebugTagf("input", "ModeHandler: Entering prompt %q", label)
}

// closePrompt returns to normal mode.
func (mh *ModeHandler) closePrompt() {
	mh.prompt = nil
	mh.currentMode = ModeNormal
	mh.statusBar.ClearPrompt()
}

func (mh *ModeHandler) syncPrompt() {
	if mh.prompt != nil {
		mh.statusBar.SetPrompt(mh.prompt.Label, mh.prompt.Text(), mh.prompt.Cursor())
	}
}

// requestQuit closes the quit channel once.
func (mh *ModeHandler) requestQuit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	close(mh.quitSignal)
}

func (mh *ModeHandler) resetQuit() {
	mh.quitPending = false
}

// RegisterCommand adds a command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf("input", "ModeHandler: Registered command '%s'", name)
	return nil
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// Prompt returns the open prompt, or nil in normal mode.
func (mh *ModeHandler) Prompt() *Prompt {
	return mh.prompt
}

// quitConfirmed reports whether a pending quit is still within the
// confirmation window.
func (mh *ModeHandler) quitConfirmed() bool {
	return mh.quitPending && mh.now().Sub(mh.quitPendingAt) <= config.QuitConfirmTimeout
}
