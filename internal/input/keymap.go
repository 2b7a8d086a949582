// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap      Keymap // keys without Ctrl; Shift marks movement as extending
	ctrlKeymap  Keymap // Ctrl+letter
	ctrlMotion  Keymap // Ctrl combined with a navigation key
	shiftKeymap Keymap // keys whose meaning changes with Shift
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:      make(Keymap),
		ctrlKeymap:  make(Keymap),
		ctrlMotion:  make(Keymap),
		shiftKeymap: make(Keymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionCancel
	p.keymap[tcell.KeyF3] = ActionFindNext
	p.keymap[tcell.KeyF15] = ActionFindPrevious // Shift+F3 on some terminals

	p.shiftKeymap[tcell.KeyF3] = ActionFindPrevious

	// --- Ctrl+Letter ---
	p.ctrlKeymap[tcell.KeyCtrlS] = ActionSave
	p.ctrlKeymap[tcell.KeyCtrlQ] = ActionQuit
	p.ctrlKeymap[tcell.KeyCtrlO] = ActionOpen
	p.ctrlKeymap[tcell.KeyCtrlE] = ActionCommand
	p.ctrlKeymap[tcell.KeyCtrlZ] = ActionUndo
	p.ctrlKeymap[tcell.KeyCtrlY] = ActionRedo
	p.ctrlKeymap[tcell.KeyCtrlA] = ActionSelectAll
	p.ctrlKeymap[tcell.KeyCtrlC] = ActionCopy
	p.ctrlKeymap[tcell.KeyCtrlX] = ActionCut
	p.ctrlKeymap[tcell.KeyCtrlV] = ActionPaste
	p.ctrlKeymap[tcell.KeyCtrlF] = ActionFind
	p.ctrlKeymap[tcell.KeyCtrlG] = ActionFindNext
	p.ctrlKeymap[tcell.KeyCtrlR] = ActionReplace

	// --- Ctrl+Navigation ---
	p.ctrlMotion[tcell.KeyLeft] = ActionMoveWordLeft
	p.ctrlMotion[tcell.KeyRight] = ActionMoveWordRight
	p.ctrlMotion[tcell.KeyHome] = ActionMoveDocStart
	p.ctrlMotion[tcell.KeyEnd] = ActionMoveDocEnd
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// Whether the action applies to the document or a prompt is decided by the
// mode handler.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	shift := mod&tcell.ModShift != 0

	// Ctrl+H, Ctrl+I and Ctrl+M share codes with Backspace, Tab and Enter;
	// they are left unbound here and resolved by the simple keymap below.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		if action, ok := p.ctrlKeymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if mod&tcell.ModCtrl != 0 {
		if action, ok := p.ctrlMotion[key]; ok {
			return ActionEvent{Action: action, Extend: shift}
		}
	}

	if shift {
		if action, ok := p.shiftKeymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if action, ok := p.keymap[key]; ok {
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 && action.IsMovement() {
			return ActionEvent{Action: ActionUnknown}
		}
		return ActionEvent{Action: action, Extend: shift && action.IsMovement()}
	}

	// Plain runes (Shift is part of the rune itself).
	if key == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	return ActionEvent{Action: ActionUnknown}
}
