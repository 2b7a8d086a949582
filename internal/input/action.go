// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	ActionUnknown Action = iota

	// --- Meta Actions ---
	ActionQuit
	ActionSave
	ActionCancel // Esc: closes a prompt or ends a search
	ActionOpen
	ActionCommand

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveWordLeft
	ActionMoveWordRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd
	ActionMoveDocStart
	ActionMoveDocEnd

	// --- Text Manipulation ---
	ActionInsertRune // requires Rune
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharBackward
	ActionDeleteCharForward

	// --- Selection / Clipboard ---
	ActionSelectAll
	ActionCopy
	ActionCut
	ActionPaste

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Search ---
	ActionFind
	ActionFindNext
	ActionFindPrevious
	ActionReplace
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionSave:               "Save",
	ActionCancel:             "Cancel",
	ActionOpen:               "Open",
	ActionCommand:            "Command",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMoveWordLeft:       "MoveWordLeft",
	ActionMoveWordRight:      "MoveWordRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionMoveDocStart:       "MoveDocStart",
	ActionMoveDocEnd:         "MoveDocEnd",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionInsertTab:          "InsertTab",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionSelectAll:          "SelectAll",
	ActionCopy:               "Copy",
	ActionCut:                "Cut",
	ActionPaste:              "Paste",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionFind:               "Find",
	ActionFindNext:           "FindNext",
	ActionFindPrevious:       "FindPrevious",
	ActionReplace:            "Replace",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMovement reports whether the action only moves the cursor.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveDocEnd
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // used for ActionInsertRune
	Extend bool // Shift held on a movement: grow the selection
}
