// internal/event/event.go
package event

import "github.com/bethropolis/quill/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferModified // buffer content changed
	TypeBufferLoaded   // a document was opened or reloaded
	TypeBufferSaved    // the document was written to disk
	TypeCursorMoved    // the cursor position changed
	TypeSearchChanged  // the search pattern or its matches changed
	TypeFileChanged    // the file was modified by another program

	TypeAppReady // the application finished initializing
	TypeAppQuit  // the application is about to exit
)

var typeNames = [...]string{
	TypeUnknown:        "Unknown",
	TypeBufferModified: "BufferModified",
	TypeBufferLoaded:   "BufferLoaded",
	TypeBufferSaved:    "BufferSaved",
	TypeCursorMoved:    "CursorMoved",
	TypeSearchChanged:  "SearchChanged",
	TypeFileChanged:    "FileChanged",
	TypeAppReady:       "AppReady",
	TypeAppQuit:        "AppQuit",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data any
}

// BufferModifiedData describes one change to the buffer content.
type BufferModifiedData struct {
	Edit types.EditInfo
}

// BufferLoadedData names the document that was loaded.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData names the file that was written.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// SearchChangedData reports the selected match. Index is 1-based and zero
// when nothing matches.
type SearchChangedData struct {
	Pattern string
	Index   int
	Total   int
}

// FileChangedData names a file modified outside the editor.
type FileChangedData struct {
	FilePath string
}
