// Package history provides grouped undo/redo of buffer operations.
package history

import (
	"github.com/bethropolis/quill/internal/buffer"
	"github.com/bethropolis/quill/internal/core/cursor"
)

// Kind indicates whether an operation inserted or deleted text.
type Kind int

const (
	Insert Kind = iota
	Delete
)

func (k Kind) String() string {
	if k == Insert {
		return "insert"
	}
	return "delete"
}

// Operation is a single reversible edit: Text was inserted at, or deleted
// from, byte offset Pos.
type Operation struct {
	Kind Kind
	Pos  int
	Text []byte
}

// InsertOp returns an insert operation holding a copy of text.
func InsertOp(pos int, text []byte) Operation {
	return Operation{Kind: Insert, Pos: pos, Text: append([]byte(nil), text...)}
}

// DeleteOp returns a delete operation holding a copy of the removed text.
func DeleteOp(pos int, removed []byte) Operation {
	return Operation{Kind: Delete, Pos: pos, Text: append([]byte(nil), removed...)}
}

// Invert returns the operation that undoes op.
func (op Operation) Invert() Operation {
	inv := op
	if op.Kind == Insert {
		inv.Kind = Delete
	} else {
		inv.Kind = Insert
	}
	return inv
}

// Apply performs op on buf.
func (op Operation) Apply(buf buffer.Editable) {
	switch op.Kind {
	case Insert:
		buf.Insert(op.Pos, op.Text)
	case Delete:
		buf.Delete(op.Pos, len(op.Text))
	}
}

// Context classifies the user action that produced an operation. It decides
// whether consecutive operations coalesce into one undo step.
type Context int

const (
	ContextTyping Context = iota
	ContextDeleting
	ContextPaste
	ContextCut
	ContextOther
)

var contextNames = map[Context]string{
	ContextTyping:   "typing",
	ContextDeleting: "deleting",
	ContextPaste:    "paste",
	ContextCut:      "cut",
	ContextOther:    "other",
}

func (c Context) String() string {
	if name, ok := contextNames[c]; ok {
		return name
	}
	return "unknown"
}

// Atomic reports whether every operation in this context forms its own group.
func (c Context) Atomic() bool {
	return c == ContextPaste || c == ContextCut || c == ContextOther
}

// Group is the unit of undo: operations applied in order, with the cursor
// state before the first and after the last.
type Group struct {
	Ops          []Operation
	CursorBefore cursor.Cursor
	CursorAfter  cursor.Cursor
}

func (g Group) undo(buf buffer.Editable) {
	for i := len(g.Ops) - 1; i >= 0; i-- {
		g.Ops[i].Invert().Apply(buf)
	}
}

func (g Group) redo(buf buffer.Editable) {
	for _, op := range g.Ops {
		op.Apply(buf)
	}
}
