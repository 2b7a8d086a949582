package modehandler

import (
	"strings"
	"unicode/utf8"
)

// PromptKind says what a prompt's input is used for.
type PromptKind int

const (
	PromptFind PromptKind = iota
	PromptReplace
	PromptOpen
	PromptCommand
)

// Prompt is a single-line input edited on the message line. The cursor is
// a byte offset that always sits on a rune boundary.
type Prompt struct {
	Kind   PromptKind
	Label  string
	text   string
	cursor int
}

// NewPrompt creates an empty prompt.
func NewPrompt(kind PromptKind, label string) *Prompt {
	return &Prompt{Kind: kind, Label: label}
}

// Text returns the current input.
func (p *Prompt) Text() string { return p.text }

// Cursor returns the cursor's byte offset into Text.
func (p *Prompt) Cursor() int { return p.cursor }

// Insert inserts s at the cursor. Line breaks are dropped.
func (p *Prompt) Insert(s string) {
	s = strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(s)
	p.text = p.text[:p.cursor] + s + p.text[p.cursor:]
	p.cursor += len(s)
}

// Backspace removes the rune before the cursor.
func (p *Prompt) Backspace() bool {
	if p.cursor == 0 {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(p.text[:p.cursor])
	p.text = p.text[:p.cursor-size] + p.text[p.cursor:]
	p.cursor -= size
	return true
}

// Delete removes the rune under the cursor.
func (p *Prompt) Delete() bool {
	if p.cursor >= len(p.text) {
		return false
	}
	_, size := utf8.DecodeRuneInString(p.text[p.cursor:])
	p.text = p.text[:p.cursor] + p.text[p.cursor+size:]
	return true
}

// Left moves the cursor one rune back.
func (p *Prompt) Left() {
	if p.cursor > 0 {
		_, size := utf8.DecodeLastRuneInString(p.text[:p.cursor])
		p.cursor -= size
	}
}

// Right moves the cursor one rune forward.
func (p *Prompt) Right() {
	if p.cursor < len(p.text) {
		_, size := utf8.DecodeRuneInString(p.text[p.cursor:])
		p.cursor += size
	}
}

func (p *Prompt) Home() { p.cursor = 0 }

func (p *Prompt) End() { p.cursor = len(p.text) }
