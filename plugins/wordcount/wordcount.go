// plugins/wordcount/wordcount.go
package wordcount

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/quill/internal/plugin"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount counts lines, words, characters and bytes of the document or
// of the selection.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "wordcount"
}

// Initialize registers the wc command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

// Counts holds the statistics reported by wc.
type Counts struct {
	Lines, Words, Chars, Bytes int
}

// Count computes the statistics of text. Lines counts newline-separated
// lines, so empty text has one line.
func Count(text []byte) Counts {
	return Counts{
		Lines: bytes.Count(text, []byte{'\n'}) + 1,
		Words: len(bytes.Fields(text)),
		Chars: utf8.RuneCount(text),
		Bytes: len(text),
	}
}

func (p *WordCount) executeWordCount(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("wc takes no arguments")
	}

	scope := "Document"
	text := p.api.SelectedText()
	if len(text) == 0 {
		text = p.api.BufferBytes()
	} else {
		scope = "Selection"
	}

	c := Count(text)
	p.api.SetStatusMessage("%s: %d lines, %d words, %d chars, %d bytes", scope, c.Lines, c.Words, c.Chars, c.Bytes)
	return nil
}
