// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/textwriter/internal/plugin"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount adds the :wc command, which reports line, word, character and
// byte counts for the focused window.
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

// Initialize registers the :wc command.
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

// Counts holds the statistics for one text.
type Counts struct {
	Lines, Words, Chars, Bytes int
}

// Count measures text. An empty text has zero lines; otherwise lines are
// separated by "\n" and a trailing newline does not start a new one.
func Count(text string) Counts {
	c := Counts{
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCountInString(text),
		Bytes: len(text),
	}
	if text != "" {
		c.Lines = strings.Count(text, "\n") + 1
		if strings.HasSuffix(text, "\n") {
			c.Lines--
		}
	}
	return c
}

func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	c := Count(p.api.ActiveContent())
	p.api.SetStatusMessage("%s: %d lines, %d words, %d chars, %d bytes",
		p.api.ActiveTitle(), c.Lines, c.Words, c.Chars, c.Bytes)
	return nil
}
