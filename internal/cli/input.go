// Package cli handles command line input for checking words against the
// dictionary, used for testing and debugging the spell pipeline.
package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/louhiala/sanakko/pkg/sanakko"
)

// Checker reads words and prints their spell verdict, corrections and
// optionally their morphological analyses.
type Checker struct {
	handle       *sanakko.Handle
	limit        int
	showAnalyses bool
}

// NewChecker wraps a handle for word checking. limit caps the printed
// suggestions.
func NewChecker(handle *sanakko.Handle, limit int, showAnalyses bool) *Checker {
	return &Checker{
		handle:       handle,
		limit:        limit,
		showAnalyses: showAnalyses,
	}
}

// Run checks each word in order. Used for batch input from arguments.
func (c *Checker) Run(words []string) {
	for _, word := range words {
		c.check(word)
	}
}

// Start begins the interactive loop, checking one word per input line
// until stdin closes.
func (c *Checker) Start() error {
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to check it (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c.check(line)
	}
}

func (c *Checker) check(word string) {
	start := time.Now()
	ok := c.handle.Spell(word)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for word '%s'", elapsed, word)

	if ok {
		log.Printf("%s: ok", word)
	} else {
		suggestions := c.handle.Suggest(word)
		if len(suggestions) > c.limit {
			suggestions = suggestions[:c.limit]
		}
		if len(suggestions) == 0 {
			log.Printf("%s: misspelled, no suggestions", word)
		} else {
			log.Printf("%s: misspelled, did you mean: %s", word, strings.Join(suggestions, ", "))
		}
	}

	if c.showAnalyses {
		analyses := c.handle.Analyze(word)
		if len(analyses) == 0 {
			log.Print("  no analyses")
		}
		for i, a := range analyses {
			log.Printf("  analysis %d:", i+1)
			for _, key := range a.Keys() {
				log.Printf("    %s = %s", key, a.Value(key))
			}
		}
	}
}
