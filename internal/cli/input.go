// Package cli handles cmd line word lookups for debugging dictionaries and correctors
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/spellfix/pkg/corrector"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// Commands typed at the prompt instead of a word.
const (
	cmdStats = ":stats"
	cmdTable = ":table"
)

var (
	wordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// Dictionary is what the lookup loop needs from a dictionary.
type Dictionary interface {
	IsWord(word string) bool
	NumWords() int
}

// misspellingLister is implemented by correctors backed by a table.
type misspellingLister interface {
	Misspellings(prefix string) []string
}

// InputHandler reads words line by line and prints whether each is known
// and what the corrector suggests for it.
type InputHandler struct {
	corr         corrector.Corrector
	dict         Dictionary
	maxWordLen   int
	showCount    bool
	requestCount int
	out          io.Writer
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(c corrector.Corrector, d Dictionary, maxWordLen int, showCount bool, out io.Writer) *InputHandler {
	return &InputHandler{
		corr:       c,
		dict:       d,
		maxWordLen: maxWordLen,
		showCount:  showCount,
		out:        out,
	}
}

// Start begins the interface loop. It returns nil when in ends.
func (h *InputHandler) Start(in io.Reader) error {
	fmt.Fprintln(h.out, titleStyle.Render("spellfix CLI"))
	fmt.Fprintln(h.out, "type a word and press Enter to see corrections (Ctrl+D to exit):")
	reader := bufio.NewReader(in)

	for {
		fmt.Fprint(h.out, "> ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			h.handleInput(line)
		}
		if err == io.EOF {
			fmt.Fprintln(h.out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Requests returns how many lines have been handled.
func (h *InputHandler) Requests() int {
	return h.requestCount
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	switch {
	case line == cmdStats:
		h.printStats()
		return
	case line == cmdTable || strings.HasPrefix(line, cmdTable+" "):
		h.printMisspellings(strings.TrimSpace(strings.TrimPrefix(line, cmdTable)))
		return
	}

	if h.maxWordLen > 0 && utf8.RuneCountInString(line) > h.maxWordLen {
		fmt.Fprintf(h.out, "Word too long: %s\n", line)
		return
	}

	if h.dict.IsWord(line) {
		fmt.Fprintf(h.out, "'%s' %s\n", line, okStyle.Render("is spelled correctly"))
		return
	}

	start := time.Now()
	found, err := h.corr.Corrections(line)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for word '%s'", elapsed, line)

	if errors.Is(err, corrector.ErrInvalidArgument) {
		fmt.Fprintf(h.out, "Cannot correct '%s': %v\n", line, err)
		return
	}
	if err != nil {
		log.Errorf("Correcting %q: %v", line, err)
		return
	}

	suggestions := corrector.Sorted(found)
	if len(suggestions) == 0 {
		fmt.Fprintf(h.out, "No suggestions found for '%s'\n", line)
		return
	}
	if h.showCount {
		fmt.Fprintf(h.out, "Found %s suggestions for '%s':\n", humanize.Comma(int64(len(suggestions))), line)
	}
	for i, s := range suggestions {
		fmt.Fprintf(h.out, "%2d. %s\n", i+1, wordStyle.Render(s))
	}
}

func (h *InputHandler) printStats() {
	fmt.Fprintf(h.out, "Dictionary words: %s\n", humanize.Comma(int64(h.dict.NumWords())))
	fmt.Fprintf(h.out, "Lookups so far: %s\n", humanize.Comma(int64(h.requestCount-1)))
}

func (h *InputHandler) printMisspellings(prefix string) {
	lister, ok := h.corr.(misspellingLister)
	if !ok {
		fmt.Fprintln(h.out, "The current corrector has no correction table")
		return
	}
	misspellings := lister.Misspellings(prefix)
	if len(misspellings) == 0 {
		fmt.Fprintf(h.out, "No table entries start with '%s'\n", prefix)
		return
	}
	fmt.Fprintf(h.out, "%s table entries:\n", humanize.Comma(int64(len(misspellings))))
	for _, m := range misspellings {
		fmt.Fprintf(h.out, "  %s\n", wordStyle.Render(m))
	}
}
