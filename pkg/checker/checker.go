// Package checker drives an interactive spell check of a whole document.
//
// Every token of the input is copied to the output. Known words and
// non-words pass through as is; for an unknown word the user is shown the
// corrector's suggestions and picks one, keeps the word, or types a
// replacement.
package checker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/spellfix/internal/logger"
	"github.com/bastiangx/spellfix/internal/utils"
	"github.com/bastiangx/spellfix/pkg/corrector"
	"github.com/bastiangx/spellfix/pkg/tokenizer"
	"github.com/charmbracelet/log"
)

// WordChecker reports whether a word is known.
type WordChecker interface {
	IsWord(word string) bool
}

// Report summarizes one CheckDocument run.
type Report struct {
	Tokens     int
	Words      int
	Misspelled int
	Replaced   int
}

// Checker pairs a corrector with the dictionary it corrects against.
type Checker struct {
	corr   corrector.Corrector
	dict   WordChecker
	prompt io.Writer
	log    *log.Logger
}

// Menu entries shown before the suggestions.
const (
	choiceKeep    = 0
	choiceReplace = 1
	firstChoice   = 2
)

// New returns a Checker. Prompts are written to prompt, or stderr when nil.
func New(c corrector.Corrector, d WordChecker, prompt io.Writer) (*Checker, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil corrector", corrector.ErrInvalidArgument)
	}
	if d == nil {
		return nil, fmt.Errorf("%w: nil dictionary", corrector.ErrInvalidArgument)
	}
	if prompt == nil {
		prompt = os.Stderr
	}
	return &Checker{
		corr:   c,
		dict:   d,
		prompt: prompt,
		log:    logger.New("checker"),
	}, nil
}

// CheckDocument reads the document from in, asks about unknown words on
// input, and writes the corrected document to out. Read and write failures
// are returned wrapped.
func (c *Checker) CheckDocument(in io.Reader, input io.Reader, out io.Writer) (Report, error) {
	var report Report
	if in == nil || input == nil || out == nil {
		return report, fmt.Errorf("%w: nil stream", corrector.ErrInvalidArgument)
	}
	c.log.Debug("Checking document")

	tokens := tokenizer.NewScanner(in)
	answers := bufio.NewReader(input)
	w := bufio.NewWriter(out)

	for tokens.Scan() {
		token := tokens.Text()
		report.Tokens++
		c.log.Debugf("Got token %s", utils.Quote(token))

		replacement := token
		if tokenizer.IsWord(token) {
			report.Words++
			if !c.dict.IsWord(token) {
				report.Misspelled++
				var err error
				replacement, err = c.correct(token, answers)
				if err != nil {
					return report, err
				}
				if replacement != token {
					report.Replaced++
				}
			}
		}
		if _, err := w.WriteString(replacement); err != nil {
			return report, fmt.Errorf("writing output: %w", err)
		}
	}
	if err := tokens.Err(); err != nil {
		return report, fmt.Errorf("reading document: %w", err)
	}
	if err := w.Flush(); err != nil {
		return report, fmt.Errorf("writing output: %w", err)
	}
	c.log.Debug("Document checked", "tokens", report.Tokens, "misspelled", report.Misspelled, "replaced", report.Replaced)
	return report, nil
}

// correct resolves one unknown word through the menu.
func (c *Checker) correct(word string, answers *bufio.Reader) (string, error) {
	found, err := c.corr.Corrections(word)
	if errors.Is(err, corrector.ErrInvalidArgument) {
		c.log.Warnf("Corrector rejected %s: %v", utils.Quote(word), err)
		return word, nil
	}
	if err != nil {
		return "", err
	}
	suggestions := corrector.Sorted(found)

	fmt.Fprintf(c.prompt, "The word: %q is not in the dictionary. Please enter the number corresponding to the appropriate action:\n", word)
	fmt.Fprintf(c.prompt, "%d: Ignore and continue\n", choiceKeep)
	fmt.Fprintf(c.prompt, "%d: Replace with another word\n", choiceReplace)
	for i, s := range suggestions {
		fmt.Fprintf(c.prompt, "%d: Replace with %q\n", i+firstChoice, s)
	}

	choice, err := c.nextInt(choiceKeep, len(suggestions)+firstChoice-1, answers)
	if err != nil {
		return "", err
	}
	switch choice {
	case choiceKeep:
		return word, nil
	case choiceReplace:
		return c.nextWord(word, answers)
	}
	return suggestions[choice-firstChoice], nil
}

// nextInt reads lines until one holds an integer in [lo, hi]. At end of
// input it answers lo.
func (c *Checker) nextInt(lo, hi int, answers *bufio.Reader) (int, error) {
	for {
		line, err := readLine(answers)
		if err == io.EOF {
			c.log.Warn("Input ended while waiting for a choice, keeping word")
			return lo, nil
		}
		if err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		if choice, convErr := strconv.Atoi(line); convErr == nil && choice >= lo && choice <= hi {
			return choice, nil
		}
		fmt.Fprintln(c.prompt, "Invalid input. Please try again!")
	}
}

// nextWord reads lines until one is a dictionary word. At end of input the
// original word is kept.
func (c *Checker) nextWord(word string, answers *bufio.Reader) (string, error) {
	fmt.Fprintln(c.prompt, "Please type a replacement word:")
	for {
		line, err := readLine(answers)
		if err == io.EOF {
			c.log.Warn("Input ended while waiting for a replacement, keeping word")
			return word, nil
		}
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if c.dict.IsWord(line) {
			return line, nil
		}
		fmt.Fprintf(c.prompt, "%q is not in the dictionary. Please try again!\n", line)
	}
}

// readLine returns the next trimmed line; a final line without newline
// still counts.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		return strings.TrimSpace(line), nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
