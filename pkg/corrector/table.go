package corrector

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bastiangx/spellfix/pkg/dictionary"
	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Table suggests corrections from a fixed misspelling,correction list.
//
// Each line of the source holds one rule:
//
//	aligatur,alligator
//	inspite , in spite
//	ther,their
//	ther,there
//
// Keys and values are case-folded and trimmed; spaces inside a correction
// are kept. A key may map to several corrections.
type Table struct {
	rules *patricia.Trie
	size  int
}

// NewTable parses a correction table from r. Any malformed line aborts the
// whole load with a *FormatError; read failures are returned wrapped.
func NewTable(r io.Reader) (*Table, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil table reader", ErrInvalidArgument)
	}
	t := &Table{rules: patricia.NewTrie()}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		misspelling, correction, err := parseRule(line)
		if err != nil {
			err.Line = lineNo
			return nil, err
		}
		t.add(misspelling, correction)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading correction table: %w", err)
	}
	log.Debugf("Correction table loaded: %d lines, %d misspellings", lineNo, t.size)
	return t, nil
}

// LoadTable reads a correction table file.
func LoadTable(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open correction table %s: %w", filename, err)
	}
	defer file.Close()
	return NewTable(file)
}

func parseRule(line string) (string, string, *FormatError) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return "", "", &FormatError{Text: line, Reason: fmt.Sprintf("expected 2 fields, found %d", len(fields))}
	}
	misspelling := dictionary.Fold(strings.TrimSpace(fields[0]))
	correction := dictionary.Fold(strings.TrimSpace(fields[1]))
	if misspelling == "" {
		return "", "", &FormatError{Text: line, Reason: "missing misspelling"}
	}
	if correction == "" {
		return "", "", &FormatError{Text: line, Reason: "missing correction"}
	}
	return misspelling, correction, nil
}

func (t *Table) add(misspelling, correction string) {
	key := patricia.Prefix(misspelling)
	if item := t.rules.Get(key); item != nil {
		item.(mapset.Set[string]).Add(correction)
		return
	}
	t.rules.Insert(key, mapset.NewThreadUnsafeSet(correction))
	t.size++
}

// Corrections returns the table entries for word, or an empty set when
// the word has no rule.
func (t *Table) Corrections(word string) (mapset.Set[string], error) {
	if err := checkWord(word, true); err != nil {
		return nil, err
	}
	item := t.rules.Get(patricia.Prefix(dictionary.Fold(word)))
	if item == nil {
		return mapset.NewThreadUnsafeSet[string](), nil
	}
	return MatchCase(word, item.(mapset.Set[string])), nil
}

// Len returns the number of distinct misspellings.
func (t *Table) Len() int {
	return t.size
}

// Misspellings lists, sorted, the known misspellings starting with prefix.
func (t *Table) Misspellings(prefix string) []string {
	var keys []string
	_ = t.rules.VisitSubtree(patricia.Prefix(dictionary.Fold(prefix)), func(p patricia.Prefix, _ patricia.Item) error {
		keys = append(keys, string(p))
		return nil
	})
	sort.Strings(keys)
	return keys
}
