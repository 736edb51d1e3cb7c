// Package dictionary holds the set of known words.
//
// Words are stored case-folded in a trie. A Dictionary is filled once from a
// token source and is read-only afterwards.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bastiangx/spellfix/pkg/tokenizer"
	"github.com/bastiangx/spellfix/pkg/trie"
	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidArgument marks inputs no dictionary or corrector operation
// accepts. The corrector package shares this value.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNilSource is returned when a dictionary is built from a nil source.
var ErrNilSource = fmt.Errorf("%w: nil token source", ErrInvalidArgument)

// TokenSource yields tokens one at a time. *bufio.Scanner satisfies it.
type TokenSource interface {
	Scan() bool
	Text() string
	Err() error
}

// Dictionary answers case-insensitive membership queries.
type Dictionary struct {
	words *trie.Trie
}

// Fold returns the stored form of word: NFC normalized and lowercased.
func Fold(word string) string {
	return strings.ToLower(norm.NFC.String(word))
}

// New drains src and keeps every word token, folded. Non-word tokens are
// ignored. A read error from src is returned wrapped. src must not be a
// typed nil other than a nil *bufio.Scanner, which is rejected like nil.
func New(src TokenSource) (*Dictionary, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if sc, ok := src.(*bufio.Scanner); ok && sc == nil {
		return nil, ErrNilSource
	}
	d := &Dictionary{words: trie.New()}
	tokens := 0
	for src.Scan() {
		tokens++
		token := src.Text()
		if tokenizer.IsWord(token) {
			d.words.Insert(Fold(token))
		}
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary tokens: %w", err)
	}
	log.Debugf("Dictionary built: %d tokens read, %d distinct words", tokens, d.words.Len())
	return d, nil
}

// NewFromWords builds a dictionary from a list of words, skipping anything
// that is not a word.
func NewFromWords(words ...string) *Dictionary {
	d := &Dictionary{words: trie.New()}
	for _, w := range words {
		if tokenizer.IsWord(w) {
			d.words.Insert(Fold(w))
		}
	}
	return d
}

// Load reads a dictionary file. Every maximal run of letters and
// apostrophes in the file is a word.
func Load(filename string) (*Dictionary, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", filename, err)
	}
	defer file.Close()

	d, err := New(tokenizer.NewScanner(file))
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary %s: %w", filename, err)
	}
	return d, nil
}

// IsWord reports whether word, in any case, is in the dictionary. Empty and
// non-word input is never a word.
func (d *Dictionary) IsWord(word string) bool {
	if d == nil || !tokenizer.IsWord(word) {
		return false
	}
	return d.words.Search(Fold(word))
}

// NumWords returns the number of distinct folded words.
func (d *Dictionary) NumWords() int {
	if d == nil {
		return 0
	}
	return d.words.Len()
}

// FilterBy returns the stored words for which keep returns true.
func (d *Dictionary) FilterBy(keep trie.Predicate) mapset.Set[string] {
	if d == nil {
		return mapset.NewThreadUnsafeSet[string]()
	}
	return d.words.FilterBy(keep)
}

// Words returns every stored word in sorted order.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	words := make([]string, 0, d.words.Len())
	d.words.Walk(func(w string) {
		words = append(words, w)
	})
	sort.Strings(words)
	return words
}
