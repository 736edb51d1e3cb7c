// Package corrector turns a misspelled word into a set of suggestions.
//
// Three policies are provided: Levenshtein (every dictionary word one edit
// away), Swap (one adjacent transposition) and Table (a fixed
// misspelling,correction file). All of them return suggestions in the casing
// pattern of the input and never modify the dictionary.
package corrector

import (
	"fmt"
	"strings"

	"github.com/bastiangx/spellfix/internal/utils"
	"github.com/bastiangx/spellfix/pkg/dictionary"
	"github.com/bastiangx/spellfix/pkg/trie"
	mapset "github.com/deckarep/golang-set/v2"
)

// ErrInvalidArgument is returned for words no corrector accepts. It is the
// same value as dictionary.ErrInvalidArgument.
var ErrInvalidArgument = dictionary.ErrInvalidArgument

// Corrector suggests replacements for a word. An empty set means no
// suggestions; it is never nil when err is nil.
type Corrector interface {
	Corrections(word string) (mapset.Set[string], error)
}

// Dictionary is the read-only view of known words the correctors scan.
type Dictionary interface {
	FilterBy(keep trie.Predicate) mapset.Set[string]
}

// Kind names accepted by New.
const (
	KindSwap        = "SWAP"
	KindLevenshtein = "LEV"
)

// New builds a corrector from its name: SWAP, LEV (any case), or otherwise
// the path of a correction table file.
func New(kind string, dict Dictionary) (Corrector, error) {
	switch strings.ToUpper(strings.TrimSpace(kind)) {
	case KindSwap:
		return NewSwap(dict)
	case KindLevenshtein:
		return NewLevenshtein(dict)
	case "":
		return nil, fmt.Errorf("%w: empty corrector kind", ErrInvalidArgument)
	}
	return LoadTable(kind)
}

// checkWord validates input shared by every corrector.
func checkWord(word string, rejectDigits bool) error {
	if word == "" {
		return fmt.Errorf("%w: empty word", ErrInvalidArgument)
	}
	if rejectDigits && utils.ContainsDigit(word) {
		return fmt.Errorf("%w: word %q contains a digit", ErrInvalidArgument, word)
	}
	return nil
}

func checkDictionary(dict Dictionary) error {
	if dict == nil {
		return fmt.Errorf("%w: nil dictionary", ErrInvalidArgument)
	}
	return nil
}
