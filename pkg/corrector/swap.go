package corrector

import (
	"github.com/bastiangx/spellfix/pkg/dictionary"
	"github.com/bastiangx/spellfix/pkg/editdist"
	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"
)

// Swap suggests dictionary words that differ from the input by one pair of
// adjacent runes, e.g. "wiht" -> "with". For "haet" both "heat" and "hate"
// are suggested.
type Swap struct {
	dict Dictionary
}

// NewSwap returns a Swap corrector over dict.
func NewSwap(dict Dictionary) (*Swap, error) {
	if err := checkDictionary(dict); err != nil {
		return nil, err
	}
	return &Swap{dict: dict}, nil
}

// Corrections returns the dictionary words one adjacent swap away from word.
// A word already in the dictionary is not its own correction.
func (s *Swap) Corrections(word string) (mapset.Set[string], error) {
	if err := checkWord(word, false); err != nil {
		return nil, err
	}
	lower := dictionary.Fold(word)
	found := s.dict.FilterBy(func(candidate string) bool {
		return editdist.SwapDistanceOne(lower, candidate)
	})
	log.Debugf("Swap: %d candidates for %q", found.Cardinality(), word)
	return MatchCase(word, found), nil
}
