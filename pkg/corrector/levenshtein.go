package corrector

import (
	"github.com/bastiangx/spellfix/pkg/dictionary"
	"github.com/bastiangx/spellfix/pkg/editdist"
	"github.com/charmbracelet/log"
	mapset "github.com/deckarep/golang-set/v2"
)

// Levenshtein suggests every dictionary word at edit distance exactly one:
// a single insertion, deletion or substitution. Transpositions are two
// edits and are left to Swap.
type Levenshtein struct {
	dict Dictionary
}

// NewLevenshtein returns a Levenshtein corrector over dict.
func NewLevenshtein(dict Dictionary) (*Levenshtein, error) {
	if err := checkDictionary(dict); err != nil {
		return nil, err
	}
	return &Levenshtein{dict: dict}, nil
}

// Corrections returns the dictionary words one edit away from word.
func (l *Levenshtein) Corrections(word string) (mapset.Set[string], error) {
	return l.filter(word, editdist.DistanceOne)
}

// Deletions returns dictionary words reachable by removing one rune from word.
func (l *Levenshtein) Deletions(word string) (mapset.Set[string], error) {
	return l.filter(word, editdist.DeleteDistanceOne)
}

// Insertions returns dictionary words reachable by inserting one rune into word.
func (l *Levenshtein) Insertions(word string) (mapset.Set[string], error) {
	return l.filter(word, editdist.InsertDistanceOne)
}

// Substitutions returns dictionary words reachable by replacing one rune of word.
func (l *Levenshtein) Substitutions(word string) (mapset.Set[string], error) {
	return l.filter(word, editdist.ReplaceDistanceOne)
}

func (l *Levenshtein) filter(word string, match func(a, b string) bool) (mapset.Set[string], error) {
	if err := checkWord(word, true); err != nil {
		return nil, err
	}
	lower := dictionary.Fold(word)
	found := l.dict.FilterBy(func(candidate string) bool {
		return match(lower, candidate)
	})
	log.Debugf("Levenshtein: %d candidates for %q", found.Cardinality(), word)
	return MatchCase(word, found), nil
}
