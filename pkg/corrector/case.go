package corrector

import (
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/unicode/norm"
)

// CapitalPositions marks which runes of word are uppercase.
func CapitalPositions(word string) []bool {
	runes := []rune(word)
	positions := make([]bool, len(runes))
	for i, r := range runes {
		positions[i] = unicode.IsUpper(r)
	}
	return positions
}

// ApplyCapitalization uppercases the runes of word at the marked positions.
// Runes past the end of capitalPositions keep their case.
func ApplyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}
	wordRunes := []rune(word)
	changed := false
	for i := 0; i < len(wordRunes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] && !unicode.IsUpper(wordRunes[i]) {
			wordRunes[i] = unicode.ToUpper(wordRunes[i])
			changed = true
		}
	}
	if !changed {
		return word
	}
	return string(wordRunes)
}

// MatchCase returns suggestions rewritten in the capitalization pattern of
// original, so "TABEL" yields "TABLE" and "Correctme" yields "Corrected".
// Positions are taken from the NFC form of original, the form candidates
// are matched in.
func MatchCase(original string, suggestions mapset.Set[string]) mapset.Set[string] {
	matched := mapset.NewThreadUnsafeSet[string]()
	if suggestions == nil {
		return matched
	}
	positions := CapitalPositions(norm.NFC.String(original))
	suggestions.Each(func(s string) bool {
		matched.Add(ApplyCapitalization(s, positions))
		return false
	})
	return matched
}
