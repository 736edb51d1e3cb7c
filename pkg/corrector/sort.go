package corrector

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Sorted returns the suggestions ordered case-insensitively, ties broken by
// raw string order, so numbered menus and wire responses are stable.
func Sorted(suggestions mapset.Set[string]) []string {
	if suggestions == nil {
		return []string{}
	}
	words := suggestions.ToSlice()
	sort.Slice(words, func(i, j int) bool {
		li, lj := strings.ToLower(words[i]), strings.ToLower(words[j])
		if li != lj {
			return li < lj
		}
		return words[i] < words[j]
	})
	return words
}
