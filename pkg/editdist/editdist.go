// Package editdist has the single-edit predicates and the edit distance the
// correctors filter the dictionary with. Inputs are expected lowercased;
// comparison is rune by rune.
package editdist

// DeleteDistanceOne reports whether removing exactly one rune from a gives b.
func DeleteDistanceOne(a, b string) bool {
	return oneInsertion([]rune(b), []rune(a))
}

// InsertDistanceOne reports whether inserting exactly one rune into a gives b.
func InsertDistanceOne(a, b string) bool {
	return oneInsertion([]rune(a), []rune(b))
}

// oneInsertion reports whether long is short with one extra rune. Only the
// first mismatch is a candidate insertion point.
func oneInsertion(short, long []rune) bool {
	if len(long) != len(short)+1 {
		return false
	}
	i := 0
	for i < len(short) && short[i] == long[i] {
		i++
	}
	// long[i] is the inserted rune; the rest must line up shifted by one.
	for ; i < len(short); i++ {
		if short[i] != long[i+1] {
			return false
		}
	}
	return true
}

// ReplaceDistanceOne reports whether substituting exactly one rune of a gives b.
func ReplaceDistanceOne(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	diff := 0
	for i := range ra {
		if ra[i] != rb[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}

// SwapDistanceOne reports whether b is a with exactly one pair of adjacent
// runes transposed. Equal strings do not match.
func SwapDistanceOne(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	i := 0
	for i < len(ra) && ra[i] == rb[i] {
		i++
	}
	if i >= len(ra)-1 {
		return false
	}
	ra[i], ra[i+1] = ra[i+1], ra[i]
	for j := i; j < len(ra); j++ {
		if ra[j] != rb[j] {
			return false
		}
	}
	return true
}

// Levenshtein returns the minimum number of single-rune insertions,
// deletions and substitutions turning a into b.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// DistanceOne reports whether a and b are exactly one edit apart.
func DistanceOne(a, b string) bool {
	la, lb := len([]rune(a)), len([]rune(b))
	if la-lb > 1 || lb-la > 1 {
		return false
	}
	return Levenshtein(a, b) == 1
}
