package utils

import (
	"strings"
	"unicode"
)

// ContainsDigit checks if a string contains any numeric digit
func ContainsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Quote wraps s in brackets so whitespace tokens stay visible in log lines.
func Quote(s string) string {
	return "[" + strings.ReplaceAll(s, "\n", `\n`) + "]"
}
