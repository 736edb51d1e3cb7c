// Package tokenizer splits text into word and non-word tokens.
//
// A word is a maximal run of letters and apostrophes. Combining marks count
// as letters so decomposed text tokenizes like its composed form. Everything between
// words (spaces, punctuation, digits) comes back as non-word tokens, so
// joining all tokens in order reproduces the input byte for byte.
package tokenizer

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"
)

// MaxTokenSize bounds a single token held in memory by the scanner.
const MaxTokenSize = 1 << 20

// nonWordChunk is the longest non-word token returned while more input is
// pending. Longer separator runs come back as several consecutive tokens.
const nonWordChunk = 64 << 10

// IsWordRune reports whether r may appear inside a word.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || r == '\''
}

// IsWord reports whether s is non-empty and made only of word runes.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsWordRune(r) {
			return false
		}
	}
	return true
}

// NewScanner returns a scanner that yields tokens from r lazily. It reads
// only as much input as the next token needs.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxTokenSize)
	sc.Split(ScanTokens)
	return sc
}

// ScanTokens is a bufio.SplitFunc that returns alternating runs of word and
// non-word runes. Invalid UTF-8 bytes are treated as non-word runes. A run of
// non-word runes may be split into several tokens; a word never is.
func ScanTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	if !atEOF && !utf8.FullRune(data) {
		return 0, nil, nil
	}
	first, width := utf8.DecodeRune(data)
	word := IsWordRune(first)

	i := width
	for i < len(data) {
		if !word && !atEOF && i >= nonWordChunk {
			return i, data[:i], nil
		}
		if !atEOF && !utf8.FullRune(data[i:]) {
			return 0, nil, nil
		}
		r, w := utf8.DecodeRune(data[i:])
		if IsWordRune(r) != word {
			return i, data[:i], nil
		}
		i += w
	}
	if atEOF {
		return len(data), data, nil
	}
	// The run may continue past the buffer.
	return 0, nil, nil
}
