package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/spellfix/pkg/corrector"
	"github.com/bastiangx/spellfix/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, c corrector.Corrector, d Dictionary, input string) string {
	t.Helper()
	var out bytes.Buffer
	h := NewInputHandler(c, d, 10, true, &out)
	require.NoError(t, h.Start(strings.NewReader(input)))
	return out.String()
}

func TestInputHandler(t *testing.T) {
	dict := dictionary.NewFromWords("heat", "hate", "the", "fox")
	swap, err := corrector.NewSwap(dict)
	require.NoError(t, err)

	tests := []struct {
		description string
		input       string
		contains    []string
		absent      []string
	}{
		{"known word", "fox\n", []string{"'fox'", "is spelled correctly"}, []string{"Found"}},
		{"suggestions counted", "haet\n", []string{"Found 2 suggestions for 'haet':", " 1. ", "hate", " 2. ", "heat"}, nil},
		{"no suggestions", "qqq\n", []string{"No suggestions found for 'qqq'"}, nil},
		{"too long", "abcdefghijkl\n", []string{"Word too long: abcdefghijkl"}, nil},
		{"empty corrector input ignored", "\n\n", nil, []string{"No suggestions"}},
		{"final line without newline", "Teh", []string{"The"}, nil},
		{"stats", "fox\n:stats\n", []string{"Dictionary words: 4", "Lookups so far: 1"}, nil},
		{"no table", ":table\n", []string{"no correction table"}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			out := run(t, swap, dict, tc.input)
			for _, want := range tc.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tc.absent {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestInputHandlerInvalidWord(t *testing.T) {
	dict := dictionary.NewFromWords("cat")
	lev, err := corrector.NewLevenshtein(dict)
	require.NoError(t, err)
	out := run(t, lev, dict, "c4t\n")
	assert.Contains(t, out, "Cannot correct 'c4t'")
}

func TestInputHandlerTable(t *testing.T) {
	table, err := corrector.NewTable(strings.NewReader("teh,the\nther,there\nther,their\nwierd,weird\n"))
	require.NoError(t, err)
	dict := dictionary.NewFromWords("the")

	out := run(t, table, dict, ":table th\n:table zz\nTher\n")
	assert.Contains(t, out, "1 table entries:")
	assert.Contains(t, out, "ther")
	assert.NotContains(t, out, "wierd")
	assert.Contains(t, out, "No table entries start with 'zz'")
	assert.Contains(t, out, "Their")
	assert.Contains(t, out, "There")

	h := NewInputHandler(table, dict, 0, false, &bytes.Buffer{})
	require.NoError(t, h.Start(strings.NewReader("a\nb\n")))
	assert.Equal(t, 2, h.Requests())
}
