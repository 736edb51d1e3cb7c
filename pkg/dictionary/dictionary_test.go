package dictionary

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/bastiangx/spellfix/pkg/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallDictionary = `apple
Banana
it's
cay yours
Pear, grape; and 42 numbers!
`

func newTestDictionary(t *testing.T, text string) *Dictionary {
	t.Helper()
	d, err := New(tokenizer.NewScanner(strings.NewReader(text)))
	require.NoError(t, err)
	return d
}

func TestDictionaryContains(t *testing.T) {
	d := newTestDictionary(t, smallDictionary)

	testCases := []struct {
		word        string
		expected    bool
		description string
	}{
		{"apple", true, "Word in file"},
		{"Banana", true, "Capitalized lookup"},
		{"banana", true, "Stored folded"},
		{"BANANA", true, "All caps lookup"},
		{"it's", true, "Apostrophe word"},
		{"pear", true, "Word followed by punctuation"},
		{"pineapple", false, "Word not in file"},
		{"42", false, "Digits are never words"},
		{"", false, "Empty input"},
		{"grape;", false, "Non-word input"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, d.IsWord(tc.word))
		})
	}
}

func TestNumWordsCountsFoldedWordsOnce(t *testing.T) {
	d := newTestDictionary(t, "Dog dog DOG dOg")
	assert.Equal(t, 1, d.NumWords())

	d = newTestDictionary(t, smallDictionary)
	// apple banana it's cay yours pear grape and numbers
	assert.Equal(t, 9, d.NumWords())
}

func TestNilSource(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilSource)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var sc *bufio.Scanner
	_, err = New(sc)
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestLongSeparatorRun(t *testing.T) {
	text := "alpha " + strings.Repeat("-", 2<<20) + " beta"
	d := newTestDictionary(t, text)
	assert.True(t, d.IsWord("alpha"))
	assert.True(t, d.IsWord("beta"))
	assert.Equal(t, 2, d.NumWords())
}

func TestSourceErrorIsPropagated(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := New(tokenizer.NewScanner(iotest.ErrReader(boom)))
	assert.ErrorIs(t, err, boom)
}

func TestFilterBy(t *testing.T) {
	d := newTestDictionary(t, "Cat cats AT bat")
	got := d.FilterBy(func(w string) bool { return strings.Contains(w, "at") })
	assert.ElementsMatch(t, []string{"cat", "cats", "at", "bat"}, got.ToSlice())
}

func TestFilterByEmptyDictionary(t *testing.T) {
	d := newTestDictionary(t, "")
	assert.Zero(t, d.NumWords())
	assert.Zero(t, d.FilterBy(func(string) bool { return true }).Cardinality())
}

func TestFoldNormalizes(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"
	assert.Equal(t, Fold(composed), Fold(decomposed))

	d := NewFromWords(decomposed)
	assert.True(t, d.IsWord("CAFÉ"))
}

func TestWordsSorted(t *testing.T) {
	d := NewFromWords("pear", "Apple", "fig", "no1")
	assert.Equal(t, []string{"apple", "fig", "pear"}, d.Words())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(smallDictionary), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.True(t, d.IsWord("yours"))

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateFileFormat(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(good, []byte("hello world"), 0o644))
	assert.NoError(t, ValidateFileFormat(good, FormatText))

	binary := filepath.Join(dir, "blob.txt")
	require.NoError(t, os.WriteFile(binary, []byte{0xff, 0xfe, 0x00, 0x81}, 0o644))
	assert.Error(t, ValidateFileFormat(binary, FormatText))

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	assert.Error(t, ValidateFileFormat(empty, FormatText))

	wrongExt := filepath.Join(dir, "words.bin")
	require.NoError(t, os.WriteFile(wrongExt, []byte("hello"), 0o644))
	assert.Error(t, ValidateFileFormat(wrongExt, FormatText))

	assert.Equal(t, FormatTable, DetectFileFormat("fixes.CSV"))
	assert.Equal(t, FormatText, DetectFileFormat("words.txt"))
	assert.Equal(t, FormatUnknown, DetectFileFormat("words.bin"))
}

func TestValidateDictionaryFile(t *testing.T) {
	dir := t.TempDir()
	unlisted := filepath.Join(dir, "english.lst")
	require.NoError(t, os.WriteFile(unlisted, []byte("apple\nbanana\n"), 0o644))
	assert.NoError(t, ValidateDictionaryFile(unlisted))

	binary := filepath.Join(dir, "english.words")
	require.NoError(t, os.WriteFile(binary, []byte{0xff, 0xfe, 0x00, 0x81}, 0o644))
	assert.Error(t, ValidateDictionaryFile(binary))

	listed := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(listed, []byte("apple"), 0o644))
	assert.NoError(t, ValidateDictionaryFile(listed))

	err := ValidateFileFormat(listed, FormatUnknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
	assert.Contains(t, err.Error(), listed)
}
