package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsDigit(t *testing.T) {
	testCases := []struct {
		input       string
		expected    bool
		description string
	}{
		{"hello", false, "Letters only"},
		{"h3llo", true, "ASCII digit"},
		{"", false, "Empty string"},
		{"café", false, "Accented letter"},
		{"x٣", true, "Arabic-Indic digit"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, ContainsDigit(tc.input))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "[a b]", Quote("a b"))
	assert.Equal(t, `[line\n]`, Quote("line\n"))
}

func TestExtract(t *testing.T) {
	data := map[string]any{
		"section": map[string]any{"n": int64(7), "b": true, "s": "text"},
		"flat":    "value",
	}

	section, ok := ExtractSection(data, "section")
	require.True(t, ok)
	_, ok = ExtractSection(data, "flat")
	assert.False(t, ok)

	n, ok := ExtractInt64(section, "n")
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	_, ok = ExtractInt64(section, "s")
	assert.False(t, ok)

	b, ok := ExtractBool(section, "b")
	assert.True(t, ok)
	assert.True(t, b)

	s, ok := ExtractString(section, "s")
	assert.True(t, ok)
	assert.Equal(t, "text", s)
	_, ok = ExtractString(section, "missing")
	assert.False(t, ok)
}

func TestSaveAndLoadTOML(t *testing.T) {
	type sample struct {
		Name  string `toml:"name"`
		Count int    `toml:"count"`
	}
	path := filepath.Join(t.TempDir(), "sample.toml")
	require.NoError(t, SaveTOMLFile(sample{Name: "words", Count: 3}, path))
	assert.True(t, FileExists(path))

	var got sample
	require.NoError(t, LoadTOMLFile(path, &got))
	assert.Equal(t, sample{Name: "words", Count: 3}, got)

	raw, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	assert.Equal(t, "words", raw["name"])
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, FileExists(dir), "directories are not files")
	assert.False(t, FileExists(filepath.Join(dir, "none")))
}

func TestResolveFile(t *testing.T) {
	execDir := t.TempDir()
	configDir := t.TempDir()
	require.NoError(t, EnsureDir(filepath.Join(configDir, "data")))

	local := filepath.Join(t.TempDir(), "local.txt")
	require.NoError(t, os.WriteFile(local, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(execDir, "beside.txt"), []byte("b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "data", "shared.txt"), []byte("c"), 0644))

	pr := &PathResolver{executableDir: execDir, homeDir: t.TempDir(), configDir: configDir}

	tests := []struct {
		description string
		name        string
		expected    string
	}{
		{"path as given", local, local},
		{"next to executable", "beside.txt", filepath.Join(execDir, "beside.txt")},
		{"config data dir", "shared.txt", filepath.Join(configDir, "data", "shared.txt")},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			got, err := pr.ResolveFile(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := pr.ResolveFile("missing.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = pr.ResolveFile("")
	assert.Error(t, err)
	assert.Equal(t, configDir, pr.ConfigDir())
}
