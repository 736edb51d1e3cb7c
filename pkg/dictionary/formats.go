package dictionary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// FileFormat represents the kinds of text files spellfix reads
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // Word list or any prose
	FormatTable              // misspelling,correction lines
)

// FormatInfo contains metadata about a file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Dictionary",
		Extensions:  []string{".txt", ".dic", ""},
		MinSize:     1,
	},
	FormatTable: {
		Format:      FormatTable,
		Description: "Correction Table",
		Extensions:  []string{".csv", ".txt", ""},
		MinSize:     3, // "a,b"
	},
}

// sniffSize is how much of a file is checked for valid UTF-8.
const sniffSize = 1024

// ValidateFileFormat checks that filename looks like the expected format:
// big enough, a known extension, and UTF-8 text.
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	formatInfo, exists := GetFormatInfo(expectedFormat)
	if !exists {
		return fmt.Errorf("unknown format %d for file %s", expectedFormat, filename)
	}
	return validateFile(filename, formatInfo, true)
}

// ValidateDictionaryFile checks a word list. The format is picked from the
// extension; files with an unlisted extension are checked as plain text.
func ValidateDictionaryFile(filename string) error {
	format := DetectFileFormat(filename)
	if format != FormatUnknown {
		return ValidateFileFormat(filename, format)
	}
	formatInfo, _ := GetFormatInfo(FormatText)
	log.Debugf("No known extension on %s, checking as %s", filename, formatInfo.Description)
	return validateFile(filename, formatInfo, false)
}

func validateFile(filename string, formatInfo FormatInfo, checkExt bool) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	if checkExt {
		ext := strings.ToLower(filepath.Ext(filename))
		validExt := false
		for _, validExtension := range formatInfo.Extensions {
			if ext == validExtension {
				validExt = true
				break
			}
		}
		if !validExt {
			return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
				filename, ext, formatInfo.Description, formatInfo.Extensions)
		}
	}

	return validateUTF8(filename)
}

// validateUTF8 checks the head of the file decodes as UTF-8.
func validateUTF8(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	buffer := make([]byte, sniffSize)
	n, err := io.ReadFull(file, buffer)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("failed to read from text file %s: %w", filename, err)
	}
	head := buffer[:n]
	valid := utf8.Valid(head)
	// A rune cut by the sniff window is not an error.
	for cut := 1; !valid && n == sniffSize && cut < utf8.UTFMax; cut++ {
		valid = utf8.Valid(head[:n-cut])
	}
	if !valid {
		return fmt.Errorf("file %s is not valid UTF-8 text", filename)
	}

	log.Debugf("Text file %s validated", filename)
	return nil
}

// DetectFileFormat guesses the format from the file extension.
func DetectFileFormat(filename string) FileFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatTable
	case ".txt", ".dic", "":
		return FormatText
	}
	return FormatUnknown
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
