package corrector

import "fmt"

// FormatError reports a malformed correction table line. It is never an I/O
// failure; read errors are returned unwrapped by type.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("correction table line %d %q: %s", e.Line, e.Text, e.Reason)
}
