package loader

import (
	"errors"
	"fmt"
)

// ErrMalformedLine is the sentinel for any line that is neither blank, a
// comment, nor exactly two whitespace-separated integers.
var ErrMalformedLine = errors.New("loader: malformed line")

// ErrNegativeID is the sentinel for a negative node ID.
var ErrNegativeID = errors.New("loader: negative node id")

// parseErrorf wraps a sentinel with the 1-based line number it occurred on.
func parseErrorf(sentinel error, line int, format string, args ...interface{}) error {
	return fmt.Errorf("loader: line %d: %s: %w", line, fmt.Sprintf(format, args...), sentinel)
}
