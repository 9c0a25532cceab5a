// Package suffix builds the reversed-suffix index that drives the
// right-to-left window scan.
package suffix

import (
	"errors"
	"fmt"
)

// Common index build errors
var (
	// ErrEmptyPattern indicates an empty pattern was given to Build.
	// An empty pattern has no bytes to index and no meaningful occurrence set.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrPatternTooLong indicates the pattern exceeds MaxPatternLen
	ErrPatternTooLong = errors.New("pattern too long")

	// ErrInvalidNode indicates an invalid node ID was encountered
	ErrInvalidNode = errors.New("invalid index node")
)

// BuildError wraps index construction errors with pattern context
type BuildError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("index build failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("index build failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *BuildError) Unwrap() error {
	return e.Err
}
