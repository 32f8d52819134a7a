package types

import (
	"errors"
	"fmt"
)

// ErrKeyMismatch is returned when a public key does not re-derive from its
// private scalar.
var ErrKeyMismatch = errors.New("public key does not match private key")

// PatternError reports a pattern that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying compile error.
func (e *PatternError) Unwrap() error { return e.Err }

// WriteError reports a match that could not be written to the output.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write match: %v", e.Err)
}

// Unwrap returns the underlying write error.
func (e *WriteError) Unwrap() error { return e.Err }
