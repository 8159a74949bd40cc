package nfa

import (
	"errors"
	"fmt"
)

// Common compilation errors.
var (
	// ErrInvalidPattern indicates the pattern is syntactically invalid:
	// empty, starting with a bare quantifier, or containing an unclosed
	// character class. Specific causes wrap this sentinel.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrTooComplex indicates the pattern exceeds Config.MaxStates.
	ErrTooComplex = errors.New("pattern too complex")
)

// Specific invalid-pattern causes. All of them satisfy
// errors.Is(err, ErrInvalidPattern).
var (
	errEmptyPattern   = fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	errBareQuantifier = fmt.Errorf("%w: quantifier with no preceding construct", ErrInvalidPattern)
	errUnclosedClass  = fmt.Errorf("%w: unclosed character class", ErrInvalidPattern)
)

// CompileError wraps a compilation failure with the offending pattern and
// the rune position the compiler had reached.
type CompileError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("compilation failed for pattern %q at position %d: %v", e.Pattern, e.Pos, e.Err)
	}
	return fmt.Sprintf("compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during graph construction via the Builder.
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("graph build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("graph build error: %s", e.Message)
}
