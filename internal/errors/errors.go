// Package errors provides sentinel errors and error types for the threat engine.
// It separates the three failure classes the engine distinguishes: configuration
// errors that stop loading, illegal moves that are reported to the caller, and
// invariant violations that indicate a programming defect. All types preserve
// their cause for inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrIllegalMove indicates a move that violates the turn or capture rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMalformedBoard indicates a board layout with bad dimensions or glyphs.
	ErrMalformedBoard = errors.New("malformed board")

	// ErrDuplicateKing indicates a second king was placed for one side.
	ErrDuplicateKing = errors.New("multiple kings for one side")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrThreatNotRecorded indicates removal of a threat relation that was never added.
	ErrThreatNotRecorded = errors.New("threat not recorded")

	// ErrPieceNotOnBoard indicates a query against a piece that has been removed.
	ErrPieceNotOnBoard = errors.New("piece not on board")
)

// MoveError describes a rejected move request. It carries the requested
// squares and the side that attempted the move.
type MoveError struct {
	Err  error  // The underlying error
	From string // Source square as "file,rank"
	To   string // Destination square as "file,rank"
	Side string // Side that requested the move (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Side != "" {
		parts = append(parts, fmt.Sprintf("side %s", e.Side))
	}
	parts = append(parts, fmt.Sprintf("move %s to %s", e.From, e.To))

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a board layout error with file location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" || e.Line > 0 {
		loc := e.File
		if loc == "" {
			loc = "line"
		}
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvariantError is the panic value raised when the engine's bookkeeping
// is found to be inconsistent. It should never be observed in correct
// operation.
type InvariantError struct {
	Err    error  // The underlying error
	Op     string // Operation that detected the violation
	Detail string // Free-form description of the offending state
}

// Error returns a formatted error message.
func (e *InvariantError) Error() string {
	msg := "invariant violation"
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target. It mirrors
// the standard library so callers need not import both packages.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
