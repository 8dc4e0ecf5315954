// Package errors provides sentinel errors and error types for bitchess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates move text that cannot be decoded against the board.
	ErrInvalidMove = errors.New("invalid move")

	// ErrPieceNotFound indicates a piece-list removal for a square that is not listed.
	ErrPieceNotFound = errors.New("piece not found")

	// ErrNoHistory indicates an undo with no move to undo.
	ErrNoHistory = errors.New("no move to undo")

	// ErrInconsistentBoard indicates the board representations disagree.
	ErrInconsistentBoard = errors.New("inconsistent board")

	// ErrRoundTrip indicates undoing a line did not restore the start position.
	ErrRoundTrip = errors.New("round trip mismatch")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDuplicatePosition indicates a line ended in an already seen position.
	ErrDuplicatePosition = errors.New("duplicate position")
)

// LineError wraps errors with input context: the line being replayed, the
// ply it failed at, and the move text involved. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type LineError struct {
	Err      error  // The underlying error
	Line     int    // 1-based line number in the input
	Ply      int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *LineError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
	} else {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the LineError wrapper.
func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with location context.
// It's used for FEN and move-text errors.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    string // Named part of the input (e.g. "castling")
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Column > 0 {
			loc += fmt.Sprintf(" column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.Input))
	}

	// Add underlying error
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
