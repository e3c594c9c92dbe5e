// Package errors provides sentinel errors and error types for the chess model.
// It defines the failure kinds of the position map, the board state machine
// and the script front end, as structured types that keep their context while
// remaining inspectable with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error kinds.
var (
	// ErrPlacement indicates a position map precondition was violated.
	ErrPlacement = errors.New("placement error")

	// ErrIllegalPhase indicates an event or transition attempted in the wrong board phase.
	ErrIllegalPhase = errors.New("illegal phase")

	// ErrIllegalEvent indicates a move or capture outside the mover's legal set.
	ErrIllegalEvent = errors.New("illegal event")

	// ErrConstruction indicates a piece or view built from missing or invalid fields.
	ErrConstruction = errors.New("construction error")

	// ErrParseFailure indicates a script line could not be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownSnapshot indicates a snapshot id that is not in the session store.
	ErrUnknownSnapshot = errors.New("unknown snapshot")
)

// PlacementKind distinguishes the position map preconditions.
type PlacementKind int

const (
	OccupiedTarget PlacementKind = iota + 1
	EmptySource
	DuplicatePiece
	EmptyTarget
)

// String returns a short description of the kind.
func (k PlacementKind) String() string {
	switch k {
	case OccupiedTarget:
		return "target square is occupied"
	case EmptySource:
		return "source square is empty"
	case DuplicatePiece:
		return "piece is already on the board"
	case EmptyTarget:
		return "target square is empty"
	}
	return "unknown placement failure"
}

// PlacementError reports a rejected position map edit. Square is the square
// the check failed on; Piece is the rendered piece, if one was involved.
type PlacementError struct {
	Kind   PlacementKind
	Op     string
	Square fmt.Stringer
	Piece  fmt.Stringer
}

// Error returns a formatted error message.
func (e *PlacementError) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Piece != nil {
		parts = append(parts, e.Piece.String())
	}
	if e.Square != nil {
		parts = append(parts, e.Square.String())
	}
	parts = append(parts, e.Kind.String())
	return fmt.Sprintf("%v: %s", ErrPlacement, strings.Join(parts, ": "))
}

// Unwrap returns ErrPlacement so that errors.Is(err, ErrPlacement) holds.
func (e *PlacementError) Unwrap() error {
	return ErrPlacement
}

// EventError wraps a failure to apply a board event with the ply at which it
// was attempted and the rendered event.
type EventError struct {
	Err   error        // The underlying error
	Ply   int          // 1-based ply the event would have occupied
	Event fmt.Stringer // The rejected event (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *EventError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Event != nil {
		parts = append(parts, fmt.Sprintf("event %q", e.Event.String()))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the EventError wrapper.
func (e *EventError) Unwrap() error {
	return e.Err
}

// ParseError represents a script parsing error with location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
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
			if e.File != "" {
				loc += fmt.Sprintf(":%d", e.Line)
			} else {
				loc += fmt.Sprintf(" %d", e.Line)
			}
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

// Is reports whether any error in err's chain matches target.
// It forwards to the standard library so callers need only one import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
