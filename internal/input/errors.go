// Package input classifies raw console lines into validated setup values and moves.
package input

import "errors"

// ErrEndOfInput is returned when the console has no more lines to read.
var ErrEndOfInput = errors.New("end of input")

// Kind labels a user-input error.
type Kind int

const (
	// MalformedDimensions - board size did not match "R x C" or was out of range
	MalformedDimensions Kind = iota
	// MalformedGameCount - number of games was not a positive integer
	MalformedGameCount
	// MalformedColumn - move was not a number
	MalformedColumn
	// ColumnOutOfRange - move was a number outside 1..cols
	ColumnOutOfRange
	// ColumnFull - move targeted a column without free cells
	ColumnFull
	// MalformedName - player name was blank
	MalformedName
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case MalformedDimensions:
		return "malformed_dimensions"
	case MalformedGameCount:
		return "malformed_game_count"
	case MalformedColumn:
		return "malformed_column"
	case ColumnOutOfRange:
		return "column_out_of_range"
	case ColumnFull:
		return "column_full"
	case MalformedName:
		return "malformed_name"
	default:
		return "unknown"
	}
}

// Error is a labeled input error. Message is shown to the player as is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}
