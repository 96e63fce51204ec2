// Package game runs Connect Four sessions and matches over a console.
package game

// State represents where a single game is in its lifecycle.
type State int

const (
	// StateAwaitingMove - waiting for the current player's move
	StateAwaitingMove State = iota
	// StateMoveApplied - a disc was placed and the result is being evaluated
	StateMoveApplied
	// StateWon - the last move completed a run of four
	StateWon
	// StateDraw - the board filled up without a winner
	StateDraw
	// StateEnded - a player typed the end command instead of a move
	StateEnded
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAwaitingMove:
		return "awaiting_move"
	case StateMoveApplied:
		return "move_applied"
	case StateWon:
		return "won"
	case StateDraw:
		return "draw"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves can be applied.
func (s State) Terminal() bool {
	return s == StateWon || s == StateDraw || s == StateEnded
}
