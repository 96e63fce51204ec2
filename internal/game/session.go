package game

import (
	"errors"

	"github.com/samdwyer/connectfour/internal/board"
)

// ErrSessionOver is returned when a move is applied to a finished game.
var ErrSessionOver = errors.New("game is over")

// Outcome is how a game finished.
type Outcome struct {
	State  State // StateWon, StateDraw or StateEnded
	Winner Seat  // Only meaningful for StateWon
}

// Session holds all state for one game.
type Session struct {
	number  int
	players [2]Player
	board   *board.Board
	current Seat
	state   State
	winner  Seat
}

// FirstMover returns who opens game number n (1-based): seat A on odd games,
// seat B on even games, whoever won before.
func FirstMover(n int) Seat {
	if n%2 == 0 {
		return SeatB
	}
	return SeatA
}

// NewSession starts game number n on an empty board.
func NewSession(n int, players [2]Player, b *board.Board) *Session {
	return &Session{
		number:  n,
		players: players,
		board:   b,
		current: FirstMover(n),
		state:   StateAwaitingMove,
	}
}

// Number returns the 1-based game number.
func (s *Session) Number() int {
	return s.number
}

// Board returns the board being played on.
func (s *Session) Board() *board.Board {
	return s.board
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Current returns the player whose turn it is.
func (s *Session) Current() Player {
	return s.players[s.current]
}

// Moves returns how many discs were placed in this game.
func (s *Session) Moves() int {
	return s.board.Placed()
}

// Winner returns the winning player once the game is won.
func (s *Session) Winner() (Player, bool) {
	if s.state != StateWon {
		return Player{}, false
	}
	return s.players[s.winner], true
}

// Outcome returns the result of a finished game.
// It reports StateAwaitingMove while the game is still running.
func (s *Session) Outcome() Outcome {
	return Outcome{State: s.state, Winner: s.winner}
}

// Apply drops the current player's disc into the 1-based column.
// On a win or a full board the game finishes; otherwise the turn passes.
// A failed placement leaves the session unchanged.
func (s *Session) Apply(column int) (board.Coord, error) {
	if s.state != StateAwaitingMove {
		return board.Coord{}, ErrSessionOver
	}

	at, err := s.board.Place(column-1, s.current.Disc())
	if err != nil {
		return board.Coord{}, err
	}
	s.state = StateMoveApplied

	switch {
	case s.board.CheckWin(at):
		s.state = StateWon
		s.winner = s.current
	case s.board.IsFull():
		s.state = StateDraw
	default:
		s.current = s.current.Other()
		s.state = StateAwaitingMove
	}
	return at, nil
}

// End stops the game because a player asked to end the match.
func (s *Session) End() {
	if s.state.Terminal() {
		return
	}
	s.state = StateEnded
}
