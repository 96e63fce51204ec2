package game

import (
	"fmt"

	"github.com/samdwyer/connectfour/internal/board"
)

const (
	winPoints  = 2
	drawPoints = 1
)

// Match runs a sequence of games between the same two players and keeps score.
type Match struct {
	settings Settings
	scores   [2]int
	number   int // number of the latest game started
	played   int // games that finished with a win or a draw
	ended    bool
}

// NewMatch creates a match after checking settings.
func NewMatch(settings Settings) (*Match, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match settings: %w", err)
	}
	return &Match{settings: settings}, nil
}

// Settings returns the match configuration.
func (m *Match) Settings() Settings {
	return m.settings
}

// NextSession starts the next game on a fresh board.
// It returns false once every game was played or the match was ended.
func (m *Match) NextSession() (*Session, bool) {
	if m.ended || m.number >= m.settings.Games {
		return nil, false
	}
	m.number++
	b := board.New(m.settings.Rows, m.settings.Cols)
	return NewSession(m.number, m.settings.Players, b), true
}

// Record applies a finished game to the score. An ended game stops the match.
func (m *Match) Record(o Outcome) {
	switch o.State {
	case StateWon:
		m.scores[o.Winner] += winPoints
		m.played++
	case StateDraw:
		m.scores[SeatA] += drawPoints
		m.scores[SeatB] += drawPoints
		m.played++
	case StateEnded:
		m.ended = true
	}
}

// Score returns the points of one seat.
func (m *Match) Score(seat Seat) int {
	return m.scores[seat]
}

// Scores returns the points of both seats.
func (m *Match) Scores() [2]int {
	return m.scores
}

// Number returns the number of the latest game started, 0 before the first.
func (m *Match) Number() int {
	return m.number
}

// Played returns how many games finished with a result.
func (m *Match) Played() int {
	return m.played
}

// Ended reports whether a player stopped the match early.
func (m *Match) Ended() bool {
	return m.ended
}

// Over reports whether no more games will be played.
func (m *Match) Over() bool {
	return m.ended || m.played >= m.settings.Games
}
