package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/connectfour/internal/board"
)

// Settings holds everything chosen during setup.
type Settings struct {
	Players [2]Player
	Rows    int
	Cols    int
	// Games is how many games the match lasts unless a player ends it early.
	Games int
}

// Validate checks that both seats are named and filled in order, the board size
// is within bounds and at least one game is requested.
func (s Settings) Validate() error {
	var errs []error
	for i, p := range s.Players {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Errorf("player %d has no name", i+1))
		}
		if p.Seat != Seat(i) {
			errs = append(errs, fmt.Errorf("player %d sits in seat %v", i+1, p.Seat))
		}
	}
	if s.Rows < board.MinSize || s.Rows > board.MaxSize {
		errs = append(errs, fmt.Errorf("rows %d outside %d..%d", s.Rows, board.MinSize, board.MaxSize))
	}
	if s.Cols < board.MinSize || s.Cols > board.MaxSize {
		errs = append(errs, fmt.Errorf("cols %d outside %d..%d", s.Cols, board.MinSize, board.MaxSize))
	}
	if s.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", s.Games))
	}
	return errors.Join(errs...)
}
