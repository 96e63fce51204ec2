package game

import "github.com/samdwyer/connectfour/internal/board"

// Seat is a fixed player slot. Seat A always plays the first disc kind.
type Seat int

const (
	// SeatA - the first player named during setup; opens odd-numbered games
	SeatA Seat = iota
	// SeatB - the second player named during setup; opens even-numbered games
	SeatB
)

// String returns the seat letter.
func (s Seat) String() string {
	switch s {
	case SeatA:
		return "A"
	case SeatB:
		return "B"
	default:
		return "?"
	}
}

// Other returns the opposing seat.
func (s Seat) Other() Seat {
	if s == SeatA {
		return SeatB
	}
	return SeatA
}

// Disc returns the disc kind owned by the seat for the whole match.
func (s Seat) Disc() board.Cell {
	if s == SeatA {
		return board.First
	}
	return board.Second
}

// Player is a named participant sitting in a seat.
type Player struct {
	Name string
	Seat Seat
}

// NewPlayers seats the first name in SeatA and the second in SeatB.
func NewPlayers(first, second string) [2]Player {
	return [2]Player{
		{Name: first, Seat: SeatA},
		{Name: second, Seat: SeatB},
	}
}
