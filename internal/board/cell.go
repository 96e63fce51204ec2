// Package board provides the Connect Four grid, gravity placement and win detection.
package board

// Cell represents the content of a single grid position.
type Cell int

const (
	// Empty is an unoccupied position.
	Empty Cell = iota
	// First is a disc of the first seat.
	First
	// Second is a disc of the second seat.
	Second
)

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "unknown"
	}
}

// Coord is a 0-based grid position. Row 0 is the top row.
type Coord struct {
	Row int
	Col int
}

// Add returns the coordinate moved by step.
func (c Coord) Add(step Coord) Coord {
	return Coord{Row: c.Row + step.Row, Col: c.Col + step.Col}
}

// Error is a constant board error.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrColumnFull is returned when a column has no empty cell left.
	ErrColumnFull Error = "column is full"
	// ErrColumnOutOfRange is returned for a column outside the grid.
	ErrColumnOutOfRange Error = "column is out of range"
)
