package board

const (
	// MinSize and MaxSize bound both rows and columns.
	MinSize = 5
	MaxSize = 9

	// Default board dimensions.
	DefaultRows = 6
	DefaultCols = 7

	// WinLength is the number of contiguous discs that wins a game.
	WinLength = 4
)

// Board represents one game's grid.
type Board struct {
	rows   int
	cols   int
	cells  [][]Cell
	placed int
}

// New creates a board with every cell empty.
// Dimensions are validated by the caller.
func New(rows, cols int) *Board {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	return &Board{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Placed returns how many discs have been placed on this board.
func (b *Board) Placed() int {
	return b.placed
}

// At returns the cell at the given position, or Empty outside the grid.
func (b *Board) At(c Coord) Cell {
	if !inside(c, b.rows, b.cols) {
		return Empty
	}
	return b.cells[c.Row][c.Col]
}

// NextFreeRow returns the lowest empty row of col.
// ok is false when the column is full or outside the grid.
func (b *Board) NextFreeRow(col int) (row int, ok bool) {
	if col < 0 || col >= b.cols {
		return -1, false
	}
	for r := b.rows - 1; r >= 0; r-- {
		if b.cells[r][col] == Empty {
			return r, true
		}
	}
	return -1, false
}

// Place drops a disc into col and returns where it landed.
// A failed placement leaves the board untouched.
func (b *Board) Place(col int, cell Cell) (Coord, error) {
	if col < 0 || col >= b.cols {
		return Coord{}, ErrColumnOutOfRange
	}
	row, ok := b.NextFreeRow(col)
	if !ok {
		return Coord{}, ErrColumnFull
	}

	b.cells[row][col] = cell
	b.placed++
	return Coord{Row: row, Col: col}, nil
}

// IsFull returns true once every cell holds a disc.
func (b *Board) IsFull() bool {
	return b.placed == b.rows*b.cols
}

// CheckWin reports whether any axis through at holds WinLength contiguous discs of one kind.
func (b *Board) CheckWin(at Coord) bool {
	if !inside(at, b.rows, b.cols) {
		return false
	}
	for _, axis := range Axes {
		if b.hasRun(axis.Start(at, b.rows, b.cols), axis.Step()) {
			return true
		}
	}
	return false
}

// hasRun scans one whole line from start. The run counter compares each cell with
// its predecessor only and resets to 1 on an empty or different cell.
func (b *Board) hasRun(start, step Coord) bool {
	prev := Empty
	run := 0
	for pos := start; inside(pos, b.rows, b.cols); pos = pos.Add(step) {
		cell := b.cells[pos.Row][pos.Col]
		if cell != Empty && cell == prev {
			run++
		} else {
			run = 1
		}
		if cell != Empty && run >= WinLength {
			return true
		}
		prev = cell
	}
	return false
}
