package board

// Axis is one of the four lines through a coordinate that can hold a winning run.
type Axis int

const (
	// Horizontal scans a row left to right.
	Horizontal Axis = iota
	// Vertical scans a column top to bottom.
	Vertical
	// MainDiagonal scans from the top-left end towards the bottom-right.
	MainDiagonal
	// AntiDiagonal scans from the top-right end towards the bottom-left.
	AntiDiagonal
)

// Axes lists every axis in scan order.
var Axes = [...]Axis{Horizontal, Vertical, MainDiagonal, AntiDiagonal}

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case MainDiagonal:
		return "main_diagonal"
	case AntiDiagonal:
		return "anti_diagonal"
	default:
		return "unknown"
	}
}

// Step returns the vector used to walk along the axis in scan direction.
func (a Axis) Step() Coord {
	switch a {
	case Horizontal:
		return Coord{Row: 0, Col: 1}
	case Vertical:
		return Coord{Row: 1, Col: 0}
	case MainDiagonal:
		return Coord{Row: 1, Col: 1}
	case AntiDiagonal:
		return Coord{Row: 1, Col: -1}
	default:
		return Coord{}
	}
}

// Start walks backwards from at until the next step would leave a rows x cols grid
// and returns the first coordinate of the line through at.
func (a Axis) Start(at Coord, rows, cols int) Coord {
	step := a.Step()
	if step == (Coord{}) {
		return at
	}
	back := Coord{Row: -step.Row, Col: -step.Col}
	for {
		next := at.Add(back)
		if !inside(next, rows, cols) {
			return at
		}
		at = next
	}
}

// inside reports whether c lies within a rows x cols grid.
func inside(c Coord, rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}
