package input

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samdwyer/connectfour/internal/board"
)

// EndCommand ends the match when typed at a move prompt.
const EndCommand = "end"

var dimensionsPattern = regexp.MustCompile(`^(\d+)\s*[xX]\s*(\d+)$`)

// Move is a validated move: either the end command or a 1-based column.
type Move struct {
	End    bool
	Column int
}

// ParseMove classifies a move line against the current board.
func ParseMove(raw string, b *board.Board) (Move, error) {
	if raw == EndCommand {
		return Move{End: true}, nil
	}
	if !isDigits(raw) {
		return Move{}, newError(MalformedColumn, "Incorrect column number")
	}

	col, err := strconv.Atoi(raw)
	if err != nil || col < 1 || col > b.Cols() {
		// digit strings too long for int are out of range as well
		return Move{}, newError(ColumnOutOfRange,
			fmt.Sprintf("The column number is out of range (1 - %d)", b.Cols()))
	}
	if _, ok := b.NextFreeRow(col - 1); !ok {
		return Move{}, newError(ColumnFull, fmt.Sprintf("Column %d is full", col))
	}

	return Move{Column: col}, nil
}

// Dimensions holds a validated board size.
type Dimensions struct {
	Rows int
	Cols int
}

// ParseDimensions classifies a board size line. An empty line selects the default size.
func ParseDimensions(raw string) (Dimensions, error) {
	if raw == "" {
		return Dimensions{Rows: board.DefaultRows, Cols: board.DefaultCols}, nil
	}

	groups := dimensionsPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if groups == nil {
		return Dimensions{}, newError(MalformedDimensions, "Invalid input")
	}

	rows, rowsErr := strconv.Atoi(groups[1])
	cols, colsErr := strconv.Atoi(groups[2])
	if rowsErr != nil || !inSizeRange(rows) {
		return Dimensions{}, newError(MalformedDimensions,
			fmt.Sprintf("Board rows should be from %d to %d", board.MinSize, board.MaxSize))
	}
	if colsErr != nil || !inSizeRange(cols) {
		return Dimensions{}, newError(MalformedDimensions,
			fmt.Sprintf("Board columns should be from %d to %d", board.MinSize, board.MaxSize))
	}

	return Dimensions{Rows: rows, Cols: cols}, nil
}

// ParseGameCount classifies the number of games. An empty line means a single game.
func ParseGameCount(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	if !isDigits(raw) {
		return 0, newError(MalformedGameCount, "Invalid input")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, newError(MalformedGameCount, "Invalid input")
	}
	return n, nil
}

// ParseName classifies a player name. Surrounding whitespace is dropped.
func ParseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", newError(MalformedName, "Invalid input")
	}
	return name, nil
}

// isDigits reports whether s is a non-empty run of ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func inSizeRange(n int) bool {
	return n >= board.MinSize && n <= board.MaxSize
}
