package ui

import (
	"strconv"
	"strings"

	"github.com/samdwyer/connectfour/internal/board"
	"github.com/samdwyer/connectfour/internal/gamedata"
)

// Renderer turns a board into text using a theme's glyphs.
type Renderer struct {
	theme gamedata.Theme
}

// NewRenderer creates a renderer for the given theme.
func NewRenderer(theme gamedata.Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Render draws the column header, one line per row and the bottom border.
// Lines are separated by newlines with no trailing newline.
func (r *Renderer) Render(b *board.Board) string {
	var sb strings.Builder
	border := r.theme.Border

	// Header: column numbers under each cell
	for c := 1; c <= b.Cols(); c++ {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte('\n')

	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			sb.WriteString(border.Vertical)
			sb.WriteRune(r.theme.CellRune(b.At(board.Coord{Row: row, Col: col})))
		}
		sb.WriteString(border.Vertical)
		sb.WriteByte('\n')
	}

	sb.WriteString(border.BottomLeft)
	for col := 0; col < b.Cols(); col++ {
		if col > 0 {
			sb.WriteString(border.Joiner)
		}
		sb.WriteString(border.Fill)
	}
	sb.WriteString(border.BottomRight)

	return sb.String()
}
