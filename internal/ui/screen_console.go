package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const (
	// maxScrollback caps how many printed lines are kept for redraws.
	maxScrollback = 500
	inputPrefix   = "> "
)

// ScreenConsole runs the line protocol inside a full-screen terminal view.
// Printed lines scroll upwards above an input line at the bottom of the screen.
type ScreenConsole struct {
	screen  *Screen
	palette map[rune]tcell.Style
	lines   []string
	input   []rune
	// after receives the last screenful once the terminal is restored
	after  io.Writer
	closed bool
}

// NewScreenConsole opens the terminal screen. Runes found in palette are drawn in
// their color, everything else in the default style. On Close the lines that were
// on screen are written to after, usually stdout.
func NewScreenConsole(palette map[rune]tcell.Color, after io.Writer) (*ScreenConsole, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	return newScreenConsole(screen, palette, after), nil
}

func newScreenConsole(screen *Screen, palette map[rune]tcell.Color, after io.Writer) *ScreenConsole {
	styles := make(map[rune]tcell.Style, len(palette))
	for r, c := range palette {
		styles[r] = tcell.StyleDefault.Foreground(c).Bold(true)
	}
	if after == nil {
		after = io.Discard
	}
	return &ScreenConsole{
		screen:  screen,
		palette: styles,
		after:   after,
	}
}

// Println appends the message to the scrollback and redraws.
func (c *ScreenConsole) Println(a ...any) {
	text := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	c.appendLines(strings.Split(text, "\n")...)
	c.draw()
}

// ReadLine collects key presses until Enter. Esc, Ctrl-C and Ctrl-D end the input.
func (c *ScreenConsole) ReadLine() (string, error) {
	for {
		c.draw()

		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return "", io.EOF
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				line := string(c.input)
				c.input = c.input[:0]
				c.appendLines(inputPrefix + line)
				return line, nil
			case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlD:
				return "", io.EOF
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(c.input) > 0 {
					c.input = c.input[:len(c.input)-1]
				}
			case tcell.KeyRune:
				c.input = append(c.input, ev.Rune())
			}
		}
	}
}

// Close restores the terminal and reprints the last screenful on it, so the final
// board and score stay readable. Later calls do nothing.
func (c *ScreenConsole) Close() {
	if c.closed {
		return
	}
	c.closed = true

	_, height := c.screen.Size()
	tail := c.visibleLines(height)
	c.screen.Close()

	for _, line := range tail {
		fmt.Fprintln(c.after, line)
	}
}

func (c *ScreenConsole) appendLines(lines ...string) {
	c.lines = append(c.lines, lines...)
	if extra := len(c.lines) - maxScrollback; extra > 0 {
		c.lines = c.lines[extra:]
	}
}

// visibleLines returns the tail of the scrollback that fits above the input line.
func (c *ScreenConsole) visibleLines(height int) []string {
	room := height - 1
	if room <= 0 {
		return nil
	}
	if len(c.lines) <= room {
		return c.lines
	}
	return c.lines[len(c.lines)-room:]
}

func (c *ScreenConsole) styleFor(r rune) tcell.Style {
	if style, ok := c.palette[r]; ok {
		return style
	}
	return tcell.StyleDefault
}

func (c *ScreenConsole) draw() {
	c.screen.Clear()
	_, height := c.screen.Size()

	for y, line := range c.visibleLines(height) {
		c.screen.DrawText(0, y, line, c.styleFor)
	}
	if height > 0 {
		plain := func(rune) tcell.Style { return tcell.StyleDefault }
		c.screen.DrawText(0, height-1, inputPrefix+string(c.input), plain)
	}

	c.screen.Show()
}
