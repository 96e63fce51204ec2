package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console is the line-oriented surface the game talks to.
type Console interface {
	// Println writes one message. Embedded newlines produce several lines.
	Println(a ...any)
	// ReadLine blocks until the player submits a line. It returns io.EOF once
	// no more input will arrive.
	ReadLine() (string, error)
}

// LineConsole reads lines from an io.Reader and writes to an io.Writer.
type LineConsole struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineConsole creates a console over plain streams, usually stdin and stdout.
func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	return &LineConsole{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Println writes a message followed by a newline.
func (c *LineConsole) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// ReadLine returns the next input line without its line terminator.
// Lines of any length are returned whole, so oversized input reaches the
// validators instead of failing the read.
func (c *LineConsole) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		// a final line without a terminator still counts
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
