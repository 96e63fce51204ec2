package input

import (
	"errors"
	"fmt"
	"io"
)

// Prompter is the console surface needed to ask a question and read the answer.
type Prompter interface {
	Println(a ...any)
	ReadLine() (string, error)
}

// ReadUntilValid prints prompt, reads a line and classifies it, repeating until
// classify accepts the line. Labeled input errors are shown to the player and the
// prompt is asked again; any other classify error is returned. End of input is
// reported as ErrEndOfInput.
func ReadUntilValid[T any](p Prompter, prompt string, classify func(string) (T, error)) (T, error) {
	var zero T
	for {
		p.Println(prompt)

		line, err := p.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return zero, ErrEndOfInput
			}
			return zero, fmt.Errorf("read line: %w", err)
		}

		value, err := classify(line)
		if err == nil {
			return value, nil
		}

		var inputErr *Error
		if !errors.As(err, &inputErr) {
			return zero, err
		}
		p.Println(inputErr.Message)
	}
}
