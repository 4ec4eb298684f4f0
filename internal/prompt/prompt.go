// Package prompt asks the operator questions. Business logic depends on the
// Prompter interface so it can be driven by a script in tests.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the operator for input.
type Prompter interface {
	// Ask shows question and returns the answer without its line ending.
	Ask(question string) (string, error)
	// Confirm shows question and reports whether the answer was "y".
	Confirm(question string) (bool, error)
}

// Console reads answers line by line from an input stream.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console reading from in and writing questions to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Ask implements Prompter. It returns io.EOF once input is exhausted.
func (c *Console) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(c.out, question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

// Confirm implements Prompter.
func (c *Console) Confirm(question string) (bool, error) {
	answer, err := c.Ask(question)
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// IsYes reports whether answer is exactly "y" or "Y".
func IsYes(answer string) bool {
	return answer == "y" || answer == "Y"
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
