// Package confirm provides interactive yes/no confirmation prompts.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks the operator a yes/no question.
type Prompter interface {
	Confirm(prompt string, defaultYes bool) (bool, error)
}

// Console implements Prompter on a terminal.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console prompter reading from stdin.
func NewConsole() *Console {
	return &Console{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// NewConsoleWith creates a console prompter on explicit streams.
func NewConsoleWith(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Confirm prints the prompt with a [y/N] or [Y/n] marker and reads one
// line. An empty answer selects the default.
func (c *Console) Confirm(prompt string, defaultYes bool) (bool, error) {
	marker := "[y/N]"
	if defaultYes {
		marker = "[Y/n]"
	}
	fmt.Fprintf(c.out, "%s %s: ", prompt, marker)

	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return defaultYes, nil
	}
	return answer == "y" || answer == "yes", nil
}

// AssumeYes is a Prompter that approves everything, used for --yes runs.
type AssumeYes struct{}

// Confirm always returns true.
func (AssumeYes) Confirm(string, bool) (bool, error) { return true, nil }

// AssumeNo is a Prompter that declines everything, used for
// non-interactive minimal runs.
type AssumeNo struct{}

// Confirm always returns false.
func (AssumeNo) Confirm(string, bool) (bool, error) { return false, nil }
