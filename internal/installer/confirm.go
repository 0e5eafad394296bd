package installer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(question string) (bool, error)

// Confirm calls f(question).
func (f ConfirmFunc) Confirm(question string) (bool, error) { return f(question) }

// LineConfirmer prints the question to Out and reads one line from In.
type LineConfirmer struct {
	out     io.Writer
	scanner *bufio.Scanner
}

// NewLineConfirmer returns a Confirmer reading answers from in.
func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{out: out, scanner: bufio.NewScanner(in)}
}

// Confirm blocks until a line is read. End of input counts as "no".
func (c *LineConfirmer) Confirm(question string) (bool, error) {
	fmt.Fprint(c.out, question)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return false, fmt.Errorf("reading answer: %w", err)
		}
		fmt.Fprintln(c.out)
		return false, nil
	}
	return IsAffirmative(c.scanner.Text()), nil
}

// IsAffirmative reports whether answer is "y" or "yes", ignoring case and
// surrounding whitespace.
func IsAffirmative(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "y" || a == "yes"
}
