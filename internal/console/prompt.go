package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Prompter reads operator answers line by line.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles palette
}

// NewPrompter wraps the operator's input and output streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, styles: newPalette(out)}
}

// ReadLine prints label and returns the answer without its line terminator.
// io.EOF is returned only when the input ended before any character was read.
func (p *Prompter) ReadLine(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadNumber prompts until the answer parses as a number accepted by check.
// A comma is accepted as decimal separator. check returns the message shown
// before asking again, or "" when the value is acceptable.
func (p *Prompter) ReadNumber(label, invalidMsg string, check func(float64) string) (float64, error) {
	for {
		answer, err := p.ReadLine(label)
		if err != nil {
			return 0, err
		}

		value, err := ParseNumber(answer)
		if err != nil {
			fmt.Fprintln(p.out, p.styles.fail(invalidMsg))
			continue
		}

		if msg := check(value); msg != "" {
			fmt.Fprintln(p.out, p.styles.fail(msg))
			continue
		}
		return value, nil
	}
}

// Confirm asks a yes/no question; only "y" or "s" (any case) count as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.ReadLine(question + " (y/n): ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "s":
		return true, nil
	default:
		return false, nil
	}
}

// ErrNotFinite rejects NaN and infinite answers.
var ErrNotFinite = errors.New("number must be finite")

// ParseNumber parses a decimal number written with either '.' or ','.
func ParseNumber(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrNotFinite
	}
	return value, nil
}
