// Package prompt reads and validates the generator's two inputs.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	countQuestion = "How many? "
	pathQuestion  = "Output file: "
)

// ParseCount parses a base-10, non-negative record count.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	return n, nil
}

// ParsePath validates an output file path.
func ParsePath(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyPath
	}

	return s, nil
}

// Prompter asks questions on out and reads one line answers from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Count asks for the number of records.
func (p *Prompter) Count() (int, error) {
	line, err := p.ask(countQuestion)
	if err != nil {
		return 0, err
	}

	return ParseCount(line)
}

// Path asks for the output file.
func (p *Prompter) Path() (string, error) {
	line, err := p.ask(pathQuestion)
	if err != nil {
		return "", err
	}

	return ParsePath(line)
}

func (p *Prompter) ask(question string) (string, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		// a last line without a newline is still an answer
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}

	return line, nil
}
