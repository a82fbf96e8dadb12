package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// autoKey hands the remaining decisions of a match to the simulator
const autoKey = "a"

// prompter reads answers line by line and writes prompts
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// line reads one trimmed line, returning io.EOF once input is exhausted
func (p *prompter) line(prompt string) (string, error) {
	p.printf("%s", prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// text asks until a non-empty answer is given
func (p *prompter) text(prompt string) (string, error) {
	for {
		answer, err := p.line(prompt)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		p.printf("Please enter a value.\n")
	}
}

// confirm asks a yes/no question
func (p *prompter) confirm(prompt string) (bool, error) {
	for {
		answer, err := p.line(prompt + " (y/n) ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.printf("Please answer y or n.\n")
	}
}

// choose lists options numbered from 1 and returns the zero-based pick,
// asking again until the answer is in range. With auto set, the auto key
// returns errAutoPlay.
func (p *prompter) choose(title string, options []string, auto bool) (int, error) {
	for {
		p.printf("%s\n", title)
		for i, o := range options {
			p.printf("  %d. %s\n", i+1, o)
		}
		if auto {
			p.printf("  %s. Simulate the rest of the match\n", autoKey)
		}

		answer, err := p.line("> ")
		if err != nil {
			return 0, err
		}
		if auto && strings.EqualFold(answer, autoKey) {
			return 0, errAutoPlay
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		p.printf("Please enter a number between 1 and %d.\n", len(options))
	}
}

// number asks for an integer within [lo, hi]
func (p *prompter) number(prompt string, lo, hi int) (int, error) {
	for {
		answer, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= lo && n <= hi {
			return n, nil
		}
		p.printf("Please enter a number between %d and %d.\n", lo, hi)
	}
}
