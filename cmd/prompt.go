package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// prompter asks questions on a line oriented input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // fd is the terminal behind in, or -1.
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

// ask prints question and reads a trimmed answer. It returns io.EOF once the
// input is exhausted.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askAll asks every question in turn.
func (p *prompter) askAll(questions ...string) ([]string, error) {
	answers := make([]string, len(questions))
	for i, q := range questions {
		a, err := p.ask(q)
		if err != nil {
			return nil, err
		}
		answers[i] = a
	}
	return answers, nil
}

// password asks for a secret, it is not echoed on a terminal.
func (p *prompter) password(question string) (string, error) {
	if p.fd < 0 {
		return p.ask(question)
	}
	fmt.Fprint(p.out, question)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("could not read password: %w", err)
	}
	return string(b), nil
}
