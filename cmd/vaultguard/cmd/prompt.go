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

// PasswordEnv lets scripts supply the master password without a prompt.
const PasswordEnv = "VAULTGUARD_PASSWORD"

// prompter reads answers from a line reader, switching to no-echo terminal
// input for secrets when fd is a terminal.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // -1 when input is not a terminal
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

// Line prints prompt and returns the next input line, trimmed.
func (p *prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Secret prints prompt and reads a line without echo when possible.
func (p *prompter) Secret(prompt string) (string, error) {
	if p.fd < 0 {
		return p.Line(prompt)
	}
	fmt.Fprint(p.out, prompt)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// SecretConfirm prompts for a secret twice and ensures both match.
func (p *prompter) SecretConfirm(prompt string) (string, error) {
	first, err := p.Secret(prompt)
	if err != nil {
		return "", err
	}
	second, err := p.Secret("Confirm " + strings.ToLower(prompt[:1]) + prompt[1:])
	if err != nil {
		return "", err
	}
	if first != second {
		return "", fmt.Errorf("passwords do not match")
	}
	return first, nil
}

// masterPassword returns PasswordEnv if set, otherwise prompts.
func masterPassword(p *prompter) (string, error) {
	if pw := os.Getenv(PasswordEnv); pw != "" {
		return pw, nil
	}
	return p.Secret("Master password: ")
}

// newMasterPassword returns PasswordEnv if set, otherwise prompts twice.
func newMasterPassword(p *prompter) (string, error) {
	if pw := os.Getenv(PasswordEnv); pw != "" {
		return pw, nil
	}
	return p.SecretConfirm("Master password: ")
}

// resolveUser returns the configured username, prompting if none is set.
func resolveUser(p *prompter) (string, error) {
	if app.cfg.User != "" {
		return app.cfg.User, nil
	}
	return p.Line("Username: ")
}
