// Package prompt reads interactive input from the controlling terminal,
// with echo suppressed for passwords. Both entry points refuse to run
// when stdin is not a terminal: a sniping run launched from cron or a
// pipe has no business half-reading its own input stream.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("cannot prompt, stdin is not a terminal")

// Password prints label and reads a line with terminal echo disabled.
// The returned bytes should be moved into a credential.Guard and the
// caller's interest in them ended there.
func Password(label string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	fmt.Fprint(os.Stderr, label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	return b, nil
}

// Line prints label and reads one echoed line, trimmed of the newline.
func Line(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	fmt.Fprint(os.Stderr, label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
