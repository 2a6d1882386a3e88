// Package cli renders the portal screens on a line-oriented terminal. Each
// portal binary owns one menu loop; the screens hold all the state, so the
// loop only reads commands, calls screen methods, and prints the result.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Terminal wraps the portal's stdin/stdout. It is the screens' Notifier and
// Confirmer, so tests can run the same screens against a scripted reader.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (t *Terminal) Printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}

func (t *Terminal) Println(args ...interface{}) {
	fmt.Fprintln(t.out, args...)
}

func (t *Terminal) Success(message string) {
	fmt.Fprintf(t.out, "[ok] %s\n", message)
}

func (t *Terminal) Error(message string) {
	fmt.Fprintf(t.out, "[error] %s\n", message)
}

// ReadLine prints the label and returns the next trimmed input line. An EOF
// reads as an empty line.
func (t *Terminal) ReadLine(label string) string {
	fmt.Fprintf(t.out, "%s ", label)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// ReadInt keeps asking until the user enters a number or gives up with an
// empty line, in which case it returns ok=false.
func (t *Terminal) ReadInt(label string) (int, bool) {
	for {
		raw := t.ReadLine(label)
		if raw == "" {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			t.Error("Please enter a number")
			continue
		}
		return n, true
	}
}

func (t *Terminal) Confirm(prompt string) bool {
	answer := t.ReadLine(prompt + " [y/N]")
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

// Prompt asks for a free-text value. Entering "-" cancels, mirroring the
// dismiss button of the dialog this replaces.
func (t *Terminal) Prompt(prompt string) (string, bool) {
	answer := t.ReadLine(prompt)
	if answer == "-" {
		return "", false
	}
	return answer, true
}
