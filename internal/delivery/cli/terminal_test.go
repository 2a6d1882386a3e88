package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirmAnswers(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
	}
	for _, tc := range cases {
		term := NewTerminal(strings.NewReader(tc.input), &bytes.Buffer{})
		if got := term.Confirm("Sure?"); got != tc.want {
			t.Errorf("Confirm(%q) = %v, want %v", strings.TrimSpace(tc.input), got, tc.want)
		}
	}
}

func TestPromptDashCancels(t *testing.T) {
	term := NewTerminal(strings.NewReader("-\n"), &bytes.Buffer{})
	if _, ok := term.Prompt("Reason:"); ok {
		t.Errorf("dash did not cancel")
	}

	term = NewTerminal(strings.NewReader("too busy\n"), &bytes.Buffer{})
	value, ok := term.Prompt("Reason:")
	if !ok || value != "too busy" {
		t.Errorf("Prompt() = (%q, %v)", value, ok)
	}

	// A blank answer is a valid empty value, not a cancel.
	term = NewTerminal(strings.NewReader("\n"), &bytes.Buffer{})
	value, ok = term.Prompt("Reason:")
	if !ok || value != "" {
		t.Errorf("blank Prompt() = (%q, %v)", value, ok)
	}
}

func TestReadIntRetriesUntilNumeric(t *testing.T) {
	out := &bytes.Buffer{}
	term := NewTerminal(strings.NewReader("abc\n42\n"), out)

	n, ok := term.ReadInt("ID:")
	if !ok || n != 42 {
		t.Errorf("ReadInt() = (%d, %v)", n, ok)
	}
	if !strings.Contains(out.String(), "Please enter a number") {
		t.Errorf("no retry message printed")
	}
}

func TestReadIntEmptyGivesUp(t *testing.T) {
	term := NewTerminal(strings.NewReader("\n"), &bytes.Buffer{})
	if _, ok := term.ReadInt("ID:"); ok {
		t.Errorf("empty input did not give up")
	}
}

func TestNotifications(t *testing.T) {
	out := &bytes.Buffer{}
	term := NewTerminal(strings.NewReader(""), out)
	term.Success("Appointment booked successfully!")
	term.Error("Failed to load doctors")

	got := out.String()
	if !strings.Contains(got, "[ok] Appointment booked successfully!") {
		t.Errorf("success output = %q", got)
	}
	if !strings.Contains(got, "[error] Failed to load doctors") {
		t.Errorf("error output = %q", got)
	}
}
