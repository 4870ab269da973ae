package errors

import (
	"strings"
	"testing"
)

func TestErrorWithFile(t *testing.T) {
	e := New(Position{Line: 2, Column: 5}, "unexpected token", "(+ 1\n  2 3))", "main.irl")
	got := e.Error()
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	if lines[0] != "main.irl:2:5: unexpected token" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "2 3))") {
		t.Errorf("source line = %q, want it to contain the offending line", lines[1])
	}
	if strings.TrimSpace(lines[2]) != "^" || !strings.HasSuffix(lines[2], "^") {
		t.Errorf("caret line = %q, want a trailing ^", lines[2])
	}
}

func TestErrorWithoutFile(t *testing.T) {
	e := New(Position{Line: 1, Column: 1}, "boom", "", "")
	got := e.Error()
	want := "line 1:1: boom"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatColor(t *testing.T) {
	e := New(Position{Line: 1, Column: 1}, "boom", "x", "f.irl")
	got := e.Format(true)
	if got == e.Format(false) {
		t.Error("colored and uncolored formatting should differ")
	}
}

func TestSourceLineOutOfRange(t *testing.T) {
	e := New(Position{Line: 99, Column: 1}, "boom", "one\ntwo", "f.irl")
	got := e.Error()
	want := "f.irl:99:1: boom"
	if got != want {
		t.Errorf("got %q, want %q (no source line should be appended out of range)", got, want)
	}
}
