// Package errors formats parse and evaluation errors with source context:
// a file:line:column header, the offending source line, and a caret
// pointing at the column. Both error taxonomies in this interpreter are
// fatal — there is no recovery, so there is no multi-error batching here
// (contrast the teacher's FormatErrors, which aggregates parser error
// lists; Iron's parser and evaluator both stop at the first error).
package errors

import (
	"fmt"
	"strings"
)

// Position identifies a location in source by 1-based line and column.
type Position struct {
	Line   int
	Column int
}

// CompilerError is a single fatal error with enough context to render a
// caret-annotated diagnostic.
type CompilerError struct {
	Pos     Position
	Message string
	Source  string
	File    string
}

// New creates a CompilerError.
func New(pos Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface with uncolored formatting.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error with a header, the source line, and a caret.
// When color is true, ANSI codes highlight the caret and message.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "line %d:%d: ", e.Pos.Line, e.Pos.Column)
	}
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		sb.WriteString("\n")
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+max(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
