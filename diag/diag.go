// Package diag collects the diagnostics reported while scanning and parsing.
package diag

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/takoeight0821/inzertion/token"
)

// Reporter is the sink the lexer and the parser report to.
type Reporter interface {
	// ErrorAtLine records a diagnostic that has no token, e.g. a lexical error.
	ErrorAtLine(line int, message string)
	// ErrorAt records a diagnostic at tok.
	ErrorAt(tok token.Token, message string)
}

// Diagnostic is a single reported problem. It implements error.
type Diagnostic struct {
	Line    int
	Where   string // lexeme of the offending token, empty for line-only diagnostics
	AtEnd   bool   // reported at the EOF token
	Message string
}

func (d Diagnostic) Error() string {
	switch {
	case d.AtEnd:
		return fmt.Sprintf("at end: %s", d.Message)
	case d.Where != "":
		return fmt.Sprintf("at %d: `%s`, %s", d.Line, d.Where, d.Message)
	default:
		return fmt.Sprintf("at %d: %s", d.Line, d.Message)
	}
}

// Log records diagnostics in order and optionally echoes each one to a writer.
// A Log is not safe for concurrent use.
type Log struct {
	diagnostics []Diagnostic
	out         io.Writer
	style       lipgloss.Style
	color       bool
}

var _ Reporter = &Log{}

// NewLog returns a Log that writes every diagnostic to out as it arrives.
// out may be nil.
func NewLog(out io.Writer, color bool) *Log {
	return &Log{
		out:   out,
		style: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		color: color,
	}
}

// AtLine builds a line-only diagnostic.
func AtLine(line int, message string) Diagnostic {
	return Diagnostic{Line: line, Message: message}
}

// At builds a diagnostic positioned at tok.
func At(tok token.Token, message string) Diagnostic {
	if tok.Kind == token.EOF {
		return Diagnostic{Line: tok.Line, AtEnd: true, Message: message}
	}
	return Diagnostic{Line: tok.Line, Where: tok.Lexeme, Message: message}
}

func (l *Log) ErrorAtLine(line int, message string) {
	l.add(AtLine(line, message))
}

func (l *Log) ErrorAt(tok token.Token, message string) {
	l.add(At(tok, message))
}

func (l *Log) add(d Diagnostic) {
	l.diagnostics = append(l.diagnostics, d)
	if l.out == nil {
		return
	}

	msg := "Error: " + d.Error()
	if l.color {
		msg = l.style.Render(msg)
	}
	fmt.Fprintln(l.out, msg)
}

// HadError reports whether anything has been recorded since the last Reset.
func (l *Log) HadError() bool {
	return len(l.diagnostics) > 0
}

// Diagnostics returns the recorded diagnostics in report order.
func (l *Log) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), l.diagnostics...)
}

// Err joins every recorded diagnostic, or returns nil.
func (l *Log) Err() error {
	if len(l.diagnostics) == 0 {
		return nil
	}

	errs := make([]error, len(l.diagnostics))
	for i, d := range l.diagnostics {
		errs[i] = d
	}

	return errors.Join(errs...)
}

// Reset forgets all diagnostics. The REPL calls it between lines.
func (l *Log) Reset() {
	l.diagnostics = nil
}
