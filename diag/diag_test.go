package diag_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/inzertion/diag"
	"github.com/takoeight0821/inzertion/token"
)

func TestDiagnosticError(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		diagnostic diag.Diagnostic
		expected   string
	}{
		{diag.AtLine(3, "unterminated string"), "at 3: unterminated string"},
		{diag.At(token.Token{Kind: token.SEMICOLON, Lexeme: ";", Line: 2}, "expected expression"), "at 2: `;`, expected expression"},
		{diag.At(token.Token{Kind: token.EOF, Lexeme: "", Line: 9}, "expected `;` after value"), "at end: expected `;` after value"},
	}
	for _, testcase := range testcases {
		if diff := cmp.Diff(testcase.expected, testcase.diagnostic.Error()); diff != "" {
			t.Errorf("Error mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestLog(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	log := diag.NewLog(&out, false)
	if log.HadError() || log.Err() != nil {
		t.Fatal("new log has errors")
	}

	log.ErrorAtLine(1, "unexpected character: @")
	log.ErrorAt(token.Token{Kind: token.IDENT, Lexeme: "x", Line: 2}, "expected `;` after expression")

	if !log.HadError() {
		t.Error("HadError() = false after two reports")
	}
	expected := "Error: at 1: unexpected character: @\nError: at 2: `x`, expected `;` after expression\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	var d diag.Diagnostic
	if !errors.As(log.Err(), &d) || d.Line != 1 {
		t.Errorf("Err() does not wrap the first diagnostic: %v", log.Err())
	}

	// Diagnostics returns a copy
	ds := log.Diagnostics()
	ds[0].Message = "changed"
	if log.Diagnostics()[0].Message != "unexpected character: @" {
		t.Error("Diagnostics() shares its backing array")
	}

	log.Reset()
	if log.HadError() || len(log.Diagnostics()) != 0 || log.Err() != nil {
		t.Error("Reset did not clear the log")
	}
}

func TestLogColor(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	log := diag.NewLog(&out, true)
	log.ErrorAtLine(1, "boom")
	if !strings.Contains(out.String(), "at 1: boom") {
		t.Errorf("colored output %q lacks the message", out.String())
	}
}

func TestNilWriter(t *testing.T) {
	t.Parallel()

	log := diag.NewLog(nil, true)
	log.ErrorAtLine(1, "quiet")
	if len(log.Diagnostics()) != 1 {
		t.Error("diagnostic was not recorded")
	}
}
