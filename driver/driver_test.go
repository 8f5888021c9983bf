package driver_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/inzertion/diag"
	"github.com/takoeight0821/inzertion/driver"
	"gopkg.in/yaml.v3"
)

func TestRunSource(t *testing.T) {
	t.Parallel()

	runner := driver.NewRunner(diag.NewLog(nil, false))
	program, err := runner.RunSource("print 1;\nprint @;\nprint 2;")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.HasPrefix(err.Error(), "parse:\n") {
		t.Errorf("error %q lacks the stage prefix", err)
	}

	var d diag.Diagnostic
	if !errors.As(err, &d) || d.Message != "unexpected character: @" {
		t.Errorf("error does not wrap the lexical diagnostic: %v", err)
	}

	// `@` is dropped by the lexer, so `print ;` fails in the parser
	if n := len(runner.Log().Diagnostics()); n != 2 {
		t.Errorf("got %d diagnostics, want 2", n)
	}
	if len(program) != 2 {
		t.Errorf("got %d statements, want 2", len(program))
	}
}

func TestRunSourceOnlyReportsItsOwnErrors(t *testing.T) {
	t.Parallel()

	runner := driver.NewRunner(diag.NewLog(nil, false))
	if _, err := runner.RunSource("print ;"); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := runner.RunSource("print 1;"); err != nil {
		t.Errorf("clean source returned %v", err)
	}
}

func TestLex(t *testing.T) {
	t.Parallel()

	runner := driver.NewRunner(diag.NewLog(nil, false))
	tokens, err := runner.Lex(`print "open`)
	if err == nil || !strings.HasPrefix(err.Error(), "lex:\n") {
		t.Errorf("error = %v", err)
	}
	if len(tokens) != 2 {
		t.Errorf("got %d tokens, want 2", len(tokens))
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"sexpr", "yaml"} {
		f, err := driver.ParseFormat(s)
		if err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, %v", s, f, err)
		}
	}
	if _, err := driver.ParseFormat("json"); err == nil {
		t.Error("ParseFormat(json) succeeded")
	}
}

func TestWriteProgram(t *testing.T) {
	t.Parallel()

	program, err := driver.NewRunner(diag.NewLog(nil, false)).RunSource("print 1;\nvar x;")
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := driver.WriteProgram(&b, driver.SExpr, program); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("(print (literal 1))\n(def x)\n", b.String()); diff != "" {
		t.Errorf("sexpr mismatch (-want +got):\n%s", diff)
	}

	b.Reset()
	if err := driver.WriteProgram(&b, driver.YAML, program); err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := yaml.Unmarshal([]byte(b.String()), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, b.String())
	}
	expected := []map[string]any{
		{"kind": "print", "line": 1, "expr": map[string]any{"kind": "literal", "line": 1, "value": 1}},
		{"kind": "var", "line": 2, "name": "x"},
	}
	if diff := cmp.Diff(expected, decoded); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTokens(t *testing.T) {
	t.Parallel()

	tokens, err := driver.NewRunner(diag.NewLog(nil, false)).Lex(`x = "s";`)
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := driver.WriteTokens(&b, driver.SExpr, tokens[:1]); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("{IDENT, \"x\", 1, <nil>}\n", b.String()); diff != "" {
		t.Errorf("sexpr mismatch (-want +got):\n%s", diff)
	}

	b.Reset()
	if err := driver.WriteTokens(&b, driver.YAML, tokens); err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := yaml.Unmarshal([]byte(b.String()), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, b.String())
	}
	expected := []map[string]any{
		{"kind": "IDENT", "lexeme": "x", "line": 1},
		{"kind": "EQUAL", "lexeme": "=", "line": 1},
		{"kind": "STRING", "lexeme": `"s"`, "line": 1, "literal": "s"},
		{"kind": "SEMICOLON", "lexeme": ";", "line": 1},
		{"kind": "EOF", "lexeme": "", "line": 1},
	}
	if diff := cmp.Diff(expected, decoded); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}
}
