package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/inzertion/ast"
	"github.com/takoeight0821/inzertion/token"
)

func tok(kind token.Kind, lexeme string, line int) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: line, Literal: nil}
}

func num(v float64, line int) *ast.Literal {
	return &ast.Literal{Token: token.Token{Kind: token.NUMBER, Lexeme: ast.FormatValue(v), Line: line, Literal: v}, Value: v}
}

func TestOptional(t *testing.T) {
	t.Parallel()

	var zero ast.Optional[int]
	if zero.IsPresent() {
		t.Error("zero Optional is present")
	}
	if _, ok := ast.None[string]().Get(); ok {
		t.Error("None is present")
	}
	v, ok := ast.Some(42).Get()
	if !ok || v != 42 {
		t.Errorf("Some(42).Get() = %v, %v", v, ok)
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		value    any
		expected string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{1.0, "1"},
		{2.5, "2.5"},
		{"a\"b", `"a\"b"`},
	}
	for _, testcase := range testcases {
		if diff := cmp.Diff(testcase.expected, ast.FormatValue(testcase.value)); diff != "" {
			t.Errorf("FormatValue(%v) mismatch (-want +got):\n%s", testcase.value, diff)
		}
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	x := tok(token.IDENT, "x", 1)
	testcases := []struct {
		node     ast.Node
		expected string
	}{
		{&ast.Var{Name: x, Init: ast.None[ast.Expr]()}, "(def x)"},
		{&ast.Var{Name: x, Init: ast.Some[ast.Expr](num(1, 1))}, "(def x (literal 1))"},
		{&ast.Return{Keyword: tok(token.RETURN, "return", 1), Value: ast.None[ast.Expr]()}, "(return)"},
		{&ast.Return{Keyword: tok(token.BREAK, "break", 1), Value: ast.None[ast.Expr]()}, "(break)"},
		{&ast.Function{Name: tok(token.IDENT, "f", 1), Params: nil, Body: nil}, "(function f ())"},
		{
			&ast.Function{
				Name:   tok(token.IDENT, "f", 1),
				Params: []token.Token{tok(token.IDENT, "a", 1), tok(token.IDENT, "b", 1)},
				Body:   []ast.Stmt{&ast.Print{Keyword: tok(token.PRINT, "print", 1), Expr: &ast.Variable{Name: tok(token.IDENT, "a", 1)}}},
			},
			"(function f (a b) (print (var a)))",
		},
		{&ast.Call{Callee: &ast.Variable{Name: tok(token.IDENT, "f", 1)}, Paren: tok(token.RIGHTPAREN, ")", 1), Args: nil}, "(call (var f))"},
		{&ast.Block{Brace: tok(token.LEFTBRACE, "{", 1), Stmts: nil}, "(block)"},
		{&ast.Literal{Token: tok(token.STRING, `"hi"`, 1), Value: "hi"}, `(literal "hi")`},
		{&ast.Literal{Token: tok(token.NULL, "null", 1), Value: nil}, "(literal null)"},
	}
	for _, testcase := range testcases {
		if diff := cmp.Diff(testcase.expected, testcase.node.String()); diff != "" {
			t.Errorf("String mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestChildren(t *testing.T) {
	t.Parallel()

	cond := &ast.Variable{Name: tok(token.IDENT, "c", 1)}
	then := &ast.Print{Keyword: tok(token.PRINT, "print", 2), Expr: num(1, 2)}
	els := &ast.Print{Keyword: tok(token.PRINT, "print", 3), Expr: num(2, 3)}

	withElse := &ast.If{Keyword: tok(token.IF, "if", 1), Cond: cond, Then: then, Else: ast.Some[ast.Stmt](els)}
	if n := len(ast.Children(withElse)); n != 3 {
		t.Errorf("if with else has %d children, want 3", n)
	}
	withoutElse := &ast.If{Keyword: tok(token.IF, "if", 1), Cond: cond, Then: then, Else: ast.None[ast.Stmt]()}
	if n := len(ast.Children(withoutElse)); n != 2 {
		t.Errorf("if without else has %d children, want 2", n)
	}

	// if, var c, print, literal 1, print, literal 2
	universe := ast.Universe(withElse)
	lines := make([]int, len(universe))
	for i, n := range universe {
		lines[i] = n.Base().Line
	}
	if diff := cmp.Diff([]int{1, 1, 2, 2, 3, 3}, lines); diff != "" {
		t.Errorf("Universe lines mismatch (-want +got):\n%s", diff)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	stmt := &ast.Var{
		Name: tok(token.IDENT, "x", 4),
		Init: ast.Some[ast.Expr](&ast.Binary{Left: num(1, 4), Op: tok(token.PLUS, "+", 4), Right: num(2, 5)}),
	}
	expected := map[string]any{
		"kind": "var",
		"line": 4,
		"name": "x",
		"init": map[string]any{
			"kind":  "binary",
			"line":  4,
			"op":    "+",
			"left":  map[string]any{"kind": "literal", "line": 4, "value": 1.0},
			"right": map[string]any{"kind": "literal", "line": 5, "value": 2.0},
		},
	}
	if diff := cmp.Diff(expected, ast.Dump(stmt)); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}

	fn := &ast.Function{
		Name:   tok(token.IDENT, "f", 1),
		Params: []token.Token{tok(token.IDENT, "a", 1)},
		Body:   []ast.Stmt{&ast.Return{Keyword: tok(token.BREAK, "break", 2), Value: ast.None[ast.Expr]()}},
	}
	expected = map[string]any{
		"kind":   "function",
		"line":   1,
		"name":   "f",
		"params": []string{"a"},
		"body":   []map[string]any{{"kind": "break", "line": 2}},
	}
	if diff := cmp.Diff(expected, ast.Dump(fn)); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
}
