package ast

import (
	"fmt"

	"github.com/takoeight0821/inzertion/token"
)

// Dump converts n into nested maps and slices, ready for a YAML or JSON encoder.
// Every map carries the node `kind` and its `line`.
func Dump(n Node) map[string]any {
	m := map[string]any{"line": n.Base().Line}

	switch n := n.(type) {
	case *Assign:
		m["kind"] = "assign"
		m["name"] = n.Name.Lexeme
		m["value"] = Dump(n.Value)
	case *Binary:
		m["kind"] = "binary"
		m["op"] = n.Op.Lexeme
		m["left"] = Dump(n.Left)
		m["right"] = Dump(n.Right)
	case *Logical:
		m["kind"] = "logical"
		m["op"] = n.Op.Lexeme
		m["left"] = Dump(n.Left)
		m["right"] = Dump(n.Right)
	case *Grouping:
		m["kind"] = "grouping"
		m["expr"] = Dump(n.Expr)
	case *Literal:
		m["kind"] = "literal"
		m["value"] = n.Value
	case *Unary:
		m["kind"] = "unary"
		m["op"] = n.Op.Lexeme
		m["right"] = Dump(n.Right)
	case *Variable:
		m["kind"] = "variable"
		m["name"] = n.Name.Lexeme
	case *Call:
		m["kind"] = "call"
		m["callee"] = Dump(n.Callee)
		m["args"] = dumpAll(n.Args)
	case *Block:
		m["kind"] = "block"
		m["stmts"] = dumpAll(n.Stmts)
	case *Expression:
		m["kind"] = "expression"
		m["expr"] = Dump(n.Expr)
	case *If:
		m["kind"] = "if"
		m["cond"] = Dump(n.Cond)
		m["then"] = Dump(n.Then)
		if els, ok := n.Else.Get(); ok {
			m["else"] = Dump(els)
		}
	case *Print:
		m["kind"] = "print"
		m["expr"] = Dump(n.Expr)
	case *Var:
		m["kind"] = "var"
		m["name"] = n.Name.Lexeme
		if value, ok := n.Init.Get(); ok {
			m["init"] = Dump(value)
		}
	case *While:
		m["kind"] = "while"
		m["cond"] = Dump(n.Cond)
		m["body"] = Dump(n.Body)
	case *Function:
		m["kind"] = "function"
		m["name"] = n.Name.Lexeme
		m["params"] = lexemes(n.Params)
		m["body"] = dumpAll(n.Body)
	case *Return:
		m["kind"] = n.Keyword.Lexeme
		if value, ok := n.Value.Get(); ok {
			m["value"] = Dump(value)
		}
	default:
		panic(fmt.Sprintf("ast.Dump: unexpected node %T", n))
	}

	return m
}

func dumpAll[T Node](nodes []T) []map[string]any {
	dumped := make([]map[string]any, len(nodes))
	for i, n := range nodes {
		dumped[i] = Dump(n)
	}
	return dumped
}

func lexemes(tokens []token.Token) []string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.Lexeme
	}
	return names
}
