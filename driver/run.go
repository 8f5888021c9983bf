package driver

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/inzertion/ast"
	"github.com/takoeight0821/inzertion/diag"
	"github.com/takoeight0821/inzertion/lexer"
	"github.com/takoeight0821/inzertion/parser"
	"github.com/takoeight0821/inzertion/token"
)

// Runner scans and parses sources, recording every diagnostic in its Log.
type Runner struct {
	log *diag.Log
}

func NewRunner(log *diag.Log) *Runner {
	return &Runner{log: log}
}

// Log returns the diagnostics recorded so far.
func (r *Runner) Log() *diag.Log {
	return r.log
}

// Lex scans the source code.
// The tokens are always returned; err joins the lexical diagnostics of this call.
func (r *Runner) Lex(source string) ([]token.Token, error) {
	before := len(r.log.Diagnostics())
	tokens := lexer.Lex(source, r.log)
	if err := r.errorsSince(before); err != nil {
		return tokens, fmt.Errorf("lex:\n%w", err)
	}

	return tokens, nil
}

// RunSource scans and parses the source code.
// A lexical error does not stop parsing, and the recovered statements are returned
// together with an error joining every diagnostic of this call.
func (r *Runner) RunSource(source string) ([]ast.Stmt, error) {
	before := len(r.log.Diagnostics())
	tokens := lexer.Lex(source, r.log)
	program := parser.New(tokens, r.log).Parse()
	if err := r.errorsSince(before); err != nil {
		return program, fmt.Errorf("parse:\n%w", err)
	}

	return program, nil
}

func (r *Runner) errorsSince(n int) error {
	diagnostics := r.log.Diagnostics()[n:]
	if len(diagnostics) == 0 {
		return nil
	}

	errs := make([]error, len(diagnostics))
	for i, d := range diagnostics {
		errs[i] = d
	}

	return errors.Join(errs...)
}
