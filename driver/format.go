package driver

import (
	"fmt"
	"io"

	"github.com/takoeight0821/inzertion/ast"
	"github.com/takoeight0821/inzertion/token"
	"gopkg.in/yaml.v3"
)

// Format selects how tokens and statements are printed.
type Format string

const (
	// SExpr prints one token or statement per line, the way String renders it.
	SExpr Format = "sexpr"
	// YAML prints a YAML sequence; statements are expanded with ast.Dump.
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case SExpr, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %q or %q)", s, SExpr, YAML)
	}
}

type yamlToken struct {
	Kind    string `yaml:"kind"`
	Lexeme  string `yaml:"lexeme"`
	Line    int    `yaml:"line"`
	Literal any    `yaml:"literal,omitempty"`
}

func WriteTokens(w io.Writer, format Format, tokens []token.Token) error {
	if format == YAML {
		out := make([]yamlToken, len(tokens))
		for i, t := range tokens {
			out[i] = yamlToken{Kind: t.Kind.String(), Lexeme: t.Lexeme, Line: t.Line, Literal: t.Literal}
		}

		return encodeYAML(w, out)
	}

	for _, t := range tokens {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}

	return nil
}

func WriteProgram(w io.Writer, format Format, program []ast.Stmt) error {
	if format == YAML {
		out := make([]map[string]any, len(program))
		for i, stmt := range program {
			out[i] = ast.Dump(stmt)
		}

		return encodeYAML(w, out)
	}

	for _, stmt := range program {
		if _, err := fmt.Fprintln(w, stmt); err != nil {
			return err
		}
	}

	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
