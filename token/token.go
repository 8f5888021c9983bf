package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EOF Kind = iota

	// Single-character tokens.
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character tokens.
	BANG
	BANGEQUAL
	EQUAL
	EQUALEQUAL
	GREATER
	GREATEREQUAL
	LESS
	LESSEQUAL

	// Compound assignment.
	PLUSEQUAL
	MINUSEQUAL
	SLASHEQUAL
	STAREQUAL

	// Literals and identifiers.
	IDENT
	STRING
	NUMBER

	// Keywords.
	AND
	BREAK
	CLASS
	ELSE
	FALSE
	FUNCTION
	FOR
	IF
	NULL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	WHILE
	VAR

	// Reserved, not used by the grammar yet.
	DYNA
	DATA
	ARRAY
	STACK
	QUEUE
)

type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	Literal any
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d, %v}", t.Kind, t.Lexeme, t.Line, t.Literal)
}

func (t Token) Base() Token {
	return t
}

// Keywords maps reserved words to their kinds. It is read-only.
var Keywords = map[string]Kind{
	"and":      AND,
	"array":    ARRAY,
	"break":    BREAK,
	"class":    CLASS,
	"data":     DATA,
	"dyna":     DYNA,
	"else":     ELSE,
	"false":    FALSE,
	"for":      FOR,
	"function": FUNCTION,
	"if":       IF,
	"null":     NULL,
	"or":       OR,
	"print":    PRINT,
	"queue":    QUEUE,
	"return":   RETURN,
	"stack":    STACK,
	"super":    SUPER,
	"this":     THIS,
	"true":     TRUE,
	"var":      VAR,
	"while":    WHILE,
}

// LookupIdent returns the keyword kind for text, or IDENT.
func LookupIdent(text string) Kind {
	if k, ok := Keywords[text]; ok {
		return k
	}

	return IDENT
}

// StartsDeclaration reports whether a statement may begin at a token of kind k.
// The parser resynchronizes on these after a syntax error.
func (k Kind) StartsDeclaration() bool {
	//exhaustive:ignore
	switch k {
	case CLASS, FUNCTION, VAR, FOR, IF, WHILE, PRINT, RETURN:
		return true
	default:
		return false
	}
}
