package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/takoeight0821/inzertion/token"
)

// AST

type Node interface {
	fmt.Stringer
	// Base returns the token the node is attributed to in the source.
	Base() token.Token
}

// Expr is one of *Assign, *Binary, *Logical, *Grouping, *Literal, *Unary, *Variable, *Call.
type Expr interface {
	Node
	exprNode()
}

// Stmt is one of *Block, *Expression, *If, *Print, *Var, *While, *Function, *Return.
type Stmt interface {
	Node
	stmtNode()
}

// Expressions

type Assign struct {
	Name  token.Token
	Value Expr
}

func (a Assign) String() string {
	return parenthesize("assign", lexeme(a.Name), a.Value).String()
}

func (a *Assign) Base() token.Token {
	return a.Name
}

func (*Assign) exprNode() {}

var _ Expr = &Assign{}

type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (b Binary) String() string {
	return parenthesize("binary", b.Left, lexeme(b.Op), b.Right).String()
}

func (b *Binary) Base() token.Token {
	return b.Op
}

func (*Binary) exprNode() {}

var _ Expr = &Binary{}

// Logical is a short-circuiting `and` / `or`.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (l Logical) String() string {
	return parenthesize("logical", l.Left, lexeme(l.Op), l.Right).String()
}

func (l *Logical) Base() token.Token {
	return l.Op
}

func (*Logical) exprNode() {}

var _ Expr = &Logical{}

type Grouping struct {
	Expr Expr
}

func (g Grouping) String() string {
	return parenthesize("grouping", g.Expr).String()
}

func (g *Grouping) Base() token.Token {
	return g.Expr.Base()
}

func (*Grouping) exprNode() {}

var _ Expr = &Grouping{}

// Literal holds nil, a bool, a float64 or a string.
type Literal struct {
	Token token.Token
	Value any
}

func (l Literal) String() string {
	return parenthesize("literal", lexeme{Lexeme: FormatValue(l.Value)}).String()
}

func (l *Literal) Base() token.Token {
	return l.Token
}

func (*Literal) exprNode() {}

var _ Expr = &Literal{}

type Unary struct {
	Op    token.Token
	Right Expr
}

func (u Unary) String() string {
	return parenthesize("unary", lexeme(u.Op), u.Right).String()
}

func (u *Unary) Base() token.Token {
	return u.Op
}

func (*Unary) exprNode() {}

var _ Expr = &Unary{}

type Variable struct {
	Name token.Token
}

func (v Variable) String() string {
	return parenthesize("var", lexeme(v.Name)).String()
}

func (v *Variable) Base() token.Token {
	return v.Name
}

func (*Variable) exprNode() {}

var _ Expr = &Variable{}

type Call struct {
	Callee Expr
	Paren  token.Token // closing parenthesis
	Args   []Expr
}

func (c Call) String() string {
	return parenthesize("call", c.Callee, concat(c.Args)).String()
}

func (c *Call) Base() token.Token {
	return c.Paren
}

func (*Call) exprNode() {}

var _ Expr = &Call{}

// Statements

type Block struct {
	Brace token.Token // opening brace, or the keyword of a desugared statement
	Stmts []Stmt
}

func (b Block) String() string {
	return parenthesize("block", concat(b.Stmts)).String()
}

func (b *Block) Base() token.Token {
	return b.Brace
}

func (*Block) stmtNode() {}

var _ Stmt = &Block{}

type Expression struct {
	Expr Expr
}

func (e Expression) String() string {
	return parenthesize("expr", e.Expr).String()
}

func (e *Expression) Base() token.Token {
	return e.Expr.Base()
}

func (*Expression) stmtNode() {}

var _ Stmt = &Expression{}

type If struct {
	Keyword token.Token
	Cond    Expr
	Then    Stmt
	Else    Optional[Stmt]
}

func (i If) String() string {
	if els, ok := i.Else.Get(); ok {
		return parenthesize("if", i.Cond, i.Then, els).String()
	}
	return parenthesize("if", i.Cond, i.Then).String()
}

func (i *If) Base() token.Token {
	return i.Keyword
}

func (*If) stmtNode() {}

var _ Stmt = &If{}

type Print struct {
	Keyword token.Token
	Expr    Expr
}

func (p Print) String() string {
	return parenthesize("print", p.Expr).String()
}

func (p *Print) Base() token.Token {
	return p.Keyword
}

func (*Print) stmtNode() {}

var _ Stmt = &Print{}

type Var struct {
	Name token.Token
	Init Optional[Expr]
}

func (v Var) String() string {
	if value, ok := v.Init.Get(); ok {
		return parenthesize("def", lexeme(v.Name), value).String()
	}
	return parenthesize("def", lexeme(v.Name)).String()
}

func (v *Var) Base() token.Token {
	return v.Name
}

func (*Var) stmtNode() {}

var _ Stmt = &Var{}

type While struct {
	Keyword token.Token
	Cond    Expr
	Body    Stmt
}

func (w While) String() string {
	return parenthesize("while", w.Cond, w.Body).String()
}

func (w *While) Base() token.Token {
	return w.Keyword
}

func (*While) stmtNode() {}

var _ Stmt = &While{}

type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (f Function) String() string {
	params := make([]lexeme, len(f.Params))
	for i, p := range f.Params {
		params[i] = lexeme(p)
	}
	return parenthesize("function", lexeme(f.Name), parenthesize("", concat(params)), concat(f.Body)).String()
}

func (f *Function) Base() token.Token {
	return f.Name
}

func (*Function) stmtNode() {}

var _ Stmt = &Function{}

// Return is produced by both `return` and `break`; Keyword tells them apart.
type Return struct {
	Keyword token.Token
	Value   Optional[Expr]
}

func (r Return) String() string {
	if value, ok := r.Value.Get(); ok {
		return parenthesize(r.Keyword.Lexeme, value).String()
	}
	return parenthesize(r.Keyword.Lexeme).String()
}

func (r *Return) Base() token.Token {
	return r.Keyword
}

func (*Return) stmtNode() {}

var _ Stmt = &Return{}

// FormatValue renders a literal value the way it is printed in s-expressions.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// lexeme prints a token as its source text.
type lexeme token.Token

func (l lexeme) String() string {
	return l.Lexeme
}

// parenthesize takes a head string and a variadic number of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is parenthesized and separated by a space.
// If the head string is not empty, it is added at the beginning of the string.
func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	elemsStr := concat(elems).String()
	if head != "" {
		b.WriteString(head)
	}
	if elemsStr != "" {
		if head != "" {
			b.WriteString(" ")
		}
		b.WriteString(elemsStr)
	}
	b.WriteString(")")
	return &b
}

// concat takes a slice of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is separated by a space.
func concat[T fmt.Stringer](elems []T) fmt.Stringer {
	var b strings.Builder
	for _, elem := range elems {
		// ignore empty string
		// e.g. concat({}) == ""
		str := elem.String()
		if str == "" {
			continue
		}
		if b.Len() != 0 {
			b.WriteString(" ")
		}
		b.WriteString(str)
	}
	return &b
}
