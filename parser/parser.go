// Package parser turns a token stream into statements.
//
// Syntax errors are reported to a diag.Reporter. A declaration that fails to
// parse is dropped and the parser skips ahead to the next statement boundary,
// so a single call always yields every statement it could recover.
package parser

import (
	"fmt"

	"github.com/takoeight0821/inzertion/ast"
	"github.com/takoeight0821/inzertion/diag"
	"github.com/takoeight0821/inzertion/token"
)

const (
	maxParams = 255
	maxArgs   = 255
)

type Parser struct {
	tokens   []token.Token
	current  int
	reporter diag.Reporter
}

func New(tokens []token.Token, r diag.Reporter) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.Token{Kind: token.EOF, Line: line})
	}

	return &Parser{tokens: tokens, current: 0, reporter: r}
}

// Parse parses declarations until EOF.
//
// program = declaration* EOF ;
func (p *Parser) Parse() []ast.Stmt {
	stmts := []ast.Stmt{}
	for !p.IsAtEnd() {
		if stmt, ok := p.declaration(); ok {
			stmts = append(stmts, stmt)
		}
	}

	return stmts
}

// ParseExpr parses a single expression at the cursor.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.expression()
}

// declaration = funDecl | varDecl | statement ;
func (p *Parser) declaration() (ast.Stmt, bool) {
	var stmt ast.Stmt
	var err error
	switch {
	case p.accept(token.FUNCTION):
		stmt, err = p.function("function")
	case p.accept(token.VAR):
		stmt, err = p.varDecl()
	default:
		stmt, err = p.statement()
	}

	if err != nil {
		p.synchronize()

		return nil, false
	}

	return stmt, true
}

// funDecl = "function" IDENT "(" params? ")" block ;
// params = IDENT? ( "," IDENT )* ","? ;
func (p *Parser) function(kind string) (ast.Stmt, error) {
	name, err := p.consume(token.IDENT, "expected "+kind+" name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFTPAREN, "expected `(` after "+kind+" name"); err != nil {
		return nil, err
	}

	params := []token.Token{}
	if p.match(token.IDENT) {
		params = append(params, p.advance())
	}
	for p.accept(token.COMMA) {
		if p.match(token.RIGHTPAREN) {
			break
		}
		param, err := p.consume(token.IDENT, "expected parameter name")
		if err != nil {
			return nil, err
		}
		if len(params) >= maxParams {
			p.reporter.ErrorAt(param, fmt.Sprintf("too many parameters (max %d)", maxParams))

			continue
		}
		params = append(params, param)
	}

	if _, err := p.consume(token.RIGHTPAREN, "expected `)` after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFTBRACE, "expected `{` before "+kind+" body"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Name: name, Params: params, Body: body}, nil
}

// varDecl = "var" IDENT ( "=" expression )? ";" ;
func (p *Parser) varDecl() (ast.Stmt, error) {
	name, err := p.consume(token.IDENT, "expected variable name")
	if err != nil {
		return nil, err
	}

	initializer := ast.None[ast.Expr]()
	if p.accept(token.EQUAL) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		initializer = ast.Some(expr)
	}

	if _, err := p.consume(token.SEMICOLON, "expected `;` after variable declaration"); err != nil {
		return nil, err
	}

	return &ast.Var{Name: name, Init: initializer}, nil
}

// statement = forStmt | ifStmt | printStmt | breakStmt | returnStmt | whileStmt | block | exprStmt ;
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.accept(token.FOR):
		return p.forStmt()
	case p.accept(token.IF):
		return p.ifStmt()
	case p.accept(token.PRINT):
		return p.printStmt()
	case p.accept(token.BREAK):
		return p.breakStmt()
	case p.accept(token.RETURN):
		return p.returnStmt()
	case p.accept(token.WHILE):
		return p.whileStmt()
	case p.accept(token.LEFTBRACE):
		brace := p.previous()
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}

		return &ast.Block{Brace: brace, Stmts: stmts}, nil
	default:
		return p.exprStmt()
	}
}

// forStmt = "for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement ;
//
// The loop is desugared into a while statement:
//
//	{ init; while (cond) { body; incr; } }
func (p *Parser) forStmt() (ast.Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(token.LEFTPAREN, "expected `(` after `for`"); err != nil {
		return nil, err
	}

	initializer := ast.None[ast.Stmt]()
	switch {
	case p.accept(token.SEMICOLON):
	case p.accept(token.VAR):
		decl, err := p.varDecl()
		if err != nil {
			return nil, err
		}
		initializer = ast.Some(decl)
	default:
		stmt, err := p.exprStmt()
		if err != nil {
			return nil, err
		}
		initializer = ast.Some(stmt)
	}

	var cond ast.Expr = &ast.Literal{Token: keyword, Value: true}
	if !p.match(token.SEMICOLON) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		cond = expr
	}
	if _, err := p.consume(token.SEMICOLON, "expected `;` after loop condition"); err != nil {
		return nil, err
	}

	increment := ast.None[ast.Expr]()
	if !p.match(token.RIGHTPAREN) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		increment = ast.Some(expr)
	}
	if _, err := p.consume(token.RIGHTPAREN, "expected `)` after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if incr, ok := increment.Get(); ok {
		body = &ast.Block{Brace: keyword, Stmts: []ast.Stmt{body, &ast.Expression{Expr: incr}}}
	}
	body = &ast.While{Keyword: keyword, Cond: cond, Body: body}
	if first, ok := initializer.Get(); ok {
		body = &ast.Block{Brace: keyword, Stmts: []ast.Stmt{first, body}}
	}

	return body, nil
}

// ifStmt = "if" "(" expression ")" statement ( "else" statement )? ;
func (p *Parser) ifStmt() (ast.Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(token.LEFTPAREN, "expected `(` after `if`"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHTPAREN, "expected `)` after if condition"); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	els := ast.None[ast.Stmt]()
	if p.accept(token.ELSE) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		els = ast.Some(stmt)
	}

	return &ast.If{Keyword: keyword, Cond: cond, Then: then, Else: els}, nil
}

// printStmt = "print" expression ";" ;
func (p *Parser) printStmt() (ast.Stmt, error) {
	keyword := p.previous()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "expected `;` after value"); err != nil {
		return nil, err
	}

	return &ast.Print{Keyword: keyword, Expr: expr}, nil
}

// breakStmt = "break" ";" ;
//
// TODO: break builds the same node as a bare return, so it leaves the enclosing
// function rather than the loop. Give it its own node once loop exits are designed.
func (p *Parser) breakStmt() (ast.Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(token.SEMICOLON, "expected `;` after `break`"); err != nil {
		return nil, err
	}

	return &ast.Return{Keyword: keyword, Value: ast.None[ast.Expr]()}, nil
}

// returnStmt = "return" expression? ";" ;
func (p *Parser) returnStmt() (ast.Stmt, error) {
	keyword := p.previous()

	value := ast.None[ast.Expr]()
	if !p.match(token.SEMICOLON) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		value = ast.Some(expr)
	}
	if _, err := p.consume(token.SEMICOLON, "expected `;` after return value"); err != nil {
		return nil, err
	}

	return &ast.Return{Keyword: keyword, Value: value}, nil
}

// whileStmt = "while" "(" expression ")" statement ;
func (p *Parser) whileStmt() (ast.Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(token.LEFTPAREN, "expected `(` after `while`"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHTPAREN, "expected `)` after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &ast.While{Keyword: keyword, Cond: cond, Body: body}, nil
}

// block = "{" declaration* "}" ;
func (p *Parser) block() ([]ast.Stmt, error) {
	stmts := []ast.Stmt{}
	for !p.match(token.RIGHTBRACE) && !p.IsAtEnd() {
		if stmt, ok := p.declaration(); ok {
			stmts = append(stmts, stmt)
		}
	}
	if _, err := p.consume(token.RIGHTBRACE, "expected `}` after block"); err != nil {
		return nil, err
	}

	return stmts, nil
}

// exprStmt = expression ";" ;
func (p *Parser) exprStmt() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "expected `;` after expression"); err != nil {
		return nil, err
	}

	return &ast.Expression{Expr: expr}, nil
}

// expression = assignment ;
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment = logicOr ( "=" assignment | ( "+=" | "-=" | "*=" | "/=" ) term )? ;
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	switch {
	case p.accept(token.EQUAL):
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}, nil
		}
		p.reporter.ErrorAt(equals, "invalid assignment target")

		return value, nil
	case p.accept(token.PLUSEQUAL, token.MINUSEQUAL, token.STAREQUAL, token.SLASHEQUAL):
		op := p.previous()
		// every compound operator takes a term on its right, `*=` and `/=` included
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		v, ok := expr.(*ast.Variable)
		if !ok {
			p.reporter.ErrorAt(op, "invalid assignment target")

			return right, nil
		}

		return &ast.Assign{Name: v.Name, Value: &ast.Binary{Left: v, Op: op, Right: right}}, nil
	default:
		return expr, nil
	}
}

// logicOr = logicAnd ( "or" logicAnd )* ;
func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.accept(token.OR) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

// logicAnd = equality ( "and" equality )* ;
func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.accept(token.AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

// equality = comparison ( ( "!=" | "==" ) comparison )* ;
func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.accept(token.BANGEQUAL, token.EQUALEQUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

// comparison = term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.accept(token.GREATER, token.GREATEREQUAL, token.LESS, token.LESSEQUAL) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

// term = factor ( ( "-" | "+" ) factor )* ;
func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.accept(token.MINUS, token.PLUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

// factor = unary ( ( "/" | "*" ) unary )* ;
func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.accept(token.SLASH, token.STAR) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

// unary = ( "!" | "-" ) unary | call ;
func (p *Parser) unary() (ast.Expr, error) {
	if !p.accept(token.BANG, token.MINUS) {
		return p.call()
	}
	op := p.previous()
	right, err := p.unary()
	if err != nil {
		return nil, err
	}

	return &ast.Unary{Op: op, Right: right}, nil
}

// call = primary ( "(" arguments? ")" )* ;
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.accept(token.LEFTPAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}

	return expr, nil
}

// arguments = expression ( "," expression )* ;
func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	args := []ast.Expr{}
	if !p.match(token.RIGHTPAREN) {
		for {
			if len(args) >= maxArgs {
				p.reporter.ErrorAt(p.peek(), fmt.Sprintf("too many arguments (max %d)", maxArgs))
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.accept(token.COMMA) {
				break
			}
		}
	}

	paren, err := p.consume(token.RIGHTPAREN, "expected `)` after arguments")
	if err != nil {
		return nil, err
	}

	return &ast.Call{Callee: callee, Paren: paren, Args: args}, nil
}

// primary = "true" | "false" | "null" | NUMBER | STRING | IDENT | "(" expression ")" ;
func (p *Parser) primary() (ast.Expr, error) {
	//exhaustive:ignore
	switch tok := p.peek(); tok.Kind {
	case token.FALSE:
		p.advance()

		return &ast.Literal{Token: tok, Value: false}, nil
	case token.TRUE:
		p.advance()

		return &ast.Literal{Token: tok, Value: true}, nil
	case token.NULL:
		p.advance()

		return &ast.Literal{Token: tok, Value: nil}, nil
	case token.NUMBER, token.STRING:
		p.advance()

		return &ast.Literal{Token: tok, Value: tok.Literal}, nil
	case token.IDENT:
		p.advance()

		return &ast.Variable{Name: tok}, nil
	case token.LEFTPAREN:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHTPAREN, "expected `)` after expression"); err != nil {
			return nil, err
		}

		return &ast.Grouping{Expr: expr}, nil
	default:
		return nil, p.errorAt(tok, "expected expression")
	}
}

// synchronize discards tokens until just after a `;` or just before a token that starts a declaration.
func (p *Parser) synchronize() {
	p.advance()
	for !p.IsAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		if p.peek().Kind.StartsDeclaration() {
			return
		}
		p.advance()
	}
}

// errorAt reports a structural error at tok and returns it for the caller to propagate.
func (p *Parser) errorAt(tok token.Token, message string) error {
	p.reporter.ErrorAt(tok, message)

	return diag.At(tok, message)
}

func (p Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) advance() token.Token {
	if !p.IsAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p Parser) IsAtEnd() bool {
	return p.peek().Kind == token.EOF
}

// match reports whether the next token is one of kinds, without consuming it.
func (p Parser) match(kinds ...token.Kind) bool {
	if p.IsAtEnd() {
		return false
	}
	for _, kind := range kinds {
		if p.peek().Kind == kind {
			return true
		}
	}

	return false
}

// accept consumes the next token if it is one of kinds.
func (p *Parser) accept(kinds ...token.Kind) bool {
	if !p.match(kinds...) {
		return false
	}
	p.advance()

	return true
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.match(kind) {
		return p.advance(), nil
	}

	return p.peek(), p.errorAt(p.peek(), message)
}
