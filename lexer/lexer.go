package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/takoeight0821/inzertion/diag"
	"github.com/takoeight0821/inzertion/token"
)

// Lex scans source into tokens. The result always ends with exactly one EOF token.
// Lexical errors are reported to r and the offending input is skipped.
func Lex(source string, r diag.Reporter) []token.Token {
	lexer := lexer{
		source:   source,
		tokens:   []token.Token{},
		start:    0,
		current:  0,
		line:     1,
		reporter: r,
	}

	for !lexer.isAtEnd() {
		lexer.start = lexer.current
		lexer.scanToken()
	}

	lexer.tokens = append(lexer.tokens, token.Token{Kind: token.EOF, Lexeme: "", Line: lexer.line, Literal: nil})

	return lexer.tokens
}

type lexer struct {
	source string
	tokens []token.Token

	start   int // start of current lexeme
	current int // current position in source
	line    int // current line number

	reporter diag.Reporter
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return runeValue
}

func (l lexer) peekNext() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	_, width := utf8.DecodeRuneInString(l.source[l.current:])
	if l.current+width >= len(l.source) {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current+width:])

	return runeValue
}

func (l *lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width

	return runeValue
}

// match consumes the next rune if it is expected.
func (l *lexer) match(expected rune) bool {
	if l.isAtEnd() || l.peek() != expected {
		return false
	}
	l.advance()

	return true
}

func (l *lexer) addToken(kind token.Kind, literal any) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: text, Line: l.line, Literal: literal})
}

// either adds long if the next rune is next, short otherwise.
func (l *lexer) either(next rune, long, short token.Kind) {
	if l.match(next) {
		l.addToken(long, nil)
	} else {
		l.addToken(short, nil)
	}
}

func (l *lexer) scanToken() {
	char := l.advance()
	switch char {
	case '(':
		l.addToken(token.LEFTPAREN, nil)
	case ')':
		l.addToken(token.RIGHTPAREN, nil)
	case '{':
		l.addToken(token.LEFTBRACE, nil)
	case '}':
		l.addToken(token.RIGHTBRACE, nil)
	case ',':
		l.addToken(token.COMMA, nil)
	case '.':
		l.addToken(token.DOT, nil)
	case ';':
		l.addToken(token.SEMICOLON, nil)
	case '-':
		l.either('=', token.MINUSEQUAL, token.MINUS)
	case '+':
		l.either('=', token.PLUSEQUAL, token.PLUS)
	case '*':
		l.either('=', token.STAREQUAL, token.STAR)
	case '!':
		l.either('=', token.BANGEQUAL, token.BANG)
	case '=':
		l.either('=', token.EQUALEQUAL, token.EQUAL)
	case '<':
		l.either('=', token.LESSEQUAL, token.LESS)
	case '>':
		l.either('=', token.GREATEREQUAL, token.GREATER)
	case '/':
		switch {
		case l.match('/'), l.match('*'):
			// `/*` has no terminator: both forms run to the end of the line.
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		case l.match('='):
			l.addToken(token.SLASHEQUAL, nil)
		default:
			l.addToken(token.SLASH, nil)
		}
	case '&':
		if !l.match('&') {
			l.unexpected(char)
			return
		}
		l.addToken(token.AND, nil)
	case '|':
		if !l.match('|') {
			l.unexpected(char)
			return
		}
		l.addToken(token.OR, nil)
	case ' ', '\r', '\t':
		// ignore whitespace
	case '\n':
		l.line++
	case '"':
		l.string()
	default:
		switch {
		case isDigit(char):
			l.number()
		case isAlpha(char):
			l.identifier()
		default:
			l.unexpected(char)
		}
	}
}

func (l *lexer) unexpected(char rune) {
	l.reporter.ErrorAtLine(l.line, fmt.Sprintf("unexpected character: %c", char))
}

func (l *lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.reporter.ErrorAtLine(l.line, "unterminated string")
		return
	}

	// closing quote
	l.advance()

	value := l.source[l.start+1 : l.current-1]
	l.addToken(token.STRING, value)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	// digits with at most one dot always parse
	value, _ := strconv.ParseFloat(l.source[l.start:l.current], 64)
	l.addToken(token.NUMBER, value)
}

func isAlpha(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-'
}

func (l *lexer) identifier() {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	l.addToken(token.LookupIdent(l.source[l.start:l.current]), nil)
}
