/*
File    : minilang/parser/parser.go
Adapted from go-mix's parser/parser.go: two-token lookahead, a collected
error slice instead of panics, and a Pratt-style prefix/infix function
table keyed by token kind. go-mix keys its tables on `unaryParseFunction`/
`binaryParseFunction` registered per token type via
`registerUnaryFuncs`/`registerBinaryFuncs`; this package keeps that same
table-driven shape under the field names `curToken`/`peekToken` spec.md
names directly (§4.2), with go-mix's variable-environment/type-tracking
fields on Parser dropped (minilang's `let` has no type-locking semantics,
so there is nothing for the parser itself to track).
*/

// Package parser implements a Pratt (operator-precedence) parser that
// turns a token stream from the lexer package into a *ast.Program.
package parser

import (
	"fmt"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/lexer"
	"github.com/akashmaji946/minilang/token"
)

// Operator precedence levels, lowest to highest, per spec.md §4.2.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	LOGICAL     // && ||
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // fn(x)
	INDEX       // arr[x]
)

// precedences maps an infix operator's token kind to its binding power.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NEQ:      EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GTE:      LESSGREATER,
	token.AND:      LOGICAL,
	token.OR:       LOGICAL,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the two-token lookahead state and the prefix/infix function
// tables that drive Pratt parsing.
type Parser struct {
	lex *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over src and primes the two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src), errors: []string{}}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseHashLiteral)
	p.registerPrefix(token.WHILE, p.parseWhileAsError)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for _, t := range []token.Type{token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
		token.EQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE, token.AND, token.OR} {
		p.registerInfix(t, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)

	// prime curToken/peekToken
	p.advance()
	p.advance()

	return p
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.Type, fn infixParseFn)   { p.infixParseFns[t] = fn }

// advance shifts peekToken into curToken and pulls a fresh token from the
// lexer, skipping WHITESPACE (the lexer package itself never emits it
// today, but the token kind exists per spec.md §3, so the parser still
// filters it defensively).
func (p *Parser) advance() {
	p.curToken = p.peekToken
	for {
		p.peekToken = p.lex.NextToken()
		if p.peekToken.Type != token.WHITESPACE {
			break
		}
	}
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

// expectPeek advances past peekToken if it matches t, else records an
// error and leaves the parser positioned at the mismatching token.
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.advance()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: expected next token to be %s, got %s instead",
		p.peekToken.Line, t, p.peekToken.Type))
}

func (p *Parser) noPrefixParseFnError(t token.Type) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: no prefix parse function for %s found",
		p.curToken.Line, t))
}

// HasErrors reports whether parsing collected any errors.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// GetErrors returns every parse error collected so far, in encounter order.
func (p *Parser) GetErrors() []string { return p.errors }

// peekPrecedence and curPrecedence report the binding power of the
// peek/current token, defaulting to LOWEST for tokens with no registered
// infix precedence (e.g. SEMICOLON, EOF).
func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// Parse drives the parser across the full token stream, producing a
// *ast.Program. A statement that fails to parse does not abort the rest
// of the program: the parser steps one token past where the failing
// statement stopped and keeps parsing statements from there, collecting
// every error along the way (spec.md §7). It does not skip ahead to a
// statement boundary, so the remainder of a malformed statement is parsed
// as further statements and can report further errors.
func Parse(src string) (*ast.Program, []string) {
	p := New(src)
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}

	return program, p.errors
}
