/*
File    : minilang/parser/parser_statements.go
Adapted from go-mix's parser_statements.go split (one file per statement
production).
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/token"
)

// parseStatement dispatches on the current token kind to the matching
// statement production, falling back to an expression statement for
// anything else (minilang is expression-oriented: a bare expression is a
// complete statement).
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement: `let IDENT = expr;`
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)
	if fl, ok := stmt.Value.(*ast.FunctionLiteral); ok && fl.Name == "" {
		fl.Name = stmt.Name.Value
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseReturnStatement: `return expr;`
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.advance()

	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseExpressionStatement wraps a bare expression as a statement. The
// trailing semicolon is optional (spec.md §4.1), matching the REPL's need
// to evaluate a single expression with no terminator.
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseBlockStatement: `{ stmt* }`, curToken starting on LBRACE.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}
	p.advance()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}
	return block
}

// parseWhileAsError implements Open Question #6: `while` is lexed but
// rejected at parse time with a clear message rather than silently
// misparsed as something else.
func (p *Parser) parseWhileAsError() ast.Expression {
	p.errors = append(p.errors, "line "+strconv.Itoa(p.curToken.Line)+": while loops are not supported")
	// Consume through the loop's block so a trailing statement doesn't
	// also generate a cascade of spurious errors.
	for !p.curTokenIs(token.LBRACE) && !p.curTokenIs(token.EOF) {
		p.advance()
	}
	if p.curTokenIs(token.LBRACE) {
		p.parseBlockStatement()
	}
	return nil
}
