/*
File    : go-letter/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/go-letter/lexer"
)

// isLiteralType reports whether the token type starts a literal production.
func isLiteralType(tokenType lexer.TokenType) bool {
	switch tokenType {
	case lexer.NUMBER_LIT, lexer.STRING_LIT, lexer.TRUE_KEY, lexer.FALSE_KEY, lexer.NULL_KEY:
		return true
	}
	return false
}

// parseLiteral dispatches on the lookahead to the matching literal
// production. A non-literal lookahead fails with UnexpectedLiteral.
//
// Literal
//
//	: NumericLiteral
//	| StringLiteral
//	| BooleanLiteral
//	| NullLiteral
//	;
func (par *Parser) parseLiteral() (ExpressionNode, error) {
	switch par.Lookahead.Type {
	case lexer.NUMBER_LIT:
		return par.parseNumericLiteral()
	case lexer.STRING_LIT:
		return par.parseStringLiteral()
	case lexer.TRUE_KEY, lexer.FALSE_KEY:
		return par.parseBooleanLiteral()
	case lexer.NULL_KEY:
		return par.parseNullLiteral()
	}
	return nil, par.unexpectedLiteral(par.Lookahead)
}

// parseNumericLiteral parses a decimal integer literal. The node value is
// the base-10 conversion of the lexeme.
func (par *Parser) parseNumericLiteral() (ExpressionNode, error) {
	token, err := par.consume(lexer.NUMBER_LIT)
	if err != nil {
		return nil, err
	}
	value, err := strconv.Atoi(token.Literal)
	if err != nil {
		return nil, err
	}
	return &NumericLiteralNode{NodeType: "NumericLiteral", Value: value}, nil
}

// parseStringLiteral parses a string literal. The token lexeme still
// carries the surrounding quote characters; the node value is the lexeme
// with the first and last character removed.
func (par *Parser) parseStringLiteral() (ExpressionNode, error) {
	token, err := par.consume(lexer.STRING_LIT)
	if err != nil {
		return nil, err
	}
	return &StringLiteralNode{
		NodeType: "StringLiteral",
		Value:    token.Literal[1 : len(token.Literal)-1],
	}, nil
}

// parseBooleanLiteral parses 'true' or 'false'.
func (par *Parser) parseBooleanLiteral() (ExpressionNode, error) {
	token, err := par.consume(par.Lookahead.Type)
	if err != nil {
		return nil, err
	}
	return &BooleanLiteralNode{
		NodeType: "BooleanLiteral",
		Value:    token.Type == lexer.TRUE_KEY,
	}, nil
}

// parseNullLiteral parses 'null'.
func (par *Parser) parseNullLiteral() (ExpressionNode, error) {
	if _, err := par.consume(lexer.NULL_KEY); err != nil {
		return nil, err
	}
	return &NullLiteralNode{NodeType: "NullLiteral"}, nil
}

// parseIdentifier parses a user-defined name.
//
// Identifier
//
//	: IDENTIFIER
//	;
func (par *Parser) parseIdentifier() (*IdentifierNode, error) {
	token, err := par.consume(lexer.IDENTIFIER_ID)
	if err != nil {
		return nil, err
	}
	return &IdentifierNode{NodeType: "Identifier", Name: token.Literal}, nil
}
