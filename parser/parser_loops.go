/*
File    : go-letter/parser/parser_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-letter/lexer"
)

// parseWhileStatement parses a pre-tested loop.
//
// WhileStatement
//
//	: 'while' '(' Expression ')' Statement
//	;
//
// Example:
//
//	while (i < 10) i += 1;
func (par *Parser) parseWhileStatement() (StatementNode, error) {
	if _, err := par.consume(lexer.WHILE_KEY); err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	test, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	body, err := par.parseStatement()
	if err != nil {
		return nil, err
	}
	return &WhileStatementNode{NodeType: "WhileStatement", Test: test, Body: body}, nil
}

// parseDoWhileStatement parses a post-tested loop.
//
// DoWhileStatement
//
//	: 'do' Statement 'while' '(' Expression ')' ';'
//	;
//
// Example:
//
//	do { i -= 1; } while (i > 0);
func (par *Parser) parseDoWhileStatement() (StatementNode, error) {
	if _, err := par.consume(lexer.DO_KEY); err != nil {
		return nil, err
	}
	body, err := par.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.WHILE_KEY); err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	test, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}
	return &DoWhileStatementNode{NodeType: "DoWhileStatement", Test: test, Body: body}, nil
}

// parseForStatement parses a C-style for loop. All three header slots are
// optional; an empty slot stays nil in the AST.
//
// ForStatement
//
//	: 'for' '(' OptForStatementInit ';' OptExpression ';' OptExpression ')' Statement
//	;
//
// Examples:
//
//	for (let i = 0; i < 10; i += 1) { sum += i; }
//	for (;;) {}
func (par *Parser) parseForStatement() (StatementNode, error) {
	if _, err := par.consume(lexer.FOR_KEY); err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}

	var init Node
	if par.Lookahead.Type != lexer.SEMICOLON_DELIM {
		node, err := par.parseForStatementInit()
		if err != nil {
			return nil, err
		}
		init = node
	}
	if _, err := par.consume(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}

	var test ExpressionNode
	if par.Lookahead.Type != lexer.SEMICOLON_DELIM {
		expr, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		test = expr
	}
	if _, err := par.consume(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}

	var update ExpressionNode
	if par.Lookahead.Type != lexer.RIGHT_PAREN {
		expr, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		update = expr
	}
	if _, err := par.consume(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}

	body, err := par.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ForStatementNode{
		NodeType: "ForStatement",
		Init:     init,
		Test:     test,
		Update:   update,
		Body:     body,
	}, nil
}

// parseForStatementInit parses the first header slot of a for loop: either
// a variable statement (whose semicolon the for-loop consumes itself) or a
// plain expression.
//
// ForStatementInit
//
//	: VariableStatementInit
//	| Expression
//	;
func (par *Parser) parseForStatementInit() (Node, error) {
	if par.Lookahead.Type == lexer.LET_KEY {
		return par.parseVariableStatementInit()
	}
	return par.parseExpression()
}
