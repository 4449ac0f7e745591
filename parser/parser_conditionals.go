/*
File    : go-letter/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-letter/lexer"
)

// parseIfStatement parses a conditional statement with an optional 'else'
// branch.
//
// IfStatement
//
//	: 'if' '(' Expression ')' Statement
//	| 'if' '(' Expression ')' Statement 'else' Statement
//	;
//
// The 'else' is consumed greedily after the consequent, so it binds to the
// nearest preceding 'if' that lacks one (classic dangling-else resolution).
//
// Examples:
//
//	if (x) { x = 1; } else { x = 2; }
//	if (a) if (b) c = 1; else c = 2;   // else belongs to the inner if
func (par *Parser) parseIfStatement() (StatementNode, error) {
	if _, err := par.consume(lexer.IF_KEY); err != nil {
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

	consequent, err := par.parseStatement()
	if err != nil {
		return nil, err
	}

	var alternate StatementNode
	if par.Lookahead.Type == lexer.ELSE_KEY {
		if _, err := par.consume(lexer.ELSE_KEY); err != nil {
			return nil, err
		}
		alternate, err = par.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	return &IfStatementNode{
		NodeType:   "IfStatement",
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}, nil
}
