/*
File    : go-letter/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-letter/lexer"
)

// parseFunctionDeclaration parses a 'def' declaration. The parameter list
// may be empty and the body must be a block statement.
//
// FunctionDeclaration
//
//	: 'def' Identifier '(' OptFormalParameterList ')' BlockStatement
//	;
//
// Example:
//
//	def square(x) { return x * x; }
func (par *Parser) parseFunctionDeclaration() (StatementNode, error) {
	if _, err := par.consume(lexer.DEF_KEY); err != nil {
		return nil, err
	}
	name, err := par.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := par.consume(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	params := make([]*IdentifierNode, 0)
	if par.Lookahead.Type != lexer.RIGHT_PAREN {
		params, err = par.parseFormalParameterList()
		if err != nil {
			return nil, err
		}
	}
	if _, err := par.consume(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}

	body, err := par.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	return &FunctionDeclarationNode{
		NodeType: "FunctionDeclaration",
		Name:     name,
		Params:   params,
		Body:     body,
	}, nil
}

// parseFormalParameterList parses one or more comma-separated parameter
// names.
//
// FormalParameterList
//
//	: Identifier
//	| FormalParameterList ',' Identifier
//	;
func (par *Parser) parseFormalParameterList() ([]*IdentifierNode, error) {
	params := make([]*IdentifierNode, 0)
	for {
		param, err := par.parseIdentifier()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if par.Lookahead.Type != lexer.COMMA_DELIM {
			break
		}
		if _, err := par.consume(lexer.COMMA_DELIM); err != nil {
			return nil, err
		}
	}
	return params, nil
}

// parseReturnStatement parses a return with an optional argument.
//
// ReturnStatement
//
//	: 'return' OptExpression ';'
//	;
//
// Examples:
//
//	return x * 2;
//	return;
func (par *Parser) parseReturnStatement() (StatementNode, error) {
	if _, err := par.consume(lexer.RETURN_KEY); err != nil {
		return nil, err
	}

	var argument ExpressionNode
	if par.Lookahead.Type != lexer.SEMICOLON_DELIM {
		expr, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		argument = expr
	}

	if _, err := par.consume(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}
	return &ReturnStatementNode{NodeType: "ReturnStatement", Argument: argument}, nil
}
