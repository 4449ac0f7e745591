/*
File    : go-letter/parser/parser_classes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-letter/lexer"
)

// parseClassDeclaration parses a class with an optional 'extends' clause.
// The class body is an ordinary block statement; its members (typically
// 'def' declarations) are regular statements.
//
// ClassDeclaration
//
//	: 'class' Identifier OptClassExtends BlockStatement
//	;
//
// Example:
//
//	class Point3D extends Point {
//	    def calc() { return super() + this.z; }
//	}
func (par *Parser) parseClassDeclaration() (StatementNode, error) {
	if _, err := par.consume(lexer.CLASS_KEY); err != nil {
		return nil, err
	}
	id, err := par.parseIdentifier()
	if err != nil {
		return nil, err
	}

	var superClass *IdentifierNode
	if par.Lookahead.Type == lexer.EXTENDS_KEY {
		superClass, err = par.parseClassExtends()
		if err != nil {
			return nil, err
		}
	}

	body, err := par.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	return &ClassDeclarationNode{
		NodeType:   "ClassDeclaration",
		Id:         id,
		SuperClass: superClass,
		Body:       body,
	}, nil
}

// parseClassExtends parses the superclass clause.
//
// ClassExtends
//
//	: 'extends' Identifier
//	;
func (par *Parser) parseClassExtends() (*IdentifierNode, error) {
	if _, err := par.consume(lexer.EXTENDS_KEY); err != nil {
		return nil, err
	}
	return par.parseIdentifier()
}

// parseNewExpression parses an object instantiation. The callee is a member
// expression, so qualified names like new Namespace.Point(1, 2) work; the
// argument list is mandatory.
//
// NewExpression
//
//	: 'new' MemberExpression Arguments
//	;
func (par *Parser) parseNewExpression() (ExpressionNode, error) {
	if _, err := par.consume(lexer.NEW_KEY); err != nil {
		return nil, err
	}
	callee, err := par.parseMemberExpression()
	if err != nil {
		return nil, err
	}
	arguments, err := par.parseArguments()
	if err != nil {
		return nil, err
	}
	return &NewExpressionNode{NodeType: "NewExpression", Callee: callee, Arguments: arguments}, nil
}

// parseThisExpression parses the current-instance reference.
//
// ThisExpression
//
//	: 'this'
//	;
func (par *Parser) parseThisExpression() (ExpressionNode, error) {
	if _, err := par.consume(lexer.THIS_KEY); err != nil {
		return nil, err
	}
	return &ThisExpressionNode{NodeType: "ThisExpression"}, nil
}

// parseSuperExpression parses the superclass reference. 'super' is only
// accepted as the head of a call; the caller immediately parses the
// argument list.
//
// Super
//
//	: 'super'
//	;
func (par *Parser) parseSuperExpression() (ExpressionNode, error) {
	if _, err := par.consume(lexer.SUPER_KEY); err != nil {
		return nil, err
	}
	return &SuperNode{NodeType: "Super"}, nil
}
