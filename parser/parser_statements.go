/*
File    : go-letter/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-letter/lexer"
)

// parseStatementList parses statements until the stop token type appears in
// the lookahead. At least one statement is always parsed; callers that allow
// an empty list (block statements) check the stop token themselves before
// calling.
//
// StatementList
//
//	: Statement
//	| StatementList Statement
//	;
func (par *Parser) parseStatementList(stop lexer.TokenType) ([]StatementNode, error) {
	statements := make([]StatementNode, 0)

	stmt, err := par.parseStatement()
	if err != nil {
		return nil, err
	}
	statements = append(statements, stmt)

	for par.Lookahead.Type != stop {
		stmt, err := par.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// parseStatement dispatches on the lookahead to the matching statement
// production.
//
// Statement
//
//	: EmptyStatement
//	| BlockStatement
//	| VariableStatement
//	| IfStatement
//	| WhileStatement
//	| DoWhileStatement
//	| ForStatement
//	| FunctionDeclaration
//	| ReturnStatement
//	| ClassDeclaration
//	| ExpressionStatement
//	;
func (par *Parser) parseStatement() (StatementNode, error) {
	switch par.Lookahead.Type {
	case lexer.SEMICOLON_DELIM:
		return par.parseEmptyStatement()
	case lexer.LEFT_BRACE:
		return par.parseBlockStatement()
	case lexer.LET_KEY:
		return par.parseVariableStatement()
	case lexer.IF_KEY:
		return par.parseIfStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case lexer.DO_KEY:
		return par.parseDoWhileStatement()
	case lexer.FOR_KEY:
		return par.parseForStatement()
	case lexer.DEF_KEY:
		return par.parseFunctionDeclaration()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	case lexer.CLASS_KEY:
		return par.parseClassDeclaration()
	default:
		return par.parseExpressionStatement()
	}
}

// parseEmptyStatement parses a lone semicolon.
//
// EmptyStatement
//
//	: ';'
//	;
func (par *Parser) parseEmptyStatement() (StatementNode, error) {
	if _, err := par.consume(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}
	return &EmptyStatementNode{NodeType: "EmptyStatement"}, nil
}

// parseBlockStatement parses a brace-delimited statement list. The body may
// be empty.
//
// BlockStatement
//
//	: '{' OptStatementList '}'
//	;
func (par *Parser) parseBlockStatement() (*BlockStatementNode, error) {
	if _, err := par.consume(lexer.LEFT_BRACE); err != nil {
		return nil, err
	}

	body := make([]StatementNode, 0)
	if par.Lookahead.Type != lexer.RIGHT_BRACE {
		statements, err := par.parseStatementList(lexer.RIGHT_BRACE)
		if err != nil {
			return nil, err
		}
		body = statements
	}

	if _, err := par.consume(lexer.RIGHT_BRACE); err != nil {
		return nil, err
	}
	return &BlockStatementNode{NodeType: "BlockStatement", Body: body}, nil
}

// parseExpressionStatement parses an expression in statement position and
// its terminating semicolon.
//
// ExpressionStatement
//
//	: Expression ';'
//	;
func (par *Parser) parseExpressionStatement() (StatementNode, error) {
	expression, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}
	return &ExpressionStatementNode{NodeType: "ExpressionStatement", Expression: expression}, nil
}

// parseVariableStatement parses a full 'let' statement including the
// terminating semicolon.
//
// VariableStatement
//
//	: 'let' VariableDeclarationList ';'
//	;
func (par *Parser) parseVariableStatement() (StatementNode, error) {
	stmt, err := par.parseVariableStatementInit()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.SEMICOLON_DELIM); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseVariableStatementInit parses a 'let' statement without consuming the
// terminating semicolon. The for-statement initializer reuses this directly
// because the for-loop consumes the semicolon itself.
func (par *Parser) parseVariableStatementInit() (*VariableStatementNode, error) {
	if _, err := par.consume(lexer.LET_KEY); err != nil {
		return nil, err
	}
	declarations, err := par.parseVariableDeclarationList()
	if err != nil {
		return nil, err
	}
	return &VariableStatementNode{NodeType: "VariableStatement", Declarations: declarations}, nil
}

// parseVariableDeclarationList parses one or more comma-separated
// declarators.
//
// VariableDeclarationList
//
//	: VariableDeclaration
//	| VariableDeclarationList ',' VariableDeclaration
//	;
func (par *Parser) parseVariableDeclarationList() ([]*VariableDeclarationNode, error) {
	declarations := make([]*VariableDeclarationNode, 0)
	for {
		declaration, err := par.parseVariableDeclaration()
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, declaration)

		if par.Lookahead.Type != lexer.COMMA_DELIM {
			break
		}
		if _, err := par.consume(lexer.COMMA_DELIM); err != nil {
			return nil, err
		}
	}
	return declarations, nil
}

// parseVariableDeclaration parses a single declarator with an optional
// initializer. Only the simple '=' introduces an initializer; compound
// operators are not valid here.
//
// VariableDeclaration
//
//	: Identifier OptVariableInitializer
//	;
func (par *Parser) parseVariableDeclaration() (*VariableDeclarationNode, error) {
	id, err := par.parseIdentifier()
	if err != nil {
		return nil, err
	}

	var init ExpressionNode
	if par.Lookahead.Type == lexer.SIMPLE_ASSIGN {
		if _, err := par.consume(lexer.SIMPLE_ASSIGN); err != nil {
			return nil, err
		}
		init, err = par.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
	}
	return &VariableDeclarationNode{NodeType: "VariableDeclaration", Id: id, Init: init}, nil
}
