/*
File    : go-letter/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-letter/lexer"
)

// parseFunc is a sub-parser for one precedence level. The generic binary
// helper receives the next-tighter level as a function value and folds the
// matched operators leftward around it.
type parseFunc func() (ExpressionNode, error)

// parseExpression parses a full expression. Assignment is the lowest
// precedence level, so every expression position accepts one.
//
// Expression
//
//	: AssignmentExpression
//	;
func (par *Parser) parseExpression() (ExpressionNode, error) {
	return par.parseAssignmentExpression()
}

// parseAssignmentExpression parses an optional, right-associative
// assignment. The left side is parsed as the next level down; only when the
// lookahead turns out to be an assignment operator is it validated as an
// assignment target.
//
// AssignmentExpression
//
//	: LogicalORExpression
//	| LeftHandSideExpression AssignmentOperator AssignmentExpression
//	;
//
// Examples:
//
//	x = y = 42;    // parses as x = (y = 42)
//	s[i] += 1;
func (par *Parser) parseAssignmentExpression() (ExpressionNode, error) {
	left, err := par.parseLogicalORExpression()
	if err != nil {
		return nil, err
	}

	if !isAssignmentOperator(par.Lookahead.Type) {
		return left, nil
	}

	if !isValidAssignmentTarget(left) {
		return nil, &SyntaxError{
			Kind:   InvalidAssignmentTarget,
			Line:   par.Lookahead.Line,
			Column: par.Lookahead.Column,
		}
	}

	operator, err := par.parseAssignmentOperator()
	if err != nil {
		return nil, err
	}
	right, err := par.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}

	return &AssignmentExpressionNode{
		NodeType: "AssignmentExpression",
		Operator: operator.Literal,
		Left:     left,
		Right:    right,
	}, nil
}

// isAssignmentOperator reports whether the token type is '=' or one of the
// compound assignment operators.
func isAssignmentOperator(tokenType lexer.TokenType) bool {
	return tokenType == lexer.SIMPLE_ASSIGN || tokenType == lexer.COMPLEX_ASSIGN
}

// isValidAssignmentTarget reports whether the node denotes a storage
// location: an identifier or a member expression.
func isValidAssignmentTarget(node ExpressionNode) bool {
	switch node.(type) {
	case *IdentifierNode, *MemberExpressionNode:
		return true
	}
	return false
}

// parseAssignmentOperator consumes the pending assignment operator token.
//
// AssignmentOperator
//
//	: SIMPLE_ASSIGN
//	| COMPLEX_ASSIGN
//	;
func (par *Parser) parseAssignmentOperator() (lexer.Token, error) {
	if par.Lookahead.Type == lexer.SIMPLE_ASSIGN {
		return par.consume(lexer.SIMPLE_ASSIGN)
	}
	return par.consume(lexer.COMPLEX_ASSIGN)
}

// parseBinaryLevel is the shared engine of all left-associative binary
// levels. It parses one operand with the next-tighter sub-parser, then
// keeps folding while the lookahead matches the level's operator family:
// consume the operator (capturing its lexeme), parse another operand, and
// wrap both in a fresh node with the previous result as the left child.
//
// Levels that build short-circuit operators pass logical=true and get
// LogicalExpression nodes; all others get BinaryExpression nodes.
func (par *Parser) parseBinaryLevel(next parseFunc, operator lexer.TokenType, logical bool) (ExpressionNode, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for par.Lookahead.Type == operator {
		opToken, err := par.consume(operator)
		if err != nil {
			return nil, err
		}
		right, err := next()
		if err != nil {
			return nil, err
		}

		if logical {
			left = &LogicalExpressionNode{
				NodeType: "LogicalExpression",
				Operator: opToken.Literal,
				Left:     left,
				Right:    right,
			}
		} else {
			left = &BinaryExpressionNode{
				NodeType: "BinaryExpression",
				Operator: opToken.Literal,
				Left:     left,
				Right:    right,
			}
		}
	}
	return left, nil
}

// parseLogicalORExpression parses the '||' level.
//
// LogicalORExpression
//
//	: LogicalANDExpression
//	| LogicalORExpression '||' LogicalANDExpression
//	;
func (par *Parser) parseLogicalORExpression() (ExpressionNode, error) {
	return par.parseBinaryLevel(par.parseLogicalANDExpression, lexer.OR_OP, true)
}

// parseLogicalANDExpression parses the '&&' level.
//
// LogicalANDExpression
//
//	: EqualityExpression
//	| LogicalANDExpression '&&' EqualityExpression
//	;
func (par *Parser) parseLogicalANDExpression() (ExpressionNode, error) {
	return par.parseBinaryLevel(par.parseEqualityExpression, lexer.AND_OP, true)
}

// parseEqualityExpression parses the '==' / '!=' level.
//
// EqualityExpression
//
//	: RelationalExpression
//	| EqualityExpression EQUALITY_OPERATOR RelationalExpression
//	;
func (par *Parser) parseEqualityExpression() (ExpressionNode, error) {
	return par.parseBinaryLevel(par.parseRelationalExpression, lexer.EQUALITY_OP, false)
}

// parseRelationalExpression parses the '<' / '<=' / '>' / '>=' level.
//
// RelationalExpression
//
//	: AdditiveExpression
//	| RelationalExpression RELATIONAL_OPERATOR AdditiveExpression
//	;
func (par *Parser) parseRelationalExpression() (ExpressionNode, error) {
	return par.parseBinaryLevel(par.parseAdditiveExpression, lexer.RELATIONAL_OP, false)
}

// parseAdditiveExpression parses the '+' / '-' level.
//
// AdditiveExpression
//
//	: MultiplicativeExpression
//	| AdditiveExpression ADDITIVE_OPERATOR MultiplicativeExpression
//	;
func (par *Parser) parseAdditiveExpression() (ExpressionNode, error) {
	return par.parseBinaryLevel(par.parseMultiplicativeExpression, lexer.ADDITIVE_OP, false)
}

// parseMultiplicativeExpression parses the '*' / '/' level.
//
// MultiplicativeExpression
//
//	: UnaryExpression
//	| MultiplicativeExpression MULTIPLICATIVE_OPERATOR UnaryExpression
//	;
func (par *Parser) parseMultiplicativeExpression() (ExpressionNode, error) {
	return par.parseBinaryLevel(par.parseUnaryExpression, lexer.MULTIPLICATIVE_OP, false)
}

// parseUnaryExpression parses prefix operators. Unary operators nest, so
// the operand is parsed as another unary expression; -x * y therefore
// groups as (-x) * y.
//
// UnaryExpression
//
//	: LeftHandSideExpression
//	| ADDITIVE_OPERATOR UnaryExpression
//	| '!' UnaryExpression
//	;
func (par *Parser) parseUnaryExpression() (ExpressionNode, error) {
	var operator lexer.Token
	var err error

	switch par.Lookahead.Type {
	case lexer.ADDITIVE_OP:
		operator, err = par.consume(lexer.ADDITIVE_OP)
	case lexer.NOT_OP:
		operator, err = par.consume(lexer.NOT_OP)
	default:
		return par.parseLeftHandSideExpression()
	}
	if err != nil {
		return nil, err
	}

	argument, err := par.parseUnaryExpression()
	if err != nil {
		return nil, err
	}
	return &UnaryExpressionNode{
		NodeType: "UnaryExpression",
		Operator: operator.Literal,
		Argument: argument,
	}, nil
}

// parseLeftHandSideExpression parses the tightest expression level: call
// and member chains.
//
// LeftHandSideExpression
//
//	: CallMemberExpression
//	;
func (par *Parser) parseLeftHandSideExpression() (ExpressionNode, error) {
	return par.parseCallMemberExpression()
}

// parseCallMemberExpression parses a member expression optionally extended
// into a call chain. 'super' is special: it must be the head of a call.
//
// CallMemberExpression
//
//	: MemberExpression
//	| CallExpression
//	| Super Arguments
//	;
func (par *Parser) parseCallMemberExpression() (ExpressionNode, error) {
	if par.Lookahead.Type == lexer.SUPER_KEY {
		super, err := par.parseSuperExpression()
		if err != nil {
			return nil, err
		}
		return par.parseCallExpression(super)
	}

	member, err := par.parseMemberExpression()
	if err != nil {
		return nil, err
	}
	if par.Lookahead.Type == lexer.LEFT_PAREN {
		return par.parseCallExpression(member)
	}
	return member, nil
}

// parseCallExpression extends the callee with an argument list, then keeps
// extending the result while the lookahead continues the chain: another
// call, a static member access, or a computed member access. This flattens
// the grammar's recursive CallExpression production into a loop, so
// f(1)(2).g[0](3) parses in a single pass.
//
// CallExpression
//
//	: Callee Arguments
//	;
func (par *Parser) parseCallExpression(callee ExpressionNode) (ExpressionNode, error) {
	arguments, err := par.parseArguments()
	if err != nil {
		return nil, err
	}

	var expression ExpressionNode = &CallExpressionNode{
		NodeType:  "CallExpression",
		Callee:    callee,
		Arguments: arguments,
	}

	for {
		switch par.Lookahead.Type {
		case lexer.LEFT_PAREN:
			arguments, err := par.parseArguments()
			if err != nil {
				return nil, err
			}
			expression = &CallExpressionNode{
				NodeType:  "CallExpression",
				Callee:    expression,
				Arguments: arguments,
			}
		case lexer.DOT_OP:
			if _, err := par.consume(lexer.DOT_OP); err != nil {
				return nil, err
			}
			property, err := par.parseIdentifier()
			if err != nil {
				return nil, err
			}
			expression = &MemberExpressionNode{
				NodeType: "MemberExpression",
				Computed: false,
				Object:   expression,
				Property: property,
			}
		case lexer.LEFT_BRACKET:
			if _, err := par.consume(lexer.LEFT_BRACKET); err != nil {
				return nil, err
			}
			property, err := par.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := par.consume(lexer.RIGHT_BRACKET); err != nil {
				return nil, err
			}
			expression = &MemberExpressionNode{
				NodeType: "MemberExpression",
				Computed: true,
				Object:   expression,
				Property: property,
			}
		default:
			return expression, nil
		}
	}
}

// parseArguments parses a parenthesized, possibly empty argument list.
//
// Arguments
//
//	: '(' OptArgumentList ')'
//	;
func (par *Parser) parseArguments() ([]ExpressionNode, error) {
	if _, err := par.consume(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}

	arguments := make([]ExpressionNode, 0)
	if par.Lookahead.Type != lexer.RIGHT_PAREN {
		list, err := par.parseArgumentList()
		if err != nil {
			return nil, err
		}
		arguments = list
	}

	if _, err := par.consume(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return arguments, nil
}

// parseArgumentList parses one or more comma-separated arguments. Each
// argument is an assignment expression, so f(x = 2) is valid.
//
// ArgumentList
//
//	: AssignmentExpression
//	| ArgumentList ',' AssignmentExpression
//	;
func (par *Parser) parseArgumentList() ([]ExpressionNode, error) {
	arguments := make([]ExpressionNode, 0)
	for {
		argument, err := par.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)

		if par.Lookahead.Type != lexer.COMMA_DELIM {
			break
		}
		if _, err := par.consume(lexer.COMMA_DELIM); err != nil {
			return nil, err
		}
	}
	return arguments, nil
}

// parseMemberExpression parses a primary expression extended by any number
// of static ('.') or computed ('[...]') member accesses.
//
// MemberExpression
//
//	: PrimaryExpression
//	| MemberExpression '.' Identifier
//	| MemberExpression '[' Expression ']'
//	;
//
// Examples:
//
//	point.x
//	matrix[i][j]
//	this.items[0].name
func (par *Parser) parseMemberExpression() (ExpressionNode, error) {
	object, err := par.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}

	for {
		switch par.Lookahead.Type {
		case lexer.DOT_OP:
			if _, err := par.consume(lexer.DOT_OP); err != nil {
				return nil, err
			}
			property, err := par.parseIdentifier()
			if err != nil {
				return nil, err
			}
			object = &MemberExpressionNode{
				NodeType: "MemberExpression",
				Computed: false,
				Object:   object,
				Property: property,
			}
		case lexer.LEFT_BRACKET:
			if _, err := par.consume(lexer.LEFT_BRACKET); err != nil {
				return nil, err
			}
			property, err := par.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := par.consume(lexer.RIGHT_BRACKET); err != nil {
				return nil, err
			}
			object = &MemberExpressionNode{
				NodeType: "MemberExpression",
				Computed: true,
				Object:   object,
				Property: property,
			}
		default:
			return object, nil
		}
	}
}

// parsePrimaryExpression parses the atoms of the expression grammar.
// Anything that is not a literal, a grouping, 'this' or 'new' must be an
// identifier; a non-identifier lookahead fails inside parseIdentifier with
// the position of the offending token.
//
// PrimaryExpression
//
//	: Literal
//	| ParenthesizedExpression
//	| Identifier
//	| ThisExpression
//	| NewExpression
//	;
func (par *Parser) parsePrimaryExpression() (ExpressionNode, error) {
	if isLiteralType(par.Lookahead.Type) {
		return par.parseLiteral()
	}

	switch par.Lookahead.Type {
	case lexer.LEFT_PAREN:
		return par.parseParenthesizedExpression()
	case lexer.THIS_KEY:
		return par.parseThisExpression()
	case lexer.NEW_KEY:
		return par.parseNewExpression()
	default:
		return par.parseIdentifier()
	}
}

// parseParenthesizedExpression parses a grouping. Grouping affects only the
// tree shape, so the inner expression is returned as-is without a wrapper
// node.
//
// ParenthesizedExpression
//
//	: '(' Expression ')'
//	;
func (par *Parser) parseParenthesizedExpression() (ExpressionNode, error) {
	if _, err := par.consume(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	expression, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	return expression, nil
}
