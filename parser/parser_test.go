/*
File    : go-letter/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseOne parses src and returns the single top-level statement.
func parseOne(t *testing.T, src string) StatementNode {
	t.Helper()

	root, err := Parse(src)
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Equal(t, "Program", root.NodeType)
	require.Equal(t, 1, len(root.Body))
	return root.Body[0]
}

// unwrapExpression parses src and unwraps the expression of the single
// expression statement it must contain.
func unwrapExpression(t *testing.T, src string) ExpressionNode {
	t.Helper()

	stmt, can := parseOne(t, src).(*ExpressionStatementNode)
	require.True(t, can)
	assert.Equal(t, "ExpressionStatement", stmt.NodeType)
	return stmt.Expression
}

func TestParser_Parse_NumericLiteral(t *testing.T) {
	exp, can := unwrapExpression(t, `42;`).(*NumericLiteralNode)
	require.True(t, can)
	assert.Equal(t, "NumericLiteral", exp.NodeType)
	assert.Equal(t, 42, exp.Value)
	assert.Equal(t, "42", exp.Literal())
}

func TestParser_Parse_StringLiteral(t *testing.T) {
	exp, can := unwrapExpression(t, `'hello';`).(*StringLiteralNode)
	require.True(t, can)
	assert.Equal(t, "StringLiteral", exp.NodeType)
	// Quotes are stripped from the node value
	assert.Equal(t, "hello", exp.Value)

	exp, can = unwrapExpression(t, `"hello, world";`).(*StringLiteralNode)
	require.True(t, can)
	assert.Equal(t, "hello, world", exp.Value)
}

func TestParser_Parse_BooleanAndNullLiterals(t *testing.T) {
	boolean, can := unwrapExpression(t, `true;`).(*BooleanLiteralNode)
	require.True(t, can)
	assert.Equal(t, "BooleanLiteral", boolean.NodeType)
	assert.Equal(t, true, boolean.Value)

	boolean, can = unwrapExpression(t, `false;`).(*BooleanLiteralNode)
	require.True(t, can)
	assert.Equal(t, false, boolean.Value)

	null, can := unwrapExpression(t, `null;`).(*NullLiteralNode)
	require.True(t, can)
	assert.Equal(t, "NullLiteral", null.NodeType)
	assert.Nil(t, null.Value)
}

func TestParser_Parse_Identifier(t *testing.T) {
	exp, can := unwrapExpression(t, `lettuce;`).(*IdentifierNode)
	require.True(t, can)
	assert.Equal(t, "Identifier", exp.NodeType)
	assert.Equal(t, "lettuce", exp.Name)
}

func TestParser_Parse_AdditionWithPrecedence(t *testing.T) {
	// 2 + 2 * 3 parses as 2 + (2 * 3)
	exp, can := unwrapExpression(t, `2 + 2 * 3;`).(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "+", exp.Operator)

	left, can := exp.Left.(*NumericLiteralNode)
	require.True(t, can)
	assert.Equal(t, 2, left.Value)

	right, can := exp.Right.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "*", right.Operator)
	assert.Equal(t, 2, right.Left.(*NumericLiteralNode).Value)
	assert.Equal(t, 3, right.Right.(*NumericLiteralNode).Value)
}

func TestParser_Parse_MultiplicationAfterAddition(t *testing.T) {
	// a * b + c parses as (a * b) + c
	exp, can := unwrapExpression(t, `2 * 3 + 1;`).(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "+", exp.Operator)

	left, can := exp.Left.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "*", left.Operator)
	assert.Equal(t, 1, exp.Right.(*NumericLiteralNode).Value)
}

func TestParser_Parse_LeftAssociativity(t *testing.T) {
	// a - b - c parses as (a - b) - c
	exp, can := unwrapExpression(t, `9 - 5 - 2;`).(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "-", exp.Operator)

	left, can := exp.Left.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "-", left.Operator)
	assert.Equal(t, 9, left.Left.(*NumericLiteralNode).Value)
	assert.Equal(t, 5, left.Right.(*NumericLiteralNode).Value)
	assert.Equal(t, 2, exp.Right.(*NumericLiteralNode).Value)
}

func TestParser_Parse_ParenthesizedGrouping(t *testing.T) {
	// (2 + 2) * 3 parses as (2 + 2) * 3 with no wrapper node
	exp, can := unwrapExpression(t, `(2 + 2) * 3;`).(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "*", exp.Operator)

	left, can := exp.Left.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "+", left.Operator)
	assert.Equal(t, 3, exp.Right.(*NumericLiteralNode).Value)
}

func TestParser_Parse_UnaryExpressions(t *testing.T) {
	// !x
	not, can := unwrapExpression(t, `!x;`).(*UnaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "UnaryExpression", not.NodeType)
	assert.Equal(t, "!", not.Operator)
	assert.Equal(t, "x", not.Argument.(*IdentifierNode).Name)

	// -x * y parses as (-x) * y
	mul, can := unwrapExpression(t, `-x * y;`).(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "*", mul.Operator)
	neg, can := mul.Left.(*UnaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "-", neg.Operator)

	// Unary operators nest
	nested, can := unwrapExpression(t, `!!true;`).(*UnaryExpressionNode)
	require.True(t, can)
	inner, can := nested.Argument.(*UnaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, true, inner.Argument.(*BooleanLiteralNode).Value)
}

func TestParser_Parse_RelationalAndEquality(t *testing.T) {
	// a == b < c parses as a == (b < c)
	exp, can := unwrapExpression(t, `a == b < c;`).(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "==", exp.Operator)

	right, can := exp.Right.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "<", right.Operator)
}

func TestParser_Parse_LogicalPrecedence(t *testing.T) {
	// a || b && c parses as a || (b && c)
	exp, can := unwrapExpression(t, `a || b && c;`).(*LogicalExpressionNode)
	require.True(t, can)
	assert.Equal(t, "LogicalExpression", exp.NodeType)
	assert.Equal(t, "||", exp.Operator)

	right, can := exp.Right.(*LogicalExpressionNode)
	require.True(t, can)
	assert.Equal(t, "&&", right.Operator)
}

func TestParser_Parse_ChainedAssignment(t *testing.T) {
	// x = y = 42 parses right-associatively as x = (y = 42)
	exp, can := unwrapExpression(t, `x = y = 42;`).(*AssignmentExpressionNode)
	require.True(t, can)
	assert.Equal(t, "AssignmentExpression", exp.NodeType)
	assert.Equal(t, "=", exp.Operator)
	assert.Equal(t, "x", exp.Left.(*IdentifierNode).Name)

	right, can := exp.Right.(*AssignmentExpressionNode)
	require.True(t, can)
	assert.Equal(t, "y", right.Left.(*IdentifierNode).Name)
	assert.Equal(t, 42, right.Right.(*NumericLiteralNode).Value)
}

func TestParser_Parse_CompoundAssignment(t *testing.T) {
	exp, can := unwrapExpression(t, `x += 1;`).(*AssignmentExpressionNode)
	require.True(t, can)
	assert.Equal(t, "+=", exp.Operator)
	assert.Equal(t, "x", exp.Left.(*IdentifierNode).Name)
	assert.Equal(t, 1, exp.Right.(*NumericLiteralNode).Value)
}

func TestParser_Parse_VariableStatement(t *testing.T) {
	stmt, can := parseOne(t, `let x = 42;`).(*VariableStatementNode)
	require.True(t, can)
	assert.Equal(t, "VariableStatement", stmt.NodeType)
	require.Equal(t, 1, len(stmt.Declarations))

	declaration := stmt.Declarations[0]
	assert.Equal(t, "VariableDeclaration", declaration.NodeType)
	assert.Equal(t, "x", declaration.Id.Name)
	assert.Equal(t, 42, declaration.Init.(*NumericLiteralNode).Value)
}

func TestParser_Parse_VariableStatementMixedInit(t *testing.T) {
	// let x, y = 42; declares x without an initializer and y with one
	stmt, can := parseOne(t, `let x, y = 42;`).(*VariableStatementNode)
	require.True(t, can)
	require.Equal(t, 2, len(stmt.Declarations))

	assert.Equal(t, "x", stmt.Declarations[0].Id.Name)
	assert.Nil(t, stmt.Declarations[0].Init)

	assert.Equal(t, "y", stmt.Declarations[1].Id.Name)
	assert.Equal(t, 42, stmt.Declarations[1].Init.(*NumericLiteralNode).Value)
}

func TestParser_Parse_Determinism(t *testing.T) {
	src := `let a = 1; if (a) { a += 2; } else a = 0;`

	first, err := Parse(src)
	require.NoError(t, err)
	second, err := Parse(src)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParser_Parse_WhitespaceAndCommentsDoNotMatter(t *testing.T) {
	compact, err := Parse(`let x=1;x+=2;`)
	require.NoError(t, err)

	spread, err := Parse(`
        // declare
        let x = 1 ;
        /* and
           bump */
        x += 2 ;
    `)
	require.NoError(t, err)

	assert.Equal(t, compact, spread)
}

func TestParser_Parse_ReusedParserInstance(t *testing.T) {
	par := NewParser(`1 + 2;`)

	first, err := par.Parse()
	require.NoError(t, err)
	second, err := par.Parse()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParser_Parse_MultipleStatements(t *testing.T) {
	root, err := Parse(`let x = 1; x += 2; x;`)
	require.NoError(t, err)
	require.Equal(t, 3, len(root.Body))

	_, can := root.Body[0].(*VariableStatementNode)
	assert.True(t, can)
	_, can = root.Body[1].(*ExpressionStatementNode)
	assert.True(t, can)
	_, can = root.Body[2].(*ExpressionStatementNode)
	assert.True(t, can)
}
