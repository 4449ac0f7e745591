/*
File    : go-letter/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"
	"strings"
)

// NodeVisitor implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling read-only operations like printing or transformation.
// The AST itself stays pure data; visitors never mutate nodes.
type NodeVisitor interface {
	VisitProgramNode(node *ProgramNode) // Entry point for visiting the entire program

	// Statement visitors
	VisitEmptyStatementNode(node *EmptyStatementNode)           // Lone semicolon: ;
	VisitBlockStatementNode(node *BlockStatementNode)           // Code blocks: { stmt1; stmt2; }
	VisitExpressionStatementNode(node *ExpressionStatementNode) // Expression followed by ';'
	VisitVariableStatementNode(node *VariableStatementNode)     // Declarations: let x, y = 42;
	VisitVariableDeclarationNode(node *VariableDeclarationNode) // Single declarator: y = 42
	VisitIfStatementNode(node *IfStatementNode)                 // Conditionals: if (cond) ... else ...
	VisitWhileStatementNode(node *WhileStatementNode)           // While loops: while (cond) body
	VisitDoWhileStatementNode(node *DoWhileStatementNode)       // Do-while loops: do body while (cond);
	VisitForStatementNode(node *ForStatementNode)               // For loops: for (init; test; update) body
	VisitFunctionDeclarationNode(node *FunctionDeclarationNode) // Functions: def name(params) { body }
	VisitReturnStatementNode(node *ReturnStatementNode)         // Return statements: return expr;
	VisitClassDeclarationNode(node *ClassDeclarationNode)       // Classes: class Point extends Shape { ... }

	// Expression visitors
	VisitBinaryExpressionNode(node *BinaryExpressionNode)         // Arithmetic/comparison: +, -, *, /, ==, <
	VisitLogicalExpressionNode(node *LogicalExpressionNode)       // Logical operations: &&, ||
	VisitUnaryExpressionNode(node *UnaryExpressionNode)           // Unary operations: +, -, !
	VisitAssignmentExpressionNode(node *AssignmentExpressionNode) // Assignments: x = 10, x += 1
	VisitMemberExpressionNode(node *MemberExpressionNode)         // Member access: obj.prop, obj[expr]
	VisitCallExpressionNode(node *CallExpressionNode)             // Calls: f(a, b)
	VisitNewExpressionNode(node *NewExpressionNode)               // Instantiation: new Point(1, 2)
	VisitThisExpressionNode(node *ThisExpressionNode)             // Current instance: this
	VisitSuperNode(node *SuperNode)                               // Superclass reference: super

	// Literal and identifier visitors
	VisitIdentifierNode(node *IdentifierNode)         // Names: x, myVar
	VisitNumericLiteralNode(node *NumericLiteralNode) // Integer literals: 42, 0
	VisitStringLiteralNode(node *StringLiteralNode)   // String literals: 'hello', "world"
	VisitBooleanLiteralNode(node *BooleanLiteralNode) // Boolean literals: true, false
	VisitNullLiteralNode(node *NullLiteralNode)       // Null literal: null
}

// Node: base interface for all nodes of the AST.
// Every node carries a fixed NodeType discriminator in its first struct
// field, so marshaling a node (JSON or YAML) yields a tagged record with
// "type" as the leading key and the remaining attributes in declaration
// order.
//
// Literal(): returns a source-like string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
type ExpressionNode interface {
	Node
	Expression()
}

// joinLiterals concatenates the Literal() of each node with the separator.
func joinLiterals[N Node](nodes []N, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		parts = append(parts, node.Literal())
	}
	return strings.Join(parts, sep)
}

// ProgramNode: the root of the AST. A program is a non-empty ordered
// sequence of statements.
type ProgramNode struct {
	NodeType string          `json:"type" yaml:"type"`
	Body     []StatementNode `json:"body" yaml:"body"`
}

func (node *ProgramNode) Literal() string {
	return joinLiterals(node.Body, " ")
}

func (node *ProgramNode) Accept(visitor NodeVisitor) {
	visitor.VisitProgramNode(node)
}

// EmptyStatementNode: a statement consisting of a lone semicolon.
type EmptyStatementNode struct {
	NodeType string `json:"type" yaml:"type"`
}

func (node *EmptyStatementNode) Literal() string {
	return ";"
}

func (node *EmptyStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitEmptyStatementNode(node)
}

func (node *EmptyStatementNode) Statement() {}

// BlockStatementNode: a brace-delimited sequence of statements.
// Unlike the program body, a block body may be empty.
type BlockStatementNode struct {
	NodeType string          `json:"type" yaml:"type"`
	Body     []StatementNode `json:"body" yaml:"body"`
}

func (node *BlockStatementNode) Literal() string {
	return "{ " + joinLiterals(node.Body, " ") + " }"
}

func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(node)
}

func (node *BlockStatementNode) Statement() {}

// ExpressionStatementNode: an expression in statement position, terminated
// by a semicolon.
type ExpressionStatementNode struct {
	NodeType   string         `json:"type" yaml:"type"`
	Expression ExpressionNode `json:"expression" yaml:"expression"`
}

func (node *ExpressionStatementNode) Literal() string {
	return node.Expression.Literal() + ";"
}

func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(node)
}

func (node *ExpressionStatementNode) Statement() {}

// VariableStatementNode: a 'let' statement with one or more declarators.
// Example: let x, y = 42;
type VariableStatementNode struct {
	NodeType     string                     `json:"type" yaml:"type"`
	Declarations []*VariableDeclarationNode `json:"declarations" yaml:"declarations"`
}

func (node *VariableStatementNode) Literal() string {
	return "let " + joinLiterals(node.Declarations, ", ") + ";"
}

func (node *VariableStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitVariableStatementNode(node)
}

func (node *VariableStatementNode) Statement() {}

// VariableDeclarationNode: a single declarator inside a variable statement.
// Init is nil when the declarator has no initializer.
type VariableDeclarationNode struct {
	NodeType string          `json:"type" yaml:"type"`
	Id       *IdentifierNode `json:"id" yaml:"id"`
	Init     ExpressionNode  `json:"init" yaml:"init"`
}

func (node *VariableDeclarationNode) Literal() string {
	if node.Init == nil {
		return node.Id.Literal()
	}
	return node.Id.Literal() + " = " + node.Init.Literal()
}

func (node *VariableDeclarationNode) Accept(visitor NodeVisitor) {
	visitor.VisitVariableDeclarationNode(node)
}

// IfStatementNode: a conditional with an optional alternate branch.
// Alternate is nil when there is no 'else'.
type IfStatementNode struct {
	NodeType   string         `json:"type" yaml:"type"`
	Test       ExpressionNode `json:"test" yaml:"test"`
	Consequent StatementNode  `json:"consequent" yaml:"consequent"`
	Alternate  StatementNode  `json:"alternate" yaml:"alternate"`
}

func (node *IfStatementNode) Literal() string {
	res := "if (" + node.Test.Literal() + ") " + node.Consequent.Literal()
	if node.Alternate != nil {
		res += " else " + node.Alternate.Literal()
	}
	return res
}

func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(node)
}

func (node *IfStatementNode) Statement() {}

// WhileStatementNode: a pre-tested loop.
type WhileStatementNode struct {
	NodeType string         `json:"type" yaml:"type"`
	Test     ExpressionNode `json:"test" yaml:"test"`
	Body     StatementNode  `json:"body" yaml:"body"`
}

func (node *WhileStatementNode) Literal() string {
	return "while (" + node.Test.Literal() + ") " + node.Body.Literal()
}

func (node *WhileStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileStatementNode(node)
}

func (node *WhileStatementNode) Statement() {}

// DoWhileStatementNode: a post-tested loop.
type DoWhileStatementNode struct {
	NodeType string         `json:"type" yaml:"type"`
	Test     ExpressionNode `json:"test" yaml:"test"`
	Body     StatementNode  `json:"body" yaml:"body"`
}

func (node *DoWhileStatementNode) Literal() string {
	return "do " + node.Body.Literal() + " while (" + node.Test.Literal() + ");"
}

func (node *DoWhileStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitDoWhileStatementNode(node)
}

func (node *DoWhileStatementNode) Statement() {}

// ForStatementNode: a C-style for loop. Init is either an expression, a
// *VariableStatementNode, or nil; Test and Update are nil when their slot
// is empty.
type ForStatementNode struct {
	NodeType string         `json:"type" yaml:"type"`
	Init     Node           `json:"init" yaml:"init"`
	Test     ExpressionNode `json:"test" yaml:"test"`
	Update   ExpressionNode `json:"update" yaml:"update"`
	Body     StatementNode  `json:"body" yaml:"body"`
}

func (node *ForStatementNode) Literal() string {
	res := "for ("
	if node.Init != nil {
		res += strings.TrimSuffix(node.Init.Literal(), ";")
	}
	res += "; "
	if node.Test != nil {
		res += node.Test.Literal()
	}
	res += "; "
	if node.Update != nil {
		res += node.Update.Literal()
	}
	return res + ") " + node.Body.Literal()
}

func (node *ForStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitForStatementNode(node)
}

func (node *ForStatementNode) Statement() {}

// FunctionDeclarationNode: a 'def' declaration with a parameter list and a
// block body.
type FunctionDeclarationNode struct {
	NodeType string              `json:"type" yaml:"type"`
	Name     *IdentifierNode     `json:"name" yaml:"name"`
	Params   []*IdentifierNode   `json:"params" yaml:"params"`
	Body     *BlockStatementNode `json:"body" yaml:"body"`
}

func (node *FunctionDeclarationNode) Literal() string {
	return "def " + node.Name.Literal() + "(" + joinLiterals(node.Params, ", ") + ") " + node.Body.Literal()
}

func (node *FunctionDeclarationNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionDeclarationNode(node)
}

func (node *FunctionDeclarationNode) Statement() {}

// ReturnStatementNode: returns an optional value from a function.
// Argument is nil for a bare 'return;'.
type ReturnStatementNode struct {
	NodeType string         `json:"type" yaml:"type"`
	Argument ExpressionNode `json:"argument" yaml:"argument"`
}

func (node *ReturnStatementNode) Literal() string {
	if node.Argument == nil {
		return "return;"
	}
	return "return " + node.Argument.Literal() + ";"
}

func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(node)
}

func (node *ReturnStatementNode) Statement() {}

// ClassDeclarationNode: a class with an optional superclass and a block
// body of member declarations. SuperClass is nil without 'extends'.
type ClassDeclarationNode struct {
	NodeType   string              `json:"type" yaml:"type"`
	Id         *IdentifierNode     `json:"id" yaml:"id"`
	SuperClass *IdentifierNode     `json:"superClass" yaml:"superClass"`
	Body       *BlockStatementNode `json:"body" yaml:"body"`
}

func (node *ClassDeclarationNode) Literal() string {
	res := "class " + node.Id.Literal()
	if node.SuperClass != nil {
		res += " extends " + node.SuperClass.Literal()
	}
	return res + " " + node.Body.Literal()
}

func (node *ClassDeclarationNode) Accept(visitor NodeVisitor) {
	visitor.VisitClassDeclarationNode(node)
}

func (node *ClassDeclarationNode) Statement() {}

// BinaryExpressionNode: an arithmetic, equality or relational operation
// with two operands. Example: 2 + 3, x == y, a < b
type BinaryExpressionNode struct {
	NodeType string         `json:"type" yaml:"type"`
	Operator string         `json:"operator" yaml:"operator"`
	Left     ExpressionNode `json:"left" yaml:"left"`
	Right    ExpressionNode `json:"right" yaml:"right"`
}

func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + node.Operator + node.Right.Literal()
}

func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(node)
}

func (node *BinaryExpressionNode) Expression() {}

// LogicalExpressionNode: a short-circuit logical operation (&& or ||).
type LogicalExpressionNode struct {
	NodeType string         `json:"type" yaml:"type"`
	Operator string         `json:"operator" yaml:"operator"`
	Left     ExpressionNode `json:"left" yaml:"left"`
	Right    ExpressionNode `json:"right" yaml:"right"`
}

func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operator + " " + node.Right.Literal()
}

func (node *LogicalExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLogicalExpressionNode(node)
}

func (node *LogicalExpressionNode) Expression() {}

// UnaryExpressionNode: a prefix operation with one operand.
// Example: -x, !flag, +5
type UnaryExpressionNode struct {
	NodeType string         `json:"type" yaml:"type"`
	Operator string         `json:"operator" yaml:"operator"`
	Argument ExpressionNode `json:"argument" yaml:"argument"`
}

func (node *UnaryExpressionNode) Literal() string {
	return node.Operator + node.Argument.Literal()
}

func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(node)
}

func (node *UnaryExpressionNode) Expression() {}

// AssignmentExpressionNode: a simple or compound assignment. The left side
// is always an identifier or a member expression; the parser rejects
// anything else before this node is built.
type AssignmentExpressionNode struct {
	NodeType string         `json:"type" yaml:"type"`
	Operator string         `json:"operator" yaml:"operator"`
	Left     ExpressionNode `json:"left" yaml:"left"`
	Right    ExpressionNode `json:"right" yaml:"right"`
}

func (node *AssignmentExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operator + " " + node.Right.Literal()
}

func (node *AssignmentExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentExpressionNode(node)
}

func (node *AssignmentExpressionNode) Expression() {}

// MemberExpressionNode: member access on an object. For static access
// (obj.name) Computed is false and Property is an identifier; for computed
// access (obj[expr]) Computed is true and Property is an arbitrary
// expression.
type MemberExpressionNode struct {
	NodeType string         `json:"type" yaml:"type"`
	Computed bool           `json:"computed" yaml:"computed"`
	Object   ExpressionNode `json:"object" yaml:"object"`
	Property ExpressionNode `json:"property" yaml:"property"`
}

func (node *MemberExpressionNode) Literal() string {
	if node.Computed {
		return node.Object.Literal() + "[" + node.Property.Literal() + "]"
	}
	return node.Object.Literal() + "." + node.Property.Literal()
}

func (node *MemberExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitMemberExpressionNode(node)
}

func (node *MemberExpressionNode) Expression() {}

// CallExpressionNode: a call with an argument list. The callee may itself
// be a member expression, another call, or 'super'.
type CallExpressionNode struct {
	NodeType  string           `json:"type" yaml:"type"`
	Callee    ExpressionNode   `json:"callee" yaml:"callee"`
	Arguments []ExpressionNode `json:"arguments" yaml:"arguments"`
}

func (node *CallExpressionNode) Literal() string {
	return node.Callee.Literal() + "(" + joinLiterals(node.Arguments, ", ") + ")"
}

func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(node)
}

func (node *CallExpressionNode) Expression() {}

// NewExpressionNode: object instantiation. The callee is an identifier or
// member expression naming the class.
type NewExpressionNode struct {
	NodeType  string           `json:"type" yaml:"type"`
	Callee    ExpressionNode   `json:"callee" yaml:"callee"`
	Arguments []ExpressionNode `json:"arguments" yaml:"arguments"`
}

func (node *NewExpressionNode) Literal() string {
	return "new " + node.Callee.Literal() + "(" + joinLiterals(node.Arguments, ", ") + ")"
}

func (node *NewExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitNewExpressionNode(node)
}

func (node *NewExpressionNode) Expression() {}

// ThisExpressionNode: the current instance inside a class body.
type ThisExpressionNode struct {
	NodeType string `json:"type" yaml:"type"`
}

func (node *ThisExpressionNode) Literal() string {
	return "this"
}

func (node *ThisExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitThisExpressionNode(node)
}

func (node *ThisExpressionNode) Expression() {}

// SuperNode: the superclass reference; only valid as the head of a call.
type SuperNode struct {
	NodeType string `json:"type" yaml:"type"`
}

func (node *SuperNode) Literal() string {
	return "super"
}

func (node *SuperNode) Accept(visitor NodeVisitor) {
	visitor.VisitSuperNode(node)
}

func (node *SuperNode) Expression() {}

// IdentifierNode: a user-defined name.
type IdentifierNode struct {
	NodeType string `json:"type" yaml:"type"`
	Name     string `json:"name" yaml:"name"`
}

func (node *IdentifierNode) Literal() string {
	return node.Name
}

func (node *IdentifierNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierNode(node)
}

func (node *IdentifierNode) Expression() {}

// NumericLiteralNode: a decimal integer literal.
type NumericLiteralNode struct {
	NodeType string `json:"type" yaml:"type"`
	Value    int    `json:"value" yaml:"value"`
}

func (node *NumericLiteralNode) Literal() string {
	return strconv.Itoa(node.Value)
}

func (node *NumericLiteralNode) Accept(visitor NodeVisitor) {
	visitor.VisitNumericLiteralNode(node)
}

func (node *NumericLiteralNode) Expression() {}

// StringLiteralNode: a string literal; Value holds the text between the
// quotes, with the quotes themselves stripped.
type StringLiteralNode struct {
	NodeType string `json:"type" yaml:"type"`
	Value    string `json:"value" yaml:"value"`
}

func (node *StringLiteralNode) Literal() string {
	return "'" + node.Value + "'"
}

func (node *StringLiteralNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringLiteralNode(node)
}

func (node *StringLiteralNode) Expression() {}

// BooleanLiteralNode: true or false.
type BooleanLiteralNode struct {
	NodeType string `json:"type" yaml:"type"`
	Value    bool   `json:"value" yaml:"value"`
}

func (node *BooleanLiteralNode) Literal() string {
	return strconv.FormatBool(node.Value)
}

func (node *BooleanLiteralNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralNode(node)
}

func (node *BooleanLiteralNode) Expression() {}

// NullLiteralNode: the null literal. Value is always nil; the field exists
// so the serialized record carries an explicit "value: null" attribute.
type NullLiteralNode struct {
	NodeType string `json:"type" yaml:"type"`
	Value    any    `json:"value" yaml:"value"`
}

func (node *NullLiteralNode) Literal() string {
	return "null"
}

func (node *NullLiteralNode) Accept(visitor NodeVisitor) {
	visitor.VisitNullLiteralNode(node)
}

func (node *NullLiteralNode) Expression() {}
