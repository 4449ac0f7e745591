/*
File    : go-letter/parser/print_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"bytes"
	"fmt"
	"strconv"
)

// INDENT_SIZE is the number of spaces per tree level.
const INDENT_SIZE = 4

// TreeVisitor is a NodeVisitor that renders the AST as an indented tree,
// one node per line. It is used by the REPL's tree mode and for debug
// output; the serialized (YAML/JSON) form comes from the dump package
// instead.
type TreeVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent writes the current indentation prefix.
func (p *TreeVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one indented line for the node currently being visited.
func (p *TreeVisitor) line(format string, args ...any) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteString("\n")
}

// children visits each child one level deeper.
func (p *TreeVisitor) children(nodes ...Node) {
	p.Indent += INDENT_SIZE
	for _, node := range nodes {
		if node == nil {
			p.line("null")
			continue
		}
		node.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// String returns the rendered tree.
func (p *TreeVisitor) String() string {
	return p.Buf.String()
}

// VisitProgramNode visits the root node.
func (p *TreeVisitor) VisitProgramNode(node *ProgramNode) {
	p.line("Program")
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Body {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitEmptyStatementNode visits an empty statement.
func (p *TreeVisitor) VisitEmptyStatementNode(node *EmptyStatementNode) {
	p.line("EmptyStatement")
}

// VisitBlockStatementNode visits a block and its statements.
func (p *TreeVisitor) VisitBlockStatementNode(node *BlockStatementNode) {
	p.line("BlockStatement")
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Body {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitExpressionStatementNode visits an expression statement.
func (p *TreeVisitor) VisitExpressionStatementNode(node *ExpressionStatementNode) {
	p.line("ExpressionStatement")
	p.children(node.Expression)
}

// VisitVariableStatementNode visits a variable statement.
func (p *TreeVisitor) VisitVariableStatementNode(node *VariableStatementNode) {
	p.line("VariableStatement")
	p.Indent += INDENT_SIZE
	for _, declaration := range node.Declarations {
		declaration.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitVariableDeclarationNode visits a single declarator.
func (p *TreeVisitor) VisitVariableDeclarationNode(node *VariableDeclarationNode) {
	p.line("VariableDeclaration")
	if node.Init == nil {
		p.children(node.Id)
		return
	}
	p.children(node.Id, node.Init)
}

// VisitIfStatementNode visits a conditional.
func (p *TreeVisitor) VisitIfStatementNode(node *IfStatementNode) {
	p.line("IfStatement")
	if node.Alternate == nil {
		p.children(node.Test, node.Consequent)
		return
	}
	p.children(node.Test, node.Consequent, node.Alternate)
}

// VisitWhileStatementNode visits a while loop.
func (p *TreeVisitor) VisitWhileStatementNode(node *WhileStatementNode) {
	p.line("WhileStatement")
	p.children(node.Test, node.Body)
}

// VisitDoWhileStatementNode visits a do-while loop.
func (p *TreeVisitor) VisitDoWhileStatementNode(node *DoWhileStatementNode) {
	p.line("DoWhileStatement")
	p.children(node.Test, node.Body)
}

// VisitForStatementNode visits a for loop; empty header slots print as null.
func (p *TreeVisitor) VisitForStatementNode(node *ForStatementNode) {
	p.line("ForStatement")
	p.Indent += INDENT_SIZE
	if node.Init == nil {
		p.line("null")
	} else {
		node.Init.Accept(p)
	}
	if node.Test == nil {
		p.line("null")
	} else {
		node.Test.Accept(p)
	}
	if node.Update == nil {
		p.line("null")
	} else {
		node.Update.Accept(p)
	}
	node.Body.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitFunctionDeclarationNode visits a function declaration.
func (p *TreeVisitor) VisitFunctionDeclarationNode(node *FunctionDeclarationNode) {
	p.line("FunctionDeclaration (%s)", node.Name.Name)
	p.Indent += INDENT_SIZE
	for _, param := range node.Params {
		param.Accept(p)
	}
	node.Body.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitReturnStatementNode visits a return statement.
func (p *TreeVisitor) VisitReturnStatementNode(node *ReturnStatementNode) {
	p.line("ReturnStatement")
	if node.Argument != nil {
		p.children(node.Argument)
	}
}

// VisitClassDeclarationNode visits a class declaration.
func (p *TreeVisitor) VisitClassDeclarationNode(node *ClassDeclarationNode) {
	if node.SuperClass != nil {
		p.line("ClassDeclaration (%s extends %s)", node.Id.Name, node.SuperClass.Name)
	} else {
		p.line("ClassDeclaration (%s)", node.Id.Name)
	}
	p.children(node.Body)
}

// VisitBinaryExpressionNode visits a binary expression.
func (p *TreeVisitor) VisitBinaryExpressionNode(node *BinaryExpressionNode) {
	p.line("BinaryExpression (%s)", node.Operator)
	p.children(node.Left, node.Right)
}

// VisitLogicalExpressionNode visits a logical expression.
func (p *TreeVisitor) VisitLogicalExpressionNode(node *LogicalExpressionNode) {
	p.line("LogicalExpression (%s)", node.Operator)
	p.children(node.Left, node.Right)
}

// VisitUnaryExpressionNode visits a unary expression.
func (p *TreeVisitor) VisitUnaryExpressionNode(node *UnaryExpressionNode) {
	p.line("UnaryExpression (%s)", node.Operator)
	p.children(node.Argument)
}

// VisitAssignmentExpressionNode visits an assignment.
func (p *TreeVisitor) VisitAssignmentExpressionNode(node *AssignmentExpressionNode) {
	p.line("AssignmentExpression (%s)", node.Operator)
	p.children(node.Left, node.Right)
}

// VisitMemberExpressionNode visits a member access.
func (p *TreeVisitor) VisitMemberExpressionNode(node *MemberExpressionNode) {
	p.line("MemberExpression (computed=%t)", node.Computed)
	p.children(node.Object, node.Property)
}

// VisitCallExpressionNode visits a call and its arguments.
func (p *TreeVisitor) VisitCallExpressionNode(node *CallExpressionNode) {
	p.line("CallExpression")
	p.Indent += INDENT_SIZE
	node.Callee.Accept(p)
	for _, argument := range node.Arguments {
		argument.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitNewExpressionNode visits an instantiation and its arguments.
func (p *TreeVisitor) VisitNewExpressionNode(node *NewExpressionNode) {
	p.line("NewExpression")
	p.Indent += INDENT_SIZE
	node.Callee.Accept(p)
	for _, argument := range node.Arguments {
		argument.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitThisExpressionNode visits 'this'.
func (p *TreeVisitor) VisitThisExpressionNode(node *ThisExpressionNode) {
	p.line("ThisExpression")
}

// VisitSuperNode visits 'super'.
func (p *TreeVisitor) VisitSuperNode(node *SuperNode) {
	p.line("Super")
}

// VisitIdentifierNode visits an identifier.
func (p *TreeVisitor) VisitIdentifierNode(node *IdentifierNode) {
	p.line("Identifier (%s)", node.Name)
}

// VisitNumericLiteralNode visits an integer literal.
func (p *TreeVisitor) VisitNumericLiteralNode(node *NumericLiteralNode) {
	p.line("NumericLiteral (%d)", node.Value)
}

// VisitStringLiteralNode visits a string literal.
func (p *TreeVisitor) VisitStringLiteralNode(node *StringLiteralNode) {
	p.line("StringLiteral (%s)", strconv.Quote(node.Value))
}

// VisitBooleanLiteralNode visits a boolean literal.
func (p *TreeVisitor) VisitBooleanLiteralNode(node *BooleanLiteralNode) {
	p.line("BooleanLiteral (%t)", node.Value)
}

// VisitNullLiteralNode visits the null literal.
func (p *TreeVisitor) VisitNullLiteralNode(node *NullLiteralNode) {
	p.line("NullLiteral")
}
