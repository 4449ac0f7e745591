/*
File    : go-letter/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a recursive-descent parser for the Letter
programming language.

The parser converts the token stream produced by the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (binary, logical, unary, assignment, literals, identifiers)
- Statements (declarations, blocks, control flow)
- Functions (declarations, calls, member access chains)
- Classes (declarations, extends, new, this, super)
- Operator precedence and associativity

Key Features:
- Single-token lookahead: the grammar is fully predictive, so the next
  token alone decides every production
- Stratified precedence: one method per precedence level, no operator
  tables needed
- Fail-fast errors: the first syntax violation aborts the parse and is
  returned to the caller as a *SyntaxError

The resulting AST is pure data: a tree of tagged records with literal
attributes, constructed bottom-up and never mutated after Parse returns.
*/
package parser

import (
	"github.com/akashmaji946/go-letter/lexer"
)

// Parser represents the parser state. It owns a lexer over the source text
// and a single cached lookahead token for the duration of a Parse call.
//
// A Parser is not safe for concurrent use, but a single instance may be
// reused sequentially: every Parse call fully resets the lexer cursor and
// the lookahead cache.
type Parser struct {
	Src       string      // Source code being parsed
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	Lookahead lexer.Token // The one cached, not-yet-consumed token
}

// NewParser creates a new Parser for the given source code.
// Call Parse() to run the parse.
//
// Example:
//
//	par := NewParser("let x = 42;")
//	root, err := par.Parse()
func NewParser(src string) *Parser {
	return &Parser{
		Src: src,
	}
}

// Parse is a convenience wrapper: parse the given source text in one call.
func Parse(src string) (*ProgramNode, error) {
	return NewParser(src).Parse()
}

// Parse converts the parser's source code into an AST. It resets the lexer,
// primes the single-token lookahead and descends the grammar from the
// program production.
//
// Returns the root ProgramNode on success. On the first syntax violation it
// returns a *SyntaxError and a nil root; there is no error recovery.
func (par *Parser) Parse() (*ProgramNode, error) {
	par.Lex = lexer.NewLexer(par.Src)

	// Prime the lookahead with the first token
	token, err := par.Lex.NextToken()
	if err != nil {
		return nil, wrapLexerError(err)
	}
	par.Lookahead = token

	return par.parseProgram()
}

// parseProgram parses the root production.
//
// Program
//
//	: StatementList
//	;
//
// A program must contain at least one statement; empty input fails with an
// unexpected-end-of-input error from the first statement's descent.
func (par *Parser) parseProgram() (*ProgramNode, error) {
	body, err := par.parseStatementList(lexer.EOF_TYPE)
	if err != nil {
		return nil, err
	}
	return &ProgramNode{NodeType: "Program", Body: body}, nil
}

// consume verifies that the cached lookahead has the expected type, returns
// it, and refills the cache from the lexer.
//
// Fails with UnexpectedEOF when the input already ended and with
// UnexpectedToken when the lookahead's type does not match.
func (par *Parser) consume(expected lexer.TokenType) (lexer.Token, error) {
	token := par.Lookahead

	if token.Type == lexer.EOF_TYPE {
		return token, par.unexpectedEOF(expected)
	}
	if token.Type != expected {
		return token, par.unexpectedToken(token, expected)
	}

	// Refill the lookahead cache
	next, err := par.Lex.NextToken()
	if err != nil {
		return token, wrapLexerError(err)
	}
	par.Lookahead = next

	return token, nil
}
