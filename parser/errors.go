/*
File    : go-letter/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-letter/lexer"
)

// ErrorKind discriminates the members of the single syntax-error family
// shared by the lexer and the parser.
type ErrorKind int

const (
	// UnexpectedChar: the lexer could not match any rule at the cursor.
	UnexpectedChar ErrorKind = iota
	// UnexpectedEOF: the parser needed another token but the input ended.
	UnexpectedEOF
	// UnexpectedToken: the lookahead did not have the expected type.
	UnexpectedToken
	// UnexpectedLiteral: a literal was required but the lookahead is none of
	// NUMBER, STRING, true, false, null.
	UnexpectedLiteral
	// InvalidAssignmentTarget: the left side of an assignment is neither an
	// identifier nor a member expression.
	InvalidAssignmentTarget
)

// SyntaxError is the error value produced by a failed parse. Parsing is
// fail-fast: the first violation aborts the whole parse and is surfaced to
// the caller; there is no recovery and no multi-error reporting.
type SyntaxError struct {
	Kind     ErrorKind       // Which member of the family this is
	Got      lexer.Token     // The offending token (UnexpectedToken, UnexpectedLiteral)
	Expected lexer.TokenType // The token type the parser wanted (UnexpectedToken, UnexpectedEOF)
	Char     byte            // The unmatched character (UnexpectedChar)
	Offset   int             // Byte offset of the unmatched character (UnexpectedChar)
	Line     int             // Line of the failure (1-indexed)
	Column   int             // Column of the failure (1-indexed)
}

// Error implements the error interface with the same position-first
// message shape the REPL and CLI render to users.
func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("[%d:%d] SYNTAX ERROR: unexpected character %q", e.Line, e.Column, string(e.Char))
	case UnexpectedEOF:
		return fmt.Sprintf("[%d:%d] SYNTAX ERROR: unexpected end of input, expected %s", e.Line, e.Column, e.Expected)
	case UnexpectedToken:
		return fmt.Sprintf("[%d:%d] SYNTAX ERROR: unexpected token %q (%s), expected %s",
			e.Line, e.Column, e.Got.Literal, e.Got.Type, e.Expected)
	case UnexpectedLiteral:
		return fmt.Sprintf("[%d:%d] SYNTAX ERROR: unexpected literal production, got %q (%s)",
			e.Line, e.Column, e.Got.Literal, e.Got.Type)
	case InvalidAssignmentTarget:
		return fmt.Sprintf("[%d:%d] SYNTAX ERROR: invalid left-hand side in assignment expression", e.Line, e.Column)
	}
	return fmt.Sprintf("[%d:%d] SYNTAX ERROR", e.Line, e.Column)
}

// unexpectedEOF builds the error for a parse that ran off the end of the
// input while expecting the given token type.
func (par *Parser) unexpectedEOF(expected lexer.TokenType) *SyntaxError {
	return &SyntaxError{
		Kind:     UnexpectedEOF,
		Expected: expected,
		Line:     par.Lookahead.Line,
		Column:   par.Lookahead.Column,
	}
}

// unexpectedToken builds the error for a lookahead of the wrong type.
func (par *Parser) unexpectedToken(got lexer.Token, expected lexer.TokenType) *SyntaxError {
	return &SyntaxError{
		Kind:     UnexpectedToken,
		Got:      got,
		Expected: expected,
		Line:     got.Line,
		Column:   got.Column,
	}
}

// unexpectedLiteral builds the error for a non-literal token in literal
// position.
func (par *Parser) unexpectedLiteral(got lexer.Token) *SyntaxError {
	return &SyntaxError{
		Kind:   UnexpectedLiteral,
		Got:    got,
		Line:   got.Line,
		Column: got.Column,
	}
}

// wrapLexerError converts the lexer's failure value into the shared
// syntax-error family, preserving the offending character and position.
func wrapLexerError(err error) error {
	if lexErr, ok := err.(*lexer.Error); ok {
		return &SyntaxError{
			Kind:   UnexpectedChar,
			Char:   lexErr.Char,
			Offset: lexErr.Offset,
			Line:   lexErr.Line,
			Column: lexErr.Column,
		}
	}
	return err
}
