/*
File    : go-letter/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"
	"strings"
)

// Lexer performs lexical analysis (tokenization) of Letter source code.
// It works through the pre-compiled rule table in rules.go: on every call to
// NextToken it takes the remaining suffix of the source, tries each rule in
// priority order, and consumes the first match. Skip rules (whitespace,
// comments) are consumed silently and the scan continues with the next rule
// pass.
//
// The lexer has no knowledge of the grammar; the parser drives it one token
// at a time (pull model).
//
// Fields:
//   - Src: The complete source code as a string
//   - Cursor: The current byte offset into the source (0-indexed)
//   - SrcLength: The total length of the source string
//   - Line: The current line number in the source (1-indexed)
//   - Column: The current column number in the source (1-indexed)
type Lexer struct {
	Src       string // Entire source code in plain text format
	Cursor    int    // Current byte offset into the source code
	SrcLength int    // Length of source string
	Line      int    // Line number in source (1-indexed)
	Column    int    // Column number in source (1-indexed)
}

// Error is the lexer's failure value: no rule matched the character at the
// cursor. It carries the offending character and its position so the
// surrounding tool can render a precise diagnostic.
type Error struct {
	Char   byte // The character no rule could match
	Offset int  // Byte offset of the character in the source
	Line   int  // Line number (1-indexed)
	Column int  // Column number (1-indexed)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] LEXER ERROR: unexpected character %q", e.Line, e.Column, string(e.Char))
}

// NewLexer creates and initializes a new Lexer for the given source code.
// Position tracking starts at line 1, column 1.
//
// Example:
//
//	lex := NewLexer("let x = 42;")
func NewLexer(src string) Lexer {
	return Lexer{
		Src:       src,
		Cursor:    0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
}

// HasMoreTokens reports whether any input remains past the cursor.
// Trailing whitespace or comments still count as "more" here; NextToken
// resolves them to an EOF token.
func (lex *Lexer) HasMoreTokens() bool {
	return lex.Cursor < lex.SrcLength
}

// NextToken retrieves the next token from the source code stream.
// It tries every rule of the lexical grammar in priority order against the
// remaining input. Matches of skip rules (whitespace and comments) are
// consumed and the scan restarts; the first real match is returned as a
// token carrying the verbatim lexeme and its start position.
//
// Returns:
//   - A token of type EOF_TYPE once the input is fully consumed
//   - An *Error if the remaining input is non-empty and no rule matches
//
// Example:
//
//	tok, err := lex.NextToken()  // first token
//	tok, err = lex.NextToken()   // second token, etc.
func (lex *Lexer) NextToken() (Token, error) {
	for {
		if !lex.HasMoreTokens() {
			return NewTokenWithMetadata(EOF_TYPE, "", lex.Line, lex.Column), nil
		}

		rest := lex.Src[lex.Cursor:]
		matched := false

		for _, r := range rules {
			lexeme := matchRule(r, rest)
			if lexeme == "" {
				continue
			}

			line, column := lex.Line, lex.Column
			lex.advance(lexeme)

			if r.skip {
				// Whitespace or comment: consume and rescan
				matched = true
				break
			}
			return NewTokenWithMetadata(r.kind, lexeme, line, column), nil
		}

		if !matched {
			return Token{}, &Error{
				Char:   rest[0],
				Offset: lex.Cursor,
				Line:   lex.Line,
				Column: lex.Column,
			}
		}
	}
}

// matchRule applies a single rule's anchored pattern to the remaining input
// and returns the matched lexeme, or "" when the rule does not apply.
// The patterns are anchored with '^' so only a match at the cursor counts;
// the regexp engine never scans ahead into the rest of the input.
func matchRule(r rule, rest string) string {
	loc := r.pattern.FindStringIndex(rest)
	if loc == nil {
		return ""
	}
	return rest[:loc[1]]
}

// advance moves the cursor past the given lexeme and updates line/column
// tracking. Newlines inside the lexeme (multi-line comments, whitespace
// runs) reset the column counter.
func (lex *Lexer) advance(lexeme string) {
	lex.Cursor += len(lexeme)

	if n := strings.Count(lexeme, "\n"); n > 0 {
		lex.Line += n
		lex.Column = len(lexeme) - strings.LastIndexByte(lexeme, '\n')
	} else {
		lex.Column += len(lexeme)
	}
}

// ConsumeTokens tokenizes the entire source code and returns all tokens.
// It repeatedly calls NextToken until EOF is reached, collecting all tokens
// into a slice. This is useful for batch processing or debugging.
//
// Example:
//
//	lex := NewLexer("let x = 42;")
//	tokens, err := lex.ConsumeTokens()
//	// tokens contains: [LET_KEY, IDENTIFIER_ID, SIMPLE_ASSIGN, NUMBER_LIT, SEMICOLON_DELIM]
func (lex *Lexer) ConsumeTokens() ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		token, err := lex.NextToken()
		if err != nil {
			return tokens, err
		}
		if token.Type == EOF_TYPE {
			break
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}
