/*
File    : go-letter/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectTokens tokenizes src and compares the (type, literal) pairs.
func expectTokens(t *testing.T, src string, expected []Token) {
	t.Helper()

	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	require.NoError(t, err)
	require.Equal(t, len(expected), len(tokens), "token count for %q", src)

	for i, want := range expected {
		assert.Equal(t, want.Type, tokens[i].Type, "token %d of %q", i, src)
		assert.Equal(t, want.Literal, tokens[i].Literal, "token %d of %q", i, src)
	}
}

func TestLexer_Tokenize_Declaration(t *testing.T) {
	expectTokens(t, `let x = 42;`, []Token{
		NewToken(LET_KEY, "let"),
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(SIMPLE_ASSIGN, "="),
		NewToken(NUMBER_LIT, "42"),
		NewToken(SEMICOLON_DELIM, ";"),
	})
}

func TestLexer_Tokenize_KeywordBoundary(t *testing.T) {
	// A keyword prefix must not split an identifier
	expectTokens(t, `lettuce;`, []Token{
		NewToken(IDENTIFIER_ID, "lettuce"),
		NewToken(SEMICOLON_DELIM, ";"),
	})

	// Control-flow keywords as standalone words
	expectTokens(t, `do while for if else`, []Token{
		NewToken(DO_KEY, "do"),
		NewToken(WHILE_KEY, "while"),
		NewToken(FOR_KEY, "for"),
		NewToken(IF_KEY, "if"),
		NewToken(ELSE_KEY, "else"),
	})
}

func TestLexer_Tokenize_MultiCharOperatorsWinOverPrefixes(t *testing.T) {
	expectTokens(t, `a == b != c = d`, []Token{
		NewToken(IDENTIFIER_ID, "a"),
		NewToken(EQUALITY_OP, "=="),
		NewToken(IDENTIFIER_ID, "b"),
		NewToken(EQUALITY_OP, "!="),
		NewToken(IDENTIFIER_ID, "c"),
		NewToken(SIMPLE_ASSIGN, "="),
		NewToken(IDENTIFIER_ID, "d"),
	})

	expectTokens(t, `x += 1; x -= 1; x *= 2; x /= 2;`, []Token{
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(COMPLEX_ASSIGN, "+="),
		NewToken(NUMBER_LIT, "1"),
		NewToken(SEMICOLON_DELIM, ";"),
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(COMPLEX_ASSIGN, "-="),
		NewToken(NUMBER_LIT, "1"),
		NewToken(SEMICOLON_DELIM, ";"),
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(COMPLEX_ASSIGN, "*="),
		NewToken(NUMBER_LIT, "2"),
		NewToken(SEMICOLON_DELIM, ";"),
		NewToken(IDENTIFIER_ID, "x"),
		NewToken(COMPLEX_ASSIGN, "/="),
		NewToken(NUMBER_LIT, "2"),
		NewToken(SEMICOLON_DELIM, ";"),
	})

	expectTokens(t, `a >= b <= c > d < e`, []Token{
		NewToken(IDENTIFIER_ID, "a"),
		NewToken(RELATIONAL_OP, ">="),
		NewToken(IDENTIFIER_ID, "b"),
		NewToken(RELATIONAL_OP, "<="),
		NewToken(IDENTIFIER_ID, "c"),
		NewToken(RELATIONAL_OP, ">"),
		NewToken(IDENTIFIER_ID, "d"),
		NewToken(RELATIONAL_OP, "<"),
		NewToken(IDENTIFIER_ID, "e"),
	})

	expectTokens(t, `a && b || !c`, []Token{
		NewToken(IDENTIFIER_ID, "a"),
		NewToken(AND_OP, "&&"),
		NewToken(IDENTIFIER_ID, "b"),
		NewToken(OR_OP, "||"),
		NewToken(NOT_OP, "!"),
		NewToken(IDENTIFIER_ID, "c"),
	})
}

func TestLexer_Tokenize_ArithmeticOperators(t *testing.T) {
	expectTokens(t, `1 + 2 - 3 * 4 / 5`, []Token{
		NewToken(NUMBER_LIT, "1"),
		NewToken(ADDITIVE_OP, "+"),
		NewToken(NUMBER_LIT, "2"),
		NewToken(ADDITIVE_OP, "-"),
		NewToken(NUMBER_LIT, "3"),
		NewToken(MULTIPLICATIVE_OP, "*"),
		NewToken(NUMBER_LIT, "4"),
		NewToken(MULTIPLICATIVE_OP, "/"),
		NewToken(NUMBER_LIT, "5"),
	})
}

func TestLexer_Tokenize_Punctuation(t *testing.T) {
	expectTokens(t, `{ } ( ) [ ] , . ;`, []Token{
		NewToken(LEFT_BRACE, "{"),
		NewToken(RIGHT_BRACE, "}"),
		NewToken(LEFT_PAREN, "("),
		NewToken(RIGHT_PAREN, ")"),
		NewToken(LEFT_BRACKET, "["),
		NewToken(RIGHT_BRACKET, "]"),
		NewToken(COMMA_DELIM, ","),
		NewToken(DOT_OP, "."),
		NewToken(SEMICOLON_DELIM, ";"),
	})
}

func TestLexer_Tokenize_StringsKeepQuotes(t *testing.T) {
	expectTokens(t, `'hello';`, []Token{
		NewToken(STRING_LIT, `'hello'`),
		NewToken(SEMICOLON_DELIM, ";"),
	})
	expectTokens(t, `"hello, world";`, []Token{
		NewToken(STRING_LIT, `"hello, world"`),
		NewToken(SEMICOLON_DELIM, ";"),
	})
	// Empty strings are valid
	expectTokens(t, `'';`, []Token{
		NewToken(STRING_LIT, `''`),
		NewToken(SEMICOLON_DELIM, ";"),
	})
}

func TestLexer_Tokenize_SkipsWhitespaceAndComments(t *testing.T) {
	src := `
    // a single line comment
    /* a multi
       line comment */
    42;
    `
	expectTokens(t, src, []Token{
		NewToken(NUMBER_LIT, "42"),
		NewToken(SEMICOLON_DELIM, ";"),
	})
}

func TestLexer_Tokenize_CommentDelimitersInsideStrings(t *testing.T) {
	// The string rule matches from the opening quote, so the comment rule
	// never sees the '//' inside quotes
	expectTokens(t, `'// not a comment';`, []Token{
		NewToken(STRING_LIT, `'// not a comment'`),
		NewToken(SEMICOLON_DELIM, ";"),
	})
}

func TestLexer_NextToken_EOF(t *testing.T) {
	lex := NewLexer(`42`)

	token, err := lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, NUMBER_LIT, token.Type)

	// The end of input is a distinguished token, returned repeatedly
	for i := 0; i < 3; i++ {
		token, err = lex.NextToken()
		require.NoError(t, err)
		assert.Equal(t, EOF_TYPE, token.Type)
	}
}

func TestLexer_NextToken_TrailingWhitespaceIsEOF(t *testing.T) {
	lex := NewLexer("42   // trailing comment")

	token, err := lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, NUMBER_LIT, token.Type)

	token, err = lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, EOF_TYPE, token.Type)
}

func TestLexer_NextToken_UnexpectedChar(t *testing.T) {
	lex := NewLexer(`let x = @;`)

	var err error
	var token Token
	for i := 0; i < 3; i++ {
		token, err = lex.NextToken()
		require.NoError(t, err)
	}
	assert.Equal(t, SIMPLE_ASSIGN, token.Type)

	_, err = lex.NextToken()
	require.Error(t, err)

	lexErr, can := err.(*Error)
	require.True(t, can)
	assert.Equal(t, byte('@'), lexErr.Char)
	assert.Equal(t, 8, lexErr.Offset)
	assert.Equal(t, 1, lexErr.Line)
	assert.Equal(t, 9, lexErr.Column)
}

func TestLexer_NextToken_PositionMetadata(t *testing.T) {
	lex := NewLexer("let x = 1;\nx + 2;")

	token, err := lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, LET_KEY, token.Type)
	assert.Equal(t, 1, token.Line)
	assert.Equal(t, 1, token.Column)

	token, err = lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, IDENTIFIER_ID, token.Type)
	assert.Equal(t, 1, token.Line)
	assert.Equal(t, 5, token.Column)

	// Skip to the second line
	for i := 0; i < 3; i++ {
		_, err = lex.NextToken()
		require.NoError(t, err)
	}

	token, err = lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, IDENTIFIER_ID, token.Type)
	assert.Equal(t, "x", token.Literal)
	assert.Equal(t, 2, token.Line)
	assert.Equal(t, 1, token.Column)
}
