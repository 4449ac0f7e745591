/*
File    : go-letter/lexer/rules.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "regexp"

// rule is a single entry of the lexical grammar: an anchored pattern and the
// token type it produces. Rules marked skip consume text (whitespace,
// comments) without producing a token.
type rule struct {
	pattern *regexp.Regexp // Anchored at the start of the remaining input
	kind    TokenType      // Token type produced by this rule
	skip    bool           // Whitespace/comment rules produce no token
}

// skipRule builds a rule whose matches are discarded.
func skipRule(pattern string) rule {
	return rule{pattern: regexp.MustCompile(pattern), skip: true}
}

// tokenRule builds a rule producing a token of the given type.
func tokenRule(pattern string, kind TokenType) rule {
	return rule{pattern: regexp.MustCompile(pattern), kind: kind}
}

// rules is the lexical grammar of the Letter language, in priority order.
// On each step the lexer tries every rule top to bottom and takes the first
// match, so ordering is load-bearing in three places:
//
//   - Keyword rules must precede IDENTIFIER_ID, and are word-bounded on both
//     sides so that "lettuce" is one identifier rather than "let" + "tuce".
//   - Equality operators (==, !=) must precede SIMPLE_ASSIGN and NOT_OP,
//     and compound assignment (+=, -=, *=, /=) must precede the individual
//     arithmetic operators, so the longer lexeme wins.
//   - Relational operators match the optional '=' greedily (>=, <=) before
//     falling back to the single character.
//
// Strings, numbers, punctuation and keywords are mutually disjoint, so their
// relative order is incidental. All patterns are anchored and pre-compiled
// once at package load.
var rules = []rule{
	// Whitespace
	skipRule(`^\s+`),

	// Comments: single-line and (non-greedy) multi-line
	skipRule(`^//.*`),
	skipRule(`^/\*[\s\S]*?\*/`),

	// Strings: single- or double-quoted, no escape sequences, the quote
	// character itself cannot appear inside. Quotes are kept in the lexeme.
	tokenRule(`^'[^']*'`, STRING_LIT),
	tokenRule(`^"[^"]*"`, STRING_LIT),

	// Symbols, delimiters
	tokenRule(`^;`, SEMICOLON_DELIM),
	tokenRule(`^\{`, LEFT_BRACE),
	tokenRule(`^\}`, RIGHT_BRACE),
	tokenRule(`^\(`, LEFT_PAREN),
	tokenRule(`^\)`, RIGHT_PAREN),
	tokenRule(`^,`, COMMA_DELIM),
	tokenRule(`^\.`, DOT_OP),
	tokenRule(`^\[`, LEFT_BRACKET),
	tokenRule(`^\]`, RIGHT_BRACKET),

	// Keywords (word-bounded)
	tokenRule(`^\blet\b`, LET_KEY),
	tokenRule(`^\bif\b`, IF_KEY),
	tokenRule(`^\belse\b`, ELSE_KEY),
	tokenRule(`^\btrue\b`, TRUE_KEY),
	tokenRule(`^\bfalse\b`, FALSE_KEY),
	tokenRule(`^\bnull\b`, NULL_KEY),
	tokenRule(`^\bwhile\b`, WHILE_KEY),
	tokenRule(`^\bdo\b`, DO_KEY),
	tokenRule(`^\bfor\b`, FOR_KEY),
	tokenRule(`^\bdef\b`, DEF_KEY),
	tokenRule(`^\breturn\b`, RETURN_KEY),
	tokenRule(`^\bclass\b`, CLASS_KEY),
	tokenRule(`^\bextends\b`, EXTENDS_KEY),
	tokenRule(`^\bsuper\b`, SUPER_KEY),
	tokenRule(`^\bnew\b`, NEW_KEY),
	tokenRule(`^\bthis\b`, THIS_KEY),

	// Numbers: decimal integers only
	tokenRule(`^\d+`, NUMBER_LIT),

	// Identifiers: ASCII letter or underscore, then word characters
	tokenRule(`^[a-zA-Z_]\w*`, IDENTIFIER_ID),

	// Equality operators: ==, !=
	tokenRule(`^[=!]=`, EQUALITY_OP),

	// Assignment operators: =, then *=, /=, +=, -=
	tokenRule(`^=`, SIMPLE_ASSIGN),
	tokenRule(`^[*/+\-]=`, COMPLEX_ASSIGN),

	// Relational operators: >, >=, <, <=
	tokenRule(`^[><]=?`, RELATIONAL_OP),

	// Logical operators: &&, ||, !
	tokenRule(`^&&`, AND_OP),
	tokenRule(`^\|\|`, OR_OP),
	tokenRule(`^!`, NOT_OP),

	// Arithmetic operators, additive then multiplicative
	tokenRule(`^[+\-]`, ADDITIVE_OP),
	tokenRule(`^[*/]`, MULTIPLICATIVE_OP),
}
