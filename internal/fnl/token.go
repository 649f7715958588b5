package fnl

import (
	"fmt"
	"strings"
)

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ    TokenType
	Lexeme string
	Line   int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, line int) *Token {
	return &Token{typ, lexeme, line}
}

// String renders the token the way it shows up in a token dump, e.g.
// `Name("main")` or `LeftParen`.
func (t *Token) String() string {
	switch t.Typ {
	case IDENT, UPPER_IDENT, INT:
		return fmt.Sprintf("%s(%q)", t.Typ, t.Lexeme)
	}
	return t.Typ.String()
}

// FormatTokens renders a token sequence as a bracketed, comma separated list.
func FormatTokens(toks []*Token) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = tok.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// KeywordTokens maps the reserved words to their token types. Matching is
// case-sensitive.
var KeywordTokens = map[string]TokenType{
	"let": LET,
	"fn":  FN,
}

// TokenType identifies the lexical class of a token
type TokenType uint

const (
	// Literals
	IDENT TokenType = iota
	// UPPER_IDENT is reserved for capitalized names. The scanner does not
	// produce it yet.
	UPPER_IDENT
	INT

	// Single-character tokens
	COLON
	COMMA
	EQUAL
	SEMICOLON
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE

	// Keywords
	LET
	FN

	EOF
)

func (tt TokenType) String() string {
	switch tt {
	case IDENT:
		return "Name"
	case UPPER_IDENT:
		return "UpName"
	case INT:
		return "Int"
	case COLON:
		return "Colon"
	case COMMA:
		return "Comma"
	case EQUAL:
		return "Equal"
	case SEMICOLON:
		return "SemiColon"
	case LEFT_PAREN:
		return "LeftParen"
	case RIGHT_PAREN:
		return "RightParen"
	case LEFT_BRACE:
		return "LeftBrace"
	case RIGHT_BRACE:
		return "RightBrace"
	case LET:
		return "Let"
	case FN:
		return "Fn"
	case EOF:
		return "EndOfFile"
	}
	return fmt.Sprintf("TokenType(%d)", uint(tt))
}

// punctuation maps each single-character token to its rune.
var punctuation = map[rune]TokenType{
	':': COLON,
	',': COMMA,
	'=': EQUAL,
	';': SEMICOLON,
	'(': LEFT_PAREN,
	')': RIGHT_PAREN,
	'{': LEFT_BRACE,
	'}': RIGHT_BRACE,
}
