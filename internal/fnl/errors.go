package fnl

import "fmt"

// ErrorKind classifies why parsing stopped.
type ErrorKind uint

const (
	// ErrStructural means an expected token was not found, including running
	// out of tokens.
	ErrStructural ErrorKind = iota
	// ErrUnknownIdentifier means an identifier sits where only a fixed set of
	// names is allowed: a type name or a statement keyword.
	ErrUnknownIdentifier
	// ErrInvalidLiteral means integer text that does not fit the Int type.
	ErrInvalidLiteral
)

func (kind ErrorKind) String() string {
	switch kind {
	case ErrStructural:
		return "structural mismatch"
	case ErrUnknownIdentifier:
		return "unknown identifier"
	case ErrInvalidLiteral:
		return "invalid literal"
	}
	return "unknown error"
}

// ParseError wraps the message returned by the parser with the token at which
// the error occurred. Token is nil when the parser ran past the last token.
type ParseError struct {
	Token   *Token
	Kind    ErrorKind
	Message string
}

// NewParseError creates a new parse error
func NewParseError(token *Token, kind ErrorKind, message string) error {
	return &ParseError{token, kind, message}
}

func (err *ParseError) Error() string {
	if err.Token == nil {
		return fmt.Sprintf("Error at end: %s", err.Message)
	}
	if err.Token.Typ == EOF {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.Token.Line,
			err.Message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.Token.Line,
		err.Token.Lexeme,
		err.Message,
	)
}

// AtEnd reports whether the error was caused by running out of input. A
// REPL uses this to ask for another line instead of failing.
func (err *ParseError) AtEnd() bool {
	return err.Token == nil || err.Token.Typ == EOF
}
