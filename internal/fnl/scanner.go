package fnl

import "log/slog"

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line    int
	start   int
	current int
	source  []rune
	tokens  []*Token
	logger  *slog.Logger
}

// NewScanner creates a new token scanner
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// WithLogger makes the scanner log every character it drops at debug level.
func (scanner *Scanner) WithLogger(logger *slog.Logger) *Scanner {
	scanner.logger = logger
	return scanner
}

// Lex scans the whole source string in one go.
func Lex(source string) []*Token {
	return NewScanner([]rune(source)).Scan()
}

// Scan reads the source and collect all the tokens that were found from the
// source. Characters that belong to no token are skipped, so scanning never
// fails; the returned slice always ends with a single EOF token.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		r := scanner.advance()
		switch {
		case isAlpha(r):
			scanner.scanIdentifier()
		case isDigit(r):
			scanner.scanNumber()
		default:
			if typ, ok := punctuation[r]; ok {
				scanner.addToken(typ)
				break
			}
			if r == '\n' {
				scanner.line++
				break
			}
			if scanner.logger != nil && !isSpace(r) {
				scanner.logger.Debug("dropped character",
					"char", string(r), "line", scanner.line)
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", scanner.line),
	)
	return scanner.tokens
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits, no sign and no fraction
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	scanner.addToken(INT)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		scanner.addToken(tokenType)
	} else {
		scanner.addToken(IDENT)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type
func (scanner *Scanner) addToken(typ TokenType) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, scanner.line)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possible
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '_'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
