package fnl

import "strconv"

// Identifiers that start a statement. The scanner does not treat them as
// keywords.
const (
	printIntIdent = "print_int"
	returnIdent   = "return"
)

// Parser composes the syntax tree from the sequence of tokens produced by the
// Scanner, following the grammar documented on the package. Every rule returns
// on the first violation; there is no synchronization and no partial result.
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser over the given tokens
func NewParser(tokens []*Token) *Parser {
	return &Parser{0, tokens}
}

// Parse is a shorthand for NewParser(tokens).Parse().
func Parse(tokens []*Token) (*Module, error) {
	return NewParser(tokens).Parse()
}

// Parse consumes every token and returns the module holding the functions that
// were declared. Tokens outside of a function declaration are skipped.
//
// program --> ( function | ANY )* ;
func (parser *Parser) Parse() (*Module, error) {
	functions := make([]*Function, 0)
	for parser.hasNext() {
		if !parser.match(FN) {
			parser.advance()
			continue
		}
		fn, err := parser.function()
		if err != nil {
			return nil, err
		}
		functions = append(functions, fn)
	}
	return NewModule(functions), nil
}

// function --> "fn" IDENT params block ;
func (parser *Parser) function() (*Function, error) {
	name, err := parser.consume(IDENT, "Expected function name")
	if err != nil {
		return nil, err
	}
	args, err := parser.argumentDefinitions()
	if err != nil {
		return nil, err
	}
	body, err := parser.statements()
	if err != nil {
		return nil, err
	}
	return NewFunction(name.Lexeme, args, body), nil
}

// A trailing comma is accepted since the closing paren is only peeked after
// each argument.
//
// params --> "(" ( param ( "," | &")" ) )* ")" ;
// param  --> IDENT ":" type ;
func (parser *Parser) argumentDefinitions() ([]*ArgumentDefinition, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expected left paren"); err != nil {
		return nil, err
	}

	args := make([]*ArgumentDefinition, 0)
	for {
		if parser.match(RIGHT_PAREN) {
			return args, nil
		}
		if !parser.check(IDENT) {
			return nil, NewParseError(
				parser.peek(),
				ErrStructural,
				"Expected name or right paren",
			)
		}
		name := parser.advance()
		if _, err := parser.consume(COLON, "Expected colon"); err != nil {
			return nil, err
		}
		typ, err := parser.typeName()
		if err != nil {
			return nil, err
		}
		args = append(args, NewArgumentDefinition(name.Lexeme, typ))

		if parser.match(COMMA) {
			continue
		}
		if !parser.check(RIGHT_PAREN) {
			return nil, NewParseError(
				parser.peek(),
				ErrStructural,
				"Expected comma or right paren",
			)
		}
	}
}

// type --> "Int" ;
func (parser *Parser) typeName() (Type, error) {
	tok, err := parser.consume(IDENT, "Expected type")
	if err != nil {
		return 0, err
	}
	typ, ok := LookupType(tok.Lexeme)
	if !ok {
		return 0, NewParseError(tok, ErrUnknownIdentifier, "Unknown type")
	}
	return typ, nil
}

// block --> "{" stmt* "}" ;
func (parser *Parser) statements() ([]Stmt, error) {
	if _, err := parser.consume(LEFT_BRACE, "Expected left brace"); err != nil {
		return nil, err
	}

	stmts := make([]Stmt, 0)
	for !parser.match(RIGHT_BRACE) {
		stmt, err := parser.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// stmt --> letStmt | printStmt | returnStmt ;
func (parser *Parser) statement() (Stmt, error) {
	if parser.match(LET) {
		return parser.letStatement()
	}
	if !parser.check(IDENT) {
		return nil, NewParseError(parser.peek(), ErrStructural, "Expected name")
	}
	switch parser.peek().Lexeme {
	case printIntIdent:
		parser.advance()
		return parser.printStatement()
	case returnIdent:
		parser.advance()
		return parser.returnStatement()
	}
	return nil, NewParseError(
		parser.peek(),
		ErrUnknownIdentifier,
		"Expected let, print_int, or return",
	)
}

// letStmt --> "let" IDENT ":" type "=" expr ";" ;
func (parser *Parser) letStatement() (Stmt, error) {
	name, err := parser.consume(IDENT, "Expected name")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(COLON, "Expected colon"); err != nil {
		return nil, err
	}
	typ, err := parser.typeName()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(EQUAL, "Expected equal"); err != nil {
		return nil, err
	}
	value, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expected semicolon"); err != nil {
		return nil, err
	}
	return NewLetStmt(name.Lexeme, typ, value), nil
}

// printStmt --> "print_int" "(" expr ")" ";" ;
func (parser *Parser) printStatement() (Stmt, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expected left paren"); err != nil {
		return nil, err
	}
	value, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(RIGHT_PAREN, "Expected right paren"); err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expected semicolon"); err != nil {
		return nil, err
	}
	return NewPrintStmt(value), nil
}

// returnStmt --> "return" expr ";" ;
func (parser *Parser) returnStatement() (Stmt, error) {
	value, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(SEMICOLON, "Expected semicolon"); err != nil {
		return nil, err
	}
	return NewReturnStmt(value), nil
}

// There is no operator parsing, AddExpr is never produced here.
//
// expr --> INT | IDENT args? ;
func (parser *Parser) expression() (Expr, error) {
	if parser.check(INT) {
		tok := parser.advance()
		value, err := strconv.ParseInt(tok.Lexeme, 10, 32)
		if err != nil {
			return nil, NewParseError(tok, ErrInvalidLiteral, "Invalid integer literal")
		}
		return NewIntExpr(int32(value)), nil
	}
	if parser.check(IDENT) {
		name := parser.advance()
		if parser.check(LEFT_PAREN) {
			args, err := parser.callArguments()
			if err != nil {
				return nil, err
			}
			return NewCallExpr(name.Lexeme, args), nil
		}
		return NewNameExpr(name.Lexeme), nil
	}
	return nil, NewParseError(parser.peek(), ErrStructural, "Expected int or name")
}

// args --> "(" ( expr ( "," | &")" ) )* ")" ;
func (parser *Parser) callArguments() ([]Expr, error) {
	if _, err := parser.consume(LEFT_PAREN, "Expected left paren"); err != nil {
		return nil, err
	}

	args := make([]Expr, 0)
	for {
		if parser.match(RIGHT_PAREN) {
			return args, nil
		}
		arg, err := parser.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if parser.match(COMMA) {
			continue
		}
		if !parser.check(RIGHT_PAREN) {
			return nil, NewParseError(
				parser.peek(),
				ErrStructural,
				"Expected comma or right paren",
			)
		}
	}
}

// match consumes the current token if it has the given type.
func (parser *Parser) match(tt TokenType) bool {
	if parser.check(tt) {
		parser.advance()
		return true
	}
	return false
}

func (parser *Parser) consume(tt TokenType, message string) (*Token, error) {
	if parser.check(tt) {
		return parser.advance(), nil
	}
	return nil, NewParseError(parser.peek(), ErrStructural, message)
}

func (parser *Parser) check(tt TokenType) bool {
	tok := parser.peek()
	return tok != nil && tok.Typ == tt
}

// advance consumes and returns the current token, nil once the tokens have been
// used up.
func (parser *Parser) advance() *Token {
	tok := parser.peek()
	if parser.hasNext() {
		parser.current++
	}
	return tok
}

func (parser *Parser) hasNext() bool {
	return parser.current < len(parser.tokens)
}

func (parser *Parser) peek() *Token {
	if !parser.hasNext() {
		return nil
	}
	return parser.tokens[parser.current]
}
