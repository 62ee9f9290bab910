package notation

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexer token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenError

	TokenBare   // bare reference: 123, true, https://t.me/chat
	TokenQuoted // 'quoted reference' or "quoted reference"

	TokenLParen // (
	TokenRParen // )
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenBare:
		return "BARE"
	case TokenQuoted:
		return "QUOTED"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexer token.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Value == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}

// Lexer tokenizes links notation text.
type Lexer struct {
	input  string
	pos    int // Current position in input
	line   int // Current line number (1-based)
	col    int // Current column number (1-based)
	tokens []Token
	err    error
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		pos:   0,
		line:  1,
		col:   1,
	}
}

// Tokenize returns all tokens from the input.
func (l *Lexer) Tokenize() ([]Token, error) {
	for {
		tok := l.nextToken()
		l.tokens = append(l.tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}
	if l.err != nil {
		return l.tokens, l.err
	}
	return l.tokens, nil
}

// nextToken returns the next token.
func (l *Lexer) nextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.currentPos()}
	}

	startPos := l.currentPos()
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return Token{Type: TokenLParen, Value: "(", Pos: startPos}
	case ')':
		l.advance()
		return Token{Type: TokenRParen, Value: ")", Pos: startPos}
	case '\'', '"':
		return l.scanQuoted()
	}

	return l.scanBare()
}

// scanQuoted scans a quoted reference. The delimiter quote is escaped
// by doubling it; the other quote character passes through literally.
func (l *Lexer) scanQuoted() Token {
	startPos := l.currentPos()
	quote := l.peek()
	l.advance() // consume opening quote

	var sb strings.Builder
	for {
		if l.pos >= len(l.input) {
			l.err = &ParseError{Message: "unterminated string", Pos: startPos}
			return Token{Type: TokenError, Value: sb.String(), Pos: startPos}
		}

		ch := l.peek()
		if ch == quote {
			l.advance()
			// Doubled quote is a literal quote character
			if l.pos < len(l.input) && l.peek() == quote {
				sb.WriteByte(quote)
				l.advance()
				continue
			}
			break
		}

		sb.WriteByte(ch)
		l.advance()
	}

	return Token{Type: TokenQuoted, Value: sb.String(), Pos: startPos}
}

// scanBare scans a bare reference: any run of characters up to
// whitespace, a quote, or a parenthesis.
func (l *Lexer) scanBare() Token {
	startPos := l.currentPos()
	start := l.pos

	for l.pos < len(l.input) && !isDelimiter(l.peek()) {
		l.advance()
	}

	return Token{Type: TokenBare, Value: l.input[start:l.pos], Pos: startPos}
}

// skipWhitespace skips whitespace between tokens.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.peek()) {
		l.advance()
	}
}

// Helper methods

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() {
	if l.pos < len(l.input) {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// Character classification

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDelimiter(ch byte) bool {
	return isSpace(ch) || ch == '(' || ch == ')' || ch == '\'' || ch == '"'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isIntegerText reports whether s is a base-10 integer literal.
func isIntegerText(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// isNumberText reports whether s is a decimal number literal, with an
// optional fraction and exponent.
func isNumberText(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		digits = 0
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
		if digits == 0 {
			return false
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		digits = 0
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
		if digits == 0 {
			return false
		}
	}
	return i == len(s)
}

// TokenStream provides a stream interface over tokens.
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream creates a token stream from tokens.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens, pos: 0}
}

// Peek returns the current token without advancing.
func (ts *TokenStream) Peek() Token {
	if ts.pos >= len(ts.tokens) {
		return Token{Type: TokenEOF}
	}
	return ts.tokens[ts.pos]
}

// Advance moves to the next token and returns the current one.
func (ts *TokenStream) Advance() Token {
	tok := ts.Peek()
	if ts.pos < len(ts.tokens) {
		ts.pos++
	}
	return tok
}

// Match returns true and advances if the current token matches.
func (ts *TokenStream) Match(typ TokenType) bool {
	if ts.Peek().Type == typ {
		ts.Advance()
		return true
	}
	return false
}

// AtEnd returns true if at end of stream.
func (ts *TokenStream) AtEnd() bool {
	return ts.Peek().Type == TokenEOF
}
