package dax

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes DAX expression strings.
//
// The lexer never fails. Input it cannot classify is skipped, and a digit
// run that does not parse as a number is dropped without producing a token.
type Lexer struct {
	input string
	off   int // byte offset of ch
	pos   int // byte offset of the rune after ch
	ch    rune
	eof   bool
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar advances to the next rune
func (l *Lexer) readChar() {
	l.off = l.pos
	if l.pos >= len(l.input) {
		l.ch = 0
		l.eof = true
		return
	}
	r, width := utf8.DecodeRuneInString(l.input[l.pos:])
	l.ch = r
	l.pos += width
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isASCIILetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// readNumber consumes a run of digits and dots. ok is false when the run
// is not a valid float, e.g. "1.2.3" or a lone ".".
func (l *Lexer) readNumber() (float64, bool) {
	start := l.off
	for !l.eof && (isDigit(l.ch) || l.ch == '.') {
		l.readChar()
	}

	n, err := strconv.ParseFloat(l.input[start:l.off], 64)
	if err != nil {
		// overflow still yields ±Inf
		if errors.Is(err, strconv.ErrRange) {
			return n, true
		}
		return 0, false
	}
	return n, true
}

// readColumn consumes a bracketed column reference and returns its name.
// An unterminated reference takes the rest of the input.
func (l *Lexer) readColumn() string {
	l.readChar() // skip [
	start := l.off
	for !l.eof && l.ch != ']' {
		l.readChar()
	}
	name := l.input[start:l.off]
	if !l.eof {
		l.readChar() // skip ]
	}
	return name
}

// readFunction reads a run of letters
func (l *Lexer) readFunction() string {
	start := l.off
	for !l.eof && unicode.IsLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.off]
}

// NextToken returns the next token, or a TokenEOF token once the input
// is exhausted.
func (l *Lexer) NextToken() Token {
	for !l.eof {
		switch ch := l.ch; {
		case isDigit(ch) || ch == '.':
			if n, ok := l.readNumber(); ok {
				return Token{Type: TokenNumber, Number: n}
			}
		case ch == '[':
			return Token{Type: TokenColumn, Text: l.readColumn()}
		case ch == '(':
			l.readChar()
			return Token{Type: TokenParenOpen}
		case ch == ')':
			l.readChar()
			return Token{Type: TokenParenClose}
		case ch == ',':
			l.readChar()
			return Token{Type: TokenComma}
		case ch == '+' || ch == '-' || ch == '*' || ch == '/':
			l.readChar()
			return Token{Type: TokenOperator, Text: string(ch)}
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			l.readChar()
			return Token{Type: TokenWhitespace}
		case isASCIILetter(ch):
			return Token{Type: TokenFunction, Text: l.readFunction()}
		default:
			l.readChar()
		}
	}
	return Token{Type: TokenEOF}
}

// Tokenize returns all tokens from the input, without a trailing EOF
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		if tok.Type == TokenEOF {
			break
		}
		tokens = append(tokens, tok)
	}

	return tokens
}
