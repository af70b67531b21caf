package dax

import "strconv"

// TokenType represents the type of a token
type TokenType int

const (
	TokenFunction   TokenType = iota // SUM, AVERAGE, any run of letters
	TokenNumber                      // 42, 3.5
	TokenOperator                    // + - * /
	TokenColumn                      // [Sales]
	TokenComma                       // ,
	TokenParenOpen                   // (
	TokenParenClose                  // )
	TokenWhitespace                  // one per space, tab, CR or LF

	// TokenEOF is returned by Lexer.NextToken at end of input. Tokenize
	// never includes it.
	TokenEOF
)

var tokenTypeNames = map[TokenType]string{
	TokenFunction:   "Function",
	TokenNumber:     "Number",
	TokenOperator:   "Operator",
	TokenColumn:     "Column",
	TokenComma:      "Comma",
	TokenParenOpen:  "ParenOpen",
	TokenParenClose: "ParenClose",
	TokenWhitespace: "Whitespace",
	TokenEOF:        "EOF",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// Token represents a lexical token.
//
// Text holds the function name, column name or operator character.
// Number is only meaningful for TokenNumber.
type Token struct {
	Type   TokenType
	Text   string
	Number float64
}

// String returns the lexeme the token stands for
func (t Token) String() string {
	switch t.Type {
	case TokenFunction, TokenColumn, TokenOperator:
		return t.Text
	case TokenNumber:
		return strconv.FormatFloat(t.Number, 'g', -1, 64)
	case TokenComma:
		return ","
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	case TokenWhitespace:
		return " "
	default:
		return ""
	}
}
