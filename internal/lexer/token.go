// Package lexer provides tokenization for infix formula text.
package lexer

import (
	"fmt"

	"github.com/gosbml/gosbml/internal/types"
)

// Token is a token with kind and source span.
type Token struct {
	Kind TokenKind
	Span types.Span
}

// NewToken creates a new token.
func NewToken(kind TokenKind, span types.Span) Token {
	return Token{Kind: kind, Span: span}
}

// Text returns the source text covered by the token.
func (t Token) Text(source []byte) string {
	return t.Span.Text(source)
}

// TokenKind identifies a token type.
type TokenKind int

const (
	// TokError is a lexical error.
	TokError TokenKind = iota
	// TokEOF is end of input.
	TokEOF

	// TokIdent is an identifier (symbol or function name).
	TokIdent
	// TokInteger is an unsigned decimal integer.
	TokInteger
	// TokReal is an unsigned decimal number with a fraction part.
	TokReal
	// TokRealE is an unsigned number with an exponent part.
	TokRealE

	// TokLParen is '('.
	TokLParen
	// TokRParen is ')'.
	TokRParen
	// TokComma is ','.
	TokComma
	// TokPlus is '+'.
	TokPlus
	// TokMinus is '-'.
	TokMinus
	// TokStar is '*'.
	TokStar
	// TokSlash is '/'.
	TokSlash
	// TokCaret is '^'.
	TokCaret
)

var tokenNames = [...]string{
	TokError:   "error",
	TokEOF:     "end of formula",
	TokIdent:   "identifier",
	TokInteger: "integer",
	TokReal:    "number",
	TokRealE:   "number",
	TokLParen:  "'('",
	TokRParen:  "')'",
	TokComma:   "','",
	TokPlus:    "'+'",
	TokMinus:   "'-'",
	TokStar:    "'*'",
	TokSlash:   "'/'",
	TokCaret:   "'^'",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsNumber reports whether the kind is a numeric literal.
func (k TokenKind) IsNumber() bool {
	return k == TokInteger || k == TokReal || k == TokRealE
}
