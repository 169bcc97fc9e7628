package lexer

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gosbml/gosbml/internal/types"
)

// Diagnostic is a lexical problem at a source span.
type Diagnostic struct {
	Span    types.Span
	Message string
}

// Lexer tokenizes formula text.
type Lexer struct {
	source      []byte
	pos         int
	diagnostics []Diagnostic
	types.Logger
}

// New returns a Lexer that tokenizes the given source bytes.
func New(source []byte, logger *slog.Logger) *Lexer {
	l := &Lexer{
		source: source,
		Logger: types.Logger{L: logger},
	}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("bytes", len(source)))
	return l
}

// Diagnostics returns a copy of all collected diagnostics.
func (l *Lexer) Diagnostics() []Diagnostic {
	return slices.Clone(l.diagnostics)
}

func (l *Lexer) traceToken(tok Token) {
	if l.TraceEnabled() {
		l.Trace("token",
			slog.String("kind", tok.Kind.String()),
			slog.Int("start", int(tok.Span.Start)),
			slog.Int("end", int(tok.Span.End)))
	}
}

// NextToken advances the lexer and returns the next token.
// Returns TokEOF when all input is consumed.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	start := l.pos

	b, ok := l.peek()
	if !ok {
		return l.token(TokEOF, start)
	}

	switch b {
	case '(':
		l.pos++
		return l.token(TokLParen, start)
	case ')':
		l.pos++
		return l.token(TokRParen, start)
	case ',':
		l.pos++
		return l.token(TokComma, start)
	case '+':
		l.pos++
		return l.token(TokPlus, start)
	case '-':
		l.pos++
		return l.token(TokMinus, start)
	case '*':
		l.pos++
		return l.token(TokStar, start)
	case '/':
		l.pos++
		return l.token(TokSlash, start)
	case '^':
		l.pos++
		return l.token(TokCaret, start)
	}

	if isDigit(b) || (b == '.' && l.digitAt(1)) {
		return l.scanNumber(start)
	}
	if isIdentStart(b) {
		for {
			c, ok := l.peek()
			if !ok || !isIdentPart(c) {
				break
			}
			l.pos++
		}
		return l.token(TokIdent, start)
	}

	l.pos++
	l.error(l.spanFrom(start), fmt.Sprintf("unexpected character %q", b))
	return l.token(TokError, start)
}

// scanNumber reads digits, an optional fraction and an optional
// exponent. A trailing 'e' not followed by digits is left for the
// identifier scanner.
func (l *Lexer) scanNumber(start int) Token {
	kind := TokInteger
	l.skipDigits()
	if b, ok := l.peek(); ok && b == '.' {
		kind = TokReal
		l.pos++
		l.skipDigits()
	}
	if b, ok := l.peek(); ok && (b == 'e' || b == 'E') {
		off := 1
		if s, ok := l.peekAt(1); ok && (s == '+' || s == '-') {
			off = 2
		}
		if l.digitAt(off) {
			kind = TokRealE
			l.pos += off
			l.skipDigits()
		}
	}
	return l.token(kind, start)
}

func (l *Lexer) peek() (byte, bool) {
	return l.peekAt(0)
}

func (l *Lexer) peekAt(offset int) (byte, bool) {
	idx := l.pos + offset
	if idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

func (l *Lexer) digitAt(offset int) bool {
	b, ok := l.peekAt(offset)
	return ok && isDigit(b)
}

func (l *Lexer) skipDigits() {
	for l.digitAt(0) {
		l.pos++
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			l.pos++
		} else {
			return
		}
	}
}

func (l *Lexer) error(span types.Span, message string) {
	l.diagnostics = append(l.diagnostics, Diagnostic{Span: span, Message: message})
}

func (l *Lexer) spanFrom(start int) types.Span {
	return types.NewSpan(types.ByteOffset(start), types.ByteOffset(l.pos))
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	tok := NewToken(kind, l.spanFrom(start))
	l.traceToken(tok)
	return tok
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
