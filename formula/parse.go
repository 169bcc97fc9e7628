// Package formula converts between infix formula text and expression
// trees.
//
// The grammar is the SBML Level 1 formula syntax:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = "-" unary | power
//	power   = primary [ "^" unary ]
//	primary = number | name | name "(" [ expr { "," expr } ] ")" | "(" expr ")"
//
// "^" binds tighter than unary minus and associates to the right. Parsed
// trees are canonicalized, so function names such as sqrt and log10
// arrive as typed nodes.
package formula

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/internal/lexer"
	"github.com/gosbml/gosbml/internal/types"
)

// SyntaxError reports a formula that does not match the grammar.
type SyntaxError struct {
	// Offset is the byte offset of the offending token.
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("formula: offset %d: %s", e.Offset, e.Msg)
}

// Option configures Parse.
type Option func(*parser)

// WithLogger sets a logger for parse tracing. Nil disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(p *parser) {
		p.Logger = types.Logger{L: types.Component(logger, "formula")}
	}
}

// Parse parses infix formula text into an expression tree. On any error
// it returns a nil tree and a *SyntaxError; partial trees are never
// returned.
func Parse(text string, opts ...Option) (*ast.Node, error) {
	p := &parser{source: []byte(text)}
	for _, opt := range opts {
		opt(p)
	}
	p.lex = lexer.New(p.source, p.L)
	p.tok = p.lex.NextToken()

	n, err := p.parseExpr()
	if err == nil && !p.check(lexer.TokEOF) {
		err = p.errorf("unexpected %s", p.peek().Kind)
	}
	if err != nil {
		p.Log(slog.LevelDebug, "formula rejected", slog.String("error", err.Error()))
		return nil, err
	}
	ast.Canonicalize(n)
	p.Log(slog.LevelDebug, "formula parsed", slog.String("root", n.Type().String()))
	return n, nil
}

type parser struct {
	source []byte
	lex    *lexer.Lexer
	tok    lexer.Token
	types.Logger
}

func (p *parser) peek() lexer.Token {
	return p.tok
}

func (p *parser) advance() lexer.Token {
	tok := p.tok
	p.tok = p.lex.NextToken()
	return tok
}

func (p *parser) check(kind lexer.TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *parser) expect(kind lexer.TokenKind) error {
	if p.check(kind) {
		p.advance()
		return nil
	}
	return p.errorf("expected %s, found %s", kind, p.peek().Kind)
}

func (p *parser) errorf(format string, args ...any) error {
	tok := p.peek()
	if tok.Kind == lexer.TokError {
		if diags := p.lex.Diagnostics(); len(diags) > 0 {
			d := diags[len(diags)-1]
			return &SyntaxError{Offset: int(d.Span.Start), Msg: d.Message}
		}
	}
	return &SyntaxError{Offset: int(tok.Span.Start), Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseExpr() (*ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TokPlus) || p.check(lexer.TokMinus) {
		op := ast.TypePlus
		if p.advance().Kind == lexer.TokMinus {
			op = ast.TypeMinus
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if left, err = ast.NewOperator(op, left, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) parseTerm() (*ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TokStar) || p.check(lexer.TokSlash) {
		op := ast.TypeTimes
		if p.advance().Kind == lexer.TokSlash {
			op = ast.TypeDivide
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if left, err = ast.NewOperator(op, left, right); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (*ast.Node, error) {
	if !p.check(lexer.TokMinus) {
		return p.parsePower()
	}
	p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.NewOperator(ast.TypeMinus, operand)
}

func (p *parser) parsePower() (*ast.Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.TokCaret) {
		return base, nil
	}
	p.advance()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.NewOperator(ast.TypePower, base, exp)
}

func (p *parser) parsePrimary() (*ast.Node, error) {
	tok := p.peek()
	switch {
	case tok.Kind.IsNumber():
		p.advance()
		return p.number(tok)
	case tok.Kind == lexer.TokIdent:
		p.advance()
		name := tok.Text(p.source)
		if p.check(lexer.TokLParen) {
			return p.parseCall(name)
		}
		switch name {
		case "INF":
			return ast.NewReal(math.Inf(1)), nil
		case "NaN":
			return ast.NewReal(math.NaN()), nil
		}
		return ast.NewName(name), nil
	case tok.Kind == lexer.TokLParen:
		p.advance()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokRParen); err != nil {
			return nil, err
		}
		return n, nil
	}
	return nil, p.errorf("unexpected %s", tok.Kind)
}

func (p *parser) parseCall(name string) (*ast.Node, error) {
	if err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}
	call := ast.NewFunction(name)
	if p.check(lexer.TokRParen) {
		p.advance()
		return call, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := call.AddChild(arg); err != nil {
			return nil, err
		}
		if !p.check(lexer.TokComma) {
			break
		}
		p.advance()
	}
	if err := p.expect(lexer.TokRParen); err != nil {
		return nil, err
	}
	if p.TraceEnabled() {
		p.Trace("call", slog.String("name", name), slog.Int("args", call.NumChildren()))
	}
	return call, nil
}

func (p *parser) number(tok lexer.Token) (*ast.Node, error) {
	text := tok.Text(p.source)
	switch tok.Kind {
	case lexer.TokInteger:
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return ast.NewInteger(v), nil
		}
		// Out of int64 range: keep the value as a real.
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &SyntaxError{Offset: int(tok.Span.Start), Msg: err.Error()}
		}
		return ast.NewReal(v), nil
	case lexer.TokRealE:
		i := strings.IndexAny(text, "eE")
		mantissa, err := strconv.ParseFloat(text[:i], 64)
		if err != nil {
			return nil, &SyntaxError{Offset: int(tok.Span.Start), Msg: err.Error()}
		}
		exp, err := strconv.ParseInt(text[i+1:], 10, 64)
		if err != nil {
			return nil, &SyntaxError{Offset: int(tok.Span.Start), Msg: err.Error()}
		}
		return ast.NewRealE(mantissa, exp), nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, &SyntaxError{Offset: int(tok.Span.Start), Msg: err.Error()}
	}
	return ast.NewReal(v), nil
}
