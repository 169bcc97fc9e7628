package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/gosbml/gosbml/internal/types"
)

// SyntaxError reports malformed XML at a source position.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("xml: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// ParseOption configures Parse.
type ParseOption func(*parser)

// KeepSpaceIn keeps whitespace-only text anywhere inside elements with
// the given local names. Elsewhere it is dropped.
func KeepSpaceIn(locals ...string) ParseOption {
	return func(p *parser) {
		if p.keep == nil {
			p.keep = make(map[string]bool, len(locals))
		}
		for _, l := range locals {
			p.keep[l] = true
		}
	}
}

// Parse reads a complete XML document. Documents in encodings other than
// UTF-8 are transcoded according to their XML declaration. The first
// well-formedness or namespace error ends parsing.
func Parse(r io.Reader, logger *slog.Logger, opts ...ParseOption) (*Document, error) {
	p := &parser{
		dec:    xml.NewDecoder(r),
		Logger: types.Logger{L: logger},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.dec.CharsetReader = charset.NewReaderLabel
	doc, err := p.parse()
	if err != nil {
		p.Log(slog.LevelDebug, "xml parse failed", slog.String("error", err.Error()))
		return nil, err
	}
	p.Log(slog.LevelDebug, "xml parsed",
		slog.String("root", doc.Root.QName()),
		slog.Int("elements", p.elements))
	return doc, nil
}

// ParseBytes parses an in-memory document.
func ParseBytes(data []byte, logger *slog.Logger, opts ...ParseOption) (*Document, error) {
	return Parse(bytes.NewReader(data), logger, opts...)
}

// ParseString parses an in-memory document.
func ParseString(s string, logger *slog.Logger, opts ...ParseOption) (*Document, error) {
	return Parse(strings.NewReader(s), logger, opts...)
}

type parser struct {
	dec      *xml.Decoder
	elements int
	keep     map[string]bool
	types.Logger
}

// keepsSpace reports whether el or one of its ancestors was named in
// KeepSpaceIn.
func (p *parser) keepsSpace(el *Element) bool {
	if len(p.keep) == 0 {
		return false
	}
	for ; el != nil; el = el.Parent {
		if p.keep[el.Local] {
			return true
		}
	}
	return false
}

func (p *parser) errorf(line, col int, format string, args ...any) error {
	return &SyntaxError{Line: line, Column: col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parse() (*Document, error) {
	doc := &Document{}
	var cur *Element
	for {
		line, col := p.dec.InputPos()
		tok, err := p.dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var se *xml.SyntaxError
			if errors.As(err, &se) {
				l, c := p.dec.InputPos()
				return nil, p.errorf(se.Line, columnFor(se.Line, l, c), "%s", se.Msg)
			}
			return nil, p.errorf(line, col, "%v", err)
		}

		switch t := tok.(type) {
		case xml.ProcInst:
			if t.Target == "xml" {
				doc.Encoding = procInstParam(string(t.Inst), "encoding")
			}
		case xml.StartElement:
			if cur == nil && doc.Root != nil {
				return nil, p.errorf(line, col, "content after root element")
			}
			el := &Element{
				Prefix: t.Name.Space,
				Local:  t.Name.Local,
				Line:   line,
				Column: col,
			}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Prefix: a.Name.Space, Local: a.Name.Local, Value: a.Value})
			}
			if cur == nil {
				doc.Root = el
			} else {
				cur.Append(el)
			}
			if err := p.resolve(el); err != nil {
				return nil, err
			}
			p.elements++
			if p.TraceEnabled() {
				p.Trace("element", slog.String("name", el.QName()), slog.Int("line", line))
			}
			cur = el
		case xml.EndElement:
			name := t.Name.Local
			if t.Name.Space != "" {
				name = t.Name.Space + ":" + name
			}
			if cur == nil {
				return nil, p.errorf(line, col, "unexpected end element </%s>", name)
			}
			if name != cur.QName() {
				return nil, p.errorf(line, col, "element <%s> closed by </%s>", cur.QName(), name)
			}
			cur = cur.Parent
		case xml.CharData:
			if cur == nil {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, p.errorf(line, col, "text outside root element")
				}
				continue
			}
			if len(bytes.TrimSpace(t)) == 0 && !p.keepsSpace(cur) {
				continue
			}
			cur.Append(CharData(t))
		case xml.Comment:
			if cur == nil {
				if doc.Root == nil {
					doc.Comments = append(doc.Comments, string(t))
				}
				continue
			}
			cur.Append(Comment(t))
		}
	}
	if doc.Root == nil {
		return nil, p.errorf(1, 1, "no root element")
	}
	if cur != nil {
		line, col := p.dec.InputPos()
		return nil, p.errorf(line, col, "unclosed element <%s>", cur.QName())
	}
	return doc, nil
}

// resolve binds the namespace of el and its attributes using the
// declarations in scope.
func (p *parser) resolve(el *Element) error {
	space, ok := el.LookupPrefix(el.Prefix)
	if !ok {
		return p.errorf(el.Line, el.Column, "unbound namespace prefix %q", el.Prefix)
	}
	el.Space = space
	for i, a := range el.Attrs {
		switch {
		case a.IsNamespaceDecl():
			el.Attrs[i].Space = NamespaceXMLNS
		case a.Prefix != "":
			s, ok := el.LookupPrefix(a.Prefix)
			if !ok {
				return p.errorf(el.Line, el.Column, "unbound namespace prefix %q", a.Prefix)
			}
			el.Attrs[i].Space = s
		}
	}
	return nil
}

// columnFor returns the column to report for an error on errLine given
// the decoder position. The decoder only tracks the column of its
// current line.
func columnFor(errLine, line, col int) int {
	if errLine == line {
		return col
	}
	return 1
}

func procInstParam(inst, param string) string {
	idx := strings.Index(inst, param)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimLeft(inst[idx+len(param):], " \t")
	if !strings.HasPrefix(rest, "=") {
		return ""
	}
	rest = strings.TrimLeft(rest[1:], " \t")
	if rest == "" || (rest[0] != '"' && rest[0] != '\'') {
		return ""
	}
	q := rest[0]
	end := strings.IndexByte(rest[1:], q)
	if end < 0 {
		return ""
	}
	return rest[1 : end+1]
}
