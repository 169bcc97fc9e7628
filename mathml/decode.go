// Package mathml converts expression trees to and from the MathML 2.0
// subset used by SBML Level 2.
package mathml

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/internal/xmltree"
)

// Namespace is the MathML namespace URI.
const Namespace = "http://www.w3.org/1998/Math/MathML"

// csymbol definition URLs.
const (
	SymbolTime  = "http://www.sbml.org/sbml/symbols/time"
	SymbolDelay = "http://www.sbml.org/sbml/symbols/delay"
)

// DecodeError reports MathML that cannot be decoded.
type DecodeError struct {
	Line   int
	Column int
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("mathml: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func errorAt(el *xmltree.Element, format string, args ...any) error {
	return &DecodeError{Line: el.Line, Column: el.Column, Msg: fmt.Sprintf(format, args...)}
}

// Decode parses a <math> fragment. Any unrecognized or malformed element
// fails the whole decode; no partial tree is returned.
func Decode(text string) (*ast.Node, error) {
	doc, err := xmltree.ParseString(text, nil)
	if err != nil {
		var se *xmltree.SyntaxError
		if errors.As(err, &se) {
			return nil, &DecodeError{Line: se.Line, Column: se.Column, Msg: se.Msg}
		}
		return nil, err
	}
	return DecodeElement(doc.Root)
}

// DecodeElement decodes a parsed <math> element.
func DecodeElement(el *xmltree.Element) (*ast.Node, error) {
	if el.Local != "math" {
		return nil, errorAt(el, "expected <math>, found <%s>", el.QName())
	}
	if el.Space != Namespace {
		return nil, errorAt(el, "<math> is not in the MathML namespace")
	}
	args, err := operands(el)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, errorAt(el, "<math> must contain exactly one expression, found %d", len(args))
	}
	return decode(args[0])
}

// operands returns the element children of el, rejecting stray text.
func operands(el *xmltree.Element) ([]*xmltree.Element, error) {
	var out []*xmltree.Element
	for _, c := range el.Children {
		switch c := c.(type) {
		case *xmltree.Element:
			out = append(out, c)
		case xmltree.CharData:
			if strings.TrimSpace(string(c)) != "" {
				return nil, errorAt(el, "unexpected text in <%s>", el.QName())
			}
		}
	}
	return out, nil
}

func decode(el *xmltree.Element) (*ast.Node, error) {
	if el.Space != Namespace {
		return nil, errorAt(el, "element <%s> is not MathML", el.QName())
	}
	switch el.Local {
	case "cn":
		return decodeNumber(el)
	case "ci":
		name := strings.TrimSpace(el.Text())
		if name == "" {
			return nil, errorAt(el, "empty <ci>")
		}
		return ast.NewName(name), nil
	case "csymbol":
		url, _ := el.Attr("definitionURL")
		if url != SymbolTime {
			return nil, errorAt(el, "unsupported csymbol %q", url)
		}
		n := ast.New(ast.TypeNameTime)
		n.SetName(strings.TrimSpace(el.Text()))
		return n, nil
	case "exponentiale", "pi", "true", "false":
		t, _ := ast.LookupConstant(el.Local)
		return leaf(el, ast.New(t))
	case "infinity":
		return leaf(el, ast.NewReal(math.Inf(1)))
	case "notanumber":
		return leaf(el, ast.NewReal(math.NaN()))
	case "apply":
		return decodeApply(el)
	case "piecewise":
		return decodePiecewise(el)
	case "lambda":
		return decodeLambda(el)
	}
	return nil, errorAt(el, "unrecognized element <%s>", el.QName())
}

func leaf(el *xmltree.Element, n *ast.Node) (*ast.Node, error) {
	if len(el.Children) > 0 {
		return nil, errorAt(el, "<%s> must be empty", el.QName())
	}
	return n, nil
}

// cnParts splits <cn> content at an optional <sep/>.
func cnParts(el *xmltree.Element) ([]string, error) {
	parts := []string{""}
	for _, c := range el.Children {
		switch c := c.(type) {
		case xmltree.CharData:
			parts[len(parts)-1] += string(c)
		case *xmltree.Element:
			if c.Local != "sep" || c.Space != Namespace {
				return nil, errorAt(c, "unexpected <%s> in <cn>", c.QName())
			}
			parts = append(parts, "")
		}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func decodeNumber(el *xmltree.Element) (*ast.Node, error) {
	typ, ok := el.Attr("type")
	if !ok {
		typ = "real"
	}
	base := 10
	if b, ok := el.Attr("base"); ok {
		v, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil || v < 2 || v > 36 {
			return nil, errorAt(el, "invalid base %q", b)
		}
		base = v
	}
	parts, err := cnParts(el)
	if err != nil {
		return nil, err
	}
	want := 1
	if typ == "e-notation" || typ == "rational" {
		want = 2
	}
	if len(parts) != want {
		return nil, errorAt(el, "<cn type=%q> needs %d part(s), found %d", typ, want, len(parts))
	}

	bad := func() (*ast.Node, error) {
		return nil, errorAt(el, "invalid %s number %q", typ, strings.Join(parts, " <sep/> "))
	}
	switch typ {
	case "integer":
		v, err := strconv.ParseInt(parts[0], base, 64)
		if err != nil {
			return bad()
		}
		return ast.NewInteger(v), nil
	case "real":
		v, err := parseReal(parts[0], base)
		if err != nil {
			return bad()
		}
		return ast.NewReal(v), nil
	case "e-notation":
		m, err1 := strconv.ParseFloat(parts[0], 64)
		e, err2 := strconv.ParseInt(parts[1], 10, 64)
		if err1 != nil || err2 != nil {
			return bad()
		}
		return ast.NewRealE(m, e), nil
	case "rational":
		num, err1 := strconv.ParseInt(parts[0], base, 64)
		den, err2 := strconv.ParseInt(parts[1], base, 64)
		if err1 != nil || err2 != nil {
			return bad()
		}
		return ast.NewRational(num, den), nil
	}
	return nil, errorAt(el, "unsupported <cn> type %q", typ)
}

// parseReal parses a real in the given base. Non-decimal reals must be
// integral.
func parseReal(s string, base int) (float64, error) {
	if base == 10 {
		return strconv.ParseFloat(s, 64)
	}
	v, err := strconv.ParseInt(s, base, 64)
	return float64(v), err
}

func decodeApply(el *xmltree.Element) (*ast.Node, error) {
	kids, err := operands(el)
	if err != nil {
		return nil, err
	}
	if len(kids) == 0 {
		return nil, errorAt(el, "empty <apply>")
	}
	op, args := kids[0], kids[1:]
	if op.Space != Namespace {
		return nil, errorAt(op, "element <%s> is not MathML", op.QName())
	}

	var n *ast.Node
	qualifier := ""
	switch op.Local {
	case "ci":
		name := strings.TrimSpace(op.Text())
		if name == "" {
			return nil, errorAt(op, "empty <ci>")
		}
		n = ast.NewFunction(name)
	case "csymbol":
		url, _ := op.Attr("definitionURL")
		if url != SymbolDelay {
			return nil, errorAt(op, "unsupported csymbol operator %q", url)
		}
		n = ast.New(ast.TypeFunctionDelay)
		n.SetName(strings.TrimSpace(op.Text()))
	default:
		t, ok := operatorType(op.Local)
		if !ok {
			return nil, errorAt(op, "unrecognized operator <%s>", op.QName())
		}
		if len(op.Children) > 0 {
			return nil, errorAt(op, "operator <%s> must be empty", op.QName())
		}
		n = ast.New(t)
		switch t {
		case ast.TypeFunctionRoot:
			qualifier = "degree"
		case ast.TypeFunctionLog:
			qualifier = "logbase"
		}
	}

	for i, a := range args {
		var child *ast.Node
		if a.Local == "degree" || a.Local == "logbase" {
			if a.Local != qualifier || i != 0 {
				return nil, errorAt(a, "unexpected <%s>", a.QName())
			}
			child, err = decodeWrapped(a)
		} else {
			child, err = decode(a)
		}
		if err != nil {
			return nil, err
		}
		if err := n.AddChild(child); err != nil {
			return nil, errorAt(a, "%v", err)
		}
	}
	return n, nil
}

// decodeWrapped decodes the single expression inside a qualifier such as
// <degree> or <bvar>.
func decodeWrapped(el *xmltree.Element) (*ast.Node, error) {
	kids, err := operands(el)
	if err != nil {
		return nil, err
	}
	if len(kids) != 1 {
		return nil, errorAt(el, "<%s> must contain exactly one element", el.QName())
	}
	return decode(kids[0])
}

// operatorType maps an <apply> operator element to a node type.
func operatorType(local string) (ast.Type, bool) {
	switch local {
	case "plus":
		return ast.TypePlus, true
	case "minus":
		return ast.TypeMinus, true
	case "times":
		return ast.TypeTimes, true
	case "divide":
		return ast.TypeDivide, true
	case "power":
		return ast.TypePower, true
	}
	t, ok := ast.TypeForName(local)
	if !ok {
		return ast.TypeUnknown, false
	}
	switch t {
	case ast.TypeFunction, ast.TypeFunctionPiecewise, ast.TypeFunctionDelay,
		ast.TypeFunctionPower, ast.TypeLambda:
		return ast.TypeUnknown, false
	}
	if t.IsFunction() || t.IsLogical() || t.IsRelational() {
		return t, true
	}
	return ast.TypeUnknown, false
}

func decodePiecewise(el *xmltree.Element) (*ast.Node, error) {
	kids, err := operands(el)
	if err != nil {
		return nil, err
	}
	n := ast.New(ast.TypeFunctionPiecewise)
	for i, k := range kids {
		if k.Space != Namespace {
			return nil, errorAt(k, "element <%s> is not MathML", k.QName())
		}
		var want int
		switch k.Local {
		case "piece":
			want = 2
		case "otherwise":
			if i != len(kids)-1 {
				return nil, errorAt(k, "<otherwise> must be last")
			}
			want = 1
		default:
			return nil, errorAt(k, "unexpected <%s> in <piecewise>", k.QName())
		}
		parts, err := operands(k)
		if err != nil {
			return nil, err
		}
		if len(parts) != want {
			return nil, errorAt(k, "<%s> needs %d element(s), found %d", k.Local, want, len(parts))
		}
		for _, p := range parts {
			child, err := decode(p)
			if err != nil {
				return nil, err
			}
			if err := n.AddChild(child); err != nil {
				return nil, errorAt(p, "%v", err)
			}
		}
	}
	return n, nil
}

func decodeLambda(el *xmltree.Element) (*ast.Node, error) {
	kids, err := operands(el)
	if err != nil {
		return nil, err
	}
	if len(kids) == 0 {
		return nil, errorAt(el, "empty <lambda>")
	}
	n := ast.New(ast.TypeLambda)
	for i, k := range kids {
		var child *ast.Node
		isBvar := k.Local == "bvar" && k.Space == Namespace
		switch {
		case i < len(kids)-1 && !isBvar:
			return nil, errorAt(k, "expected <bvar>, found <%s>", k.QName())
		case i == len(kids)-1 && isBvar:
			return nil, errorAt(k, "<lambda> has no body")
		case isBvar:
			child, err = decodeWrapped(k)
			if err == nil && child.Type() != ast.TypeName {
				err = errorAt(k, "<bvar> must hold a <ci>")
			}
		default:
			child, err = decode(k)
		}
		if err != nil {
			return nil, err
		}
		if err := n.AddChild(child); err != nil {
			return nil, errorAt(k, "%v", err)
		}
	}
	return n, nil
}
