package mathml

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/internal/xmltree"
)

// Encode renders n as an indented <math> fragment.
func Encode(n *ast.Node) (string, error) {
	el, err := EncodeElement(n)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := xmltree.WriteElement(&buf, el, ""); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodeElement builds the <math> element for n. It returns
// ast.ErrUnknownType if the tree holds a node with no MathML form.
func EncodeElement(n *ast.Node) (*xmltree.Element, error) {
	if n == nil {
		return nil, ast.ErrNilNode
	}
	m := mathElement("math")
	m.SetAttr("xmlns", Namespace)
	if err := encode(m, n); err != nil {
		return nil, err
	}
	return m, nil
}

func mathElement(local string) *xmltree.Element {
	el := xmltree.NewElement(local)
	el.Space = Namespace
	return el
}

func add(parent *xmltree.Element, local string) *xmltree.Element {
	el := mathElement(local)
	parent.Append(el)
	return el
}

func spaced(s string) string {
	return " " + s + " "
}

func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func encode(parent *xmltree.Element, n *ast.Node) error {
	switch t := n.Type(); t {
	case ast.TypeUnknown:
		return fmt.Errorf("mathml: %w", ast.ErrUnknownType)

	case ast.TypeInteger:
		v, _ := n.Integer()
		cn := add(parent, "cn")
		cn.SetAttr("type", "integer")
		cn.AddText(spaced(strconv.FormatInt(v, 10)))
	case ast.TypeReal:
		v, _ := n.Real()
		switch {
		case math.IsNaN(v):
			add(parent, "notanumber")
		case math.IsInf(v, 1):
			add(parent, "infinity")
		case math.IsInf(v, -1):
			add(parent, "cn").AddText(spaced("-INF"))
		default:
			add(parent, "cn").AddText(spaced(formatReal(v)))
		}
	case ast.TypeRealE:
		m, _ := n.Mantissa()
		e, _ := n.Exponent()
		cn := add(parent, "cn")
		cn.SetAttr("type", "e-notation")
		cn.AddText(spaced(formatReal(m)))
		cn.Append(mathElement("sep"))
		cn.AddText(spaced(strconv.FormatInt(e, 10)))
	case ast.TypeRational:
		num, _ := n.Numerator()
		den, _ := n.Denominator()
		cn := add(parent, "cn")
		cn.SetAttr("type", "rational")
		cn.AddText(spaced(strconv.FormatInt(num, 10)))
		cn.Append(mathElement("sep"))
		cn.AddText(spaced(strconv.FormatInt(den, 10)))

	case ast.TypeName:
		name, _ := n.Name()
		add(parent, "ci").AddText(spaced(name))
	case ast.TypeNameTime:
		name, _ := n.Name()
		cs := add(parent, "csymbol")
		cs.SetAttr("encoding", "text")
		cs.SetAttr("definitionURL", SymbolTime)
		cs.AddText(spaced(name))

	case ast.TypeConstantE, ast.TypeConstantPi, ast.TypeConstantTrue, ast.TypeConstantFalse:
		add(parent, t.String())

	case ast.TypeFunctionPiecewise:
		return encodePiecewise(add(parent, "piecewise"), n)
	case ast.TypeLambda:
		return encodeLambda(add(parent, "lambda"), n)

	default:
		return encodeApply(add(parent, "apply"), n)
	}
	return nil
}

func encodeApply(apply *xmltree.Element, n *ast.Node) error {
	t := n.Type()
	switch t {
	case ast.TypeFunction:
		name, _ := n.Name()
		add(apply, "ci").AddText(spaced(name))
	case ast.TypeFunctionDelay:
		name, _ := n.Name()
		cs := add(apply, "csymbol")
		cs.SetAttr("encoding", "text")
		cs.SetAttr("definitionURL", SymbolDelay)
		cs.AddText(spaced(name))
	case ast.TypeFunctionPower:
		add(apply, "power")
	default:
		add(apply, t.String())
	}

	for i := range n.NumChildren() {
		c := n.Child(i)
		target := apply
		if i == 0 && n.NumChildren() == 2 {
			switch t {
			case ast.TypeFunctionRoot:
				target = add(apply, "degree")
			case ast.TypeFunctionLog:
				target = add(apply, "logbase")
			}
		}
		if err := encode(target, c); err != nil {
			return err
		}
	}
	return nil
}

func encodePiecewise(pw *xmltree.Element, n *ast.Node) error {
	count := n.NumChildren()
	for i := 0; i+1 < count; i += 2 {
		piece := add(pw, "piece")
		if err := encode(piece, n.Child(i)); err != nil {
			return err
		}
		if err := encode(piece, n.Child(i+1)); err != nil {
			return err
		}
	}
	if count%2 == 1 {
		return encode(add(pw, "otherwise"), n.Child(count-1))
	}
	return nil
}

func encodeLambda(lambda *xmltree.Element, n *ast.Node) error {
	count := n.NumChildren()
	for i := range count {
		c := n.Child(i)
		target := lambda
		if i < count-1 {
			if c.Type() != ast.TypeName {
				return fmt.Errorf("mathml: lambda parameter %d is %s, not a name", i, c.Type())
			}
			target = add(lambda, "bvar")
		}
		if err := encode(target, c); err != nil {
			return err
		}
	}
	return nil
}
