package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gosbml/gosbml/ast"
)

// Binding strength of each printed form. Higher binds tighter.
const (
	precSum = iota + 1
	precProduct
	precUnary
	precPower
	precAtom
)

// Format renders n as infix formula text with the fewest parentheses
// that preserve its structure. Relational, logical, piecewise and lambda
// nodes use function-call syntax. It returns ast.ErrUnknownType when the
// tree contains an unknown-typed node.
func Format(n *ast.Node) (string, error) {
	if n == nil {
		return "", ast.ErrNilNode
	}
	var b strings.Builder
	if err := write(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func precedence(n *ast.Node) int {
	switch n.Type() {
	case ast.TypePlus, ast.TypeTimes:
		switch n.NumChildren() {
		case 0:
			return precAtom
		case 1:
			return precedence(n.Child(0))
		}
		if n.Type() == ast.TypePlus {
			return precSum
		}
		return precProduct
	case ast.TypeMinus:
		switch n.NumChildren() {
		case 1:
			return precUnary
		case 2:
			return precSum
		}
	case ast.TypeDivide:
		if n.NumChildren() == 2 {
			return precProduct
		}
	case ast.TypePower:
		if n.NumChildren() == 2 {
			return precPower
		}
	case ast.TypeInteger:
		if v, _ := n.Integer(); v < 0 {
			return precUnary
		}
	case ast.TypeReal, ast.TypeRealE:
		if m, _ := n.Mantissa(); math.Signbit(m) && !math.IsNaN(m) {
			return precUnary
		}
	}
	return precAtom
}

func write(b *strings.Builder, n *ast.Node) error {
	switch t := n.Type(); t {
	case ast.TypeUnknown:
		return fmt.Errorf("formula: %w", ast.ErrUnknownType)

	case ast.TypeInteger:
		v, _ := n.Integer()
		b.WriteString(strconv.FormatInt(v, 10))
	case ast.TypeReal:
		v, _ := n.Real()
		b.WriteString(formatReal(v))
	case ast.TypeRealE:
		m, _ := n.Mantissa()
		e, _ := n.Exponent()
		b.WriteString(strconv.FormatFloat(m, 'f', -1, 64))
		b.WriteByte('e')
		b.WriteString(strconv.FormatInt(e, 10))
	case ast.TypeRational:
		num, _ := n.Numerator()
		den, _ := n.Denominator()
		fmt.Fprintf(b, "(%d/%d)", num, den)

	case ast.TypeName:
		name, _ := n.Name()
		b.WriteString(name)
	case ast.TypeNameTime:
		name, _ := n.Name()
		if name == "" {
			name = "time"
		}
		b.WriteString(name)
	case ast.TypeConstantE, ast.TypeConstantPi, ast.TypeConstantTrue, ast.TypeConstantFalse:
		b.WriteString(t.String())

	case ast.TypePlus:
		return writeNary(b, n, " + ", precSum, "0")
	case ast.TypeTimes:
		return writeNary(b, n, "*", precProduct, "1")
	case ast.TypeMinus:
		switch n.NumChildren() {
		case 1:
			b.WriteByte('-')
			return writeOperand(b, n.Child(0), precedence(n.Child(0)) <= precUnary)
		case 2:
			return writeInfix(b, n, " - ", precSum, false)
		}
		return writeCall(b, t.String(), n)
	case ast.TypeDivide:
		if n.NumChildren() == 2 {
			return writeInfix(b, n, "/", precProduct, false)
		}
		return writeCall(b, t.String(), n)
	case ast.TypePower:
		if n.NumChildren() == 2 {
			return writeInfix(b, n, "^", precPower, true)
		}
		return writeCall(b, "pow", n)

	case ast.TypeFunction, ast.TypeFunctionDelay:
		name, _ := n.Name()
		if name == "" {
			name = t.String()
		}
		return writeCall(b, name, n)
	case ast.TypeFunctionRoot:
		if arg, ok := defaultedArg(n, 2); ok {
			return writeCall(b, "sqrt", arg)
		}
		return writeCall(b, t.String(), n)
	case ast.TypeFunctionLog:
		if arg, ok := defaultedArg(n, 10); ok {
			return writeCall(b, "log10", arg)
		}
		return writeCall(b, t.String(), n)

	default:
		return writeCall(b, t.String(), n)
	}
	return nil
}

// defaultedArg matches root and log nodes whose first operand is the
// given default degree or base, or is absent. It returns the remaining
// arguments.
func defaultedArg(n *ast.Node, deflt int64) (children, bool) {
	switch n.NumChildren() {
	case 1:
		return n, true
	case 2:
		if v, err := n.Child(0).Integer(); err == nil && v == deflt {
			return argsOf(n.Child(1)), true
		}
	}
	return nil, false
}

// argList holds call arguments without reparenting them.
type argList []*ast.Node

func (a argList) NumChildren() int      { return len(a) }
func (a argList) Child(i int) *ast.Node { return a[i] }

type children interface {
	NumChildren() int
	Child(i int) *ast.Node
}

func argsOf(n *ast.Node) children { return argList{n} }

func writeCall(b *strings.Builder, name string, args children) error {
	b.WriteString(name)
	b.WriteByte('(')
	for i := range args.NumChildren() {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := write(b, args.Child(i)); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}

func writeNary(b *strings.Builder, n *ast.Node, op string, prec int, empty string) error {
	switch n.NumChildren() {
	case 0:
		b.WriteString(empty)
		return nil
	case 1:
		return write(b, n.Child(0))
	}
	return writeInfix(b, n, op, prec, false)
}

func writeInfix(b *strings.Builder, n *ast.Node, op string, prec int, rightAssoc bool) error {
	for i := range n.NumChildren() {
		c := n.Child(i)
		cp := precedence(c)
		var paren bool
		switch {
		case i == 0 && rightAssoc:
			paren = cp <= prec
		case i == 0:
			paren = cp < prec
		case rightAssoc:
			paren = cp < prec
		default:
			// Unary operands after the first are always parenthesized.
			paren = cp <= prec || cp == precUnary
		}
		if i > 0 {
			b.WriteString(op)
		}
		if err := writeOperand(b, c, paren); err != nil {
			return err
		}
	}
	return nil
}

func writeOperand(b *strings.Builder, n *ast.Node, paren bool) error {
	if !paren {
		return write(b, n)
	}
	b.WriteByte('(')
	if err := write(b, n); err != nil {
		return err
	}
	b.WriteByte(')')
	return nil
}

// formatReal writes v in plain decimal form. E-notation text parses as
// an e-notation literal, so it is reserved for nodes of that type.
func formatReal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
