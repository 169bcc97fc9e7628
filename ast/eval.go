package ast

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnboundSymbol is returned when a name has no value.
	ErrUnboundSymbol = errors.New("ast: unbound symbol")

	// ErrNotEvaluable is returned for nodes that have no numeric value,
	// such as a bare lambda or an unknown-typed node.
	ErrNotEvaluable = errors.New("ast: node cannot be evaluated")
)

// Evaluator computes the numeric value of a tree. Truth values are 1 and
// 0. A zero Evaluator evaluates closed expressions.
type Evaluator struct {
	// Values resolves symbol names. May be nil.
	Values func(name string) (float64, bool)

	// Functions resolves user function names to their lambda definition.
	// May be nil.
	Functions func(name string) (*Node, bool)

	// Time is the value of the simulation time symbol.
	Time float64
}

// Evaluate computes n with symbol values taken from vars.
func Evaluate(n *Node, vars map[string]float64) (float64, error) {
	e := Evaluator{Values: func(name string) (float64, bool) {
		v, ok := vars[name]
		return v, ok
	}}
	return e.Eval(n)
}

// Eval computes the value of n.
func (e *Evaluator) Eval(n *Node) (float64, error) {
	return e.eval(n, nil)
}

func (e *Evaluator) eval(n *Node, scope map[string]float64) (float64, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrNotEvaluable)
	}
	switch n.typ {
	case TypeInteger:
		return float64(n.integer), nil
	case TypeReal, TypeRealE, TypeRational:
		return n.Real()
	case TypeName:
		if v, ok := scope[n.name]; ok {
			return v, nil
		}
		if e.Values != nil {
			if v, ok := e.Values(n.name); ok {
				return v, nil
			}
		}
		return 0, fmt.Errorf("%w: %s", ErrUnboundSymbol, n.name)
	case TypeNameTime:
		return e.Time, nil
	case TypeConstantE:
		return math.E, nil
	case TypeConstantPi:
		return math.Pi, nil
	case TypeConstantTrue:
		return 1, nil
	case TypeConstantFalse:
		return 0, nil
	case TypeFunctionPiecewise:
		return e.piecewise(n, scope)
	case TypeFunction:
		return e.call(n, scope)
	case TypeLambda, TypeUnknown:
		return 0, fmt.Errorf("%w: %s", ErrNotEvaluable, n.typ)
	}

	args := make([]float64, len(n.children))
	for i, c := range n.children {
		v, err := e.eval(c, scope)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return apply(n.typ, args)
}

func (e *Evaluator) piecewise(n *Node, scope map[string]float64) (float64, error) {
	pairs := len(n.children) / 2
	for i := range pairs {
		cond, err := e.eval(n.children[2*i+1], scope)
		if err != nil {
			return 0, err
		}
		if cond != 0 {
			return e.eval(n.children[2*i], scope)
		}
	}
	if len(n.children)%2 == 1 {
		return e.eval(n.children[len(n.children)-1], scope)
	}
	return math.NaN(), nil
}

func (e *Evaluator) call(n *Node, scope map[string]float64) (float64, error) {
	if e.Functions == nil {
		return 0, fmt.Errorf("%w: function %s", ErrUnboundSymbol, n.name)
	}
	def, ok := e.Functions(n.name)
	if !ok || def == nil || def.typ != TypeLambda || len(def.children) == 0 {
		return 0, fmt.Errorf("%w: function %s", ErrUnboundSymbol, n.name)
	}
	params := def.children[:len(def.children)-1]
	if len(params) != len(n.children) {
		return 0, fmt.Errorf("ast: function %s takes %d arguments, got %d",
			n.name, len(params), len(n.children))
	}
	inner := make(map[string]float64, len(params))
	for i, p := range params {
		v, err := e.eval(n.children[i], scope)
		if err != nil {
			return 0, err
		}
		inner[p.name] = v
	}
	return e.eval(def.children[len(def.children)-1], inner)
}

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func apply(t Type, a []float64) (float64, error) {
	need := func(k int) error {
		if len(a) != k {
			return fmt.Errorf("ast: %s expects %d arguments, got %d", t, k, len(a))
		}
		return nil
	}

	switch t {
	case TypePlus:
		sum := 0.0
		for _, v := range a {
			sum += v
		}
		return sum, nil
	case TypeTimes:
		prod := 1.0
		for _, v := range a {
			prod *= v
		}
		return prod, nil
	case TypeMinus:
		switch len(a) {
		case 1:
			return -a[0], nil
		case 2:
			return a[0] - a[1], nil
		}
		return 0, need(2)
	case TypeLogicalAnd:
		for _, v := range a {
			if v == 0 {
				return 0, nil
			}
		}
		return 1, nil
	case TypeLogicalOr:
		for _, v := range a {
			if v != 0 {
				return 1, nil
			}
		}
		return 0, nil
	case TypeLogicalXor:
		odd := false
		for _, v := range a {
			if v != 0 {
				odd = !odd
			}
		}
		return truth(odd), nil
	}

	// Root and log default to degree 2 and base 10 when given one operand.
	if len(a) == 1 {
		switch t {
		case TypeFunctionRoot:
			return math.Sqrt(a[0]), nil
		case TypeFunctionLog:
			return math.Log10(a[0]), nil
		}
	}
	if t.MaxChildren() == 2 {
		if err := need(2); err != nil {
			return 0, err
		}
		return binary(t, a[0], a[1])
	}
	if err := need(1); err != nil {
		return 0, err
	}
	return unary(t, a[0])
}

func binary(t Type, x, y float64) (float64, error) {
	switch t {
	case TypeDivide:
		return x / y, nil
	case TypePower, TypeFunctionPower:
		return math.Pow(x, y), nil
	case TypeFunctionRoot:
		return math.Pow(y, 1/x), nil
	case TypeFunctionLog:
		return math.Log(y) / math.Log(x), nil
	case TypeFunctionDelay:
		return x, nil
	case TypeRelationalEq:
		return truth(x == y), nil
	case TypeRelationalNeq:
		return truth(x != y), nil
	case TypeRelationalGt:
		return truth(x > y), nil
	case TypeRelationalGeq:
		return truth(x >= y), nil
	case TypeRelationalLt:
		return truth(x < y), nil
	case TypeRelationalLeq:
		return truth(x <= y), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNotEvaluable, t)
}

func unary(t Type, x float64) (float64, error) {
	switch t {
	case TypeFunctionAbs:
		return math.Abs(x), nil
	case TypeFunctionArccos:
		return math.Acos(x), nil
	case TypeFunctionArccosh:
		return math.Acosh(x), nil
	case TypeFunctionArccot:
		return math.Atan(1 / x), nil
	case TypeFunctionArccoth:
		return 0.5 * math.Log((x+1)/(x-1)), nil
	case TypeFunctionArccsc:
		return math.Asin(1 / x), nil
	case TypeFunctionArccsch:
		return math.Asinh(1 / x), nil
	case TypeFunctionArcsec:
		return math.Acos(1 / x), nil
	case TypeFunctionArcsech:
		return math.Acosh(1 / x), nil
	case TypeFunctionArcsin:
		return math.Asin(x), nil
	case TypeFunctionArcsinh:
		return math.Asinh(x), nil
	case TypeFunctionArctan:
		return math.Atan(x), nil
	case TypeFunctionArctanh:
		return math.Atanh(x), nil
	case TypeFunctionCeiling:
		return math.Ceil(x), nil
	case TypeFunctionCos:
		return math.Cos(x), nil
	case TypeFunctionCosh:
		return math.Cosh(x), nil
	case TypeFunctionCot:
		return 1 / math.Tan(x), nil
	case TypeFunctionCoth:
		return 1 / math.Tanh(x), nil
	case TypeFunctionCsc:
		return 1 / math.Sin(x), nil
	case TypeFunctionCsch:
		return 1 / math.Sinh(x), nil
	case TypeFunctionExp:
		return math.Exp(x), nil
	case TypeFunctionFactorial:
		return math.Gamma(x + 1), nil
	case TypeFunctionFloor:
		return math.Floor(x), nil
	case TypeFunctionLn:
		return math.Log(x), nil
	case TypeFunctionSec:
		return 1 / math.Cos(x), nil
	case TypeFunctionSech:
		return 1 / math.Cosh(x), nil
	case TypeFunctionSin:
		return math.Sin(x), nil
	case TypeFunctionSinh:
		return math.Sinh(x), nil
	case TypeFunctionTan:
		return math.Tan(x), nil
	case TypeFunctionTanh:
		return math.Tanh(x), nil
	case TypeLogicalNot:
		return truth(x == 0), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNotEvaluable, t)
}
