package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(name string, args ...*Node) *Node {
	return NewFunction(name, args...)
}

func TestCanonicalizeConstants(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{"exponentiale", TypeConstantE},
		{"pi", TypeConstantPi},
		{"true", TypeConstantTrue},
		{"false", TypeConstantFalse},
		{"Pi", TypeName},
		{"k1", TypeName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewName(tt.name)
			assert.True(t, Canonicalize(n))
			assert.Equal(t, tt.want, n.Type())
		})
	}
}

func TestCanonicalizeFunctions(t *testing.T) {
	tests := []struct {
		name string
		argc int
		want Type
	}{
		{"acos", 1, TypeFunctionArccos},
		{"ceil", 1, TypeFunctionCeiling},
		{"log", 1, TypeFunctionLn},
		{"log", 2, TypeFunctionLog},
		{"pow", 2, TypeFunctionPower},
		{"power", 2, TypeFunctionPower},
		{"arcsinh", 1, TypeFunctionArcsinh},
		{"piecewise", 3, TypeFunctionPiecewise},
		{"and", 3, TypeLogicalAnd},
		{"not", 1, TypeLogicalNot},
		{"geq", 2, TypeRelationalGeq},
		{"delay", 2, TypeFunctionDelay},
		{"SIN", 1, TypeFunctionSin},
		{"sin", 2, TypeFunction},
		{"myRate", 2, TypeFunction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := make([]*Node, tt.argc)
			for i := range args {
				args[i] = NewName("x")
			}
			n := call(tt.name, args...)
			assert.True(t, Canonicalize(n))
			assert.Equal(t, tt.want, n.Type())
			assert.Equal(t, tt.argc, n.NumChildren())
		})
	}
}

func TestCanonicalizeSynthesizesLiterals(t *testing.T) {
	sqr := call("sqr", NewName("x"))
	require.True(t, Canonicalize(sqr))
	want, _ := NewOperator(TypeFunctionPower, NewName("x"), NewInteger(2))
	assert.True(t, Equal(want, sqr))

	sqrt := call("sqrt", NewName("x"))
	require.True(t, Canonicalize(sqrt))
	want, _ = NewOperator(TypeFunctionRoot, NewInteger(2), NewName("x"))
	assert.True(t, Equal(want, sqrt))

	log10 := call("log10", NewName("x"))
	require.True(t, Canonicalize(log10))
	want, _ = NewOperator(TypeFunctionLog, NewInteger(10), NewName("x"))
	assert.True(t, Equal(want, log10))
	assert.Same(t, log10, log10.Child(0).Parent())
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	inner := call("sqrt", call("pow", NewName("pi"), NewInteger(3)))
	root, err := NewOperator(TypePlus, inner, call("log10", NewName("exponentiale")))
	require.NoError(t, err)

	require.True(t, Canonicalize(root))
	once := root.DeepCopy()
	require.True(t, Canonicalize(root))
	assert.True(t, Equal(once, root))
}

func TestCanonicalizeReportsUnknown(t *testing.T) {
	root, err := NewOperator(TypePlus, New(TypeUnknown), NewInteger(1))
	require.NoError(t, err)
	assert.False(t, Canonicalize(root))
	assert.False(t, Canonicalize(nil))
}

func TestEvaluate(t *testing.T) {
	pow, _ := NewOperator(TypePower, NewInteger(2), NewInteger(3))
	expr, _ := NewOperator(TypePlus, pow, NewInteger(1))
	v, err := Evaluate(expr, nil)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	rate, _ := NewOperator(TypeTimes, NewName("k1"), NewName("s1"))
	v, err = Evaluate(rate, map[string]float64{"k1": 0.5, "s1": 4})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = Evaluate(rate, map[string]float64{"k1": 0.5})
	assert.ErrorIs(t, err, ErrUnboundSymbol)
}

func TestEvaluateFunctions(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want float64
	}{
		{"root", call("sqrt", NewInteger(16)), 4},
		{"log10", call("log10", NewInteger(1000)), 3},
		{"ln", call("log", NewName("exponentiale")), 1},
		{"factorial", call("factorial", NewInteger(5)), 120},
		{"gt", call("gt", NewInteger(3), NewInteger(2)), 1},
		{"xor", call("xor", New(TypeConstantTrue), New(TypeConstantTrue)), 0},
		{"piecewise-hit", call("piecewise", NewInteger(1), New(TypeConstantFalse), NewInteger(2), New(TypeConstantTrue)), 2},
		{"piecewise-otherwise", call("piecewise", NewInteger(1), New(TypeConstantFalse), NewInteger(7)), 7},
		{"delay", call("delay", NewInteger(4), NewReal(0.5)), 4},
		{"rational", NewRational(3, 4), 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, Canonicalize(tt.node))
			got, err := Evaluate(tt.node, nil)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluateUserFunction(t *testing.T) {
	body, _ := NewOperator(TypeTimes, NewName("a"), NewName("b"))
	def, _ := NewOperator(TypeLambda, NewName("a"), NewName("b"), body)
	e := Evaluator{
		Functions: func(name string) (*Node, bool) {
			return def, name == "mul"
		},
		Time: 2,
	}
	v, err := e.Eval(call("mul", NewInteger(3), New(TypeNameTime)))
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = e.Eval(call("other", NewInteger(1)))
	assert.ErrorIs(t, err, ErrUnboundSymbol)

	_, err = e.Eval(def)
	assert.ErrorIs(t, err, ErrNotEvaluable)
}

func TestPiecewiseWithoutMatchIsNaN(t *testing.T) {
	n := call("piecewise", NewInteger(1), New(TypeConstantFalse))
	require.True(t, Canonicalize(n))
	v, err := Evaluate(n, nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}
