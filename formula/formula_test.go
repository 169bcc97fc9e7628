package formula

import (
	"errors"
	"math"
	"testing"

	"github.com/gosbml/gosbml/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"k1*s1", "k1*s1"},
		{"2^3+1", "2^3 + 1"},
		{"a+b*c", "a + b*c"},
		{"(a+b)*c", "(a + b)*c"},
		{"a-b-c", "a - b - c"},
		{"a-(b-c)", "a - (b - c)"},
		{"a/(b*c)", "a/(b*c)"},
		{"-x^2", "-x^2"},
		{"--x", "-(-x)"},
		{"a*-b", "a*(-b)"},
		{"2^-1", "2^(-1)"},
		{"2^3^2", "2^3^2"},
		{"(2^3)^2", "(2^3)^2"},
		{"pi*r^2", "pi*r^2"},
		{"1.5e3", "1.5e3"},
		{"2.5", "2.5"},
		{"sqrt(x)", "sqrt(x)"},
		{"log10(x)", "log10(x)"},
		{"log(x)", "ln(x)"},
		{"sqr(x)", "pow(x, 2)"},
		{"pow(a,b)", "pow(a, b)"},
		{"root(3, x)", "root(3, x)"},
		{"f(x,y)", "f(x, y)"},
		{"g()", "g()"},
		{"gt(a, b)", "gt(a, b)"},
		{"delay(x, 1)", "delay(x, 1)"},
		{"  Vmax * S / ( Km + S )  ", "Vmax*S/(Km + S)"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := Parse(tt.in)
			require.NoError(t, err)
			got, err := Format(n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{"", 0},
		{"a+", 2},
		{"(a", 2},
		{"a b", 2},
		{"f(a,", 4},
		{"a # b", 2},
		{")", 0},
		{"2*", 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := Parse(tt.in)
			assert.Nil(t, n)
			var se *SyntaxError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, tt.offset, se.Offset)
		})
	}
}

func TestParseCanonicalizes(t *testing.T) {
	n, err := Parse("sqrt(x)")
	require.NoError(t, err)
	assert.Equal(t, ast.TypeFunctionRoot, n.Type())
	require.Equal(t, 2, n.NumChildren())
	deg, err := n.Child(0).Integer()
	require.NoError(t, err)
	assert.Equal(t, int64(2), deg)

	n, err = Parse("exponentiale + true")
	require.NoError(t, err)
	assert.Equal(t, ast.TypeConstantE, n.Child(0).Type())
	assert.Equal(t, ast.TypeConstantTrue, n.Child(1).Type())
}

func TestParseNumbers(t *testing.T) {
	n, err := Parse("42")
	require.NoError(t, err)
	assert.Equal(t, ast.TypeInteger, n.Type())

	n, err = Parse("99999999999999999999")
	require.NoError(t, err)
	assert.Equal(t, ast.TypeReal, n.Type(), "integer overflow becomes real")

	n, err = Parse("2E-3")
	require.NoError(t, err)
	assert.Equal(t, ast.TypeRealE, n.Type())
	exp, _ := n.Exponent()
	assert.Equal(t, int64(-3), exp)

	n, err = Parse("INF")
	require.NoError(t, err)
	v, _ := n.Real()
	assert.True(t, math.IsInf(v, 1))
}

func TestRealsSurviveFormatting(t *testing.T) {
	values := []float64{1.2345e-07, 1.1e-300, 9.87654321e-12, 6.02214076e+23, 0.1, 1e21}
	for _, v := range values {
		text, err := Format(ast.NewReal(v))
		require.NoError(t, err)
		n, err := Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, ast.TypeReal, n.Type(), text)
		got, err := n.Real()
		require.NoError(t, err)
		assert.Equal(t, v, got, text)
	}
}

func TestENotationValueIsExact(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.2345e-7", 1.2345e-07},
		{"1.1e-300", 1.1e-300},
		{"9.87654321e-12", 9.87654321e-12},
		{"0.5e3", 500},
		{"1e400", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := Parse(tt.in)
			require.NoError(t, err)
			require.Equal(t, ast.TypeRealE, n.Type())
			v, err := n.Real()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)

			text, err := Format(n)
			require.NoError(t, err)
			again, err := Parse(text)
			require.NoError(t, err, text)
			assert.True(t, ast.Equal(n, again), text)
		})
	}
}

func TestPowerBeforeAddition(t *testing.T) {
	n, err := Parse("2^3+1")
	require.NoError(t, err)
	v, err := ast.Evaluate(n, nil)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	n, err = Parse("-x^2")
	require.NoError(t, err)
	v, err = ast.Evaluate(n, map[string]float64{"x": 3})
	require.NoError(t, err)
	assert.Equal(t, -9.0, v)

	n, err = Parse("2^3^2")
	require.NoError(t, err)
	v, err = ast.Evaluate(n, nil)
	require.NoError(t, err)
	assert.Equal(t, 512.0, v)
}

func TestRoundTripPreservesValue(t *testing.T) {
	env := map[string]float64{"a": 1.5, "b": -2, "c": 4, "x": 0.3, "k1": 7, "s1": 0.25}
	formulas := []string{
		"a - (b - c)",
		"a/b/c",
		"a/(b/c)",
		"-(a + b)*c",
		"a^b^c",
		"(a^b)^c",
		"-a^2 + b*-c",
		"sqrt(c) + log10(c) + log(c)",
		"sqr(a) - pow(b, 2)",
		"exp(x)*sin(x)/cos(x)",
		"k1*s1/(1 + s1)",
		"1.5e-3*a",
	}
	for _, f := range formulas {
		t.Run(f, func(t *testing.T) {
			orig, err := Parse(f)
			require.NoError(t, err)
			text, err := Format(orig)
			require.NoError(t, err)
			again, err := Parse(text)
			require.NoError(t, err, text)

			want, err := ast.Evaluate(orig, env)
			require.NoError(t, err)
			got, err := ast.Evaluate(again, env)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-12, text)

			text2, err := Format(again)
			require.NoError(t, err)
			assert.Equal(t, text, text2, "formatting is stable")
		})
	}
}

func TestFormatBuiltTrees(t *testing.T) {
	empty := ast.New(ast.TypePlus)
	s, err := Format(empty)
	require.NoError(t, err)
	assert.Equal(t, "0", s)

	negBase, err := ast.NewOperator(ast.TypePower, ast.NewReal(-2), ast.NewInteger(2))
	require.NoError(t, err)
	s, err = Format(negBase)
	require.NoError(t, err)
	assert.Equal(t, "(-2)^2", s)

	s, err = Format(ast.NewRational(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "(1/2)", s)

	s, err = Format(ast.NewReal(math.NaN()))
	require.NoError(t, err)
	assert.Equal(t, "NaN", s)

	nested, err := ast.NewOperator(ast.TypePlus, ast.NewName("a"), ast.New(ast.TypeUnknown))
	require.NoError(t, err)
	_, err = Format(nested)
	assert.ErrorIs(t, err, ast.ErrUnknownType)

	_, err = Format(nil)
	assert.ErrorIs(t, err, ast.ErrNilNode)
}
