package ast

import (
	"fmt"
	"strings"
)

// Type identifies what an AST node represents.
type Type int

const (
	TypeUnknown Type = iota

	TypeInteger  // integer literal
	TypeReal     // real literal
	TypeRealE    // real literal in mantissa/exponent form
	TypeRational // rational literal numerator/denominator

	TypeName     // symbol reference
	TypeNameTime // simulation time symbol (csymbol time)

	TypeConstantE
	TypeConstantFalse
	TypeConstantPi
	TypeConstantTrue

	TypePlus
	TypeMinus
	TypeTimes
	TypeDivide
	TypePower

	TypeLambda

	TypeFunction // call of a user-defined function
	TypeFunctionAbs
	TypeFunctionArccos
	TypeFunctionArccosh
	TypeFunctionArccot
	TypeFunctionArccoth
	TypeFunctionArccsc
	TypeFunctionArccsch
	TypeFunctionArcsec
	TypeFunctionArcsech
	TypeFunctionArcsin
	TypeFunctionArcsinh
	TypeFunctionArctan
	TypeFunctionArctanh
	TypeFunctionCeiling
	TypeFunctionCos
	TypeFunctionCosh
	TypeFunctionCot
	TypeFunctionCoth
	TypeFunctionCsc
	TypeFunctionCsch
	TypeFunctionDelay
	TypeFunctionExp
	TypeFunctionFactorial
	TypeFunctionFloor
	TypeFunctionLn
	TypeFunctionLog
	TypeFunctionPiecewise
	TypeFunctionPower
	TypeFunctionRoot
	TypeFunctionSec
	TypeFunctionSech
	TypeFunctionSin
	TypeFunctionSinh
	TypeFunctionTan
	TypeFunctionTanh

	TypeLogicalAnd
	TypeLogicalNot
	TypeLogicalOr
	TypeLogicalXor

	TypeRelationalEq
	TypeRelationalGeq
	TypeRelationalGt
	TypeRelationalLeq
	TypeRelationalLt
	TypeRelationalNeq

	typeEnd
)

// typeNames holds the canonical name of each type. Function, logical and
// relational names are the MathML element names.
var typeNames = [typeEnd]string{
	TypeUnknown:  "unknown",
	TypeInteger:  "integer",
	TypeReal:     "real",
	TypeRealE:    "e-notation",
	TypeRational: "rational",

	TypeName:     "name",
	TypeNameTime: "time",

	TypeConstantE:     "exponentiale",
	TypeConstantFalse: "false",
	TypeConstantPi:    "pi",
	TypeConstantTrue:  "true",

	TypePlus:   "plus",
	TypeMinus:  "minus",
	TypeTimes:  "times",
	TypeDivide: "divide",
	TypePower:  "power",

	TypeLambda: "lambda",

	TypeFunction:          "function",
	TypeFunctionAbs:       "abs",
	TypeFunctionArccos:    "arccos",
	TypeFunctionArccosh:   "arccosh",
	TypeFunctionArccot:    "arccot",
	TypeFunctionArccoth:   "arccoth",
	TypeFunctionArccsc:    "arccsc",
	TypeFunctionArccsch:   "arccsch",
	TypeFunctionArcsec:    "arcsec",
	TypeFunctionArcsech:   "arcsech",
	TypeFunctionArcsin:    "arcsin",
	TypeFunctionArcsinh:   "arcsinh",
	TypeFunctionArctan:    "arctan",
	TypeFunctionArctanh:   "arctanh",
	TypeFunctionCeiling:   "ceiling",
	TypeFunctionCos:       "cos",
	TypeFunctionCosh:      "cosh",
	TypeFunctionCot:       "cot",
	TypeFunctionCoth:      "coth",
	TypeFunctionCsc:       "csc",
	TypeFunctionCsch:      "csch",
	TypeFunctionDelay:     "delay",
	TypeFunctionExp:       "exp",
	TypeFunctionFactorial: "factorial",
	TypeFunctionFloor:     "floor",
	TypeFunctionLn:        "ln",
	TypeFunctionLog:       "log",
	TypeFunctionPiecewise: "piecewise",
	TypeFunctionPower:     "pow",
	TypeFunctionRoot:      "root",
	TypeFunctionSec:       "sec",
	TypeFunctionSech:      "sech",
	TypeFunctionSin:       "sin",
	TypeFunctionSinh:      "sinh",
	TypeFunctionTan:       "tan",
	TypeFunctionTanh:      "tanh",

	TypeLogicalAnd: "and",
	TypeLogicalNot: "not",
	TypeLogicalOr:  "or",
	TypeLogicalXor: "xor",

	TypeRelationalEq:  "eq",
	TypeRelationalGeq: "geq",
	TypeRelationalGt:  "gt",
	TypeRelationalLeq: "leq",
	TypeRelationalLt:  "lt",
	TypeRelationalNeq: "neq",
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		m[name] = Type(t)
	}
	return m
}()

func (t Type) String() string {
	if t >= 0 && t < typeEnd {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// TypeForName returns the type whose canonical name is name.
// The lookup is case-sensitive.
func TypeForName(name string) (Type, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// IsNumber reports whether t is a numeric literal.
func (t Type) IsNumber() bool {
	return t >= TypeInteger && t <= TypeRational
}

// IsName reports whether t is a symbol reference.
func (t Type) IsName() bool {
	return t == TypeName || t == TypeNameTime
}

// IsConstant reports whether t is one of the four named constants.
func (t Type) IsConstant() bool {
	return t >= TypeConstantE && t <= TypeConstantTrue
}

// IsOperator reports whether t is an arithmetic operator.
func (t Type) IsOperator() bool {
	return t >= TypePlus && t <= TypePower
}

// IsFunction reports whether t is a built-in or user function.
func (t Type) IsFunction() bool {
	return t >= TypeFunction && t <= TypeFunctionTanh
}

// IsLogical reports whether t is a logical operator.
func (t Type) IsLogical() bool {
	return t >= TypeLogicalAnd && t <= TypeLogicalXor
}

// IsRelational reports whether t is a relational operator.
func (t Type) IsRelational() bool {
	return t >= TypeRelationalEq && t <= TypeRelationalNeq
}

// IsBoolean reports whether nodes of type t evaluate to a truth value.
func (t Type) IsBoolean() bool {
	return t.IsLogical() || t.IsRelational() ||
		t == TypeConstantTrue || t == TypeConstantFalse
}

// Unlimited is returned by MaxChildren for n-ary types.
const Unlimited = -1

// MaxChildren returns the largest number of children a node of type t
// accepts, or Unlimited.
func (t Type) MaxChildren() int {
	switch {
	case t == TypeUnknown:
		return Unlimited
	case t.IsNumber(), t.IsName(), t.IsConstant():
		return 0
	}
	switch t {
	case TypePlus, TypeTimes, TypeLambda, TypeFunction, TypeFunctionPiecewise,
		TypeLogicalAnd, TypeLogicalOr, TypeLogicalXor:
		return Unlimited
	case TypeMinus, TypeDivide, TypePower, TypeFunctionPower, TypeFunctionRoot,
		TypeFunctionLog, TypeFunctionDelay:
		return 2
	}
	if t.IsRelational() {
		return 2
	}
	if t.IsFunction() || t == TypeLogicalNot {
		return 1
	}
	return 0
}

// AcceptsChildren reports whether a node of type t may hold n children.
func (t Type) AcceptsChildren(n int) bool {
	limit := t.MaxChildren()
	return limit == Unlimited || n <= limit
}

// legacyFunction is an entry in the Level 1 function-name table.
type legacyFunction struct {
	typ   Type
	arity int
	// literal, when non-nil, is a synthesized integer child; prepend
	// controls whether it goes before or after the argument.
	literal *int64
	prepend bool
}

func lit(v int64) *int64 { return &v }

// legacyFunctions maps Level 1 formula function names to their typed
// equivalents. Names are matched case-insensitively.
var legacyFunctions = map[string]legacyFunction{
	"abs":   {typ: TypeFunctionAbs, arity: 1},
	"acos":  {typ: TypeFunctionArccos, arity: 1},
	"asin":  {typ: TypeFunctionArcsin, arity: 1},
	"atan":  {typ: TypeFunctionArctan, arity: 1},
	"ceil":  {typ: TypeFunctionCeiling, arity: 1},
	"cos":   {typ: TypeFunctionCos, arity: 1},
	"exp":   {typ: TypeFunctionExp, arity: 1},
	"floor": {typ: TypeFunctionFloor, arity: 1},
	"log":   {typ: TypeFunctionLn, arity: 1},
	"log10": {typ: TypeFunctionLog, arity: 1, literal: lit(10), prepend: true},
	"pow":   {typ: TypeFunctionPower, arity: 2},
	"sqr":   {typ: TypeFunctionPower, arity: 1, literal: lit(2)},
	"sqrt":  {typ: TypeFunctionRoot, arity: 1, literal: lit(2), prepend: true},
	"sin":   {typ: TypeFunctionSin, arity: 1},
	"tan":   {typ: TypeFunctionTan, arity: 1},
}

// LookupFunction returns the typed function, logical or relational
// operator for a call of name with argc arguments. The Level 1 table is
// consulted before the MathML names so ambiguous short names such as
// "log" resolve to their legacy meaning.
func LookupFunction(name string, argc int) (Type, bool) {
	lower := strings.ToLower(name)
	if lf, ok := legacyFunctions[lower]; ok && lf.arity == argc {
		return lf.typ, true
	}
	t, ok := typesByName[lower]
	if lower == "power" {
		t, ok = TypeFunctionPower, true
	}
	if !ok || t == TypeName || t == TypeNameTime || t == TypeFunction {
		return TypeUnknown, false
	}
	if !t.IsFunction() && !t.IsLogical() && !t.IsRelational() && t != TypeLambda {
		return TypeUnknown, false
	}
	if !t.AcceptsChildren(argc) {
		return TypeUnknown, false
	}
	return t, true
}

// LookupConstant returns the constant type for one of the reserved names
// exponentiale, pi, true and false. The match is exact.
func LookupConstant(name string) (Type, bool) {
	switch name {
	case "exponentiale":
		return TypeConstantE, true
	case "pi":
		return TypeConstantPi, true
	case "true":
		return TypeConstantTrue, true
	case "false":
		return TypeConstantFalse, true
	}
	return TypeUnknown, false
}
