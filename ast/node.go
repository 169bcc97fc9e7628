// Package ast provides the expression tree shared by SBML formulas and
// MathML.
//
// A Node is a tagged variant: its Type selects which value fields are
// meaningful, and the accessors return ErrTypeMismatch when called on a
// node of another type. Every node has at most one owner: either a parent
// node or an Owner (a model field holding a math tree). Attaching a node
// somewhere new detaches it from wherever it was before.
package ast

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrTypeMismatch is returned by accessors called on a node of the
	// wrong type.
	ErrTypeMismatch = errors.New("ast: accessor does not match node type")

	// ErrArity is returned when a child would exceed the node type's
	// arity.
	ErrArity = errors.New("ast: too many children for node type")

	// ErrCycle is returned when attaching a node would make it its own
	// ancestor.
	ErrCycle = errors.New("ast: node cannot be attached below itself")

	// ErrNilNode is returned when a nil child is passed.
	ErrNilNode = errors.New("ast: nil node")

	// ErrUnknownType is returned by encoders given a node whose type has
	// no textual or MathML form.
	ErrUnknownType = errors.New("ast: unknown node type")
)

// Owner is implemented by holders of a math tree root, such as a rule's
// math field. ReleaseMath is called when n moves to another owner and
// must forget n without touching it.
type Owner interface {
	ReleaseMath(n *Node)
}

// Node is an expression tree node.
type Node struct {
	typ Type

	integer     int64
	real        float64 // value for TypeReal, mantissa for TypeRealE
	exponent    int64
	numerator   int64
	denominator int64
	name        string

	children []*Node
	parent   *Node
	owner    Owner
}

// New returns a childless node of type t.
func New(t Type) *Node {
	return &Node{typ: t}
}

// NewInteger returns an integer literal.
func NewInteger(v int64) *Node {
	return &Node{typ: TypeInteger, integer: v}
}

// NewReal returns a real literal.
func NewReal(v float64) *Node {
	return &Node{typ: TypeReal, real: v}
}

// NewRealE returns a real literal in mantissa/exponent form.
func NewRealE(mantissa float64, exponent int64) *Node {
	return &Node{typ: TypeRealE, real: mantissa, exponent: exponent}
}

// NewRational returns a rational literal.
func NewRational(numerator, denominator int64) *Node {
	return &Node{typ: TypeRational, numerator: numerator, denominator: denominator}
}

// NewName returns a symbol reference.
func NewName(name string) *Node {
	return &Node{typ: TypeName, name: name}
}

// NewFunction returns a call of the user function name with the given
// arguments. The arguments are detached from any previous owner.
func NewFunction(name string, args ...*Node) *Node {
	n := &Node{typ: TypeFunction, name: name}
	for _, a := range args {
		_ = n.AddChild(a)
	}
	return n
}

// NewOperator returns a node of type t with the given children. It
// returns ErrArity when t cannot hold that many children.
func NewOperator(t Type, children ...*Node) (*Node, error) {
	if !t.AcceptsChildren(len(children)) {
		return nil, fmt.Errorf("%w: %s with %d children", ErrArity, t, len(children))
	}
	n := &Node{typ: t}
	for _, c := range children {
		if err := n.AddChild(c); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Type returns the node type.
func (n *Node) Type() Type { return n.typ }

// SetType changes the node type. Value fields are kept so a name can be
// reused by a function node.
func (n *Node) SetType(t Type) { n.typ = t }

// IsNumber reports whether the node is a numeric literal.
func (n *Node) IsNumber() bool { return n.typ.IsNumber() }

// IsName reports whether the node is a symbol reference.
func (n *Node) IsName() bool { return n.typ.IsName() }

// IsConstant reports whether the node is a named constant.
func (n *Node) IsConstant() bool { return n.typ.IsConstant() }

// IsOperator reports whether the node is an arithmetic operator.
func (n *Node) IsOperator() bool { return n.typ.IsOperator() }

// IsFunction reports whether the node is a function call.
func (n *Node) IsFunction() bool { return n.typ.IsFunction() }

// IsLogical reports whether the node is a logical operator.
func (n *Node) IsLogical() bool { return n.typ.IsLogical() }

// IsRelational reports whether the node is a relational operator.
func (n *Node) IsRelational() bool { return n.typ.IsRelational() }

// IsBoolean reports whether the node evaluates to a truth value.
func (n *Node) IsBoolean() bool { return n.typ.IsBoolean() }

// IsLambda reports whether the node is a lambda.
func (n *Node) IsLambda() bool { return n.typ == TypeLambda }

// IsUnknown reports whether the node type has not been set.
func (n *Node) IsUnknown() bool { return n.typ == TypeUnknown }

// IsUMinus reports whether the node is a unary minus: a minus with
// exactly one child.
func (n *Node) IsUMinus() bool {
	return n.typ == TypeMinus && len(n.children) == 1
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Integer returns the value of an integer literal.
func (n *Node) Integer() (int64, error) {
	if n.typ != TypeInteger {
		return 0, n.mismatch("Integer")
	}
	return n.integer, nil
}

// Real returns the numeric value of a real, e-notation or rational
// literal. E-notation and rational values are computed, not stored.
func (n *Node) Real() (float64, error) {
	switch n.typ {
	case TypeReal:
		return n.real, nil
	case TypeRealE:
		return scaleDecimal(n.real, n.exponent), nil
	case TypeRational:
		return float64(n.numerator) / float64(n.denominator), nil
	}
	return 0, n.mismatch("Real")
}

// scaleDecimal returns m×10^exp rounded once, by shifting the decimal
// exponent of m's shortest representation and parsing the result.
func scaleDecimal(m float64, exp int64) float64 {
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return m
	}
	text := strconv.FormatFloat(m, 'e', -1, 64)
	i := strings.IndexByte(text, 'e')
	e, _ := strconv.ParseInt(text[i+1:], 10, 64)
	// Out of range values parse to zero or infinity, which is the result.
	v, _ := strconv.ParseFloat(text[:i]+"e"+strconv.FormatInt(e+exp, 10), 64)
	return v
}

// Mantissa returns the mantissa of an e-notation literal, or the value of
// a real literal.
func (n *Node) Mantissa() (float64, error) {
	if n.typ != TypeReal && n.typ != TypeRealE {
		return 0, n.mismatch("Mantissa")
	}
	return n.real, nil
}

// Exponent returns the exponent of an e-notation literal. Real literals
// have exponent zero.
func (n *Node) Exponent() (int64, error) {
	if n.typ != TypeReal && n.typ != TypeRealE {
		return 0, n.mismatch("Exponent")
	}
	return n.exponent, nil
}

// Numerator returns the numerator of a rational literal.
func (n *Node) Numerator() (int64, error) {
	if n.typ != TypeRational {
		return 0, n.mismatch("Numerator")
	}
	return n.numerator, nil
}

// Denominator returns the denominator of a rational literal.
func (n *Node) Denominator() (int64, error) {
	if n.typ != TypeRational {
		return 0, n.mismatch("Denominator")
	}
	return n.denominator, nil
}

// Character returns the operator character of an arithmetic operator.
func (n *Node) Character() (byte, error) {
	switch n.typ {
	case TypePlus:
		return '+', nil
	case TypeMinus:
		return '-', nil
	case TypeTimes:
		return '*', nil
	case TypeDivide:
		return '/', nil
	case TypePower:
		return '^', nil
	}
	return 0, n.mismatch("Character")
}

// Name returns the symbol name of a name, time, delay or user function
// node.
func (n *Node) Name() (string, error) {
	switch n.typ {
	case TypeName, TypeNameTime, TypeFunction, TypeFunctionDelay:
		return n.name, nil
	}
	return "", n.mismatch("Name")
}

// SetInteger makes the node an integer literal.
func (n *Node) SetInteger(v int64) {
	n.typ = TypeInteger
	n.integer = v
}

// SetReal makes the node a real literal.
func (n *Node) SetReal(v float64) {
	n.typ = TypeReal
	n.real = v
	n.exponent = 0
}

// SetRealE makes the node an e-notation literal.
func (n *Node) SetRealE(mantissa float64, exponent int64) {
	n.typ = TypeRealE
	n.real = mantissa
	n.exponent = exponent
}

// SetRational makes the node a rational literal.
func (n *Node) SetRational(numerator, denominator int64) {
	n.typ = TypeRational
	n.numerator = numerator
	n.denominator = denominator
}

// SetName sets the symbol name. Nodes that do not carry a name become
// plain name references.
func (n *Node) SetName(name string) {
	switch n.typ {
	case TypeName, TypeNameTime, TypeFunction, TypeFunctionDelay:
	default:
		n.typ = TypeName
	}
	n.name = name
}

// SetCharacter makes the node the arithmetic operator for c.
// Unrecognized characters make it TypeUnknown.
func (n *Node) SetCharacter(c byte) {
	switch c {
	case '+':
		n.typ = TypePlus
	case '-':
		n.typ = TypeMinus
	case '*':
		n.typ = TypeTimes
	case '/':
		n.typ = TypeDivide
	case '^':
		n.typ = TypePower
	default:
		n.typ = TypeUnknown
	}
}

func (n *Node) mismatch(accessor string) error {
	return fmt.Errorf("%w: %s on %s node", ErrTypeMismatch, accessor, n.typ)
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th child, or nil when i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the child slice.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// LeftChild returns the first child, or nil.
func (n *Node) LeftChild() *Node { return n.Child(0) }

// RightChild returns the last child when there are at least two, or nil.
func (n *Node) RightChild() *Node {
	if len(n.children) < 2 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Owner returns the owner of a root node, or nil.
func (n *Node) Owner() Owner { return n.owner }

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// AddChild appends c, detaching it from its previous parent or owner.
// On error neither tree is modified.
func (n *Node) AddChild(c *Node) error {
	return n.InsertChild(len(n.children), c)
}

// PrependChild inserts c as the first child.
func (n *Node) PrependChild(c *Node) error {
	return n.InsertChild(0, c)
}

// InsertChild inserts c at index i (0 <= i <= NumChildren).
func (n *Node) InsertChild(i int, c *Node) error {
	if err := n.checkAttach(c, len(n.children)+1); err != nil {
		return err
	}
	if i < 0 || i > len(n.children) {
		return fmt.Errorf("ast: child index %d out of range [0,%d]", i, len(n.children))
	}
	// Detaching from this same node shifts later indices.
	if c.parent == n {
		if idx := slices.Index(n.children, c); idx < i {
			i--
		}
	}
	c.Detach()
	n.children = slices.Insert(n.children, i, c)
	c.parent = n
	return nil
}

// ReplaceChild replaces the i-th child with c and returns the old child,
// which is left detached.
func (n *Node) ReplaceChild(i int, c *Node) (*Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("ast: child index %d out of range [0,%d)", i, len(n.children))
	}
	if err := n.checkAttach(c, len(n.children)); err != nil {
		return nil, err
	}
	old := n.children[i]
	if old == c {
		return old, nil
	}
	c.Detach()
	i = slices.Index(n.children, old)
	n.children[i] = c
	c.parent = n
	old.parent = nil
	return old, nil
}

// RemoveChild detaches and returns the i-th child, or nil when i is out
// of range.
func (n *Node) RemoveChild(i int) *Node {
	c := n.Child(i)
	if c == nil {
		return nil
	}
	c.Detach()
	return c
}

func (n *Node) checkAttach(c *Node, count int) error {
	if c == nil {
		return ErrNilNode
	}
	for a := n; a != nil; a = a.parent {
		if a == c {
			return ErrCycle
		}
	}
	if c.parent != n && !n.typ.AcceptsChildren(count) {
		return fmt.Errorf("%w: %s with %d children", ErrArity, n.typ, count)
	}
	return nil
}

// Detach removes n from its parent node or owner. Detaching a free node
// is a no-op.
func (n *Node) Detach() {
	if p := n.parent; p != nil {
		if i := slices.Index(p.children, n); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
		n.parent = nil
	}
	if o := n.owner; o != nil {
		n.owner = nil
		o.ReleaseMath(n)
	}
}

// MoveTo makes o the owner of n, detaching n from its previous parent or
// owner first.
func (n *Node) MoveTo(o Owner) {
	if n.owner == o && n.parent == nil {
		return
	}
	n.Detach()
	n.owner = o
}

// DeepCopy returns an independent copy of the subtree rooted at n. The
// copy has no parent and no owner.
func (n *Node) DeepCopy() *Node {
	if n == nil {
		return nil
	}
	cp := *n
	cp.parent = nil
	cp.owner = nil
	cp.children = nil
	if len(n.children) > 0 {
		cp.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			cc := c.DeepCopy()
			cc.parent = &cp
			cp.children[i] = cc
		}
	}
	return &cp
}

// Walk calls fn for n and each descendant in depth-first pre-order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Equal reports whether a and b are structurally equal: same types, same
// values and equal children in order. TypePower and TypeFunctionPower are
// treated as the same operator since MathML does not distinguish them.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if normalizePower(a.typ) != normalizePower(b.typ) || len(a.children) != len(b.children) {
		return false
	}
	switch a.typ {
	case TypeInteger:
		if a.integer != b.integer {
			return false
		}
	case TypeReal:
		if a.real != b.real && !(math.IsNaN(a.real) && math.IsNaN(b.real)) {
			return false
		}
	case TypeRealE:
		if a.real != b.real || a.exponent != b.exponent {
			return false
		}
	case TypeRational:
		if a.numerator != b.numerator || a.denominator != b.denominator {
			return false
		}
	case TypeName, TypeNameTime, TypeFunction:
		if a.name != b.name {
			return false
		}
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

func normalizePower(t Type) Type {
	if t == TypeFunctionPower {
		return TypePower
	}
	return t
}

// Names returns the distinct symbol names referenced by name nodes in
// the tree, in first-seen order. Lambda bound variables are excluded
// inside their lambda body.
func (n *Node) Names() []string {
	var out []string
	seen := make(map[string]struct{})
	var visit func(x *Node, bound map[string]struct{})
	visit = func(x *Node, bound map[string]struct{}) {
		if x.typ == TypeLambda {
			inner := make(map[string]struct{}, len(bound)+len(x.children))
			for k := range bound {
				inner[k] = struct{}{}
			}
			for _, bv := range x.children[:max(len(x.children)-1, 0)] {
				inner[bv.name] = struct{}{}
			}
			if len(x.children) > 0 {
				visit(x.children[len(x.children)-1], inner)
			}
			return
		}
		if x.typ == TypeName {
			if _, ok := bound[x.name]; !ok {
				if _, dup := seen[x.name]; !dup {
					seen[x.name] = struct{}{}
					out = append(out, x.name)
				}
			}
		}
		for _, c := range x.children {
			visit(c, bound)
		}
	}
	if n != nil {
		visit(n, nil)
	}
	return out
}

// FunctionCalls returns the distinct names of user functions called in
// the tree, in first-seen order.
func (n *Node) FunctionCalls() []string {
	var out []string
	n.Walk(func(x *Node) bool {
		if x.typ == TypeFunction && !slices.Contains(out, x.name) {
			out = append(out, x.name)
		}
		return true
	})
	return out
}
