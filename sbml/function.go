package sbml

import "github.com/gosbml/gosbml/ast"

// FunctionDefinition names a lambda usable in any math of the model.
type FunctionDefinition struct {
	SBase
	named
	math mathSlot
}

// NewFunctionDefinition returns a function with the given id and lambda.
func NewFunctionDefinition(id string, lambda *ast.Node) *FunctionDefinition {
	fd := &FunctionDefinition{}
	if id != "" {
		fd.SetID(id)
	}
	fd.SetMath(lambda)
	return fd
}

// TypeCode returns TypeFunctionDefinition.
func (fd *FunctionDefinition) TypeCode() TypeCode { return TypeFunctionDefinition }

// Math returns the lambda, or nil.
func (fd *FunctionDefinition) Math() *ast.Node { return fd.math.n }

// SetMath takes ownership of n as the function body.
func (fd *FunctionDefinition) SetMath(n *ast.Node) { fd.math.set(n) }

// IsSetMath reports whether the function has a body.
func (fd *FunctionDefinition) IsSetMath() bool { return fd.math.n != nil }

// Arguments returns the bound variable names of the lambda.
func (fd *FunctionDefinition) Arguments() []string {
	n := fd.math.n
	if n == nil || n.Type() != ast.TypeLambda || n.NumChildren() == 0 {
		return nil
	}
	args := make([]string, 0, n.NumChildren()-1)
	for i := range n.NumChildren() - 1 {
		name, err := n.Child(i).Name()
		if err != nil {
			continue
		}
		args = append(args, name)
	}
	return args
}

// Body returns the last child of the lambda, or nil.
func (fd *FunctionDefinition) Body() *ast.Node {
	n := fd.math.n
	if n == nil || n.Type() != ast.TypeLambda || n.NumChildren() == 0 {
		return nil
	}
	return n.Child(n.NumChildren() - 1)
}
