package ast

import "strings"

// Canonicalize rewrites recognized names and function calls in the tree
// rooted at n into their dedicated node types:
//
//   - the names exponentiale, pi, true and false become constants;
//   - user function calls whose name is a Level 1 or MathML function,
//     logical or relational operator become that typed node. Level 1
//     names are tried first, so log(x) is the natural logarithm;
//   - sqr(x) becomes pow(x, 2), sqrt(x) becomes root(2, x) and
//     log10(x) becomes log(10, x), each with a synthesized integer child.
//
// The rewrite is one-way. It reports false when any node is still of
// unknown type afterwards; unrecognized user functions are not failures.
func Canonicalize(n *Node) bool {
	if n == nil {
		return false
	}
	ok := true
	n.Walk(func(x *Node) bool {
		if !x.canonicalizeSelf() {
			ok = false
		}
		return true
	})
	return ok
}

func (n *Node) canonicalizeSelf() bool {
	switch n.typ {
	case TypeUnknown:
		return false
	case TypeName:
		if t, ok := LookupConstant(n.name); ok {
			n.typ = t
			n.name = ""
		}
	case TypeFunction:
		n.canonicalizeFunction()
	}
	return true
}

func (n *Node) canonicalizeFunction() {
	lower := strings.ToLower(n.name)
	argc := len(n.children)

	if lf, ok := legacyFunctions[lower]; ok && lf.arity == argc {
		n.typ = lf.typ
		n.name = ""
		if lf.literal != nil {
			c := NewInteger(*lf.literal)
			c.parent = n
			if lf.prepend {
				n.children = append([]*Node{c}, n.children...)
			} else {
				n.children = append(n.children, c)
			}
		}
		return
	}

	t, ok := LookupFunction(n.name, argc)
	if !ok {
		return
	}
	n.typ = t
	if t != TypeFunctionDelay {
		n.name = ""
	}
}
