package xmltree

import (
	"fmt"
	"sort"
)

// ValidationLevel selects how much structural checking Schema.Check does.
type ValidationLevel int

const (
	// ValidateNone checks nothing beyond well-formedness.
	ValidateNone ValidationLevel = iota
	// ValidateBasic checks the root element and its identifying attributes.
	ValidateBasic
	// ValidateFull additionally checks every element against the vocabulary.
	ValidateFull
)

func (v ValidationLevel) String() string {
	switch v {
	case ValidateNone:
		return "none"
	case ValidateBasic:
		return "basic"
	case ValidateFull:
		return "full"
	default:
		return fmt.Sprintf("ValidationLevel(%d)", int(v))
	}
}

// Schema is a structural description of a document type.
type Schema struct {
	// Root is the required local name of the root element.
	Root string

	// Namespace is the required root namespace. Empty accepts any.
	Namespace string

	// Attrs maps root attribute names to required values. An absent
	// attribute is accepted.
	Attrs map[string]string

	// Elements is the vocabulary of Namespace.
	Elements map[string]bool

	// Opaque names elements whose content is not checked.
	Opaque map[string]bool

	// Foreign lists other namespaces whose elements are accepted
	// without checking.
	Foreign map[string]bool
}

// Problem is a structural violation.
type Problem struct {
	Line   int
	Column int
	Msg    string
}

// Check validates doc at the requested level and returns the violations
// in document order.
func (s *Schema) Check(doc *Document, level ValidationLevel) []Problem {
	if level == ValidateNone || doc == nil || doc.Root == nil {
		return nil
	}
	var problems []Problem
	add := func(el *Element, format string, args ...any) {
		problems = append(problems, Problem{Line: el.Line, Column: el.Column, Msg: fmt.Sprintf(format, args...)})
	}

	root := doc.Root
	if root.Local != s.Root {
		add(root, "root element is <%s>, expected <%s>", root.QName(), s.Root)
		return problems
	}
	if s.Namespace != "" && root.Space != s.Namespace {
		add(root, "root namespace %q, expected %q", root.Space, s.Namespace)
	}
	names := make([]string, 0, len(s.Attrs))
	for name := range s.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v, ok := root.Attr(name); ok && v != s.Attrs[name] {
			add(root, "attribute %s=%q does not match %q", name, v, s.Attrs[name])
		}
	}
	if level < ValidateFull {
		return problems
	}

	var walk func(el *Element)
	walk = func(el *Element) {
		for _, c := range el.Elements() {
			switch {
			case c.Space != root.Space && s.Foreign[c.Space]:
			case c.Space != root.Space:
				add(c, "element <%s> is in namespace %q", c.QName(), c.Space)
			case !s.Elements[c.Local]:
				add(c, "unknown element <%s>", c.QName())
			case s.Opaque[c.Local]:
			default:
				walk(c)
			}
		}
	}
	walk(root)
	return problems
}
