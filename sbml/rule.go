package sbml

import "github.com/gosbml/gosbml/ast"

// Rule is an algebraic, assignment or rate rule. Level 1 scalar and rate
// rules both map onto it: the Level 1 type attribute is derived from the
// kind, and the Level 1 element name from what the variable refers to.
type Rule struct {
	SBase
	kind     RuleKind
	variable string
	math     mathSlot
}

// NewAlgebraicRule returns an algebraic rule with math n.
func NewAlgebraicRule(n *ast.Node) *Rule {
	r := &Rule{kind: RuleAlgebraic}
	r.SetMath(n)
	return r
}

// NewAssignmentRule returns a rule assigning n to variable.
func NewAssignmentRule(variable string, n *ast.Node) *Rule {
	r := &Rule{kind: RuleAssignment, variable: variable}
	r.SetMath(n)
	return r
}

// NewRateRule returns a rule giving the rate of change of variable.
func NewRateRule(variable string, n *ast.Node) *Rule {
	r := &Rule{kind: RuleRate, variable: variable}
	r.SetMath(n)
	return r
}

// TypeCode returns the Level 2 type code for the rule kind.
func (r *Rule) TypeCode() TypeCode {
	switch r.kind {
	case RuleAssignment:
		return TypeAssignmentRule
	case RuleRate:
		return TypeRateRule
	default:
		return TypeAlgebraicRule
	}
}

// LegacyTypeCode returns the Level 1 type code of the rule, using m to
// decide what the variable names. Algebraic rules and rules whose
// variable is not declared in m return TypeCode.
func (r *Rule) LegacyTypeCode(m *Model) TypeCode {
	if r.kind == RuleAlgebraic || m == nil {
		return r.TypeCode()
	}
	switch {
	case m.SpeciesByID(r.variable) != nil:
		return TypeSpeciesConcentrationRule
	case m.CompartmentByID(r.variable) != nil:
		return TypeCompartmentVolumeRule
	case m.ParameterByID(r.variable) != nil:
		return TypeParameterRule
	}
	return r.TypeCode()
}

// Kind returns the rule kind.
func (r *Rule) Kind() RuleKind { return r.kind }

// SetKind changes the rule kind. The variable is kept so an assignment
// rule can become a rate rule and back.
func (r *Rule) SetKind(k RuleKind) { r.kind = k }

// IsAlgebraic reports whether the rule is algebraic.
func (r *Rule) IsAlgebraic() bool { return r.kind == RuleAlgebraic }

// IsAssignment reports whether the rule is an assignment rule.
func (r *Rule) IsAssignment() bool { return r.kind == RuleAssignment }

// IsRate reports whether the rule is a rate rule.
func (r *Rule) IsRate() bool { return r.kind == RuleRate }

// L1RuleType returns the Level 1 type attribute: rate for rate rules,
// scalar for assignment rules and invalid for algebraic rules.
func (r *Rule) L1RuleType() RuleType {
	switch r.kind {
	case RuleAssignment:
		return RuleTypeScalar
	case RuleRate:
		return RuleTypeRate
	default:
		return RuleTypeInvalid
	}
}

// SetL1RuleType sets the kind of a non-algebraic rule from a Level 1
// type attribute. It reports false, and leaves the rule unchanged, for
// algebraic rules and RuleTypeInvalid.
func (r *Rule) SetL1RuleType(t RuleType) bool {
	if r.kind == RuleAlgebraic {
		return false
	}
	switch t {
	case RuleTypeScalar:
		r.kind = RuleAssignment
	case RuleTypeRate:
		r.kind = RuleRate
	default:
		return false
	}
	return true
}

// Variable returns the symbol the rule assigns, or "" for algebraic
// rules.
func (r *Rule) Variable() string { return r.variable }

// SetVariable sets the symbol the rule assigns.
func (r *Rule) SetVariable(id string) { r.variable = id }

// IsSetVariable reports whether the rule names a variable.
func (r *Rule) IsSetVariable() bool { return r.variable != "" }

// Math returns the rule expression, or nil.
func (r *Rule) Math() *ast.Node { return r.math.n }

// SetMath takes ownership of n as the rule expression.
func (r *Rule) SetMath(n *ast.Node) { r.math.set(n) }

// IsSetMath reports whether the rule has an expression.
func (r *Rule) IsSetMath() bool { return r.math.n != nil }

// Formula renders the rule expression as formula text.
func (r *Rule) Formula() string { return r.math.formula() }

// SetFormula parses text as the rule expression.
func (r *Rule) SetFormula(text string) error { return r.math.setFormula(text) }
