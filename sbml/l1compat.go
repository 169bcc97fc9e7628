package sbml

import (
	"math"

	"github.com/gosbml/gosbml/ast"
)

var l1Constraints = []constraint{
	{"l1-events", checkL1Events},
	{"l1-function-definitions", checkL1FunctionDefinitions},
	{"l1-names", checkL1Names},
	{"l1-units", checkL1Units},
	{"l1-compartments", checkL1Compartments},
	{"l1-species", checkL1Species},
	{"l1-reactions", checkL1Reactions},
	{"l1-rules", checkL1Rules},
}

func checkL1Events(v *validator) {
	if n := v.m.events.Len(); n > 0 {
		v.report(MsgL1Events, SeverityError, v.m.events.Get(0),
			"Level 1 has no events; model has %d", n)
	}
}

func checkL1FunctionDefinitions(v *validator) {
	if n := v.m.functionDefinitions.Len(); n > 0 {
		v.report(MsgL1FunctionDefinitions, SeverityError, v.m.functionDefinitions.Get(0),
			"Level 1 has no function definitions; model has %d", n)
	}
}

// checkL1Names flags entities with neither an id nor a name, which
// cannot be given the Level 1 name attribute.
func checkL1Names(v *validator) {
	v.m.namedEntities(func(e Element, n *named) {
		if e.TypeCode() == TypeModel || e.TypeCode() == TypeEvent || e.TypeCode() == TypeFunctionDefinition {
			return
		}
		if n.Identifier() == "" {
			v.report(MsgL1MissingName, SeverityError, e, "%s has no identifier to use as its Level 1 name", e.TypeCode())
		}
	})
}

func checkL1Units(v *validator) {
	for _, ud := range v.m.unitDefinitions.All() {
		for _, u := range ud.units.All() {
			if u.multiplier != 1 || u.offset != 0 {
				v.report(MsgL1UnitAttributes, SeverityError, u,
					"unit %s in %s uses multiplier or offset, which Level 1 lacks", u.kind, describe(ud))
			}
		}
	}
}

func checkL1Compartments(v *validator) {
	for _, c := range v.m.compartments.All() {
		if c.SpatialDimensions() != 3 {
			v.report(MsgL1SpatialDimensions, SeverityError, c,
				"%s has %d spatial dimensions; Level 1 compartments are three-dimensional",
				describe(c), c.SpatialDimensions())
		}
	}
}

func checkL1Species(v *validator) {
	for _, s := range v.m.species.All() {
		switch {
		case s.initialConcentration.set:
			v.report(MsgL1InitialConcentration, SeverityError, s,
				"%s sets an initial concentration; Level 1 species need an initial amount", describe(s))
		case !s.initialAmount.set:
			v.report(MsgL1MissingInitialAmount, SeverityWarning, s,
				"%s has no initial amount; Level 1 output writes 0", describe(s))
		}
		if s.HasOnlySubstanceUnits() {
			v.report(MsgL1HasOnlySubstanceUnits, SeverityError, s,
				"%s sets hasOnlySubstanceUnits, which Level 1 lacks", describe(s))
		}
		if s.spatialSizeUnits.set {
			v.report(MsgL1SpatialSizeUnits, SeverityError, s,
				"%s sets spatialSizeUnits, which Level 1 lacks", describe(s))
		}
	}
}

func checkL1Reactions(v *validator) {
	for _, r := range v.m.reactions.All() {
		if n := r.modifiers.Len(); n > 0 {
			v.report(MsgL1Modifiers, SeverityError, r.modifiers.Get(0),
				"%s has %d modifiers; Level 1 has none", describe(r), n)
		}
		for _, list := range []*ListOf[*SpeciesReference]{&r.reactants, &r.products} {
			for _, sr := range list.All() {
				if sr.IsSetStoichiometryMath() {
					v.report(MsgL1StoichiometryMath, SeverityError, sr,
						"reference to %q in %s uses stoichiometry math", sr.species, describe(r))
					continue
				}
				if st := sr.Stoichiometry(); st != math.Trunc(st) {
					v.report(MsgL1StoichiometryMath, SeverityError, sr,
						"reference to %q in %s has non-integer stoichiometry %g", sr.species, describe(r), st)
				}
			}
		}
		if kl := r.kineticLaw; kl != nil {
			v.checkL1Math(r, "kinetic law", kl.Math())
		}
	}
}

func checkL1Rules(v *validator) {
	for _, r := range v.m.rules.All() {
		v.checkL1Math(r, "math", r.Math())
		if r.kind == RuleAlgebraic {
			continue
		}
		if found, _ := v.ruleTarget(r.variable); !found {
			v.report(MsgL1RateRule, SeverityError, r,
				"%s variable %q is not a species, compartment or parameter, so it has no Level 1 rule element",
				describe(r), r.variable)
		}
	}
}

// checkL1Math flags node types that Level 1 formulas cannot express.
func (v *validator) checkL1Math(e Element, what string, n *ast.Node) {
	n.Walk(func(x *ast.Node) bool {
		if !l1Expressible(x) {
			v.report(MsgL1MathConstruct, SeverityError, e,
				"%s of %s uses %s, which Level 1 formulas cannot express", what, describe(e), x.Type())
			return false
		}
		return true
	})
}

func l1Expressible(n *ast.Node) bool {
	t := n.Type()
	switch {
	case t.IsLogical(), t.IsRelational():
		return false
	}
	switch t {
	case ast.TypeLambda, ast.TypeFunction, ast.TypeFunctionPiecewise, ast.TypeFunctionDelay,
		ast.TypeNameTime, ast.TypeConstantTrue, ast.TypeConstantFalse, ast.TypeUnknown:
		return false
	}
	return true
}
