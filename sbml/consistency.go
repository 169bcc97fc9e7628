package sbml

import (
	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/internal/graph"
)

var consistencyConstraints = []constraint{
	{"unique-ids", checkUniqueIDs},
	{"unit-definitions", checkUnitDefinitions},
	{"compartments", checkCompartments},
	{"species", checkSpecies},
	{"parameters", checkParameters},
	{"function-definitions", checkFunctionDefinitions},
	{"recursive-functions", checkRecursiveFunctions},
	{"reactions", checkReactions},
	{"rules", checkRules},
	{"assignment-cycles", checkAssignmentCycles},
	{"events", checkEvents},
}

// checkUniqueIDs flags identifiers declared more than once. Compartments,
// species, parameters, reactions, events and function definitions share
// one namespace; unit definitions and the local parameters of each
// kinetic law have their own.
func checkUniqueIDs(v *validator) {
	global := make(map[string]Element)
	seen := func(ns map[string]Element, e Element, id string) {
		if id == "" {
			return
		}
		if first, dup := ns[id]; dup {
			v.report(MsgDuplicateID, SeverityError, e,
				"%s identifier %q is already used by a %s at line %d",
				e.TypeCode(), id, first.TypeCode(), first.base().line)
			return
		}
		ns[id] = e
	}
	for _, fd := range v.m.functionDefinitions.All() {
		seen(global, fd, fd.Identifier())
	}
	for _, c := range v.m.compartments.All() {
		seen(global, c, c.Identifier())
	}
	for _, s := range v.m.species.All() {
		seen(global, s, s.Identifier())
	}
	for _, p := range v.m.parameters.All() {
		seen(global, p, p.Identifier())
	}
	for _, r := range v.m.reactions.All() {
		seen(global, r, r.Identifier())
		if kl := r.kineticLaw; kl != nil {
			local := make(map[string]Element)
			for _, p := range kl.parameters.All() {
				seen(local, p, p.Identifier())
			}
		}
	}
	for _, e := range v.m.events.All() {
		seen(global, e, e.Identifier())
	}

	units := make(map[string]Element)
	for _, ud := range v.m.unitDefinitions.All() {
		seen(units, ud, ud.Identifier())
	}
}

func checkUnitDefinitions(v *validator) {
	for _, ud := range v.m.unitDefinitions.All() {
		for _, u := range ud.units.All() {
			if !u.kind.IsValid() {
				v.report(MsgInvalidUnitKind, SeverityError, u,
					"unit in %s has no valid kind", describe(ud))
			}
		}
	}
}

func checkCompartments(v *validator) {
	for _, c := range v.m.compartments.All() {
		if c.outside.set && v.m.CompartmentByID(c.outside.v) == nil {
			v.report(MsgUndefinedCompartment, SeverityError, c,
				"%s is outside undefined compartment %q", describe(c), c.outside.v)
		}
		v.checkUnitRef(c, "units", c.units.v, c.units.set)
	}
}

func checkSpecies(v *validator) {
	for _, s := range v.m.species.All() {
		if v.m.CompartmentByID(s.compartment) == nil {
			v.report(MsgUndefinedCompartment, SeverityError, s,
				"%s is located in undefined compartment %q", describe(s), s.compartment)
		}
		v.checkUnitRef(s, "substanceUnits", s.substanceUnits.v, s.substanceUnits.set)
		v.checkUnitRef(s, "spatialSizeUnits", s.spatialSizeUnits.v, s.spatialSizeUnits.set)
		if !s.initialAmount.set && !s.initialConcentration.set && v.m.RuleByVariable(s.Identifier()) == nil {
			v.report(MsgMissingInitialValue, SeverityWarning, s,
				"%s has neither an initial amount nor an initial concentration", describe(s))
		}
	}
}

func checkParameters(v *validator) {
	for _, p := range v.m.parameters.All() {
		v.checkUnitRef(p, "units", p.units.v, p.units.set)
	}
}

func checkFunctionDefinitions(v *validator) {
	for _, fd := range v.m.functionDefinitions.All() {
		n := fd.Math()
		if n == nil {
			v.report(MsgMissingMath, SeverityError, fd, "%s has no math", describe(fd))
			continue
		}
		if n.Type() != ast.TypeLambda || n.NumChildren() == 0 {
			v.report(MsgFunctionNotLambda, SeverityError, fd,
				"math of %s is a %s, not a lambda", describe(fd), n.Type())
			continue
		}
		for _, name := range n.Names() {
			v.report(MsgUndefinedSymbol, SeverityError, fd,
				"body of %s references %q, which is not an argument", describe(fd), name)
		}
		for _, fn := range n.FunctionCalls() {
			if v.m.FunctionDefinitionByID(fn) == nil {
				v.report(MsgUndefinedFunction, SeverityError, fd,
					"body of %s calls undefined function %q", describe(fd), fn)
			}
		}
	}
}

// checkRecursiveFunctions flags function definitions that call
// themselves directly or through other functions.
func checkRecursiveFunctions(v *validator) {
	g := graph.New()
	for _, fd := range v.m.functionDefinitions.All() {
		g.AddNode(fd.Identifier())
		for _, fn := range fd.Math().FunctionCalls() {
			g.AddEdge(fd.Identifier(), fn)
		}
	}
	for _, fd := range v.m.functionDefinitions.All() {
		if g.Reaches(fd.Identifier(), fd.Identifier()) {
			v.report(MsgRecursiveFunction, SeverityError, fd,
				"%s is defined in terms of itself", describe(fd))
		}
	}
}

func checkReactions(v *validator) {
	for _, r := range v.m.reactions.All() {
		if r.reactants.Len() == 0 && r.products.Len() == 0 {
			v.report(MsgEmptyReaction, SeverityError, r,
				"%s has no reactants and no products", describe(r))
		}
		for _, list := range []*ListOf[*SpeciesReference]{&r.reactants, &r.products} {
			for _, sr := range list.All() {
				if v.m.SpeciesByID(sr.species) == nil {
					v.report(MsgUndefinedSpecies, SeverityError, sr,
						"%s references undefined species %q", describe(r), sr.species)
				}
				v.checkMath(sr, "stoichiometry math", sr.StoichiometryMath(), nil)
			}
		}
		for _, msr := range r.modifiers.All() {
			if v.m.SpeciesByID(msr.species) == nil {
				v.report(MsgUndefinedSpecies, SeverityError, msr,
					"modifier of %s references undefined species %q", describe(r), msr.species)
			}
		}

		kl := r.kineticLaw
		if kl == nil {
			continue
		}
		if !kl.IsSetMath() {
			v.report(MsgMissingMath, SeverityError, kl, "kinetic law of %s has no math", describe(r))
		}
		v.checkMath(r, "kinetic law", kl.Math(), func(name string) bool {
			return kl.ParameterByID(name) != nil
		})
		v.checkUnitRef(kl, "timeUnits", kl.timeUnits.v, kl.timeUnits.set)
		v.checkUnitRef(kl, "substanceUnits", kl.substanceUnits.v, kl.substanceUnits.set)
		for _, p := range kl.parameters.All() {
			v.checkUnitRef(p, "units", p.units.v, p.units.set)
		}
	}
}

// ruleTarget returns whether id names a quantity a rule may assign and,
// if so, whether that quantity is constant.
func (v *validator) ruleTarget(id string) (found, constant bool) {
	if c := v.m.CompartmentByID(id); c != nil {
		return true, c.Constant()
	}
	if s := v.m.SpeciesByID(id); s != nil {
		return true, s.Constant()
	}
	if p := v.m.ParameterByID(id); p != nil {
		return true, p.Constant()
	}
	return false, false
}

func checkRules(v *validator) {
	assigned := make(map[string]*Rule)
	for _, r := range v.m.rules.All() {
		if !r.IsSetMath() {
			v.report(MsgMissingMath, SeverityError, r, "%s has no math", describe(r))
		}
		v.checkMath(r, "math", r.Math(), nil)
		if r.kind == RuleAlgebraic {
			continue
		}

		found, constant := v.ruleTarget(r.variable)
		switch {
		case !found:
			v.report(MsgUndefinedRuleVariable, SeverityError, r,
				"%s variable %q is not a compartment, species or parameter", describe(r), r.variable)
		case constant:
			v.report(MsgConstantRuleTarget, SeverityError, r,
				"%s assigns %q, which is constant", describe(r), r.variable)
		}
		if first, dup := assigned[r.variable]; dup {
			v.report(MsgMultipleRules, SeverityError, r,
				"%q is already the variable of a %s at line %d", r.variable, first.TypeCode(), first.line)
			continue
		}
		assigned[r.variable] = r
	}
}

// checkAssignmentCycles flags assignment rules whose variables depend on
// each other.
func checkAssignmentCycles(v *validator) {
	g := graph.New()
	rules := make(map[string]*Rule)
	for _, r := range v.m.rules.All() {
		if r.kind != RuleAssignment || r.variable == "" {
			continue
		}
		if _, dup := rules[r.variable]; dup {
			continue
		}
		rules[r.variable] = r
		g.AddNode(r.variable)
		for _, name := range r.Math().Names() {
			g.AddEdge(r.variable, name)
		}
	}
	for _, cycle := range g.FindCycles() {
		v.report(MsgAssignmentCycle, SeverityError, rules[cycle[0]],
			"assignment rules for %q form a cycle", cycle)
	}
}

func checkEvents(v *validator) {
	for _, e := range v.m.events.All() {
		if !e.IsSetTrigger() {
			v.report(MsgMissingTrigger, SeverityError, e, "%s has no trigger", describe(e))
		}
		v.checkMath(e, "trigger", e.Trigger(), nil)
		v.checkMath(e, "delay", e.Delay(), nil)
		v.checkUnitRef(e, "timeUnits", e.timeUnits.v, e.timeUnits.set)
		for _, ea := range e.assignments.All() {
			if found, _ := v.ruleTarget(ea.variable); !found {
				v.report(MsgUndefinedSymbol, SeverityError, ea,
					"event assignment in %s targets undefined symbol %q", describe(e), ea.variable)
			}
			if !ea.IsSetMath() {
				v.report(MsgMissingMath, SeverityError, ea,
					"event assignment to %q has no math", ea.variable)
			}
			v.checkMath(ea, "event assignment", ea.Math(), nil)
		}
	}
}
