package reader

import (
	"log/slog"
	"slices"

	"github.com/gosbml/gosbml/internal/xmltree"
	"github.com/gosbml/gosbml/sbml"
)

// speciesTags returns the accepted spellings of an element name that
// Level 1 Version 1 writes with "specie".
func speciesTags(l2 string) []string {
	switch l2 {
	case "species":
		return []string{"species", "specie"}
	case "speciesReference":
		return []string{"speciesReference", "specieReference"}
	case "speciesConcentrationRule":
		return []string{"speciesConcentrationRule", "specieConcentrationRule"}
	}
	return []string{l2}
}

var modelChildren = []string{
	"notes", "annotation",
	"listOfFunctionDefinitions", "listOfUnitDefinitions", "listOfCompartments",
	"listOfSpecies", "listOfParameters", "listOfRules", "listOfReactions",
	"listOfEvents",
}

func (r *reader) readModel(el *xmltree.Element) *sbml.Model {
	m := sbml.NewModel("")
	r.readBase(el, &m.SBase)
	r.readIdentity(el, m, false)

	if r.level == 2 {
		for _, c := range r.items(el, "listOfFunctionDefinitions", "functionDefinition") {
			m.AddFunctionDefinition(r.readFunctionDefinition(c))
		}
	}
	for _, c := range r.items(el, "listOfUnitDefinitions", "unitDefinition") {
		m.AddUnitDefinition(r.readUnitDefinition(c))
	}
	for _, c := range r.items(el, "listOfCompartments", "compartment") {
		m.AddCompartment(r.readCompartment(c))
	}
	for _, c := range r.items(el, "listOfSpecies", speciesTags("species")...) {
		m.AddSpecies(r.readSpecies(c))
	}
	for _, c := range r.items(el, "listOfParameters", "parameter") {
		m.AddParameter(r.readParameter(c))
	}
	ruleTags := []string{"algebraicRule", "compartmentVolumeRule", "parameterRule",
		"speciesConcentrationRule", "specieConcentrationRule"}
	if r.level == 2 {
		ruleTags = []string{"algebraicRule", "assignmentRule", "rateRule"}
	}
	for _, c := range r.items(el, "listOfRules", ruleTags...) {
		if rule := r.readRule(c); rule != nil {
			m.AddRule(rule)
		}
	}
	for _, c := range r.items(el, "listOfReactions", "reaction") {
		m.AddReaction(r.readReaction(c))
	}
	if r.level == 2 {
		for _, c := range r.items(el, "listOfEvents", "event") {
			m.AddEvent(r.readEvent(c))
		}
	}

	for _, c := range el.Elements() {
		if !slices.Contains(modelChildren, c.Local) ||
			r.level == 1 && (c.Local == "listOfFunctionDefinitions" || c.Local == "listOfEvents") {
			r.unknown(c)
		}
	}

	r.Log(slog.LevelDebug, "model read",
		slog.Int("compartments", m.NumCompartments()),
		slog.Int("species", m.NumSpecies()),
		slog.Int("reactions", m.NumReactions()),
		slog.Int("rules", m.NumRules()))
	return m
}

func (r *reader) readFunctionDefinition(el *xmltree.Element) *sbml.FunctionDefinition {
	fd := sbml.NewFunctionDefinition("", nil)
	r.readBase(el, &fd.SBase)
	r.readIdentity(el, fd, true)
	fd.SetMath(r.math(el))
	return fd
}

func (r *reader) readUnitDefinition(el *xmltree.Element) *sbml.UnitDefinition {
	ud := sbml.NewUnitDefinition("")
	r.readBase(el, &ud.SBase)
	r.readIdentity(el, ud, true)
	for _, c := range r.items(el, "listOfUnits", "unit") {
		ud.AddUnit(r.readUnit(c))
	}
	return ud
}

func (r *reader) readUnit(el *xmltree.Element) *sbml.Unit {
	u := sbml.NewUnit(sbml.UnitInvalid)
	r.readBase(el, &u.SBase)
	if v, ok := el.Attr("kind"); !ok {
		r.missing(el, "kind")
	} else if k := sbml.UnitKindForName(v); k.IsValid() {
		u.SetKind(k)
	} else {
		r.invalid(el, "kind", v, "unit kind")
	}
	r.intAttr(el, "exponent", u.SetExponent)
	r.intAttr(el, "scale", u.SetScale)
	if r.level == 2 {
		r.floatAttr(el, "multiplier", u.SetMultiplier)
		r.floatAttr(el, "offset", u.SetOffset)
	}
	return u
}

func (r *reader) readCompartment(el *xmltree.Element) *sbml.Compartment {
	c := sbml.NewCompartment("")
	r.readBase(el, &c.SBase)
	r.readIdentity(el, c, true)
	if r.level == 1 {
		r.floatAttr(el, "volume", c.SetVolume)
	} else {
		r.intAttr(el, "spatialDimensions", c.SetSpatialDimensions)
		r.floatAttr(el, "size", c.SetSize)
		r.boolAttr(el, "constant", c.SetConstant)
	}
	r.strAttr(el, "units", c.SetUnits)
	r.strAttr(el, "outside", c.SetOutside)
	return c
}

func (r *reader) readSpecies(el *xmltree.Element) *sbml.Species {
	s := sbml.NewSpecies("", "")
	r.readBase(el, &s.SBase)
	r.readIdentity(el, s, true)
	if v, ok := el.Attr("compartment"); ok {
		s.SetCompartment(v)
	} else {
		r.missing(el, "compartment")
	}
	r.floatAttr(el, "initialAmount", s.SetInitialAmount)
	r.boolAttr(el, "boundaryCondition", s.SetBoundaryCondition)
	r.intAttr(el, "charge", s.SetCharge)
	if r.level == 1 {
		if !s.IsSetInitialAmount() {
			r.missing(el, "initialAmount")
		}
		r.strAttr(el, "units", s.SetSubstanceUnits)
		return s
	}
	r.floatAttr(el, "initialConcentration", s.SetInitialConcentration)
	if s.IsSetInitialConcentration() {
		if _, both := el.Attr("initialAmount"); both {
			r.report(sbml.MsgInvalidAttribute, sbml.SeverityError, el,
				"<%s> sets both initialAmount and initialConcentration; keeping the concentration", el.QName())
		}
	}
	r.strAttr(el, "substanceUnits", s.SetSubstanceUnits)
	r.strAttr(el, "spatialSizeUnits", s.SetSpatialSizeUnits)
	r.boolAttr(el, "hasOnlySubstanceUnits", s.SetHasOnlySubstanceUnits)
	r.boolAttr(el, "constant", s.SetConstant)
	return s
}

func (r *reader) readParameter(el *xmltree.Element) *sbml.Parameter {
	p := sbml.NewParameter("")
	r.readBase(el, &p.SBase)
	r.readIdentity(el, p, true)
	r.floatAttr(el, "value", p.SetValue)
	r.strAttr(el, "units", p.SetUnits)
	if r.level == 2 {
		r.boolAttr(el, "constant", p.SetConstant)
	}
	return p
}

// readRule reads any rule element. Level 1 rules name their variable
// with an attribute that depends on the element, and carry the scalar
// or rate type.
func (r *reader) readRule(el *xmltree.Element) *sbml.Rule {
	var rule *sbml.Rule
	switch el.Local {
	case "algebraicRule":
		rule = sbml.NewAlgebraicRule(nil)
	case "assignmentRule":
		rule = sbml.NewAssignmentRule("", nil)
	case "rateRule":
		rule = sbml.NewRateRule("", nil)
	default:
		rule = sbml.NewAssignmentRule("", nil)
	}
	r.readBase(el, &rule.SBase)

	if !rule.IsAlgebraic() {
		attr := "variable"
		switch el.Local {
		case "compartmentVolumeRule":
			attr = "compartment"
		case "speciesConcentrationRule":
			attr = "species"
		case "specieConcentrationRule":
			attr = "specie"
		case "parameterRule":
			attr = "name"
		}
		if v, ok := el.Attr(attr); ok {
			rule.SetVariable(v)
		} else {
			r.missing(el, attr)
		}
	}
	if r.level == 1 && !rule.IsAlgebraic() {
		if v, ok := el.Attr("type"); ok {
			if !rule.SetL1RuleType(sbml.RuleTypeForName(v)) {
				r.invalid(el, "type", v, "rule type")
			}
		}
	}
	rule.SetMath(r.expr(el))
	return rule
}

func (r *reader) readReaction(el *xmltree.Element) *sbml.Reaction {
	rx := sbml.NewReaction("")
	r.readBase(el, &rx.SBase)
	r.readIdentity(el, rx, true)
	r.boolAttr(el, "reversible", rx.SetReversible)
	r.boolAttr(el, "fast", rx.SetFast)

	refTags := speciesTags("speciesReference")
	for _, c := range r.items(el, "listOfReactants", refTags...) {
		rx.AddReactant(r.readSpeciesReference(c))
	}
	for _, c := range r.items(el, "listOfProducts", refTags...) {
		rx.AddProduct(r.readSpeciesReference(c))
	}
	if r.level == 2 {
		for _, c := range r.items(el, "listOfModifiers", "modifierSpeciesReference") {
			msr := sbml.NewModifierSpeciesReference("")
			r.readBase(c, &msr.SBase)
			r.requireSpecies(c, msr.SetSpecies)
			rx.AddModifier(msr)
		}
	}
	if kl := r.child(el, "kineticLaw"); kl != nil {
		rx.SetKineticLaw(r.readKineticLaw(kl))
	}
	return rx
}

func (r *reader) requireSpecies(el *xmltree.Element, set func(string)) {
	attr := "species"
	if r.level == 1 && r.version == 1 && el.Local == "specieReference" {
		attr = "specie"
	}
	if v, ok := el.Attr(attr); ok {
		set(v)
		return
	}
	if v, ok := el.Attr("species"); ok {
		set(v)
		return
	}
	r.missing(el, attr)
}

func (r *reader) readSpeciesReference(el *xmltree.Element) *sbml.SpeciesReference {
	sr := sbml.NewSpeciesReference("")
	r.readBase(el, &sr.SBase)
	r.requireSpecies(el, sr.SetSpecies)
	r.floatAttr(el, "stoichiometry", sr.SetStoichiometry)
	r.intAttr(el, "denominator", sr.SetDenominator)
	if r.level == 2 {
		if sm := r.child(el, "stoichiometryMath"); sm != nil {
			sr.SetStoichiometryMath(r.math(sm))
		}
	}
	return sr
}

func (r *reader) readKineticLaw(el *xmltree.Element) *sbml.KineticLaw {
	kl := sbml.NewKineticLaw(r.expr(el))
	r.readBase(el, &kl.SBase)
	r.strAttr(el, "timeUnits", kl.SetTimeUnits)
	r.strAttr(el, "substanceUnits", kl.SetSubstanceUnits)
	for _, c := range r.items(el, "listOfParameters", "parameter") {
		kl.AddParameter(r.readParameter(c))
	}
	return kl
}

func (r *reader) readEvent(el *xmltree.Element) *sbml.Event {
	e := sbml.NewEvent("", nil)
	r.readBase(el, &e.SBase)
	r.readIdentity(el, e, false)
	r.strAttr(el, "timeUnits", e.SetTimeUnits)
	if t := r.child(el, "trigger"); t != nil {
		e.SetTrigger(r.math(t))
	}
	if d := r.child(el, "delay"); d != nil {
		e.SetDelay(r.math(d))
	}
	for _, c := range r.items(el, "listOfEventAssignments", "eventAssignment") {
		ea := sbml.NewEventAssignment("", nil)
		r.readBase(c, &ea.SBase)
		if v, ok := c.Attr("variable"); ok {
			ea.SetVariable(v)
		} else {
			r.missing(c, "variable")
		}
		ea.SetMath(r.math(c))
		e.AddAssignment(ea)
	}
	return e
}
