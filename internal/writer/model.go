package writer

import (
	"log/slog"
	"strconv"

	"github.com/gosbml/gosbml/internal/xmltree"
	"github.com/gosbml/gosbml/sbml"
)

func (w *writer) modelElement(m *sbml.Model) *xmltree.Element {
	el := w.element("model", m)
	if w.level == 2 {
		list(el, "listOfFunctionDefinitions", m.ListOfFunctionDefinitions().Items(), w.functionDefinition)
	}
	list(el, "listOfUnitDefinitions", m.ListOfUnitDefinitions().Items(), w.unitDefinition)
	list(el, "listOfCompartments", m.ListOfCompartments().Items(), w.compartment)
	list(el, "listOfSpecies", m.ListOfSpecies().Items(), w.species)
	list(el, "listOfParameters", m.ListOfParameters().Items(), w.parameter)
	list(el, "listOfRules", m.ListOfRules().Items(), w.rule)
	list(el, "listOfReactions", m.ListOfReactions().Items(), w.reaction)
	if w.level == 2 {
		list(el, "listOfEvents", m.ListOfEvents().Items(), w.event)
	}
	return el
}

func (w *writer) functionDefinition(fd *sbml.FunctionDefinition) *xmltree.Element {
	el := w.element("functionDefinition", fd)
	w.mathChild(el, fd.Math())
	return el
}

func (w *writer) unitDefinition(ud *sbml.UnitDefinition) *xmltree.Element {
	el := w.element("unitDefinition", ud)
	list(el, "listOfUnits", ud.Units().Items(), w.unit)
	return el
}

func (w *writer) unit(u *sbml.Unit) *xmltree.Element {
	el := xmltree.NewElement("unit")
	el.SetAttr("kind", u.Kind().String())
	if u.Exponent() != 1 {
		el.SetAttr("exponent", strconv.Itoa(u.Exponent()))
	}
	if u.Scale() != 0 {
		el.SetAttr("scale", strconv.Itoa(u.Scale()))
	}
	if w.level == 2 {
		if u.Multiplier() != 1 {
			el.SetAttr("multiplier", formatFloat(u.Multiplier()))
		}
		if u.Offset() != 0 {
			el.SetAttr("offset", formatFloat(u.Offset()))
		}
	}
	w.base(el, u)
	return el
}

func (w *writer) compartment(c *sbml.Compartment) *xmltree.Element {
	el := w.element("compartment", c)
	if w.level == 1 {
		if c.IsSetVolume() {
			el.SetAttr("volume", formatFloat(c.Volume()))
		}
	} else {
		if c.IsSetSpatialDimensions() {
			el.SetAttr("spatialDimensions", strconv.Itoa(c.SpatialDimensions()))
		}
		if c.IsSetSize() {
			el.SetAttr("size", formatFloat(c.Size()))
		}
	}
	if c.IsSetUnits() {
		el.SetAttr("units", c.Units())
	}
	if c.IsSetOutside() {
		el.SetAttr("outside", c.Outside())
	}
	if w.level == 2 && c.IsSetConstant() {
		el.SetAttr("constant", boolAttr(c.Constant()))
	}
	return el
}

func (w *writer) species(s *sbml.Species) *xmltree.Element {
	el := w.element(w.speciesWord("species", "specie"), s)
	el.SetAttr("compartment", s.Compartment())
	if w.level == 1 {
		// initialAmount is required in Level 1.
		el.SetAttr("initialAmount", formatFloat(s.InitialAmount()))
		if s.IsSetSubstanceUnits() {
			el.SetAttr("units", s.SubstanceUnits())
		}
	} else {
		if s.IsSetInitialAmount() {
			el.SetAttr("initialAmount", formatFloat(s.InitialAmount()))
		}
		if s.IsSetInitialConcentration() {
			el.SetAttr("initialConcentration", formatFloat(s.InitialConcentration()))
		}
		if s.IsSetSubstanceUnits() {
			el.SetAttr("substanceUnits", s.SubstanceUnits())
		}
		if s.IsSetSpatialSizeUnits() {
			el.SetAttr("spatialSizeUnits", s.SpatialSizeUnits())
		}
		if s.IsSetHasOnlySubstanceUnits() {
			el.SetAttr("hasOnlySubstanceUnits", boolAttr(s.HasOnlySubstanceUnits()))
		}
	}
	if s.IsSetBoundaryCondition() {
		el.SetAttr("boundaryCondition", boolAttr(s.BoundaryCondition()))
	}
	if s.IsSetCharge() {
		el.SetAttr("charge", strconv.Itoa(s.Charge()))
	}
	if w.level == 2 && s.IsSetConstant() {
		el.SetAttr("constant", boolAttr(s.Constant()))
	}
	return el
}

func (w *writer) parameter(p *sbml.Parameter) *xmltree.Element {
	el := w.element("parameter", p)
	if p.IsSetValue() {
		el.SetAttr("value", formatFloat(p.Value()))
	}
	if p.IsSetUnits() {
		el.SetAttr("units", p.Units())
	}
	if w.level == 2 && p.IsSetConstant() {
		el.SetAttr("constant", boolAttr(p.Constant()))
	}
	return el
}

func (w *writer) rule(r *sbml.Rule) *xmltree.Element {
	if w.level == 2 {
		var el *xmltree.Element
		switch {
		case r.IsAssignment():
			el = w.element("assignmentRule", r)
		case r.IsRate():
			el = w.element("rateRule", r)
		default:
			el = w.element("algebraicRule", r)
		}
		if !r.IsAlgebraic() {
			el.SetAttr("variable", r.Variable())
		}
		w.mathChild(el, r.Math())
		return el
	}

	// Level 1 names the rule after the kind of its variable; an
	// undeclared variable falls back to a parameter rule.
	local, attr := "parameterRule", "name"
	switch r.LegacyTypeCode(w.model) {
	case sbml.TypeAlgebraicRule:
		local, attr = "algebraicRule", ""
	case sbml.TypeSpeciesConcentrationRule:
		local = w.speciesWord("speciesConcentrationRule", "specieConcentrationRule")
		attr = w.speciesWord("species", "specie")
	case sbml.TypeCompartmentVolumeRule:
		local, attr = "compartmentVolumeRule", "compartment"
	}
	el := xmltree.NewElement(local)
	w.formulaAttr(el, r.Math())
	if attr != "" {
		if r.IsRate() {
			el.SetAttr("type", sbml.RuleTypeRate.String())
		}
		el.SetAttr(attr, r.Variable())
	}
	w.base(el, r)
	if w.TraceEnabled() {
		w.Trace("rule", slog.String("element", local), slog.String("variable", r.Variable()))
	}
	return el
}

func (w *writer) reaction(r *sbml.Reaction) *xmltree.Element {
	el := w.element("reaction", r)
	if r.IsSetReversible() {
		el.SetAttr("reversible", boolAttr(r.Reversible()))
	}
	if r.IsSetFast() {
		el.SetAttr("fast", boolAttr(r.Fast()))
	}
	list(el, "listOfReactants", r.Reactants().Items(), w.speciesReference)
	list(el, "listOfProducts", r.Products().Items(), w.speciesReference)
	if w.level == 2 {
		list(el, "listOfModifiers", r.Modifiers().Items(), w.modifier)
	}
	if kl := r.KineticLaw(); kl != nil {
		el.Append(w.kineticLaw(kl))
	}
	return el
}

func (w *writer) speciesReference(sr *sbml.SpeciesReference) *xmltree.Element {
	el := w.element(w.speciesWord("speciesReference", "specieReference"), sr)
	el.SetAttr(w.speciesWord("species", "specie"), sr.Species())
	if sr.IsSetStoichiometry() {
		el.SetAttr("stoichiometry", formatFloat(sr.Stoichiometry()))
	}
	if sr.IsSetDenominator() {
		el.SetAttr("denominator", strconv.Itoa(sr.Denominator()))
	}
	if w.level == 2 && sr.IsSetStoichiometryMath() {
		w.mathChild(el.AddElement("stoichiometryMath"), sr.StoichiometryMath())
	}
	return el
}

func (w *writer) modifier(msr *sbml.ModifierSpeciesReference) *xmltree.Element {
	el := w.element("modifierSpeciesReference", msr)
	el.SetAttr("species", msr.Species())
	return el
}

func (w *writer) kineticLaw(kl *sbml.KineticLaw) *xmltree.Element {
	el := xmltree.NewElement("kineticLaw")
	if w.level == 1 {
		w.formulaAttr(el, kl.Math())
	}
	if kl.IsSetTimeUnits() {
		el.SetAttr("timeUnits", kl.TimeUnits())
	}
	if kl.IsSetSubstanceUnits() {
		el.SetAttr("substanceUnits", kl.SubstanceUnits())
	}
	w.base(el, kl)
	if w.level == 2 {
		w.mathChild(el, kl.Math())
	}
	list(el, "listOfParameters", kl.Parameters().Items(), w.parameter)
	return el
}

func (w *writer) event(e *sbml.Event) *xmltree.Element {
	el := w.element("event", e)
	if e.IsSetTimeUnits() {
		el.SetAttr("timeUnits", e.TimeUnits())
	}
	if e.IsSetTrigger() {
		w.mathChild(el.AddElement("trigger"), e.Trigger())
	}
	if e.IsSetDelay() {
		w.mathChild(el.AddElement("delay"), e.Delay())
	}
	list(el, "listOfEventAssignments", e.Assignments().Items(), func(ea *sbml.EventAssignment) *xmltree.Element {
		a := w.element("eventAssignment", ea)
		a.SetAttr("variable", ea.Variable())
		w.mathChild(a, ea.Math())
		return a
	})
	return el
}
