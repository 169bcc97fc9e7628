package main

import (
	"flag"
	"fmt"
	"io"
	"math"

	json "github.com/goccy/go-json"

	"github.com/gosbml/gosbml"
	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/formula"
	"github.com/gosbml/gosbml/sbml"
)

const dumpUsage = `gosbml dump - Output a document as JSON

Usage:
  gosbml dump [options] FILE

Options:
  --compact   Write JSON without indentation
  -h, --help  Show help
`

type dumpDocument struct {
	Path     string        `json:"path"`
	Level    int           `json:"level"`
	Version  int           `json:"version"`
	Model    *dumpModel    `json:"model,omitempty"`
	Messages []lintMessage `json:"messages,omitempty"`
}

type dumpModel struct {
	ID           string            `json:"id,omitempty"`
	Name         string            `json:"name,omitempty"`
	Functions    []dumpFunction    `json:"functionDefinitions,omitempty"`
	Units        []dumpUnitDef     `json:"unitDefinitions,omitempty"`
	Compartments []dumpCompartment `json:"compartments,omitempty"`
	Species      []dumpSpecies     `json:"species,omitempty"`
	Parameters   []dumpParameter   `json:"parameters,omitempty"`
	Rules        []dumpRule        `json:"rules,omitempty"`
	Reactions    []dumpReaction    `json:"reactions,omitempty"`
	Events       []dumpEvent       `json:"events,omitempty"`
}

type dumpFunction struct {
	ID        string   `json:"id"`
	Arguments []string `json:"arguments,omitempty"`
	Body      string   `json:"body,omitempty"`
}

type dumpUnitDef struct {
	ID    string     `json:"id"`
	Units []dumpUnit `json:"units"`
}

type dumpUnit struct {
	Kind       string  `json:"kind"`
	Exponent   int     `json:"exponent"`
	Scale      int     `json:"scale"`
	Multiplier float64 `json:"multiplier"`
	Offset     float64 `json:"offset"`
}

type dumpCompartment struct {
	ID                string   `json:"id"`
	SpatialDimensions int      `json:"spatialDimensions"`
	Size              *float64 `json:"size,omitempty"`
	Units             string   `json:"units,omitempty"`
	Outside           string   `json:"outside,omitempty"`
	Constant          bool     `json:"constant"`
}

type dumpSpecies struct {
	ID                   string   `json:"id"`
	Compartment          string   `json:"compartment"`
	InitialAmount        *float64 `json:"initialAmount,omitempty"`
	InitialConcentration *float64 `json:"initialConcentration,omitempty"`
	SubstanceUnits       string   `json:"substanceUnits,omitempty"`
	BoundaryCondition    bool     `json:"boundaryCondition"`
	Constant             bool     `json:"constant"`
}

type dumpParameter struct {
	ID       string   `json:"id"`
	Value    *float64 `json:"value,omitempty"`
	Units    string   `json:"units,omitempty"`
	Constant bool     `json:"constant"`
}

type dumpRule struct {
	Kind     string `json:"kind"`
	Variable string `json:"variable,omitempty"`
	Formula  string `json:"formula"`
}

type dumpReaction struct {
	ID         string        `json:"id"`
	Reversible bool          `json:"reversible"`
	Fast       bool          `json:"fast"`
	Reactants  []dumpSpecRef `json:"reactants,omitempty"`
	Products   []dumpSpecRef `json:"products,omitempty"`
	Modifiers  []string      `json:"modifiers,omitempty"`
	KineticLaw *dumpKinetic  `json:"kineticLaw,omitempty"`
}

type dumpSpecRef struct {
	Species       string  `json:"species"`
	Stoichiometry float64 `json:"stoichiometry"`
	Denominator   int     `json:"denominator,omitempty"`
	Math          string  `json:"stoichiometryMath,omitempty"`
}

type dumpKinetic struct {
	Formula    string          `json:"formula"`
	Parameters []dumpParameter `json:"parameters,omitempty"`
}

type dumpEvent struct {
	ID          string           `json:"id,omitempty"`
	Trigger     string           `json:"trigger"`
	Delay       string           `json:"delay,omitempty"`
	Assignments []dumpAssignment `json:"assignments"`
}

type dumpAssignment struct {
	Variable string `json:"variable"`
	Formula  string `json:"formula"`
}

func (c *cli) cmdDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() { _, _ = fmt.Fprint(c.stderr, dumpUsage) }
	compact := fs.Bool("compact", false, "compact JSON")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *help || c.helpFlag {
		_, _ = fmt.Fprint(c.stdout, dumpUsage)
		return exitOK
	}
	if fs.NArg() != 1 {
		_, _ = fmt.Fprint(c.stderr, dumpUsage)
		return exitError
	}

	path := fs.Arg(0)
	doc := gosbml.ReadFile(path, c.options()...)
	out := dumpDoc(path, doc)

	code := c.withOutput(func(w io.Writer) error {
		enc := json.NewEncoder(w)
		if !*compact {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(out)
	})
	if code == exitOK && doc.NumFatals() > 0 {
		return exitIssues
	}
	return code
}

func dumpDoc(path string, doc *sbml.Document) dumpDocument {
	out := dumpDocument{Path: path, Level: doc.Level(), Version: doc.Version()}
	for _, m := range doc.Messages() {
		out.Messages = append(out.Messages, toLintMessage(path, m))
	}
	if m := doc.Model(); m != nil {
		out.Model = dumpModelOf(m)
	}
	return out
}

func dumpModelOf(m *sbml.Model) *dumpModel {
	out := &dumpModel{ID: m.ID(), Name: m.Name()}
	for _, fd := range m.ListOfFunctionDefinitions().All() {
		out.Functions = append(out.Functions, dumpFunction{
			ID:        fd.ID(),
			Arguments: fd.Arguments(),
			Body:      infix(fd.Body()),
		})
	}
	for _, ud := range m.ListOfUnitDefinitions().All() {
		d := dumpUnitDef{ID: ud.ID()}
		for _, u := range ud.Units().All() {
			d.Units = append(d.Units, dumpUnit{
				Kind:       u.Kind().String(),
				Exponent:   u.Exponent(),
				Scale:      u.Scale(),
				Multiplier: u.Multiplier(),
				Offset:     u.Offset(),
			})
		}
		out.Units = append(out.Units, d)
	}
	for _, c := range m.ListOfCompartments().All() {
		d := dumpCompartment{
			ID:                c.Identifier(),
			SpatialDimensions: c.SpatialDimensions(),
			Units:             c.Units(),
			Outside:           c.Outside(),
			Constant:          c.Constant(),
		}
		if c.IsSetSize() {
			d.Size = number(c.Size())
		}
		out.Compartments = append(out.Compartments, d)
	}
	for _, s := range m.ListOfSpecies().All() {
		d := dumpSpecies{
			ID:                s.Identifier(),
			Compartment:       s.Compartment(),
			SubstanceUnits:    s.SubstanceUnits(),
			BoundaryCondition: s.BoundaryCondition(),
			Constant:          s.Constant(),
		}
		if s.IsSetInitialAmount() {
			d.InitialAmount = number(s.InitialAmount())
		}
		if s.IsSetInitialConcentration() {
			d.InitialConcentration = number(s.InitialConcentration())
		}
		out.Species = append(out.Species, d)
	}
	for _, p := range m.ListOfParameters().All() {
		out.Parameters = append(out.Parameters, dumpParam(p))
	}
	for _, r := range m.ListOfRules().All() {
		out.Rules = append(out.Rules, dumpRule{
			Kind:     r.Kind().String(),
			Variable: r.Variable(),
			Formula:  r.Formula(),
		})
	}
	for _, r := range m.ListOfReactions().All() {
		out.Reactions = append(out.Reactions, dumpReactionOf(r))
	}
	for _, e := range m.ListOfEvents().All() {
		d := dumpEvent{ID: e.Identifier(), Trigger: infix(e.Trigger()), Delay: infix(e.Delay())}
		for _, ea := range e.Assignments().All() {
			d.Assignments = append(d.Assignments, dumpAssignment{
				Variable: ea.Variable(),
				Formula:  infix(ea.Math()),
			})
		}
		out.Events = append(out.Events, d)
	}
	return out
}

func dumpReactionOf(r *sbml.Reaction) dumpReaction {
	d := dumpReaction{
		ID:         r.Identifier(),
		Reversible: r.Reversible(),
		Fast:       r.Fast(),
	}
	ref := func(sr *sbml.SpeciesReference) dumpSpecRef {
		out := dumpSpecRef{
			Species:       sr.Species(),
			Stoichiometry: sr.Stoichiometry(),
			Math:          infix(sr.StoichiometryMath()),
		}
		if sr.IsSetDenominator() {
			out.Denominator = sr.Denominator()
		}
		return out
	}
	for _, sr := range r.Reactants().All() {
		d.Reactants = append(d.Reactants, ref(sr))
	}
	for _, sr := range r.Products().All() {
		d.Products = append(d.Products, ref(sr))
	}
	for _, mod := range r.Modifiers().All() {
		d.Modifiers = append(d.Modifiers, mod.Species())
	}
	if kl := r.KineticLaw(); kl != nil {
		k := &dumpKinetic{Formula: kl.Formula()}
		for _, p := range kl.Parameters().All() {
			k.Parameters = append(k.Parameters, dumpParam(p))
		}
		d.KineticLaw = k
	}
	return d
}

func dumpParam(p *sbml.Parameter) dumpParameter {
	d := dumpParameter{ID: p.Identifier(), Units: p.Units(), Constant: p.Constant()}
	if p.IsSetValue() {
		d.Value = number(p.Value())
	}
	return d
}

// number drops values JSON cannot represent.
func number(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func infix(n *ast.Node) string {
	if n == nil {
		return ""
	}
	s, err := formula.Format(n)
	if err != nil {
		return ""
	}
	return s
}
