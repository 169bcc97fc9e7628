package reader

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gosbml/gosbml/internal/xmltree"
	"github.com/gosbml/gosbml/sbml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docL2 = `<?xml version="1.0" encoding="UTF-8"?>
<sbml xmlns="http://www.sbml.org/sbml/level2" level="2" version="1">
  <model id="m" name="Simple">
    <notes><p xmlns="http://www.w3.org/1999/xhtml">A note.</p></notes>
    <listOfFunctionDefinitions>
      <functionDefinition id="f">
        <math xmlns="http://www.w3.org/1998/Math/MathML">
          <lambda><bvar><ci>x</ci></bvar><apply><times/><ci>x</ci><cn>2</cn></apply></lambda>
        </math>
      </functionDefinition>
    </listOfFunctionDefinitions>
    <listOfUnitDefinitions>
      <unitDefinition id="per_second">
        <listOfUnits><unit kind="second" exponent="-1" multiplier="1.5"/></listOfUnits>
      </unitDefinition>
    </listOfUnitDefinitions>
    <listOfCompartments>
      <compartment id="c1" size="2" spatialDimensions="3"/>
    </listOfCompartments>
    <listOfSpecies>
      <species id="s1" compartment="c1" initialAmount="5" boundaryCondition="true"/>
      <species id="s2" compartment="c1" initialConcentration="0.5" hasOnlySubstanceUnits="false"/>
    </listOfSpecies>
    <listOfParameters>
      <parameter id="k1" value="0.1" constant="true"/>
      <parameter id="big" value="INF" constant="false"/>
    </listOfParameters>
    <listOfRules>
      <assignmentRule variable="big">
        <math xmlns="http://www.w3.org/1998/Math/MathML"><apply><ci>f</ci><ci>k1</ci></apply></math>
      </assignmentRule>
    </listOfRules>
    <listOfReactions>
      <reaction id="r1" reversible="false">
        <listOfReactants><speciesReference species="s1" stoichiometry="2"/></listOfReactants>
        <listOfProducts><speciesReference species="s2"/></listOfProducts>
        <listOfModifiers><modifierSpeciesReference species="s2"/></listOfModifiers>
        <kineticLaw>
          <math xmlns="http://www.w3.org/1998/Math/MathML">
            <apply><times/><ci>k1</ci><ci>s1</ci></apply>
          </math>
          <listOfParameters><parameter id="local" value="3"/></listOfParameters>
        </kineticLaw>
      </reaction>
    </listOfReactions>
    <listOfEvents>
      <event id="e1">
        <trigger><math xmlns="http://www.w3.org/1998/Math/MathML"><apply><gt/><csymbol encoding="text" definitionURL="http://www.sbml.org/sbml/symbols/time">t</csymbol><cn>10</cn></apply></math></trigger>
        <listOfEventAssignments>
          <eventAssignment variable="k1"><math xmlns="http://www.w3.org/1998/Math/MathML"><cn>0</cn></math></eventAssignment>
        </listOfEventAssignments>
      </event>
    </listOfEvents>
  </model>
</sbml>`

const docL1 = `<?xml version="1.0"?>
<sbml xmlns="http://www.sbml.org/sbml/level1" level="1" version="1">
  <model name="m1">
    <listOfCompartments><compartment name="cell" volume="1.5"/></listOfCompartments>
    <listOfSpecies>
      <specie name="A" compartment="cell" initialAmount="10" units="mole"/>
      <specie name="B" compartment="cell" initialAmount="0"/>
    </listOfSpecies>
    <listOfParameters><parameter name="k" value="2"/></listOfParameters>
    <listOfRules>
      <parameterRule name="k" formula="sqr(A)" type="rate"/>
      <specieConcentrationRule specie="B" formula="A/2"/>
    </listOfRules>
    <listOfReactions>
      <reaction name="R">
        <listOfReactants><specieReference specie="A" stoichiometry="1" denominator="2"/></listOfReactants>
        <listOfProducts><specieReference specie="B"/></listOfProducts>
        <kineticLaw formula="k*A"/>
      </reaction>
    </listOfReactions>
  </model>
</sbml>`

func read(t *testing.T, text string) *sbml.Document {
	t.Helper()
	return Read(strings.NewReader(text), Options{})
}

func codes(d *sbml.Document) []string {
	var out []string
	for _, m := range d.Messages() {
		out = append(out, m.ID.String())
	}
	return out
}

func TestReadLevel2(t *testing.T) {
	d := read(t, docL2)
	require.Empty(t, codes(d))
	assert.Equal(t, 2, d.Level())
	assert.Equal(t, 1, d.Version())

	m := d.Model()
	require.NotNil(t, m)
	assert.Equal(t, "m", m.ID())
	assert.Equal(t, "Simple", m.Name())
	assert.Contains(t, m.Notes(), "A note.")

	fd := m.FunctionDefinitionByID("f")
	require.NotNil(t, fd)
	assert.Equal(t, []string{"x"}, fd.Arguments())

	u := m.UnitDefinitionByID("per_second").Units().Get(0)
	assert.Equal(t, sbml.UnitSecond, u.Kind())
	assert.Equal(t, -1, u.Exponent())
	assert.Equal(t, 1.5, u.Multiplier())

	c := m.CompartmentByID("c1")
	assert.Equal(t, 2.0, c.Size())
	assert.True(t, c.IsSetSpatialDimensions())

	s1 := m.SpeciesByID("s1")
	assert.Equal(t, 5.0, s1.InitialAmount())
	assert.True(t, s1.BoundaryCondition())
	s2 := m.SpeciesByID("s2")
	assert.True(t, s2.IsSetInitialConcentration())
	assert.False(t, s2.IsSetInitialAmount())
	assert.True(t, s2.IsSetHasOnlySubstanceUnits())

	assert.True(t, m.ParameterByID("big").Value() > 1e308)

	rule := m.RuleByVariable("big")
	require.NotNil(t, rule)
	assert.True(t, rule.IsAssignment())
	assert.Equal(t, "f(k1)", rule.Formula())

	r := m.ReactionByID("r1")
	assert.False(t, r.Reversible())
	assert.Equal(t, 2.0, r.Reactant(0).Stoichiometry())
	assert.False(t, r.Product(0).IsSetStoichiometry())
	assert.Equal(t, "s2", r.Modifier(0).Species())
	kl := r.KineticLaw()
	require.NotNil(t, kl)
	assert.Same(t, r, kl.Reaction())
	assert.Equal(t, "k1*s1", kl.Formula())
	assert.Equal(t, 3.0, kl.ParameterByID("local").Value())

	e := m.EventByID("e1")
	require.NotNil(t, e)
	assert.True(t, e.IsSetTrigger())
	assert.Equal(t, "k1", e.Assignment(0).Variable())

	assert.Equal(t, 0, d.CheckConsistency())
}

func TestReadLevel1(t *testing.T) {
	d := read(t, docL1)
	require.Empty(t, codes(d))
	assert.Equal(t, 1, d.Level())

	m := d.Model()
	require.NotNil(t, m)
	assert.Equal(t, "m1", m.Name())
	assert.False(t, m.IsSetID())

	c := m.Compartment(0)
	assert.Equal(t, "cell", c.Name())
	assert.Equal(t, 1.5, c.Volume())

	a := m.Species(0)
	assert.Equal(t, "A", a.Name())
	assert.Equal(t, "cell", a.Compartment())
	assert.Equal(t, "mole", a.SubstanceUnits())

	require.Equal(t, 2, m.NumRules())
	k := m.Rule(0)
	assert.True(t, k.IsRate())
	assert.Equal(t, "k", k.Variable())
	assert.Equal(t, "pow(A, 2)", k.Formula())
	b := m.Rule(1)
	assert.Equal(t, sbml.RuleTypeScalar, b.L1RuleType())
	assert.Equal(t, "B", b.Variable())

	r := m.Reaction(0)
	assert.Equal(t, "A", r.Reactant(0).Species())
	assert.Equal(t, 2, r.Reactant(0).Denominator())
	assert.Equal(t, "k*A", r.KineticLaw().Formula())
}

func TestReadDefaultsLevelFromNamespace(t *testing.T) {
	d := read(t, `<sbml xmlns="http://www.sbml.org/sbml/level1"><model/></sbml>`)
	assert.Equal(t, 1, d.Level())
	assert.Equal(t, 1, d.Version())
	assert.NotNil(t, d.Model())
}

func TestReadFailures(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"malformed", `<sbml><model></sbml>`, "not-sbml"},
		{"wrong root", `<html/>`, "not-sbml"},
		{"unsupported level", `<sbml level="3" version="1"><model/></sbml>`, "unsupported-level"},
		{"bad level", `<sbml level="two"><model/></sbml>`, "unsupported-level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := read(t, tt.in)
			assert.Nil(t, d.Model())
			require.Equal(t, 1, d.NumFatals())
			m, ok := d.Fatal(0)
			require.True(t, ok)
			assert.Equal(t, tt.want, m.ID.String())
		})
	}
}

func TestReadMalformedReportsPosition(t *testing.T) {
	d := read(t, "<sbml>\n  <model>\n</sbml>")
	m, ok := d.Fatal(0)
	require.True(t, ok)
	assert.Equal(t, 3, m.Line)
}

func TestReadFileMissing(t *testing.T) {
	d := ReadFile(filepath.Join(t.TempDir(), "nope.xml"), Options{})
	assert.Nil(t, d.Model())
	m, ok := d.Fatal(0)
	require.True(t, ok)
	assert.Equal(t, sbml.MsgFileNotFound, m.ID)
}

func TestReadRecoverableProblems(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing compartment", `<listOfSpecies><species id="s"/></listOfSpecies>`, "missing-attribute"},
		{"bad number", `<listOfParameters><parameter id="p" value="abc"/></listOfParameters>`, "invalid-attribute-value"},
		{"bad bool", `<listOfParameters><parameter id="p" constant="yes"/></listOfParameters>`, "invalid-attribute-value"},
		{"bad unit kind", `<listOfUnitDefinitions><unitDefinition id="u"><listOfUnits><unit kind="furlong"/></listOfUnits></unitDefinition></listOfUnitDefinitions>`, "invalid-attribute-value"},
		{"unknown element", `<listOfParameters><widget/></listOfParameters>`, "unknown-element"},
		{"bad mathml", `<listOfRules><algebraicRule><math xmlns="http://www.w3.org/1998/Math/MathML"><bogus/></math></algebraicRule></listOfRules>`, "invalid-mathml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := read(t, `<sbml xmlns="http://www.sbml.org/sbml/level2" level="2" version="1"><model>`+tt.body+`</model></sbml>`)
			require.NotNil(t, d.Model(), "recoverable problems keep the model")
			assert.Contains(t, codes(d), tt.want)
			assert.Equal(t, 0, d.NumFatals())
		})
	}
}

func TestReadKeepsNotesWhitespace(t *testing.T) {
	d := read(t, `<sbml xmlns="http://www.sbml.org/sbml/level2" level="2" version="1"><model id="m">`+
		`<notes><p xmlns="http://www.w3.org/1999/xhtml"><b>a</b> <i>b</i></p></notes>`+
		`<annotation> <x:tag xmlns:x="urn:x"> </x:tag></annotation></model></sbml>`)
	m := d.Model()
	require.NotNil(t, m)
	assert.Equal(t, `<p xmlns="http://www.w3.org/1999/xhtml"><b>a</b> <i>b</i></p>`, m.Notes())
	assert.Equal(t, ` <x:tag xmlns:x="urn:x"> </x:tag>`, m.Annotation())
}

func TestReadInvalidFormula(t *testing.T) {
	d := read(t, `<sbml level="1" version="2"><model name="m"><listOfRules>
		<parameterRule name="k" formula="k*("/></listOfRules></model></sbml>`)
	assert.Contains(t, codes(d), "invalid-formula")
	require.Equal(t, 1, d.Model().NumRules())
	assert.False(t, d.Model().Rule(0).IsSetMath())
}

func TestReadStrictValidation(t *testing.T) {
	in := `<sbml xmlns="http://www.sbml.org/sbml/level2" level="2" version="1"><model><widget/></model></sbml>`

	d := Read(strings.NewReader(in), Options{Validation: xmltree.ValidateFull})
	assert.Contains(t, codes(d), "schema-violation")
	assert.NotContains(t, codes(d), "unknown-element")

	d = Read(strings.NewReader(in), Options{Validation: xmltree.ValidateNone})
	assert.Equal(t, []string{"unknown-element"}, codes(d))
}

func TestReadAppliesConfig(t *testing.T) {
	in := `<sbml xmlns="http://www.sbml.org/sbml/level2" level="2" version="1"><model><widget/></model></sbml>`
	d := Read(strings.NewReader(in), Options{Config: sbml.DiagnosticConfig{Ignore: []string{"unknown-*"}}})
	assert.Empty(t, codes(d))
}
