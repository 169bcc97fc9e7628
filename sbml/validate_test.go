package sbml

import (
	"testing"

	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *ast.Node {
	t.Helper()
	n, err := formula.Parse(text)
	require.NoError(t, err, text)
	return n
}

// simpleDocument returns a consistent model: one compartment, two
// species, a parameter and a reaction s1 -> s2 with rate k1*s1.
func simpleDocument(t *testing.T) *Document {
	t.Helper()
	d := NewDocument()
	m := d.CreateModel("m")
	m.CreateCompartment("c1")
	m.CreateSpecies("s1", "c1").SetInitialAmount(5)
	m.CreateSpecies("s2", "c1").SetInitialAmount(0)
	m.CreateParameter("k1").SetValue(0.1)
	r := m.CreateReaction("r1")
	r.AddReactant(NewSpeciesReference("s1"))
	r.AddProduct(NewSpeciesReference("s2"))
	r.CreateKineticLaw().SetMath(mustParse(t, "k1*s1"))
	return d
}

func codes(d *Document) []string {
	var out []string
	for _, m := range d.Messages() {
		out = append(out, m.ID.String())
	}
	return out
}

func TestCheckConsistencyClean(t *testing.T) {
	d := simpleDocument(t)
	assert.Equal(t, 0, d.CheckConsistency())
	assert.Empty(t, codes(d))
}

func TestCheckConsistencyNoModel(t *testing.T) {
	assert.Equal(t, 0, NewDocument().CheckConsistency())
	assert.Equal(t, 0, NewDocument().CheckL1Compatibility())
}

func TestUndefinedRuleVariable(t *testing.T) {
	d := simpleDocument(t)
	d.Model().AddRule(NewAssignmentRule("nothing", ast.NewInteger(1)))

	failed := d.CheckConsistency()
	assert.GreaterOrEqual(t, failed, 1)
	assert.Contains(t, codes(d), "undefined-rule-variable")
	e, ok := d.Error(0)
	require.True(t, ok)
	assert.Equal(t, CategoryValidate, e.Category)
}

func TestRevalidationAppends(t *testing.T) {
	d := simpleDocument(t)
	d.Model().AddRule(NewAssignmentRule("nothing", ast.NewInteger(1)))
	first := d.CheckConsistency()
	second := d.CheckConsistency()
	assert.Equal(t, first, second)
	assert.Equal(t, 2*first, d.NumErrors())

	d.ClearValidationMessages()
	assert.Equal(t, 0, d.NumMessages())
}

func TestConsistencyViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, m *Model)
		code   string
		failed bool
	}{
		{"duplicate id", func(t *testing.T, m *Model) {
			m.CreateParameter("s1")
		}, "duplicate-id", true},
		{"undefined compartment", func(t *testing.T, m *Model) {
			m.CreateSpecies("s3", "nowhere").SetInitialAmount(1)
		}, "undefined-compartment", true},
		{"undefined outside", func(t *testing.T, m *Model) {
			m.CreateCompartment("c2").SetOutside("c9")
		}, "undefined-compartment", true},
		{"undefined species reference", func(t *testing.T, m *Model) {
			m.Reaction(0).AddProduct(NewSpeciesReference("s9"))
		}, "undefined-species", true},
		{"undefined modifier", func(t *testing.T, m *Model) {
			m.Reaction(0).AddModifier(NewModifierSpeciesReference("e"))
		}, "undefined-species", true},
		{"undefined symbol in kinetic law", func(t *testing.T, m *Model) {
			m.Reaction(0).KineticLaw().SetMath(mustParse(t, "k2*s1"))
		}, "undefined-symbol", true},
		{"local parameter in scope", func(t *testing.T, m *Model) {
			kl := m.Reaction(0).KineticLaw()
			kl.SetMath(mustParse(t, "k2*s1"))
			kl.AddParameter(NewParameter("k2"))
		}, "", false},
		{"undefined function", func(t *testing.T, m *Model) {
			m.Reaction(0).KineticLaw().SetMath(mustParse(t, "f(s1)"))
		}, "undefined-function", true},
		{"undefined unit", func(t *testing.T, m *Model) {
			m.Parameter(0).SetUnits("per_fortnight")
		}, "undefined-unit", true},
		{"builtin unit", func(t *testing.T, m *Model) {
			m.Parameter(0).SetUnits("second")
		}, "", false},
		{"declared unit", func(t *testing.T, m *Model) {
			m.CreateUnitDefinition("per_second").CreateUnit(UnitSecond).SetExponent(-1)
			m.Parameter(0).SetUnits("per_second")
		}, "", false},
		{"invalid unit kind", func(t *testing.T, m *Model) {
			m.CreateUnitDefinition("u").CreateUnit(UnitInvalid)
		}, "invalid-unit-kind", true},
		{"two rules for variable", func(t *testing.T, m *Model) {
			m.Parameter(0).SetConstant(false)
			m.AddRule(NewAssignmentRule("k1", ast.NewInteger(1)))
			m.AddRule(NewRateRule("k1", ast.NewInteger(2)))
		}, "multiple-rules-for-variable", true},
		{"rule assigns constant", func(t *testing.T, m *Model) {
			m.AddRule(NewAssignmentRule("k1", ast.NewInteger(1)))
		}, "rule-assigns-constant", true},
		{"assignment cycle", func(t *testing.T, m *Model) {
			m.CreateParameter("a").SetConstant(false)
			m.CreateParameter("b").SetConstant(false)
			m.AddRule(NewAssignmentRule("a", mustParse(t, "b + 1")))
			m.AddRule(NewAssignmentRule("b", mustParse(t, "a*2")))
		}, "assignment-rule-cycle", true},
		{"rate rules may be self referential", func(t *testing.T, m *Model) {
			m.CreateParameter("a").SetConstant(false)
			m.AddRule(NewRateRule("a", mustParse(t, "-a")))
		}, "", false},
		{"function not lambda", func(t *testing.T, m *Model) {
			m.AddFunctionDefinition(NewFunctionDefinition("f", ast.NewInteger(1)))
		}, "function-not-lambda", true},
		{"function body uses free symbol", func(t *testing.T, m *Model) {
			lambda, _ := ast.NewOperator(ast.TypeLambda, ast.NewName("x"), mustParse(t, "x*k1"))
			m.AddFunctionDefinition(NewFunctionDefinition("f", lambda))
		}, "undefined-symbol", true},
		{"recursive function", func(t *testing.T, m *Model) {
			f, _ := ast.NewOperator(ast.TypeLambda, ast.NewName("x"), mustParse(t, "g(x)"))
			g, _ := ast.NewOperator(ast.TypeLambda, ast.NewName("x"), mustParse(t, "f(x) + 1"))
			m.AddFunctionDefinition(NewFunctionDefinition("f", f))
			m.AddFunctionDefinition(NewFunctionDefinition("g", g))
		}, "recursive-function", true},
		{"event without trigger", func(t *testing.T, m *Model) {
			m.AddEvent(NewEvent("e", nil))
		}, "event-missing-trigger", true},
		{"event assignment target", func(t *testing.T, m *Model) {
			e := NewEvent("e", mustParse(t, "s1"))
			e.AddAssignment(NewEventAssignment("zz", ast.NewInteger(0)))
			m.AddEvent(e)
		}, "undefined-symbol", true},
		{"empty reaction", func(t *testing.T, m *Model) {
			m.CreateReaction("r2")
		}, "reaction-without-species", true},
		{"missing kinetic law math", func(t *testing.T, m *Model) {
			m.Reaction(0).KineticLaw().SetMath(nil)
		}, "missing-math", true},
		{"species without initial value", func(t *testing.T, m *Model) {
			m.CreateSpecies("s3", "c1")
		}, "species-missing-initial-value", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := simpleDocument(t)
			tt.mutate(t, d.Model())
			failed := d.CheckConsistency()
			if tt.code == "" {
				assert.Empty(t, codes(d))
				assert.Equal(t, 0, failed)
				return
			}
			assert.Contains(t, codes(d), tt.code)
			if tt.failed {
				assert.Positive(t, failed)
			} else {
				assert.Equal(t, 0, failed, "warnings are not failures")
			}
		})
	}
}

func TestValidationHonorsDiagnosticConfig(t *testing.T) {
	d := simpleDocument(t)
	d.Model().CreateParameter("s1")
	d.SetDiagnosticConfig(DiagnosticConfig{Overrides: map[string]Severity{"duplicate-id": SeverityWarning}})
	assert.Equal(t, 0, d.CheckConsistency())
	assert.Equal(t, 1, d.NumWarnings())

	d.ClearValidationMessages()
	d.SetDiagnosticConfig(DiagnosticConfig{Ignore: []string{"duplicate-*"}})
	assert.Equal(t, 0, d.CheckConsistency())
	assert.Equal(t, 0, d.NumMessages())
}

func TestCheckL1Compatibility(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, m *Model)
		code   string
	}{
		{"events", func(t *testing.T, m *Model) {
			m.AddEvent(NewEvent("e", mustParse(t, "s1")))
		}, "l1-events"},
		{"function definitions", func(t *testing.T, m *Model) {
			lambda, _ := ast.NewOperator(ast.TypeLambda, ast.NewName("x"), ast.NewName("x"))
			m.AddFunctionDefinition(NewFunctionDefinition("f", lambda))
		}, "l1-function-definitions"},
		{"spatial dimensions", func(t *testing.T, m *Model) {
			m.Compartment(0).SetSpatialDimensions(2)
		}, "l1-spatial-dimensions"},
		{"initial concentration", func(t *testing.T, m *Model) {
			m.Species(0).SetInitialConcentration(1)
		}, "l1-initial-concentration"},
		{"has only substance units", func(t *testing.T, m *Model) {
			m.Species(0).SetHasOnlySubstanceUnits(true)
		}, "l1-has-only-substance-units"},
		{"spatial size units", func(t *testing.T, m *Model) {
			m.Species(0).SetSpatialSizeUnits("litre")
		}, "l1-spatial-size-units"},
		{"unit multiplier", func(t *testing.T, m *Model) {
			m.CreateUnitDefinition("u").CreateUnit(UnitMole).SetMultiplier(2)
		}, "l1-unit-offset-multiplier"},
		{"stoichiometry math", func(t *testing.T, m *Model) {
			m.Reaction(0).Reactant(0).SetStoichiometryMath(ast.NewName("k1"))
		}, "l1-stoichiometry-math"},
		{"fractional stoichiometry", func(t *testing.T, m *Model) {
			m.Reaction(0).Reactant(0).SetStoichiometry(0.5)
		}, "l1-stoichiometry-math"},
		{"modifiers", func(t *testing.T, m *Model) {
			m.Reaction(0).AddModifier(NewModifierSpeciesReference("s2"))
		}, "l1-modifiers"},
		{"piecewise", func(t *testing.T, m *Model) {
			pw, _ := ast.NewOperator(ast.TypeFunctionPiecewise, ast.NewName("k1"), mustParse(t, "gt(s1, 1)"))
			m.Reaction(0).KineticLaw().SetMath(pw)
		}, "l1-math-construct"},
		{"rate rule target", func(t *testing.T, m *Model) {
			m.AddRule(NewRateRule("r1", ast.NewInteger(1)))
		}, "l1-rate-rule-target"},
		{"missing name", func(t *testing.T, m *Model) {
			m.AddParameter(NewParameter(""))
		}, "l1-missing-name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := simpleDocument(t)
			require.Equal(t, 0, d.CheckL1Compatibility())
			tt.mutate(t, d.Model())
			assert.Positive(t, d.CheckL1Compatibility())
			assert.Contains(t, codes(d), tt.code)
		})
	}
}

func TestCheckL1WarnsMissingInitialAmount(t *testing.T) {
	d := simpleDocument(t)
	d.Model().CreateSpecies("s3", "c1")

	assert.Equal(t, 0, d.CheckL1Compatibility(), "a warning does not fail the check")
	require.Equal(t, 1, d.NumWarnings())
	w, ok := d.Warning(0)
	require.True(t, ok)
	assert.Equal(t, MsgL1MissingInitialAmount, w.ID)
	assert.Contains(t, w.Message, `"s3"`)

	require.NoError(t, d.SetLevelAndVersion(1, 2))
	assert.Contains(t, codes(d), "l1-missing-initial-amount")
}

func TestSetLevelAndVersion(t *testing.T) {
	d := simpleDocument(t)
	s := d.Model().Species(0)

	require.NoError(t, d.SetLevelAndVersion(1, 2))
	assert.Equal(t, 1, d.Level())
	assert.Equal(t, 2, d.Version())
	assert.False(t, s.IsSetID())
	assert.Equal(t, "s1", s.Name())
	assert.NotContains(t, codes(d), "label-lost")

	require.NoError(t, d.SetLevelAndVersion(2, 1))
	assert.Equal(t, "s1", s.ID())
	assert.False(t, s.IsSetName())
	assert.Same(t, s, d.Model().SpeciesByID("s1"))

	assert.ErrorIs(t, d.SetLevelAndVersion(2, 4), ErrUnsupportedLevel)
	assert.Equal(t, 2, d.Level())
}

func TestSetLevel1KeepsExistingName(t *testing.T) {
	d := simpleDocument(t)
	s := d.Model().Species(0)
	s.SetName("Glucose")

	require.NoError(t, d.SetLevelAndVersion(1, 1))
	assert.Equal(t, "Glucose", s.Name())
	assert.Equal(t, "s1", s.ID(), "id is not moved onto a set name")
	assert.Equal(t, "s1", s.Identifier())
	assert.Same(t, s, d.Model().SpeciesByID("s1"))
	assert.Contains(t, codes(d), "label-lost")

	// Converting back leaves both fields as they are.
	require.NoError(t, d.SetLevelAndVersion(2, 1))
	assert.Equal(t, "s1", s.ID())
	assert.Equal(t, "Glucose", s.Name())
}

func TestSetLevelRefusesIncompatibleModel(t *testing.T) {
	d := simpleDocument(t)
	d.Model().AddEvent(NewEvent("e", mustParse(t, "s1")))

	err := d.SetLevelAndVersion(1, 2)
	assert.ErrorIs(t, err, ErrIncompatible)
	assert.Equal(t, 2, d.Level())
	assert.Equal(t, "s1", d.Model().Species(0).ID(), "model unchanged")
}
