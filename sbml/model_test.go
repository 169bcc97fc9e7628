package sbml

import (
	"testing"

	"github.com/gosbml/gosbml/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOfOwnership(t *testing.T) {
	m1 := NewModel("m1")
	m2 := NewModel("m2")
	s := NewSpecies("s1", "c1")

	assert.Equal(t, 0, m1.AddSpecies(s))
	assert.Equal(t, 0, m1.AddSpecies(s), "re-adding is a no-op")
	assert.Equal(t, 1, m1.NumSpecies())

	m2.AddSpecies(s)
	assert.Equal(t, 0, m1.NumSpecies(), "moving removes from the old list")
	assert.Same(t, s, m2.Species(0))

	assert.Nil(t, m2.Species(5))
	assert.Nil(t, m2.Species(-1))
	assert.Nil(t, m2.ListOfSpecies().Remove(3))

	removed := m2.ListOfSpecies().Remove(0)
	assert.Same(t, s, removed)
	assert.Equal(t, 0, m2.NumSpecies())
	m1.AddSpecies(s)
	assert.Equal(t, 1, m1.NumSpecies())
}

func TestListOfIndicesStayContiguous(t *testing.T) {
	m := NewModel("")
	for _, id := range []string{"a", "b", "c", "d"} {
		m.CreateParameter(id)
	}
	m.ListOfParameters().Remove(1)
	var ids []string
	for i, p := range m.ListOfParameters().All() {
		assert.Same(t, p, m.Parameter(i))
		ids = append(ids, p.ID())
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)
}

func TestLookupReturnsFirstMatch(t *testing.T) {
	m := NewModel("")
	first := m.CreateCompartment("c")
	m.CreateCompartment("c")
	assert.Same(t, first, m.CompartmentByID("c"))
	assert.Nil(t, m.CompartmentByID("missing"))
	assert.Nil(t, m.CompartmentByID(""))

	// Level 1 entities are found by name.
	p := NewParameter("")
	p.SetName("k1")
	m.AddParameter(p)
	assert.Same(t, p, m.ParameterByID("k1"))
}

func TestSpeciesInitialValuesExclusive(t *testing.T) {
	s := NewSpecies("s1", "c1")
	s.SetInitialAmount(5)
	assert.True(t, s.IsSetInitialAmount())
	assert.False(t, s.IsSetInitialConcentration())

	s.SetInitialConcentration(0.5)
	assert.True(t, s.IsSetInitialConcentration())
	assert.False(t, s.IsSetInitialAmount())
	assert.Equal(t, 0.0, s.InitialAmount())

	s.SetInitialAmount(0)
	assert.True(t, s.IsSetInitialAmount(), "zero is a set value")
	assert.False(t, s.IsSetInitialConcentration())
}

func TestIdentifierMoves(t *testing.T) {
	c := NewCompartment("cell")
	c.SetName("The cell")
	c.MoveIDToName()
	assert.Equal(t, "cell", c.ID())
	assert.Equal(t, "The cell", c.Name())

	c.UnsetName()
	c.MoveIDToName()
	assert.False(t, c.IsSetID())
	assert.Equal(t, "cell", c.Name())
	assert.Equal(t, "cell", c.Identifier())

	c.MoveIDToName()
	assert.Equal(t, "cell", c.Name(), "second move is a no-op")

	c.MoveNameToID()
	assert.Equal(t, "cell", c.ID())
	assert.False(t, c.IsSetName())
}

func TestDefaults(t *testing.T) {
	c := NewCompartment("c")
	assert.Equal(t, 3, c.SpatialDimensions())
	assert.Equal(t, 1.0, c.Size())
	assert.True(t, c.Constant())
	assert.False(t, c.IsSetSize())

	r := NewReaction("r")
	assert.True(t, r.Reversible())
	assert.False(t, r.Fast())
	assert.False(t, r.IsSetKineticLaw())

	sr := NewSpeciesReference("s")
	assert.Equal(t, 1.0, sr.Stoichiometry())
	assert.Equal(t, 1, sr.Denominator())
	assert.False(t, sr.IsSetStoichiometry())

	p := NewParameter("p")
	assert.True(t, p.Constant())

	s := NewSpecies("s", "c")
	assert.False(t, s.Constant())
	assert.False(t, s.BoundaryCondition())

	u := NewUnit(UnitMole)
	assert.Equal(t, 1, u.Exponent())
	assert.Equal(t, 0, u.Scale())
	assert.Equal(t, 1.0, u.Multiplier())
	assert.Equal(t, 0.0, u.Offset())
}

func TestStoichiometryMathOverridesNumber(t *testing.T) {
	sr := NewSpeciesReference("s")
	sr.SetStoichiometry(2)
	sr.SetDenominator(4)
	v, ok := sr.EffectiveStoichiometry()
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	sr.SetStoichiometryMath(ast.NewInteger(3))
	assert.False(t, sr.IsSetStoichiometry())
	v, ok = sr.EffectiveStoichiometry()
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	sr.SetStoichiometryMath(ast.NewName("n"))
	_, ok = sr.EffectiveStoichiometry()
	assert.False(t, ok)

	sr.SetStoichiometry(1)
	assert.False(t, sr.IsSetStoichiometryMath())
}

func TestKineticLawFormulaView(t *testing.T) {
	r := NewReaction("r1")
	kl := r.CreateKineticLaw()
	require.NoError(t, kl.SetFormula("k1*s1"))
	assert.Equal(t, "k1*s1", kl.Formula())
	assert.Equal(t, ast.TypeTimes, kl.Math().Type())

	err := kl.SetFormula("k1*")
	require.Error(t, err)
	assert.Equal(t, "k1*s1", kl.Formula(), "failed parse keeps math")

	kl.Parameters().Append(NewParameter("k1"))
	assert.NotNil(t, kl.ParameterByID("k1"))
}

func TestMathMovesBetweenOwners(t *testing.T) {
	n, err := ast.NewOperator(ast.TypePlus, ast.NewName("a"), ast.NewName("b"))
	require.NoError(t, err)

	r1 := NewAssignmentRule("x", n)
	kl := &KineticLaw{}
	kl.SetMath(n)
	assert.Nil(t, r1.Math(), "previous owner released the tree")
	assert.Same(t, n, kl.Math())

	// Attaching the tree under another node releases the slot too.
	outer := ast.New(ast.TypeTimes)
	require.NoError(t, outer.AddChild(n))
	assert.False(t, kl.IsSetMath())
}

func TestKineticLawMovesBetweenReactions(t *testing.T) {
	r1 := NewReaction("r1")
	r2 := NewReaction("r2")
	kl := r1.CreateKineticLaw()
	r2.SetKineticLaw(kl)
	assert.Nil(t, r1.KineticLaw())
	assert.Same(t, kl, r2.KineticLaw())
	r2.SetKineticLaw(nil)
	assert.False(t, r2.IsSetKineticLaw())
}

func TestRuleKinds(t *testing.T) {
	m := NewModel("")
	m.CreateSpecies("s", "c")
	m.CreateCompartment("c")
	m.CreateParameter("p")

	tests := []struct {
		rule   *Rule
		code   TypeCode
		legacy TypeCode
		l1     RuleType
	}{
		{NewAlgebraicRule(ast.NewName("p")), TypeAlgebraicRule, TypeAlgebraicRule, RuleTypeInvalid},
		{NewAssignmentRule("s", ast.NewInteger(1)), TypeAssignmentRule, TypeSpeciesConcentrationRule, RuleTypeScalar},
		{NewAssignmentRule("c", ast.NewInteger(1)), TypeAssignmentRule, TypeCompartmentVolumeRule, RuleTypeScalar},
		{NewRateRule("p", ast.NewInteger(1)), TypeRateRule, TypeParameterRule, RuleTypeRate},
		{NewRateRule("q", ast.NewInteger(1)), TypeRateRule, TypeRateRule, RuleTypeRate},
	}
	for _, tt := range tests {
		t.Run(tt.code.String()+"/"+tt.rule.Variable(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.rule.TypeCode())
			assert.Equal(t, tt.legacy, tt.rule.LegacyTypeCode(m))
			assert.Equal(t, tt.l1, tt.rule.L1RuleType())
		})
	}
}

func TestSetL1RuleType(t *testing.T) {
	r := NewAssignmentRule("x", ast.NewInteger(1))
	require.True(t, r.SetL1RuleType(RuleTypeRate))
	assert.True(t, r.IsRate())
	assert.Equal(t, "x", r.Variable())
	require.True(t, r.SetL1RuleType(RuleTypeScalar))
	assert.True(t, r.IsAssignment())
	assert.False(t, r.SetL1RuleType(RuleTypeInvalid))

	alg := NewAlgebraicRule(ast.NewInteger(0))
	assert.False(t, alg.SetL1RuleType(RuleTypeRate))
	assert.True(t, alg.IsAlgebraic())

	assert.Equal(t, RuleTypeRate, RuleTypeForName("rate"))
	assert.Equal(t, RuleTypeInvalid, RuleTypeForName("Rate"))
}

func TestFunctionDefinitionArguments(t *testing.T) {
	body, _ := ast.NewOperator(ast.TypeTimes, ast.NewName("x"), ast.NewName("y"))
	lambda, err := ast.NewOperator(ast.TypeLambda, ast.NewName("x"), ast.NewName("y"), body)
	require.NoError(t, err)
	fd := NewFunctionDefinition("f", lambda)
	assert.Equal(t, []string{"x", "y"}, fd.Arguments())
	assert.Same(t, body, fd.Body())

	fd.SetMath(ast.NewInteger(1))
	assert.Nil(t, fd.Arguments())
	assert.Nil(t, fd.Body())
}

func TestUnitKindEquality(t *testing.T) {
	assert.True(t, UnitLiter.Equal(UnitLitre))
	assert.True(t, UnitMeter.Equal(UnitMetre))
	assert.True(t, UnitMetre.Equal(UnitMeter))
	for a := UnitAmpere; a < UnitInvalid; a++ {
		for b := UnitAmpere; b < UnitInvalid; b++ {
			if a == b {
				continue
			}
			alias := (a.canonical() == UnitLiter && b.canonical() == UnitLiter) ||
				(a.canonical() == UnitMeter && b.canonical() == UnitMeter)
			assert.Equal(t, alias, a.Equal(b), "%s vs %s", a, b)
		}
	}
}

func TestUnitKindForName(t *testing.T) {
	for k := UnitAmpere; k < UnitInvalid; k++ {
		assert.Equal(t, k, UnitKindForName(k.String()), k.String())
	}
	assert.Equal(t, UnitCelsius, UnitKindForName("celsius"))
	assert.Equal(t, UnitMole, UnitKindForName("MOLE"))
	assert.Equal(t, UnitInvalid, UnitKindForName("furlong"))
	assert.False(t, UnitInvalid.IsValid())

	assert.True(t, IsBuiltinUnit("substance"))
	assert.True(t, IsBuiltinUnit("mole"))
	assert.False(t, IsBuiltinUnit("MOLE"))
	assert.False(t, IsBuiltinUnit("mmol"))
}

func TestMoveAllNamesToIDs(t *testing.T) {
	m := NewModel("")
	m.SetName("model")
	c := NewCompartment("")
	c.SetName("cell")
	m.AddCompartment(c)
	r := m.CreateReaction("")
	r.SetName("r1")
	kl := r.CreateKineticLaw()
	p := NewParameter("")
	p.SetName("k")
	kl.AddParameter(p)

	m.MoveAllNamesToIDs()
	assert.Equal(t, "model", m.ID())
	assert.Equal(t, "cell", c.ID())
	assert.Equal(t, "r1", r.ID())
	assert.Equal(t, "k", p.ID())
	assert.False(t, p.IsSetName())

	m.MoveAllIDsToNames()
	assert.Equal(t, "cell", c.Name())
	assert.False(t, c.IsSetID())
}
