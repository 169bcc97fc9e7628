package writer

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/formula"
	"github.com/gosbml/gosbml/internal/reader"
	"github.com/gosbml/gosbml/sbml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *ast.Node {
	t.Helper()
	n, err := formula.Parse(text)
	require.NoError(t, err, text)
	return n
}

type identity interface {
	SetID(string)
	SetName(string)
}

func newDocument(t *testing.T, level, version int) *sbml.Document {
	t.Helper()
	d, err := sbml.NewDocumentWithLevel(level, version)
	require.NoError(t, err)
	m := d.CreateModel("")
	if level == 1 {
		m.SetName("m")
	} else {
		m.SetID("m")
	}
	add := func(n identity, id string) {
		if level == 1 {
			n.SetName(id)
		} else {
			n.SetID(id)
		}
	}
	c := sbml.NewCompartment("")
	add(c, "c1")
	c.SetSize(1)
	m.AddCompartment(c)
	for _, id := range []string{"s1", "s2"} {
		s := sbml.NewSpecies("", "c1")
		add(s, id)
		s.SetInitialAmount(5)
		m.AddSpecies(s)
	}
	p := sbml.NewParameter("")
	add(p, "k1")
	p.SetValue(0.1)
	m.AddParameter(p)
	r := sbml.NewReaction("")
	add(r, "r1")
	r.AddReactant(sbml.NewSpeciesReference("s1"))
	r.AddProduct(sbml.NewSpeciesReference("s2"))
	r.CreateKineticLaw().SetMath(mustParse(t, "k1*s1"))
	m.AddReaction(r)
	return d
}

func write(t *testing.T, d *sbml.Document, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, d, opts))
	return buf.String()
}

func TestWriteLevel2(t *testing.T) {
	out := write(t, newDocument(t, 2, 1), Options{Program: "gosbml", ProgramVersion: "1.0"})

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, "<!-- Created by gosbml version 1.0 -->")
	assert.Contains(t, out, `<sbml xmlns="http://www.sbml.org/sbml/level2" level="2" version="1">`)
	assert.Contains(t, out, `<compartment id="c1" size="1"/>`)
	assert.Contains(t, out, `<species id="s1" compartment="c1" initialAmount="5"/>`)
	assert.Contains(t, out, `<parameter id="k1" value="0.1"/>`)
	assert.Contains(t, out, `<speciesReference species="s1"/>`)
	assert.Contains(t, out, `<math xmlns="http://www.w3.org/1998/Math/MathML">`)
	assert.NotContains(t, out, "listOfRules", "empty lists are omitted")
	assert.NotContains(t, out, "formula=")
}

func TestWriteLevel1(t *testing.T) {
	tests := []struct {
		version int
		want    []string
	}{
		{1, []string{
			`<sbml xmlns="http://www.sbml.org/sbml/level1" level="1" version="1">`,
			`<specie name="s1" compartment="c1" initialAmount="5"/>`,
			`<specieReference specie="s1"/>`,
			`<kineticLaw formula="k1*s1"/>`,
		}},
		{2, []string{
			`<species name="s1" compartment="c1" initialAmount="5"/>`,
			`<speciesReference species="s1"/>`,
		}},
	}
	for _, tt := range tests {
		out := write(t, newDocument(t, 1, tt.version), Options{})
		for _, w := range tt.want {
			assert.Contains(t, out, w)
		}
		assert.NotContains(t, out, "<math")
		assert.NotContains(t, out, "<!--", "no provenance without a program")
	}
}

func TestWriteLevel1Rules(t *testing.T) {
	d := newDocument(t, 1, 1)
	m := d.Model()
	m.AddRule(sbml.NewAssignmentRule("s1", mustParse(t, "k1*2")))
	m.AddRule(sbml.NewRateRule("c1", mustParse(t, "0")))
	m.AddRule(sbml.NewAssignmentRule("k1", mustParse(t, "1")))
	m.AddRule(sbml.NewAssignmentRule("undeclared", mustParse(t, "1")))
	m.AddRule(sbml.NewAlgebraicRule(mustParse(t, "s1 - s2")))

	out := write(t, d, Options{})
	assert.Contains(t, out, `<specieConcentrationRule formula="k1*2" specie="s1"/>`)
	assert.Contains(t, out, `<compartmentVolumeRule formula="0" type="rate" compartment="c1"/>`)
	assert.Contains(t, out, `<parameterRule formula="1" name="k1"/>`)
	assert.Contains(t, out, `<parameterRule formula="1" name="undeclared"/>`)
	assert.Contains(t, out, `<algebraicRule formula="s1 - s2"/>`)
}

func TestWriteSpecialValues(t *testing.T) {
	d := newDocument(t, 2, 1)
	p := d.Model().CreateParameter("inf")
	p.SetValue(math.Inf(1))
	d.Model().CreateParameter("nan").SetValue(math.NaN())
	d.Model().CreateParameter("small").SetValue(1e-20)

	out := write(t, d, Options{})
	assert.Contains(t, out, `<parameter id="inf" value="INF"/>`)
	assert.Contains(t, out, `<parameter id="nan" value="NaN"/>`)
	assert.Contains(t, out, `<parameter id="small" value="1e-20"/>`)
}

func TestWriteNotesVerbatim(t *testing.T) {
	d := newDocument(t, 2, 1)
	notes := `<p xmlns="http://www.w3.org/1999/xhtml">a &amp; b</p>`
	d.Model().SetNotes(notes)
	d.Model().SetMetaID("meta1")

	out := write(t, d, Options{})
	assert.Contains(t, out, `<model id="m" metaid="meta1">`)
	assert.Contains(t, out, "<notes>"+notes+"</notes>")
}

func TestWriteRoundTrip(t *testing.T) {
	for _, lv := range [][2]int{{1, 1}, {1, 2}, {2, 1}} {
		d := newDocument(t, lv[0], lv[1])
		d.Model().AddRule(sbml.NewRateRule("k1", mustParse(t, "-k1/2")))
		first := write(t, d, Options{})

		back := reader.Read(strings.NewReader(first), reader.Options{})
		require.Zero(t, back.NumMessages(), "level %d version %d: %v", lv[0], lv[1], back.Messages())
		assert.Equal(t, first, write(t, back, Options{}), "level %d version %d", lv[0], lv[1])
	}
}

func TestWriteNoModel(t *testing.T) {
	out := write(t, sbml.NewDocument(), Options{})
	assert.Contains(t, out, `<sbml xmlns="http://www.sbml.org/sbml/level2" level="2" version="1"/>`)
}

func TestWriteErrors(t *testing.T) {
	assert.ErrorIs(t, Write(&bytes.Buffer{}, nil, Options{}), ErrNilDocument)

	d := newDocument(t, 2, 1)
	d.Model().Reaction(0).KineticLaw().SetMath(ast.New(ast.TypeUnknown))
	assert.Error(t, Write(&bytes.Buffer{}, d, Options{}))

	assert.Error(t, Write(failingWriter{}, newDocument(t, 2, 1), Options{}))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLevel1WritesIDOverKeptName(t *testing.T) {
	d := newDocument(t, 2, 1)
	d.Model().Species(0).SetName("Glucose")
	require.NoError(t, d.SetLevelAndVersion(1, 2))

	out := write(t, d, Options{})
	assert.Contains(t, out, `<species name="s1" compartment="c1" initialAmount="5"/>`)
	assert.Contains(t, out, `<speciesReference species="s1"/>`)
	assert.NotContains(t, out, "Glucose")
}
