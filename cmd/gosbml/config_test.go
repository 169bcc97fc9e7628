package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosbml/gosbml"
	"github.com/gosbml/gosbml/sbml"
)

func TestDecodeLintFile(t *testing.T) {
	lf, err := decodeLintFile(strings.NewReader(`
ignore:
  - l1-*
  - label-lost
overrides:
  missing-math: warning
l1: true
fail-on: warning
schema: basic
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"l1-*", "label-lost"}, lf.Ignore)
	assert.True(t, lf.L1)
	assert.Equal(t, "warning", lf.FailOn)
	assert.Equal(t, "basic", lf.Schema)

	cfg, err := lf.diagnosticConfig()
	require.NoError(t, err)
	assert.Equal(t, sbml.SeverityWarning, cfg.Overrides["missing-math"])
	_, keep := cfg.Apply(sbml.MsgL1Events, sbml.SeverityError)
	assert.False(t, keep)
}

func TestDecodeLintFileEmpty(t *testing.T) {
	lf, err := decodeLintFile(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, lintFile{}, lf)
}

func TestDecodeLintFileRejectsUnknownKeys(t *testing.T) {
	_, err := decodeLintFile(strings.NewReader("ignored: [x]\n"))
	assert.Error(t, err)
}

func TestDiagnosticConfigRejectsUnknownNames(t *testing.T) {
	_, err := lintFile{Overrides: map[string]string{"no-such-code": "error"}}.diagnosticConfig()
	assert.ErrorContains(t, err, "unknown message code")

	_, err = lintFile{Overrides: map[string]string{"missing-math": "loud"}}.diagnosticConfig()
	assert.ErrorContains(t, err, "unknown severity")
}

func TestParseSchema(t *testing.T) {
	for in, want := range map[string]gosbml.ValidationLevel{
		"":      gosbml.ValidateNone,
		"none":  gosbml.ValidateNone,
		"basic": gosbml.ValidateBasic,
		"full":  gosbml.ValidateFull,
	} {
		got, err := parseSchema(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseSchema("strict")
	assert.Error(t, err)
}
