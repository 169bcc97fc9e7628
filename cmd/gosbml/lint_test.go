package main

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintExitCodes(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "valid.xml", validModel)
	broken := writeFile(t, dir, "broken.xml", brokenModel)
	events := writeFile(t, dir, "events.xml", eventModel)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"clean", []string{valid}, exitOK},
		{"error", []string{broken}, exitIssues},
		{"ignored", []string{"--ignore", "undefined-*", broken}, exitOK},
		{"fail on fatal", []string{"--fail-on", "fatal", broken}, exitOK},
		{"events without l1", []string{events}, exitOK},
		{"events with l1", []string{"--l1", events}, exitIssues},
		{"bad severity", []string{"--fail-on", "loud", valid}, exitError},
		{"bad format", []string{"--format", "xml", valid}, exitError},
		{"no paths", nil, exitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCLI()
			assert.Equal(t, tt.want, c.dispatch("lint", tt.args), "stdout:\n%s\nstderr:\n%s", c.out, c.err)
		})
	}
}

func TestLintText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a/valid.xml", validModel)
	writeFile(t, dir, "b/broken.sbml", brokenModel)
	writeFile(t, dir, "b/notes.txt", "not a model")

	c := newTestCLI()
	require.Equal(t, exitIssues, c.dispatch("lint", []string{dir}))
	out := c.out.String()
	assert.Contains(t, out, "error: [undefined-species]")
	assert.Contains(t, out, "broken.sbml:")
	assert.Contains(t, out, "Checked 2 documents, found 1 issues:")

	c = newTestCLI()
	require.Equal(t, exitOK, c.dispatch("lint", []string{filepath.Join(dir, "a")}))
	assert.Equal(t, "No issues found in 1 documents\n", c.out.String())

	c = newTestCLI()
	require.Equal(t, exitIssues, c.dispatch("lint", []string{"--quiet", dir}))
	assert.Empty(t, c.out.String())
}

func TestLintJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.xml", brokenModel)
	c := newTestCLI()
	require.Equal(t, exitIssues, c.dispatch("lint", []string{"--format", "json", path}))

	var got lintResult
	require.NoError(t, json.Unmarshal(c.out.Bytes(), &got))
	assert.Equal(t, 1, got.Summary.Documents)
	assert.Equal(t, 1, got.Summary.FailedChecks)
	assert.Equal(t, 1, got.Summary.ByCode["undefined-species"])
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "validate", got.Messages[0].Category)
	assert.Equal(t, path, got.Messages[0].File)
	assert.Positive(t, got.Messages[0].Line)
}

func TestLintMetrics(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.xml", brokenModel)
	valid := writeFile(t, dir, "valid.xml", validModel)
	prom := filepath.Join(dir, "lint.prom")

	c := newTestCLI()
	require.Equal(t, exitIssues, c.dispatch("lint", []string{"--metrics", prom, "--summary", broken, valid}))

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "gosbml_lint_documents 2")
	assert.Contains(t, text, "gosbml_lint_failed_checks 1")
	assert.Contains(t, text, `gosbml_lint_messages{code="undefined-species",severity="error"} 1`)
}

func TestLintConfigFile(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.xml", brokenModel)
	events := writeFile(t, dir, "events.xml", eventModel)

	relaxed := writeFile(t, dir, "relaxed.yaml", `
overrides:
  undefined-species: warning
`)
	c := newTestCLI()
	assert.Equal(t, exitOK, c.dispatch("lint", []string{"--config", relaxed, broken}))
	assert.Contains(t, c.out.String(), "warning: [undefined-species]")

	// A flag given explicitly wins over the file.
	c = newTestCLI()
	assert.Equal(t, exitIssues, c.dispatch("lint", []string{"--config", relaxed, "--fail-on", "warning", broken}))

	strict := writeFile(t, dir, "strict.yaml", "l1: true\n")
	c = newTestCLI()
	assert.Equal(t, exitIssues, c.dispatch("lint", []string{"--config", strict, events}))
	assert.Contains(t, c.out.String(), "l1-events")

	unknown := writeFile(t, dir, "unknown.yaml", "verbose: true\n")
	c = newTestCLI()
	assert.Equal(t, exitError, c.dispatch("lint", []string{"--config", unknown, broken}))
	assert.Contains(t, c.err.String(), "lint config")

	c = newTestCLI()
	assert.Equal(t, exitError, c.dispatch("lint", []string{"--config", filepath.Join(dir, "absent.yaml"), broken}))
}
