package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gosbml/gosbml"
	"github.com/gosbml/gosbml/sbml"
)

// lintFile is the YAML form of a lint configuration:
//
//	ignore: ["l1-*"]
//	overrides:
//	  missing-initial-value: error
//	l1: true
//	fail-on: warning
//	schema: full
type lintFile struct {
	Ignore    []string          `yaml:"ignore"`
	Overrides map[string]string `yaml:"overrides"`
	L1        bool              `yaml:"l1"`
	FailOn    string            `yaml:"fail-on"`
	Schema    string            `yaml:"schema"`
}

// loadLintFile reads a lint configuration. Unknown keys are errors.
func loadLintFile(path string) (lintFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return lintFile{}, err
	}
	defer func() { _ = f.Close() }()
	return decodeLintFile(f)
}

func decodeLintFile(r io.Reader) (lintFile, error) {
	var lf lintFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lf); err != nil && !errors.Is(err, io.EOF) {
		return lintFile{}, fmt.Errorf("lint config: %w", err)
	}
	return lf, nil
}

// diagnosticConfig converts the file's ignore list and overrides,
// rejecting unknown codes and severities. Ignore patterns may be globs
// and are not checked.
func (lf lintFile) diagnosticConfig() (sbml.DiagnosticConfig, error) {
	cfg := sbml.DiagnosticConfig{Ignore: slices.Clone(lf.Ignore)}
	if len(lf.Overrides) == 0 {
		return cfg, nil
	}
	cfg.Overrides = make(map[string]sbml.Severity, len(lf.Overrides))
	for code, name := range lf.Overrides {
		if _, ok := sbml.MessageIDForCode(code); !ok {
			return sbml.DiagnosticConfig{}, fmt.Errorf("lint config: unknown message code %q", code)
		}
		sev, ok := sbml.SeverityForName(name)
		if !ok {
			return sbml.DiagnosticConfig{}, fmt.Errorf("lint config: unknown severity %q for %s", name, code)
		}
		cfg.Overrides[code] = sev
	}
	return cfg, nil
}

// parseSchema maps a --schema value to a validation level.
func parseSchema(s string) (gosbml.ValidationLevel, error) {
	switch s {
	case "", "none":
		return gosbml.ValidateNone, nil
	case "basic":
		return gosbml.ValidateBasic, nil
	case "full":
		return gosbml.ValidateFull, nil
	}
	return 0, fmt.Errorf("unknown schema validation level %q (want none, basic or full)", s)
}
