package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/gosbml/gosbml"
	"github.com/gosbml/gosbml/sbml"
)

const lintUsage = `gosbml lint - Check SBML documents for issues

Usage:
  gosbml lint [options] PATH...

Each PATH is a file or a directory searched recursively for .xml and
.sbml files.

Options:
  --config FILE    Load settings from a YAML file (flags take precedence)
  --l1             Also check that models can be expressed in Level 1
  --fail-on SEV    Exit 2 if any message is at SEV or worse: fatal, error,
                   warning (default: error)
  --ignore CODE    Ignore message codes (repeatable, supports globs like "l1-*")
  --schema LEVEL   Structural validation: none, basic, full (default: none)
  --format FMT     Output format: text, json (default: text)
  --metrics FILE   Write lint counters in Prometheus text format to FILE
  --summary        Show summary only
  --quiet          No output, exit code only
  -h, --help       Show help

Examples:
  gosbml lint model.xml
  gosbml lint --l1 --ignore "missing-*" models/
  gosbml lint --config lint.yaml --format json models/
`

type lintConfig struct {
	file    lintFile
	l1      bool
	failOn  sbml.Severity
	format  string
	metrics string
	summary bool
	quiet   bool
}

type lintResult struct {
	Messages []lintMessage `json:"messages,omitempty"`
	Summary  lintSummary   `json:"summary"`
	ExitCode int           `json:"-"`
}

type lintMessage struct {
	File     string `json:"file"`
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type lintSummary struct {
	Documents    int            `json:"documents"`
	Total        int            `json:"total"`
	FailedChecks int            `json:"failed_checks"`
	BySeverity   map[string]int `json:"by_severity"`
	ByCode       map[string]int `json:"by_code,omitempty"`
}

func (c *cli) cmdLint(args []string) int {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() { _, _ = fmt.Fprint(c.stderr, lintUsage) }

	configPath := fs.String("config", "", "YAML configuration file")
	l1 := fs.Bool("l1", false, "check Level 1 compatibility")
	failOn := fs.String("fail-on", "error", "failure threshold")
	var ignore []string
	fs.Func("ignore", "ignore codes", func(s string) error {
		ignore = append(ignore, s)
		return nil
	})
	schema := fs.String("schema", "", "structural validation level")
	cfg := lintConfig{format: "text"}
	fs.StringVar(&cfg.format, "format", cfg.format, "output format")
	fs.StringVar(&cfg.metrics, "metrics", "", "metrics textfile")
	fs.BoolVar(&cfg.summary, "summary", false, "summary only")
	fs.BoolVar(&cfg.quiet, "quiet", false, "no output")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *help || c.helpFlag {
		_, _ = fmt.Fprint(c.stdout, lintUsage)
		return exitOK
	}
	paths := fs.Args()
	if len(paths) == 0 {
		c.printError("no paths specified")
		_, _ = fmt.Fprint(c.stderr, lintUsage)
		return exitError
	}
	switch cfg.format {
	case "text", "json":
	default:
		c.printError("unknown format: %s", cfg.format)
		return exitError
	}

	if *configPath != "" {
		lf, err := loadLintFile(*configPath)
		if err != nil {
			c.printError("%v", err)
			return exitError
		}
		cfg.file = lf
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	cfg.file.Ignore = append(cfg.file.Ignore, ignore...)
	cfg.l1 = cfg.file.L1 || *l1
	if set["fail-on"] || cfg.file.FailOn == "" {
		cfg.file.FailOn = *failOn
	}
	if set["schema"] {
		cfg.file.Schema = *schema
	}
	sev, ok := sbml.SeverityForName(cfg.file.FailOn)
	if !ok {
		c.printError("unknown severity: %s", cfg.file.FailOn)
		return exitError
	}
	cfg.failOn = sev

	src, err := lintSource(paths)
	if err != nil {
		c.printError("%v", err)
		return exitError
	}
	result, err := c.runLint(src, cfg)
	if err != nil {
		c.printError("%v", err)
		return exitError
	}

	if cfg.metrics != "" {
		if err := writeLintMetrics(cfg.metrics, result); err != nil {
			c.printError("cannot write metrics: %v", err)
			return exitError
		}
	}
	if !cfg.quiet {
		if cfg.format == "json" {
			enc := json.NewEncoder(c.stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				c.printError("output encoding failed: %v", err)
				return exitError
			}
		} else {
			printLintText(c.stdout, result, cfg)
		}
	}
	return result.ExitCode
}

// lintSource turns command-line paths into a batch source: directories
// are searched recursively, anything else is read as a file.
func lintSource(paths []string) (gosbml.Source, error) {
	var sources []gosbml.Source
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err == nil && info.IsDir() {
			src, err := gosbml.DirTree(p)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
			continue
		}
		files = append(files, p)
	}
	if len(files) > 0 {
		sources = append(sources, gosbml.Files(files...))
	}
	return gosbml.Multi(sources...), nil
}

func (c *cli) runLint(src gosbml.Source, cfg lintConfig) (*lintResult, error) {
	diagCfg, err := cfg.file.diagnosticConfig()
	if err != nil {
		return nil, err
	}
	level, err := parseSchema(cfg.file.Schema)
	if err != nil {
		return nil, err
	}
	docs, err := gosbml.ReadAll(context.Background(), src,
		c.options(gosbml.WithDiagnosticConfig(diagCfg), gosbml.WithSchemaValidation(level))...)
	if err != nil {
		return nil, err
	}

	result := &lintResult{
		Summary: lintSummary{
			BySeverity: make(map[string]int),
			ByCode:     make(map[string]int),
		},
	}
	for _, r := range docs {
		doc := r.Document
		result.Summary.Documents++
		if doc.NumFatals() == 0 {
			result.Summary.FailedChecks += doc.CheckConsistency()
			if cfg.l1 {
				result.Summary.FailedChecks += doc.CheckL1Compatibility()
			}
		}
		for _, m := range doc.Messages() {
			result.Messages = append(result.Messages, toLintMessage(r.Path, m))
			result.Summary.Total++
			result.Summary.BySeverity[m.Severity.String()]++
			result.Summary.ByCode[m.ID.String()]++
			if m.Severity <= cfg.failOn {
				result.ExitCode = exitIssues
			}
		}
	}
	return result, nil
}

func toLintMessage(path string, m sbml.Message) lintMessage {
	return lintMessage{
		File:     path,
		Severity: m.Severity.String(),
		Code:     m.ID.String(),
		Category: m.Category.String(),
		Message:  m.Message,
		Line:     m.Line,
		Column:   m.Column,
	}
}

func printLintText(w io.Writer, result *lintResult, cfg lintConfig) {
	if !cfg.summary {
		for _, m := range result.Messages {
			printLintLine(w, m)
		}
	}
	if result.Summary.Total == 0 {
		_, _ = fmt.Fprintf(w, "No issues found in %d documents\n", result.Summary.Documents)
		return
	}
	if !cfg.summary {
		_, _ = fmt.Fprintln(w)
	}
	printLintSummary(w, result)
}

func printLintLine(w io.Writer, m lintMessage) {
	parts := []string{m.Severity + ":", "[" + m.Code + "]"}
	if m.Line > 0 {
		parts = append(parts, fmt.Sprintf("%s:%d:", m.File, m.Line))
	} else {
		parts = append(parts, m.File+":")
	}
	parts = append(parts, m.Message)
	_, _ = fmt.Fprintln(w, strings.Join(parts, " "))
}

func printLintSummary(w io.Writer, result *lintResult) {
	_, _ = fmt.Fprintf(w, "Checked %d documents, found %d issues:\n", result.Summary.Documents, result.Summary.Total)
	for _, sev := range []string{"fatal", "error", "warning"} {
		if count := result.Summary.BySeverity[sev]; count > 0 {
			_, _ = fmt.Fprintf(w, "  %-8s %d\n", sev+":", count)
		}
	}
}
