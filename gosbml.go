// Package gosbml reads, validates, converts and writes SBML models.
//
// Reading never fails outright: problems are recorded as messages in
// the returned document, so callers check Document.NumFatals and
// Document.NumErrors rather than a Go error.
//
//	doc := gosbml.ReadFile("model.xml", gosbml.WithLogger(slog.Default()))
//	if doc.NumFatals() > 0 {
//	    m, _ := doc.Fatal(0)
//	    log.Fatal(m)
//	}
//	doc.CheckConsistency()
//
// Writing returns an error only when the destination fails or a math
// expression has no form at the document's level.
package gosbml

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gosbml/gosbml/internal/reader"
	"github.com/gosbml/gosbml/internal/types"
	"github.com/gosbml/gosbml/internal/writer"
	"github.com/gosbml/gosbml/internal/xmltree"
	"github.com/gosbml/gosbml/sbml"
)

// Version is the library version. The CLI reports it and records it
// in the provenance comment of documents it writes.
const Version = "0.4.0"

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (XML elements, tokens, constraints).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures reading and writing.
type Option func(*config)

type config struct {
	logger         *slog.Logger
	validation     xmltree.ValidationLevel
	diagConfig     sbml.DiagnosticConfig
	program        string
	programVersion string
	indent         string
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithSchemaValidation sets how much structural checking a read does
// before lowering. The default is ValidateNone.
func WithSchemaValidation(level ValidationLevel) Option {
	return func(c *config) { c.validation = level }
}

// WithDiagnosticConfig sets the message filter applied to every message
// logged on documents produced by a read.
func WithDiagnosticConfig(cfg DiagnosticConfig) Option {
	return func(c *config) { c.diagConfig = cfg }
}

// WithProgram records the producing program in a comment before the
// root element of written documents.
func WithProgram(name, version string) Option {
	return func(c *config) { c.program, c.programVersion = name, version }
}

// WithIndent sets the indentation unit of written documents.
func WithIndent(indent string) Option {
	return func(c *config) { c.indent = indent }
}

func (c config) readOptions() reader.Options {
	return reader.Options{
		Logger:     c.logger,
		Validation: c.validation,
		Config:     c.diagConfig,
	}
}

func (c config) writeOptions() writer.Options {
	return writer.Options{
		Program:        c.program,
		ProgramVersion: c.programVersion,
		Indent:         c.indent,
		Logger:         c.logger,
	}
}

// ReadFile reads the SBML document at path. A missing or unreadable
// file yields a document with no model and a fatal file-not-found
// message.
func ReadFile(path string, opts ...Option) *Document {
	return reader.ReadFile(path, newConfig(opts).readOptions())
}

// Read reads an SBML document from r.
func Read(r io.Reader, opts ...Option) *Document {
	return reader.Read(r, newConfig(opts).readOptions())
}

// ReadString reads an SBML document held in a string.
func ReadString(s string, opts ...Option) *Document {
	return Read(strings.NewReader(s), opts...)
}

// ReadBytes reads an SBML document held in a byte slice.
func ReadBytes(data []byte, opts ...Option) *Document {
	return Read(bytes.NewReader(data), opts...)
}

// Write serializes d to w at the document's level and version.
func Write(w io.Writer, d *Document, opts ...Option) error {
	return writer.Write(w, d, newConfig(opts).writeOptions())
}

// WriteString serializes d and returns the text.
func WriteString(d *Document, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Write(&b, d, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteFile serializes d to the file at path, creating or truncating
// it.
func WriteFile(path string, d *Document, opts ...Option) error {
	var buf bytes.Buffer
	if err := Write(&buf, d, opts...); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
