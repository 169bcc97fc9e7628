// Package reader lowers a parsed XML tree into an SBML document.
//
// Reading never fails: problems become messages in the document log.
// Files that cannot be opened or parsed yield a document with no model
// and a fatal message whose ID tells the two cases apart.
package reader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/formula"
	"github.com/gosbml/gosbml/internal/types"
	"github.com/gosbml/gosbml/internal/xmltree"
	"github.com/gosbml/gosbml/mathml"
	"github.com/gosbml/gosbml/sbml"
)

// Options configures a read.
type Options struct {
	Logger     *slog.Logger
	Validation xmltree.ValidationLevel
	Config     sbml.DiagnosticConfig
}

// ReadFile reads the SBML document at path.
func ReadFile(path string, opts Options) *sbml.Document {
	f, err := os.Open(path)
	if err != nil {
		return OpenFailed(path, err, opts)
	}
	defer func() { _ = f.Close() }()
	return Read(f, opts)
}

// OpenFailed returns the document for a file that could not be opened:
// no model and one fatal file-not-found message.
func OpenFailed(path string, err error, opts Options) *sbml.Document {
	if inner := errors.Unwrap(err); inner != nil {
		err = inner
	}
	d := newDocument(opts)
	d.Log(sbml.Message{
		ID:       sbml.MsgFileNotFound,
		Severity: sbml.SeverityFatal,
		Category: sbml.CategoryRead,
		Message:  fmt.Sprintf("cannot open %s: %v", path, err),
	})
	return d
}

// Read reads an SBML document from r.
func Read(r io.Reader, opts Options) *sbml.Document {
	d := newDocument(opts)
	logger := types.Component(opts.Logger, "reader")

	tree, err := xmltree.Parse(r, types.Component(opts.Logger, "xml"),
		xmltree.KeepSpaceIn("notes", "annotation"))
	if err != nil {
		m := sbml.Message{
			ID:       sbml.MsgNotSBML,
			Severity: sbml.SeverityFatal,
			Category: sbml.CategoryRead,
			Message:  err.Error(),
		}
		var se *xmltree.SyntaxError
		if errors.As(err, &se) {
			m.Message, m.Line, m.Column = se.Msg, se.Line, se.Column
		}
		d.Log(m)
		return d
	}
	return lower(d, tree, opts, logger)
}

func newDocument(opts Options) *sbml.Document {
	d := sbml.NewDocument()
	d.SetDiagnosticConfig(opts.Config)
	d.SetLogger(opts.Logger)
	return d
}

// reader holds the state of lowering one document.
type reader struct {
	doc     *sbml.Document
	level   int
	version int
	strict  bool

	types.Logger
}

func lower(d *sbml.Document, tree *xmltree.Document, opts Options, logger *slog.Logger) *sbml.Document {
	root := tree.Root
	r := &reader{doc: d, Logger: types.Logger{L: logger}}
	if root.Local != "sbml" {
		r.report(sbml.MsgNotSBML, sbml.SeverityFatal, root,
			"root element is <%s>, not <sbml>", root.QName())
		return d
	}

	level, version, ok := r.levelAndVersion(root)
	if !ok {
		return d
	}
	nd, err := sbml.NewDocumentWithLevel(level, version)
	if err != nil {
		r.report(sbml.MsgUnsupportedLevel, sbml.SeverityFatal, root,
			"SBML Level %d Version %d is not supported", level, version)
		return d
	}
	nd.SetDiagnosticConfig(opts.Config)
	nd.SetLogger(opts.Logger)
	r.doc, r.level, r.version = nd, level, version
	r.strict = opts.Validation == xmltree.ValidateFull

	for _, p := range schemaFor(level, version).Check(tree, opts.Validation) {
		r.doc.Log(sbml.Message{
			ID:       sbml.MsgSchemaViolation,
			Severity: sbml.SeverityError,
			Category: sbml.CategoryRead,
			Message:  p.Msg,
			Line:     p.Line,
			Column:   p.Column,
		})
	}

	r.Log(slog.LevelDebug, "reading document",
		slog.Int("level", level), slog.Int("version", version),
		slog.String("encoding", tree.Encoding))
	r.readBase(root, &nd.SBase)

	el := r.child(root, "model")
	if el == nil {
		r.report(sbml.MsgMissingAttribute, sbml.SeverityError, root, "document has no <model>")
		return nd
	}
	nd.SetModel(r.readModel(el))
	for _, c := range root.Elements() {
		if c.Local != "model" && c.Local != "notes" && c.Local != "annotation" {
			r.unknown(c)
		}
	}
	r.Log(slog.LevelDebug, "document read", slog.Int("messages", nd.NumMessages()))
	return nd
}

// levelAndVersion reads the level and version attributes of the root.
// A missing level is taken from the namespace, then defaults to 2; a
// missing version defaults to 1.
func (r *reader) levelAndVersion(root *xmltree.Element) (level, version int, ok bool) {
	level, version = sbml.DefaultLevel, sbml.DefaultVersion
	switch root.Space {
	case sbml.NamespaceL1:
		level = 1
	case sbml.NamespaceL2:
		level = 2
	}
	if v, set := root.Attr("level"); set {
		n, err := strconv.Atoi(v)
		if err != nil {
			r.report(sbml.MsgUnsupportedLevel, sbml.SeverityFatal, root, "invalid level %q", v)
			return 0, 0, false
		}
		level = n
	}
	if v, set := root.Attr("version"); set {
		n, err := strconv.Atoi(v)
		if err != nil {
			r.report(sbml.MsgUnsupportedLevel, sbml.SeverityFatal, root, "invalid version %q", v)
			return 0, 0, false
		}
		version = n
	}
	return level, version, true
}

func (r *reader) report(id sbml.MessageID, sev sbml.Severity, el *xmltree.Element, format string, args ...any) {
	r.doc.Log(sbml.Message{
		ID:       id,
		Severity: sev,
		Category: sbml.CategoryRead,
		Message:  fmt.Sprintf(format, args...),
		Line:     el.Line,
		Column:   el.Column,
	})
}

// unknown records an element the reader does not understand. Full
// schema validation has already reported it.
func (r *reader) unknown(el *xmltree.Element) {
	if r.strict {
		return
	}
	r.report(sbml.MsgUnknownElement, sbml.SeverityWarning, el,
		"ignoring unknown element <%s>", el.QName())
}

// child returns the first child of el with the given local name in the
// SBML namespace.
func (r *reader) child(el *xmltree.Element, local string) *xmltree.Element {
	for _, c := range el.Elements() {
		if c.Local == local && c.Space == el.Space {
			return c
		}
	}
	return nil
}

// items returns the children of the list element named list, reporting
// anything that is not one of names.
func (r *reader) items(el *xmltree.Element, list string, names ...string) []*xmltree.Element {
	l := r.child(el, list)
	if l == nil {
		return nil
	}
	var out []*xmltree.Element
	for _, c := range l.Elements() {
		switch {
		case c.Local == "notes" || c.Local == "annotation":
		case slices.Contains(names, c.Local):
			out = append(out, c)
		default:
			r.unknown(c)
		}
	}
	return out
}

// readBase fills the attributes every element shares.
func (r *reader) readBase(el *xmltree.Element, b *sbml.SBase) {
	b.SetPosition(el.Line, el.Column)
	if v, ok := el.Attr("metaid"); ok {
		b.SetMetaID(v)
	}
	if n := r.child(el, "notes"); n != nil {
		b.SetNotes(n.InnerXML())
	}
	if a := r.child(el, "annotation"); a != nil {
		b.SetAnnotation(a.InnerXML())
	}
	if r.TraceEnabled() {
		r.Trace("element", slog.String("name", el.Local), slog.Int("line", el.Line))
	}
}

// idSetter is implemented by every entity with an id/name pair.
type idSetter interface {
	SetID(string)
	SetName(string)
}

// readIdentity reads the identifier: name in Level 1, id and name in
// Level 2. A missing required identifier is reported.
func (r *reader) readIdentity(el *xmltree.Element, e idSetter, required bool) {
	if r.level == 1 {
		if v, ok := el.Attr("name"); ok {
			e.SetName(v)
		} else if required {
			r.missing(el, "name")
		}
		return
	}
	if v, ok := el.Attr("id"); ok {
		e.SetID(v)
	} else if required {
		r.missing(el, "id")
	}
	if v, ok := el.Attr("name"); ok {
		e.SetName(v)
	}
}

func (r *reader) missing(el *xmltree.Element, attr string) {
	r.report(sbml.MsgMissingAttribute, sbml.SeverityError, el,
		"<%s> is missing required attribute %s", el.QName(), attr)
}

func (r *reader) invalid(el *xmltree.Element, attr, value, want string) {
	r.report(sbml.MsgInvalidAttribute, sbml.SeverityError, el,
		"<%s> attribute %s=%q is not a valid %s", el.QName(), attr, value, want)
}

func (r *reader) strAttr(el *xmltree.Element, attr string, set func(string)) {
	if v, ok := el.Attr(attr); ok {
		set(v)
	}
}

func (r *reader) floatAttr(el *xmltree.Element, attr string, set func(float64)) {
	v, ok := el.Attr(attr)
	if !ok {
		return
	}
	f, err := parseFloat(v)
	if err != nil {
		r.invalid(el, attr, v, "number")
		return
	}
	set(f)
}

// parseFloat accepts the XML Schema double lexical forms, including INF,
// -INF and NaN.
func parseFloat(s string) (float64, error) {
	switch s {
	case "INF", "+INF":
		return strconv.ParseFloat("+Inf", 64)
	case "-INF":
		return strconv.ParseFloat("-Inf", 64)
	}
	return strconv.ParseFloat(s, 64)
}

func (r *reader) intAttr(el *xmltree.Element, attr string, set func(int)) {
	v, ok := el.Attr(attr)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.invalid(el, attr, v, "integer")
		return
	}
	set(n)
}

func (r *reader) boolAttr(el *xmltree.Element, attr string, set func(bool)) {
	v, ok := el.Attr(attr)
	if !ok {
		return
	}
	switch v {
	case "true", "1":
		set(true)
	case "false", "0":
		set(false)
	default:
		r.invalid(el, attr, v, "boolean")
	}
}

// formula parses a Level 1 formula attribute, reporting syntax errors.
func (r *reader) formula(el *xmltree.Element, attr string) *ast.Node {
	text, ok := el.Attr(attr)
	if !ok {
		r.missing(el, attr)
		return nil
	}
	n, err := formula.Parse(text, formula.WithLogger(r.L))
	if err != nil {
		r.report(sbml.MsgInvalidFormula, sbml.SeverityError, el,
			"<%s> formula %q: %v", el.QName(), text, err)
		return nil
	}
	return n
}

// math decodes the <math> child of el, or returns nil when there is
// none or it is malformed.
func (r *reader) math(el *xmltree.Element) *ast.Node {
	var m *xmltree.Element
	for _, c := range el.Elements() {
		if c.Local == "math" {
			m = c
			break
		}
	}
	if m == nil {
		return nil
	}
	n, err := mathml.DecodeElement(m)
	if err != nil {
		line, col := m.Line, m.Column
		var de *mathml.DecodeError
		msg := err.Error()
		if errors.As(err, &de) {
			line, col, msg = de.Line, de.Column, de.Msg
		}
		r.doc.Log(sbml.Message{
			ID:       sbml.MsgInvalidMath,
			Severity: sbml.SeverityError,
			Category: sbml.CategoryRead,
			Message:  fmt.Sprintf("<%s>: %s", el.QName(), msg),
			Line:     line,
			Column:   col,
		})
		return nil
	}
	return n
}

// expr reads the math of an element: the formula attribute in Level 1
// and the <math> child in Level 2.
func (r *reader) expr(el *xmltree.Element) *ast.Node {
	if r.level == 1 {
		return r.formula(el, "formula")
	}
	return r.math(el)
}
