// Package writer serializes an SBML document as XML.
//
// Math is written as formula attributes in Level 1 and as MathML in
// Level 2. Attributes are written in a fixed order, optional
// attributes only when set, and empty lists are omitted. Notes and
// annotations are written back exactly as they were read.
package writer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/formula"
	"github.com/gosbml/gosbml/internal/types"
	"github.com/gosbml/gosbml/internal/xmltree"
	"github.com/gosbml/gosbml/mathml"
	"github.com/gosbml/gosbml/sbml"
)

// ErrNilDocument is returned when asked to write a nil document.
var ErrNilDocument = errors.New("writer: nil document")

// Options configures a write.
type Options struct {
	// Program and ProgramVersion, when Program is set, are recorded in a
	// comment before the root element.
	Program        string
	ProgramVersion string

	// Indent is the indentation unit. Empty uses two spaces.
	Indent string

	Logger *slog.Logger
}

// Write serializes d to w. It fails only when w fails or when a math
// tree cannot be expressed at the document's level.
func Write(w io.Writer, d *sbml.Document, opts Options) error {
	if d == nil {
		return ErrNilDocument
	}
	wr := &writer{
		level:   d.Level(),
		version: d.Version(),
		model:   d.Model(),
		Logger:  types.Logger{L: types.Component(opts.Logger, "writer")},
	}
	root := wr.document(d)
	if wr.err != nil {
		return wr.err
	}

	tree := &xmltree.Document{Root: root}
	if opts.Program != "" {
		tree.Comments = []string{fmt.Sprintf(" Created by %s version %s ", opts.Program, opts.ProgramVersion)}
	}
	wr.Log(slog.LevelDebug, "writing document",
		slog.Int("level", wr.level), slog.Int("version", wr.version))
	return xmltree.Write(w, tree, opts.Indent)
}

// writer holds the state of one write. The first math error aborts
// the write.
type writer struct {
	level   int
	version int
	model   *sbml.Model
	err     error

	types.Logger
}

func (w *writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *writer) document(d *sbml.Document) *xmltree.Element {
	root := xmltree.NewElement("sbml")
	root.SetAttr("xmlns", d.Namespace())
	root.SetAttr("level", strconv.Itoa(w.level))
	root.SetAttr("version", strconv.Itoa(w.version))
	w.base(root, d)
	if w.model != nil {
		root.Append(w.modelElement(w.model))
	}
	return root
}

// annotated is satisfied by every SBML element through SBase.
type annotated interface {
	MetaID() string
	IsSetMetaID() bool
	Notes() string
	IsSetNotes() bool
	Annotation() string
	IsSetAnnotation() bool
}

// identified is satisfied by every element with an id/name pair.
type identified interface {
	ID() string
	IsSetID() bool
	Name() string
	IsSetName() bool
	Identifier() string
}

// base writes metaid, notes and annotation. metaid is a Level 2
// attribute. Call it before any other child is appended.
func (w *writer) base(el *xmltree.Element, e annotated) {
	if w.level == 2 && e.IsSetMetaID() {
		el.SetAttr("metaid", e.MetaID())
	}
	if e.IsSetNotes() {
		el.AddElement("notes").Append(xmltree.Raw(e.Notes()))
	}
	if e.IsSetAnnotation() {
		el.AddElement("annotation").Append(xmltree.Raw(e.Annotation()))
	}
}

// identity writes name in Level 1 and id and name in Level 2.
func (w *writer) identity(el *xmltree.Element, e identified) {
	if w.level == 1 {
		if v := e.Identifier(); v != "" {
			el.SetAttr("name", v)
		}
		return
	}
	if e.IsSetID() {
		el.SetAttr("id", e.ID())
	}
	if e.IsSetName() {
		el.SetAttr("name", e.Name())
	}
}

// element creates an element carrying identity and base content.
func (w *writer) element(local string, e annotated) *xmltree.Element {
	el := xmltree.NewElement(local)
	if id, ok := e.(identified); ok {
		w.identity(el, id)
	}
	w.base(el, e)
	return el
}

// speciesWord returns the Level 1 Version 1 spelling of names that
// contain "species".
func (w *writer) speciesWord(name, l1v1 string) string {
	if w.level == 1 && w.version == 1 {
		return l1v1
	}
	return name
}

func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func boolAttr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func list[T any](parent *xmltree.Element, local string, items []T, each func(T) *xmltree.Element) {
	if len(items) == 0 {
		return
	}
	l := parent.AddElement(local)
	for _, it := range items {
		l.Append(each(it))
	}
}

// formulaAttr writes n as a Level 1 formula attribute.
func (w *writer) formulaAttr(el *xmltree.Element, n *ast.Node) {
	if n == nil {
		return
	}
	text, err := formula.Format(n)
	if err != nil {
		w.fail(fmt.Errorf("<%s>: %w", el.Local, err))
		return
	}
	el.SetAttr("formula", text)
}

// mathChild appends n as a MathML <math> child.
func (w *writer) mathChild(el *xmltree.Element, n *ast.Node) {
	if n == nil {
		return
	}
	m, err := mathml.EncodeElement(n)
	if err != nil {
		w.fail(fmt.Errorf("<%s>: %w", el.Local, err))
		return
	}
	el.Append(m)
}
