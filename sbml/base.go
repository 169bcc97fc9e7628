package sbml

import (
	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/formula"
)

// SBase holds the attributes shared by every SBML element.
type SBase struct {
	metaID     string
	notes      string
	annotation string
	line       int
	column     int

	// owner is the list currently holding the element, if any.
	owner listOwner
}

// MetaID returns the metaid attribute.
func (b *SBase) MetaID() string { return b.metaID }

// SetMetaID sets the metaid attribute. An empty value unsets it.
func (b *SBase) SetMetaID(id string) { b.metaID = id }

// IsSetMetaID reports whether the metaid attribute is set.
func (b *SBase) IsSetMetaID() bool { return b.metaID != "" }

// Notes returns the XHTML content of the notes element.
func (b *SBase) Notes() string { return b.notes }

// SetNotes sets the notes content. An empty value unsets it.
func (b *SBase) SetNotes(xhtml string) { b.notes = xhtml }

// IsSetNotes reports whether notes are present.
func (b *SBase) IsSetNotes() bool { return b.notes != "" }

// Annotation returns the XML content of the annotation element.
func (b *SBase) Annotation() string { return b.annotation }

// SetAnnotation sets the annotation content. An empty value unsets it.
func (b *SBase) SetAnnotation(xml string) { b.annotation = xml }

// IsSetAnnotation reports whether an annotation is present.
func (b *SBase) IsSetAnnotation() bool { return b.annotation != "" }

// Line returns the source line of the element, or 0 if not read from a
// file.
func (b *SBase) Line() int { return b.line }

// Column returns the source column of the element, or 0.
func (b *SBase) Column() int { return b.column }

// SetPosition records the source position of the element.
func (b *SBase) SetPosition(line, column int) {
	b.line = line
	b.column = column
}

func (b *SBase) base() *SBase { return b }

// Element is implemented by every SBML element.
type Element interface {
	TypeCode() TypeCode
	base() *SBase
}

// named holds the Level 1 name / Level 2 id pair.
type named struct {
	id      string
	idSet   bool
	name    string
	nameSet bool
}

// ID returns the id attribute.
func (n *named) ID() string { return n.id }

// SetID sets the id attribute.
func (n *named) SetID(id string) { n.id, n.idSet = id, true }

// IsSetID reports whether the id attribute is set.
func (n *named) IsSetID() bool { return n.idSet }

// UnsetID clears the id attribute.
func (n *named) UnsetID() { n.id, n.idSet = "", false }

// Name returns the name attribute.
func (n *named) Name() string { return n.name }

// SetName sets the name attribute.
func (n *named) SetName(name string) { n.name, n.nameSet = name, true }

// IsSetName reports whether the name attribute is set.
func (n *named) IsSetName() bool { return n.nameSet }

// UnsetName clears the name attribute.
func (n *named) UnsetName() { n.name, n.nameSet = "", false }

// MoveIDToName moves the id into the name when the name is unset. It is
// a no-op when the name is already set or there is no id.
func (n *named) MoveIDToName() {
	if n.nameSet || !n.idSet {
		return
	}
	n.SetName(n.id)
	n.UnsetID()
}

// MoveNameToID moves the name into the id when the id is unset. It is a
// no-op when the id is already set or there is no name.
func (n *named) MoveNameToID() {
	if n.idSet || !n.nameSet {
		return
	}
	n.SetID(n.name)
	n.UnsetName()
}

// Identifier returns the id when set, else the name. This is the key
// used for lookups and references in both levels.
func (n *named) Identifier() string {
	if n.idSet {
		return n.id
	}
	return n.name
}

// optFloat is a float attribute with an explicit set flag.
type optFloat struct {
	v   float64
	set bool
}

func (o *optFloat) setTo(v float64) { o.v, o.set = v, true }
func (o *optFloat) unset()          { o.v, o.set = 0, false }

// optString is a reference attribute with an explicit set flag.
type optString struct {
	v   string
	set bool
}

func (o *optString) setTo(v string) { o.v, o.set = v, true }
func (o *optString) unset()         { o.v, o.set = "", false }

// optInt is an integer attribute with an explicit set flag.
type optInt struct {
	v   int
	set bool
}

func (o *optInt) setTo(v int) { o.v, o.set = v, true }
func (o *optInt) unset()      { o.v, o.set = 0, false }
func (o optInt) or(d int) int {
	if o.set {
		return o.v
	}
	return d
}

// optBool is a boolean attribute with an explicit set flag.
type optBool struct {
	v   bool
	set bool
}

func (o *optBool) setTo(v bool) { o.v, o.set = v, true }
func (o *optBool) unset()       { o.v, o.set = false, false }
func (o optBool) or(d bool) bool {
	if o.set {
		return o.v
	}
	return d
}

func (o optFloat) or(d float64) float64 {
	if o.set {
		return o.v
	}
	return d
}

// mathSlot is a field that exclusively owns a math tree.
type mathSlot struct {
	n *ast.Node
}

// ReleaseMath forgets n when it is moved elsewhere.
func (s *mathSlot) ReleaseMath(n *ast.Node) {
	if s.n == n {
		s.n = nil
	}
}

// set takes ownership of n, detaching it from its previous owner. A nil
// n clears the slot. The previous tree is left detached.
func (s *mathSlot) set(n *ast.Node) {
	if s.n == n {
		return
	}
	if old := s.n; old != nil {
		s.n = nil
		old.Detach()
	}
	if n != nil {
		n.MoveTo(s)
		s.n = n
	}
}

// formula renders the slot as formula text, or "" when unset or not
// representable.
func (s *mathSlot) formula() string {
	if s.n == nil {
		return ""
	}
	text, err := formula.Format(s.n)
	if err != nil {
		return ""
	}
	return text
}

// setFormula parses text into the slot. On error the slot is unchanged.
func (s *mathSlot) setFormula(text string) error {
	n, err := formula.Parse(text)
	if err != nil {
		return err
	}
	s.set(n)
	return nil
}
