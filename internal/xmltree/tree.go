// Package xmltree provides the XML document tree consumed by the SBML
// reader and produced by the writer.
//
// Unlike encoding/xml's Token, the tree keeps namespace prefixes as
// written so notes and annotations can be re-emitted unchanged, while
// still recording the resolved namespace URI of every element and
// attribute. Each element records the line and column of its start tag.
package xmltree

import "strings"

// Namespace URIs bound implicitly.
const (
	NamespaceXML   = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS = "http://www.w3.org/2000/xmlns/"
)

// Node is an element, character data, a comment or raw markup.
type Node interface {
	isNode()
}

// CharData is text content with entities already expanded.
type CharData string

// Comment is the text of an XML comment.
type Comment string

// Raw is serialized XML written out verbatim. The parser never
// produces it.
type Raw string

func (CharData) isNode() {}
func (Comment) isNode()  {}
func (Raw) isNode()      {}
func (*Element) isNode() {}

// Attr is an attribute as written, with its prefix resolved.
type Attr struct {
	Prefix string
	Local  string
	Space  string // resolved namespace; empty for unprefixed attributes
	Value  string
}

// QName returns the attribute name as written.
func (a Attr) QName() string {
	if a.Prefix == "" {
		return a.Local
	}
	return a.Prefix + ":" + a.Local
}

// IsNamespaceDecl reports whether the attribute declares a namespace.
func (a Attr) IsNamespaceDecl() bool {
	return a.Prefix == "xmlns" || (a.Prefix == "" && a.Local == "xmlns")
}

// Element is an XML element.
type Element struct {
	Prefix   string
	Local    string
	Space    string // resolved namespace URI
	Attrs    []Attr
	Children []Node
	Parent   *Element

	Line   int
	Column int
}

// NewElement returns a detached, unprefixed element.
func NewElement(local string) *Element {
	return &Element{Local: local}
}

// QName returns the element name as written.
func (e *Element) QName() string {
	if e.Prefix == "" {
		return e.Local
	}
	return e.Prefix + ":" + e.Local
}

// Attr returns the value of the unprefixed attribute local.
func (e *Element) Attr(local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Prefix == "" && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrNS returns the value of the attribute local in namespace space.
func (e *Element) AttrNS(space, local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Space == space && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets an unprefixed attribute, replacing any existing value.
// New attributes are appended, so emission order is insertion order.
func (e *Element) SetAttr(local, value string) {
	for i, a := range e.Attrs {
		if a.Prefix == "" && a.Local == local {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Local: local, Value: value})
}

// Elements returns the child elements in document order.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Child returns the first child element named local, or nil.
func (e *Element) Child(local string) *Element {
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.Local == local {
			return el
		}
	}
	return nil
}

// Text returns the concatenated character data of the direct children.
func (e *Element) Text() string {
	var b strings.Builder
	for _, c := range e.Children {
		if t, ok := c.(CharData); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// Append adds children, setting the parent of element children.
func (e *Element) Append(nodes ...Node) {
	for _, n := range nodes {
		if el, ok := n.(*Element); ok {
			el.Parent = e
		}
		e.Children = append(e.Children, n)
	}
}

// AddElement appends and returns a new child element named local.
func (e *Element) AddElement(local string) *Element {
	c := NewElement(local)
	e.Append(c)
	return c
}

// AddText appends character data.
func (e *Element) AddText(text string) {
	e.Append(CharData(text))
}

// InnerXML serializes the children of e. Prefixes and namespace
// declarations are emitted as they were parsed.
func (e *Element) InnerXML() string {
	var b strings.Builder
	for _, c := range e.Children {
		writeInline(&b, c)
	}
	return b.String()
}

// LookupPrefix returns the namespace bound to prefix in the scope of e.
func (e *Element) LookupPrefix(prefix string) (string, bool) {
	switch prefix {
	case "xml":
		return NamespaceXML, true
	case "xmlns":
		return NamespaceXMLNS, true
	}
	for el := e; el != nil; el = el.Parent {
		for _, a := range el.Attrs {
			if prefix == "" && a.Prefix == "" && a.Local == "xmlns" {
				return a.Value, true
			}
			if prefix != "" && a.Prefix == "xmlns" && a.Local == prefix {
				return a.Value, true
			}
		}
	}
	return "", prefix == ""
}

// Document is a parsed XML document.
type Document struct {
	// Encoding is the encoding named by the XML declaration, if any.
	Encoding string

	// Comments are the comments that precede the root element.
	Comments []string

	Root *Element
}
