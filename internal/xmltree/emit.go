package xmltree

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// DefaultIndent is the indentation used by Write when none is given.
const DefaultIndent = "  "

// textWriter is satisfied by both bytes.Buffer and strings.Builder.
type textWriter interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Write serializes doc as UTF-8 with an XML declaration. Elements whose
// content is only child elements are indented one level per depth;
// elements holding text are written on a single line with their
// content unchanged. Attributes are written in slice order.
func Write(w io.Writer, doc *Document, indent string) error {
	if indent == "" {
		indent = DefaultIndent
	}
	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	for _, c := range doc.Comments {
		b.WriteString("<!--")
		b.WriteString(c)
		b.WriteString("-->\n")
	}
	if doc.Root != nil {
		writeElement(&b, doc.Root, indent, 0)
		b.WriteByte('\n')
	}
	_, err := w.Write(b.Bytes())
	return err
}

func writeElement(b *bytes.Buffer, el *Element, indent string, depth int) {
	writeStartTag(b, el)
	if len(el.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	if hasText(el) {
		for _, c := range el.Children {
			writeInline(b, c)
		}
	} else {
		for _, c := range el.Children {
			b.WriteByte('\n')
			writeIndent(b, indent, depth+1)
			switch n := c.(type) {
			case *Element:
				writeElement(b, n, indent, depth+1)
			default:
				writeInline(b, n)
			}
		}
		b.WriteByte('\n')
		writeIndent(b, indent, depth)
	}
	b.WriteString("</")
	b.WriteString(el.QName())
	b.WriteByte('>')
}

// writeInline writes a node with no added whitespace.
func writeInline(b textWriter, n Node) {
	switch n := n.(type) {
	case CharData:
		_, _ = textEscaper.WriteString(b, string(n))
	case Raw:
		_, _ = b.WriteString(string(n))
	case Comment:
		_, _ = b.WriteString("<!--")
		_, _ = b.WriteString(string(n))
		_, _ = b.WriteString("-->")
	case *Element:
		writeStartTag(b, n)
		if len(n.Children) == 0 {
			_, _ = b.WriteString("/>")
			return
		}
		_ = b.WriteByte('>')
		for _, c := range n.Children {
			writeInline(b, c)
		}
		_, _ = b.WriteString("</")
		_, _ = b.WriteString(n.QName())
		_ = b.WriteByte('>')
	}
}

func writeStartTag(b textWriter, el *Element) {
	_ = b.WriteByte('<')
	_, _ = b.WriteString(el.QName())
	for _, a := range el.Attrs {
		_ = b.WriteByte(' ')
		_, _ = b.WriteString(a.QName())
		_, _ = b.WriteString(`="`)
		_ = xml.EscapeText(b, []byte(a.Value))
		_ = b.WriteByte('"')
	}
}

func writeIndent(b *bytes.Buffer, indent string, depth int) {
	for range depth {
		b.WriteString(indent)
	}
}

// hasText reports whether el holds text or raw markup, whose
// whitespace must not be changed.
func hasText(el *Element) bool {
	for _, c := range el.Children {
		switch c.(type) {
		case CharData, Raw:
			return true
		}
	}
	return false
}

// WriteElement serializes a single element tree without an XML
// declaration, followed by a newline.
func WriteElement(w io.Writer, el *Element, indent string) error {
	if indent == "" {
		indent = DefaultIndent
	}
	var b bytes.Buffer
	writeElement(&b, el, indent, 0)
	b.WriteByte('\n')
	_, err := w.Write(b.Bytes())
	return err
}
