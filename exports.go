package gosbml

import (
	"github.com/gosbml/gosbml/internal/xmltree"
	"github.com/gosbml/gosbml/sbml"
)

// Type aliases for the public API - the object model lives in the sbml
// subpackage.

// Document is the root of an SBML document.
type Document = sbml.Document

// Model is the content of a document.
type Model = sbml.Model

// Message is one entry of a document's message log.
type Message = sbml.Message

// MessageID identifies the kind of a message.
type MessageID = sbml.MessageID

// Severity of a message.
type Severity = sbml.Severity

// DiagnosticConfig filters and re-grades logged messages.
type DiagnosticConfig = sbml.DiagnosticConfig

// ValidationLevel selects the structural checks done while reading.
type ValidationLevel = xmltree.ValidationLevel

// Structural validation levels.
const (
	ValidateNone  = xmltree.ValidateNone
	ValidateBasic = xmltree.ValidateBasic
	ValidateFull  = xmltree.ValidateFull
)

// NewDocument returns an empty document at the default level and
// version.
func NewDocument() *Document { return sbml.NewDocument() }

// NewDocumentWithLevel returns an empty document at the given level and
// version, or sbml.ErrUnsupportedLevel.
func NewDocumentWithLevel(level, version int) (*Document, error) {
	return sbml.NewDocumentWithLevel(level, version)
}
