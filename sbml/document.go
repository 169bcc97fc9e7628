package sbml

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gosbml/gosbml/internal/types"
)

// Default level and version of new documents and of documents whose
// root element does not say.
const (
	DefaultLevel   = 2
	DefaultVersion = 1
)

var (
	// ErrUnsupportedLevel is returned for a level/version combination
	// other than 1.1, 1.2 and 2.1.
	ErrUnsupportedLevel = errors.New("sbml: unsupported level/version")

	// ErrIncompatible is returned when a model uses constructs the
	// target level cannot represent.
	ErrIncompatible = errors.New("sbml: model incompatible with target level")
)

// IsSupported reports whether level and version name a supported SBML
// level and version combination.
func IsSupported(level, version int) bool {
	switch level {
	case 1:
		return version == 1 || version == 2
	case 2:
		return version == 1
	}
	return false
}

// Document is the root of an SBML document: the level and version, the
// model and the log of messages produced while reading and validating.
type Document struct {
	SBase
	level    int
	version  int
	model    *Model
	messages []Message
	config   DiagnosticConfig
	logger   types.Logger
}

// NewDocument returns an empty Level 2 Version 1 document.
func NewDocument() *Document {
	return &Document{level: DefaultLevel, version: DefaultVersion}
}

// NewDocumentWithLevel returns an empty document of the given level and
// version.
func NewDocumentWithLevel(level, version int) (*Document, error) {
	if !IsSupported(level, version) {
		return nil, fmt.Errorf("%w: %d.%d", ErrUnsupportedLevel, level, version)
	}
	return &Document{level: level, version: version}, nil
}

// TypeCode returns TypeDocument.
func (d *Document) TypeCode() TypeCode { return TypeDocument }

// Level returns the SBML level.
func (d *Document) Level() int { return d.level }

// Version returns the version within the level.
func (d *Document) Version() int { return d.version }

// Namespace returns the XML namespace of the document level.
func (d *Document) Namespace() string { return NamespaceFor(d.level) }

// Model returns the model, or nil.
func (d *Document) Model() *Model { return d.model }

// SetModel makes m the model of the document, taking it from any other
// document. Nil removes the model.
func (d *Document) SetModel(m *Model) {
	if d.model == m {
		return
	}
	if d.model != nil {
		d.model.doc = nil
	}
	if m != nil {
		if prev := m.doc; prev != nil {
			prev.model = nil
		}
		m.doc = d
	}
	d.model = m
}

// CreateModel sets and returns a new empty model.
func (d *Document) CreateModel(id string) *Model {
	m := NewModel(id)
	d.SetModel(m)
	return m
}

// SetLogger sets the logger used by validation and conversion. Nil
// disables logging.
func (d *Document) SetLogger(logger *slog.Logger) {
	d.logger = types.Logger{L: logger}
}

// DiagnosticConfig returns the filter applied to logged messages.
func (d *Document) DiagnosticConfig() DiagnosticConfig { return d.config }

// SetDiagnosticConfig sets the filter applied to messages logged after
// the call.
func (d *Document) SetDiagnosticConfig(c DiagnosticConfig) { d.config = c }

// Log appends m to the message log after applying the diagnostic
// config. It reports whether the message was kept.
func (d *Document) Log(m Message) bool {
	_, ok := d.log(m)
	return ok
}

// log appends m and returns the severity it was logged with.
func (d *Document) log(m Message) (Severity, bool) {
	sev, ok := d.config.Apply(m.ID, m.Severity)
	if !ok {
		return sev, false
	}
	m.Severity = sev
	d.messages = append(d.messages, m)
	d.logger.Log(slog.LevelDebug, "message logged",
		slog.String("code", m.ID.String()),
		slog.String("severity", m.Severity.String()),
		slog.Int("line", m.Line),
		slog.String("msg", m.Message))
	return sev, true
}

// Logf appends a message without a source position.
func (d *Document) Logf(id MessageID, sev Severity, cat Category, format string, args ...any) bool {
	return d.Log(Message{ID: id, Severity: sev, Category: cat, Message: fmt.Sprintf(format, args...)})
}

// Messages returns a copy of the message log in logging order.
func (d *Document) Messages() []Message { return slices.Clone(d.messages) }

// NumMessages returns the number of logged messages.
func (d *Document) NumMessages() int { return len(d.messages) }

// ClearValidationMessages removes the messages produced by validation
// and conversion, keeping those produced while reading.
func (d *Document) ClearValidationMessages() {
	d.messages = slices.DeleteFunc(d.messages, func(m Message) bool {
		return m.Category != CategoryRead
	})
}

func (d *Document) nth(sev Severity, i int) (Message, bool) {
	if i < 0 {
		return Message{}, false
	}
	for _, m := range d.messages {
		if m.Severity != sev {
			continue
		}
		if i == 0 {
			return m, true
		}
		i--
	}
	return Message{}, false
}

func (d *Document) count(sev Severity) int {
	n := 0
	for _, m := range d.messages {
		if m.Severity == sev {
			n++
		}
	}
	return n
}

// Fatal returns the i-th fatal message. The second result is false when
// i is out of range.
func (d *Document) Fatal(i int) (Message, bool) { return d.nth(SeverityFatal, i) }

// Error returns the i-th error message.
func (d *Document) Error(i int) (Message, bool) { return d.nth(SeverityError, i) }

// Warning returns the i-th warning message.
func (d *Document) Warning(i int) (Message, bool) { return d.nth(SeverityWarning, i) }

func (d *Document) NumFatals() int   { return d.count(SeverityFatal) }
func (d *Document) NumErrors() int   { return d.count(SeverityError) }
func (d *Document) NumWarnings() int { return d.count(SeverityWarning) }

// Namespaces of the supported levels.
const (
	NamespaceL1 = "http://www.sbml.org/sbml/level1"
	NamespaceL2 = "http://www.sbml.org/sbml/level2"
)

// NamespaceFor returns the XML namespace of level, or "" when unknown.
func NamespaceFor(level int) string {
	switch level {
	case 1:
		return NamespaceL1
	case 2:
		return NamespaceL2
	}
	return ""
}
