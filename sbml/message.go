package sbml

import (
	"fmt"
	"slices"
	"strings"
)

// Message is an entry in a document's log.
type Message struct {
	ID       MessageID
	Severity Severity
	Category Category
	Message  string
	Line     int // 1-based line number, 0 if not applicable
	Column   int // 1-based column, 0 if not applicable
}

// String returns a human-readable representation of the message.
// Format: "[severity] line:col: message (code)" with location omitted
// when unknown.
func (m Message) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(m.Severity.String())
	b.WriteString("] ")
	if m.Line > 0 {
		fmt.Fprintf(&b, "%d", m.Line)
		if m.Column > 0 {
			fmt.Fprintf(&b, ":%d", m.Column)
		}
		b.WriteString(": ")
	}
	b.WriteString(m.Message)
	b.WriteString(" (")
	b.WriteString(m.ID.String())
	b.WriteByte(')')
	return b.String()
}

// DiagnosticConfig filters and re-grades messages before they are
// logged. Fatal messages are always logged.
type DiagnosticConfig struct {
	// Overrides change severity for specific message codes.
	Overrides map[string]Severity

	// Ignore lists message codes to suppress entirely.
	// Supports glob patterns (e.g., "l1-*").
	Ignore []string
}

// Apply returns the severity to log a message with, and false if the
// message should be dropped.
func (c DiagnosticConfig) Apply(id MessageID, sev Severity) (Severity, bool) {
	if sev == SeverityFatal {
		return sev, true
	}
	code := id.String()
	if slices.ContainsFunc(c.Ignore, func(pattern string) bool {
		return MatchGlob(pattern, code)
	}) {
		return sev, false
	}
	if override, ok := c.Overrides[code]; ok {
		sev = override
	}
	return sev, true
}

// MatchGlob performs simple glob matching with * wildcard.
func MatchGlob(pattern, s string) bool {
	if pattern == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(s, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(s, suffix)
	}
	return pattern == s
}
