package sbml

import (
	"fmt"
	"log/slog"

	"github.com/gosbml/gosbml/ast"
	"github.com/gosbml/gosbml/internal/types"
)

// constraint is one named check run over a model.
type constraint struct {
	name  string
	check func(v *validator)
}

// validator runs a constraint set against the model of a document and
// logs what it finds.
type validator struct {
	doc    *Document
	m      *Model
	failed int

	// symbols maps every model-level identifier usable in math to the
	// element declaring it.
	symbols map[string]Element

	types.Logger
}

func newValidator(d *Document) *validator {
	v := &validator{
		doc:    d,
		m:      d.model,
		Logger: types.Logger{L: types.Component(d.logger.L, "validator")},
	}
	v.symbols = make(map[string]Element)
	add := func(e Element, id string) {
		if id == "" {
			return
		}
		if _, dup := v.symbols[id]; !dup {
			v.symbols[id] = e
		}
	}
	for _, c := range v.m.compartments.All() {
		add(c, c.Identifier())
	}
	for _, s := range v.m.species.All() {
		add(s, s.Identifier())
	}
	for _, p := range v.m.parameters.All() {
		add(p, p.Identifier())
	}
	for _, r := range v.m.reactions.All() {
		add(r, r.Identifier())
	}
	return v
}

func (v *validator) run(set []constraint) int {
	for _, c := range set {
		before := v.failed
		c.check(v)
		if v.TraceEnabled() {
			v.Trace("constraint checked",
				slog.String("constraint", c.name),
				slog.Int("failed", v.failed-before))
		}
	}
	v.Log(slog.LevelDebug, "validation complete", slog.Int("failed", v.failed))
	return v.failed
}

// report logs a validation message positioned at e. Errors and fatals
// that survive the diagnostic config count as failed checks.
func (v *validator) report(id MessageID, sev Severity, e Element, format string, args ...any) {
	m := Message{
		ID:       id,
		Severity: sev,
		Category: CategoryValidate,
		Message:  fmt.Sprintf(format, args...),
	}
	if e != nil {
		b := e.base()
		m.Line, m.Column = b.line, b.column
	}
	if sev, ok := v.doc.log(m); ok && sev <= SeverityError {
		v.failed++
	}
}

// unitDefined reports whether u names a unit definition of the model or
// a builtin unit.
func (v *validator) unitDefined(u string) bool {
	return IsBuiltinUnit(u) || v.m.UnitDefinitionByID(u) != nil
}

// checkUnitRef reports an undefined unit reference held by e.
func (v *validator) checkUnitRef(e Element, attr, u string, set bool) {
	if set && u != "" && !v.unitDefined(u) {
		v.report(MsgUndefinedUnit, SeverityError, e,
			"%s %s attribute references undefined unit %q", e.TypeCode(), attr, u)
	}
}

// checkMath reports symbols and function calls in n that do not
// resolve. local holds additional names in scope, such as kinetic law
// parameters.
func (v *validator) checkMath(e Element, what string, n *ast.Node, local func(string) bool) {
	if n == nil {
		return
	}
	for _, name := range n.Names() {
		if _, ok := v.symbols[name]; ok {
			continue
		}
		if local != nil && local(name) {
			continue
		}
		v.report(MsgUndefinedSymbol, SeverityError, e,
			"%s of %s references undefined symbol %q", what, describe(e), name)
	}
	for _, fn := range n.FunctionCalls() {
		if v.m.FunctionDefinitionByID(fn) == nil {
			v.report(MsgUndefinedFunction, SeverityError, e,
				"%s of %s calls undefined function %q", what, describe(e), fn)
		}
	}
}

// describe names an element for messages.
func describe(e Element) string {
	if id, ok := e.(identified); ok && id.Identifier() != "" {
		return fmt.Sprintf("%s %q", e.TypeCode(), id.Identifier())
	}
	return e.TypeCode().String()
}

// CheckConsistency validates the model and appends one message per
// problem to the log. It returns the number of failed checks, counting
// errors and fatals but not warnings. Calling it again appends again;
// use ClearValidationMessages to start over.
func (d *Document) CheckConsistency() int {
	if d.model == nil {
		return 0
	}
	return newValidator(d).run(consistencyConstraints)
}

// CheckL1Compatibility reports every construct of the model that Level 1
// cannot represent. It does not modify the model and returns the number
// of failed checks.
func (d *Document) CheckL1Compatibility() int {
	if d.model == nil {
		return 0
	}
	return newValidator(d).run(l1Constraints)
}
