package sbml

import "github.com/gosbml/gosbml/ast"

// Event is a discontinuous change applied when its trigger becomes true.
type Event struct {
	SBase
	named
	trigger     mathSlot
	delay       mathSlot
	timeUnits   optString
	assignments ListOf[*EventAssignment]
}

// NewEvent returns an event with the given id and trigger.
func NewEvent(id string, trigger *ast.Node) *Event {
	e := &Event{}
	if id != "" {
		e.SetID(id)
	}
	e.SetTrigger(trigger)
	return e
}

// TypeCode returns TypeEvent.
func (e *Event) TypeCode() TypeCode { return TypeEvent }

// Trigger returns the boolean trigger expression, or nil.
func (e *Event) Trigger() *ast.Node { return e.trigger.n }

// SetTrigger takes ownership of n as the trigger.
func (e *Event) SetTrigger(n *ast.Node) { e.trigger.set(n) }

// IsSetTrigger reports whether a trigger is set.
func (e *Event) IsSetTrigger() bool { return e.trigger.n != nil }

// Delay returns the delay expression, or nil.
func (e *Event) Delay() *ast.Node { return e.delay.n }

// SetDelay takes ownership of n as the delay. Nil removes it.
func (e *Event) SetDelay(n *ast.Node) { e.delay.set(n) }

// IsSetDelay reports whether a delay is set.
func (e *Event) IsSetDelay() bool { return e.delay.n != nil }

// TimeUnits returns the time units of the delay.
func (e *Event) TimeUnits() string { return e.timeUnits.v }

// SetTimeUnits sets the time units of the delay.
func (e *Event) SetTimeUnits(u string) { e.timeUnits.setTo(u) }

// IsSetTimeUnits reports whether time units are set.
func (e *Event) IsSetTimeUnits() bool { return e.timeUnits.set }

// Assignments returns the event assignment list.
func (e *Event) Assignments() *ListOf[*EventAssignment] { return &e.assignments }

// Assignment returns the i-th event assignment, or nil.
func (e *Event) Assignment(i int) *EventAssignment { return e.assignments.Get(i) }

// AddAssignment appends ea and returns its index.
func (e *Event) AddAssignment(ea *EventAssignment) int { return e.assignments.Append(ea) }

// EventAssignment sets a variable when its event fires.
type EventAssignment struct {
	SBase
	variable string
	math     mathSlot
}

// NewEventAssignment returns an assignment of n to variable.
func NewEventAssignment(variable string, n *ast.Node) *EventAssignment {
	ea := &EventAssignment{variable: variable}
	ea.SetMath(n)
	return ea
}

// TypeCode returns TypeEventAssignment.
func (ea *EventAssignment) TypeCode() TypeCode { return TypeEventAssignment }

// Variable returns the assigned symbol.
func (ea *EventAssignment) Variable() string { return ea.variable }

// SetVariable sets the assigned symbol.
func (ea *EventAssignment) SetVariable(id string) { ea.variable = id }

// Math returns the assigned expression, or nil.
func (ea *EventAssignment) Math() *ast.Node { return ea.math.n }

// SetMath takes ownership of n as the assigned expression.
func (ea *EventAssignment) SetMath(n *ast.Node) { ea.math.set(n) }

// IsSetMath reports whether an expression is set.
func (ea *EventAssignment) IsSetMath() bool { return ea.math.n != nil }
