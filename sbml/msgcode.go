package sbml

import "fmt"

// MessageID identifies the kind of a logged message. Each ID has a stable
// kebab-case code used in output and in DiagnosticConfig.
type MessageID int

// Read-time message IDs.
const (
	MsgUnknown MessageID = iota
	MsgFileNotFound
	MsgNotSBML
	MsgSchemaViolation
	MsgUnsupportedLevel
	MsgUnknownElement
	MsgInvalidAttribute
	MsgMissingAttribute
	MsgInvalidMath
	MsgInvalidFormula
)

// Consistency message IDs.
const (
	MsgDuplicateID MessageID = iota + 100
	MsgUndefinedCompartment
	MsgUndefinedSpecies
	MsgUndefinedSymbol
	MsgUndefinedFunction
	MsgUndefinedUnit
	MsgInvalidUnitKind
	MsgUndefinedRuleVariable
	MsgMultipleRules
	MsgConstantRuleTarget
	MsgAssignmentCycle
	MsgRecursiveFunction
	MsgFunctionNotLambda
	MsgMissingTrigger
	MsgMissingMath
	MsgEmptyReaction
	MsgMissingInitialValue
)

// Level 1 compatibility message IDs.
const (
	MsgL1Events MessageID = iota + 200
	MsgL1FunctionDefinitions
	MsgL1SpatialDimensions
	MsgL1InitialConcentration
	MsgL1HasOnlySubstanceUnits
	MsgL1SpatialSizeUnits
	MsgL1UnitAttributes
	MsgL1StoichiometryMath
	MsgL1Modifiers
	MsgL1MathConstruct
	MsgL1RateRule
	MsgL1MissingName
	MsgL1MissingInitialAmount
)

// Conversion message IDs.
const (
	MsgLabelLost MessageID = iota + 300
)

var messageCodes = map[MessageID]string{
	MsgUnknown:          "unknown",
	MsgFileNotFound:     "file-not-found",
	MsgNotSBML:          "not-sbml",
	MsgSchemaViolation:  "schema-violation",
	MsgUnsupportedLevel: "unsupported-level",
	MsgUnknownElement:   "unknown-element",
	MsgInvalidAttribute: "invalid-attribute-value",
	MsgMissingAttribute: "missing-attribute",
	MsgInvalidMath:      "invalid-mathml",
	MsgInvalidFormula:   "invalid-formula",

	MsgDuplicateID:           "duplicate-id",
	MsgUndefinedCompartment:  "undefined-compartment",
	MsgUndefinedSpecies:      "undefined-species",
	MsgUndefinedSymbol:       "undefined-symbol",
	MsgUndefinedFunction:     "undefined-function",
	MsgUndefinedUnit:         "undefined-unit",
	MsgInvalidUnitKind:       "invalid-unit-kind",
	MsgUndefinedRuleVariable: "undefined-rule-variable",
	MsgMultipleRules:         "multiple-rules-for-variable",
	MsgConstantRuleTarget:    "rule-assigns-constant",
	MsgAssignmentCycle:       "assignment-rule-cycle",
	MsgRecursiveFunction:     "recursive-function",
	MsgFunctionNotLambda:     "function-not-lambda",
	MsgMissingTrigger:        "event-missing-trigger",
	MsgMissingMath:           "missing-math",
	MsgEmptyReaction:         "reaction-without-species",
	MsgMissingInitialValue:   "species-missing-initial-value",

	MsgL1Events:                "l1-events",
	MsgL1FunctionDefinitions:   "l1-function-definitions",
	MsgL1SpatialDimensions:     "l1-spatial-dimensions",
	MsgL1InitialConcentration:  "l1-initial-concentration",
	MsgL1HasOnlySubstanceUnits: "l1-has-only-substance-units",
	MsgL1SpatialSizeUnits:      "l1-spatial-size-units",
	MsgL1UnitAttributes:        "l1-unit-offset-multiplier",
	MsgL1StoichiometryMath:     "l1-stoichiometry-math",
	MsgL1Modifiers:             "l1-modifiers",
	MsgL1MathConstruct:         "l1-math-construct",
	MsgL1RateRule:              "l1-rate-rule-target",
	MsgL1MissingName:           "l1-missing-name",
	MsgL1MissingInitialAmount:  "l1-missing-initial-amount",

	MsgLabelLost: "label-lost",
}

var messageIDsByCode = func() map[string]MessageID {
	m := make(map[string]MessageID, len(messageCodes))
	for id, code := range messageCodes {
		m[code] = id
	}
	return m
}()

// String returns the stable code of the message ID.
func (id MessageID) String() string {
	if code, ok := messageCodes[id]; ok {
		return code
	}
	return fmt.Sprintf("MessageID(%d)", int(id))
}

// MessageIDForCode returns the message ID with the given code.
func MessageIDForCode(code string) (MessageID, bool) {
	id, ok := messageIDsByCode[code]
	return id, ok
}

// MessageCodeInfo describes a message code and the phase that emits it.
type MessageCodeInfo struct {
	ID    MessageID
	Code  string
	Phase Category
}

// AllMessageCodes returns every known message code in ID order.
func AllMessageCodes() []MessageCodeInfo {
	var out []MessageCodeInfo
	groups := []struct {
		first, last MessageID
		phase       Category
	}{
		{MsgUnknown, MsgInvalidFormula, CategoryRead},
		{MsgDuplicateID, MsgMissingInitialValue, CategoryValidate},
		{MsgL1Events, MsgL1MissingInitialAmount, CategoryValidate},
		{MsgLabelLost, MsgLabelLost, CategoryConvert},
	}
	for _, g := range groups {
		for id := g.first; id <= g.last; id++ {
			out = append(out, MessageCodeInfo{ID: id, Code: id.String(), Phase: g.phase})
		}
	}
	return out
}
