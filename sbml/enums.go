package sbml

import "fmt"

// Severity is the severity of a logged message.
type Severity int

const (
	SeverityFatal   Severity = 0 // document unusable
	SeverityError   Severity = 1 // semantically invalid, tree intact
	SeverityWarning Severity = 2 // discouraged but legal
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// SeverityForName returns the severity named by s.
func SeverityForName(s string) (Severity, bool) {
	switch s {
	case "fatal":
		return SeverityFatal, true
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	}
	return 0, false
}

// Category records which phase produced a message.
type Category int

const (
	CategoryRead Category = iota
	CategoryValidate
	CategoryConvert
)

func (c Category) String() string {
	switch c {
	case CategoryRead:
		return "read"
	case CategoryValidate:
		return "validate"
	case CategoryConvert:
		return "convert"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// TypeCode identifies the concrete kind of an SBML element.
type TypeCode int

const (
	TypeUnknown TypeCode = iota
	TypeDocument
	TypeModel
	TypeListOf
	TypeFunctionDefinition
	TypeUnitDefinition
	TypeUnit
	TypeCompartment
	TypeSpecies
	TypeParameter
	TypeReaction
	TypeSpeciesReference
	TypeModifierSpeciesReference
	TypeKineticLaw
	TypeAlgebraicRule
	TypeAssignmentRule
	TypeRateRule
	TypeSpeciesConcentrationRule
	TypeCompartmentVolumeRule
	TypeParameterRule
	TypeEvent
	TypeEventAssignment
)

var typeCodeNames = [...]string{
	TypeUnknown:                  "Unknown",
	TypeDocument:                 "SBMLDocument",
	TypeModel:                    "Model",
	TypeListOf:                   "ListOf",
	TypeFunctionDefinition:       "FunctionDefinition",
	TypeUnitDefinition:           "UnitDefinition",
	TypeUnit:                     "Unit",
	TypeCompartment:              "Compartment",
	TypeSpecies:                  "Species",
	TypeParameter:                "Parameter",
	TypeReaction:                 "Reaction",
	TypeSpeciesReference:         "SpeciesReference",
	TypeModifierSpeciesReference: "ModifierSpeciesReference",
	TypeKineticLaw:               "KineticLaw",
	TypeAlgebraicRule:            "AlgebraicRule",
	TypeAssignmentRule:           "AssignmentRule",
	TypeRateRule:                 "RateRule",
	TypeSpeciesConcentrationRule: "SpeciesConcentrationRule",
	TypeCompartmentVolumeRule:    "CompartmentVolumeRule",
	TypeParameterRule:            "ParameterRule",
	TypeEvent:                    "Event",
	TypeEventAssignment:          "EventAssignment",
}

func (t TypeCode) String() string {
	if t >= 0 && int(t) < len(typeCodeNames) {
		return typeCodeNames[t]
	}
	return fmt.Sprintf("TypeCode(%d)", int(t))
}

// RuleKind is the Level 2 kind of a rule.
type RuleKind int

const (
	RuleAlgebraic RuleKind = iota
	RuleAssignment
	RuleRate
)

func (k RuleKind) String() string {
	switch k {
	case RuleAlgebraic:
		return "algebraic"
	case RuleAssignment:
		return "assignment"
	case RuleRate:
		return "rate"
	default:
		return fmt.Sprintf("RuleKind(%d)", k)
	}
}

// RuleType is the Level 1 type attribute of an assignment rule.
type RuleType int

const (
	RuleTypeScalar RuleType = iota
	RuleTypeRate
	RuleTypeInvalid
)

func (t RuleType) String() string {
	switch t {
	case RuleTypeScalar:
		return "scalar"
	case RuleTypeRate:
		return "rate"
	default:
		return "invalid"
	}
}

// RuleTypeForName returns the rule type for a Level 1 type attribute
// value, or RuleTypeInvalid.
func RuleTypeForName(s string) RuleType {
	switch s {
	case "scalar":
		return RuleTypeScalar
	case "rate":
		return RuleTypeRate
	}
	return RuleTypeInvalid
}
