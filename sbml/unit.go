package sbml

import (
	"fmt"

	"golang.org/x/text/cases"
)

// UnitKind is a base unit that a Unit scales.
type UnitKind int

const (
	UnitAmpere UnitKind = iota
	UnitBecquerel
	UnitCandela
	UnitCelsius
	UnitCoulomb
	UnitDimensionless
	UnitFarad
	UnitGram
	UnitGray
	UnitHenry
	UnitHertz
	UnitItem
	UnitJoule
	UnitKatal
	UnitKelvin
	UnitKilogram
	UnitLiter
	UnitLitre
	UnitLumen
	UnitLux
	UnitMeter
	UnitMetre
	UnitMole
	UnitNewton
	UnitOhm
	UnitPascal
	UnitRadian
	UnitSecond
	UnitSiemens
	UnitSievert
	UnitSteradian
	UnitTesla
	UnitVolt
	UnitWatt
	UnitWeber
	UnitInvalid
)

var unitKindNames = [...]string{
	UnitAmpere:        "ampere",
	UnitBecquerel:     "becquerel",
	UnitCandela:       "candela",
	UnitCelsius:       "Celsius",
	UnitCoulomb:       "coulomb",
	UnitDimensionless: "dimensionless",
	UnitFarad:         "farad",
	UnitGram:          "gram",
	UnitGray:          "gray",
	UnitHenry:         "henry",
	UnitHertz:         "hertz",
	UnitItem:          "item",
	UnitJoule:         "joule",
	UnitKatal:         "katal",
	UnitKelvin:        "kelvin",
	UnitKilogram:      "kilogram",
	UnitLiter:         "liter",
	UnitLitre:         "litre",
	UnitLumen:         "lumen",
	UnitLux:           "lux",
	UnitMeter:         "meter",
	UnitMetre:         "metre",
	UnitMole:          "mole",
	UnitNewton:        "newton",
	UnitOhm:           "ohm",
	UnitPascal:        "pascal",
	UnitRadian:        "radian",
	UnitSecond:        "second",
	UnitSiemens:       "siemens",
	UnitSievert:       "sievert",
	UnitSteradian:     "steradian",
	UnitTesla:         "tesla",
	UnitVolt:          "volt",
	UnitWatt:          "watt",
	UnitWeber:         "weber",
	UnitInvalid:       "(Invalid UnitKind)",
}

var unitFolder = cases.Fold()

// unitKindsByFold maps case-folded names to kinds.
var unitKindsByFold = func() map[string]UnitKind {
	m := make(map[string]UnitKind, len(unitKindNames))
	for k := UnitAmpere; k < UnitInvalid; k++ {
		m[unitFolder.String(unitKindNames[k])] = k
	}
	return m
}()

func (k UnitKind) String() string {
	if k >= 0 && int(k) < len(unitKindNames) {
		return unitKindNames[k]
	}
	return fmt.Sprintf("UnitKind(%d)", int(k))
}

// UnitKindForName returns the kind named s, ignoring case, or
// UnitInvalid.
func UnitKindForName(s string) UnitKind {
	if k, ok := unitKindsByFold[unitFolder.String(s)]; ok {
		return k
	}
	return UnitInvalid
}

// IsValid reports whether k is a real unit kind.
func (k UnitKind) IsValid() bool {
	return k >= UnitAmpere && k < UnitInvalid
}

// Equal reports whether k and other denote the same unit. It differs
// from == only in treating liter and litre, and meter and metre, as
// equal.
func (k UnitKind) Equal(other UnitKind) bool {
	return k.canonical() == other.canonical()
}

func (k UnitKind) canonical() UnitKind {
	switch k {
	case UnitLitre:
		return UnitLiter
	case UnitMetre:
		return UnitMeter
	}
	return k
}

// builtinUnits are the predefined unit identifiers of Level 2.
var builtinUnits = map[string]bool{
	"substance": true,
	"volume":    true,
	"area":      true,
	"length":    true,
	"time":      true,
}

// IsBuiltinUnit reports whether name is a predefined unit identifier or
// a base unit kind name.
func IsBuiltinUnit(name string) bool {
	if builtinUnits[name] {
		return true
	}
	// Unit references are case-sensitive; only exact kind names count.
	k := UnitKindForName(name)
	return k.IsValid() && k.String() == name
}

// Unit is a scaled base unit within a UnitDefinition. The unit is
// (multiplier * 10^scale * kind)^exponent + offset.
type Unit struct {
	SBase
	kind       UnitKind
	exponent   int
	scale      int
	multiplier float64
	offset     float64
}

// NewUnit returns a unit of kind with exponent 1, scale 0, multiplier 1
// and offset 0.
func NewUnit(kind UnitKind) *Unit {
	return &Unit{kind: kind, exponent: 1, multiplier: 1}
}

// TypeCode returns TypeUnit.
func (u *Unit) TypeCode() TypeCode { return TypeUnit }

func (u *Unit) Kind() UnitKind          { return u.kind }
func (u *Unit) SetKind(k UnitKind)      { u.kind = k }
func (u *Unit) Exponent() int           { return u.exponent }
func (u *Unit) SetExponent(e int)       { u.exponent = e }
func (u *Unit) Scale() int              { return u.scale }
func (u *Unit) SetScale(s int)          { u.scale = s }
func (u *Unit) Multiplier() float64     { return u.multiplier }
func (u *Unit) SetMultiplier(m float64) { u.multiplier = m }
func (u *Unit) Offset() float64         { return u.offset }
func (u *Unit) SetOffset(o float64)     { u.offset = o }

// UnitDefinition names a product of units.
type UnitDefinition struct {
	SBase
	named
	units ListOf[*Unit]
}

// NewUnitDefinition returns a unit definition with the given id.
func NewUnitDefinition(id string) *UnitDefinition {
	ud := &UnitDefinition{}
	if id != "" {
		ud.SetID(id)
	}
	return ud
}

// TypeCode returns TypeUnitDefinition.
func (ud *UnitDefinition) TypeCode() TypeCode { return TypeUnitDefinition }

// Units returns the list of units.
func (ud *UnitDefinition) Units() *ListOf[*Unit] { return &ud.units }

// AddUnit appends u and returns its index.
func (ud *UnitDefinition) AddUnit(u *Unit) int { return ud.units.Append(u) }

// CreateUnit appends and returns a new unit of kind.
func (ud *UnitDefinition) CreateUnit(kind UnitKind) *Unit {
	u := NewUnit(kind)
	ud.units.Append(u)
	return u
}
