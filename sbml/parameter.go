package sbml

// Parameter is a named quantity, either global to a model or local to a
// kinetic law.
type Parameter struct {
	SBase
	named
	value    optFloat
	units    optString
	constant optBool
}

// NewParameter returns a parameter with the given id.
func NewParameter(id string) *Parameter {
	p := &Parameter{}
	if id != "" {
		p.SetID(id)
	}
	return p
}

// TypeCode returns TypeParameter.
func (p *Parameter) TypeCode() TypeCode { return TypeParameter }

func (p *Parameter) Value() float64      { return p.value.v }
func (p *Parameter) SetValue(v float64)  { p.value.setTo(v) }
func (p *Parameter) IsSetValue() bool    { return p.value.set }
func (p *Parameter) UnsetValue()         { p.value.unset() }
func (p *Parameter) Units() string       { return p.units.v }
func (p *Parameter) SetUnits(u string)   { p.units.setTo(u) }
func (p *Parameter) IsSetUnits() bool    { return p.units.set }
func (p *Parameter) UnsetUnits()         { p.units.unset() }
func (p *Parameter) Constant() bool      { return p.constant.or(true) }
func (p *Parameter) SetConstant(v bool)  { p.constant.setTo(v) }
func (p *Parameter) IsSetConstant() bool { return p.constant.set }
