package sbml

// Compartment is a bounded container for species.
type Compartment struct {
	SBase
	named
	spatialDimensions optInt
	size              optFloat
	units             optString
	outside           optString
	constant          optBool
}

// NewCompartment returns a compartment with the given id.
func NewCompartment(id string) *Compartment {
	c := &Compartment{}
	if id != "" {
		c.SetID(id)
	}
	return c
}

// TypeCode returns TypeCompartment.
func (c *Compartment) TypeCode() TypeCode { return TypeCompartment }

// SpatialDimensions returns the number of dimensions, 3 by default.
func (c *Compartment) SpatialDimensions() int { return c.spatialDimensions.or(3) }

// SetSpatialDimensions sets the number of dimensions (0 to 3).
func (c *Compartment) SetSpatialDimensions(d int) { c.spatialDimensions.setTo(d) }

// IsSetSpatialDimensions reports whether spatialDimensions was given.
func (c *Compartment) IsSetSpatialDimensions() bool { return c.spatialDimensions.set }

// Size returns the size. Unset sizes read as 1, the Level 1 default
// volume.
func (c *Compartment) Size() float64 { return c.size.or(1) }

// SetSize sets the size.
func (c *Compartment) SetSize(v float64) { c.size.setTo(v) }

// IsSetSize reports whether the size is set.
func (c *Compartment) IsSetSize() bool { return c.size.set }

// UnsetSize clears the size.
func (c *Compartment) UnsetSize() { c.size.unset() }

// Volume is the Level 1 name for Size.
func (c *Compartment) Volume() float64 { return c.Size() }

// SetVolume is the Level 1 name for SetSize.
func (c *Compartment) SetVolume(v float64) { c.SetSize(v) }

// IsSetVolume is the Level 1 name for IsSetSize.
func (c *Compartment) IsSetVolume() bool { return c.IsSetSize() }

// Units returns the units reference.
func (c *Compartment) Units() string { return c.units.v }

// SetUnits sets the units reference.
func (c *Compartment) SetUnits(u string) { c.units.setTo(u) }

// IsSetUnits reports whether units are set.
func (c *Compartment) IsSetUnits() bool { return c.units.set }

// UnsetUnits clears the units reference.
func (c *Compartment) UnsetUnits() { c.units.unset() }

// Outside returns the id of the enclosing compartment.
func (c *Compartment) Outside() string { return c.outside.v }

// SetOutside sets the enclosing compartment.
func (c *Compartment) SetOutside(id string) { c.outside.setTo(id) }

// IsSetOutside reports whether outside is set.
func (c *Compartment) IsSetOutside() bool { return c.outside.set }

// UnsetOutside clears the enclosing compartment.
func (c *Compartment) UnsetOutside() { c.outside.unset() }

// Constant reports whether the size is fixed, true by default.
func (c *Compartment) Constant() bool { return c.constant.or(true) }

// SetConstant sets the constant flag.
func (c *Compartment) SetConstant(v bool) { c.constant.setTo(v) }

// IsSetConstant reports whether the constant flag was given.
func (c *Compartment) IsSetConstant() bool { return c.constant.set }
