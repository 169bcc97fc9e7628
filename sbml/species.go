package sbml

// Species is a pool of entities located in a compartment.
type Species struct {
	SBase
	named
	compartment           string
	initialAmount         optFloat
	initialConcentration  optFloat
	substanceUnits        optString
	spatialSizeUnits      optString
	hasOnlySubstanceUnits optBool
	boundaryCondition     optBool
	charge                optInt
	constant              optBool
}

// NewSpecies returns a species with the given id located in compartment.
func NewSpecies(id, compartment string) *Species {
	s := &Species{compartment: compartment}
	if id != "" {
		s.SetID(id)
	}
	return s
}

// TypeCode returns TypeSpecies.
func (s *Species) TypeCode() TypeCode { return TypeSpecies }

// Compartment returns the id of the containing compartment.
func (s *Species) Compartment() string { return s.compartment }

// SetCompartment sets the containing compartment.
func (s *Species) SetCompartment(id string) { s.compartment = id }

// IsSetCompartment reports whether a compartment is given.
func (s *Species) IsSetCompartment() bool { return s.compartment != "" }

// InitialAmount returns the initial amount.
func (s *Species) InitialAmount() float64 { return s.initialAmount.v }

// SetInitialAmount sets the initial amount and unsets the initial
// concentration.
func (s *Species) SetInitialAmount(v float64) {
	s.initialAmount.setTo(v)
	s.initialConcentration.unset()
}

// IsSetInitialAmount reports whether the initial amount is set.
func (s *Species) IsSetInitialAmount() bool { return s.initialAmount.set }

// UnsetInitialAmount clears the initial amount.
func (s *Species) UnsetInitialAmount() { s.initialAmount.unset() }

// InitialConcentration returns the initial concentration.
func (s *Species) InitialConcentration() float64 { return s.initialConcentration.v }

// SetInitialConcentration sets the initial concentration and unsets the
// initial amount.
func (s *Species) SetInitialConcentration(v float64) {
	s.initialConcentration.setTo(v)
	s.initialAmount.unset()
}

// IsSetInitialConcentration reports whether the initial concentration is
// set.
func (s *Species) IsSetInitialConcentration() bool { return s.initialConcentration.set }

// UnsetInitialConcentration clears the initial concentration.
func (s *Species) UnsetInitialConcentration() { s.initialConcentration.unset() }

// SubstanceUnits returns the substance units reference. In Level 1 this
// is the units attribute.
func (s *Species) SubstanceUnits() string { return s.substanceUnits.v }

// SetSubstanceUnits sets the substance units reference.
func (s *Species) SetSubstanceUnits(u string) { s.substanceUnits.setTo(u) }

// IsSetSubstanceUnits reports whether substance units are set.
func (s *Species) IsSetSubstanceUnits() bool { return s.substanceUnits.set }

// UnsetSubstanceUnits clears the substance units.
func (s *Species) UnsetSubstanceUnits() { s.substanceUnits.unset() }

// SpatialSizeUnits returns the spatial size units reference.
func (s *Species) SpatialSizeUnits() string { return s.spatialSizeUnits.v }

// SetSpatialSizeUnits sets the spatial size units reference.
func (s *Species) SetSpatialSizeUnits(u string) { s.spatialSizeUnits.setTo(u) }

// IsSetSpatialSizeUnits reports whether spatial size units are set.
func (s *Species) IsSetSpatialSizeUnits() bool { return s.spatialSizeUnits.set }

// UnsetSpatialSizeUnits clears the spatial size units.
func (s *Species) UnsetSpatialSizeUnits() { s.spatialSizeUnits.unset() }

// HasOnlySubstanceUnits reports whether the species quantity is an
// amount rather than a concentration. False by default.
func (s *Species) HasOnlySubstanceUnits() bool { return s.hasOnlySubstanceUnits.or(false) }

// SetHasOnlySubstanceUnits sets the hasOnlySubstanceUnits flag.
func (s *Species) SetHasOnlySubstanceUnits(v bool) { s.hasOnlySubstanceUnits.setTo(v) }

// IsSetHasOnlySubstanceUnits reports whether the flag was given.
func (s *Species) IsSetHasOnlySubstanceUnits() bool { return s.hasOnlySubstanceUnits.set }

// BoundaryCondition reports whether reactions leave the species unchanged.
// False by default.
func (s *Species) BoundaryCondition() bool { return s.boundaryCondition.or(false) }

// SetBoundaryCondition sets the boundary condition flag.
func (s *Species) SetBoundaryCondition(v bool) { s.boundaryCondition.setTo(v) }

// IsSetBoundaryCondition reports whether the flag was given.
func (s *Species) IsSetBoundaryCondition() bool { return s.boundaryCondition.set }

// Charge returns the charge.
func (s *Species) Charge() int { return s.charge.v }

// SetCharge sets the charge.
func (s *Species) SetCharge(v int) { s.charge.setTo(v) }

// IsSetCharge reports whether the charge is set.
func (s *Species) IsSetCharge() bool { return s.charge.set }

// UnsetCharge clears the charge.
func (s *Species) UnsetCharge() { s.charge.unset() }

// Constant reports whether the quantity cannot change. False by default.
func (s *Species) Constant() bool { return s.constant.or(false) }

// SetConstant sets the constant flag.
func (s *Species) SetConstant(v bool) { s.constant.setTo(v) }

// IsSetConstant reports whether the constant flag was given.
func (s *Species) IsSetConstant() bool { return s.constant.set }
