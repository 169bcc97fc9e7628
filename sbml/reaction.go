package sbml

import "github.com/gosbml/gosbml/ast"

// Reaction converts reactant species into product species.
type Reaction struct {
	SBase
	named
	reversible optBool
	fast       optBool
	kineticLaw *KineticLaw
	reactants  ListOf[*SpeciesReference]
	products   ListOf[*SpeciesReference]
	modifiers  ListOf[*ModifierSpeciesReference]
}

// NewReaction returns a reaction with the given id.
func NewReaction(id string) *Reaction {
	r := &Reaction{}
	if id != "" {
		r.SetID(id)
	}
	return r
}

// TypeCode returns TypeReaction.
func (r *Reaction) TypeCode() TypeCode { return TypeReaction }

// Reversible reports whether the reaction is reversible, true by default.
func (r *Reaction) Reversible() bool { return r.reversible.or(true) }

// SetReversible sets the reversible flag.
func (r *Reaction) SetReversible(v bool) { r.reversible.setTo(v) }

// IsSetReversible reports whether the reversible flag was given.
func (r *Reaction) IsSetReversible() bool { return r.reversible.set }

// Fast reports whether the reaction is fast, false by default.
func (r *Reaction) Fast() bool { return r.fast.or(false) }

// SetFast sets the fast flag.
func (r *Reaction) SetFast(v bool) { r.fast.setTo(v) }

// IsSetFast reports whether the fast flag was given.
func (r *Reaction) IsSetFast() bool { return r.fast.set }

// KineticLaw returns the rate law, or nil.
func (r *Reaction) KineticLaw() *KineticLaw { return r.kineticLaw }

// IsSetKineticLaw reports whether a rate law is present.
func (r *Reaction) IsSetKineticLaw() bool { return r.kineticLaw != nil }

// SetKineticLaw makes kl the rate law, taking it from any reaction that
// held it. Nil removes the rate law.
func (r *Reaction) SetKineticLaw(kl *KineticLaw) {
	if r.kineticLaw == kl {
		return
	}
	if r.kineticLaw != nil {
		r.kineticLaw.reaction = nil
	}
	if kl != nil {
		if prev := kl.reaction; prev != nil {
			prev.kineticLaw = nil
		}
		kl.reaction = r
	}
	r.kineticLaw = kl
}

// CreateKineticLaw sets and returns a new empty rate law.
func (r *Reaction) CreateKineticLaw() *KineticLaw {
	kl := &KineticLaw{}
	r.SetKineticLaw(kl)
	return kl
}

// Reactants returns the reactant list.
func (r *Reaction) Reactants() *ListOf[*SpeciesReference] { return &r.reactants }

// Products returns the product list.
func (r *Reaction) Products() *ListOf[*SpeciesReference] { return &r.products }

// Modifiers returns the modifier list.
func (r *Reaction) Modifiers() *ListOf[*ModifierSpeciesReference] { return &r.modifiers }

// Reactant returns the i-th reactant, or nil.
func (r *Reaction) Reactant(i int) *SpeciesReference { return r.reactants.Get(i) }

// Product returns the i-th product, or nil.
func (r *Reaction) Product(i int) *SpeciesReference { return r.products.Get(i) }

// Modifier returns the i-th modifier, or nil.
func (r *Reaction) Modifier(i int) *ModifierSpeciesReference { return r.modifiers.Get(i) }

// AddReactant appends sr to the reactants and returns its index.
func (r *Reaction) AddReactant(sr *SpeciesReference) int { return r.reactants.Append(sr) }

// AddProduct appends sr to the products and returns its index.
func (r *Reaction) AddProduct(sr *SpeciesReference) int { return r.products.Append(sr) }

// AddModifier appends msr to the modifiers and returns its index.
func (r *Reaction) AddModifier(msr *ModifierSpeciesReference) int { return r.modifiers.Append(msr) }

// SpeciesReference is a reactant or product of a reaction.
type SpeciesReference struct {
	SBase
	species           string
	stoichiometry     optFloat
	denominator       optInt
	stoichiometryMath mathSlot
}

// NewSpeciesReference returns a reference to species with stoichiometry
// 1.
func NewSpeciesReference(species string) *SpeciesReference {
	return &SpeciesReference{species: species}
}

// TypeCode returns TypeSpeciesReference.
func (sr *SpeciesReference) TypeCode() TypeCode { return TypeSpeciesReference }

// Species returns the referenced species id.
func (sr *SpeciesReference) Species() string { return sr.species }

// SetSpecies sets the referenced species.
func (sr *SpeciesReference) SetSpecies(id string) { sr.species = id }

// Stoichiometry returns the numeric stoichiometry, 1 by default.
func (sr *SpeciesReference) Stoichiometry() float64 { return sr.stoichiometry.or(1) }

// SetStoichiometry sets the numeric stoichiometry and clears any
// stoichiometry math.
func (sr *SpeciesReference) SetStoichiometry(v float64) {
	sr.stoichiometry.setTo(v)
	sr.stoichiometryMath.set(nil)
}

// IsSetStoichiometry reports whether a numeric stoichiometry was given.
func (sr *SpeciesReference) IsSetStoichiometry() bool { return sr.stoichiometry.set }

// Denominator returns the stoichiometry denominator, 1 by default.
func (sr *SpeciesReference) Denominator() int { return sr.denominator.or(1) }

// SetDenominator sets the stoichiometry denominator.
func (sr *SpeciesReference) SetDenominator(d int) { sr.denominator.setTo(d) }

// IsSetDenominator reports whether a denominator was given.
func (sr *SpeciesReference) IsSetDenominator() bool { return sr.denominator.set }

// StoichiometryMath returns the symbolic stoichiometry, or nil.
func (sr *SpeciesReference) StoichiometryMath() *ast.Node { return sr.stoichiometryMath.n }

// SetStoichiometryMath takes ownership of n as the stoichiometry. It
// overrides the numeric stoichiometry, which is unset.
func (sr *SpeciesReference) SetStoichiometryMath(n *ast.Node) {
	sr.stoichiometryMath.set(n)
	if n != nil {
		sr.stoichiometry.unset()
	}
}

// IsSetStoichiometryMath reports whether symbolic stoichiometry is set.
func (sr *SpeciesReference) IsSetStoichiometryMath() bool { return sr.stoichiometryMath.n != nil }

// EffectiveStoichiometry returns the numeric stoichiometry divided by
// the denominator. The second result is false when the stoichiometry is
// symbolic and not a plain number.
func (sr *SpeciesReference) EffectiveStoichiometry() (float64, bool) {
	if n := sr.stoichiometryMath.n; n != nil {
		v, err := ast.Evaluate(n, nil)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return sr.Stoichiometry() / float64(sr.Denominator()), true
}

// ModifierSpeciesReference names a species that affects a reaction
// without being consumed or produced.
type ModifierSpeciesReference struct {
	SBase
	species string
}

// NewModifierSpeciesReference returns a modifier reference to species.
func NewModifierSpeciesReference(species string) *ModifierSpeciesReference {
	return &ModifierSpeciesReference{species: species}
}

// TypeCode returns TypeModifierSpeciesReference.
func (m *ModifierSpeciesReference) TypeCode() TypeCode { return TypeModifierSpeciesReference }

// Species returns the referenced species id.
func (m *ModifierSpeciesReference) Species() string { return m.species }

// SetSpecies sets the referenced species.
func (m *ModifierSpeciesReference) SetSpecies(id string) { m.species = id }

// KineticLaw is the rate law of a reaction.
type KineticLaw struct {
	SBase
	math           mathSlot
	timeUnits      optString
	substanceUnits optString
	parameters     ListOf[*Parameter]

	reaction *Reaction
}

// NewKineticLaw returns a rate law with math n that belongs to no
// reaction.
func NewKineticLaw(n *ast.Node) *KineticLaw {
	kl := &KineticLaw{}
	kl.SetMath(n)
	return kl
}

// Reaction returns the reaction the law belongs to, or nil.
func (kl *KineticLaw) Reaction() *Reaction { return kl.reaction }

// TypeCode returns TypeKineticLaw.
func (kl *KineticLaw) TypeCode() TypeCode { return TypeKineticLaw }

// Math returns the rate expression, or nil.
func (kl *KineticLaw) Math() *ast.Node { return kl.math.n }

// SetMath takes ownership of n as the rate expression.
func (kl *KineticLaw) SetMath(n *ast.Node) { kl.math.set(n) }

// IsSetMath reports whether a rate expression is set.
func (kl *KineticLaw) IsSetMath() bool { return kl.math.n != nil }

// Formula renders the rate expression as formula text.
func (kl *KineticLaw) Formula() string { return kl.math.formula() }

// SetFormula parses text as the rate expression. On a syntax error the
// existing math is kept.
func (kl *KineticLaw) SetFormula(text string) error { return kl.math.setFormula(text) }

// TimeUnits returns the time units reference.
func (kl *KineticLaw) TimeUnits() string { return kl.timeUnits.v }

// SetTimeUnits sets the time units reference.
func (kl *KineticLaw) SetTimeUnits(u string) { kl.timeUnits.setTo(u) }

// IsSetTimeUnits reports whether time units are set.
func (kl *KineticLaw) IsSetTimeUnits() bool { return kl.timeUnits.set }

// SubstanceUnits returns the substance units reference.
func (kl *KineticLaw) SubstanceUnits() string { return kl.substanceUnits.v }

// SetSubstanceUnits sets the substance units reference.
func (kl *KineticLaw) SetSubstanceUnits(u string) { kl.substanceUnits.setTo(u) }

// IsSetSubstanceUnits reports whether substance units are set.
func (kl *KineticLaw) IsSetSubstanceUnits() bool { return kl.substanceUnits.set }

// Parameters returns the local parameter list.
func (kl *KineticLaw) Parameters() *ListOf[*Parameter] { return &kl.parameters }

// Parameter returns the i-th local parameter, or nil.
func (kl *KineticLaw) Parameter(i int) *Parameter { return kl.parameters.Get(i) }

// ParameterByID returns the first local parameter with identifier id.
func (kl *KineticLaw) ParameterByID(id string) *Parameter { return find(&kl.parameters, id) }

// AddParameter appends p to the local parameters and returns its index.
func (kl *KineticLaw) AddParameter(p *Parameter) int { return kl.parameters.Append(p) }
