package sbml

import (
	"errors"
	"fmt"
	"slices"
)

// ErrSymbolicStoichiometry is returned when a stoichiometry is given by
// math that does not evaluate to a number.
var ErrSymbolicStoichiometry = errors.New("sbml: stoichiometry is not a number")

// ErrUndefinedReference is returned when a species reference names no
// species of the model.
var ErrUndefinedReference = errors.New("sbml: undefined species reference")

// StoichiometryMatrix holds the net stoichiometry of each species in each
// reaction. Values[i][j] is the amount of Species[i] produced by one
// unit of Reactions[j]; reactants count negative.
type StoichiometryMatrix struct {
	Species   []string
	Reactions []string
	Values    [][]float64
}

// At returns the entry for species and reaction, and false when either
// is not in the matrix.
func (sm *StoichiometryMatrix) At(species, reaction string) (float64, bool) {
	i := slices.Index(sm.Species, species)
	j := slices.Index(sm.Reactions, reaction)
	if i < 0 || j < 0 {
		return 0, false
	}
	return sm.Values[i][j], true
}

// StoichiometryMatrix builds the species by reaction stoichiometry
// matrix. A species that appears more than once in a reaction
// accumulates its stoichiometries.
func (m *Model) StoichiometryMatrix() (*StoichiometryMatrix, error) {
	sm := &StoichiometryMatrix{
		Species:   make([]string, m.species.Len()),
		Reactions: make([]string, m.reactions.Len()),
		Values:    make([][]float64, m.species.Len()),
	}
	row := make(map[string]int, m.species.Len())
	for i, s := range m.species.All() {
		sm.Species[i] = s.Identifier()
		sm.Values[i] = make([]float64, m.reactions.Len())
		if _, dup := row[s.Identifier()]; !dup {
			row[s.Identifier()] = i
		}
	}

	for j, r := range m.reactions.All() {
		sm.Reactions[j] = r.Identifier()
		add := func(sr *SpeciesReference, sign float64) error {
			i, ok := row[sr.species]
			if !ok {
				return fmt.Errorf("%w: %q in reaction %q", ErrUndefinedReference, sr.species, r.Identifier())
			}
			st, ok := sr.EffectiveStoichiometry()
			if !ok {
				return fmt.Errorf("%w: %q in reaction %q", ErrSymbolicStoichiometry, sr.species, r.Identifier())
			}
			sm.Values[i][j] += sign * st
			return nil
		}
		for _, sr := range r.reactants.All() {
			if err := add(sr, -1); err != nil {
				return nil, err
			}
		}
		for _, sr := range r.products.All() {
			if err := add(sr, 1); err != nil {
				return nil, err
			}
		}
	}
	return sm, nil
}
