package reader

import (
	"strconv"

	"github.com/gosbml/gosbml/internal/xmltree"
	"github.com/gosbml/gosbml/mathml"
	"github.com/gosbml/gosbml/sbml"
)

var vocabularyL1 = []string{
	"model", "notes", "annotation",
	"listOfUnitDefinitions", "unitDefinition", "listOfUnits", "unit",
	"listOfCompartments", "compartment",
	"listOfSpecies", "specie", "species",
	"listOfParameters", "parameter",
	"listOfRules", "algebraicRule", "compartmentVolumeRule",
	"specieConcentrationRule", "speciesConcentrationRule", "parameterRule",
	"listOfReactions", "reaction", "listOfReactants", "listOfProducts",
	"specieReference", "speciesReference", "kineticLaw",
}

var vocabularyL2 = append([]string{
	"listOfFunctionDefinitions", "functionDefinition",
	"assignmentRule", "rateRule",
	"listOfModifiers", "modifierSpeciesReference", "stoichiometryMath",
	"listOfEvents", "event", "trigger", "delay",
	"listOfEventAssignments", "eventAssignment",
}, vocabularyL1...)

// schemaFor returns the structural schema of a level and version.
func schemaFor(level, version int) *xmltree.Schema {
	words := vocabularyL1
	if level == 2 {
		words = vocabularyL2
	}
	s := &xmltree.Schema{
		Root:      "sbml",
		Namespace: sbml.NamespaceFor(level),
		Attrs: map[string]string{
			"level":   strconv.Itoa(level),
			"version": strconv.Itoa(version),
		},
		Elements: make(map[string]bool, len(words)),
		Opaque:   map[string]bool{"notes": true, "annotation": true},
	}
	if level == 2 {
		s.Foreign = map[string]bool{mathml.Namespace: true}
	}
	for _, w := range words {
		s.Elements[w] = true
	}
	return s
}
