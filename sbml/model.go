package sbml

// Model is the content of a document: the lists of every kind of model
// entity.
type Model struct {
	SBase
	named

	functionDefinitions ListOf[*FunctionDefinition]
	unitDefinitions     ListOf[*UnitDefinition]
	compartments        ListOf[*Compartment]
	species             ListOf[*Species]
	parameters          ListOf[*Parameter]
	rules               ListOf[*Rule]
	reactions           ListOf[*Reaction]
	events              ListOf[*Event]

	doc *Document
}

// NewModel returns an empty model with the given id.
func NewModel(id string) *Model {
	m := &Model{}
	if id != "" {
		m.SetID(id)
	}
	return m
}

// TypeCode returns TypeModel.
func (m *Model) TypeCode() TypeCode { return TypeModel }

// Document returns the document holding the model, or nil.
func (m *Model) Document() *Document { return m.doc }

func (m *Model) ListOfFunctionDefinitions() *ListOf[*FunctionDefinition] {
	return &m.functionDefinitions
}
func (m *Model) ListOfUnitDefinitions() *ListOf[*UnitDefinition] { return &m.unitDefinitions }
func (m *Model) ListOfCompartments() *ListOf[*Compartment]       { return &m.compartments }
func (m *Model) ListOfSpecies() *ListOf[*Species]                { return &m.species }
func (m *Model) ListOfParameters() *ListOf[*Parameter]           { return &m.parameters }
func (m *Model) ListOfRules() *ListOf[*Rule]                     { return &m.rules }
func (m *Model) ListOfReactions() *ListOf[*Reaction]             { return &m.reactions }
func (m *Model) ListOfEvents() *ListOf[*Event]                   { return &m.events }

func (m *Model) NumFunctionDefinitions() int { return m.functionDefinitions.Len() }
func (m *Model) NumUnitDefinitions() int     { return m.unitDefinitions.Len() }
func (m *Model) NumCompartments() int        { return m.compartments.Len() }
func (m *Model) NumSpecies() int             { return m.species.Len() }
func (m *Model) NumParameters() int          { return m.parameters.Len() }
func (m *Model) NumRules() int               { return m.rules.Len() }
func (m *Model) NumReactions() int           { return m.reactions.Len() }
func (m *Model) NumEvents() int              { return m.events.Len() }

func (m *Model) FunctionDefinition(i int) *FunctionDefinition { return m.functionDefinitions.Get(i) }
func (m *Model) UnitDefinition(i int) *UnitDefinition         { return m.unitDefinitions.Get(i) }
func (m *Model) Compartment(i int) *Compartment               { return m.compartments.Get(i) }
func (m *Model) Species(i int) *Species                       { return m.species.Get(i) }
func (m *Model) Parameter(i int) *Parameter                   { return m.parameters.Get(i) }
func (m *Model) Rule(i int) *Rule                             { return m.rules.Get(i) }
func (m *Model) Reaction(i int) *Reaction                     { return m.reactions.Get(i) }
func (m *Model) Event(i int) *Event                           { return m.events.Get(i) }

// Lookups return the first entity whose identifier matches, or nil.

func (m *Model) FunctionDefinitionByID(id string) *FunctionDefinition {
	return find(&m.functionDefinitions, id)
}
func (m *Model) UnitDefinitionByID(id string) *UnitDefinition { return find(&m.unitDefinitions, id) }
func (m *Model) CompartmentByID(id string) *Compartment       { return find(&m.compartments, id) }
func (m *Model) SpeciesByID(id string) *Species               { return find(&m.species, id) }
func (m *Model) ParameterByID(id string) *Parameter           { return find(&m.parameters, id) }
func (m *Model) ReactionByID(id string) *Reaction             { return find(&m.reactions, id) }
func (m *Model) EventByID(id string) *Event                   { return find(&m.events, id) }

// RuleByVariable returns the first rule assigning variable, or nil.
func (m *Model) RuleByVariable(variable string) *Rule {
	if variable == "" {
		return nil
	}
	for _, r := range m.rules.All() {
		if r.variable == variable {
			return r
		}
	}
	return nil
}

func (m *Model) AddFunctionDefinition(fd *FunctionDefinition) int {
	return m.functionDefinitions.Append(fd)
}
func (m *Model) AddUnitDefinition(ud *UnitDefinition) int { return m.unitDefinitions.Append(ud) }
func (m *Model) AddCompartment(c *Compartment) int        { return m.compartments.Append(c) }
func (m *Model) AddSpecies(s *Species) int                { return m.species.Append(s) }
func (m *Model) AddParameter(p *Parameter) int            { return m.parameters.Append(p) }
func (m *Model) AddRule(r *Rule) int                      { return m.rules.Append(r) }
func (m *Model) AddReaction(r *Reaction) int              { return m.reactions.Append(r) }
func (m *Model) AddEvent(e *Event) int                    { return m.events.Append(e) }

// CreateCompartment appends and returns a new compartment.
func (m *Model) CreateCompartment(id string) *Compartment {
	c := NewCompartment(id)
	m.AddCompartment(c)
	return c
}

// CreateSpecies appends and returns a new species in compartment.
func (m *Model) CreateSpecies(id, compartment string) *Species {
	s := NewSpecies(id, compartment)
	m.AddSpecies(s)
	return s
}

// CreateParameter appends and returns a new parameter.
func (m *Model) CreateParameter(id string) *Parameter {
	p := NewParameter(id)
	m.AddParameter(p)
	return p
}

// CreateReaction appends and returns a new reaction.
func (m *Model) CreateReaction(id string) *Reaction {
	r := NewReaction(id)
	m.AddReaction(r)
	return r
}

// CreateUnitDefinition appends and returns a new unit definition.
func (m *Model) CreateUnitDefinition(id string) *UnitDefinition {
	ud := NewUnitDefinition(id)
	m.AddUnitDefinition(ud)
	return ud
}

// namedEntities calls fn for every entity of the model that carries an
// id/name pair.
func (m *Model) namedEntities(fn func(e Element, n *named)) {
	fn(m, &m.named)
	for _, fd := range m.functionDefinitions.All() {
		fn(fd, &fd.named)
	}
	for _, ud := range m.unitDefinitions.All() {
		fn(ud, &ud.named)
	}
	for _, c := range m.compartments.All() {
		fn(c, &c.named)
	}
	for _, s := range m.species.All() {
		fn(s, &s.named)
	}
	for _, p := range m.parameters.All() {
		fn(p, &p.named)
	}
	for _, r := range m.reactions.All() {
		fn(r, &r.named)
		if kl := r.kineticLaw; kl != nil {
			for _, p := range kl.parameters.All() {
				fn(p, &p.named)
			}
		}
	}
	for _, e := range m.events.All() {
		fn(e, &e.named)
	}
}

// MoveAllIDsToNames moves the id of every entity into its name where the
// name is unset.
func (m *Model) MoveAllIDsToNames() {
	m.namedEntities(func(_ Element, n *named) { n.MoveIDToName() })
}

// MoveAllNamesToIDs moves the name of every entity into its id where the
// id is unset.
func (m *Model) MoveAllNamesToIDs() {
	m.namedEntities(func(_ Element, n *named) { n.MoveNameToID() })
}
