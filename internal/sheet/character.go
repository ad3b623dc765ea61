package sheet

// Character is the owner of an entity tree. During a derivation pass the
// collection is read-only except for the stacks owned by the entity
// currently executing.
type Character struct {
	ID       string
	Name     string
	Entities []*Entity
}

// EntityByID returns the entity with the given ID, or nil.
func (c *Character) EntityByID(id string) *Entity {
	for _, e := range c.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// SkillNamed returns the skill entity with the given name, or nil.
func (c *Character) SkillNamed(name string) *Entity {
	for _, e := range c.Entities {
		if e.Kind == KindSkill && e.Name == name {
			return e
		}
	}
	return nil
}

// TraitTagged returns the first trait entity carrying the given tag,
// or nil when none exists.
func (c *Character) TraitTagged(tag string) *Entity {
	for _, e := range c.Entities {
		if e.Kind == KindTrait && e.HasTag(tag) {
			return e
		}
	}
	return nil
}

// OfKind returns all entities of the given kind in tree order.
func (c *Character) OfKind(kind Kind) []*Entity {
	var out []*Entity
	for _, e := range c.Entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
