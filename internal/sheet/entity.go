package sheet

import (
	"github.com/louisbranch/greymark/internal/modifier"
)

// SkillData is the persisted payload for a skill entity.
type SkillData struct {
	Level         int      // improved base level before boosts
	Boosts        int      // number of pending boost applications
	MaxTarget     int      // clamp for the boosted proficiency
	Formula       []string // attribute abbreviations the skill rolls against
	MagicModifier int      // flat fate delta, 0 when the skill has none
}

// TraitData is the persisted payload for a trait entity.
type TraitData struct {
	Level int
	Tags  []string
}

// GearData is the persisted payload for a gear entity.
type GearData struct {
	Durability int
	Weapon     bool
	Length     int // reach in fingers; meaningful only for weapons
}

// StrikeData is the persisted payload for a strike technique entity.
type StrikeData struct {
	SkillName   string // associated skill, matched by name
	Impact      int    // static seed for the attack stack
	ContainerID string // owning gear entity, "" when freestanding
}

// EventData is the persisted payload for an event entity.
type EventData struct {
	SkillName   string // skill the bonus applies to
	FateBonus   int
	ContainerID string // entity the event is nested in, "" for the owner
}

// Entity is one of an owner's child computation units. Payload pointers
// are populated per Kind; capability logic lives in the ruleset.
type Entity struct {
	ID           string
	Kind         Kind
	Name         string
	Capabilities []Capability

	Skill  *SkillData
	Trait  *TraitData
	Gear   *GearData
	Strike *StrikeData
	Event  *EventData

	owner *Character

	// Structural associations resolved during initialize.
	AssocSkill *Entity // strike → skill, nil when missing (degraded)
	Container  *Entity // strike/event → nesting entity

	// Stacks owned by this entity; allocated during initialize, trusted
	// only after finalize. Never shared across entities.
	Mastery       *modifier.Stack
	Fate          *modifier.Stack
	Attack        *modifier.Stack
	Block         *modifier.Stack
	Counterstrike *modifier.Stack
	Durability    *modifier.Stack
	Reach         int
}

// Owner returns the character this entity belongs to.
func (e *Entity) Owner() *Character {
	return e.owner
}

// Has reports whether the entity carries the given capability.
func (e *Entity) Has(capability Capability) bool {
	for _, c := range e.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// HasTag reports whether a trait entity carries the given tag.
// Non-trait entities never match.
func (e *Entity) HasTag(tag string) bool {
	if e.Trait == nil {
		return false
	}
	for _, t := range e.Trait.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
