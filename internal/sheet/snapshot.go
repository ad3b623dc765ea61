package sheet

import (
	"fmt"

	apperrors "github.com/louisbranch/greymark/internal/errors"
)

// Range constants enforced at the load boundary. The pipeline relies on
// these and never re-validates raw shapes.
const (
	SkillLevelMin = 0
	SkillLevelMax = 150
)

// Snapshot is the read-only persisted form of a character and its
// entities, as supplied by the document-persistence collaborator.
type Snapshot struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Entities []EntityRecord `json:"entities"`
}

// EntityRecord is one persisted entity, keyed by its kind discriminator.
type EntityRecord struct {
	ID     string      `json:"id"`
	Kind   string      `json:"kind"`
	Name   string      `json:"name"`
	Skill  *SkillData  `json:"skill,omitempty"`
	Trait  *TraitData  `json:"trait,omitempty"`
	Gear   *GearData   `json:"gear,omitempty"`
	Strike *StrikeData `json:"strike,omitempty"`
	Event  *EventData  `json:"event,omitempty"`
}

// Validate checks required identifiers and numeric ranges. It runs
// strictly before any derivation pass.
func (s Snapshot) Validate() error {
	if s.ID == "" {
		return apperrors.New(apperrors.CodeCharacterEmptyID, "character id is required")
	}
	if s.Name == "" {
		return apperrors.New(apperrors.CodeCharacterEmptyName, "character name is required")
	}

	seen := make(map[string]bool, len(s.Entities))
	for _, record := range s.Entities {
		if record.ID == "" {
			return apperrors.New(apperrors.CodeEntityEmptyID, "entity id is required")
		}
		if seen[record.ID] {
			return apperrors.WithMetadata(
				apperrors.CodeEntityDuplicateID,
				"duplicate entity id "+record.ID,
				map[string]string{"ID": record.ID},
			)
		}
		seen[record.ID] = true

		kind, err := ParseKind(record.Kind)
		if err != nil {
			return err
		}
		if err := record.validatePayload(kind); err != nil {
			return err
		}
	}
	return nil
}

func (r EntityRecord) validatePayload(kind Kind) error {
	missing := func() error {
		return apperrors.WithMetadata(
			apperrors.CodeEntityMissingPayload,
			fmt.Sprintf("entity %s has no %s payload", r.ID, kind),
			map[string]string{"ID": r.ID, "Kind": kind.String()},
		)
	}

	switch kind {
	case KindSkill:
		if r.Skill == nil {
			return missing()
		}
		if r.Skill.Level < SkillLevelMin || r.Skill.Level > SkillLevelMax {
			return apperrors.WithMetadata(
				apperrors.CodeSkillLevelOutOfRange,
				fmt.Sprintf("skill %s level %d out of range", r.Name, r.Skill.Level),
				map[string]string{"Level": fmt.Sprintf("%d", r.Skill.Level)},
			)
		}
		if r.Skill.Boosts < 0 {
			return apperrors.New(apperrors.CodeSkillNegativeBoosts, "boost count cannot be negative")
		}
	case KindTrait:
		if r.Trait == nil {
			return missing()
		}
	case KindGear:
		if r.Gear == nil {
			return missing()
		}
	case KindStrike:
		if r.Strike == nil {
			return missing()
		}
	case KindEvent:
		if r.Event == nil {
			return missing()
		}
	}
	return nil
}

// Build constructs a fresh character tree from a validated snapshot.
// Entities and their stacks are recreated on every pass; nothing is
// carried over from previous computations.
func Build(s Snapshot) (*Character, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	c := &Character{ID: s.ID, Name: s.Name}
	for _, record := range s.Entities {
		kind, err := ParseKind(record.Kind)
		if err != nil {
			return nil, err
		}
		entity := &Entity{
			ID:     record.ID,
			Kind:   kind,
			Name:   record.Name,
			Skill:  record.Skill,
			Trait:  record.Trait,
			Gear:   record.Gear,
			Strike: record.Strike,
			Event:  record.Event,
			owner:  c,
		}
		c.Entities = append(c.Entities, entity)
	}
	return c, nil
}
