package sheet

import (
	"time"

	"github.com/louisbranch/greymark/internal/modifier"
)

// SkillValues is the derived, display-ready state of one skill after a
// completed pass.
type SkillValues struct {
	EntityID     string                  `json:"entity_id"`
	Name         string                  `json:"name"`
	Mastery      int                     `json:"mastery"`
	MasteryAudit []modifier.Contribution `json:"mastery_audit,omitempty"`
	Fate         *int                    `json:"fate,omitempty"`
	FateReason   string                  `json:"fate_reason,omitempty"` // reason code when fate is disabled
	FateAudit    []modifier.Contribution `json:"fate_audit,omitempty"`
}

// StrikeValues is the derived state of one strike technique.
type StrikeValues struct {
	EntityID      string `json:"entity_id"`
	Name          string `json:"name"`
	Attack        int    `json:"attack"`
	Block         int    `json:"block"`
	Counterstrike int    `json:"counterstrike"`
	Durability    int    `json:"durability"`
	Reach         int    `json:"reach,omitempty"`
	Degraded      bool   `json:"degraded,omitempty"` // associated skill was missing
}

// Derived is the full derived-state tree for one character, produced by a
// completed pass and handed to persistence and presentation collaborators.
type Derived struct {
	CharacterID   string         `json:"character_id"`
	CharacterName string         `json:"character_name"`
	ComputedAt    time.Time      `json:"computed_at"`
	Skills        []SkillValues  `json:"skills"`
	Strikes       []StrikeValues `json:"strikes"`
}

// SkillByName returns the derived values for a skill, or nil.
func (d *Derived) SkillByName(name string) *SkillValues {
	for i := range d.Skills {
		if d.Skills[i].Name == name {
			return &d.Skills[i]
		}
	}
	return nil
}

// StrikeByName returns the derived values for a strike, or nil.
func (d *Derived) StrikeByName(name string) *StrikeValues {
	for i := range d.Strikes {
		if d.Strikes[i].Name == name {
			return &d.Strikes[i]
		}
	}
	return nil
}
