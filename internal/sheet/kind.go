// Package sheet models a character's persisted entity tree and the
// derived values computed from it.
//
// The package is deliberately data-only: entity behavior is attached by a
// ruleset as capability sets plus free functions, never as methods on the
// records themselves.
package sheet

import (
	apperrors "github.com/louisbranch/greymark/internal/errors"
)

// Kind discriminates the entity records a character can own.
type Kind int

const (
	KindUnspecified Kind = iota
	KindSkill
	KindTrait
	KindGear
	KindStrike
	KindEvent
)

func (k Kind) String() string {
	switch k {
	case KindSkill:
		return "skill"
	case KindTrait:
		return "trait"
	case KindGear:
		return "gear"
	case KindStrike:
		return "strike"
	case KindEvent:
		return "event"
	default:
		return "unspecified"
	}
}

// ParseKind maps a persisted kind label to a Kind.
func ParseKind(value string) (Kind, error) {
	switch value {
	case "skill":
		return KindSkill, nil
	case "trait":
		return KindTrait, nil
	case "gear":
		return KindGear, nil
	case "strike":
		return KindStrike, nil
	case "event":
		return KindEvent, nil
	default:
		return KindUnspecified, apperrors.WithMetadata(
			apperrors.CodeEntityInvalidKind,
			"unknown entity kind "+value,
			map[string]string{"Kind": value},
		)
	}
}

// Capability names a behavior a ruleset attaches to an entity. The logic
// behind each capability lives in the ruleset as free functions over the
// entity data; entities themselves stay plain records.
type Capability int

const (
	// CapabilityMastery computes a proficiency stack from a level plus
	// boost growth.
	CapabilityMastery Capability = iota + 1
	// CapabilityFate computes the luck sub-stack backing a skill.
	CapabilityFate
	// CapabilityCombat computes attack/block/counterstrike stacks for a
	// strike technique.
	CapabilityCombat
	// CapabilityBoon resolves a bonus-granting event against its
	// structural container.
	CapabilityBoon
)

func (c Capability) String() string {
	switch c {
	case CapabilityMastery:
		return "mastery"
	case CapabilityFate:
		return "fate"
	case CapabilityCombat:
		return "combat"
	case CapabilityBoon:
		return "boon"
	default:
		return "unknown"
	}
}
