// Package greymark implements the Greymark percentile ruleset: mastery
// proficiency with boost growth, fate backing, strike technique stacks,
// and success tests.
//
// All rules state flows through an explicit Config carried in the pass
// Context; the package keeps no mutable package-level state.
package greymark

import (
	"log"
	"time"

	"github.com/louisbranch/greymark/internal/derive"
	apperrors "github.com/louisbranch/greymark/internal/errors"
	"github.com/louisbranch/greymark/internal/sheet"
)

// Rules constants.
const (
	// FateBaseDefault seeds fate stacks under the default-fate mode.
	FateBaseDefault = 50
	// OutnumberedPenaltyStep is the block/counterstrike penalty per
	// threatening opponent beyond the first.
	OutnumberedPenaltyStep = -10
)

// Disablement reason codes. The i18n catalog renders these for display.
const (
	ReasonFateNone        = "FATE_NONE_AVAILABLE"
	ReasonFateAuraFormula = "FATE_AURA_FORMULA"
)

// Config is the rules configuration for a derivation pass. It is built
// once by the caller and passed into every pass; phase functions never
// read configuration from anywhere else.
type Config struct {
	// DefaultFateBase seeds every fate stack at FateBaseDefault instead
	// of deriving the base from the owner's fate trait.
	DefaultFateBase bool
	// FateTraitTag marks the trait whose proficiency backs fate stacks.
	FateTraitTag string
	// RestrictedAttr names the formula attribute that forbids fate
	// backing for a skill.
	RestrictedAttr string
}

// DefaultConfig returns the standard ruleset configuration.
func DefaultConfig() Config {
	return Config{
		FateTraitTag:   "fate",
		RestrictedAttr: "AU",
	}
}

// CombatState is a read-only snapshot of the active combat collaborator
// at the time the pass runs.
type CombatState struct {
	// Active is true while the owner is a non-defeated participant.
	Active bool
	// ThreateningOpponents counts opponents currently threatening the
	// owner.
	ThreateningOpponents int
}

// Context is the pass context handed to every phase function.
type Context struct {
	Config Config
	Combat CombatState

	// Now supplies timestamps for derived output; defaults to time.Now.
	Now func() time.Time
	// Logf receives non-fatal warnings; defaults to log.Printf.
	Logf func(format string, args ...any)
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now().UTC()
}

func (c *Context) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// capabilitiesFor assigns ruleset behavior per entity kind.
func capabilitiesFor(kind sheet.Kind) []sheet.Capability {
	switch kind {
	case sheet.KindSkill:
		return []sheet.Capability{sheet.CapabilityMastery, sheet.CapabilityFate}
	case sheet.KindTrait:
		return []sheet.Capability{sheet.CapabilityMastery}
	case sheet.KindStrike:
		return []sheet.Capability{sheet.CapabilityCombat}
	case sheet.KindEvent:
		return []sheet.Capability{sheet.CapabilityBoon}
	default:
		return nil
	}
}

// phaseOps binds a capability to its free phase functions. A nil entry
// means the capability has nothing to do in that phase.
type phaseOps struct {
	initialize func(*sheet.Entity, *Context) error
	evaluate   func(*sheet.Entity, *Context) error
	finalize   func(*sheet.Entity, *Context) error
}

func capabilityOps(capability sheet.Capability) phaseOps {
	switch capability {
	case sheet.CapabilityMastery:
		return phaseOps{
			initialize: masteryInitialize,
			evaluate:   masteryEvaluate,
		}
	case sheet.CapabilityFate:
		return phaseOps{
			initialize: fateInitialize,
			evaluate:   fateEvaluate,
			finalize:   fateFinalize,
		}
	case sheet.CapabilityCombat:
		return phaseOps{
			initialize: combatInitialize,
			evaluate:   combatEvaluate,
			finalize:   combatFinalize,
		}
	case sheet.CapabilityBoon:
		return phaseOps{
			initialize: boonInitialize,
		}
	default:
		return phaseOps{}
	}
}

// unit adapts one entity plus its capability functions to the pipeline.
type unit struct {
	derive.State
	entity *sheet.Entity
}

func (u *unit) runCapabilities(ctx *Context, pick func(phaseOps) func(*sheet.Entity, *Context) error) error {
	for _, capability := range u.entity.Capabilities {
		step := pick(capabilityOps(capability))
		if step == nil {
			continue
		}
		if err := step(u.entity, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (u *unit) Initialize(ctx *Context) error {
	return u.runCapabilities(ctx, func(ops phaseOps) func(*sheet.Entity, *Context) error { return ops.initialize })
}

func (u *unit) Evaluate(ctx *Context) error {
	return u.runCapabilities(ctx, func(ops phaseOps) func(*sheet.Entity, *Context) error { return ops.evaluate })
}

func (u *unit) Finalize(ctx *Context) error {
	return u.runCapabilities(ctx, func(ops phaseOps) func(*sheet.Entity, *Context) error { return ops.finalize })
}

// Compute builds a fresh entity tree from the snapshot and runs a full
// derivation pass over it.
//
// On error the pass is abandoned and nothing derived from it escapes:
// callers keep whatever derived state they held before. A successful
// pass returns the complete derived-state tree.
func Compute(ctx *Context, snapshot sheet.Snapshot) (*sheet.Derived, error) {
	character, err := sheet.Build(snapshot)
	if err != nil {
		return nil, err
	}

	units := make([]derive.Unit[*Context], 0, len(character.Entities))
	for _, entity := range character.Entities {
		entity.Capabilities = capabilitiesFor(entity.Kind)
		units = append(units, &unit{entity: entity})
	}

	if err := derive.Run(ctx, units); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDerivePassFailed, "derivation pass failed for "+character.ID, err)
	}

	return collectDerived(ctx, character), nil
}

// collectDerived reads the finalized stacks into the derived-state tree.
func collectDerived(ctx *Context, character *sheet.Character) *sheet.Derived {
	derived := &sheet.Derived{
		CharacterID:   character.ID,
		CharacterName: character.Name,
		ComputedAt:    ctx.now(),
	}

	for _, entity := range character.Entities {
		switch entity.Kind {
		case sheet.KindSkill:
			values := sheet.SkillValues{
				EntityID:     entity.ID,
				Name:         entity.Name,
				MasteryAudit: entity.Mastery.Contributions(),
				FateAudit:    entity.Fate.Contributions(),
			}
			values.Mastery, _ = entity.Mastery.Effective()
			if fate, ok := entity.Fate.Effective(); ok {
				values.Fate = &fate
			} else {
				values.FateReason = entity.Fate.DisabledReason()
			}
			derived.Skills = append(derived.Skills, values)
		case sheet.KindStrike:
			values := sheet.StrikeValues{
				EntityID: entity.ID,
				Name:     entity.Name,
				Reach:    entity.Reach,
				Degraded: entity.AssocSkill == nil,
			}
			values.Attack, _ = entity.Attack.Effective()
			values.Block, _ = entity.Block.Effective()
			values.Counterstrike, _ = entity.Counterstrike.Effective()
			values.Durability, _ = entity.Durability.Effective()
			derived.Strikes = append(derived.Strikes, values)
		}
	}
	return derived
}
