package greymark

import (
	"github.com/louisbranch/greymark/internal/modifier"
	"github.com/louisbranch/greymark/internal/sheet"
)

// Contribution source/tag labels used by mastery and fate computations.
const (
	sourceMagic    = "magic"
	tagFateBonus   = "fate-bonus"
	tagMagic       = "magic"
	fateStackLabel = "fate"
)

// masteryInitialize allocates the proficiency stack and seeds it with the
// persisted level. Applies to skills and traits alike.
func masteryInitialize(e *sheet.Entity, _ *Context) error {
	e.Mastery = modifier.New(e.Name)
	switch {
	case e.Skill != nil:
		e.Mastery.SetBase(e.Skill.Level)
	case e.Trait != nil:
		e.Mastery.SetBase(e.Trait.Level)
	}
	return nil
}

// masteryEvaluate applies pending boosts to a skill's proficiency base.
// The computation is self-contained, so it belongs in evaluate. Traits
// have no boost growth and keep their initialized base.
func masteryEvaluate(e *sheet.Entity, _ *Context) error {
	if e.Skill == nil || e.Skill.Boosts == 0 {
		return nil
	}
	boosted := ApplyBoosts(e.Skill.Level, e.Skill.Boosts, e.Skill.MaxTarget)
	e.Mastery.SetBase(boosted)
	return nil
}

// fateInitialize allocates the luck sub-stack backing a skill.
func fateInitialize(e *sheet.Entity, _ *Context) error {
	e.Fate = modifier.New(fateStackLabel)
	return nil
}

// fateEvaluate handles the self-contained fate rules: the aura formula
// restriction, the default base mode, and the skill's magic modifier.
func fateEvaluate(e *sheet.Entity, ctx *Context) error {
	for _, attr := range e.Skill.Formula {
		if attr == ctx.Config.RestrictedAttr {
			// Aura-dependent skills can never be backed by fate,
			// regardless of any other setting.
			e.Fate.Disable(ReasonFateAuraFormula)
			break
		}
	}

	if ctx.Config.DefaultFateBase {
		e.Fate.SetBase(FateBaseDefault)
	}
	if e.Skill.MagicModifier != 0 {
		e.Fate.Add(sourceMagic, e.Skill.MagicModifier, tagMagic)
	}
	return nil
}

// fateFinalize performs the sibling-dependent fate rules: deriving the
// base from the owner's fate trait and aggregating fate bonus events.
// Both scan the owner's collection, so they must wait for the evaluate
// barrier.
func fateFinalize(e *sheet.Entity, ctx *Context) error {
	if !ctx.Config.DefaultFateBase {
		trait := e.Owner().TraitTagged(ctx.Config.FateTraitTag)
		if trait == nil {
			e.Fate.Disable(ReasonFateNone)
		} else if proficiency, ok := trait.Mastery.Effective(); ok {
			e.Fate.SetBase(proficiency)
		}
	}

	for _, event := range e.Owner().OfKind(sheet.KindEvent) {
		if event.Event.SkillName == e.Name && event.Event.FateBonus != 0 {
			e.Fate.Add(event.Name, event.Event.FateBonus, tagFateBonus)
		}
	}
	return nil
}
