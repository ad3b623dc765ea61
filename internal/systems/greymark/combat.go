package greymark

import (
	"fmt"

	apperrors "github.com/louisbranch/greymark/internal/errors"
	"github.com/louisbranch/greymark/internal/modifier"
	"github.com/louisbranch/greymark/internal/sheet"
)

// Contribution source labels used by combat computations.
const (
	sourceOutnumbered = "outnumbered"
)

// combatInitialize allocates the strike stacks and resolves structural
// associations: the skill the technique rolls with (a name lookup, not a
// value read) and the gear the technique is nested in.
func combatInitialize(e *sheet.Entity, _ *Context) error {
	e.Attack = modifier.New("attack")
	e.Block = modifier.New("block")
	e.Counterstrike = modifier.New("counterstrike")
	e.Durability = modifier.New("durability")

	// A missing skill is a degraded outcome, not an error; it is
	// reported during finalize when the stacks are assembled.
	e.AssocSkill = e.Owner().SkillNamed(e.Strike.SkillName)

	if e.Strike.ContainerID != "" {
		container := e.Owner().EntityByID(e.Strike.ContainerID)
		if container == nil || container.Kind != sheet.KindGear {
			return unsupportedContainer(e, container)
		}
		e.Container = container
	}
	return nil
}

// combatEvaluate seeds the stacks from static configuration: the
// technique's impact and the structural state of its parent gear.
func combatEvaluate(e *sheet.Entity, _ *Context) error {
	e.Attack.SetBase(e.Strike.Impact)

	if e.Container != nil {
		gear := e.Container.Gear
		e.Durability.SetBase(gear.Durability)
		if gear.Weapon {
			e.Reach = gear.Length
		}
	}
	return nil
}

// combatFinalize folds the associated skill's finalized proficiency into
// the strike stacks and applies the numerical-superiority penalty. Both
// reads depend on sibling evaluate output, so they wait for the barrier.
func combatFinalize(e *sheet.Entity, ctx *Context) error {
	if e.AssocSkill == nil {
		ctx.logf("strike %q: no skill named %q on %s, using unboosted stacks",
			e.Name, e.Strike.SkillName, e.Owner().ID)
	} else {
		e.Attack.Merge(e.AssocSkill.Mastery, true)
		e.Block.Merge(e.AssocSkill.Mastery, true)
		e.Counterstrike.Merge(e.AssocSkill.Mastery, true)
	}

	if ctx.Combat.Active {
		penalty := outnumberedPenalty(ctx.Combat.ThreateningOpponents)
		if penalty != 0 {
			e.Block.Add(sourceOutnumbered, penalty)
			e.Counterstrike.Add(sourceOutnumbered, penalty)
		}
	}
	return nil
}

// outnumberedPenalty computes the penalty for facing several opponents:
// every threatening opponent beyond the first costs OutnumberedPenaltyStep.
func outnumberedPenalty(threateningOpponents int) int {
	return max(threateningOpponents-1, 0) * OutnumberedPenaltyStep
}

// boonInitialize resolves an event's structural container. Events may be
// nested in gear or sit directly on the character; any other container
// kind is unsupported and aborts the phase.
func boonInitialize(e *sheet.Entity, _ *Context) error {
	if e.Event.ContainerID == "" {
		return nil
	}
	container := e.Owner().EntityByID(e.Event.ContainerID)
	if container == nil || container.Kind != sheet.KindGear {
		return unsupportedContainer(e, container)
	}
	e.Container = container
	return nil
}

func unsupportedContainer(e *sheet.Entity, container *sheet.Entity) error {
	containerKind := "missing"
	if container != nil {
		containerKind = container.Kind.String()
	}
	return apperrors.WithMetadata(
		apperrors.CodeDeriveUnsupportedContainer,
		fmt.Sprintf("entity %s nested in unsupported container kind %s", e.ID, containerKind),
		map[string]string{"ID": e.ID, "Container": containerKind},
	)
}
