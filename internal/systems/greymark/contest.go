package greymark

import (
	"fmt"

	"github.com/louisbranch/greymark/internal/core/check"
	"github.com/louisbranch/greymark/internal/core/dice"
	"github.com/louisbranch/greymark/internal/sheet"
)

// StrikeMode selects which strike stack a contest rolls against.
type StrikeMode int

const (
	StrikeAttack StrikeMode = iota
	StrikeBlock
	StrikeCounterstrike
)

func (m StrikeMode) String() string {
	switch m {
	case StrikeAttack:
		return "attack"
	case StrikeBlock:
		return "block"
	case StrikeCounterstrike:
		return "counterstrike"
	default:
		return "unknown"
	}
}

// Contest is an immutable success-test outcome, created once per
// user-initiated contest and handed off to presentation. It is never
// persisted as part of the derived-state tree.
type Contest struct {
	check.Result

	// Roll is the raw dice breakdown behind RollTotal.
	Roll dice.Result
	// Bonus is the contextual bonus added to the die.
	Bonus int
	// FateTarget is the fate threshold consulted after a failed primary
	// test, nil when fate was unavailable or not requested.
	FateTarget *int
	// FateUsed is true when the fate substitution turned a failed test
	// into a success; Result then reflects the fate target.
	FateUsed bool
}

// SkillTest rolls 1d100 plus bonus against a skill's derived mastery.
//
// When the primary test fails, useFate is set, and the skill's fate
// stack was enabled during the pass, the same roll is resolved again
// against the fate target; a fate success substitutes for the failure.
func SkillTest(values sheet.SkillValues, bonus int, roller dice.Roller, useFate bool) (Contest, error) {
	roll, err := roller.Roll([]dice.Spec{dice.D100})
	if err != nil {
		return Contest{}, fmt.Errorf("skill test roll: %w", err)
	}
	total := roll.Total + bonus

	contest := Contest{
		Result: check.Resolve(values.Mastery, total),
		Roll:   roll,
		Bonus:  bonus,
	}

	if !contest.Success && useFate && values.Fate != nil {
		contest.FateTarget = values.Fate
		fate := check.Resolve(*values.Fate, total)
		if fate.Success {
			contest.Result = fate
			contest.FateUsed = true
		}
	}
	return contest, nil
}

// StrikeTest rolls 1d100 plus bonus against one of a strike technique's
// derived stacks.
func StrikeTest(values sheet.StrikeValues, mode StrikeMode, bonus int, roller dice.Roller) (Contest, error) {
	var target int
	switch mode {
	case StrikeAttack:
		target = values.Attack
	case StrikeBlock:
		target = values.Block
	case StrikeCounterstrike:
		target = values.Counterstrike
	default:
		return Contest{}, fmt.Errorf("strike mode %d is not supported", mode)
	}

	roll, err := roller.Roll([]dice.Spec{dice.D100})
	if err != nil {
		return Contest{}, fmt.Errorf("strike test roll: %w", err)
	}
	total := roll.Total + bonus

	return Contest{
		Result: check.Resolve(target, total),
		Roll:   roll,
		Bonus:  bonus,
	}, nil
}
