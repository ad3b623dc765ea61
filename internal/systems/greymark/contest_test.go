package greymark

import (
	"testing"

	"github.com/louisbranch/greymark/internal/core/dice"
	"github.com/louisbranch/greymark/internal/sheet"
)

// fixedRoller returns a scripted sequence of totals.
type fixedRoller struct {
	totals []int
	calls  int
}

func (r *fixedRoller) Roll(specs []dice.Spec) (dice.Result, error) {
	total := r.totals[r.calls]
	r.calls++
	return dice.Result{Rolls: []dice.Roll{{Sides: specs[0].Sides, Results: []int{total}, Total: total}}, Total: total}, nil
}

func TestSkillTestStrictlyBeatsTarget(t *testing.T) {
	fate := 45
	values := sheet.SkillValues{Name: "Swords", Mastery: 60, Fate: &fate}

	tests := []struct {
		name        string
		roll        int
		bonus       int
		wantSuccess bool
		wantMargin  int
	}{
		{"clear success", 70, 0, true, 10},
		{"tie fails", 60, 0, false, 0},
		{"one over succeeds", 61, 0, true, 1},
		{"bonus turns failure around", 55, 10, true, 5},
		{"penalty turns success around", 65, -10, false, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := &fixedRoller{totals: []int{tt.roll}}
			contest, err := SkillTest(values, tt.bonus, roller, false)
			if err != nil {
				t.Fatalf("skill test: %v", err)
			}
			if contest.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", contest.Success, tt.wantSuccess)
			}
			if contest.Margin != tt.wantMargin {
				t.Errorf("margin = %d, want %d", contest.Margin, tt.wantMargin)
			}
			if contest.Roll.Total != tt.roll {
				t.Errorf("roll total = %d, want %d", contest.Roll.Total, tt.roll)
			}
		})
	}
}

func TestSkillTestFateSubstitution(t *testing.T) {
	fate := 45

	tests := []struct {
		name         string
		values       sheet.SkillValues
		roll         int
		useFate      bool
		wantSuccess  bool
		wantFateUsed bool
	}{
		{
			name:         "fate rescues a failed test",
			values:       sheet.SkillValues{Mastery: 60, Fate: &fate},
			roll:         50, // misses mastery 60, beats fate 45
			useFate:      true,
			wantSuccess:  true,
			wantFateUsed: true,
		},
		{
			name:        "fate target also missed",
			values:      sheet.SkillValues{Mastery: 60, Fate: &fate},
			roll:        40,
			useFate:     true,
			wantSuccess: false,
		},
		{
			name:        "fate not requested",
			values:      sheet.SkillValues{Mastery: 60, Fate: &fate},
			roll:        50,
			useFate:     false,
			wantSuccess: false,
		},
		{
			name:        "fate disabled on the sheet",
			values:      sheet.SkillValues{Mastery: 60, FateReason: ReasonFateNone},
			roll:        50,
			useFate:     true,
			wantSuccess: false,
		},
		{
			name:        "primary success skips fate",
			values:      sheet.SkillValues{Mastery: 40, Fate: &fate},
			roll:        50,
			useFate:     true,
			wantSuccess: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := &fixedRoller{totals: []int{tt.roll}}
			contest, err := SkillTest(tt.values, 0, roller, tt.useFate)
			if err != nil {
				t.Fatalf("skill test: %v", err)
			}
			if contest.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", contest.Success, tt.wantSuccess)
			}
			if contest.FateUsed != tt.wantFateUsed {
				t.Errorf("fate used = %v, want %v", contest.FateUsed, tt.wantFateUsed)
			}
		})
	}
}

func TestStrikeTestModes(t *testing.T) {
	values := sheet.StrikeValues{Name: "Overhead Cut", Attack: 64, Block: 40, Counterstrike: 55}

	tests := []struct {
		name        string
		mode        StrikeMode
		roll        int
		wantSuccess bool
		wantTarget  int
	}{
		{"attack success", StrikeAttack, 70, true, 64},
		{"attack failure", StrikeAttack, 64, false, 64},
		{"block against penalized stack", StrikeBlock, 41, true, 40},
		{"counterstrike failure", StrikeCounterstrike, 50, false, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := &fixedRoller{totals: []int{tt.roll}}
			contest, err := StrikeTest(values, tt.mode, 0, roller)
			if err != nil {
				t.Fatalf("strike test: %v", err)
			}
			if contest.Target != tt.wantTarget {
				t.Errorf("target = %d, want %d", contest.Target, tt.wantTarget)
			}
			if contest.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", contest.Success, tt.wantSuccess)
			}
		})
	}
}

func TestStrikeTestRejectsUnknownMode(t *testing.T) {
	roller := &fixedRoller{totals: []int{50}}
	if _, err := StrikeTest(sheet.StrikeValues{}, StrikeMode(99), 0, roller); err == nil {
		t.Fatalf("expected unknown mode to be rejected")
	}
}
