package modifier

import "testing"

func TestEffectiveIsBasePlusContributions(t *testing.T) {
	tests := []struct {
		name   string
		base   int
		deltas []int
		want   int
	}{
		{"base only", 40, nil, 40},
		{"single bonus", 40, []int{5}, 45},
		{"bonus and penalty", 40, []int{5, -10}, 35},
		{"zero base", 0, []int{3, 3, 3}, 9},
		{"negative total", 10, []int{-20}, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("test")
			s.SetBase(tt.base)
			for i, d := range tt.deltas {
				s.Add("src", d, "case", string(rune('a'+i)))
			}
			got, ok := s.Effective()
			if !ok {
				t.Fatalf("stack unexpectedly disabled")
			}
			if got != tt.want {
				t.Errorf("Effective() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEffectiveIsOrderIndependent(t *testing.T) {
	a := New("a")
	a.SetBase(12)
	a.Add("gear", 4)
	a.Add("trait", -2)
	a.Add("event", 7)

	b := New("b")
	b.SetBase(12)
	b.Add("event", 7)
	b.Add("trait", -2)
	b.Add("gear", 4)

	av, _ := a.Effective()
	bv, _ := b.Effective()
	if av != bv {
		t.Errorf("insertion order changed the result: %d vs %d", av, bv)
	}
}

func TestContributionOrderIsPreserved(t *testing.T) {
	s := New("audit")
	s.Add("first", 1)
	s.Add("second", 2)
	s.Add("third", 3)

	got := s.Contributions()
	if len(got) != 3 {
		t.Fatalf("expected 3 contributions, got %d", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Source != want {
			t.Errorf("contribution %d source = %q, want %q", i, got[i].Source, want)
		}
	}
}

func TestDisableSuppressesEffectiveButKeepsAudit(t *testing.T) {
	s := New("fate")
	s.SetBase(50)
	s.Disable("no fate available")
	s.Add("amulet", 5)

	if _, ok := s.Effective(); ok {
		t.Fatalf("expected disabled stack to report no effective value")
	}
	if len(s.Contributions()) != 1 {
		t.Errorf("expected audit trail to keep recording while disabled")
	}
	if s.DisabledReason() != "no fate available" {
		t.Errorf("unexpected reason %q", s.DisabledReason())
	}
}

func TestDisableFirstReasonWins(t *testing.T) {
	s := New("fate")
	s.Disable("aura formula")
	s.Disable("no fate available")

	if got := s.DisabledReason(); got != "aura formula" {
		t.Errorf("expected first reason to win, got %q", got)
	}
}

func TestEffectiveCacheInvalidation(t *testing.T) {
	s := New("skill")
	s.SetBase(10)
	if v, _ := s.Effective(); v != 10 {
		t.Fatalf("Effective() = %d, want 10", v)
	}

	s.Add("boost", 5)
	if v, _ := s.Effective(); v != 15 {
		t.Errorf("after Add, Effective() = %d, want 15", v)
	}

	s.SetBase(20)
	if v, _ := s.Effective(); v != 25 {
		t.Errorf("after SetBase, Effective() = %d, want 25", v)
	}
}

func TestSetBaseOverwritesSilently(t *testing.T) {
	s := New("skill")
	s.SetBase(10)
	s.SetBase(13)
	if s.Base() != 13 {
		t.Errorf("Base() = %d, want 13", s.Base())
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name        string
		includeBase bool
		want        int
	}{
		{"with base", true, 47},
		{"without base", false, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skill := New("swords")
			skill.SetBase(40)
			skill.Add("boost", 7)

			attack := New("attack")
			attack.SetBase(10)
			attack.Merge(skill, tt.includeBase)

			got, _ := attack.Effective()
			if got != 10+tt.want {
				t.Errorf("Effective() = %d, want %d", got, 10+tt.want)
			}

			contribs := attack.Contributions()
			if len(contribs) != 1 {
				t.Fatalf("expected 1 contribution, got %d", len(contribs))
			}
			if contribs[0].Source != "swords" {
				t.Errorf("contribution source = %q, want source stack name", contribs[0].Source)
			}
			if len(contribs[0].Tags) != 1 || contribs[0].Tags[0] != TagMerged {
				t.Errorf("contribution tags = %v, want [%q]", contribs[0].Tags, TagMerged)
			}
		})
	}
}

func TestMergeFromDisabledSourceContributesNothing(t *testing.T) {
	fate := New("fate")
	fate.SetBase(50)
	fate.Disable("no fate available")

	target := New("attack")
	target.SetBase(10)
	target.Merge(fate, true)

	if got, _ := target.Effective(); got != 10 {
		t.Errorf("Effective() = %d, want 10", got)
	}
	if len(target.Contributions()) != 0 {
		t.Errorf("expected no contribution from a disabled source")
	}
}

func TestMergeNilSourceIsNoop(t *testing.T) {
	target := New("attack")
	target.SetBase(10)
	target.Merge(nil, true)
	if got, _ := target.Effective(); got != 10 {
		t.Errorf("Effective() = %d, want 10", got)
	}
}
