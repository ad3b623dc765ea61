package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/greymark/internal/sheet"
	"github.com/louisbranch/greymark/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "engine.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testSnapshot(id, name string) sheet.Snapshot {
	return sheet.Snapshot{
		ID:   id,
		Name: name,
		Entities: []sheet.EntityRecord{
			{ID: id + "-sk", Kind: "skill", Name: "Swords", Skill: &sheet.SkillData{Level: 45, Boosts: 2}},
		},
	}
}

func TestCharacterRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	snapshot := testSnapshot("char-1", "Brakka")
	if err := store.PutCharacter(ctx, snapshot); err != nil {
		t.Fatalf("put character: %v", err)
	}

	loaded, err := store.GetCharacter(ctx, "char-1")
	if err != nil {
		t.Fatalf("get character: %v", err)
	}
	if loaded.Name != "Brakka" {
		t.Errorf("name = %q, want Brakka", loaded.Name)
	}
	if len(loaded.Entities) != 1 || loaded.Entities[0].Skill == nil || loaded.Entities[0].Skill.Level != 45 {
		t.Errorf("entities did not round-trip: %+v", loaded.Entities)
	}
}

func TestPutCharacterOverwrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutCharacter(ctx, testSnapshot("char-1", "Brakka")); err != nil {
		t.Fatalf("put character: %v", err)
	}
	updated := testSnapshot("char-1", "Brakka the Bold")
	if err := store.PutCharacter(ctx, updated); err != nil {
		t.Fatalf("overwrite character: %v", err)
	}

	loaded, err := store.GetCharacter(ctx, "char-1")
	if err != nil {
		t.Fatalf("get character: %v", err)
	}
	if loaded.Name != "Brakka the Bold" {
		t.Errorf("name = %q, want overwritten value", loaded.Name)
	}

	summaries, err := store.ListCharacters(ctx)
	if err != nil {
		t.Fatalf("list characters: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected one character after overwrite, got %d", len(summaries))
	}
}

func TestGetCharacterMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetCharacter(context.Background(), "nope")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListCharactersOrdersByName(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, c := range []struct{ id, name string }{
		{"char-2", "Yrsa"},
		{"char-1", "Brakka"},
	} {
		if err := store.PutCharacter(ctx, testSnapshot(c.id, c.name)); err != nil {
			t.Fatalf("put character %s: %v", c.id, err)
		}
	}

	summaries, err := store.ListCharacters(ctx)
	if err != nil {
		t.Fatalf("list characters: %v", err)
	}
	if len(summaries) != 2 || summaries[0].Name != "Brakka" || summaries[1].Name != "Yrsa" {
		t.Errorf("unexpected listing order: %+v", summaries)
	}
	if summaries[0].Entities != 1 {
		t.Errorf("entity count = %d, want 1", summaries[0].Entities)
	}
}

func TestDerivedRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	fate := 45
	derived := sheet.Derived{
		CharacterID:   "char-1",
		CharacterName: "Brakka",
		ComputedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Skills: []sheet.SkillValues{
			{EntityID: "sk-1", Name: "Swords", Mastery: 60, Fate: &fate},
		},
		Strikes: []sheet.StrikeValues{
			{EntityID: "st-1", Name: "Overhead Cut", Attack: 64, Block: 60, Counterstrike: 60, Durability: 14, Reach: 90},
		},
	}
	if err := store.PutDerived(ctx, derived); err != nil {
		t.Fatalf("put derived: %v", err)
	}

	loaded, err := store.GetDerived(ctx, "char-1")
	if err != nil {
		t.Fatalf("get derived: %v", err)
	}
	if !loaded.ComputedAt.Equal(derived.ComputedAt) {
		t.Errorf("computed at = %v, want %v", loaded.ComputedAt, derived.ComputedAt)
	}
	skill := loaded.SkillByName("Swords")
	if skill == nil || skill.Mastery != 60 || skill.Fate == nil || *skill.Fate != 45 {
		t.Errorf("skill values did not round-trip: %+v", skill)
	}
	strike := loaded.StrikeByName("Overhead Cut")
	if strike == nil || strike.Attack != 64 || strike.Reach != 90 {
		t.Errorf("strike values did not round-trip: %+v", strike)
	}
}

func TestGetDerivedMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetDerived(context.Background(), "char-1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTelemetryJournal(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, kind := range []string{"sheet_compute", "skill_check", "strike_roll"} {
		event := storage.TelemetryEvent{
			ID:          "ev-" + kind,
			CharacterID: "char-1",
			Kind:        kind,
			Payload:     `{"ok":true}`,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.AppendEvent(ctx, event); err != nil {
			t.Fatalf("append event %s: %v", kind, err)
		}
	}

	events, err := store.ListEvents(ctx, "char-1", 2)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected limit to cap results, got %d", len(events))
	}
	if events[0].Kind != "strike_roll" || events[1].Kind != "skill_check" {
		t.Errorf("expected newest-first ordering, got %s then %s", events[0].Kind, events[1].Kind)
	}

	all, err := store.ListEvents(ctx, "char-1", 0)
	if err != nil {
		t.Fatalf("list all events: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 events without a limit, got %d", len(all))
	}

	other, err := store.ListEvents(ctx, "char-2", 0)
	if err != nil {
		t.Fatalf("list other character: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no events for another character, got %d", len(other))
	}
}
