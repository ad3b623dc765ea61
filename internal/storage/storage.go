// Package storage defines the persistence interfaces for character
// snapshots, derived sheets, and the telemetry journal.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/greymark/internal/sheet"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// CharacterStore persists authoritative character snapshots.
type CharacterStore interface {
	PutCharacter(ctx context.Context, snapshot sheet.Snapshot) error
	GetCharacter(ctx context.Context, id string) (sheet.Snapshot, error)
	ListCharacters(ctx context.Context) ([]CharacterSummary, error)
}

// CharacterSummary is the listing projection of a stored character.
type CharacterSummary struct {
	ID        string
	Name      string
	Entities  int
	UpdatedAt time.Time
}

// SheetStore persists the most recent derived sheet per character. A
// derived sheet is a cache; Put overwrites unconditionally.
type SheetStore interface {
	PutDerived(ctx context.Context, derived sheet.Derived) error
	GetDerived(ctx context.Context, characterID string) (sheet.Derived, error)
}

// TelemetryEvent is one journal entry describing a rules-engine action.
type TelemetryEvent struct {
	ID          string
	CharacterID string
	Kind        string
	Payload     string
	CreatedAt   time.Time
}

// TelemetryStore appends to and reads the per-character journal.
type TelemetryStore interface {
	AppendEvent(ctx context.Context, event TelemetryEvent) error
	ListEvents(ctx context.Context, characterID string, limit int) ([]TelemetryEvent, error)
}

// Store is the combined persistence surface the engine service uses.
type Store interface {
	CharacterStore
	SheetStore
	TelemetryStore
	Close() error
}
