// Package sqlite provides the SQLite-backed engine storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/greymark/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/greymark/internal/sheet"
	"github.com/louisbranch/greymark/internal/storage"
	"github.com/louisbranch/greymark/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists engine state in SQLite. Character snapshots and derived
// sheets are stored as JSON documents with indexed metadata columns.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Store = (*Store)(nil)

// Open opens a SQLite engine store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// PutCharacter inserts or replaces one character snapshot.
func (s *Store) PutCharacter(ctx context.Context, snapshot sheet.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(snapshot.ID) == "" {
		return fmt.Errorf("character id is required")
	}

	document, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO characters (id, name, entity_count, snapshot, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   entity_count = excluded.entity_count,
		   snapshot = excluded.snapshot,
		   updated_at = excluded.updated_at`,
		snapshot.ID,
		snapshot.Name,
		len(snapshot.Entities),
		string(document),
		toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("put character %s: %w", snapshot.ID, err)
	}
	return nil
}

// GetCharacter loads one character snapshot by id.
func (s *Store) GetCharacter(ctx context.Context, id string) (sheet.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return sheet.Snapshot{}, err
	}
	if s == nil || s.sqlDB == nil {
		return sheet.Snapshot{}, fmt.Errorf("storage is not configured")
	}

	var document string
	err := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT snapshot FROM characters WHERE id = ?",
		id,
	).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return sheet.Snapshot{}, storage.ErrNotFound
	}
	if err != nil {
		return sheet.Snapshot{}, fmt.Errorf("get character %s: %w", id, err)
	}

	var snapshot sheet.Snapshot
	if err := json.Unmarshal([]byte(document), &snapshot); err != nil {
		return sheet.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", id, err)
	}
	return snapshot, nil
}

// ListCharacters returns summaries of every stored character ordered by name.
func (s *Store) ListCharacters(ctx context.Context) ([]storage.CharacterSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		"SELECT id, name, entity_count, updated_at FROM characters ORDER BY name, id",
	)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []storage.CharacterSummary
	for rows.Next() {
		var summary storage.CharacterSummary
		var updatedAt int64
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Entities, &updatedAt); err != nil {
			return nil, fmt.Errorf("list characters: %w", err)
		}
		summary.UpdatedAt = fromMillis(updatedAt)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return summaries, nil
}

// PutDerived overwrites the cached derived sheet for a character.
func (s *Store) PutDerived(ctx context.Context, derived sheet.Derived) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(derived.CharacterID) == "" {
		return fmt.Errorf("character id is required")
	}

	document, err := json.Marshal(derived)
	if err != nil {
		return fmt.Errorf("encode derived sheet: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO derived_sheets (character_id, derived, computed_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(character_id) DO UPDATE SET
		   derived = excluded.derived,
		   computed_at = excluded.computed_at`,
		derived.CharacterID,
		string(document),
		toMillis(derived.ComputedAt),
	)
	if err != nil {
		return fmt.Errorf("put derived sheet %s: %w", derived.CharacterID, err)
	}
	return nil
}

// GetDerived loads the cached derived sheet for a character.
func (s *Store) GetDerived(ctx context.Context, characterID string) (sheet.Derived, error) {
	if err := ctx.Err(); err != nil {
		return sheet.Derived{}, err
	}
	if s == nil || s.sqlDB == nil {
		return sheet.Derived{}, fmt.Errorf("storage is not configured")
	}

	var document string
	err := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT derived FROM derived_sheets WHERE character_id = ?",
		characterID,
	).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return sheet.Derived{}, storage.ErrNotFound
	}
	if err != nil {
		return sheet.Derived{}, fmt.Errorf("get derived sheet %s: %w", characterID, err)
	}

	var derived sheet.Derived
	if err := json.Unmarshal([]byte(document), &derived); err != nil {
		return sheet.Derived{}, fmt.Errorf("decode derived sheet %s: %w", characterID, err)
	}
	return derived, nil
}

// AppendEvent writes one telemetry journal entry.
func (s *Store) AppendEvent(ctx context.Context, event storage.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(event.ID) == "" {
		return fmt.Errorf("event id is required")
	}
	if strings.TrimSpace(event.Kind) == "" {
		return fmt.Errorf("event kind is required")
	}

	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO telemetry_events (id, character_id, kind, payload, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		event.ID,
		event.CharacterID,
		event.Kind,
		event.Payload,
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("append telemetry event %s: %w", event.ID, err)
	}
	return nil
}

// ListEvents returns the newest journal entries for a character, most
// recent first. A non-positive limit returns everything.
func (s *Store) ListEvents(ctx context.Context, characterID string, limit int) ([]storage.TelemetryEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, character_id, kind, payload, created_at
		 FROM telemetry_events
		 WHERE character_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		characterID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list telemetry events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []storage.TelemetryEvent
	for rows.Next() {
		var event storage.TelemetryEvent
		var createdAt int64
		if err := rows.Scan(&event.ID, &event.CharacterID, &event.Kind, &event.Payload, &createdAt); err != nil {
			return nil, fmt.Errorf("list telemetry events: %w", err)
		}
		event.CreatedAt = fromMillis(createdAt)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list telemetry events: %w", err)
	}
	return events, nil
}
