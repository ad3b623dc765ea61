// Package telemetry records rules-engine actions in the journal store.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/louisbranch/greymark/internal/id"
	"github.com/louisbranch/greymark/internal/storage"
)

// Event kinds written by the engine service.
const (
	KindCharacterImport = "character_import"
	KindSheetCompute    = "sheet_compute"
	KindSkillCheck      = "skill_check"
	KindStrikeRoll      = "strike_roll"
	KindSkillImprove    = "skill_improve"
)

// Emitter records engine actions. A nil Emitter or nil store drops
// events silently; journaling is never load-bearing for a tool call.
type Emitter struct {
	store storage.TelemetryStore
	clock func() time.Time
}

// NewEmitter creates an emitter backed by the given journal store.
func NewEmitter(store storage.TelemetryStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit journals one event. The payload is marshaled to JSON; an event
// id and timestamp are assigned when absent.
func (e *Emitter) Emit(ctx context.Context, characterID, kind string, payload any) error {
	if e == nil || e.store == nil {
		return nil
	}

	eventID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("telemetry event id: %w", err)
	}

	encoded := []byte("{}")
	if payload != nil {
		encoded, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode telemetry payload: %w", err)
		}
	}

	now := time.Now
	if e.clock != nil {
		now = e.clock
	}

	return e.store.AppendEvent(ctx, storage.TelemetryEvent{
		ID:          eventID,
		CharacterID: characterID,
		Kind:        kind,
		Payload:     string(encoded),
		CreatedAt:   now().UTC(),
	})
}
