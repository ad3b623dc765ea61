// Package domain implements the MCP tool surface of the rules engine.
// Handlers call the rules packages in-process and persist through the
// engine store.
package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/greymark/internal/core/dice"
	apperrors "github.com/louisbranch/greymark/internal/errors"
	"github.com/louisbranch/greymark/internal/random"
	"github.com/louisbranch/greymark/internal/sheet"
	"github.com/louisbranch/greymark/internal/storage"
	"github.com/louisbranch/greymark/internal/systems/greymark"
	"github.com/louisbranch/greymark/internal/telemetry"
)

const tracerName = "greymark/engine"

// Deps carries the collaborators every tool handler needs.
type Deps struct {
	Store   storage.Store
	Emitter *telemetry.Emitter
	Rules   greymark.Config
	Locale  string
}

// toolError renders domain errors in the configured locale; other
// errors pass through untouched.
func (d Deps) toolError(err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return fmt.Errorf("%s", apperrors.Localize(err, d.Locale))
	}
	return err
}

// CharacterImportHandler validates and stores a character snapshot.
func CharacterImportHandler(deps Deps) mcp.ToolHandlerFor[CharacterImportInput, CharacterImportResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CharacterImportInput) (*mcp.CallToolResult, CharacterImportResult, error) {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "character_import")
		defer span.End()

		var snapshot sheet.Snapshot
		if err := json.Unmarshal([]byte(input.Snapshot), &snapshot); err != nil {
			return nil, CharacterImportResult{}, fmt.Errorf("decode snapshot: %w", err)
		}
		if err := snapshot.Validate(); err != nil {
			return nil, CharacterImportResult{}, deps.toolError(err)
		}
		if err := deps.Store.PutCharacter(ctx, snapshot); err != nil {
			return nil, CharacterImportResult{}, fmt.Errorf("store character: %w", err)
		}
		span.SetAttributes(attribute.String("character.id", snapshot.ID))

		journal(ctx, deps, snapshot.ID, telemetry.KindCharacterImport, map[string]any{
			"entities": len(snapshot.Entities),
		})
		return nil, CharacterImportResult{
			ID:       snapshot.ID,
			Name:     snapshot.Name,
			Entities: len(snapshot.Entities),
		}, nil
	}
}

// SheetComputeHandler runs a derivation pass and caches the result.
func SheetComputeHandler(deps Deps) mcp.ToolHandlerFor[SheetComputeInput, SheetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SheetComputeInput) (*mcp.CallToolResult, SheetResult, error) {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "sheet_compute")
		defer span.End()
		span.SetAttributes(attribute.String("character.id", input.CharacterID))

		combat := greymark.CombatState{
			Active:               input.CombatActive,
			ThreateningOpponents: input.ThreateningOpponents,
		}
		started := time.Now()
		derived, err := computeSheet(ctx, deps, input.CharacterID, combat)
		if err != nil {
			return nil, SheetResult{}, err
		}
		if err := deps.Store.PutDerived(ctx, *derived); err != nil {
			return nil, SheetResult{}, fmt.Errorf("cache derived sheet: %w", err)
		}

		degraded := 0
		for _, strike := range derived.Strikes {
			if strike.Degraded {
				degraded++
			}
		}
		journal(ctx, deps, input.CharacterID, telemetry.KindSheetCompute, map[string]any{
			"skills":      len(derived.Skills),
			"strikes":     len(derived.Strikes),
			"degraded":    degraded,
			"duration_ms": time.Since(started).Milliseconds(),
		})
		return nil, toSheetResult(*derived), nil
	}
}

// SheetGetHandler reads the cached derived sheet for a character.
func SheetGetHandler(deps Deps) mcp.ToolHandlerFor[SheetGetInput, SheetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SheetGetInput) (*mcp.CallToolResult, SheetResult, error) {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "sheet_get")
		defer span.End()

		derived, err := deps.Store.GetDerived(ctx, input.CharacterID)
		if err != nil {
			return nil, SheetResult{}, fmt.Errorf("load derived sheet: %w", err)
		}
		return nil, toSheetResult(derived), nil
	}
}

// SkillCheckHandler rolls a success test against a derived skill.
func SkillCheckHandler(deps Deps) mcp.ToolHandlerFor[SkillCheckInput, ContestResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SkillCheckInput) (*mcp.CallToolResult, ContestResult, error) {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "skill_check")
		defer span.End()

		derived, err := computeSheet(ctx, deps, input.CharacterID, greymark.CombatState{})
		if err != nil {
			return nil, ContestResult{}, err
		}
		values := derived.SkillByName(input.Skill)
		if values == nil {
			return nil, ContestResult{}, fmt.Errorf("character %s has no skill named %q", input.CharacterID, input.Skill)
		}

		seed, err := random.SeedOrNew(input.Seed)
		if err != nil {
			return nil, ContestResult{}, err
		}
		contest, err := greymark.SkillTest(*values, input.Bonus, dice.NewSeededRoller(seed), input.UseFate)
		if err != nil {
			return nil, ContestResult{}, deps.toolError(err)
		}

		result := toContestResult(values.Name, contest, seed)
		journal(ctx, deps, input.CharacterID, telemetry.KindSkillCheck, result)
		return nil, result, nil
	}
}

// StrikeRollHandler rolls a contest against one of a strike's stacks.
func StrikeRollHandler(deps Deps) mcp.ToolHandlerFor[StrikeRollInput, ContestResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StrikeRollInput) (*mcp.CallToolResult, ContestResult, error) {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "strike_roll")
		defer span.End()

		mode, err := parseStrikeMode(input.Mode)
		if err != nil {
			return nil, ContestResult{}, err
		}

		combat := greymark.CombatState{
			Active:               input.CombatActive,
			ThreateningOpponents: input.ThreateningOpponents,
		}
		derived, err := computeSheet(ctx, deps, input.CharacterID, combat)
		if err != nil {
			return nil, ContestResult{}, err
		}
		values := derived.StrikeByName(input.Strike)
		if values == nil {
			return nil, ContestResult{}, fmt.Errorf("character %s has no strike named %q", input.CharacterID, input.Strike)
		}

		seed, err := random.SeedOrNew(input.Seed)
		if err != nil {
			return nil, ContestResult{}, err
		}
		contest, err := greymark.StrikeTest(*values, mode, input.Bonus, dice.NewSeededRoller(seed))
		if err != nil {
			return nil, ContestResult{}, deps.toolError(err)
		}

		result := toContestResult(values.Name, contest, seed)
		journal(ctx, deps, input.CharacterID, telemetry.KindStrikeRoll, result)
		return nil, result, nil
	}
}

// RollDiceHandler rolls an arbitrary dice pool.
func RollDiceHandler(deps Deps) mcp.ToolHandlerFor[RollDiceInput, RollDiceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollDiceInput) (*mcp.CallToolResult, RollDiceResult, error) {
		_, span := otel.Tracer(tracerName).Start(ctx, "roll_dice")
		defer span.End()

		specs := make([]dice.Spec, 0, len(input.Dice))
		for _, spec := range input.Dice {
			specs = append(specs, dice.Spec{Sides: spec.Sides, Count: spec.Count})
		}

		seed, err := random.SeedOrNew(input.Seed)
		if err != nil {
			return nil, RollDiceResult{}, err
		}
		rolled, err := dice.RollDice(dice.Request{Dice: specs, Seed: seed})
		if err != nil {
			return nil, RollDiceResult{}, deps.toolError(err)
		}

		result := RollDiceResult{Total: rolled.Total, Seed: seed}
		for _, roll := range rolled.Rolls {
			result.Values = append(result.Values, roll.Results...)
		}
		return nil, result, nil
	}
}

// SkillImproveHandler banks a skill's pending boosts into its level.
func SkillImproveHandler(deps Deps) mcp.ToolHandlerFor[SkillImproveInput, SkillImproveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SkillImproveInput) (*mcp.CallToolResult, SkillImproveResult, error) {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "skill_improve")
		defer span.End()

		snapshot, err := deps.Store.GetCharacter(ctx, input.CharacterID)
		if err != nil {
			return nil, SkillImproveResult{}, fmt.Errorf("load character: %w", err)
		}

		var record *sheet.EntityRecord
		for i := range snapshot.Entities {
			entry := &snapshot.Entities[i]
			if entry.Skill != nil && entry.Name == input.Skill {
				record = entry
				break
			}
		}
		if record == nil {
			return nil, SkillImproveResult{}, fmt.Errorf("character %s has no skill named %q", input.CharacterID, input.Skill)
		}

		result := SkillImproveResult{
			Skill:    record.Name,
			OldLevel: record.Skill.Level,
			NewLevel: record.Skill.Level,
			Boosts:   record.Skill.Boosts,
		}
		if record.Skill.Boosts == 0 {
			return nil, result, nil
		}

		result.NewLevel = greymark.ApplyBoosts(record.Skill.Level, record.Skill.Boosts, record.Skill.MaxTarget)
		record.Skill.Level = result.NewLevel
		record.Skill.Boosts = 0

		if err := deps.Store.PutCharacter(ctx, snapshot); err != nil {
			return nil, SkillImproveResult{}, fmt.Errorf("store character: %w", err)
		}

		journal(ctx, deps, input.CharacterID, telemetry.KindSkillImprove, result)
		return nil, result, nil
	}
}

func computeSheet(ctx context.Context, deps Deps, characterID string, combat greymark.CombatState) (*sheet.Derived, error) {
	snapshot, err := deps.Store.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("load character: %w", err)
	}
	passCtx := &greymark.Context{Config: deps.Rules, Combat: combat}
	derived, err := greymark.Compute(passCtx, snapshot)
	if err != nil {
		return nil, deps.toolError(err)
	}
	return derived, nil
}

func parseStrikeMode(value string) (greymark.StrikeMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "attack", "":
		return greymark.StrikeAttack, nil
	case "block":
		return greymark.StrikeBlock, nil
	case "counterstrike":
		return greymark.StrikeCounterstrike, nil
	default:
		return 0, fmt.Errorf("strike mode %q is not supported", value)
	}
}

func toSheetResult(derived sheet.Derived) SheetResult {
	result := SheetResult{
		CharacterID:   derived.CharacterID,
		CharacterName: derived.CharacterName,
		ComputedAt:    derived.ComputedAt.UTC().Format(time.RFC3339),
	}
	for _, skill := range derived.Skills {
		result.Skills = append(result.Skills, SkillSheetEntry{
			Name:       skill.Name,
			Mastery:    skill.Mastery,
			Fate:       skill.Fate,
			FateReason: skill.FateReason,
		})
	}
	for _, strike := range derived.Strikes {
		result.Strikes = append(result.Strikes, StrikeSheetEntry{
			Name:          strike.Name,
			Attack:        strike.Attack,
			Block:         strike.Block,
			Counterstrike: strike.Counterstrike,
			Durability:    strike.Durability,
			Reach:         strike.Reach,
			Degraded:      strike.Degraded,
		})
	}
	return result
}

func toContestResult(target string, contest greymark.Contest, seed int64) ContestResult {
	return ContestResult{
		Target:     target,
		TargetVal:  contest.Target,
		Roll:       contest.Roll.Total,
		Bonus:      contest.Bonus,
		Total:      contest.Roll.Total + contest.Bonus,
		Success:    contest.Success,
		Margin:     contest.Margin,
		FateTarget: contest.FateTarget,
		FateUsed:   contest.FateUsed,
		Seed:       seed,
	}
}

// journal records the action without failing the tool call.
func journal(ctx context.Context, deps Deps, characterID, kind string, payload any) {
	if err := deps.Emitter.Emit(ctx, characterID, kind, payload); err != nil {
		log.Printf("journal %s for %s: %v", kind, characterID, err)
	}
}
