package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// CharacterImportInput represents the MCP tool input for importing a
// character snapshot.
type CharacterImportInput struct {
	Snapshot string `json:"snapshot" jsonschema:"character snapshot as a JSON document"`
}

// CharacterImportResult represents the MCP tool output for character import.
type CharacterImportResult struct {
	ID       string `json:"id" jsonschema:"character identifier"`
	Name     string `json:"name" jsonschema:"character name"`
	Entities int    `json:"entities" jsonschema:"number of imported entities"`
}

// SheetComputeInput represents the MCP tool input for a derivation pass.
type SheetComputeInput struct {
	CharacterID          string `json:"character_id" jsonschema:"character identifier"`
	CombatActive         bool   `json:"combat_active,omitempty" jsonschema:"whether the owner is an active combat participant"`
	ThreateningOpponents int    `json:"threatening_opponents,omitempty" jsonschema:"opponents currently threatening the owner"`
}

// SheetGetInput represents the MCP tool input for reading a derived sheet.
type SheetGetInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
}

// SkillSheetEntry is the derived view of one skill on a sheet result.
type SkillSheetEntry struct {
	Name       string `json:"name" jsonschema:"skill or trait name"`
	Mastery    int    `json:"mastery" jsonschema:"derived proficiency target"`
	Fate       *int   `json:"fate,omitempty" jsonschema:"derived fate target, absent when fate is unavailable"`
	FateReason string `json:"fate_reason,omitempty" jsonschema:"reason fate is unavailable"`
}

// StrikeSheetEntry is the derived view of one strike technique.
type StrikeSheetEntry struct {
	Name          string `json:"name" jsonschema:"strike technique name"`
	Attack        int    `json:"attack" jsonschema:"derived attack target"`
	Block         int    `json:"block" jsonschema:"derived block target"`
	Counterstrike int    `json:"counterstrike" jsonschema:"derived counterstrike target"`
	Durability    int    `json:"durability" jsonschema:"derived weapon durability"`
	Reach         int    `json:"reach" jsonschema:"weapon reach, 0 when unarmed"`
	Degraded      bool   `json:"degraded,omitempty" jsonschema:"true when the technique's skill was missing"`
}

// SheetResult represents the MCP tool output for sheet computation and reads.
type SheetResult struct {
	CharacterID   string             `json:"character_id" jsonschema:"character identifier"`
	CharacterName string             `json:"character_name" jsonschema:"character name"`
	ComputedAt    string             `json:"computed_at" jsonschema:"RFC3339 timestamp of the derivation pass"`
	Skills        []SkillSheetEntry  `json:"skills" jsonschema:"derived skill and trait values"`
	Strikes       []StrikeSheetEntry `json:"strikes" jsonschema:"derived strike technique values"`
}

// SkillCheckInput represents the MCP tool input for a skill success test.
type SkillCheckInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Skill       string `json:"skill" jsonschema:"skill name to test"`
	Bonus       int    `json:"bonus,omitempty" jsonschema:"contextual bonus or penalty added to the roll"`
	UseFate     bool   `json:"use_fate,omitempty" jsonschema:"consult the fate target when the primary test fails"`
	Seed        int64  `json:"seed,omitempty" jsonschema:"deterministic roll seed, 0 draws a random seed"`
}

// StrikeRollInput represents the MCP tool input for a strike contest roll.
type StrikeRollInput struct {
	CharacterID          string `json:"character_id" jsonschema:"character identifier"`
	Strike               string `json:"strike" jsonschema:"strike technique name"`
	Mode                 string `json:"mode" jsonschema:"strike mode (attack, block, counterstrike)"`
	Bonus                int    `json:"bonus,omitempty" jsonschema:"contextual bonus or penalty added to the roll"`
	Seed                 int64  `json:"seed,omitempty" jsonschema:"deterministic roll seed, 0 draws a random seed"`
	CombatActive         bool   `json:"combat_active,omitempty" jsonschema:"whether the owner is an active combat participant"`
	ThreateningOpponents int    `json:"threatening_opponents,omitempty" jsonschema:"opponents currently threatening the owner"`
}

// ContestResult represents the MCP tool output for success tests.
type ContestResult struct {
	Target     string `json:"target" jsonschema:"name of the tested skill or strike"`
	TargetVal  int    `json:"target_value" jsonschema:"threshold the roll was resolved against"`
	Roll       int    `json:"roll" jsonschema:"raw d100 roll"`
	Bonus      int    `json:"bonus" jsonschema:"contextual bonus applied"`
	Total      int    `json:"total" jsonschema:"roll plus bonus"`
	Success    bool   `json:"success" jsonschema:"true when the total strictly beats the threshold"`
	Margin     int    `json:"margin" jsonschema:"total minus threshold"`
	FateTarget *int   `json:"fate_target,omitempty" jsonschema:"fate threshold consulted after a failed primary test"`
	FateUsed   bool   `json:"fate_used,omitempty" jsonschema:"true when fate substituted for a failed test"`
	Seed       int64  `json:"seed" jsonschema:"seed used for the roll, replayable"`
}

// RollDiceInput represents the MCP tool input for arbitrary dice pools.
type RollDiceInput struct {
	Dice []DiceSpecInput `json:"dice" jsonschema:"dice pool to roll"`
	Seed int64           `json:"seed,omitempty" jsonschema:"deterministic roll seed, 0 draws a random seed"`
}

// DiceSpecInput is one dice group in a pool.
type DiceSpecInput struct {
	Sides int `json:"sides" jsonschema:"number of faces per die"`
	Count int `json:"count" jsonschema:"number of dice to roll"`
}

// RollDiceResult represents the MCP tool output for dice pools.
type RollDiceResult struct {
	Values []int `json:"values" jsonschema:"individual die results in roll order"`
	Total  int   `json:"total" jsonschema:"sum of all dice"`
	Seed   int64 `json:"seed" jsonschema:"seed used for the roll, replayable"`
}

// SkillImproveInput represents the MCP tool input for banking skill boosts.
type SkillImproveInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Skill       string `json:"skill" jsonschema:"skill name to improve"`
}

// SkillImproveResult represents the MCP tool output for banking skill boosts.
type SkillImproveResult struct {
	Skill    string `json:"skill" jsonschema:"skill name"`
	OldLevel int    `json:"old_level" jsonschema:"persisted level before banking"`
	NewLevel int    `json:"new_level" jsonschema:"persisted level after banking boosts"`
	Boosts   int    `json:"boosts" jsonschema:"number of boosts banked"`
}

// CharacterImportTool defines the MCP tool schema for snapshot import.
func CharacterImportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "character_import",
		Description: "Imports a character snapshot into the engine store",
	}
}

// SheetComputeTool defines the MCP tool schema for derivation passes.
func SheetComputeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "sheet_compute",
		Description: "Runs a derivation pass and caches the derived sheet",
	}
}

// SheetGetTool defines the MCP tool schema for derived sheet reads.
func SheetGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "sheet_get",
		Description: "Reads the most recently computed derived sheet",
	}
}

// SkillCheckTool defines the MCP tool schema for skill success tests.
func SkillCheckTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "skill_check",
		Description: "Rolls a d100 success test against a derived skill",
	}
}

// StrikeRollTool defines the MCP tool schema for strike contests.
func StrikeRollTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "strike_roll",
		Description: "Rolls a d100 contest against a strike technique stack",
	}
}

// RollDiceTool defines the MCP tool schema for arbitrary dice pools.
func RollDiceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll_dice",
		Description: "Rolls arbitrary dice pools",
	}
}

// SkillImproveTool defines the MCP tool schema for banking skill boosts.
func SkillImproveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "skill_improve",
		Description: "Banks a skill's pending boosts into its persisted level",
	}
}
