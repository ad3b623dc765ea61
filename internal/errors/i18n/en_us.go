package i18n

// Message codes must match internal/errors/codes.go and the disablement
// reason codes in internal/systems/greymark. They are duplicated as
// strings to avoid import cycles.
const (
	CodeUnknown                    = "UNKNOWN"
	CodeCharacterEmptyID           = "CHARACTER_EMPTY_ID"
	CodeCharacterEmptyName         = "CHARACTER_EMPTY_NAME"
	CodeEntityEmptyID              = "ENTITY_EMPTY_ID"
	CodeEntityDuplicateID          = "ENTITY_DUPLICATE_ID"
	CodeEntityInvalidKind          = "ENTITY_INVALID_KIND"
	CodeEntityMissingPayload       = "ENTITY_MISSING_PAYLOAD"
	CodeSkillLevelOutOfRange       = "SKILL_LEVEL_OUT_OF_RANGE"
	CodeSkillNegativeBoosts        = "SKILL_NEGATIVE_BOOSTS"
	CodeDeriveUnsupportedContainer = "DERIVE_UNSUPPORTED_CONTAINER"
	CodeDerivePassFailed           = "DERIVE_PASS_FAILED"
	CodeTestInvalidBonus           = "TEST_INVALID_BONUS"
	CodeTestNoTarget               = "TEST_NO_TARGET"
	CodeDiceMissing                = "DICE_MISSING"
	CodeDiceInvalidSpec            = "DICE_INVALID_SPEC"
	CodeNotFound                   = "NOT_FOUND"

	// Disablement reasons
	ReasonFateNone        = "FATE_NONE_AVAILABLE"
	ReasonFateAuraFormula = "FATE_AURA_FORMULA"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeUnknown: "An unexpected error occurred",

		// Character snapshot errors
		CodeCharacterEmptyID:     "Character ID is required",
		CodeCharacterEmptyName:   "Character name cannot be empty",
		CodeEntityEmptyID:        "Entity ID is required",
		CodeEntityDuplicateID:    "Entity ID {{.ID}} appears more than once",
		CodeEntityInvalidKind:    "Unknown entity kind {{.Kind}}",
		CodeEntityMissingPayload: "Entity {{.ID}} is missing its {{.Kind}} payload",

		// Skill errors
		CodeSkillLevelOutOfRange: "Skill level {{.Level}} is outside the allowed range",
		CodeSkillNegativeBoosts:  "Boost count cannot be negative",

		// Derivation errors
		CodeDeriveUnsupportedContainer: "Entity {{.ID}} is nested in unsupported container kind {{.Container}}",
		CodeDerivePassFailed:           "Derived values could not be computed",

		// Success test errors
		CodeTestInvalidBonus: "Contextual bonus {{.Bonus}} is not allowed",
		CodeTestNoTarget:     "The target value is disabled: {{.Reason}}",

		// Dice errors
		CodeDiceMissing:     "At least one die must be rolled",
		CodeDiceInvalidSpec: "Dice must have positive sides and count",

		// Storage errors
		CodeNotFound: "The requested record was not found",

		// Disablement reasons
		ReasonFateNone:        "No fate available",
		ReasonFateAuraFormula: "Fate cannot back an aura-dependent skill",
	},
}
