// Package errors provides structured domain errors with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Character snapshot errors (load boundary)
	CodeCharacterEmptyID     Code = "CHARACTER_EMPTY_ID"
	CodeCharacterEmptyName   Code = "CHARACTER_EMPTY_NAME"
	CodeEntityEmptyID        Code = "ENTITY_EMPTY_ID"
	CodeEntityDuplicateID    Code = "ENTITY_DUPLICATE_ID"
	CodeEntityInvalidKind    Code = "ENTITY_INVALID_KIND"
	CodeEntityMissingPayload Code = "ENTITY_MISSING_PAYLOAD"

	// Skill errors
	CodeSkillLevelOutOfRange Code = "SKILL_LEVEL_OUT_OF_RANGE"
	CodeSkillNegativeBoosts  Code = "SKILL_NEGATIVE_BOOSTS"

	// Derivation errors
	CodeDeriveUnsupportedContainer Code = "DERIVE_UNSUPPORTED_CONTAINER"
	CodeDerivePassFailed           Code = "DERIVE_PASS_FAILED"

	// Success test errors
	CodeTestInvalidBonus Code = "TEST_INVALID_BONUS"
	CodeTestNoTarget     Code = "TEST_NO_TARGET"

	// Dice/seed errors
	CodeDiceMissing     Code = "DICE_MISSING"
	CodeDiceInvalidSpec Code = "DICE_INVALID_SPEC"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)
