package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Attack validation errors
	ErrMsgInvalidNotation      = "invalid damage notation"
	ErrMsgNegativeSkillTotal   = "skillTotal cannot be negative"
	ErrMsgNonPositiveDefense   = "targetDefense must be greater than zero"
	ErrMsgInvalidAttackCount   = "attackCount must be at least 1"
	ErrMsgInvalidAdvantageMode = "advantageMode must be normal, advantage or disadvantage"
	ErrMsgMissingField         = "missing required field"
	ErrMsgMalformedRequest     = "malformed request"

	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgSkillNotFound     = "skill not found"

	// Grant errors
	ErrMsgInvalidGrant     = "invalid grant"
	ErrMsgUnknownGrantKind = "unknown grant kind"
	ErrMsgNoPendingGrant   = "no pending grant"
	ErrMsgGrantMismatch    = "grant is not at the head of the queue"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidNotation      = errors.New(ErrMsgInvalidNotation)
	ErrNegativeSkillTotal   = errors.New(ErrMsgNegativeSkillTotal)
	ErrNonPositiveDefense   = errors.New(ErrMsgNonPositiveDefense)
	ErrInvalidAttackCount   = errors.New(ErrMsgInvalidAttackCount)
	ErrInvalidAdvantageMode = errors.New(ErrMsgInvalidAdvantageMode)
	ErrMissingField         = errors.New(ErrMsgMissingField)
	ErrMalformedRequest     = errors.New(ErrMsgMalformedRequest)

	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrSkillNotFound     = errors.New(ErrMsgSkillNotFound)

	ErrInvalidGrant     = errors.New(ErrMsgInvalidGrant)
	ErrUnknownGrantKind = errors.New(ErrMsgUnknownGrantKind)
	ErrNoPendingGrant   = errors.New(ErrMsgNoPendingGrant)
	ErrGrantMismatch    = errors.New(ErrMsgGrantMismatch)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
