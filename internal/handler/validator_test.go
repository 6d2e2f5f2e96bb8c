package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type advantageStruct struct {
	Mode string `json:"advantageMode" validate:"advantage"`
}

// =============================================================================
// Validator Tests - Demonstrating 5-Case Testing Model
// =============================================================================

func TestValidator_AdvantageValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		// CASE 1: Best Case
		{"normal", "normal", false},
		{"advantage", "advantage", false},
		{"disadvantage", "disadvantage", false},

		// CASE 2: Boundary - empty defaults to normal
		{"empty allowed", "", false},

		// CASE 3: Edge - modes are exact
		{"uppercase rejected", "ADVANTAGE", true},

		// CASE 4: Invalid Case
		{"unknown mode", "inspired", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(advantageStruct{Mode: tt.mode})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_GrantKindValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		kind    string
		wantErr bool
	}{
		{"level-up", "level-up", false},
		{"item", "item", false},
		{"case insensitive", "Spren", false},
		{"empty means no filter", "", false},
		{"unknown", "oathgate", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(ConfirmedGrantsQuery{Kind: tt.kind})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError_UsesJSONNames(t *testing.T) {
	err := GetValidator().ValidateStruct(ConfirmedGrantsQuery{Kind: "oathgate"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"kind": "unknown grant kind"}, FormatValidationError(err))

	count := 0
	err = GetValidator().ValidateStruct(CombinationRequestBody{AttackCount: &count})
	require.Error(t, err)
	assert.Equal(t, "attackCount: Must be at least 1; damageNotation: This field is required", SummarizeValidationError(err))
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
