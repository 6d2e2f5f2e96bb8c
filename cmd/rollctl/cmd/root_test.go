package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StormSheet_Go/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"d6", "1d6\n"},
		{"2d6+3", "2d6+3\n"},
		{"1d8-1", "1d8-1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out, err := run(t, "parse", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := run(t, "parse", "banana")
	assert.ErrorIs(t, err, domain.ErrInvalidNotation)
}

func TestParse_RequiresOneArg(t *testing.T) {
	_, err := run(t, "parse")
	assert.Error(t, err)
}

func TestAttack_SeedIsReproducible(t *testing.T) {
	first, err := run(t, "attack", "--seed", "42", "-s", "3", "-d", "2d6+1", "-t", "12", "-f", "json")
	require.NoError(t, err)
	second, err := run(t, "attack", "--seed", "42", "-s", "3", "-d", "2d6+1", "-t", "12", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, first, second)

	var result domain.AttackResult
	require.NoError(t, json.Unmarshal([]byte(first), &result))
	assert.Equal(t, 3, result.AttackRoll.SkillModifier)
	assert.Equal(t, 12, result.Combat.VsDefense)
	assert.Equal(t, "2d6+1", result.DamageRoll.DiceNotation)
	assert.Len(t, result.DamageRoll.DiceRolls, 2)
}

func TestAttack_TextOutput(t *testing.T) {
	out, err := run(t, "attack", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "d20:")
	assert.Contains(t, out, "vs defense 10")
}

func TestAttack_RejectsBadMode(t *testing.T) {
	_, err := run(t, "attack", "--mode", "sideways")
	assert.ErrorIs(t, err, domain.ErrInvalidAdvantageMode)
}

func TestCombination(t *testing.T) {
	out, err := run(t, "combination", "--seed", "1", "-n", "4", "-f", "json")
	require.NoError(t, err)

	var summary domain.CombinationSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 4, summary.AttackCount)
	assert.Len(t, summary.Attacks, 4)
	assert.Equal(t, 4, summary.Summary.HitCount+summary.Summary.MissCount)
}

func TestCombination_RejectsZeroCount(t *testing.T) {
	_, err := run(t, "combination", "-n", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidAttackCount)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "-d", "3d8+2")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	_, err = run(t, "validate", "-t", "0")
	assert.ErrorIs(t, err, errInvalidAttack)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "rollctl dev\n", out)
}
