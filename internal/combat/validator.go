package combat

import (
	"fmt"

	"github.com/osse101/StormSheet_Go/internal/dice"
	"github.com/osse101/StormSheet_Go/internal/domain"
)

// Validate checks an attack request before any dice are rolled.
// Checks run in order and stop at the first failure: damage notation,
// skill total, target defense, then advantage mode. The request is not modified.
func Validate(req domain.AttackRequest) error {
	if _, err := dice.Parse(req.DamageNotation); err != nil {
		return err
	}
	if req.SkillTotal < 0 {
		return fmt.Errorf("%w: got %d", domain.ErrNegativeSkillTotal, req.SkillTotal)
	}
	if req.TargetDefense <= 0 {
		return fmt.Errorf("%w: got %d", domain.ErrNonPositiveDefense, req.TargetDefense)
	}
	if !req.AdvantageMode.OrDefault().Valid() {
		return fmt.Errorf("%w: got %q", domain.ErrInvalidAdvantageMode, req.AdvantageMode)
	}
	return nil
}

// ValidateRequest is the dry-run form of Validate
func ValidateRequest(req domain.AttackRequest) domain.ValidationResult {
	if err := Validate(req); err != nil {
		return domain.ValidationResult{IsValid: false, Error: err.Error()}
	}
	return domain.ValidationResult{IsValid: true}
}

// ValidateAttackCount checks the number of attacks in a combination
func ValidateAttackCount(count, max int) error {
	if count < 1 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidAttackCount, count)
	}
	if max > 0 && count > max {
		return fmt.Errorf("%w: at most %d attacks per combination, got %d", domain.ErrInvalidAttackCount, max, count)
	}
	return nil
}
