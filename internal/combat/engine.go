package combat

import (
	"github.com/osse101/StormSheet_Go/internal/dice"
	"github.com/osse101/StormSheet_Go/internal/domain"
)

// Engine provides pure attack resolution. All randomness comes from the Roller.
type Engine struct {
	roller dice.Roller
}

// NewEngine creates an engine drawing from roller
func NewEngine(roller dice.Roller) *Engine {
	return &Engine{roller: roller}
}

// RollAttack rolls one d20, or two for advantage/disadvantage, and keeps the
// higher or lower. Critical and fumble look only at the kept die.
func (e *Engine) RollAttack(mode domain.AdvantageMode, skillTotal, bonusModifiers int) domain.AttackRollResult {
	mode = mode.OrDefault()
	rolls := dice.RollAll(e.roller, mode.RollCount(), domain.AttackDieSides)

	final := rolls[0]
	for _, r := range rolls[1:] {
		switch mode {
		case domain.AdvantageAdvantage:
			final = max(final, r)
		case domain.AdvantageDisadvantage:
			final = min(final, r)
		}
	}

	return domain.AttackRollResult{
		RollsGenerated: rolls,
		FinalRoll:      final,
		SkillModifier:  skillTotal,
		BonusModifiers: bonusModifiers,
		Total:          final + skillTotal + bonusModifiers,
		IsCritical:     final == domain.NaturalCrit,
		IsFumble:       final == domain.NaturalFumble,
	}
}

// RollDamage rolls the notation's dice. Negative totals are not clamped here.
func (e *Engine) RollDamage(notation domain.DamageNotation, damageBonus int) domain.DamageRollResult {
	rolls := dice.RollAll(e.roller, notation.DiceCount, notation.DieSize)

	diceTotal := 0
	for _, r := range rolls {
		diceTotal += r
	}
	bonuses := notation.FlatBonus + damageBonus

	return domain.DamageRollResult{
		DiceNotation: dice.Format(notation),
		DiceRolls:    rolls,
		DiceTotal:    diceTotal,
		Bonuses:      bonuses,
		Total:        diceTotal + bonuses,
	}
}

// ResolveCombat compares an attack against a defense.
// A fumble always misses. A critical does not force a hit; when it does hit,
// the fully bonused damage total is multiplied. Dealt damage is never negative.
func ResolveCombat(attack domain.AttackRollResult, damage domain.DamageRollResult, targetDefense int) domain.CombatOutcome {
	isHit := attack.Total >= targetDefense && !attack.IsFumble

	dealt := 0
	if isHit {
		dealt = damage.Total
		if attack.IsCritical {
			dealt *= domain.CriticalDamageMultiplier
		}
		dealt = max(dealt, 0)
	}

	return domain.CombatOutcome{
		VsDefense:   targetDefense,
		AttackTotal: attack.Total,
		IsHit:       isHit,
		HitMargin:   attack.Total - targetDefense,
		IsCritical:  attack.IsCritical,
		DamageDealt: dealt,
	}
}

// Resolve validates the request and runs attack, damage and combat.
// Nothing is rolled when validation fails.
func (e *Engine) Resolve(req domain.AttackRequest) (domain.AttackResult, error) {
	if err := Validate(req); err != nil {
		return domain.AttackResult{}, err
	}
	notation, err := dice.Parse(req.DamageNotation)
	if err != nil {
		return domain.AttackResult{}, err
	}
	return e.resolve(req, notation), nil
}

func (e *Engine) resolve(req domain.AttackRequest, notation domain.DamageNotation) domain.AttackResult {
	attack := e.RollAttack(req.AdvantageMode, req.SkillTotal, req.BonusModifiers)
	damage := e.RollDamage(notation, req.DamageBonus)
	return domain.AttackResult{
		AttackRoll: attack,
		DamageRoll: damage,
		Combat:     ResolveCombat(attack, damage, req.TargetDefense),
	}
}

// RunCombination resolves count independent attacks with the same parameters
// and aggregates them. Attacks are returned in roll order.
func (e *Engine) RunCombination(req domain.AttackRequest, count int) (domain.CombinationSummary, error) {
	if err := Validate(req); err != nil {
		return domain.CombinationSummary{}, err
	}
	if err := ValidateAttackCount(count, 0); err != nil {
		return domain.CombinationSummary{}, err
	}
	notation, err := dice.Parse(req.DamageNotation)
	if err != nil {
		return domain.CombinationSummary{}, err
	}

	attacks := make([]domain.AttackResult, 0, count)
	for i := 0; i < count; i++ {
		attacks = append(attacks, e.resolve(req, notation))
	}

	return domain.CombinationSummary{
		AttackCount: count,
		Attacks:     attacks,
		Summary:     Summarize(attacks),
	}, nil
}

// Summarize aggregates hit/miss counts and damage over a set of attacks
func Summarize(attacks []domain.AttackResult) domain.CombinationStats {
	var stats domain.CombinationStats
	for _, a := range attacks {
		if a.Combat.IsHit {
			stats.HitCount++
		} else {
			stats.MissCount++
		}
		stats.TotalDamage += a.Combat.DamageDealt
	}
	if len(attacks) > 0 {
		stats.AverageDamagePerAttack = float64(stats.TotalDamage) / float64(len(attacks))
	}
	return stats
}
