package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/StormSheet_Go/internal/domain"
)

func newAttackCmd() *cobra.Command {
	var flags attackFlags

	c := &cobra.Command{
		Use:   "attack",
		Short: "Resolve a single attack",
		Long: `Roll a d20 attack and its damage against a target defense.

Examples:
  rollctl attack --skill 4 --damage 2d6+1 --defense 14
  rollctl attack -s 4 -d d8 -t 12 --mode advantage --seed 7 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := newCombatService(1).Execute(cmd.Context(), flags.request())
			if err != nil {
				return err
			}
			if isJSON() {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			printAttack(cmd, result)
			return nil
		},
	}

	flags.register(c)
	return c
}

func printAttack(cmd *cobra.Command, r *domain.AttackResult) {
	w := cmd.OutOrStdout()
	printf(w, "d20: %s -> %d", joinInts(r.AttackRoll.RollsGenerated), r.AttackRoll.FinalRoll)
	switch {
	case r.AttackRoll.IsCritical:
		printf(w, " (critical)")
	case r.AttackRoll.IsFumble:
		printf(w, " (fumble)")
	}
	printf(w, "\nattack total: %d vs defense %d (margin %+d)\n", r.Combat.AttackTotal, r.Combat.VsDefense, r.Combat.HitMargin)
	printf(w, "damage: %s %s + %d = %d\n", r.DamageRoll.DiceNotation, joinInts(r.DamageRoll.DiceRolls), r.DamageRoll.Bonuses, r.DamageRoll.Total)
	if r.Combat.IsHit {
		printf(w, "HIT for %d\n", r.Combat.DamageDealt)
	} else {
		printf(w, "MISS\n")
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
