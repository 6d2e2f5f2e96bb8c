package cmd

import (
	"github.com/spf13/cobra"
)

const maxCLIAttackCount = 10000

func newCombinationCmd() *cobra.Command {
	var (
		flags attackFlags
		count int
	)

	c := &cobra.Command{
		Use:   "combination",
		Short: "Resolve several independent attacks and summarize them",
		Long: `Roll --count independent attacks with the same parameters and report
hits, misses and damage.

Examples:
  rollctl combination --count 3 --skill 5 --damage 1d8+2 --defense 15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := newCombatService(maxCLIAttackCount).Combination(cmd.Context(), flags.request(), count)
			if err != nil {
				return err
			}
			if isJSON() {
				return writeJSON(cmd.OutOrStdout(), summary)
			}

			w := cmd.OutOrStdout()
			for i, a := range summary.Attacks {
				verdict := "miss"
				if a.Combat.IsHit {
					verdict = "hit"
				}
				printf(w, "#%d d20 %d total %d %s damage %d\n", i+1, a.AttackRoll.FinalRoll, a.Combat.AttackTotal, verdict, a.Combat.DamageDealt)
			}
			printf(w, "hits %d misses %d total damage %d average %.2f\n",
				summary.Summary.HitCount, summary.Summary.MissCount, summary.Summary.TotalDamage, summary.Summary.AverageDamagePerAttack)
			return nil
		},
	}

	flags.register(c)
	c.Flags().IntVarP(&count, "count", "n", 2, "Number of attacks")
	return c
}
