package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/StormSheet_Go/internal/dice"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <notation>",
		Short: "Parse and normalize a damage notation",
		Long: `Parse a damage notation and print its canonical form.

Examples:
  rollctl parse d6        # 1d6
  rollctl parse 2d6+3     # 2d6+3
  rollctl parse d20-1 -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := dice.Parse(args[0])
			if err != nil {
				return err
			}
			if isJSON() {
				return writeJSON(cmd.OutOrStdout(), struct {
					Canonical string `json:"canonical"`
					DiceCount int    `json:"diceCount"`
					DieSize   int    `json:"dieSize"`
					FlatBonus int    `json:"flatBonus"`
				}{dice.Format(n), n.DiceCount, n.DieSize, n.FlatBonus})
			}
			printf(cmd.OutOrStdout(), "%s\n", dice.Format(n))
			return nil
		},
	}
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
