package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/StormSheet_Go/internal/combat"
	"github.com/osse101/StormSheet_Go/internal/dice"
	"github.com/osse101/StormSheet_Go/internal/domain"
)

var (
	seed         int64
	outputFormat string
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rollctl",
		Short: "Roll attacks offline",
		Long: `rollctl runs the attack resolution engine without the server.

Available commands:
  attack        Resolve a single attack
  combination   Resolve several independent attacks and summarize them
  parse         Parse and normalize a damage notation such as 2d6+3
  validate      Check attack parameters without rolling

Use "rollctl [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for reproducible rolls (0 uses crypto/rand)")
	root.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text, json)")

	root.AddCommand(newAttackCmd(), newCombinationCmd(), newParseCmd(), newValidateCmd(), newVersionCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// attackFlags are shared by attack, combination and validate
type attackFlags struct {
	skillTotal     int
	bonusModifiers int
	damage         string
	damageBonus    int
	defense        int
	mode           string
}

func (f *attackFlags) register(c *cobra.Command) {
	c.Flags().IntVarP(&f.skillTotal, "skill", "s", 0, "Skill total added to the d20")
	c.Flags().IntVarP(&f.bonusModifiers, "bonus", "b", 0, "Extra attack modifiers, may be negative")
	c.Flags().StringVarP(&f.damage, "damage", "d", "1d6", "Damage notation, e.g. 2d6+3")
	c.Flags().IntVar(&f.damageBonus, "damage-bonus", 0, "Flat bonus added to damage")
	c.Flags().IntVarP(&f.defense, "defense", "t", 10, "Target defense")
	c.Flags().StringVarP(&f.mode, "mode", "m", string(domain.AdvantageNormal), "normal, advantage or disadvantage")
}

func (f *attackFlags) request() domain.AttackRequest {
	return domain.AttackRequest{
		SkillTotal:     f.skillTotal,
		BonusModifiers: f.bonusModifiers,
		DamageNotation: f.damage,
		DamageBonus:    f.damageBonus,
		TargetDefense:  f.defense,
		AdvantageMode:  domain.AdvantageMode(f.mode),
	}
}

func newRoller() dice.Roller {
	if seed != 0 {
		return dice.NewSeededRoller(seed)
	}
	return dice.NewSecureRoller()
}

func newCombatService(maxAttackCount int) combat.Service {
	return combat.NewService(newRoller(), nil, nil, maxAttackCount)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func isJSON() bool {
	return outputFormat == "json"
}

func printf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}
