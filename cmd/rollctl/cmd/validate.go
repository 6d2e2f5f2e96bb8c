package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var errInvalidAttack = errors.New("invalid attack")

func newValidateCmd() *cobra.Command {
	var flags attackFlags

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check attack parameters without rolling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := newCombatService(1).Validate(cmd.Context(), flags.request())
			if isJSON() {
				if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else if result.IsValid {
				printf(cmd.OutOrStdout(), "valid\n")
			}
			if !result.IsValid {
				return errors.Join(errInvalidAttack, errors.New(result.Error))
			}
			return nil
		},
	}

	flags.register(c)
	return c
}
