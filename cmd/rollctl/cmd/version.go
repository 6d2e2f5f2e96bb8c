package cmd

import (
	"github.com/spf13/cobra"
)

var version = "dev" // set at build time using -ldflags

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rollctl",
		Run: func(cmd *cobra.Command, args []string) {
			printf(cmd.OutOrStdout(), "rollctl %s\n", version)
		},
	}
}
