package cmd

import (
	"infoslide/src"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the version number of Infoslide",
	Aliases: []string{"v"},
	Run: func(cmd *cobra.Command, args []string) {
		src.PrintBlue("infoslide version %s", cmd.Root().Version)
		src.PrintInfo("config schema %s (supports %s)", src.CurrentSchemaVersion, src.SupportedSchemas)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
