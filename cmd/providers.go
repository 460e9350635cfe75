package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"infoslide/src"
	"infoslide/src/ai"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var providersCmd = &cobra.Command{
	Use:     "providers",
	Short:   "List the supported AI providers and their models",
	Aliases: []string{"models"},
	Run: func(cmd *cobra.Command, args []string) {
		current, err := ai.ParseProvider(viper.GetString("provider"))
		if err != nil {
			current = ai.Anthropic
		}

		src.PrintHighlight("--- Providers ---")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PROVIDER\tKEY\tMODEL\tNAME")
		for _, p := range ai.Providers() {
			name := p.String()
			if p == current {
				name += " *"
			}
			for i, m := range ai.Models(p) {
				label := m.DisplayName
				if i == 0 {
					label += " (default)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, p.Key(), m.ModelName, label)
				name = ""
			}
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
