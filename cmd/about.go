package cmd

import (
	"fmt"
	"strings"

	"infoslide/src"
	"infoslide/src/ai"

	"github.com/spf13/cobra"
)

const (
	author  = "Infoslide contributors"
	license = "MIT"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Display details and information about Infoslide",
	Run: func(cmd *cobra.Command, args []string) {
		yellow := src.Yellow()

		fmt.Println()
		src.PrintHighlight(`
   ┌──────────────────────────────┐
   │  ▇▇▇▇▇▇   INFOSLIDE          │
   │  ▇▇  ▇▇   text ─► json ─► ▣  │
   │  ▇▇▇▇▇▇   1200 x 900         │
   └──────────────────────────────┘
		`)
		fmt.Println()

		fmt.Printf("  %s\n\n", cmd.Root().Short)

		var providers []string
		for _, p := range ai.Providers() {
			providers = append(providers, p.String())
		}

		fmt.Printf("  %-12s %s\n", "Version:", yellow.Sprint(cmd.Root().Version))
		fmt.Printf("  %-12s %s\n", "Build:", yellow.Sprint(currentVersionInfo.Commit))
		fmt.Printf("  %-12s %s\n", "Providers:", yellow.Sprint(strings.Join(providers, ", ")))
		fmt.Printf("  %-12s %s\n", "Author:", yellow.Sprint(author))
		fmt.Printf("  %-12s %s\n", "License:", yellow.Sprint(license))

		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
