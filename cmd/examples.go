package cmd

import (
	"fmt"
	"strings"

	"infoslide/src"
	"infoslide/src/infographic"

	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [name]",
	Short: "List the bundled example texts, or print one",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			ex, err := infographic.ExampleByName(args[0])
			if err != nil {
				src.PrintError("%v", err)
				return
			}
			src.PrintHighlight("--- %s ---", ex.Title)
			fmt.Println(ex.Text)
			return
		}

		examples, err := infographic.Examples()
		if err != nil {
			src.PrintError("%v", err)
			return
		}

		yellow := src.Yellow()
		src.PrintHighlight("--- Bundled examples ---")
		for _, ex := range examples {
			fmt.Printf("%s %s\n", yellow.Sprintf("%-10s", ex.Name), ex.Title)
			fmt.Printf("           %s\n", snippet(ex.Text, 72))
		}
		fmt.Println()
		src.PrintInfo("Use one with: infoslide generate --example <name>")
	},
}

func snippet(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
