package cmd

import (
	"context"
	"fmt"
	"time"

	"infoslide/src"
	"infoslide/src/ai"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configuration and reachability of every provider",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _, err := loadConfig()
		if err != nil {
			src.PrintError("Configuration is invalid: %v", err)
			return
		}
		src.PrintSuccess("Configuration OK")
		fmt.Println()

		yellow := src.Yellow()
		allChecksPassed := true
		overrides := cfg.EndpointOverrides()

		src.PrintHighlight("--- Checking Providers ---")
		for _, p := range ai.Providers() {
			var opts []ai.Option
			if u, ok := overrides[p]; ok {
				opts = append(opts, ai.WithBaseURL(u))
			}
			adapter, err := ai.NewAdapter(p, opts...)
			if err != nil {
				src.PrintError("%v", err)
				allChecksPassed = false
				continue
			}

			fmt.Printf("Checking %s (%s)... ", yellow.Sprint(p), adapter.BaseURL())
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			_, err = adapter.Ping(ctx)
			cancel()
			switch {
			case err != nil:
				src.PrintError("UNREACHABLE")
				allChecksPassed = false
			case cfg.CredentialFor(p) == "":
				src.PrintWarning("REACHABLE, no API key")
			default:
				src.PrintSuccess("OK")
			}
		}

		fmt.Println()
		if allChecksPassed {
			src.PrintSuccess("All providers are reachable.")
		} else {
			src.PrintError("Some providers could not be reached. Check your network or endpoint overrides.")
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
