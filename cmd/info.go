package cmd

import (
	"fmt"

	"infoslide/src"
	"infoslide/src/ai"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _, err := loadConfig()
		if err != nil {
			src.PrintError("Error loading configuration: %v", err)
			return
		}

		yellow := src.Yellow()
		provider := cfg.DefaultProvider()

		src.PrintHighlight("--- Infoslide Configuration ---")
		if configFile := viper.ConfigFileUsed(); configFile != "" {
			fmt.Printf("Config File:     %s\n", yellow.Sprint(configFile))
		} else {
			fmt.Printf("Config File:     %s\n", yellow.Sprint("Not found (using defaults)"))
		}
		fmt.Printf("Schema:          %s\n", yellow.Sprint(cfg.SchemaVersion))
		if newer, err := src.IsNewerSchema(cfg.SchemaVersion); err == nil && newer {
			src.PrintWarning("The config file was written by a newer infoslide (schema %s > %s).", cfg.SchemaVersion, src.CurrentSchemaVersion)
		}
		fmt.Printf("Provider:        %s\n", yellow.Sprint(provider))
		fmt.Printf("Model:           %s\n", yellow.Sprint(cfg.ModelFor(provider)))
		fmt.Printf("Output:          %s\n", yellow.Sprint(cfg.Output))
		fmt.Printf("Extract Mode:    %s\n", yellow.Sprint(cfg.ExtractMode))
		fmt.Printf("Log Level:       %s\n", yellow.Sprint(cfg.LogLevel))
		timeout := "None"
		if cfg.HTTPTimeout > 0 {
			timeout = cfg.HTTPTimeout.String()
		}
		fmt.Printf("HTTP Timeout:    %s\n", yellow.Sprint(timeout))
		fmt.Printf("Preview Address: %s\n", yellow.Sprint(cfg.Serve.Addr))
		fmt.Printf("Notes File:      %s\n", yellow.Sprint(cfg.Notes.Path))

		fmt.Println()
		src.PrintHighlight("--- API Keys ---")
		overrides := cfg.EndpointOverrides()
		for _, p := range ai.Providers() {
			fmt.Printf("%-16s %s\n", p.String()+":", yellow.Sprint(src.MaskSecret(cfg.CredentialFor(p))))
			if u, ok := overrides[p]; ok {
				fmt.Printf("%-16s %s\n", "  endpoint:", yellow.Sprint(u))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
