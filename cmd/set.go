package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"infoslide/src"
	"infoslide/src/ai"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var setCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value, interactively or directly",
	Long: `Set a configuration value in your ~/.infoslide/config.yaml file.
- Call with a key and value to set it directly.
- Call without arguments to launch an interactive prompt.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args) == 2 {
			return nil
		}
		return errors.New("this command requires either 0 or 2 arguments")
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 2 {
			setKeyValue(args[0], args[1])
			return
		}

		selectPrompt := promptui.Select{
			Label:     "Select a configuration key to change",
			Items:     configurableKeys(),
			Templates: selectTemplates,
		}

		_, selectedKey, err := selectPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				src.PrintInfo("Configuration cancelled.")
			}
			return
		}

		inputPrompt := promptui.Prompt{
			Label:   "Enter the new value for '" + selectedKey + "'",
			Default: viper.GetString(selectedKey),
		}
		if strings.HasPrefix(selectedKey, "api_keys.") {
			inputPrompt.Default = ""
			inputPrompt.Mask = '*'
		}

		newValue, err := inputPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				src.PrintInfo("Configuration cancelled.")
			}
			return
		}

		setKeyValue(selectedKey, newValue)
	},
}

func configurableKeys() []string {
	keys := []string{"provider", "model", "output", "extract_mode", "log_level", "http_timeout", "serve.addr", "notes.path"}
	for _, p := range ai.Providers() {
		keys = append(keys, "api_keys."+p.Key())
	}
	for _, p := range ai.Providers() {
		keys = append(keys, "endpoints."+p.Key())
	}
	return keys
}

func setKeyValue(key, value string) {
	known := false
	for _, k := range configurableKeys() {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		src.PrintError("Unknown configuration key '%s'", key)
		return
	}

	path, err := configFilePath()
	if err != nil {
		src.PrintError("Error locating configuration: %v", err)
		return
	}

	// Only the file's own contents are rewritten, so env-provided keys stay out of it.
	file := viper.New()
	file.SetConfigFile(path)
	if err := file.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		src.PrintError("Error reading configuration: %v", err)
		return
	}
	file.Set(key, value)
	if !file.IsSet("schema_version") {
		file.Set("schema_version", src.CurrentSchemaVersion)
	}

	check := viper.New()
	src.SetDefaults(check)
	if err := check.MergeConfigMap(file.AllSettings()); err != nil {
		src.PrintError("Error checking configuration: %v", err)
		return
	}
	if _, err := src.LoadConfig(check); err != nil {
		src.PrintError("Refusing to save: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		src.PrintError("Error creating configuration directory: %v", err)
		return
	}
	if err := file.WriteConfigAs(path); err != nil {
		src.PrintError("Error writing configuration: %v", err)
		return
	}

	shown := value
	if strings.HasPrefix(key, "api_keys.") {
		shown = src.MaskSecret(value)
	}
	yellow := src.Yellow()
	src.PrintSuccess("Set %s to %s", key, yellow.Sprint(shown))
	fmt.Printf("Saved to %s\n", path)
}

func init() {
	rootCmd.AddCommand(setCmd)
}
