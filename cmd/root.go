package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"infoslide/src"
	"infoslide/src/ai"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type VersionInfo struct {
	Branch string
	Status string
	Number string
	Commit string
}

var rootCmd = &cobra.Command{
	Use:          "infoslide",
	Short:        "Infoslide - Turn any text into a single-slide HTML infographic.",
	SilenceUsage: true,
}

var currentVersionInfo VersionInfo

func Execute(versionInfo VersionInfo) {
	currentVersionInfo = versionInfo

	fullVersion := fmt.Sprintf("%s %s %s %s",
		versionInfo.Branch, versionInfo.Status, versionInfo.Number, versionInfo.Commit)
	rootCmd.Version = fullVersion

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	configPath := filepath.Join(home, src.ConfigDir)
	viper.AddConfigPath(configPath)
	viper.SetConfigName(src.ConfigName)
	viper.SetConfigType("yaml")

	src.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			cobra.CheckErr(err)
		}
	}
}

// loadConfig validates the merged settings and installs the logger they describe.
func loadConfig() (*src.Config, *slog.Logger, error) {
	cfg, err := src.LoadConfig(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}
	logger := src.SetupLogger(cfg.LogLevel, os.Stderr)
	return cfg, logger, nil
}

func newRegistry(cfg *src.Config) *ai.Registry {
	client := &http.Client{Timeout: cfg.HTTPTimeout}
	return ai.NewRegistry(client, cfg.EndpointOverrides())
}

// configFilePath is where set writes when no config file has been read yet.
func configFilePath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, src.ConfigDir, src.ConfigName+".yaml"), nil
}
