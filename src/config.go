package src

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"infoslide/src/ai"
	"infoslide/src/infographic"
)

const (
	ConfigDir  = ".infoslide"
	ConfigName = "config"
	EnvPrefix  = "INFOSLIDE"
)

// Config holds every setting read from ~/.infoslide/config.yaml and INFOSLIDE_* variables.
type Config struct {
	SchemaVersion string            `mapstructure:"schema_version" validate:"required"`
	Provider      string            `mapstructure:"provider" validate:"required"`
	Model         string            `mapstructure:"model"`
	APIKeys       map[string]string `mapstructure:"api_keys"`
	Output        string            `mapstructure:"output" validate:"required"`
	ExtractMode   string            `mapstructure:"extract_mode" validate:"oneof=greedy balanced"`
	LogLevel      string            `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	HTTPTimeout   time.Duration     `mapstructure:"http_timeout" validate:"gte=0"`
	Endpoints     map[string]string `mapstructure:"endpoints" validate:"dive,omitempty,url"`
	Serve         ServeConfig       `mapstructure:"serve"`
	Notes         NotesConfig       `mapstructure:"notes"`
}

type ServeConfig struct {
	Addr string `mapstructure:"addr" validate:"required,hostname_port"`
}

type NotesConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// providerEnvKeys are the conventional variables checked when no key is configured.
var providerEnvKeys = map[ai.Provider]string{
	ai.Anthropic: "ANTHROPIC_API_KEY",
	ai.Gemini:    "GEMINI_API_KEY",
	ai.OpenAI:    "OPENAI_API_KEY",
	ai.Groq:      "GROQ_API_KEY",
}

// SetDefaults registers every key so that env overrides also reach nested maps.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("schema_version", CurrentSchemaVersion)
	v.SetDefault("provider", ai.Anthropic.Key())
	v.SetDefault("model", "")
	v.SetDefault("output", infographic.DefaultArtifactName)
	v.SetDefault("extract_mode", infographic.ExtractModeGreedy)
	v.SetDefault("log_level", "warn")
	v.SetDefault("http_timeout", "0s")
	v.SetDefault("serve.addr", "127.0.0.1:8501")
	v.SetDefault("notes.path", "~/"+ConfigDir+"/notes.yaml")
	for _, p := range ai.Providers() {
		v.SetDefault("api_keys."+p.Key(), "")
		v.SetDefault("endpoints."+p.Key(), "")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadConfig unmarshals and validates the settings held by v.
func LoadConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := CheckSchemaVersion(cfg.SchemaVersion); err != nil {
		return nil, err
	}
	if _, err := ai.ParseProvider(cfg.Provider); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	notesPath, err := ExpandHome(cfg.Notes.Path)
	if err != nil {
		return nil, err
	}
	cfg.Notes.Path = notesPath

	return &cfg, nil
}

func (c *Config) DefaultProvider() ai.Provider {
	p, err := ai.ParseProvider(c.Provider)
	if err != nil {
		return ai.Anthropic
	}
	return p
}

// ModelFor returns the configured model when it belongs to p, otherwise p's default.
// A model id outside the presets is kept only for the active provider.
func (c *Config) ModelFor(p ai.Provider) string {
	if c.Model == "" {
		return ai.DefaultModel(p)
	}
	if ai.IsKnownModel(p, c.Model) {
		return c.Model
	}
	if _, preset := ai.ModelProvider(c.Model); !preset && c.DefaultProvider() == p {
		return c.Model
	}
	return ai.DefaultModel(p)
}

// CredentialFor returns the configured key for p, falling back to the provider's usual env var.
func (c *Config) CredentialFor(p ai.Provider) string {
	if key := strings.TrimSpace(c.APIKeys[p.Key()]); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv(providerEnvKeys[p]))
}

// EndpointOverrides returns the non-empty base URL overrides keyed by provider.
func (c *Config) EndpointOverrides() map[ai.Provider]string {
	out := make(map[ai.Provider]string)
	for _, p := range ai.Providers() {
		if u := c.Endpoints[p.Key()]; u != "" {
			out[p] = u
		}
	}
	return out
}
