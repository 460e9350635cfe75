package src_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"infoslide/src"
	"infoslide/src/ai"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	src.SetDefaults(v)
	if yaml != "" {
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	}
	return v
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := src.LoadConfig(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, src.CurrentSchemaVersion, cfg.SchemaVersion)
	assert.Equal(t, ai.Anthropic, cfg.DefaultProvider())
	assert.Equal(t, "infographic.html", cfg.Output)
	assert.Equal(t, "greedy", cfg.ExtractMode)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, "127.0.0.1:8501", cfg.Serve.Addr)
	assert.True(t, filepath.IsAbs(cfg.Notes.Path))
	assert.Empty(t, cfg.EndpointOverrides())
}

func TestLoadConfigFromFile(t *testing.T) {
	cfg, err := src.LoadConfig(newViper(t, `
schema_version: "1.2"
provider: groq
model: mixtral-8x7b-32768
api_keys:
  groq: gsk-from-file
output: out/slide.html
extract_mode: balanced
log_level: debug
http_timeout: 45s
endpoints:
  groq: http://localhost:9999/openai/v1
serve:
  addr: localhost:9000
notes:
  path: /tmp/notes.yaml
`))
	require.NoError(t, err)

	assert.Equal(t, ai.Groq, cfg.DefaultProvider())
	assert.Equal(t, "mixtral-8x7b-32768", cfg.ModelFor(ai.Groq))
	assert.Equal(t, ai.DefaultModel(ai.OpenAI), cfg.ModelFor(ai.OpenAI))
	assert.Equal(t, "gsk-from-file", cfg.CredentialFor(ai.Groq))
	assert.Equal(t, 45*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, map[ai.Provider]string{ai.Groq: "http://localhost:9999/openai/v1"}, cfg.EndpointOverrides())
	assert.Equal(t, "/tmp/notes.yaml", cfg.Notes.Path)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("INFOSLIDE_PROVIDER", "gemini")
	t.Setenv("INFOSLIDE_API_KEYS_GEMINI", "AIza-env")
	t.Setenv("INFOSLIDE_SERVE_ADDR", ":8080")

	cfg, err := src.LoadConfig(newViper(t, ""))
	require.NoError(t, err)
	assert.Equal(t, ai.Gemini, cfg.DefaultProvider())
	assert.Equal(t, "AIza-env", cfg.CredentialFor(ai.Gemini))
	assert.Equal(t, ":8080", cfg.Serve.Addr)
}

func TestModelForIgnoresModelOfAnotherProvider(t *testing.T) {
	v := newViper(t, `
provider: openai
model: gpt-4o
`)
	v.Set("provider", "groq")

	cfg, err := src.LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, ai.Groq, cfg.DefaultProvider())
	assert.Equal(t, ai.DefaultModel(ai.Groq), cfg.ModelFor(ai.Groq))
	assert.Equal(t, "gpt-4o", cfg.ModelFor(ai.OpenAI))
	assert.True(t, ai.IsKnownModel(ai.Groq, cfg.ModelFor(cfg.DefaultProvider())))
}

func TestModelForKeepsCustomModelForActiveProvider(t *testing.T) {
	cfg, err := src.LoadConfig(newViper(t, `
provider: groq
model: llama-3.3-70b-versatile
`))
	require.NoError(t, err)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.ModelFor(ai.Groq))
	assert.Equal(t, ai.DefaultModel(ai.Anthropic), cfg.ModelFor(ai.Anthropic))
}

func TestCredentialFallsBackToProviderEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", " sk-conventional ")

	cfg, err := src.LoadConfig(newViper(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "sk-conventional", cfg.CredentialFor(ai.OpenAI))
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{name: "unknown provider", yaml: "provider: mistral"},
		{name: "unknown extract mode", yaml: "extract_mode: schema"},
		{name: "unknown log level", yaml: "log_level: verbose"},
		{name: "bad serve address", yaml: "serve:\n  addr: not-an-address"},
		{name: "bad endpoint url", yaml: "endpoints:\n  openai: not a url"},
		{name: "future schema", yaml: `schema_version: "2.0"`},
		{name: "garbage schema", yaml: `schema_version: "one"`},
		{name: "negative timeout", yaml: "http_timeout: -5s"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := src.LoadConfig(newViper(t, tc.yaml))
			assert.Error(t, err)
		})
	}
}
