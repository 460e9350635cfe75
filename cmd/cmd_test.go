package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"infoslide/src"
	"infoslide/src/infographic"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSource(t *testing.T) {
	t.Cleanup(func() { genText, genFile, genExample = "", "", "" })

	genText = "inline content"
	got, err := resolveSource(false)
	require.NoError(t, err)
	assert.Equal(t, "inline content", got)

	genText = ""
	path := filepath.Join(t.TempDir(), "source.txt")
	require.NoError(t, os.WriteFile(path, []byte("from a file"), 0o644))
	genFile = path
	got, err = resolveSource(false)
	require.NoError(t, err)
	assert.Equal(t, "from a file", got)

	genFile = ""
	genExample = "internet"
	ex, err := infographic.ExampleByName("internet")
	require.NoError(t, err)
	got, err = resolveSource(false)
	require.NoError(t, err)
	assert.Equal(t, ex.Text, got)

	genExample = "does-not-exist"
	_, err = resolveSource(false)
	assert.Error(t, err)
}

func TestParseNoteDate(t *testing.T) {
	date, err := parseNoteDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", date.Format("2006-01-02"))

	date, err = parseNoteDate("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), date, time.Minute)

	_, err = parseNoteDate("01/03/2024")
	assert.Error(t, err)
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "a b c", snippet("a\n  b\tc", 10))
	assert.Equal(t, "abcde...", snippet("abcdefgh", 5))
}

func TestConfigurableKeysCoverProviders(t *testing.T) {
	keys := configurableKeys()
	assert.Contains(t, keys, "provider")
	assert.Contains(t, keys, "serve.addr")
	assert.Contains(t, keys, "api_keys.groq")
	assert.Contains(t, keys, "endpoints.gemini")
}

func TestSetKeyValueWritesOnlyValidConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("INFOSLIDE_API_KEYS_OPENAI", "sk-from-env")
	require.Empty(t, viper.ConfigFileUsed())

	setKeyValue("provider", "gemini")
	path := filepath.Join(home, src.ConfigDir, src.ConfigName+".yaml")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	assert.Equal(t, "gemini", v.GetString("provider"))
	assert.Equal(t, src.CurrentSchemaVersion, v.GetString("schema_version"))
	assert.False(t, v.IsSet("api_keys.openai"))

	setKeyValue("provider", "mistral")
	setKeyValue("not_a_key", "x")
	require.NoError(t, v.ReadInConfig())
	assert.Equal(t, "gemini", v.GetString("provider"))
	assert.False(t, v.IsSet("not_a_key"))
}
