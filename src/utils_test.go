package src_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"infoslide/src"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "Not set", src.MaskSecret(""))
	assert.Equal(t, "***", src.MaskSecret("abc"))
	assert.Equal(t, "********wxyz", src.MaskSecret("sk-abcdefwxyz"))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := src.ExpandHome("~/.infoslide/notes.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".infoslide", "notes.yaml"), got)

	got, err = src.ExpandHome("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)

	got, err = src.ExpandHome("~user/path")
	require.NoError(t, err)
	assert.Equal(t, "~user/path", got)
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	logger := src.SetupLogger("info", &buf)
	logger.Debug("hidden")
	logger.Info("shown", "stage", "structuring")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "stage=structuring")
	assert.Same(t, logger, slog.Default())

	buf.Reset()
	src.SetupLogger("nonsense", &buf).Info("dropped")
	assert.Empty(t, buf.String())
}
