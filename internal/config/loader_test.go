package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	guessDir := filepath.Join(tmpDir, ".guess")
	require.NoError(t, os.MkdirAll(guessDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(guessDir, "config.yaml"), []byte(content), 0o644))
	return tmpDir
}

func TestLoadConfig_Default(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.False(t, cfg.RevealSecret)
	assert.Equal(t, DefaultColor, cfg.Color)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	t.Parallel()

	tmpDir := writeConfig(t, `reveal_secret: true
color: never
log_level: debug
`)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.True(t, cfg.RevealSecret)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	t.Parallel()

	tmpDir := writeConfig(t, "reveal_secret: true\n")

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.True(t, cfg.RevealSecret)
	assert.Equal(t, DefaultColor, cfg.Color)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(writeConfig(t, "color: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	// The secret range is fixed; a range key must not be silently ignored.
	_, err := LoadConfig(writeConfig(t, "max: 1000\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"unknown color", "color: rainbow\n", "color"},
		{"empty color", "color: \"\"\n", "color"},
		{"unknown log level", "log_level: chatty\n", "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, IsValidationError(err))

			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLoadConfigFile_ExplicitPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: always\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, cfg.Color)
}

func TestLoadConfigFile_UnreadablePath(t *testing.T) {
	t.Parallel()

	// A directory cannot be read as a file.
	_, err := LoadConfigFile(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidationError_Message(t *testing.T) {
	err := ValidationError{Field: "color", Message: "must be one of auto, always, never"}
	assert.Equal(t, "validation error: color: must be one of auto, always, never", err.Error())
	assert.False(t, IsValidationError(os.ErrNotExist))
}
