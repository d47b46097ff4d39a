package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads settings from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
log:
  timestamps: false
  verbose: true
prompts:
  accessible: true
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		s, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		require.NotNil(t, s.Log.Timestamps)
		assert.False(t, *s.Log.Timestamps)
		require.NotNil(t, s.Log.Verbose)
		assert.True(t, *s.Log.Verbose)
		require.NotNil(t, s.Prompts.Accessible)
		assert.True(t, *s.Prompts.Accessible)
	})

	t.Run("returns empty settings for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		s, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Nil(t, s.Log.Timestamps)
		assert.Nil(t, s.Prompts.Accessible)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("NOIRIKO_LOG_TIMESTAMPS", "false")
		t.Setenv("NOIRIKO_PROMPTS_ACCESSIBLE", "true")

		configFile := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		s, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		require.NotNil(t, s.Log.Timestamps)
		assert.False(t, *s.Log.Timestamps)
		require.NotNil(t, s.Prompts.Accessible)
		assert.True(t, *s.Prompts.Accessible)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("NOIRIKO_LOG_VERBOSE", "false")

		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("log:\n  verbose: true\n"), 0o644))

		s, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		require.NotNil(t, s.Log.Verbose)
		assert.False(t, *s.Log.Verbose)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("log: [unclosed"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestLoaderLoadWithDefaults(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

	s, err := NewLoader().LoadWithDefaults(configFile)

	require.NoError(t, err)
	assert.True(t, *s.Log.Timestamps)
	assert.False(t, *s.Log.Verbose)
	assert.False(t, *s.Prompts.Accessible)
}

func TestConfigFileExists(t *testing.T) {
	t.Run("returns true for existing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(""), 0o644))

		exists, err := ConfigFileExists(configFile)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("returns false for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		exists, err := ConfigFileExists(configFile)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "NOIRIKO_LOG_TIMESTAMPS", EnvName(KeyLogTimestamps))
	assert.Equal(t, "NOIRIKO_PROMPTS_ACCESSIBLE", EnvName(KeyPromptsAccessible))
}

func TestSettingsWithDefaults(t *testing.T) {
	t.Run("nil receiver yields defaults", func(t *testing.T) {
		var s *Settings
		got := s.WithDefaults()
		assert.Equal(t, DefaultSettings(), got)
	})

	t.Run("set values survive", func(t *testing.T) {
		s := &Settings{Log: LogSettings{Timestamps: boolPtr(false)}}
		got := s.WithDefaults()
		assert.False(t, *got.Log.Timestamps)
		assert.False(t, *got.Log.Verbose)
		assert.Nil(t, s.Log.Verbose, "receiver is not mutated")
	})
}
