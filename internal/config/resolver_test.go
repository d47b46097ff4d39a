package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBool_FlagPrecedence(t *testing.T) {
	t.Setenv("NOIRIKO_LOG_TIMESTAMPS", "true")

	result := ResolveBool(ResolveBoolOptions{
		Key:         KeyLogTimestamps,
		FlagSet:     true,
		FlagValue:   false,
		ConfigValue: boolPtr(true),
		Default:     true,
	})

	assert.False(t, result.Bool())
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, true, result.Shadowed[SourceEnv])
	assert.NotContains(t, result.Shadowed, SourceConfig, "env already folds in config")
}

func TestResolveBool_EnvPrecedence(t *testing.T) {
	t.Setenv("NOIRIKO_LOG_VERBOSE", "1")

	result := ResolveBool(ResolveBoolOptions{
		Key:         KeyLogVerbose,
		ConfigValue: boolPtr(true),
	})

	assert.True(t, result.Bool())
	assert.Equal(t, SourceEnv, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolveBool_ConfigFallback(t *testing.T) {
	t.Setenv("NOIRIKO_PROMPTS_ACCESSIBLE", "")

	result := ResolveBool(ResolveBoolOptions{
		Key:         KeyPromptsAccessible,
		ConfigValue: boolPtr(true),
	})

	assert.True(t, result.Bool())
	assert.Equal(t, SourceConfig, result.Source)
}

func TestResolveBool_Default(t *testing.T) {
	t.Setenv("NOIRIKO_LOG_TIMESTAMPS", "")

	result := ResolveBool(ResolveBoolOptions{Key: KeyLogTimestamps, Default: true})

	assert.True(t, result.Bool())
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolveBool_UnparsableEnvIgnored(t *testing.T) {
	t.Setenv("NOIRIKO_LOG_VERBOSE", "sometimes")

	result := ResolveBool(ResolveBoolOptions{Key: KeyLogVerbose})

	assert.False(t, result.Bool())
	assert.Equal(t, SourceDefault, result.Source)
}

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue: "/flag/path/config.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/path/config.yaml", result.Shadowed[SourceEnv])
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/env/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceEnv, result.Source)
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv(EnvConfig, "")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigPath, ".noiriko")
	assert.Contains(t, result.ConfigPath, "config.yaml")
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "flag", string(SourceFlag))
	assert.Equal(t, "env", string(SourceEnv))
	assert.Equal(t, "config", string(SourceConfig))
	assert.Equal(t, "default", string(SourceDefault))
}
