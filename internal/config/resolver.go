package config

import (
	"os"
	"strconv"

	"github.com/noiriko/create-noiriko/internal/output"
)

// ConfigSource indicates where a setting value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from the settings file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a setting value together with where it came from.
type ResolvedValue struct {
	Key    string
	Value  any
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]any
}

// ResolveBoolOptions contains options for resolving a boolean setting.
type ResolveBoolOptions struct {
	// Key is the settings key, e.g. "log.timestamps".
	Key string
	// FlagSet reports whether the flag was given on the command line.
	FlagSet bool
	// FlagValue is the flag value; ignored unless FlagSet.
	FlagValue bool
	// ConfigValue is the loaded settings value (nil if not set).
	ConfigValue *bool
	// Default is used when no other source provides a value.
	Default bool
}

type candidate struct {
	source ConfigSource
	value  bool
}

// ResolveBool resolves a boolean setting using precedence:
// (1) flag, (2) environment variable, (3) settings file, (4) default.
//
// Loaded settings already fold in the environment, so an env value is
// attributed to SourceEnv before ConfigValue is consulted.
func ResolveBool(opts ResolveBoolOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]any),
	}

	var candidates []candidate
	add := func(source ConfigSource, value bool) {
		candidates = append(candidates, candidate{source, value})
	}

	if opts.FlagSet {
		add(SourceFlag, opts.FlagValue)
	}
	envValue, envSet := lookupBoolEnv(EnvName(opts.Key))
	if envSet {
		add(SourceEnv, envValue)
	} else if opts.ConfigValue != nil {
		add(SourceConfig, *opts.ConfigValue)
	}
	add(SourceDefault, opts.Default)

	result.Value = candidates[0].value
	result.Source = candidates[0].source
	for _, c := range candidates[1:] {
		if c.source == SourceDefault {
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// Bool returns the resolved value as a bool.
func (r ResolvedValue) Bool() bool {
	b, _ := r.Value.(bool)
	return b
}

func lookupBoolEnv(name string) (value, ok bool) {
	raw, set := os.LookupEnv(name)
	if !set || raw == "" {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		output.Debug("ignoring unparsable environment value", "env", name, "value", raw)
		return false, false
	}
	return b, true
}

// ResolveConfigPathOptions contains options for settings path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved settings path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved settings file path.
	ConfigPath string
	// Source indicates where the path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the settings file path using precedence:
// (1) --config flag, (2) NOIRIKO_CONFIG env, (3) ~/.noiriko/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs setting resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
