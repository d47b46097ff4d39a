package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for settings.
const envPrefix = "NOIRIKO"

// Settings keys, also used to derive environment variable names.
const (
	KeyLogTimestamps     = "log.timestamps"
	KeyLogVerbose        = "log.verbose"
	KeyPromptsAccessible = "prompts.accessible"
)

var settingKeys = []string{KeyLogTimestamps, KeyLogVerbose, KeyPromptsAccessible}

// EnvName returns the environment variable bound to a settings key.
func EnvName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Loader handles loading and merging settings from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new settings loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range settingKeys {
		_ = v.BindEnv(key, EnvName(key))
	}

	return &Loader{v: v}
}

// Load loads settings from the given file path.
// If configFile is empty, it uses the default settings file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Settings, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// A missing file is fine: defaults and env vars still apply.
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &s, nil
}

// LoadWithDefaults loads settings and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Settings, error) {
	s, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return s.WithDefaults(), nil
}

// ConfigFileExists checks if the settings file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
