// Package config provides settings loading and management.
package config

// LogSettings contains logging-related settings.
type LogSettings struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps"`

	// Verbose enables debug logging.
	// Env: NOIRIKO_LOG_VERBOSE, Default: false
	Verbose *bool `mapstructure:"verbose" yaml:"verbose"`
}

// PromptSettings contains settings for the interactive questionnaire.
type PromptSettings struct {
	// Accessible renders prompts in screen-reader friendly mode.
	// Env: NOIRIKO_PROMPTS_ACCESSIBLE, Default: false
	Accessible *bool `mapstructure:"accessible" yaml:"accessible"`
}

// Settings represents the create-noiriko settings file.
// Settings only affect presentation; they never change the generated project.
type Settings struct {
	// Log contains logging-related settings.
	Log LogSettings `mapstructure:"log" yaml:"log"`

	// Prompts contains prompt rendering settings.
	Prompts PromptSettings `mapstructure:"prompts" yaml:"prompts"`
}

// DefaultSettings returns Settings with all default values populated.
// Used by `create-noiriko config init` to generate the initial file.
func DefaultSettings() *Settings {
	return &Settings{
		Log: LogSettings{
			Timestamps: boolPtr(true),
			Verbose:    boolPtr(false),
		},
		Prompts: PromptSettings{
			Accessible: boolPtr(false),
		},
	}
}

// WithDefaults returns a copy with unset values filled from DefaultSettings.
func (s *Settings) WithDefaults() *Settings {
	d := DefaultSettings()
	if s == nil {
		return d
	}

	out := *s
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = d.Log.Timestamps
	}
	if out.Log.Verbose == nil {
		out.Log.Verbose = d.Log.Verbose
	}
	if out.Prompts.Accessible == nil {
		out.Prompts.Accessible = d.Prompts.Accessible
	}
	return &out
}

func boolPtr(b bool) *bool {
	return &b
}
