package config

// GlobalConfig holds CLI-wide settings resolved during PersistentPreRunE.
// It is populated once at startup and passed into every sub-command
// constructor.
type GlobalConfig struct {
	// Settings is the loaded settings file merged with the environment.
	Settings *Settings

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Verbose enables debug logging.
	Verbose bool

	// Accessible switches prompts to screen-reader mode.
	Accessible bool
}
