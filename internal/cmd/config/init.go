package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noiriko/create-noiriko/internal/config"
	oerrors "github.com/noiriko/create-noiriko/internal/errors"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *config.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default settings file",
		Long: `Create a settings file with default values and comments.

The file is created at ~/.noiriko/config.yaml by default.
Use --config or NOIRIKO_CONFIG to choose a different location.

Settings only change how create-noiriko looks and logs, never what it
generates.

Examples:
  # Create the settings file
  create-noiriko config init

  # Overwrite an existing settings file
  create-noiriko config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing settings file")

	return c
}

func runInit(c *cobra.Command, gc *config.GlobalConfig, force bool) error {
	path := ""
	if gc != nil {
		path = gc.ConfigPath
	}
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			notFound := oerrors.NewNotFoundError(
				"could not determine home directory",
				"$HOME",
				"Set HOME or pass --config with an explicit path.",
			)
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: notFound}
		}
	}

	if err := config.WriteDefault(path, force); err != nil {
		if errors.Is(err, oerrors.ErrExists) {
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
		}
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err:  fmt.Errorf("writing settings file: %w", err),
		}
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		expanded = path
	}
	fmt.Fprintf(c.OutOrStdout(), "Settings file created: %s\n", expanded)
	return nil
}
