package cmd

import (
	"github.com/spf13/cobra"

	"github.com/noiriko/create-noiriko/internal/output"
	"github.com/noiriko/create-noiriko/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show create-noiriko version information.

Displays the CLI version, commit, build date, and Go version.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(_ *cobra.Command, _ []string) error {
	output.Println(version.Get().String())
	return nil
}
