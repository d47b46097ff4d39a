// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/noiriko/create-noiriko/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *config.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Settings management",
		Long:  `Settings management for create-noiriko.`,
	}

	c.AddCommand(NewConfigInitCmd(gc))

	return c
}
