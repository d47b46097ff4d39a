// Package cmdutil provides shared command utilities: flag groups, progress
// reporting, and output helpers for the create command.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noiriko/create-noiriko/internal/project"
	"github.com/noiriko/create-noiriko/internal/prompt"
)

// ProjectFlags holds the flags that preset configuration answers.
type ProjectFlags struct {
	PackageManager string
	Auth           string
	Database       string
	ORM            string
	UI             string
	Addons         []string
	Git            bool
	Install        bool
}

// AddTo registers the project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.PackageManager, "package-manager", "",
		fmt.Sprintf("Package manager to use (%s)", project.JoinValues(project.PackageManager("").Values())))
	cmd.Flags().StringVar(&f.Auth, "auth", "",
		fmt.Sprintf("Authentication provider (%s)", project.JoinValues(project.Auth("").Values())))
	cmd.Flags().StringVar(&f.Database, "database", "",
		fmt.Sprintf("Database to use (%s)", project.JoinValues(project.Database("").Values())))
	cmd.Flags().StringVar(&f.ORM, "orm", "",
		fmt.Sprintf("ORM to use (%s)", project.JoinValues(project.ORM("").Values())))
	cmd.Flags().StringVar(&f.UI, "ui", "",
		fmt.Sprintf("UI library (%s)", project.JoinValues(project.UI("").Values())))
	cmd.Flags().StringSliceVar(&f.Addons, "addons", nil,
		fmt.Sprintf("Additional features, comma separated (%s)", project.JoinValues(project.Addon("").Values())))
	cmd.Flags().BoolVar(&f.Git, "git", false,
		"Initialize a git repository")
	cmd.Flags().BoolVar(&f.Install, "install", false,
		"Install dependencies after creating the project")
}

// Preset converts explicitly set flags into prompt answers. Flags the user
// did not pass stay nil so they are asked or defaulted later.
func (f *ProjectFlags) Preset(cmd *cobra.Command, name string) (prompt.Preset, error) {
	p := prompt.Preset{Name: name}
	changed := cmd.Flags().Changed

	if changed("package-manager") {
		v, err := project.ParsePackageManager(f.PackageManager)
		if err != nil {
			return p, err
		}
		p.PackageManager = &v
	}
	if changed("auth") {
		v, err := project.ParseAuth(f.Auth)
		if err != nil {
			return p, err
		}
		p.Auth = &v
	}
	if changed("database") {
		v, err := project.ParseDatabase(f.Database)
		if err != nil {
			return p, err
		}
		p.Database = &v
	}
	if changed("orm") {
		v, err := project.ParseORM(f.ORM)
		if err != nil {
			return p, err
		}
		p.ORM = &v
	}
	if changed("ui") {
		v, err := project.ParseUI(f.UI)
		if err != nil {
			return p, err
		}
		p.UI = &v
	}
	if changed("addons") {
		addons, err := project.ParseAddons(f.Addons)
		if err != nil {
			return p, err
		}
		p.Addons = addons
	}
	if changed("git") {
		git := f.Git
		p.Git = &git
	}
	if changed("install") {
		install := f.Install
		p.Install = &install
	}

	return p, nil
}
