package project

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/samber/lo"

	oerrors "github.com/noiriko/create-noiriko/internal/errors"
)

var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Config is the fully resolved set of answers for one scaffold run.
// It is built once, normalized, validated, and never mutated afterwards.
type Config struct {
	Name           string
	PackageManager PackageManager
	Auth           Auth
	Database       Database
	ORM            ORM
	UI             UI
	Styling        Styling
	Git            bool
	Install        bool
	Addons         []Addon
}

// Defaults returns the record used when prompts are skipped and no flags are set.
func Defaults() Config {
	return Config{
		PackageManager: PackageManagerPNPM,
		Auth:           AuthNone,
		Database:       DatabaseNone,
		ORM:            ORMNone,
		UI:             UIShadcn,
		Styling:        StylingTailwind,
		Git:            false,
		Install:        false,
		Addons:         []Addon{},
	}
}

// EffectiveORM returns the ORM that actually applies. Without a database
// there is nothing to map, so it is none whatever was stored.
func (c Config) EffectiveORM() ORM {
	if c.Database == DatabaseNone {
		return ORMNone
	}
	return c.ORM
}

// HasAddon reports whether the addon was selected.
func (c Config) HasAddon(a Addon) bool {
	return lo.Contains(c.Addons, a)
}

// Normalize returns a copy with duplicate addons removed and addons in
// canonical order.
func (c Config) Normalize() Config {
	order := Addon("").Values()
	addons := lo.Uniq(c.Addons)
	slices.SortStableFunc(addons, func(a, b Addon) int {
		return rank(order, a) - rank(order, b)
	})
	if addons == nil {
		addons = []Addon{}
	}
	c.Addons = addons
	return c
}

func rank(order []Addon, a Addon) int {
	if i := slices.Index(order, a); i >= 0 {
		return i
	}
	return len(order)
}

// Validate checks the project name and every enum field.
func (c Config) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}

	checks := []struct {
		ok    bool
		field string
		value string
	}{
		{lo.Contains(c.PackageManager.Values(), c.PackageManager), "--package-manager", string(c.PackageManager)},
		{lo.Contains(c.Auth.Values(), c.Auth), "--auth", string(c.Auth)},
		{lo.Contains(c.Database.Values(), c.Database), "--database", string(c.Database)},
		{lo.Contains(c.ORM.Values(), c.ORM), "--orm", string(c.ORM)},
		{lo.Contains(c.UI.Values(), c.UI), "--ui", string(c.UI)},
		{lo.Contains(c.Styling.Values(), c.Styling), "styling", string(c.Styling)},
	}
	for _, chk := range checks {
		if !chk.ok {
			return oerrors.NewValidationError(fmt.Sprintf("unknown value %q", chk.value), chk.field, "")
		}
	}

	for _, a := range c.Addons {
		if !lo.Contains(Addon("").Values(), a) {
			return oerrors.NewValidationError(fmt.Sprintf("unknown addon %q", a), "--addons", "")
		}
	}
	return nil
}

// ValidateName checks that name is usable as a directory and package name.
func ValidateName(name string) error {
	if name == "" {
		return oerrors.NewValidationError(
			"project name is required",
			"project-name",
			"Pass a name as the first argument, e.g. create-noiriko my-app",
		)
	}
	if !namePattern.MatchString(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid project name %q", name),
			"project-name",
			"Use only lowercase letters, numbers, and hyphens",
		)
	}
	return nil
}
