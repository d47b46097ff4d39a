// Package project defines the configuration record that drives scaffolding.
package project

import (
	"fmt"
	"strings"

	oerrors "github.com/noiriko/create-noiriko/internal/errors"
)

// PackageManager selects the JavaScript package manager of the generated repo.
type PackageManager string

const (
	PackageManagerNPM  PackageManager = "npm"
	PackageManagerPNPM PackageManager = "pnpm"
	PackageManagerBun  PackageManager = "bun"
	PackageManagerYarn PackageManager = "yarn"
)

// Values returns every package manager in prompt order.
func (PackageManager) Values() []PackageManager {
	return []PackageManager{PackageManagerNPM, PackageManagerPNPM, PackageManagerBun, PackageManagerYarn}
}

func (p PackageManager) String() string { return string(p) }

// UsesWorkspacesField reports whether the root manifest declares workspaces.
// pnpm keeps its workspace list in pnpm-workspace.yaml instead.
func (p PackageManager) UsesWorkspacesField() bool {
	return p == PackageManagerNPM || p == PackageManagerYarn || p == PackageManagerBun
}

// RunCommand returns the command line that starts a package.json script.
func (p PackageManager) RunCommand(script string) string {
	if p == PackageManagerNPM || p == PackageManagerYarn {
		return fmt.Sprintf("%s run %s", p, script)
	}
	return fmt.Sprintf("%s %s", p, script)
}

// ParsePackageManager parses a package manager name.
func ParsePackageManager(s string) (PackageManager, error) {
	return parseEnum(s, "--package-manager", PackageManager("").Values())
}

// Auth selects the authentication provider.
type Auth string

const (
	AuthNone       Auth = "none"
	AuthBetterAuth Auth = "better-auth"
	AuthClerk      Auth = "clerk"
	AuthNextAuth   Auth = "next-auth"
	AuthLucia      Auth = "lucia"
)

// Values returns every auth provider in prompt order.
func (Auth) Values() []Auth {
	return []Auth{AuthNone, AuthBetterAuth, AuthClerk, AuthNextAuth, AuthLucia}
}

func (a Auth) String() string { return string(a) }

// ParseAuth parses an auth provider name.
func ParseAuth(s string) (Auth, error) {
	return parseEnum(s, "--auth", Auth("").Values())
}

// Database selects the database engine.
type Database string

const (
	DatabaseNone     Database = "none"
	DatabaseSQLite   Database = "sqlite"
	DatabasePostgres Database = "postgres"
	DatabaseMySQL    Database = "mysql"
	DatabaseMongoDB  Database = "mongodb"
)

// Values returns every database in prompt order.
func (Database) Values() []Database {
	return []Database{DatabaseNone, DatabaseSQLite, DatabasePostgres, DatabaseMySQL, DatabaseMongoDB}
}

func (d Database) String() string { return string(d) }

// ParseDatabase parses a database name.
func ParseDatabase(s string) (Database, error) {
	return parseEnum(s, "--database", Database("").Values())
}

// ORM selects the data access library.
type ORM string

const (
	ORMNone    ORM = "none"
	ORMDrizzle ORM = "drizzle"
	ORMPrisma  ORM = "prisma"
)

// Values returns every ORM in prompt order.
func (ORM) Values() []ORM {
	return []ORM{ORMNone, ORMDrizzle, ORMPrisma}
}

func (o ORM) String() string { return string(o) }

// ParseORM parses an ORM name.
func ParseORM(s string) (ORM, error) {
	return parseEnum(s, "--orm", ORM("").Values())
}

// UI selects the component library. Only shadcn exists today.
type UI string

const UIShadcn UI = "shadcn"

// Values returns every UI library.
func (UI) Values() []UI { return []UI{UIShadcn} }

func (u UI) String() string { return string(u) }

// ParseUI parses a UI library name.
func ParseUI(s string) (UI, error) {
	return parseEnum(s, "--ui", UI("").Values())
}

// Styling selects the CSS approach. Only tailwind exists today.
type Styling string

const StylingTailwind Styling = "tailwind"

// Values returns every styling option.
func (Styling) Values() []Styling { return []Styling{StylingTailwind} }

func (s Styling) String() string { return string(s) }

// Addon is an optional feature bundle.
type Addon string

const (
	AddonAPI       Addon = "api"
	AddonEmail     Addon = "email"
	AddonPayments  Addon = "payments"
	AddonAnalytics Addon = "analytics"
	AddonSEO       Addon = "seo"
	AddonI18n      Addon = "i18n"
)

// Values returns every addon in canonical order.
func (Addon) Values() []Addon {
	return []Addon{AddonAPI, AddonEmail, AddonPayments, AddonAnalytics, AddonSEO, AddonI18n}
}

func (a Addon) String() string { return string(a) }

// ParseAddon parses an addon tag.
func ParseAddon(s string) (Addon, error) {
	return parseEnum(s, "--addons", Addon("").Values())
}

// ParseAddons parses a list of addon tags, rejecting the first unknown one.
func ParseAddons(values []string) ([]Addon, error) {
	addons := make([]Addon, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		a, err := ParseAddon(v)
		if err != nil {
			return nil, err
		}
		addons = append(addons, a)
	}
	return addons, nil
}

func parseEnum[T ~string](s, field string, allowed []T) (T, error) {
	for _, v := range allowed {
		if string(v) == s {
			return v, nil
		}
	}
	return "", oerrors.NewValidationError(
		fmt.Sprintf("unknown value %q", s),
		field,
		fmt.Sprintf("Valid values: %s", JoinValues(allowed)),
	)
}

// JoinValues renders enum values as a comma separated list.
func JoinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

