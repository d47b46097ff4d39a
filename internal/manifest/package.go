// Package manifest synthesizes the computed project files: package.json
// manifests, the pnpm workspace file, and turbo.json.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/noiriko/create-noiriko/internal/project"
	"github.com/noiriko/create-noiriko/internal/templates"
)

// Shared dependency ranges.
const (
	typescriptVersion = "5.7.3"
	reactVersion      = "^19.0.0"
	typesReactVersion = "^19.0.0"
)

// Workspace package names.
const (
	pkgESLintConfig     = "@workspace/eslint-config"
	pkgTypeScriptConfig = "@workspace/typescript-config"
	pkgUI               = "@workspace/ui"
	pkgWeb              = "@workspace/web"
	pkgEmail            = "@workspace/email"
)

// PackageJSON is a package.json document. Field order matches the order
// written to disk; map-valued fields such as scripts are written with
// sorted keys, the way npm writes dependency maps.
type PackageJSON struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Private          bool              `json:"private"`
	Exports          map[string]string `json:"exports,omitempty"`
	Scripts          map[string]string `json:"scripts,omitempty"`
	Dependencies     map[string]string `json:"dependencies,omitempty"`
	DevDependencies  map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies map[string]string `json:"peerDependencies,omitempty"`
	PackageManager   string            `json:"packageManager,omitempty"`
	Engines          map[string]string `json:"engines,omitempty"`
	Workspaces       []string          `json:"workspaces,omitempty"`
}

// Root returns the root package.json.
func Root(cfg project.Config) PackageJSON {
	ref := WorkspaceRef(cfg.PackageManager)

	pkg := PackageJSON{
		Name:    cfg.Name,
		Version: "0.0.1",
		Private: true,
		Scripts: map[string]string{
			"build":  "turbo build",
			"dev":    "turbo dev",
			"lint":   "turbo lint",
			"format": `prettier --write "**/*.{ts,tsx,md}"`,
		},
		DevDependencies: map[string]string{
			pkgESLintConfig:     ref,
			pkgTypeScriptConfig: ref,
			"prettier":          "^3.6.2",
			"turbo":             "^2.5.5",
			"typescript":        typescriptVersion,
		},
		PackageManager: PackageManagerField(cfg.PackageManager),
		Engines: map[string]string{
			"node": ">=20",
		},
	}

	if cfg.PackageManager.UsesWorkspacesField() {
		pkg.Workspaces = []string{"apps/*", "packages/*"}
	}

	return pkg
}

var authDependencies = map[project.Auth]map[string]string{
	project.AuthBetterAuth: {"better-auth": "^1.0.0"},
	project.AuthClerk:      {"@clerk/nextjs": "^6.0.0"},
	project.AuthNextAuth:   {"next-auth": "^5.0.0"},
	project.AuthLucia:      {"lucia": "^3.2.2"},
}

// Driver packages keyed by drizzle driver module.
var drizzleDriverPackages = map[string]map[string]string{
	"postgres-js":    {"postgres": "^3.4.5"},
	"mysql2":         {"mysql2": "^3.11.5"},
	"better-sqlite3": {"better-sqlite3": "^11.7.0"},
}

var addonDependencies = map[project.Addon]map[string]string{
	project.AddonPayments:  {"stripe": "^17.4.0"},
	project.AddonAnalytics: {"@vercel/analytics": "^1.4.1"},
	project.AddonI18n:      {"next-intl": "^3.26.3"},
}

// Web returns apps/web/package.json.
func Web(cfg project.Config) PackageJSON {
	ref := WorkspaceRef(cfg.PackageManager)

	pkg := PackageJSON{
		Name:    pkgWeb,
		Version: "0.0.1",
		Private: true,
		Scripts: map[string]string{
			"dev":   "next dev",
			"build": "next build",
			"start": "next start",
			"lint":  "next lint",
		},
		Dependencies: map[string]string{
			pkgUI:       ref,
			"next":      "^15.1.3",
			"react":     reactVersion,
			"react-dom": reactVersion,
		},
		DevDependencies: map[string]string{
			"@types/node":         "^20.11.19",
			"@types/react":        typesReactVersion,
			"@types/react-dom":    typesReactVersion,
			pkgESLintConfig:       ref,
			pkgTypeScriptConfig:   ref,
			"autoprefixer":        "^10.4.20",
			"postcss":             "^8.4.49",
			"tailwindcss":         "^3.4.17",
			"tailwindcss-animate": "^1.0.7",
			"typescript":          typescriptVersion,
		},
	}

	maps.Copy(pkg.Dependencies, authDependencies[cfg.Auth])

	switch cfg.EffectiveORM() {
	case project.ORMDrizzle:
		pkg.Dependencies["drizzle-orm"] = "^0.36.0"
		pkg.DevDependencies["drizzle-kit"] = "^0.28.0"
		maps.Copy(pkg.Dependencies, drizzleDriverPackages[templates.DrizzleDriver(cfg.Database)])
	case project.ORMPrisma:
		pkg.Dependencies["@prisma/client"] = "^6.0.0"
		pkg.DevDependencies["prisma"] = "^6.0.0"
	}

	for _, a := range cfg.Addons {
		maps.Copy(pkg.Dependencies, addonDependencies[a])
	}
	if cfg.HasAddon(project.AddonEmail) {
		pkg.Dependencies[pkgEmail] = ref
	}

	return pkg
}

// UI returns packages/ui/package.json.
func UI(cfg project.Config) PackageJSON {
	ref := WorkspaceRef(cfg.PackageManager)

	return PackageJSON{
		Name:    pkgUI,
		Version: "0.0.1",
		Private: true,
		Exports: map[string]string{
			"./button": "./src/components/button.tsx",
			"./card":   "./src/components/card.tsx",
		},
		Scripts: map[string]string{
			"lint": "eslint . --max-warnings 0",
		},
		Dependencies: map[string]string{
			"class-variance-authority": "^0.7.0",
			"clsx":                     "^2.1.1",
			"tailwind-merge":           "^2.5.5",
		},
		DevDependencies: map[string]string{
			"@types/react":      typesReactVersion,
			pkgESLintConfig:     ref,
			pkgTypeScriptConfig: ref,
			"react":             reactVersion,
			"typescript":        typescriptVersion,
		},
		PeerDependencies: map[string]string{
			"react": reactVersion,
		},
	}
}

// Marshal encodes v as JSON with 2-space indentation and a trailing newline.
// HTML escaping is off so values such as ">=20" stay readable.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return buf.Bytes(), nil
}
