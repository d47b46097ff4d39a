package templates

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/noiriko/create-noiriko/internal/project"
)

// File is one generated file, addressed relative to the project root.
type File struct {
	// Path is slash-separated; ancestor directories may not exist yet.
	Path string

	// Content is the final file body.
	Content []byte
}

// Data holds the values substituted into .tmpl files.
type Data struct {
	// Name is the project name (e.g., "my-app").
	Name string

	// Title is the display form of Name (e.g., "My App").
	Title string

	// PackageManager is the selected package manager.
	PackageManager string

	// Auth is the auth provider, empty when none was selected.
	Auth string

	// Database is the database, empty when none was selected.
	Database string

	// Addons lists the selected addon tags in canonical order.
	Addons []string

	DrizzleDriver      string
	DrizzleCredentials string
	DatabaseURL        string
	PrismaProvider     string
}

// NewData derives the substitution values for a configuration.
func NewData(cfg project.Config) Data {
	d := Data{
		Name:               cfg.Name,
		Title:              DisplayTitle(cfg.Name),
		PackageManager:     cfg.PackageManager.String(),
		DrizzleDriver:      DrizzleDriver(cfg.Database),
		DrizzleCredentials: DrizzleCredentials(cfg.Database),
		DatabaseURL:        DatabaseURL(cfg.Database),
		PrismaProvider:     PrismaProvider(cfg.Database),
	}
	if cfg.Auth != project.AuthNone {
		d.Auth = cfg.Auth.String()
	}
	if cfg.Database != project.DatabaseNone {
		d.Database = cfg.Database.String()
	}
	for _, a := range cfg.Addons {
		d.Addons = append(d.Addons, a.String())
	}
	return d
}

// Run returns the command that starts a package.json script with the
// selected package manager.
func (d Data) Run(script string) string {
	return project.PackageManager(d.PackageManager).RunCommand(script)
}

// DisplayTitle turns a kebab-case project name into words in title case.
// Example: "my-app" -> "My App"
func DisplayTitle(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}
