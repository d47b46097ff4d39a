package templates

import "github.com/noiriko/create-noiriko/internal/project"

// Base returns the shared monorepo scaffold: the Next.js app shell, the UI
// package, and the eslint and typescript config packages. Only the project
// name is substituted; auth, database, and addons never influence it.
func Base(cfg project.Config) ([]File, error) {
	return NewRenderer(Data{Name: cfg.Name, Title: DisplayTitle(cfg.Name)}).RenderBundle(baseBundle)
}

// Meta returns the root .gitignore and README.md.
func Meta(cfg project.Config) ([]File, error) {
	return NewRenderer(NewData(cfg)).RenderBundle(metaBundle)
}
