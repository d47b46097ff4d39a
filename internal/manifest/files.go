package manifest

import (
	"fmt"

	"github.com/noiriko/create-noiriko/internal/project"
	"github.com/noiriko/create-noiriko/internal/templates"
)

// Computed file paths.
const (
	RootPackagePath = "package.json"
	WebPackagePath  = "apps/web/package.json"
	UIPackagePath   = "packages/ui/package.json"
	WorkspacePath   = "pnpm-workspace.yaml"
	TurboPath       = "turbo.json"
)

// Files returns every computed manifest for a configuration, followed by the
// root .gitignore and README.md.
func Files(cfg project.Config) ([]templates.File, error) {
	docs := []struct {
		path string
		v    any
	}{
		{RootPackagePath, Root(cfg)},
		{WebPackagePath, Web(cfg)},
		{UIPackagePath, UI(cfg)},
	}

	files := make([]templates.File, 0, len(docs)+4)
	for _, d := range docs {
		content, err := Marshal(d.v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.path, err)
		}
		files = append(files, templates.File{Path: d.path, Content: content})
	}

	ws, ok, err := Workspace(cfg)
	if err != nil {
		return nil, err
	}
	if ok {
		files = append(files, templates.File{Path: WorkspacePath, Content: ws})
	}

	turbo, err := Marshal(Turbo())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TurboPath, err)
	}
	files = append(files, templates.File{Path: TurboPath, Content: turbo})

	meta, err := templates.Meta(cfg)
	if err != nil {
		return nil, err
	}
	return append(files, meta...), nil
}
