package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/noiriko/create-noiriko/internal/manifest"
	"github.com/noiriko/create-noiriko/internal/project"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Result describes a completed materialization.
type Result struct {
	// Root is the project directory.
	Root string

	// Files lists every written path, project-relative, in write order.
	Files []string

	// Warnings are non-fatal findings, such as manifest schema issues.
	Warnings []string
}

// Materializer writes a project onto a filesystem and reports progress.
type Materializer struct {
	// FS receives every write. Defaults to the OS filesystem.
	FS afero.Fs

	// Reporter receives progress events. Defaults to NopReporter.
	Reporter Reporter
}

// Materialize validates cfg and writes the full project under root.
// A write failure aborts immediately; files already written stay in place.
func (m *Materializer) Materialize(cfg project.Config, root string) (*Result, error) {
	fsys := m.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	reporter := m.Reporter
	if reporter == nil {
		reporter = NopReporter
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stages, err := planStages(cfg)
	if err != nil {
		return nil, err
	}

	if err := fsys.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("creating %s: %w", root, err)
	}
	for _, dir := range SkeletonDirs {
		if err := fsys.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), dirPerm); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	result := &Result{Root: root}

	for _, sp := range stages {
		reporter.Report(Event{Kind: StageStarted, Stage: sp.stage})

		for _, f := range sp.files {
			target := filepath.Join(root, filepath.FromSlash(f.Path))
			if err := fsys.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
				return result, fmt.Errorf("creating directory for %s: %w", f.Path, err)
			}
			if err := afero.WriteFile(fsys, target, f.Content, filePerm); err != nil {
				return result, fmt.Errorf("writing %s: %w", f.Path, err)
			}

			result.Files = append(result.Files, f.Path)
			reporter.Report(Event{
				Kind:   FileWritten,
				Stage:  sp.stage,
				Path:   f.Path,
				Bytes:  len(f.Content),
				Merged: sp.merged[f.Path],
			})

			if isPackageManifest(f.Path) {
				result.Warnings = append(result.Warnings, checkManifest(f.Path, f.Content)...)
			}
		}

		reporter.Report(Event{Kind: StageFinished, Stage: sp.stage, Files: len(sp.files)})
	}

	return result, nil
}

func isPackageManifest(path string) bool {
	switch path {
	case manifest.RootPackagePath, manifest.WebPackagePath, manifest.UIPackagePath:
		return true
	default:
		return false
	}
}

func checkManifest(path string, doc []byte) []string {
	issues, err := manifest.Validate(doc)
	if err != nil {
		return []string{fmt.Sprintf("%s: %v", path, err)}
	}
	warnings := make([]string, 0, len(issues))
	for _, issue := range issues {
		warnings = append(warnings, fmt.Sprintf("%s: %s", path, issue))
	}
	return warnings
}
