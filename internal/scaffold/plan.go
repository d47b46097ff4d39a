// Package scaffold materializes a project configuration onto a filesystem.
package scaffold

import (
	"bytes"
	"fmt"

	"github.com/samber/lo"

	oerrors "github.com/noiriko/create-noiriko/internal/errors"
	"github.com/noiriko/create-noiriko/internal/manifest"
	"github.com/noiriko/create-noiriko/internal/project"
	"github.com/noiriko/create-noiriko/internal/templates"
)

// MergeablePaths may be produced by more than one stage. Later content is
// appended after earlier content, separated by a blank line.
var MergeablePaths = []string{
	"apps/web/.env.example",
}

// SkeletonDirs are created before any file is written, even when empty.
var SkeletonDirs = []string{
	"apps/web",
	"apps/web/src/app",
	"apps/web/src/components",
	"apps/web/src/lib",
	"apps/web/public",
	"packages/ui/src",
	"packages/ui/src/components",
	"packages/eslint-config",
	"packages/typescript-config",
}

type stagePlan struct {
	stage Stage
	files []templates.File

	// merged marks paths whose content was folded in from a later stage.
	merged map[string]bool
}

// Plan resolves every file for cfg in write order without touching a
// filesystem. Mergeable paths appear once with combined content; any other
// duplicate path fails with ErrPathConflict.
func Plan(cfg project.Config) ([]templates.File, error) {
	stages, err := planStages(cfg)
	if err != nil {
		return nil, err
	}
	return lo.FlatMap(stages, func(s stagePlan, _ int) []templates.File {
		return s.files
	}), nil
}

func planStages(cfg project.Config) ([]stagePlan, error) {
	type producer struct {
		stage   Stage
		enabled bool
		resolve func() ([]templates.File, error)
	}

	producers := []producer{
		{StageBase, true, func() ([]templates.File, error) { return templates.Base(cfg) }},
		{StageAuth, cfg.Auth != project.AuthNone, func() ([]templates.File, error) { return templates.Auth(cfg.Auth) }},
		{StageDatabase, cfg.Database != project.DatabaseNone, func() ([]templates.File, error) {
			return templates.Database(cfg.Database, cfg.EffectiveORM())
		}},
		{StageAddons, len(cfg.Addons) > 0, func() ([]templates.File, error) { return templates.AddonsFor(cfg) }},
		{StageManifests, true, func() ([]templates.File, error) { return manifest.Files(cfg) }},
	}

	var stages []stagePlan
	owner := map[string]struct{ stage, index int }{}

	for _, p := range producers {
		if !p.enabled {
			continue
		}
		files, err := p.resolve()
		if err != nil {
			return nil, fmt.Errorf("resolving %s files: %w", p.stage, err)
		}

		sp := stagePlan{stage: p.stage, merged: map[string]bool{}}
		for _, f := range files {
			prev, seen := owner[f.Path]
			if !seen {
				owner[f.Path] = struct{ stage, index int }{len(stages), len(sp.files)}
				sp.files = append(sp.files, f)
				continue
			}
			if !lo.Contains(MergeablePaths, f.Path) {
				return nil, oerrors.Wrap(oerrors.ErrPathConflict,
					fmt.Sprintf("%s produced by both %s and %s", f.Path, stageOf(stages, sp, prev.stage), p.stage))
			}

			target := &sp
			if prev.stage < len(stages) {
				target = &stages[prev.stage]
			}
			existing := &target.files[prev.index]
			existing.Content = appendSection(existing.Content, f.Content)
			target.merged[f.Path] = true
		}
		stages = append(stages, sp)
	}

	return stages, nil
}

func stageOf(done []stagePlan, current stagePlan, i int) Stage {
	if i < len(done) {
		return done[i].stage
	}
	return current.stage
}

func appendSection(existing, next []byte) []byte {
	out := make([]byte, 0, len(existing)+len(next)+2)
	out = append(out, existing...)
	if len(out) > 0 && !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	if len(out) > 0 {
		out = append(out, '\n')
	}
	return append(out, next...)
}
