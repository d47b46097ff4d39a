package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/noiriko/create-noiriko/internal/cmdutil"
	"github.com/noiriko/create-noiriko/internal/config"
	oerrors "github.com/noiriko/create-noiriko/internal/errors"
	"github.com/noiriko/create-noiriko/internal/output"
	"github.com/noiriko/create-noiriko/internal/project"
	"github.com/noiriko/create-noiriko/internal/prompt"
	"github.com/noiriko/create-noiriko/internal/scaffold"
	"github.com/noiriko/create-noiriko/internal/vcs"
)

func runCreate(c *cobra.Command, args []string, opts *createOptions, gc *config.GlobalConfig, deps dependencies) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	preset, err := opts.project.Preset(c, name)
	if err != nil {
		return printedExitError("invalid option", err)
	}

	parent, err := parentDir(opts.dir)
	if err != nil {
		return printedExitError("cannot resolve project location", err)
	}

	checkTarget := func(n string) error {
		return ensureAbsent(deps.fs, filepath.Join(parent, n))
	}

	cfg, err := resolveConfig(ctx, preset, opts.skipPrompts, checkTarget, gc, deps)
	if err != nil {
		if errors.Is(err, oerrors.ErrCancelled) {
			output.Println("Operation cancelled")
			return nil
		}
		return printedExitError("cannot create project", err)
	}

	// The directory may have appeared while questions were being answered.
	if err := checkTarget(cfg.Name); err != nil {
		return printedExitError("cannot create project", err)
	}

	root := filepath.Join(parent, cfg.Name)
	result, err := materialize(ctx, cfg, root, gc.Verbose, deps.fs)
	if err != nil {
		return printedExitError("failed to create project", err)
	}

	for _, w := range result.Warnings {
		output.Warn(w)
	}
	output.Println(output.FormatCheckmark("Created " + output.StyleNoun.Render(cfg.Name) + " in " + root))
	output.Println("")
	output.Print(cmdutil.ProjectTree(cfg.Name, result.Files))

	if cfg.Git {
		if err := deps.initGit(root, vcs.InitialCommitMessage); err != nil {
			output.Debug("git init failed", "dir", root, "error", err)
			output.Println(output.FormatWarning("Git repository not initialized: " + err.Error()))
		} else {
			output.Println(output.FormatCheckmark("Git repository initialized"))
		}
	}

	if cfg.Install {
		deps.installer.CheckVersion(ctx, cfg.PackageManager)
		output.Println(output.StyleAction.Render(fmt.Sprintf("Installing dependencies with %s...", cfg.PackageManager)))
		if err := deps.installer.Install(ctx, cfg.PackageManager, root); err != nil {
			return printedExitError("failed to install dependencies", err)
		}
		output.Println(output.FormatCheckmark("Dependencies installed"))
	}

	output.Println("")
	output.Println(output.FormatCheckmark(output.StyleSummary.Render("Project created successfully!")))
	cmdutil.PrintNextSteps(cfg)

	return nil
}

// resolveConfig turns flags and answers into a validated configuration.
// Without a terminal on stdin it behaves as if --skip-prompts were given.
func resolveConfig(
	ctx context.Context,
	preset prompt.Preset,
	skipPrompts bool,
	checkTarget func(string) error,
	gc *config.GlobalConfig,
	deps dependencies,
) (project.Config, error) {
	interactive := deps.interactive()
	q := &prompt.Questionnaire{
		Asker:     deps.newAsker(gc.Accessible),
		Out:       output.Stdout(),
		NameCheck: checkTarget,
	}

	if !skipPrompts && !interactive {
		output.Debug("stdin is not a terminal, using flags and defaults")
		skipPrompts = true
	}

	if !skipPrompts {
		return q.Run(ctx, preset)
	}

	if preset.Name == "" && interactive {
		name, err := q.AskName(ctx, "")
		if err != nil {
			return project.Config{}, err
		}
		preset.Name = name
	}

	return prompt.FromFlags(preset)
}

// materialize writes the project, behind a spinner on an interactive
// terminal and with per-stage log lines otherwise.
func materialize(ctx context.Context, cfg project.Config, root string, verbose bool, fsys afero.Fs) (*scaffold.Result, error) {
	if verbose || !output.IsTTY() {
		m := &scaffold.Materializer{FS: fsys, Reporter: cmdutil.NewProgressReporter(verbose)}
		return m.Materialize(cfg, root)
	}

	var result *scaffold.Result
	m := &scaffold.Materializer{FS: fsys, Reporter: scaffold.NopReporter}
	err := output.RunWithSpinner(ctx, func() error {
		var err error
		result, err = m.Materialize(cfg, root)
		return err
	}, output.WithTitle("Creating project structure..."))
	return result, err
}

func parentDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("getting absolute path: %w", err)
	}
	return abs, nil
}

// ensureAbsent fails when target already exists in any form.
func ensureAbsent(fsys afero.Fs, target string) error {
	exists, err := afero.Exists(fsys, target)
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError(
			fmt.Sprintf("cannot inspect %s", target),
			map[string]string{"path": target},
			"Check the permissions of the parent directory or choose another with --dir.",
		)
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", target, err)
	}
	if exists {
		return oerrors.NewExistsError(target, "Choose a different project name or remove the existing directory.")
	}
	return nil
}
