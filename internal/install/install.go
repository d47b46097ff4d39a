// Package install runs the package manager inside a created project.
package install

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/noiriko/create-noiriko/internal/errors"
	"github.com/noiriko/create-noiriko/internal/manifest"
	"github.com/noiriko/create-noiriko/internal/output"
	"github.com/noiriko/create-noiriko/internal/project"
)

// Command is an executable with arguments.
type Command struct {
	Name string
	Args []string
}

// String renders the command as typed in a shell.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// CommandFor returns the install command for a package manager. Yarn
// classic installs with no subcommand; unknown values use pnpm.
func CommandFor(pm project.PackageManager) Command {
	switch pm {
	case project.PackageManagerNPM:
		return Command{Name: "npm", Args: []string{"install"}}
	case project.PackageManagerBun:
		return Command{Name: "bun", Args: []string{"install"}}
	case project.PackageManagerYarn:
		return Command{Name: "yarn"}
	default:
		return Command{Name: "pnpm", Args: []string{"install"}}
	}
}

// Runner executes package manager commands.
type Runner struct {
	// Stdout and Stderr receive the child's output. Nil means os.Stdout
	// and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a runner streaming to the given writers.
func NewRunner(stdout, stderr io.Writer) *Runner {
	return &Runner{Stdout: stdout, Stderr: stderr}
}

// Install runs the install command in dir. Any failure, including a missing
// executable or a non-zero exit, wraps errors.ErrInstall.
func (r *Runner) Install(ctx context.Context, pm project.PackageManager, dir string) error {
	c := CommandFor(pm)

	path, err := exec.LookPath(c.Name)
	if err != nil {
		return &oerrors.DetailError{
			Type:     "install failed",
			Message:  fmt.Sprintf("%s not found in PATH", c.Name),
			Location: dir,
			Hint:     fmt.Sprintf("Install %s, or rerun without --install and run %q yourself", c.Name, c.String()),
			Cause:    oerrors.ErrInstall,
		}
	}

	output.Debug("running install", "command", c.String(), "dir", dir)

	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Dir = dir
	cmd.Stdout = writerOr(r.Stdout, os.Stdout)
	cmd.Stderr = writerOr(r.Stderr, os.Stderr)

	if err := cmd.Run(); err != nil {
		return &oerrors.DetailError{
			Type:     "install failed",
			Message:  fmt.Sprintf("%s: %v", c.String(), err),
			Location: dir,
			Hint:     fmt.Sprintf("Run %q inside the project to retry", c.String()),
			Cause:    oerrors.ErrInstall,
		}
	}
	return nil
}

// CheckVersion probes the installed package manager and logs a warning when
// its major version differs from the pinned one. It never fails.
func (r *Runner) CheckVersion(ctx context.Context, pm project.PackageManager) {
	v, err := r.Version(ctx, pm)
	if err != nil {
		output.Debug("could not determine package manager version", "error", err)
		return
	}
	if w := VersionWarning(pm, v); w != "" {
		output.Warn(w)
	}
}

// Version asks the package manager for its version.
func (r *Runner) Version(ctx context.Context, pm project.PackageManager) (*semver.Version, error) {
	name := CommandFor(pm).Name
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s --version: %w", name, err)
	}
	return ParseVersion(out.String())
}

// ParseVersion parses the first line of a --version output.
func ParseVersion(raw string) (*semver.Version, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(raw), "\n")
	v, err := semver.NewVersion(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", line, err)
	}
	return v, nil
}

// VersionWarning compares an installed version with the pinned release and
// returns a warning when the major versions differ, or "" when they match.
func VersionWarning(pm project.PackageManager, installed *semver.Version) string {
	pinned := manifest.PinnedVersion(pm)
	if installed.Major() == pinned.Major() {
		return ""
	}
	return fmt.Sprintf("%s %s is installed but the project pins %s; corepack or a matching release avoids lockfile churn",
		CommandFor(pm).Name, installed, pinned)
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
