package install

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/noiriko/create-noiriko/internal/errors"
	"github.com/noiriko/create-noiriko/internal/project"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		pm   project.PackageManager
		want string
	}{
		{project.PackageManagerNPM, "npm install"},
		{project.PackageManagerPNPM, "pnpm install"},
		{project.PackageManagerBun, "bun install"},
		{project.PackageManagerYarn, "yarn"},
		{project.PackageManager("deno"), "pnpm install"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pm), func(t *testing.T) {
			assert.Equal(t, tt.want, CommandFor(tt.pm).String())
		})
	}
}

func TestCommandForCoversAllValues(t *testing.T) {
	for _, pm := range project.PackageManager("").Values() {
		assert.Equal(t, string(pm), CommandFor(pm).Name)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "10.4.1\n", want: "10.4.1"},
		{name: "leading v", raw: "v1.1.38", want: "1.1.38"},
		{name: "multi line", raw: "1.22.22\nextra\n", want: "1.22.22"},
		{name: "garbage", raw: "not a version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestVersionWarning(t *testing.T) {
	assert.Empty(t, VersionWarning(project.PackageManagerPNPM, semver.MustParse("10.0.0")))

	warning := VersionWarning(project.PackageManagerPNPM, semver.MustParse("9.15.0"))
	assert.Contains(t, warning, "pnpm 9.15.0")
	assert.Contains(t, warning, "10.4.1")
}

func TestInstallMissingExecutable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	err := NewRunner(nil, nil).Install(context.Background(), project.PackageManagerPNPM, t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrInstall)
	assert.Contains(t, err.Error(), "pnpm not found")
}

// fakeBin writes an executable shell script named name into a fresh PATH.
func fakeBin(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes need a POSIX shell")
	}
	bin := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bin, name), []byte("#!/bin/sh\n"+script), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestInstallRunsInProjectDir(t *testing.T) {
	fakeBin(t, "bun", `echo "$@"; pwd`)
	dir := t.TempDir()

	var stdout bytes.Buffer
	err := NewRunner(&stdout, nil).Install(context.Background(), project.PackageManagerBun, dir)
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "install")
	assert.Contains(t, stdout.String(), resolved)
}

func TestInstallNonZeroExit(t *testing.T) {
	fakeBin(t, "yarn", `echo boom >&2; exit 3`)

	var stderr bytes.Buffer
	err := NewRunner(nil, &stderr).Install(context.Background(), project.PackageManagerYarn, t.TempDir())
	assert.ErrorIs(t, err, oerrors.ErrInstall)
	assert.Contains(t, stderr.String(), "boom")
}

func TestVersion(t *testing.T) {
	fakeBin(t, "npm", `echo 10.9.0`)

	v, err := NewRunner(nil, nil).Version(context.Background(), project.PackageManagerNPM)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), v.Major())
}

func TestCheckVersionNeverFails(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	assert.NotPanics(t, func() {
		NewRunner(nil, nil).CheckVersion(context.Background(), project.PackageManagerPNPM)
	})
}
