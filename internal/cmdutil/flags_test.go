package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/noiriko/create-noiriko/internal/errors"
	"github.com/noiriko/create-noiriko/internal/project"
)

func parseProjectFlags(t *testing.T, args ...string) (*ProjectFlags, *cobra.Command) {
	t.Helper()
	var pf ProjectFlags
	cmd := &cobra.Command{Use: "test"}
	pf.AddTo(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return &pf, cmd
}

func TestProjectFlags_AddTo(t *testing.T) {
	var pf ProjectFlags
	cmd := &cobra.Command{Use: "test"}
	pf.AddTo(cmd)

	for _, name := range []string{"package-manager", "auth", "database", "orm", "ui"} {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "", f.DefValue, name)
		assert.Equal(t, "string", f.Value.Type(), name)
	}

	addons := cmd.Flags().Lookup("addons")
	require.NotNil(t, addons)
	assert.Equal(t, "stringSlice", addons.Value.Type())
	assert.Contains(t, addons.Usage, "api, email, payments, analytics, seo, i18n")

	for _, name := range []string{"git", "install"} {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, "false", f.DefValue, name)
	}
}

func TestProjectFlags_PresetOnlyChangedFlags(t *testing.T) {
	pf, cmd := parseProjectFlags(t, "--auth", "clerk", "--git")

	p, err := pf.Preset(cmd, "my-app")
	require.NoError(t, err)

	assert.Equal(t, "my-app", p.Name)
	require.NotNil(t, p.Auth)
	assert.Equal(t, project.AuthClerk, *p.Auth)
	require.NotNil(t, p.Git)
	assert.True(t, *p.Git)

	assert.Nil(t, p.PackageManager)
	assert.Nil(t, p.Database)
	assert.Nil(t, p.ORM)
	assert.Nil(t, p.UI)
	assert.Nil(t, p.Addons)
	assert.Nil(t, p.Install)
}

func TestProjectFlags_PresetAllFlags(t *testing.T) {
	pf, cmd := parseProjectFlags(t,
		"--package-manager", "bun",
		"--auth", "lucia",
		"--database", "sqlite",
		"--orm", "drizzle",
		"--ui", "shadcn",
		"--addons", "api,seo",
		"--install=false",
	)

	p, err := pf.Preset(cmd, "")
	require.NoError(t, err)

	assert.Equal(t, project.PackageManagerBun, *p.PackageManager)
	assert.Equal(t, project.AuthLucia, *p.Auth)
	assert.Equal(t, project.DatabaseSQLite, *p.Database)
	assert.Equal(t, project.ORMDrizzle, *p.ORM)
	assert.Equal(t, project.UIShadcn, *p.UI)
	assert.Equal(t, []project.Addon{project.AddonAPI, project.AddonSEO}, p.Addons)
	require.NotNil(t, p.Install)
	assert.False(t, *p.Install)
}

func TestProjectFlags_PresetRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"package manager", []string{"--package-manager", "deno"}},
		{"auth", []string{"--auth", "auth0"}},
		{"database", []string{"--database", "oracle"}},
		{"orm", []string{"--orm", "typeorm"}},
		{"ui", []string{"--ui", "mui"}},
		{"addon", []string{"--addons", "api,blog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, cmd := parseProjectFlags(t, tt.args...)
			_, err := pf.Preset(cmd, "my-app")
			assert.ErrorIs(t, err, oerrors.ErrValidation)
		})
	}
}
