// Package cmd provides CLI command implementations.
package cmd

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	cmdconfig "github.com/noiriko/create-noiriko/internal/cmd/config"
	"github.com/noiriko/create-noiriko/internal/cmdutil"
	"github.com/noiriko/create-noiriko/internal/config"
	"github.com/noiriko/create-noiriko/internal/install"
	"github.com/noiriko/create-noiriko/internal/output"
	"github.com/noiriko/create-noiriko/internal/project"
	"github.com/noiriko/create-noiriko/internal/prompt"
	"github.com/noiriko/create-noiriko/internal/vcs"
)

// installer runs the package manager inside a created project.
type installer interface {
	CheckVersion(ctx context.Context, pm project.PackageManager)
	Install(ctx context.Context, pm project.PackageManager, dir string) error
}

// dependencies are the side-effecting collaborators of the create command.
type dependencies struct {
	fs          afero.Fs
	newAsker    func(accessible bool) prompt.Asker
	installer   installer
	initGit     func(dir, message string) error
	interactive func() bool
}

func defaultDependencies() dependencies {
	return dependencies{
		fs:       afero.NewOsFs(),
		newAsker: func(accessible bool) prompt.Asker { return prompt.NewHuhAsker(accessible) },
		installer: install.NewRunner(nil, nil),
		initGit: func(dir, message string) error {
			_, err := vcs.Init(dir, message)
			return err
		},
		interactive: func() bool { return output.IsInputTTY() && output.IsTTY() },
	}
}

// NewRootCmd creates the root command, which creates a project.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultDependencies())
}

func newRootCmd(deps dependencies) *cobra.Command {
	var (
		gc             config.GlobalConfig
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
		opts           createOptions
	)

	rootCmd := &cobra.Command{
		Use:   "create-noiriko [project-name]",
		Short: "Create a new noiriko monorepo project",
		Long: `Create a Turborepo monorepo with a Next.js app and a shared shadcn UI package.

Questions not answered by flags are asked interactively. With --skip-prompts,
unset options take their defaults: pnpm, no auth, no database, no addons.

Examples:
  # Answer everything interactively
  create-noiriko

  # Name the project and pick a stack up front
  create-noiriko my-app --auth clerk --database postgres --orm drizzle

  # Non-interactive, defaults for everything unset
  create-noiriko my-app --skip-prompts --addons api,seo`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &gc, configFlag, verboseFlag, timestampsFlag)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, &opts, &gc, deps)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to settings file (env: NOIRIKO_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	opts.project.AddTo(rootCmd)
	rootCmd.Flags().BoolVar(&opts.skipPrompts, "skip-prompts", false, "Use flags or defaults and never prompt")
	rootCmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Parent directory for the project (default: current directory)")

	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(&gc))

	return rootCmd
}

// initializeGlobals loads settings and sets up logging.
func initializeGlobals(c *cobra.Command, gc *config.GlobalConfig, configFlag string, verboseFlag, timestampsFlag bool) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
	if err != nil {
		output.Debug("could not resolve config path", "error", err)
	}

	// A broken settings file must not block project creation.
	settings, err := config.NewLoader().Load(pathResult.ConfigPath)
	if err != nil {
		output.Debug("config load error", "error", err)
		settings = &config.Settings{}
	}

	verbose := config.ResolveBool(config.ResolveBoolOptions{
		Key:         config.KeyLogVerbose,
		FlagSet:     c.Flags().Changed("verbose"),
		FlagValue:   verboseFlag,
		ConfigValue: settings.Log.Verbose,
	})
	timestamps := config.ResolveBool(config.ResolveBoolOptions{
		Key:         config.KeyLogTimestamps,
		FlagSet:     c.Flags().Changed("timestamps"),
		FlagValue:   timestampsFlag,
		ConfigValue: settings.Log.Timestamps,
		Default:     true,
	})
	accessible := config.ResolveBool(config.ResolveBoolOptions{
		Key:         config.KeyPromptsAccessible,
		ConfigValue: settings.Prompts.Accessible,
	})

	output.SetupLogging(output.LogConfig{
		Verbose:    verbose.Bool(),
		Timestamps: output.BoolPtr(timestamps.Bool()),
	})

	*gc = config.GlobalConfig{
		Settings:   settings,
		ConfigPath: pathResult.ConfigPath,
		Verbose:    verbose.Bool(),
		Accessible: accessible.Bool(),
	}

	output.Debug("initializing CLI", "config", pathResult.ConfigPath, "config_source", pathResult.Source)
	config.LogResolvedValues([]config.ResolvedValue{verbose, timestamps, accessible})

	return nil
}

// createOptions holds the create command's local flags.
type createOptions struct {
	project     cmdutil.ProjectFlags
	skipPrompts bool
	dir         string
}
