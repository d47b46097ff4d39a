package prompt

import (
	"context"
	"io"

	"github.com/samber/lo"

	oerrors "github.com/noiriko/create-noiriko/internal/errors"
	"github.com/noiriko/create-noiriko/internal/output"
	"github.com/noiriko/create-noiriko/internal/project"
	"github.com/noiriko/create-noiriko/internal/templates"
)

// Preset holds answers already given as flags. Nil fields are unanswered.
type Preset struct {
	Name           string
	PackageManager *project.PackageManager
	Auth           *project.Auth
	Database       *project.Database
	ORM            *project.ORM
	UI             *project.UI
	// Addons is nil when --addons was not given.
	Addons  []project.Addon
	Git     *bool
	Install *bool
}

// Apply fills cfg with every preset value, leaving the rest untouched.
func (p Preset) Apply(cfg project.Config) project.Config {
	if p.Name != "" {
		cfg.Name = p.Name
	}
	if p.PackageManager != nil {
		cfg.PackageManager = *p.PackageManager
	}
	if p.Auth != nil {
		cfg.Auth = *p.Auth
	}
	if p.Database != nil {
		cfg.Database = *p.Database
	}
	if p.ORM != nil {
		cfg.ORM = *p.ORM
	}
	if p.UI != nil {
		cfg.UI = *p.UI
	}
	if p.Addons != nil {
		cfg.Addons = p.Addons
	}
	if p.Git != nil {
		cfg.Git = *p.Git
	}
	if p.Install != nil {
		cfg.Install = *p.Install
	}
	return cfg
}

// FromFlags builds the configuration used with --skip-prompts: defaults
// overridden by whatever flags were given.
func FromFlags(p Preset) (project.Config, error) {
	cfg := p.Apply(project.Defaults()).Normalize()
	if err := cfg.Validate(); err != nil {
		return project.Config{}, err
	}
	return cfg, nil
}

// Questionnaire asks for everything a Preset leaves open.
type Questionnaire struct {
	Asker Asker

	// Out receives the configuration summary before the final confirmation.
	Out io.Writer

	// NameCheck, when set, runs right after the name is known so an
	// unusable target fails before the remaining questions.
	NameCheck func(name string) error
}

// AskName returns the preset name or asks for one.
func (q *Questionnaire) AskName(ctx context.Context, preset string) (string, error) {
	if preset != "" {
		return preset, project.ValidateName(preset)
	}
	return q.Asker.Input(ctx, "What is your project named?", "my-noiriko-app", project.ValidateName)
}

// Run asks the open questions in order, shows a summary, and asks for
// confirmation. Declining returns errors.ErrCancelled.
func (q *Questionnaire) Run(ctx context.Context, p Preset) (project.Config, error) {
	cfg := p.Apply(project.Defaults())

	name, err := q.AskName(ctx, p.Name)
	if err != nil {
		return project.Config{}, err
	}
	cfg.Name = name
	if q.NameCheck != nil {
		if err := q.NameCheck(name); err != nil {
			return project.Config{}, err
		}
	}

	if p.PackageManager == nil {
		cfg.PackageManager, err = askEnum(ctx, q.Asker, "Which package manager would you like to use?",
			project.PackageManager("").Values(), templates.PackageManagerOption, cfg.PackageManager, project.ParsePackageManager)
		if err != nil {
			return project.Config{}, err
		}
	}

	if p.Auth == nil {
		cfg.Auth, err = askEnum(ctx, q.Asker, "Which authentication provider would you like to use?",
			project.Auth("").Values(), templates.AuthOption, cfg.Auth, project.ParseAuth)
		if err != nil {
			return project.Config{}, err
		}
	}

	if p.Database == nil {
		cfg.Database, err = askEnum(ctx, q.Asker, "Which database would you like to use?",
			project.Database("").Values(), templates.DatabaseOption, cfg.Database, project.ParseDatabase)
		if err != nil {
			return project.Config{}, err
		}
	}

	if p.ORM == nil && cfg.Database != project.DatabaseNone {
		cfg.ORM, err = askEnum(ctx, q.Asker, "Which ORM would you like to use?",
			project.ORM("").Values(), templates.ORMOption, project.ORMDrizzle, project.ParseORM)
		if err != nil {
			return project.Config{}, err
		}
	}

	if p.Addons == nil {
		values, err := q.Asker.MultiSelect(ctx, "Select additional features",
			optionsFor(project.Addon("").Values(), templates.AddonOption))
		if err != nil {
			return project.Config{}, err
		}
		if cfg.Addons, err = project.ParseAddons(values); err != nil {
			return project.Config{}, err
		}
	}

	if p.Git == nil {
		if cfg.Git, err = q.Asker.Confirm(ctx, "Initialize a git repository?", true); err != nil {
			return project.Config{}, err
		}
	}

	if p.Install == nil {
		if cfg.Install, err = q.Asker.Confirm(ctx, "Install dependencies?", true); err != nil {
			return project.Config{}, err
		}
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return project.Config{}, err
	}

	if q.Out != nil {
		_, _ = io.WriteString(q.Out, "\n"+output.StyleSummary.Render("Configuration summary")+"\n")
		_, _ = io.WriteString(q.Out, Summary(cfg)+"\n\n")
	}

	ok, err := q.Asker.Confirm(ctx, "Ready to create your project?", true)
	if err != nil {
		return project.Config{}, err
	}
	if !ok {
		return project.Config{}, oerrors.ErrCancelled
	}

	return cfg, nil
}

func optionsFor[T ~string](values []T, lookup func(T) templates.Option) []templates.Option {
	return lo.Map(values, func(v T, _ int) templates.Option { return lookup(v) })
}

func askEnum[T ~string](
	ctx context.Context,
	asker Asker,
	title string,
	values []T,
	lookup func(T) templates.Option,
	def T,
	parse func(string) (T, error),
) (T, error) {
	answer, err := asker.Select(ctx, title, optionsFor(values, lookup), string(def))
	if err != nil {
		return "", err
	}
	return parse(answer)
}
