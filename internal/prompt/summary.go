package prompt

import (
	"strings"

	"github.com/samber/lo"

	"github.com/noiriko/create-noiriko/internal/output"
	"github.com/noiriko/create-noiriko/internal/project"
	"github.com/noiriko/create-noiriko/internal/templates"
)

// SummaryRows lists the configuration as label/value pairs. The ORM row is
// omitted without a database and the features row without addons.
func SummaryRows(cfg project.Config) [][2]string {
	rows := [][2]string{
		{"Project", cfg.Name},
		{"Package manager", templates.PackageManagerOption(cfg.PackageManager).Label},
		{"Authentication", templates.AuthOption(cfg.Auth).Label},
		{"Database", templates.DatabaseOption(cfg.Database).Label},
	}
	if cfg.Database != project.DatabaseNone {
		rows = append(rows, [2]string{"ORM", templates.ORMOption(cfg.ORM).Label})
	}
	if len(cfg.Addons) > 0 {
		labels := lo.Map(cfg.Addons, func(a project.Addon, _ int) string {
			return templates.AddonOption(a).Label
		})
		rows = append(rows, [2]string{"Features", strings.Join(labels, ", ")})
	}
	rows = append(rows,
		[2]string{"Git", yesNo(cfg.Git)},
		[2]string{"Install deps", yesNo(cfg.Install)},
	)
	return rows
}

// Summary renders SummaryRows as a table.
func Summary(cfg project.Config) string {
	return output.KeyValueTable([2]string{"Option", "Choice"}, SummaryRows(cfg))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
