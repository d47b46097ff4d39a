package cmdutil

import (
	"errors"
	"fmt"

	oerrors "github.com/noiriko/create-noiriko/internal/errors"
	"github.com/noiriko/create-noiriko/internal/output"
	"github.com/noiriko/create-noiriko/internal/project"
)

// PrintError prints an error in a user-friendly format. Structured errors
// print their message and hint; others fall back to key-value logging.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Message))
		if detail.Hint != "" {
			output.Info(detail.Hint)
		}
		return
	}
	output.Error(msg, "error", err)
}

// topLevelDescriptions label well-known entries in the created-project tree.
var topLevelDescriptions = map[string]string{
	"package.json":        "Workspace root",
	"turbo.json":          "Turborepo task graph",
	"pnpm-workspace.yaml": "pnpm workspace packages",
	"README.md":           "Getting started",
	".gitignore":          "Ignored files",
}

// ProjectTree renders every written file as a tree under the project name.
func ProjectTree(name string, files []string) string {
	return output.RenderFileTree(name, files, topLevelDescriptions)
}

// NextSteps lists the commands to run after creation.
func NextSteps(cfg project.Config) []string {
	steps := []string{"cd " + cfg.Name}
	if !cfg.Install {
		steps = append(steps, string(cfg.PackageManager)+" install")
	}
	return append(steps, cfg.PackageManager.RunCommand("dev"))
}

// PrintNextSteps prints the next-steps block.
func PrintNextSteps(cfg project.Config) {
	output.Println("")
	output.Println(output.StyleSummary.Render("Next steps:"))
	for _, s := range NextSteps(cfg) {
		output.Println("  " + output.StyleNoun.Render(s))
	}
	output.Println("")
	output.Println(output.StyleDim.Render("Start building your application"))
}
