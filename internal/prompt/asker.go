// Package prompt resolves a project configuration from flags and
// interactive answers.
package prompt

import (
	"context"

	"github.com/noiriko/create-noiriko/internal/templates"
)

// Asker asks single questions. Implementations return
// errors.ErrCancelled when the user aborts.
type Asker interface {
	// Input asks for free text. validate may be nil.
	Input(ctx context.Context, title, placeholder string, validate func(string) error) (string, error)

	// Select asks for exactly one option value. def preselects an option.
	Select(ctx context.Context, title string, options []templates.Option, def string) (string, error)

	// MultiSelect asks for zero or more option values.
	MultiSelect(ctx context.Context, title string, options []templates.Option) ([]string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, title string, def bool) (bool, error)
}
