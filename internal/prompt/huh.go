package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/samber/lo"

	oerrors "github.com/noiriko/create-noiriko/internal/errors"
	"github.com/noiriko/create-noiriko/internal/templates"
)

// HuhAsker asks questions in the terminal with huh forms.
type HuhAsker struct {
	// Accessible switches huh to line-based prompts for screen readers.
	Accessible bool
}

// NewHuhAsker creates a terminal asker.
func NewHuhAsker(accessible bool) *HuhAsker {
	return &HuhAsker{Accessible: accessible}
}

func (h *HuhAsker) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(h.Accessible).
		WithShowHelp(true)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return oerrors.ErrCancelled
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

func huhOptions(options []templates.Option) []huh.Option[string] {
	return lo.Map(options, func(o templates.Option, _ int) huh.Option[string] {
		label := o.Label
		if o.Description != "" {
			label += " - " + o.Description
		}
		return huh.NewOption(label, o.Value)
	})
}

// Input implements Asker.
func (h *HuhAsker) Input(ctx context.Context, title, placeholder string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	if err := h.run(ctx, input); err != nil {
		return "", err
	}
	return value, nil
}

// Select implements Asker.
func (h *HuhAsker) Select(ctx context.Context, title string, options []templates.Option, def string) (string, error) {
	value := def
	sel := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions(options)...).
		Value(&value)

	if err := h.run(ctx, sel); err != nil {
		return "", err
	}
	return value, nil
}

// MultiSelect implements Asker.
func (h *HuhAsker) MultiSelect(ctx context.Context, title string, options []templates.Option) ([]string, error) {
	var values []string
	sel := huh.NewMultiSelect[string]().
		Title(title).
		Description("Space to toggle, enter to confirm").
		Options(huhOptions(options)...).
		Value(&values)

	if err := h.run(ctx, sel); err != nil {
		return nil, err
	}
	return values, nil
}

// Confirm implements Asker.
func (h *HuhAsker) Confirm(ctx context.Context, title string, def bool) (bool, error) {
	value := def
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := h.run(ctx, confirm); err != nil {
		return false, err
	}
	return value, nil
}
