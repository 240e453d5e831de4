// Package initform collects the operator identity for project
// initialization.
package initform

import (
	"errors"
	"fmt"
	"strings"

	huh "github.com/charmbracelet/huh"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/tui"
)

// Flow orchestrates the init prompts using huh forms.
type Flow struct {
	defaults config.Defaults
	theme    *huh.Theme
}

// Result captures the operator's answers.
type Result struct {
	Author string
	Email  string
}

// NewFlow constructs a Flow pre-filled with the operator defaults.
func NewFlow(defaults config.Defaults) *Flow {
	return &Flow{
		defaults: defaults,
		theme:    tui.NewHuhTheme(),
	}
}

// Run executes the form; returns nil on user abort.
func (f *Flow) Run() (*Result, error) {
	author := f.defaults.Author
	email := f.defaults.Email

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Author").
				Value(&author).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("author cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email").
				Value(&email),
		).
			Title("Project Identity").
			Description("Recorded once into makebio.toml."),
	).
		WithTheme(f.theme).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	return &Result{
		Author: strings.TrimSpace(author),
		Email:  strings.TrimSpace(email),
	}, nil
}
