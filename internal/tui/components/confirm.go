package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raivivek/makebio/internal/tui"
)

// ConfirmModel is a yes/no prompt. The answer starts on the default so a
// bare enter accepts it, matching the [Y/n] convention.
type ConfirmModel struct {
	message string
	answer  bool
	done    bool
}

// NewConfirm creates a prompt that defaults to yes.
func NewConfirm(message string) ConfirmModel {
	return ConfirmModel{message: message, answer: true}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "right", "h", "l", "tab":
		m.answer = !m.answer
	case "y":
		m.answer = true
		m.done = true
	case "n":
		m.answer = false
		m.done = true
	case "enter":
		m.done = true
	case "ctrl+c", "esc":
		m.answer = false
		m.done = true
	}

	if m.done {
		return m, tea.Quit
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}

	choices := map[bool]string{true: "  Yes", false: "  No"}
	choices[m.answer] = tui.SelectedStyle.Render("> " + choices[m.answer][2:])

	return fmt.Sprintf("%s [Y/n]\n\n%s  %s\n\n%s",
		m.message,
		choices[true], choices[false],
		tui.HelpStyle.Render("y/n or ←→ • enter accepts"))
}

// IsConfirmed returns whether the user confirmed
func (m ConfirmModel) IsConfirmed() bool {
	return m.answer
}

// RunConfirm shows the prompt and blocks until the user decides.
func RunConfirm(message string) (bool, error) {
	program := tea.NewProgram(NewConfirm(message))
	model, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("failed to run confirmation prompt: %w", err)
	}

	confirm, ok := model.(ConfirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type from confirmation prompt")
	}
	return confirm.IsConfirmed(), nil
}
