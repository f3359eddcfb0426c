// Package tui holds the small interactive pieces of agentdepot.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel is an inline y/N prompt. It renders a single styled line and
// resolves on the first decisive key press. Esc and ctrl+c count as No,
// the safe choice for a bulk overwrite.
type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Key bindings for the confirm prompt.
var (
	confirmYesKey = key.NewBinding(
		key.WithKeys("y", "Y", "enter"),
		key.WithHelp("y", "confirm"),
	)
	confirmNoKey = key.NewBinding(
		key.WithKeys("n", "N", "esc", "ctrl+c"),
		key.WithHelp("n", "cancel"),
	)
)

func newConfirmModel(prompt string) confirmModel {
	return confirmModel{prompt: prompt}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, confirmYesKey):
		m.confirmed = true
		m.done = true
		return m, tea.Quit

	case key.Matches(keyMsg, confirmNoKey):
		m.confirmed = false
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		answer := "no"
		if m.confirmed {
			answer = "yes"
		}
		return promptStyle.Render(m.prompt) + " " + answer + "\n"
	}
	return promptStyle.Render(m.prompt) + " " + hintStyle.Render("[y/N]") + " "
}

// Confirm shows an inline prompt and blocks until the user answers.
// Any error starting the terminal program resolves as a decline, so a
// broken TTY never triggers a bulk overwrite.
func Confirm(prompt string) bool {
	final, err := tea.NewProgram(newConfirmModel(prompt)).Run()
	if err != nil {
		return false
	}
	m, ok := final.(confirmModel)
	return ok && m.confirmed
}
