package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmModel is an OK/Cancel dialog. Cancel is focused first.
type confirmModel struct {
	message string
	ok      bool // focused button
	done    bool
}

func newConfirmModel(message string) confirmModel {
	return confirmModel{message: message}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "right", "tab", "shift+tab", "h", "l":
		m.ok = !m.ok
	case "y":
		m.ok, m.done = true, true
		return m, tea.Quit
	case "n", "esc", "ctrl+c":
		m.ok, m.done = false, true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	okBtn, cancelBtn := buttonStyle.Render("OK"), activeButtonStyle.Render("Cancel")
	if m.ok {
		okBtn, cancelBtn = activeButtonStyle.Render("OK"), buttonStyle.Render("Cancel")
	}
	return questionStyle.Render(m.message) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, okBtn, " ", cancelBtn) + "\n" +
		hintStyle.Render("y/n · ←/→ to switch · enter to choose") + "\n"
}

// Confirmed reports whether the dialog ended on OK.
func (m confirmModel) Confirmed() bool {
	return m.done && m.ok
}
