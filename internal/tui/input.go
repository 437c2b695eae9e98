package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel is a single-line prompt with an editable default.
type inputModel struct {
	caption  string
	input    textinput.Model
	done     bool
	canceled bool
}

func newInputModel(caption, initial string, width int) inputModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	if width > 4 {
		ti.Width = width - 4
	}
	return inputModel{caption: caption, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	return captionStyle.Render(m.caption) + "\n" +
		m.input.View() + "\n" +
		hintStyle.Render("enter to confirm · esc to cancel") + "\n"
}

// Value returns the text typed so far.
func (m inputModel) Value() string {
	return m.input.Value()
}
