package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

const pickerPageSize = 12

// pickerModel is a filterable list. Moving the cursor reports the highlighted
// entry through onHighlight; preview supplies the text shown beside the list.
type pickerModel struct {
	items       []string
	visible     []int // indices into items that match filter
	cursor      int   // position in visible
	filter      string
	onHighlight func(int)
	preview     func() string
	width       int
	chosen      int
	done        bool
}

func newPickerModel(items []string, onHighlight func(int), preview func() string, width int) pickerModel {
	m := pickerModel{
		items:       items,
		onHighlight: onHighlight,
		preview:     preview,
		width:       width,
		chosen:      -1,
	}
	m.refilter()
	return m
}

func (m pickerModel) Init() tea.Cmd { return nil }

// Chosen returns the index of the selected item, or -1.
func (m pickerModel) Chosen() int {
	return m.chosen
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		case "enter":
			if len(m.visible) > 0 {
				m.chosen = m.visible[m.cursor]
			}
			m.done = true
			return m, tea.Quit
		case "up", "ctrl+p":
			m.move(-1)
		case "down", "ctrl+n":
			m.move(1)
		case "pgup":
			m.move(-pickerPageSize)
		case "pgdown":
			m.move(pickerPageSize)
		case "home":
			m.move(-len(m.visible))
		case "end":
			m.move(len(m.visible))
		case "backspace":
			if m.filter != "" {
				r := []rune(m.filter)
				m.filter = string(r[:len(r)-1])
				m.refilter()
			}
		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				m.filter += string(msg.Runes)
				m.refilter()
			}
		}
	}
	return m, nil
}

// move shifts the cursor by delta, clamped, and reports a change.
func (m *pickerModel) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	next := max(0, min(m.cursor+delta, len(m.visible)-1))
	if next == m.cursor {
		return
	}
	m.cursor = next
	m.highlight()
}

// refilter recomputes the visible entries and highlights the first one. An
// empty filter keeps the list order; otherwise matches are ranked by score.
func (m *pickerModel) refilter() {
	m.visible = m.visible[:0]
	if m.filter == "" {
		for i := range m.items {
			m.visible = append(m.visible, i)
		}
	} else {
		for _, match := range fuzzy.Find(m.filter, m.items) {
			m.visible = append(m.visible, match.Index)
		}
	}
	m.cursor = 0
	m.highlight()
}

func (m *pickerModel) highlight() {
	if m.onHighlight != nil && len(m.visible) > 0 {
		m.onHighlight(m.visible[m.cursor])
	}
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(filterStyle.Render("› "+m.filter) + "\n")

	if len(m.visible) == 0 {
		b.WriteString(hintStyle.Render("  no matching snippets") + "\n")
	}
	start := 0
	if m.cursor >= pickerPageSize {
		start = m.cursor - pickerPageSize + 1
	}
	end := min(start+pickerPageSize, len(m.visible))
	for pos := start; pos < end; pos++ {
		name := m.items[m.visible[pos]]
		if pos == m.cursor {
			b.WriteString(selectedItemStyle.Render("› "+name) + "\n")
		} else {
			b.WriteString(itemStyle.Render(name) + "\n")
		}
	}
	list := b.String()

	var preview string
	if m.preview != nil {
		preview = m.preview()
	}
	out := list
	if preview != "" {
		listWidth := lipgloss.Width(list) + 2
		box := previewStyle
		if m.width > listWidth+10 {
			box = box.Width(m.width - listWidth - 4)
		}
		out = lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", box.Render(preview))
	}
	return out + "\n" + hintStyle.Render("type to filter · ↑/↓ to move · enter to choose · esc to close") + "\n"
}
