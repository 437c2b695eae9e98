package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPurple = lipgloss.Color("#A855F7")
	colorGreen  = lipgloss.Color("#22C55E")
	colorRed    = lipgloss.Color("#EF4444")
	colorYellow = lipgloss.Color("#EAB308")
	colorDim    = lipgloss.Color("#6B7280")
	colorCyan   = lipgloss.Color("#06B6D4")

	captionStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	questionStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(colorDim)

	activeButtonStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("#000000")).
				Background(colorCyan).
				Bold(true)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorCyan).
				Bold(true)

	filterStyle = lipgloss.NewStyle().
			Foreground(colorPurple)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGreen)
)
