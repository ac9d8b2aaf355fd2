package render

import "github.com/charmbracelet/lipgloss"

// Lip Gloss styles shared by the terminal views. All colors are hex codes.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff5fd2")).
			PaddingLeft(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			PaddingLeft(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff005f")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff5f")).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color("#a8a8a8")).
			MarginTop(1).
			Padding(0, 1)

	rootStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5fd7ff"))

	folderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5fd7ff"))

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff"))

	enumeratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)
