package tui

import "github.com/charmbracelet/lipgloss"

var (
	brandColor  = lipgloss.Color("#1E0E62")
	buttonColor = lipgloss.Color("#ff8c00")
	textColor   = lipgloss.Color("#333333")
	errorColor  = lipgloss.Color("#ff0000")
	okColor     = lipgloss.Color("#2e7d32")
	mutedColor  = lipgloss.Color("#888888")
)

// Styles groups the lipgloss styles used by the menu screen.
type Styles struct {
	Header       lipgloss.Style
	Summary      lipgloss.Style
	SectionTitle lipgloss.Style
	Entry        lipgloss.Style
	Label        lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	InputError   lipgloss.Style
	ErrorText    lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Success      lipgloss.Style
	Help         lipgloss.Style
}

func DefaultStyles() Styles {
	border := lipgloss.RoundedBorder()
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(brandColor).
			Padding(0, 4),
		Summary:      lipgloss.NewStyle().Bold(true).Foreground(textColor),
		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(brandColor).MarginTop(1),
		Entry:        lipgloss.NewStyle().Foreground(textColor),
		Label:        lipgloss.NewStyle().Foreground(brandColor),
		Input:        lipgloss.NewStyle().Border(border).BorderForeground(brandColor).Padding(0, 1),
		InputFocused: lipgloss.NewStyle().Border(border).BorderForeground(buttonColor).Padding(0, 1),
		InputError:   lipgloss.NewStyle().Border(border).BorderForeground(errorColor).Padding(0, 1),
		ErrorText:    lipgloss.NewStyle().Foreground(errorColor),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(mutedColor).
			Padding(0, 3),
		ButtonActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(buttonColor).
			Padding(0, 3),
		Success: lipgloss.NewStyle().Bold(true).Foreground(okColor),
		Help:    lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1),
	}
}
