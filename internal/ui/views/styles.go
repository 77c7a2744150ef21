package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Card          lipgloss.Style
	CardTitle     lipgloss.Style
	CardSubtitle  lipgloss.Style
	CardBody      lipgloss.Style
	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style
	Dot           lipgloss.Style
	ActiveDot     lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusPlaying lipgloss.Style
	StatusPaused  lipgloss.Style
	Prompt        lipgloss.Style
	Help          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		CardTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		CardSubtitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		CardBody:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Arrow:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		ArrowDisabled: lipgloss.NewStyle().Faint(true),
		Dot:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ActiveDot:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusPlaying: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusPaused:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt:        lipgloss.NewStyle().Bold(true),
		Help:          lipgloss.NewStyle().Faint(true),
	}
}
