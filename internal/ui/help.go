package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"carousel/internal/ui/input/modes"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys modes.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys modes.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// Render generates the help text shown in the pager
func (r *HelpRenderer) Render(deckPath string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Carousel Help"))
	help.WriteString("\n")

	sections := []string{"Navigation", "Jump", "Playback", "Other"}
	for i, group := range r.keys.FullHelp() {
		help.WriteString(sectionStyle.Render(sections[i%len(sections)]))
		help.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			if h.Key == "" {
				continue
			}
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
		help.WriteString("\n")
	}

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	for _, row := range [][2]string{
		{"hover", "pause autoplay while the pointer is over the slides"},
		{"drag", "swipe left or right past the threshold to change page"},
		{"‹ ›", "click the arrows to step one page"},
		{"wheel", "scroll to step one page"},
	} {
		help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(row[0]), descStyle.Render(row[1])))
	}

	if deckPath != "" {
		help.WriteString("\n")
		help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
			Render("  Deck: " + deckPath))
	}

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
