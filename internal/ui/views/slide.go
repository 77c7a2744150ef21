package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"carousel/internal/domain"
)

// Card geometry in terminal cells
const (
	CardContentRows = 5
	CardRows        = CardContentRows + 2 // plus top and bottom border
	ArrowWidth      = 3
	cardGap         = 1
	minCardWidth    = 8
)

// SlideRenderer draws individual slides
type SlideRenderer struct {
	styles *Styles
}

// NewSlideRenderer creates a slide renderer
func NewSlideRenderer(styles *Styles) *SlideRenderer {
	return &SlideRenderer{styles: styles}
}

// CardWidth is the outer width of one card when perPage cards share width
func CardWidth(width, perPage int, showArrows bool) int {
	if perPage < 1 {
		perPage = 1
	}
	avail := width
	if showArrows {
		avail -= 2 * ArrowWidth
	}
	w := (avail - (perPage-1)*cardGap) / perPage
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// Render draws slide as a bordered card of the given outer width
func (r *SlideRenderer) Render(slide domain.Slide, width int) string {
	// border and horizontal padding
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	var lines []string
	lines = append(lines, r.styles.CardTitle.Render(truncate(slide.Title, inner)))
	if slide.Subtitle != "" {
		lines = append(lines, r.styles.CardSubtitle.Render(truncate(slide.Subtitle, inner)))
	}
	if slide.Body != "" {
		lines = append(lines, "")
		wrapped := lipgloss.NewStyle().Width(inner).Render(slide.Body)
		for _, l := range strings.Split(wrapped, "\n") {
			lines = append(lines, r.styles.CardBody.Render(l))
		}
	}
	if len(lines) > CardContentRows {
		lines = lines[:CardContentRows]
	}

	return r.styles.Card.
		Width(width - 2).
		Height(CardContentRows).
		Render(strings.Join(lines, "\n"))
}

// Arrow draws a navigation arrow column the height of a card
func (r *SlideRenderer) Arrow(glyph string, enabled bool) string {
	style := r.styles.Arrow
	if !enabled {
		style = r.styles.ArrowDisabled
	}
	return lipgloss.NewStyle().
		Width(ArrowWidth).
		Height(CardRows).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(style.Render(glyph))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
