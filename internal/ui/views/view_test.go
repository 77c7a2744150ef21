package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"carousel/internal/carousel"
	"carousel/internal/domain"
	"carousel/internal/geometry"
	"carousel/internal/paging"
)

func TestCardWidthSharesRow(t *testing.T) {
	assert.Equal(t, 94, CardWidth(100, 1, true))
	assert.Equal(t, 46, CardWidth(100, 2, true))
	assert.Equal(t, 49, CardWidth(100, 2, false))
	assert.Equal(t, minCardWidth, CardWidth(20, 4, true))
}

func TestLayoutRegions(t *testing.T) {
	l := ComputeLayout(100, true)
	assert.True(t, l.PreviousArrow.Contains(0, SlideTop))
	assert.True(t, l.NextArrow.Contains(99, SlideTop+CardRows-1))
	assert.True(t, l.Slides.Contains(3, SlideTop))
	assert.False(t, l.Slides.Contains(50, SlideTop+CardRows))
	assert.False(t, l.Slides.Contains(50, SlideTop-1))

	bare := ComputeLayout(100, false)
	assert.True(t, bare.Slides.Contains(0, SlideTop))
	assert.False(t, bare.NextArrow.Contains(99, SlideTop))
}

func TestSlideCardHasFixedHeight(t *testing.T) {
	r := NewSlideRenderer(NewStyles())
	long := domain.Slide{
		Title:    "A title that is much longer than the card is wide",
		Subtitle: "sub",
		Body:     strings.Repeat("word ", 60),
	}

	for _, s := range []domain.Slide{{Title: "x"}, long} {
		card := r.Render(s, 30)
		assert.Equal(t, CardRows, lipgloss.Height(card))
		assert.Equal(t, 30, lipgloss.Width(card))
	}
}

func TestRenderPlacesSlidesBelowHeader(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{
		Width: 80,
		Tabs:  []string{"a", "b"},
		Carousel: carousel.ViewModel{
			ItemsPerPage: 1,
			MaxIndex:     2,
			Breakpoint:   geometry.Narrow,
			Policy:       paging.Clamp,
			CanNext:      true,
			ShowDots:     true,
			ShowArrows:   true,
		},
		Cards: []string{r.Slides().Render(domain.Slide{Title: "first"}, CardWidth(80, 1, true))},
	})

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "carousel")
	assert.Contains(t, lines[SlideTop+1], "first")
	assert.Contains(t, out, "1/3")
	assert.Contains(t, out, "●")
}
