package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"carousel/internal/autoplay"
	"carousel/internal/carousel"
)

// Rows above the slide area: title line and a blank line
const SlideTop = 2

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width              int
	Height             int
	Tabs               []string
	ActiveTab          int
	Carousel           carousel.ViewModel
	Cards              []string // rendered visible slides, in order
	AutoplayConfigured bool
	Interval           time.Duration
	DragOffset         int
	StatusMessage      string
	StatusIsError      bool
	InputMode          string
	TextInput          string
	HelpView           string
}

// Area is a rectangle in terminal cells, end-exclusive
type Area struct {
	Top, Bottom int
	Left, Right int
}

// Contains reports whether the cell (x, y) lies inside a
func (a Area) Contains(x, y int) bool {
	return y >= a.Top && y < a.Bottom && x >= a.Left && x < a.Right
}

// Layout is where the interactive regions sit on screen
type Layout struct {
	Slides        Area
	PreviousArrow Area
	NextArrow     Area
}

// ComputeLayout returns the regions for a terminal of the given width
func ComputeLayout(width int, showArrows bool) Layout {
	l := Layout{
		Slides: Area{Top: SlideTop, Bottom: SlideTop + CardRows, Left: 0, Right: width},
	}
	if showArrows {
		l.PreviousArrow = Area{Top: SlideTop, Bottom: SlideTop + CardRows, Left: 0, Right: ArrowWidth}
		l.NextArrow = Area{Top: SlideTop, Bottom: SlideTop + CardRows, Left: width - ArrowWidth, Right: width}
		l.Slides.Left = ArrowWidth
		l.Slides.Right = width - ArrowWidth
	}
	return l
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	slideRender *SlideRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		slideRender: NewSlideRenderer(styles),
	}
}

// Slides exposes the slide renderer for building cards
func (r *Renderer) Slides() *SlideRenderer {
	return r.slideRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.renderHeader(state))
	b.WriteString("\n\n")

	b.WriteString(r.renderSlides(state))
	b.WriteString("\n")

	if state.Carousel.ShowDots {
		b.WriteString(r.renderDots(state))
	}
	b.WriteString("\n\n")

	b.WriteString(r.renderStatus(state))
	b.WriteString("\n")

	if state.InputMode == "goto" {
		prompt := fmt.Sprintf("Go to page (1-%d): ", state.Carousel.PageCount())
		b.WriteString(r.styles.Prompt.Render(prompt) + state.TextInput)
	} else {
		b.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return b.String()
}

func (r *Renderer) renderHeader(state ViewState) string {
	parts := []string{r.styles.Title.Render("carousel")}
	for i, name := range state.Tabs {
		if i == state.ActiveTab {
			parts = append(parts, r.styles.ActiveTab.Render(name))
		} else {
			parts = append(parts, r.styles.Tab.Render(name))
		}
	}
	// one line, so the slide area stays at SlideTop
	return lipgloss.NewStyle().MaxWidth(state.Width).Render(strings.Join(parts, " "))
}

func (r *Renderer) renderSlides(state ViewState) string {
	vm := state.Carousel

	var row string
	if len(state.Cards) == 0 {
		empty := lipgloss.NewStyle().
			Width(CardWidth(state.Width, 1, vm.ShowArrows)).
			Height(CardRows).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center).
			Render(r.styles.Dim.Render("no slides"))
		row = empty
	} else {
		cells := make([]string, 0, 2*len(state.Cards))
		for i, c := range state.Cards {
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, c)
		}
		row = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	if !vm.ShowArrows {
		return row
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		r.slideRender.Arrow("‹", vm.CanPrevious),
		row,
		r.slideRender.Arrow("›", vm.CanNext),
	)
}

func (r *Renderer) renderDots(state ViewState) string {
	vm := state.Carousel
	pages := vm.PageCount()
	if pages <= 1 {
		return ""
	}

	var line string
	// too many to draw one per position
	if pages*2 > state.Width {
		line = r.styles.Dot.Render(fmt.Sprintf("%d / %d", vm.CurrentIndex+1, pages))
	} else {
		dots := make([]string, pages)
		for i := range dots {
			if i == vm.CurrentIndex {
				dots[i] = r.styles.ActiveDot.Render("●")
			} else {
				dots[i] = r.styles.Dot.Render("○")
			}
		}
		line = strings.Join(dots, " ")
	}
	return lipgloss.PlaceHorizontal(state.Width, lipgloss.Center, line)
}

func (r *Renderer) renderStatus(state ViewState) string {
	vm := state.Carousel

	left := r.styles.Status.Render(fmt.Sprintf("%s · %d per page · %d/%d · %s",
		vm.Breakpoint, vm.ItemsPerPage, vm.CurrentIndex+1, vm.PageCount(), vm.Policy))

	var play string
	switch {
	case !state.AutoplayConfigured:
	case vm.IsAutoplayEnabled && !vm.IsAutoplayPaused:
		play = r.styles.StatusPlaying.Render(fmt.Sprintf("▶ every %s", state.Interval))
	case vm.IsAutoplayEnabled:
		play = r.styles.StatusPaused.Render(fmt.Sprintf("⏸ %s", vm.PauseReasons))
	case vm.PauseReasons&autoplay.Manual != 0:
		play = r.styles.StatusPaused.Render("⏸ paused")
	default:
		play = r.styles.Dim.Render("autoplay idle")
	}
	if play != "" {
		left += "  " + play
	}
	if vm.Dragging {
		left += "  " + r.styles.Dim.Render(fmt.Sprintf("drag %+d", state.DragOffset))
	}

	if state.StatusMessage == "" {
		return left
	}
	msgStyle := r.styles.Status
	if state.StatusIsError {
		msgStyle = r.styles.StatusError
	}
	right := msgStyle.Render(state.StatusMessage)

	gap := state.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return left + "\n" + right
	}
	return left + strings.Repeat(" ", gap) + right
}
