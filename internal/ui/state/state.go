package state

import (
	"carousel/internal/carousel"
	"carousel/internal/domain"
)

// Tab is one carousel from the deck together with its engine
type Tab struct {
	Spec   domain.CarouselSpec
	Engine *carousel.Engine
}

// Slides returns the tab's items
func (t *Tab) Slides() []domain.Slide {
	return t.Spec.Slides
}

// AppState contains all the application state
type AppState struct {
	// Deck data
	Tabs     []*Tab
	Active   int
	DeckPath string

	// Terminal
	Width  int
	Height int

	// Pointer state
	Hovering bool // pointer is over the slide area

	// UI state
	InPager       bool // help pager owns the terminal
	StatusMessage string
	StatusIsError bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// ActiveTab returns the tab on screen, or nil for an empty deck
func (s *AppState) ActiveTab() *Tab {
	if s.Active < 0 || s.Active >= len(s.Tabs) {
		return nil
	}
	return s.Tabs[s.Active]
}

// TabIndex returns the index of the named tab or -1
func (s *AppState) TabIndex(name string) int {
	for i, t := range s.Tabs {
		if t.Spec.Name == name {
			return i
		}
	}
	return -1
}

// TabNames lists tab names in deck order
func (s *AppState) TabNames() []string {
	names := make([]string, len(s.Tabs))
	for i, t := range s.Tabs {
		names[i] = t.Spec.Name
	}
	return names
}

// SetStatus replaces the status line message
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
