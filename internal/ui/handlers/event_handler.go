package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/domain"
	"carousel/internal/eventbus"
	"carousel/internal/ui/state"
)

// StatusTimeout is how long an informational status message stays up
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status line if it still shows the message it was
// scheduled for
type ClearStatusMsg struct {
	Message string
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state     *state.AppState
	applyDeck func([]domain.CarouselSpec) (tea.Cmd, error)
}

// NewEventHandler creates a new event handler. applyDeck installs a new set
// of carousels and returns the command that starts the active one.
func NewEventHandler(appState *state.AppState, applyDeck func([]domain.CarouselSpec) (tea.Cmd, error)) *EventHandler {
	return &EventHandler{
		state:     appState,
		applyDeck: applyDeck,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DeckChangedEvent:
		cmd, err := h.applyDeck(e.Carousels)
		if err != nil {
			h.state.SetStatus(fmt.Sprintf("Error: deck rejected: %v", err), true)
			return nil
		}
		return tea.Batch(cmd, h.Info(fmt.Sprintf("Deck reloaded: %d carousels", len(e.Carousels))))

	case eventbus.DeckSavedEvent:
		return h.Info(fmt.Sprintf("Deck written to %s", e.Path))

	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		// errors stay until replaced
		h.state.SetStatus("Error: "+msg, true)
	}

	return nil
}

// HandleClear applies a ClearStatusMsg
func (h *EventHandler) HandleClear(msg ClearStatusMsg) {
	if h.state.StatusMessage == msg.Message && !h.state.StatusIsError {
		h.state.ClearStatus()
	}
}

// Info shows a transient status message
func (h *EventHandler) Info(msg string) tea.Cmd {
	h.state.SetStatus(msg, false)
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{Message: msg}
	})
}
