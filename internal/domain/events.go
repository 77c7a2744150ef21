package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDeckLoaded      EventType = "DeckLoaded"
	EventDeckSaved       EventType = "DeckSaved"
	EventDeckChanged     EventType = "DeckChanged"
	EventError           EventType = "Error"
	EventSlideChanged    EventType = "SlideChanged"
	EventAutoplayToggled EventType = "AutoplayToggled"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DeckLoadedEvent is emitted when the deck file is read at start-up
type DeckLoadedEvent struct {
	Path      string
	Carousels []CarouselSpec
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// DeckSavedEvent is emitted after the deck file is written
type DeckSavedEvent struct {
	Path string
}

func (e DeckSavedEvent) Type() EventType { return EventDeckSaved }

// DeckChangedEvent is emitted when the deck file changed on disk and was
// reloaded successfully
type DeckChangedEvent struct {
	Path      string
	Carousels []CarouselSpec
}

func (e DeckChangedEvent) Type() EventType { return EventDeckChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// SlideChangedEvent is emitted when a carousel lands on a new index
type SlideChangedEvent struct {
	Carousel string
	Index    int
	Source   string // "autoplay", "key", "swipe", "goto"
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// AutoplayToggledEvent is emitted when the user pauses or resumes autoplay
type AutoplayToggledEvent struct {
	Carousel string
	Running  bool
}

func (e AutoplayToggledEvent) Type() EventType { return EventAutoplayToggled }
