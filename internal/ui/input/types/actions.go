package types

// Navigation actions
type NavigateAction struct {
	Direction string // "next", "previous", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

// GoToAction jumps to a zero-based index; the engine clamps it
type GoToAction struct {
	Index int
}

func (a GoToAction) Type() string { return "goto" }

type ToggleAutoplayAction struct{}

func (a ToggleAutoplayAction) Type() string { return "toggle_autoplay" }

// SwitchCarouselAction moves the active tab by Delta, wrapping
type SwitchCarouselAction struct {
	Delta int
}

func (a SwitchCarouselAction) Type() string { return "switch_carousel" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional initial text for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type ReloadDeckAction struct{}

func (a ReloadDeckAction) Type() string { return "reload_deck" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
