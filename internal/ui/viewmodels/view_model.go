package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"carousel/internal/ui/input/modes"
	"carousel/internal/ui/state"
	"carousel/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	renderer  *views.Renderer
	help      help.Model
	keys      modes.KeyMap
	inputMode string
	textInput *textinput.Model
	pointerX  int
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, renderer *views.Renderer, keys modes.KeyMap) *ViewModel {
	return &ViewModel{
		state:     appState,
		renderer:  renderer,
		help:      help.New(),
		keys:      keys,
		inputMode: "normal",
	}
}

// SetInputMode sets the current input mode and its text input, nil outside
// text modes
func (vm *ViewModel) SetInputMode(mode string, ti *textinput.Model) {
	vm.inputMode = mode
	vm.textInput = ti
}

// SetPointerX records the last pointer column for drag feedback
func (vm *ViewModel) SetPointerX(x int) {
	vm.pointerX = x
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vm.help.Width = vm.state.Width

	vs := views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		Tabs:          vm.state.TabNames(),
		ActiveTab:     vm.state.Active,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		InputMode:     vm.inputMode,
		HelpView:      vm.help.View(vm.keys),
	}
	if vm.textInput != nil {
		vs.TextInput = vm.textInput.View()
	}

	tab := vm.state.ActiveTab()
	if tab == nil {
		return vs
	}

	engine := tab.Engine
	cv := engine.View()
	cfg := engine.Config()
	vs.Carousel = cv
	vs.AutoplayConfigured = cfg.Autoplay
	vs.Interval = cfg.Interval
	if cv.Dragging {
		vs.DragOffset = engine.DragOffset(vm.pointerX)
	}

	slides := tab.Slides()
	cardWidth := views.CardWidth(vm.state.Width, cv.ItemsPerPage, cv.ShowArrows)
	vs.Cards = engine.Slots(func(i int) string {
		if i >= len(slides) {
			return ""
		}
		return vm.renderer.Slides().Render(slides[i], cardWidth)
	})
	return vs
}

// ToggleFullHelp switches the footer between short and full key help
func (vm *ViewModel) ToggleFullHelp() {
	vm.help.ShowAll = !vm.help.ShowAll
}

// ShowingFullHelp reports whether the footer lists every binding
func (vm *ViewModel) ShowingFullHelp() bool {
	return vm.help.ShowAll
}
