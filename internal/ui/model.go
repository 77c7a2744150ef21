package ui

import (
	"fmt"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"carousel/internal/autoplay"
	"carousel/internal/carousel"
	"carousel/internal/config"
	"carousel/internal/domain"
	"carousel/internal/eventbus"
	"carousel/internal/gesture"
	"carousel/internal/ui/handlers"
	"carousel/internal/ui/input"
	"carousel/internal/ui/input/modes"
	inputtypes "carousel/internal/ui/input/types"
	"carousel/internal/ui/state"
	"carousel/internal/ui/viewmodels"
	"carousel/internal/ui/views"
)

// Options configures a Model
type Options struct {
	Bus           eventbus.EventBus    // may be nil
	Deck          config.ConfigService // source for manual reloads, may be nil
	Initial       string               // carousel to show first
	Mouse         bool                 // react to hover, drag, click and wheel
	EngineOptions []carousel.Option    // appended to every engine, e.g. a test clock
	Logger        *logrus.Entry
}

// Model represents the UI state
type Model struct {
	bus   eventbus.EventBus
	deck  config.ConfigService
	state *state.AppState
	mouse bool

	keys         modes.KeyMap
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	engineOpts   []carousel.Option
	log          *logrus.Entry

	// Program reference for terminal management
	program *tea.Program
}

// NewModel builds one tab per carousel. Engines stay detached until the
// first window size arrives.
func NewModel(specs []domain.CarouselSpec, opts Options) (*Model, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.WithField("component", "ui")
	}
	keys := modes.DefaultKeyMap()
	renderer := views.NewRenderer()
	appState := state.NewAppState()
	if opts.Deck != nil {
		appState.DeckPath = opts.Deck.Path()
	}

	m := &Model{
		bus:          opts.Bus,
		deck:         opts.Deck,
		state:        appState,
		mouse:        opts.Mouse,
		keys:         keys,
		renderer:     renderer,
		viewModel:    viewmodels.NewViewModel(appState, renderer, keys),
		inputHandler: input.New(keys),
		helpRenderer: NewHelpRenderer(keys),
		engineOpts:   opts.EngineOptions,
		log:          log,
	}
	m.eventHandler = handlers.NewEventHandler(appState, m.applyDeck)

	tabs, err := m.buildTabs(specs)
	if err != nil {
		return nil, err
	}
	appState.Tabs = tabs

	if opts.Initial != "" {
		i := appState.TabIndex(opts.Initial)
		if i < 0 {
			return nil, fmt.Errorf("no carousel named %q", opts.Initial)
		}
		appState.Active = i
	}

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.attachOrResize(msg)

	case autoplay.TickMsg:
		return m, m.handleTick(msg)

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case tea.BlurMsg:
		// pointer state is unknown once focus is gone
		if tab := m.state.ActiveTab(); tab != nil {
			tab.Engine.PointerCancel()
			tab.Engine.SetHovering(false)
		}
		m.state.Hovering = false
		return m, nil

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// attachOrResize attaches the active engine on the first size, resizes after
func (m *Model) attachOrResize(msg tea.WindowSizeMsg) tea.Cmd {
	tab := m.state.ActiveTab()
	if tab == nil || m.state.InPager {
		return nil
	}
	if !tab.Engine.Attached() {
		return tab.Engine.Attach(msg.Width)
	}
	return tab.Engine.Update(msg)
}

// handleTick fans a tick out to every engine; only the one it belongs to,
// and only if attached, acts on it
func (m *Model) handleTick(msg autoplay.TickMsg) tea.Cmd {
	var cmds []tea.Cmd
	for _, tab := range m.state.Tabs {
		before := tab.Engine.View().CurrentIndex
		if cmd := tab.Engine.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if after := tab.Engine.View().CurrentIndex; after != before {
			m.publish(eventbus.SlideChangedEvent{Carousel: tab.Spec.Name, Index: after, Source: "autoplay"})
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	tab := m.state.ActiveTab()
	if tab == nil || m.state.InPager {
		return nil
	}
	engine := tab.Engine
	layout := views.ComputeLayout(m.state.Width, engine.View().ShowArrows)
	over := layout.Slides.Contains(msg.X, msg.Y)

	if over != m.state.Hovering {
		m.state.Hovering = over
		engine.SetHovering(over)
	}
	if !over && engine.PointerCancel() {
		m.log.Debug("gesture cancelled, pointer left the slides")
	}
	m.viewModel.SetPointerX(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			switch {
			case layout.PreviousArrow.Contains(msg.X, msg.Y):
				m.navigate(engine, "previous", "pointer")
			case layout.NextArrow.Contains(msg.X, msg.Y):
				m.navigate(engine, "next", "pointer")
			case over:
				engine.PointerDown(msg.X)
			}
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			if over {
				m.navigate(engine, "previous", "wheel")
			}
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			if over {
				m.navigate(engine, "next", "wheel")
			}
		}

	case tea.MouseActionRelease:
		before := engine.View().CurrentIndex
		if dir := engine.PointerUp(msg.X); dir != gesture.None {
			if after := engine.View().CurrentIndex; after != before {
				m.publish(eventbus.SlideChangedEvent{Carousel: tab.Spec.Name, Index: after, Source: "swipe"})
			}
		}
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.ClearStatusMsg:
		m.eventHandler.HandleClear(msg)
		return m, nil

	case deckReloadMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("manual deck reload failed")
			m.state.SetStatus(fmt.Sprintf("Error: %v", msg.err), true)
			return m, nil
		}
		return m, m.eventHandler.HandleEvent(eventbus.DeckChangedEvent{
			Path:      m.state.DeckPath,
			Carousels: msg.deck.Carousels,
		})

	case helpPagerMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("help pager failed")
		}
		m.state.InPager = false
		if tab := m.state.ActiveTab(); tab != nil && m.state.Width > 0 {
			return m, tab.Engine.Attach(m.state.Width)
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		// RestoreTerminal handles the actual repaint
		return m, nil
	}

	// cursor blink and the like for the go-to prompt
	return m, m.inputHandler.Update(msg)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	tab := m.state.ActiveTab()

	switch a := action.(type) {
	case inputtypes.QuitAction:
		m.Teardown()
		return tea.Quit

	case inputtypes.ToggleHelpAction:
		return m.showHelp()

	case inputtypes.ReloadDeckAction:
		return m.reloadDeck()

	case inputtypes.SwitchCarouselAction:
		return m.switchTab(a.Delta)
	}

	if tab == nil {
		return nil
	}
	engine := tab.Engine

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(engine, a.Direction, "key")

	case inputtypes.GoToAction:
		m.goTo(tab, a.Index, "key")

	case inputtypes.SubmitTextAction:
		if a.Mode != inputtypes.ModeGoTo || a.Text == "" {
			return nil
		}
		idx, err := modes.ParsePage(a.Text)
		if err != nil {
			return m.eventHandler.Info(err.Error())
		}
		m.goTo(tab, idx, "goto")

	case inputtypes.ToggleAutoplayAction:
		running := engine.ToggleAutoplay()
		m.publish(eventbus.AutoplayToggledEvent{Carousel: tab.Spec.Name, Running: running})
		if running {
			return m.eventHandler.Info("Autoplay resumed")
		}
		return m.eventHandler.Info("Autoplay paused")
	}
	return nil
}

func (m *Model) navigate(engine *carousel.Engine, direction, source string) {
	var moved bool
	switch direction {
	case "next":
		moved = engine.Next()
	case "previous":
		moved = engine.Previous()
	case "first":
		moved = engine.GoTo(0)
	case "last":
		moved = engine.GoTo(engine.View().MaxIndex)
	}
	if moved {
		m.publish(eventbus.SlideChangedEvent{Carousel: engine.Name(), Index: engine.View().CurrentIndex, Source: source})
	}
}

func (m *Model) goTo(tab *state.Tab, index int, source string) {
	if tab.Engine.GoTo(index) {
		m.publish(eventbus.SlideChangedEvent{Carousel: tab.Spec.Name, Index: tab.Engine.View().CurrentIndex, Source: source})
	}
}

// switchTab detaches the current carousel and attaches the next one, so only
// the visible carousel owns a timer
func (m *Model) switchTab(delta int) tea.Cmd {
	n := len(m.state.Tabs)
	if n < 2 {
		return nil
	}
	if cur := m.state.ActiveTab(); cur != nil {
		cur.Engine.Detach()
	}
	m.state.Hovering = false
	m.state.Active = ((m.state.Active+delta)%n + n) % n

	next := m.state.ActiveTab()
	m.log.WithField("carousel", next.Spec.Name).Debug("switched carousel")
	if m.state.Width == 0 || m.state.InPager {
		return nil
	}
	return next.Engine.Attach(m.state.Width)
}

func (m *Model) showHelp() tea.Cmd {
	if m.program == nil || m.helpOps == nil {
		m.viewModel.ToggleFullHelp()
		return nil
	}

	// the carousel is off screen while the pager runs
	if tab := m.state.ActiveTab(); tab != nil {
		tab.Engine.Detach()
	}
	m.state.Hovering = false
	m.state.InPager = true
	content := m.helpRenderer.Render(m.state.DeckPath)

	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) reloadDeck() tea.Cmd {
	if m.deck == nil {
		return m.eventHandler.Info("No deck file to reload")
	}
	deck := m.deck
	return func() tea.Msg {
		cfg, err := deck.LoadFromPath(deck.Path())
		return deckReloadMsg{deck: cfg, err: err}
	}
}

// Teardown detaches every engine so no timer outlives the program. Call it
// only once the program has stopped or from the update loop.
func (m *Model) Teardown() {
	for _, tab := range m.state.Tabs {
		tab.Engine.Detach()
	}
}

func (m *Model) publish(ev eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(ev)
	}
}

func (m *Model) newTab(spec domain.CarouselSpec) (*state.Tab, error) {
	cfg, err := config.EngineConfig(spec)
	if err != nil {
		return nil, err
	}
	opts := append([]carousel.Option{carousel.WithLogger(m.log.WithField("carousel", spec.Name))}, m.engineOpts...)
	engine, err := carousel.New(cfg, len(spec.Slides), opts...)
	if err != nil {
		return nil, err
	}
	return &state.Tab{Spec: spec, Engine: engine}, nil
}

func (m *Model) buildTabs(specs []domain.CarouselSpec) ([]*state.Tab, error) {
	tabs := make([]*state.Tab, 0, len(specs))
	for _, spec := range specs {
		tab, err := m.newTab(spec)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, tab)
	}
	return tabs, nil
}

// applyDeck installs a reloaded deck. Carousels whose settings are unchanged
// keep their engine and position and only see the new item count; the rest
// are rebuilt. On any error the current deck stays.
func (m *Model) applyDeck(specs []domain.CarouselSpec) (tea.Cmd, error) {
	activeName := ""
	if tab := m.state.ActiveTab(); tab != nil {
		activeName = tab.Spec.Name
	}

	existing := make(map[string]*state.Tab, len(m.state.Tabs))
	for _, t := range m.state.Tabs {
		existing[t.Spec.Name] = t
	}

	type plan struct {
		tab    *state.Tab
		reused bool
		spec   domain.CarouselSpec
	}
	plans := make([]plan, 0, len(specs))
	for _, spec := range specs {
		if t, ok := existing[spec.Name]; ok && sameSettings(t.Spec, spec) {
			plans = append(plans, plan{tab: t, reused: true, spec: spec})
			continue
		}
		t, err := m.newTab(spec)
		if err != nil {
			m.log.WithError(err).Warn("deck rejected, keeping previous deck")
			return nil, err
		}
		plans = append(plans, plan{tab: t, spec: spec})
	}

	var cmds []tea.Cmd
	tabs := make([]*state.Tab, 0, len(plans))
	kept := make(map[*state.Tab]bool, len(plans))
	for _, p := range plans {
		if p.reused {
			p.tab.Spec = p.spec
			cmds = append(cmds, p.tab.Engine.SetItemCount(len(p.spec.Slides)))
			kept[p.tab] = true
		}
		tabs = append(tabs, p.tab)
	}
	for _, t := range m.state.Tabs {
		if !kept[t] {
			t.Engine.Detach()
		}
	}

	m.state.Tabs = tabs
	m.state.Active = 0
	if i := m.state.TabIndex(activeName); i >= 0 {
		m.state.Active = i
	}

	if tab := m.state.ActiveTab(); tab != nil && m.state.Width > 0 && !m.state.InPager {
		cmds = append(cmds, tab.Engine.Attach(m.state.Width))
		// a rebuilt engine starts unhovered while the pointer may still be over it
		tab.Engine.SetHovering(m.state.Hovering)
	}
	return tea.Batch(cmds...), nil
}

// sameSettings compares everything but the slides
func sameSettings(a, b domain.CarouselSpec) bool {
	a.Slides, b.Slides = nil, nil
	return reflect.DeepEqual(a, b)
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPager {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}

	mode := m.inputHandler.CurrentMode()
	m.viewModel.SetInputMode(mode.String(), m.inputHandler.TextInput())

	return m.renderer.Render(m.viewModel.BuildViewState())
}
