package carousel

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"carousel/internal/autoplay"
	"carousel/internal/geometry"
	"carousel/internal/gesture"
	"carousel/internal/paging"
)

// ViewModel is the read-only snapshot a presentation layer renders from
type ViewModel struct {
	Name              string
	Width             int
	CurrentIndex      int
	ItemsPerPage      int
	MaxIndex          int
	ItemCount         int
	Breakpoint        geometry.Breakpoint
	Policy            paging.BoundaryPolicy
	IsAutoplayEnabled bool
	IsAutoplayPaused  bool
	PauseReasons      autoplay.PauseSource
	CanPrevious       bool
	CanNext           bool
	Dragging          bool
	ShowDots          bool
	ShowArrows        bool
}

// PageCount is the number of distinct positions, for dot indicators
func (vm ViewModel) PageCount() int {
	return vm.MaxIndex + 1
}

// Engine wires geometry, paging, autoplay and gestures for one carousel.
// All methods must be called from the same goroutine (the Bubble Tea update loop).
type Engine struct {
	cfg        Config
	resolver   geometry.Resolver
	pager      *paging.Controller
	autoplay   *autoplay.Scheduler
	gesture    *gesture.Recognizer
	log        *logrus.Entry
	width      int
	breakpoint geometry.Breakpoint
	attached   bool
}

type options struct {
	tick   autoplay.TickFunc
	logger *logrus.Entry
}

// Option customizes an Engine
type Option func(*options)

// WithTickFunc substitutes the autoplay timer source
func WithTickFunc(fn autoplay.TickFunc) Option {
	return func(o *options) { o.tick = fn }
}

// WithLogger sets the log entry the engine writes to
func WithLogger(l *logrus.Entry) Option {
	return func(o *options) { o.logger = l }
}

// New validates cfg and builds a detached engine over itemCount items
func New(cfg Config, itemCount int, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logrus.WithField("carousel", cfg.Name)
	}

	cfg, raised := cfg.normalized()
	for _, bp := range raised {
		o.logger.Warnf("items per page for %s is below 1, using 1", bp)
	}

	resolver, err := geometry.NewResolver(cfg.Thresholds, cfg.ItemsPerPage)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		resolver: resolver,
		pager:    paging.NewController(cfg.Policy),
		log:      o.logger,
	}
	e.autoplay = autoplay.New(e.pager, autoplay.WithTickFunc(o.tick))
	e.gesture = gesture.New(e.pager, e.autoplay, cfg.SwipeThreshold)

	e.breakpoint, _ = resolver.Resolve(0)
	e.pager.Recompute(itemCount, resolver.ItemsPerPage(e.breakpoint))
	return e, nil
}

// Attach samples the width, resolves geometry and starts autoplay if
// configured. The returned command carries the first tick. Attaching an
// attached engine does nothing.
func (e *Engine) Attach(width int) tea.Cmd {
	if e.attached {
		return nil
	}
	e.attached = true
	e.applyGeometry(width)
	e.log.WithFields(logrus.Fields{
		"width":      width,
		"breakpoint": e.breakpoint.String(),
		"items":      e.pager.ItemCount(),
	}).Debug("attached")
	return e.reconcileAutoplay()
}

// Detach stops the tick chain and stops listening for resizes. Any gesture
// in progress is cancelled and hover is cleared since the pointer is gone.
// Safe to call more than once.
func (e *Engine) Detach() {
	if !e.attached {
		return
	}
	e.attached = false
	e.autoplay.Disable()
	e.gesture.Cancel()
	e.SetHovering(false)
	e.log.Debug("detached")
}

// Attached reports whether the engine is live
func (e *Engine) Attached() bool {
	return e.attached
}

// Resize re-resolves geometry for a new width. The current index is kept
// unless the new geometry no longer admits it. Ignored while detached.
func (e *Engine) Resize(width int) tea.Cmd {
	if !e.attached {
		return nil
	}
	e.applyGeometry(width)
	return e.reconcileAutoplay()
}

// SetItemCount applies a changed collection length, re-clamping the index
// the same way a resize does
func (e *Engine) SetItemCount(n int) tea.Cmd {
	if e.pager.Recompute(n, e.pager.ItemsPerPage()) {
		e.log.WithField("index", e.pager.Current()).Debug("index clamped after item count change")
	}
	return e.reconcileAutoplay()
}

// Update routes the messages the engine subscribes to: its own autoplay
// ticks and terminal resizes. Everything else is ignored.
func (e *Engine) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case autoplay.TickMsg:
		if !e.attached {
			return nil
		}
		_, cmd := e.autoplay.Update(msg)
		return cmd
	case tea.WindowSizeMsg:
		return e.Resize(msg.Width)
	}
	return nil
}

func (e *Engine) applyGeometry(width int) {
	e.width = width
	bp, perPage := e.resolver.Resolve(width)
	if bp != e.breakpoint {
		e.log.WithFields(logrus.Fields{
			"from": e.breakpoint.String(),
			"to":   bp.String(),
		}).Debug("breakpoint changed")
	}
	e.breakpoint = bp
	if e.pager.Recompute(e.pager.ItemCount(), perPage) {
		e.log.WithField("index", e.pager.Current()).Debug("index clamped after resize")
	}
}

// reconcileAutoplay keeps the tick chain in line with the geometry: running
// while there is something to page through, stopped otherwise
func (e *Engine) reconcileAutoplay() tea.Cmd {
	if !e.attached || !e.cfg.Autoplay {
		return nil
	}
	if e.pager.MaxIndex() == 0 {
		e.autoplay.Disable()
		return nil
	}
	if e.autoplay.Scheduled() {
		return nil
	}
	return e.autoplay.Enable(e.cfg.Interval)
}

// Next advances one page
func (e *Engine) Next() bool {
	return e.pager.Next()
}

// Previous goes back one page
func (e *Engine) Previous() bool {
	return e.pager.Previous()
}

// GoTo jumps directly to index i, clamped
func (e *Engine) GoTo(i int) bool {
	return e.pager.GoTo(i)
}

// ToggleAutoplay flips the manual pause and reports whether autoplay is now
// running. Carousels without autoplay are unaffected.
func (e *Engine) ToggleAutoplay() bool {
	if !e.cfg.Autoplay {
		return false
	}
	paused := !e.autoplay.PausedBy(autoplay.Manual)
	e.autoplay.SetPaused(autoplay.Manual, paused)
	e.log.WithField("paused", paused).Info("autoplay toggled")
	return !paused
}

// SetHovering is the pointer enter/leave source
func (e *Engine) SetHovering(on bool) {
	e.autoplay.SetPaused(autoplay.Hovering, on)
}

// PointerDown starts a gesture at x
func (e *Engine) PointerDown(x int) bool {
	if !e.attached {
		return false
	}
	return e.gesture.Press(x)
}

// PointerUp completes a gesture at x
func (e *Engine) PointerUp(x int) gesture.Direction {
	return e.gesture.Release(x)
}

// PointerCancel abandons a gesture, e.g. on pointer leave or focus loss
func (e *Engine) PointerCancel() bool {
	return e.gesture.Cancel()
}

// DragOffset is the live gesture displacement at x
func (e *Engine) DragOffset(x int) int {
	return e.gesture.Offset(x)
}

// Slots renders the visible items, calling render once per slot in order
func (e *Engine) Slots(render func(index int) string) []string {
	start, end := e.pager.VisibleRange()
	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, render(i))
	}
	return out
}

// View snapshots the current state
func (e *Engine) View() ViewModel {
	return ViewModel{
		Name:              e.cfg.Name,
		Width:             e.width,
		CurrentIndex:      e.pager.Current(),
		ItemsPerPage:      e.pager.ItemsPerPage(),
		MaxIndex:          e.pager.MaxIndex(),
		ItemCount:         e.pager.ItemCount(),
		Breakpoint:        e.breakpoint,
		Policy:            e.cfg.Policy,
		IsAutoplayEnabled: e.autoplay.Scheduled() && !e.autoplay.PausedBy(autoplay.Manual),
		IsAutoplayPaused:  e.autoplay.Paused(),
		PauseReasons:      e.autoplay.PauseReasons(),
		CanPrevious:       e.pager.CanPrevious(),
		CanNext:           e.pager.CanNext(),
		Dragging:          e.gesture.Tracking(),
		ShowDots:          e.cfg.ShowDots,
		ShowArrows:        e.cfg.ShowArrows,
	}
}

// Name returns the configured carousel name
func (e *Engine) Name() string {
	return e.cfg.Name
}

// Config returns the normalized configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Resolver exposes the geometry resolver, e.g. for validation reports
func (e *Engine) Resolver() geometry.Resolver {
	return e.resolver
}
