package autoplay

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is used when Enable is called with a non-positive interval
const DefaultInterval = 5 * time.Second

// PauseSource is one independent reason to hold autoplay.
// Each source has exactly one owner, and only that owner clears it.
type PauseSource uint8

const (
	Hovering PauseSource = 1 << iota // pointer enter/leave
	Dragging                         // gesture recognizer
	Manual                           // user-facing toggle
)

var allSources = []PauseSource{Hovering, Dragging, Manual}

func (s PauseSource) String() string {
	var names []string
	for _, src := range allSources {
		if s&src == 0 {
			continue
		}
		switch src {
		case Hovering:
			names = append(names, "hover")
		case Dragging:
			names = append(names, "drag")
		case Manual:
			names = append(names, "manual")
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// State of the scheduler
type State int

const (
	Idle State = iota
	Scheduled
)

// Pager is the part of the page controller autoplay drives
type Pager interface {
	Next() bool
	MaxIndex() int
}

// TickFunc creates a one-shot timer command. tea.Tick in production; tests
// substitute a function that fires immediately to simulate a clock.
type TickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// TickMsg is delivered when an interval elapses. It only has an effect on
// the scheduler, and the generation, that produced it.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Scheduler owns a single repeating tick chain that advances a Pager.
type Scheduler struct {
	id       int
	tag      int
	state    State
	interval time.Duration
	paused   PauseSource
	pager    Pager
	tick     TickFunc
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithTickFunc replaces tea.Tick as the timer source
func WithTickFunc(fn TickFunc) Option {
	return func(s *Scheduler) {
		if fn != nil {
			s.tick = fn
		}
	}
}

// New creates an idle scheduler for pager
func New(pager Pager, opts ...Option) *Scheduler {
	s := &Scheduler{
		id:       nextID(),
		pager:    pager,
		interval: DefaultInterval,
		tick:     tea.Tick,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enable starts the tick chain. Any live chain is cancelled first so there is
// never more than one. When there is nothing to page through no new chain is
// started and it returns nil.
func (s *Scheduler) Enable(interval time.Duration) tea.Cmd {
	s.Disable()
	if s.pager.MaxIndex() == 0 {
		return nil
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	s.interval = interval
	s.state = Scheduled
	return s.schedule()
}

// Disable cancels the tick chain. Calling it while idle is a no-op.
func (s *Scheduler) Disable() {
	if s.state == Idle {
		return
	}
	s.state = Idle
	// Bumping the generation orphans the in-flight tick; it is dropped on arrival
	s.tag++
}

// Update consumes a TickMsg. A tick from this scheduler's live chain advances
// the pager when no pause source is set and schedules the next tick. Ticks
// from a cancelled chain, or from another scheduler, are ignored.
func (s *Scheduler) Update(msg tea.Msg) (advanced bool, cmd tea.Cmd) {
	tm, ok := msg.(TickMsg)
	if !ok || tm.ID != s.id {
		return false, nil
	}
	if s.state != Scheduled || tm.tag != s.tag {
		return false, nil
	}
	if s.paused == 0 {
		advanced = s.pager.Next()
	}
	return advanced, s.schedule()
}

func (s *Scheduler) schedule() tea.Cmd {
	id, tag := s.id, s.tag
	return s.tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}

// SetPaused sets or clears a single pause source. The tick chain keeps
// running either way; paused ticks are dropped.
func (s *Scheduler) SetPaused(src PauseSource, paused bool) {
	if paused {
		s.paused |= src
	} else {
		s.paused &^= src
	}
}

// PausedBy reports whether src is currently set
func (s *Scheduler) PausedBy(src PauseSource) bool {
	return s.paused&src != 0
}

// Paused reports whether any source is set
func (s *Scheduler) Paused() bool {
	return s.paused != 0
}

// PauseReasons returns the set of active sources
func (s *Scheduler) PauseReasons() PauseSource {
	return s.paused
}

func (s *Scheduler) State() State            { return s.state }
func (s *Scheduler) Scheduled() bool         { return s.state == Scheduled }
func (s *Scheduler) Interval() time.Duration { return s.interval }
