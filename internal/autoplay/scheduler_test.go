package autoplay

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePager counts Next calls against a fixed max index
type fakePager struct {
	max   int
	calls int
}

func (p *fakePager) Next() bool {
	p.calls++
	return p.max > 0
}

func (p *fakePager) MaxIndex() int { return p.max }

// instantTick fires as soon as the command runs; running a command is one
// elapsed interval on the simulated clock.
func instantTick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return fn(time.Unix(0, 0).Add(d))
	}
}

func newTestScheduler(p *fakePager) *Scheduler {
	return New(p, WithTickFunc(instantTick))
}

// advance runs n intervals, feeding each tick back into the scheduler
func advance(t *testing.T, s *Scheduler, cmd tea.Cmd, n int) tea.Cmd {
	t.Helper()
	for i := 0; i < n && cmd != nil; i++ {
		_, cmd = s.Update(cmd())
	}
	return cmd
}

func TestEnableStartsChain(t *testing.T) {
	p := &fakePager{max: 3}
	s := newTestScheduler(p)

	cmd := s.Enable(time.Second)
	require.NotNil(t, cmd)
	assert.True(t, s.Scheduled())
	assert.Equal(t, time.Second, s.Interval())

	cmd = advance(t, s, cmd, 4)
	assert.NotNil(t, cmd, "chain keeps rescheduling")
	assert.Equal(t, 4, p.calls)
}

func TestEnableIsNoOpWithNothingToPage(t *testing.T) {
	p := &fakePager{max: 0}
	s := newTestScheduler(p)

	assert.Nil(t, s.Enable(time.Second))
	assert.Equal(t, Idle, s.State())
}

func TestEnableWithNothingToPageStopsLiveChain(t *testing.T) {
	p := &fakePager{max: 3}
	s := newTestScheduler(p)

	cmd := s.Enable(time.Second)
	cmd = advance(t, s, cmd, 1)
	require.Equal(t, 1, p.calls)

	// the collection shrank to a single page
	p.max = 0
	assert.Nil(t, s.Enable(time.Second))
	assert.Equal(t, Idle, s.State())

	advanced, next := s.Update(cmd())
	assert.False(t, advanced)
	assert.Nil(t, next, "the old chain must not reschedule")
	assert.Equal(t, 1, p.calls)
}

func TestEnableDefaultsInterval(t *testing.T) {
	s := newTestScheduler(&fakePager{max: 1})
	s.Enable(0)
	assert.Equal(t, DefaultInterval, s.Interval())
}

func TestDisableStopsTicks(t *testing.T) {
	p := &fakePager{max: 3}
	s := newTestScheduler(p)

	cmd := s.Enable(time.Second)
	cmd = advance(t, s, cmd, 1)
	require.Equal(t, 1, p.calls)

	s.Disable()
	assert.Equal(t, Idle, s.State())

	// The in-flight tick still arrives, several intervals later
	msg := cmd()
	for i := 0; i < 5; i++ {
		advanced, next := s.Update(msg)
		assert.False(t, advanced)
		assert.Nil(t, next, "a cancelled chain must not reschedule")
	}
	assert.Equal(t, 1, p.calls)
}

func TestDisableIsIdempotent(t *testing.T) {
	s := newTestScheduler(&fakePager{max: 2})
	s.Disable()
	s.Enable(time.Second)
	s.Disable()
	s.Disable()
	assert.Equal(t, Idle, s.State())
}

func TestReEnableLeavesSingleChain(t *testing.T) {
	p := &fakePager{max: 3}
	s := newTestScheduler(p)

	first := s.Enable(time.Second)
	second := s.Enable(time.Second)

	advanced, next := s.Update(first())
	assert.False(t, advanced, "tick from replaced chain is dropped")
	assert.Nil(t, next)

	advanced, next = s.Update(second())
	assert.True(t, advanced)
	assert.NotNil(t, next)
	assert.Equal(t, 1, p.calls)
}

func TestTicksFromOtherSchedulersAreIgnored(t *testing.T) {
	pa, pb := &fakePager{max: 2}, &fakePager{max: 2}
	a, b := newTestScheduler(pa), newTestScheduler(pb)

	cmdA := a.Enable(time.Second)
	b.Enable(time.Second)

	advanced, next := b.Update(cmdA())
	assert.False(t, advanced)
	assert.Nil(t, next)
	assert.Equal(t, 0, pb.calls)

	advanced, _ = b.Update(tea.KeyMsg{})
	assert.False(t, advanced)
}

func TestPausedTicksAreDroppedNotQueued(t *testing.T) {
	p := &fakePager{max: 3}
	s := newTestScheduler(p)
	cmd := s.Enable(time.Second)

	s.SetPaused(Hovering, true)
	cmd = advance(t, s, cmd, 3)
	require.NotNil(t, cmd, "pausing does not stop the chain")
	assert.Equal(t, 0, p.calls)

	s.SetPaused(Hovering, false)
	advance(t, s, cmd, 1)
	assert.Equal(t, 1, p.calls, "no backlog is replayed on resume")
}

func TestPauseComposition(t *testing.T) {
	p := &fakePager{max: 3}
	s := newTestScheduler(p)
	cmd := s.Enable(time.Second)

	s.SetPaused(Hovering, true)
	s.SetPaused(Dragging, true)
	s.SetPaused(Hovering, false)
	require.True(t, s.PausedBy(Dragging))
	require.False(t, s.PausedBy(Hovering))

	cmd = advance(t, s, cmd, 2)
	assert.Equal(t, 0, p.calls, "drag still holds autoplay")

	s.SetPaused(Dragging, false)
	assert.False(t, s.Paused())
	advance(t, s, cmd, 2)
	assert.Equal(t, 2, p.calls)
}

func TestPauseSourceString(t *testing.T) {
	assert.Equal(t, "none", PauseSource(0).String())
	assert.Equal(t, "hover+manual", (Hovering | Manual).String())
	assert.Equal(t, "drag", Dragging.String())
}
