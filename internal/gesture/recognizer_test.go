package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/autoplay"
)

type recordingNav struct {
	next, prev int
}

func (n *recordingNav) Next() bool {
	n.next++
	return true
}

func (n *recordingNav) Previous() bool {
	n.prev++
	return true
}

type recordingPauser struct {
	flags autoplay.PauseSource
	other bool
}

func (p *recordingPauser) SetPaused(src autoplay.PauseSource, paused bool) {
	if src != autoplay.Dragging {
		p.other = true
	}
	if paused {
		p.flags |= src
	} else {
		p.flags &^= src
	}
}

func TestSwipeThreshold(t *testing.T) {
	cases := []struct {
		name           string
		start, end     int
		wantDir        Direction
		wantNext, prev int
	}{
		{"short left is a tap", 100, 51, None, 0, 0},
		{"short right is a tap", 100, 149, None, 0, 0},
		{"left swipe advances", 100, 49, Forward, 1, 0},
		{"right swipe goes back", 100, 151, Backward, 0, 1},
		{"exact threshold is a tap", 100, 50, None, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nav := &recordingNav{}
			r := New(nav, nil, 50)

			require.True(t, r.Press(tc.start))
			got := r.Release(tc.end)

			assert.Equal(t, tc.wantDir, got)
			assert.Equal(t, tc.wantNext, nav.next)
			assert.Equal(t, tc.prev, nav.prev)
			assert.False(t, r.Tracking())
		})
	}
}

func TestDraggingFlagFollowsSession(t *testing.T) {
	nav := &recordingNav{}
	p := &recordingPauser{}
	r := New(nav, p, 0)
	require.Equal(t, DefaultThreshold, r.Threshold())

	r.Press(10)
	assert.Equal(t, autoplay.Dragging, p.flags)

	r.Release(12)
	assert.Zero(t, p.flags)
	assert.False(t, p.other, "recognizer only writes its own flag")
}

func TestCancelClearsDragging(t *testing.T) {
	nav := &recordingNav{}
	p := &recordingPauser{}
	r := New(nav, p, 5)

	r.Press(100)
	require.True(t, r.Cancel())
	assert.Zero(t, p.flags)
	assert.False(t, r.Tracking())
	assert.Zero(t, nav.next+nav.prev)

	assert.False(t, r.Cancel(), "cancel while idle is ignored")
}

func TestIgnoredTransitions(t *testing.T) {
	nav := &recordingNav{}
	r := New(nav, nil, 5)

	assert.Equal(t, None, r.Release(0), "release while idle")

	require.True(t, r.Press(100))
	assert.False(t, r.Press(0), "second press keeps the original start")
	assert.Equal(t, Forward, r.Release(80))
	assert.Equal(t, 1, nav.next)
}

func TestOffset(t *testing.T) {
	r := New(&recordingNav{}, nil, 5)
	assert.Zero(t, r.Offset(30))

	r.Press(30)
	assert.Equal(t, -10, r.Offset(20))
	r.Cancel()
	assert.Zero(t, r.Offset(20))
}
