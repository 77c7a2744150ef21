package gesture

import (
	"carousel/internal/autoplay"
)

// DefaultThreshold is the minimum horizontal travel, in logical units, for a
// release to count as a swipe
const DefaultThreshold = 50

// Direction is the navigation a completed gesture produced
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Navigator is what a swipe drives
type Navigator interface {
	Next() bool
	Previous() bool
}

// Pauser receives the drag pause flag. The recognizer is the only writer of
// autoplay.Dragging.
type Pauser interface {
	SetPaused(src autoplay.PauseSource, paused bool)
}

// Recognizer turns pointer down/up pairs into page navigation.
// It is Idle until a press, then Tracking until release or cancel.
type Recognizer struct {
	threshold int
	tracking  bool
	startX    int
	nav       Navigator
	pauser    Pauser
}

// New creates an idle recognizer. threshold <= 0 selects DefaultThreshold.
func New(nav Navigator, pauser Pauser, threshold int) *Recognizer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Recognizer{
		threshold: threshold,
		nav:       nav,
		pauser:    pauser,
	}
}

// Press starts a gesture session at x. A press while already tracking is
// ignored and returns false.
func (r *Recognizer) Press(x int) bool {
	if r.tracking {
		return false
	}
	r.tracking = true
	r.startX = x
	r.setDragging(true)
	return true
}

// Release ends the session at x and navigates if the travel exceeded the
// threshold. Releasing while idle does nothing.
func (r *Recognizer) Release(x int) Direction {
	if !r.tracking {
		return None
	}
	delta := r.startX - x
	r.reset()

	switch {
	case delta > r.threshold:
		r.nav.Next()
		return Forward
	case -delta > r.threshold:
		r.nav.Previous()
		return Backward
	default:
		// tap
		return None
	}
}

// Cancel abandons the session without navigating. Used when the pointer
// leaves the surface or focus is lost before release.
func (r *Recognizer) Cancel() bool {
	if !r.tracking {
		return false
	}
	r.reset()
	return true
}

// Offset is the live displacement for drag-following decoration; zero when idle
func (r *Recognizer) Offset(x int) int {
	if !r.tracking {
		return 0
	}
	return x - r.startX
}

func (r *Recognizer) Tracking() bool { return r.tracking }
func (r *Recognizer) Threshold() int { return r.threshold }

func (r *Recognizer) reset() {
	r.tracking = false
	r.startX = 0
	r.setDragging(false)
}

func (r *Recognizer) setDragging(on bool) {
	if r.pauser != nil {
		r.pauser.SetPaused(autoplay.Dragging, on)
	}
}
