package input

import "carousel/internal/ui/state"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// PageCount returns the number of positions in the active carousel
func (c *ModelContext) PageCount() int {
	if tab := c.State.ActiveTab(); tab != nil {
		return tab.Engine.View().PageCount()
	}
	return 0
}

func (c *ModelContext) TabCount() int {
	return len(c.State.Tabs)
}

// AutoplayConfigured reports whether the active carousel has autoplay on
func (c *ModelContext) AutoplayConfigured() bool {
	if tab := c.State.ActiveTab(); tab != nil {
		return tab.Engine.Config().Autoplay
	}
	return false
}
