package carousel

import (
	"errors"
	"fmt"
	"time"

	"carousel/internal/autoplay"
	"carousel/internal/geometry"
	"carousel/internal/gesture"
	"carousel/internal/paging"
)

var (
	// ErrPolicyRequired is returned when a carousel does not choose wrap or clamp
	ErrPolicyRequired = errors.New("boundary policy is required")
	// ErrInvalidInterval is returned for a negative autoplay interval
	ErrInvalidInterval = errors.New("autoplay interval must not be negative")
)

// Config describes one carousel instance. The boundary policy has no default.
type Config struct {
	Name           string
	Thresholds     geometry.Thresholds
	ItemsPerPage   geometry.Table
	Policy         paging.BoundaryPolicy
	Autoplay       bool
	Interval       time.Duration
	SwipeThreshold int

	// Presentation hints; the engine passes them through untouched
	ShowDots   bool
	ShowArrows bool
}

// DefaultConfig returns a three-tier carousel with the given policy
func DefaultConfig(name string, policy paging.BoundaryPolicy) Config {
	return Config{
		Name:       name,
		Thresholds: geometry.DefaultThresholds,
		ItemsPerPage: geometry.Table{
			geometry.Narrow: 1,
			geometry.Medium: 2,
			geometry.Wide:   3,
		},
		Policy:         policy,
		Interval:       autoplay.DefaultInterval,
		SwipeThreshold: gesture.DefaultThreshold,
		ShowDots:       true,
		ShowArrows:     true,
	}
}

// Validate reports configuration errors that cannot be repaired silently
func (c Config) Validate() error {
	if c.Policy != paging.Wrap && c.Policy != paging.Clamp {
		return fmt.Errorf("carousel %q: %w", c.Name, ErrPolicyRequired)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("carousel %q: %w", c.Name, err)
	}
	if c.Interval < 0 {
		return fmt.Errorf("carousel %q: %w", c.Name, ErrInvalidInterval)
	}
	return nil
}

// normalized fills defaults and reports table entries that had to be raised
func (c Config) normalized() (Config, []geometry.Breakpoint) {
	var raised []geometry.Breakpoint
	for bp, v := range c.ItemsPerPage {
		if v < 1 {
			raised = append(raised, bp)
		}
	}
	c.ItemsPerPage = c.ItemsPerPage.Normalize()
	if c.Interval == 0 {
		c.Interval = autoplay.DefaultInterval
	}
	if c.SwipeThreshold <= 0 {
		c.SwipeThreshold = gesture.DefaultThreshold
	}
	return c, raised
}
