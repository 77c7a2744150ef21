package geometry

import (
	"errors"
	"fmt"
	"strings"
)

// Breakpoint is a named width class used to pick how many items fit on a page
type Breakpoint int

const (
	Narrow Breakpoint = iota
	Medium
	Wide
	ExtraWide
)

// ErrThresholdOrder is returned when breakpoint thresholds overlap or are out of order
var ErrThresholdOrder = errors.New("breakpoint thresholds must be strictly increasing")

func (b Breakpoint) String() string {
	switch b {
	case Narrow:
		return "narrow"
	case Medium:
		return "medium"
	case Wide:
		return "wide"
	case ExtraWide:
		return "extra-wide"
	default:
		return fmt.Sprintf("breakpoint(%d)", int(b))
	}
}

// ParseBreakpoint accepts the names used in deck files
func ParseBreakpoint(s string) (Breakpoint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "narrow":
		return Narrow, nil
	case "medium":
		return Medium, nil
	case "wide":
		return Wide, nil
	case "extra-wide", "extra_wide", "extrawide":
		return ExtraWide, nil
	}
	return Narrow, fmt.Errorf("unknown breakpoint %q", s)
}

// Thresholds holds the minimum width of each tier above Narrow.
// ExtraWide == 0 disables the fourth tier.
type Thresholds struct {
	Medium    int
	Wide      int
	ExtraWide int
}

// DefaultThresholds: narrow <640, medium 640-1023, wide >=1024
var DefaultThresholds = Thresholds{Medium: 640, Wide: 1024}

// Validate checks that the tiers are ordered and non-overlapping
func (t Thresholds) Validate() error {
	if t.Medium <= 0 {
		return fmt.Errorf("%w: medium threshold %d must be positive", ErrThresholdOrder, t.Medium)
	}
	if t.Wide <= t.Medium {
		return fmt.Errorf("%w: wide %d <= medium %d", ErrThresholdOrder, t.Wide, t.Medium)
	}
	if t.ExtraWide != 0 && t.ExtraWide <= t.Wide {
		return fmt.Errorf("%w: extra-wide %d <= wide %d", ErrThresholdOrder, t.ExtraWide, t.Wide)
	}
	return nil
}

// Table maps a breakpoint to items per page
type Table map[Breakpoint]int

// Normalize returns a complete copy of the table. Missing tiers inherit the
// next narrower tier and every value is at least 1.
func (t Table) Normalize() Table {
	out := make(Table, 4)
	prev := 1
	for _, bp := range []Breakpoint{Narrow, Medium, Wide, ExtraWide} {
		v, ok := t[bp]
		if !ok {
			v = prev
		}
		if v < 1 {
			v = 1
		}
		out[bp] = v
		prev = v
	}
	return out
}

// Resolver classifies widths against a fixed configuration.
// It holds no mutable state, so a zero-cost copy can be called from anywhere.
type Resolver struct {
	thresholds Thresholds
	table      Table
}

// NewResolver validates the thresholds and normalizes the table
func NewResolver(thresholds Thresholds, table Table) (Resolver, error) {
	if err := thresholds.Validate(); err != nil {
		return Resolver{}, err
	}
	return Resolver{
		thresholds: thresholds,
		table:      table.Normalize(),
	}, nil
}

// Classify maps a width to exactly one breakpoint. Widths <= 0 (not yet
// measured) are Narrow.
func (r Resolver) Classify(width int) Breakpoint {
	switch {
	case width <= 0:
		return Narrow
	case r.thresholds.ExtraWide > 0 && width >= r.thresholds.ExtraWide:
		return ExtraWide
	case width >= r.thresholds.Wide:
		return Wide
	case width >= r.thresholds.Medium:
		return Medium
	default:
		return Narrow
	}
}

// ItemsPerPage returns the configured page size for bp, never less than 1
func (r Resolver) ItemsPerPage(bp Breakpoint) int {
	if v, ok := r.table[bp]; ok && v >= 1 {
		return v
	}
	return 1
}

// Resolve is Classify followed by ItemsPerPage
func (r Resolver) Resolve(width int) (Breakpoint, int) {
	bp := r.Classify(width)
	return bp, r.ItemsPerPage(bp)
}

// Thresholds returns the configured thresholds
func (r Resolver) Thresholds() Thresholds {
	return r.thresholds
}

// Tiers lists the breakpoints this resolver can produce, narrowest first
func (r Resolver) Tiers() []Breakpoint {
	if r.thresholds.ExtraWide > 0 {
		return []Breakpoint{Narrow, Medium, Wide, ExtraWide}
	}
	return []Breakpoint{Narrow, Medium, Wide}
}
