package paging

import (
	"fmt"
	"strings"
)

// BoundaryPolicy decides what happens when navigation runs past either end
type BoundaryPolicy int

const (
	// PolicyUnset is the zero value; carousels must choose explicitly
	PolicyUnset BoundaryPolicy = iota
	// Wrap returns to the first page after the last one and vice versa
	Wrap
	// Clamp stops at the first and last page
	Clamp
)

func (p BoundaryPolicy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	default:
		return "unset"
	}
}

// ParseBoundaryPolicy accepts "wrap" or "clamp"
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return Wrap, nil
	case "clamp":
		return Clamp, nil
	}
	return PolicyUnset, fmt.Errorf("unknown boundary policy %q (want wrap or clamp)", s)
}

// Controller owns the current page index for one carousel.
// Every mutation keeps 0 <= current <= MaxIndex().
type Controller struct {
	policy       BoundaryPolicy
	current      int
	itemCount    int
	itemsPerPage int
}

// NewController creates a controller with no items and one item per page
func NewController(policy BoundaryPolicy) *Controller {
	return &Controller{
		policy:       policy,
		itemsPerPage: 1,
	}
}

// Recompute applies a new item count and page size. The index is only ever
// lowered, and only when the new geometry no longer admits it.
// Returns true if the index moved.
func (c *Controller) Recompute(itemCount, itemsPerPage int) bool {
	if itemCount < 0 {
		itemCount = 0
	}
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	c.itemCount = itemCount
	c.itemsPerPage = itemsPerPage

	if last := c.MaxIndex(); c.current > last {
		c.current = last
		return true
	}
	return false
}

// MaxIndex is max(0, itemCount - itemsPerPage), always read from live state
func (c *Controller) MaxIndex() int {
	last := c.itemCount - c.itemsPerPage
	if last < 0 {
		return 0
	}
	return last
}

// Next advances one position according to the boundary policy
func (c *Controller) Next() bool {
	last := c.MaxIndex()
	old := c.current
	if c.policy == Wrap {
		c.current = (c.current + 1) % (last + 1)
	} else if c.current < last {
		c.current++
	}
	return c.current != old
}

// Previous moves back one position according to the boundary policy
func (c *Controller) Previous() bool {
	last := c.MaxIndex()
	old := c.current
	if c.policy == Wrap {
		c.current = (c.current - 1 + last + 1) % (last + 1)
	} else if c.current > 0 {
		c.current--
	}
	return c.current != old
}

// GoTo selects a position directly. Direct selection never wraps.
func (c *Controller) GoTo(i int) bool {
	old := c.current
	switch last := c.MaxIndex(); {
	case i < 0:
		c.current = 0
	case i > last:
		c.current = last
	default:
		c.current = i
	}
	return c.current != old
}

// CanNext reports whether Next would move the index
func (c *Controller) CanNext() bool {
	if c.policy == Wrap {
		return c.MaxIndex() > 0
	}
	return c.current < c.MaxIndex()
}

// CanPrevious reports whether Previous would move the index
func (c *Controller) CanPrevious() bool {
	if c.policy == Wrap {
		return c.MaxIndex() > 0
	}
	return c.current > 0
}

// VisibleRange returns the half-open range of item indices on screen
func (c *Controller) VisibleRange() (start, end int) {
	start = c.current
	end = start + c.itemsPerPage
	if end > c.itemCount {
		end = c.itemCount
	}
	if start > end {
		start = end
	}
	return start, end
}

func (c *Controller) Current() int      { return c.current }
func (c *Controller) ItemCount() int    { return c.itemCount }
func (c *Controller) ItemsPerPage() int { return c.itemsPerPage }
func (c *Controller) PageCount() int    { return c.MaxIndex() + 1 }
