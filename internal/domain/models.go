package domain

// Slide is one item shown in a carousel
type Slide struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle,omitempty"`
	Body     string `toml:"body,omitempty"`
}

// CarouselSpec is a carousel as written in the deck file
type CarouselSpec struct {
	Name           string           `toml:"name"`
	Policy         string           `toml:"policy"` // "wrap" or "clamp"
	Autoplay       bool             `toml:"autoplay"`
	IntervalMS     int              `toml:"interval_ms,omitempty"`
	SwipeThreshold int              `toml:"swipe_threshold,omitempty"`
	ShowDots       bool             `toml:"show_dots"`
	ShowArrows     bool             `toml:"show_arrows"`
	Breakpoints    BreakpointSpec   `toml:"breakpoints"`
	ItemsPerPage   ItemsPerPageSpec `toml:"items_per_page"`
	Slides         []Slide          `toml:"slides"`
}

// BreakpointSpec holds minimum widths; zero leaves the default
type BreakpointSpec struct {
	Medium    int `toml:"medium,omitempty"`
	Wide      int `toml:"wide,omitempty"`
	ExtraWide int `toml:"extra_wide,omitempty"` // 0 disables the tier
}

// ItemsPerPageSpec holds items per page for each tier; zero inherits the
// next narrower tier
type ItemsPerPageSpec struct {
	Narrow    int `toml:"narrow,omitempty"`
	Medium    int `toml:"medium,omitempty"`
	Wide      int `toml:"wide,omitempty"`
	ExtraWide int `toml:"extra_wide,omitempty"`
}
