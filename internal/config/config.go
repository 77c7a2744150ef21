package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"carousel/internal/carousel"
	"carousel/internal/domain"
	"carousel/internal/eventbus"
	"carousel/internal/geometry"
	"carousel/internal/paging"
)

var (
	// ErrNoCarousels is returned for a deck without any carousel
	ErrNoCarousels = errors.New("deck defines no carousels")
	// ErrDuplicateName is returned when two carousels share a name
	ErrDuplicateName = errors.New("duplicate carousel name")
)

// CurrentVersion is the deck format version written by Save
const CurrentVersion = 1

// Terminal widths are measured in columns
const (
	DefaultMediumColumns = 80
	DefaultWideColumns   = 120
)

// Config is the deck file: every carousel the app can show
type Config struct {
	Version   int                   `toml:"version"`
	Carousels []domain.CarouselSpec `toml:"carousels"`
}

// Validate checks the deck as a whole and every carousel in it
func (c *Config) Validate() error {
	if len(c.Carousels) == 0 {
		return ErrNoCarousels
	}
	seen := make(map[string]bool, len(c.Carousels))
	for i, spec := range c.Carousels {
		if spec.Name == "" {
			return fmt.Errorf("carousel #%d: name is required", i+1)
		}
		if seen[spec.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, spec.Name)
		}
		seen[spec.Name] = true
		if _, err := EngineConfig(spec); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the carousel with the given name
func (c *Config) Find(name string) (domain.CarouselSpec, bool) {
	for _, spec := range c.Carousels {
		if spec.Name == name {
			return spec, true
		}
	}
	return domain.CarouselSpec{}, false
}

// EngineConfig converts a deck entry into a validated engine configuration.
// Zero thresholds fall back to the terminal defaults and zero page sizes
// inherit the next narrower tier.
func EngineConfig(spec domain.CarouselSpec) (carousel.Config, error) {
	var policy paging.BoundaryPolicy
	if spec.Policy != "" {
		p, err := paging.ParseBoundaryPolicy(spec.Policy)
		if err != nil {
			return carousel.Config{}, fmt.Errorf("carousel %q: %w", spec.Name, err)
		}
		policy = p
	}

	cfg := carousel.DefaultConfig(spec.Name, policy)
	cfg.Thresholds = geometry.Thresholds{
		Medium:    orDefault(spec.Breakpoints.Medium, DefaultMediumColumns),
		Wide:      orDefault(spec.Breakpoints.Wide, DefaultWideColumns),
		ExtraWide: spec.Breakpoints.ExtraWide,
	}

	table := geometry.Table{}
	for bp, v := range map[geometry.Breakpoint]int{
		geometry.Narrow:    spec.ItemsPerPage.Narrow,
		geometry.Medium:    spec.ItemsPerPage.Medium,
		geometry.Wide:      spec.ItemsPerPage.Wide,
		geometry.ExtraWide: spec.ItemsPerPage.ExtraWide,
	} {
		if v != 0 {
			table[bp] = v
		}
	}
	cfg.ItemsPerPage = table

	cfg.Autoplay = spec.Autoplay
	cfg.Interval = time.Duration(spec.IntervalMS) * time.Millisecond
	cfg.SwipeThreshold = spec.SwipeThreshold
	cfg.ShowDots = spec.ShowDots
	cfg.ShowArrows = spec.ShowArrows

	if err := cfg.Validate(); err != nil {
		return carousel.Config{}, err
	}
	return cfg, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// ConfigService handles deck file management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath is the deck location under the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "carousel", "deck.toml")
}

// NewConfigService creates a deck service for path; empty means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a deck service that publishes load and
// save events
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the deck, falling back to DefaultConfig when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.DeckLoadedEvent{
			Path:      cs.filePath,
			Carousels: cfg.Carousels,
		})
	}
	return cfg, nil
}

// Save writes the deck to the service path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.DeckSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath reads and validates a deck from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse deck %s: %w", path, err)
	}
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck %s: %w", path, err)
	}
	return &cfg, nil
}

// SaveToPath writes the deck to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create deck directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal deck: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write deck file: %w", err)
	}
	return nil
}

// DefaultConfig returns the sample deck written by `carousel init`
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Carousels: []domain.CarouselSpec{
			{
				Name:           "testimonials",
				Policy:         "wrap",
				Autoplay:       true,
				IntervalMS:     4000,
				SwipeThreshold: 6,
				ShowDots:       true,
				ShowArrows:     true,
				ItemsPerPage:   domain.ItemsPerPageSpec{Narrow: 1, Medium: 2, Wide: 3},
				Slides: []domain.Slide{
					{Title: "Ada L.", Subtitle: "Platform lead", Body: "We replaced three hand-rolled sliders with one config block."},
					{Title: "Grace H.", Subtitle: "Staff engineer", Body: "Resizing the window never loses my place any more."},
					{Title: "Linus T.", Subtitle: "Maintainer", Body: "Wrap or clamp is a decision, not an accident."},
					{Title: "Barbara L.", Subtitle: "Architect", Body: "Hover to read, move away and it carries on."},
					{Title: "Ken T.", Subtitle: "Operator", Body: "No stray timers after the page is gone."},
				},
			},
			{
				Name:           "team",
				Policy:         "wrap",
				Autoplay:       true,
				IntervalMS:     6000,
				SwipeThreshold: 6,
				ShowDots:       true,
				Breakpoints:    domain.BreakpointSpec{Medium: 80, Wide: 120, ExtraWide: 160},
				ItemsPerPage:   domain.ItemsPerPageSpec{Narrow: 1, Medium: 2, Wide: 3, ExtraWide: 4},
				Slides: []domain.Slide{
					{Title: "Mara", Subtitle: "Design"},
					{Title: "Ivo", Subtitle: "Backend"},
					{Title: "Noor", Subtitle: "Frontend"},
					{Title: "Teo", Subtitle: "Infrastructure"},
					{Title: "Ines", Subtitle: "Support"},
					{Title: "Jun", Subtitle: "Product"},
				},
			},
			{
				Name:         "milestones",
				Policy:       "clamp",
				ShowDots:     true,
				ShowArrows:   true,
				ItemsPerPage: domain.ItemsPerPageSpec{Narrow: 1, Medium: 1, Wide: 2},
				Slides: []domain.Slide{
					{Title: "2019", Body: "First release"},
					{Title: "2020", Body: "Plugin API"},
					{Title: "2022", Body: "Hosted offering"},
					{Title: "2024", Body: "Ten thousand users"},
				},
			},
			{
				Name:         "courses",
				Policy:       "clamp",
				ShowArrows:   true,
				ItemsPerPage: domain.ItemsPerPageSpec{Narrow: 1, Medium: 2, Wide: 4},
				Slides: []domain.Slide{
					{Title: "Go basics", Subtitle: "4 weeks"},
					{Title: "Concurrency", Subtitle: "3 weeks"},
					{Title: "Testing", Subtitle: "2 weeks"},
					{Title: "Tooling", Subtitle: "1 week"},
					{Title: "Profiling", Subtitle: "2 weeks"},
					{Title: "Generics", Subtitle: "1 week"},
					{Title: "Networking", Subtitle: "3 weeks"},
				},
			},
		},
	}
}
