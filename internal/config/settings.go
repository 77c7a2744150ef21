package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every settings key looked up in the environment
const EnvPrefix = "CAROUSEL"

// Settings are the runtime options of the app, distinct from the deck file
type Settings struct {
	Deck          string        `mapstructure:"deck"`
	Carousel      string        `mapstructure:"carousel"`
	LogFile       string        `mapstructure:"log-file"`
	LogLevel      string        `mapstructure:"log-level"`
	NoMouse       bool          `mapstructure:"no-mouse"`
	Watch         bool          `mapstructure:"watch"`
	WatchDebounce time.Duration `mapstructure:"watch-debounce"`
}

// DefaultSettings returns the values used when neither a flag nor the
// environment sets them
func DefaultSettings() Settings {
	return Settings{
		Deck:          DefaultPath(),
		LogLevel:      "info",
		Watch:         true,
		WatchDebounce: DefaultDebounce,
	}
}

// RegisterFlags declares the settings flags on fs
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultSettings()
	fs.String("deck", d.Deck, "deck file (TOML)")
	fs.String("carousel", d.Carousel, "carousel to show first")
	fs.String("log-file", d.LogFile, "write logs to this file (default: discard)")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn, error")
	fs.Bool("no-mouse", d.NoMouse, "disable mouse hover and swipe")
	fs.Bool("watch", d.Watch, "reload the deck when the file changes")
	fs.Duration("watch-debounce", d.WatchDebounce, "delay before reloading a changed deck")
}

// LoadSettings resolves settings with precedence flag > env > default.
// fs may be nil.
func LoadSettings(fs *pflag.FlagSet) (Settings, error) {
	var s Settings

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	d := DefaultSettings()
	v.SetDefault("deck", d.Deck)
	v.SetDefault("carousel", d.Carousel)
	v.SetDefault("log-file", d.LogFile)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("no-mouse", d.NoMouse)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("watch-debounce", d.WatchDebounce)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return s, fmt.Errorf("binding flags: %w", err)
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	return s, nil
}
