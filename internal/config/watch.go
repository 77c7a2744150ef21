package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"carousel/internal/eventbus"
)

// DefaultDebounce coalesces the burst of events editors produce on save
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads the deck file when it changes on disk and publishes the
// result. A reload that fails leaves the previous deck in place.
type Watcher struct {
	service  ConfigService
	path     string
	bus      eventbus.EventBus
	debounce time.Duration
	log      *logrus.Entry
}

// NewWatcher creates a watcher for the service's deck path
func NewWatcher(service ConfigService, bus eventbus.EventBus, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		service:  service,
		path:     service.Path(),
		bus:      bus,
		debounce: debounce,
		log:      logrus.WithField("component", "watcher"),
	}
}

// Run blocks until ctx is done. The parent directory is watched rather than
// the file so atomic rename-on-save is picked up.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.log.WithField("path", w.path).Info("watching deck")

	target := filepath.Clean(w.path)
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watch error")

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := w.service.LoadFromPath(w.path)
	if err != nil {
		w.log.WithError(err).Warn("deck reload failed, keeping previous deck")
		w.bus.Publish(eventbus.ErrorEvent{Message: "deck reload failed", Err: err})
		return
	}
	w.log.WithField("carousels", len(cfg.Carousels)).Info("deck reloaded")
	w.bus.Publish(eventbus.DeckChangedEvent{Path: w.path, Carousels: cfg.Carousels})
}
