package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"carousel/internal/carousel"
	"carousel/internal/config"
	"carousel/internal/eventbus"
	"carousel/internal/geometry"
	"carousel/internal/logging"
	"carousel/internal/paging"
	"carousel/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "carousel",
		Short:        "Browse slide decks as responsive carousels in the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), settings)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newValidateCmd(), newInitCmd())
	return root
}

func run(parent context.Context, settings config.Settings) error {
	closeLog, err := logging.Setup(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logrus.WithField("component", "main")

	bus := eventbus.New(logrus.WithField("component", "eventbus"))
	defer bus.Close()

	deck := config.NewConfigServiceWithBus(settings.Deck, bus)
	cfg, err := deck.Load()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"path":      deck.Path(),
		"carousels": len(cfg.Carousels),
	}).Info("deck loaded")

	model, err := ui.NewModel(cfg.Carousels, ui.Options{
		Bus:     bus,
		Deck:    deck,
		Initial: settings.Carousel,
		Mouse:   !settings.NoMouse,
		Logger:  logrus.WithField("component", "ui"),
	})
	if err != nil {
		return err
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if !settings.NoMouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(model, progOpts...)
	model.SetProgram(p)

	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	bus.Subscribe(eventbus.EventDeckChanged, forward)
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SlideChangedEvent); ok {
			log.WithFields(logrus.Fields{
				"carousel": ev.Carousel,
				"index":    ev.Index,
				"source":   ev.Source,
			}).Debug("slide changed")
		}
	})
	bus.Subscribe(eventbus.EventAutoplayToggled, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.AutoplayToggledEvent); ok {
			log.WithFields(logrus.Fields{
				"carousel": ev.Carousel,
				"running":  ev.Running,
			}).Debug("autoplay toggled")
		}
	})

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if settings.Watch {
		watcher := config.NewWatcher(deck, bus, settings.WatchDebounce)
		g.Go(func() error {
			// a deck that lives nowhere yet cannot be watched; keep running without it
			if err := watcher.Run(ctx); err != nil {
				log.WithError(err).Warn("deck watcher stopped")
			}
			return nil
		})
	}

	g.Go(func() error {
		defer stop()
		_, err := p.Run()
		// the update loop has stopped, whichever way the program ended
		model.Teardown()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("running program: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		p.Quit()
		return nil
	})

	err = g.Wait()
	log.Info("exited")
	return err
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the deck and print how each carousel pages at every breakpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := config.NewConfigService(settings.Deck).LoadFromPath(settings.Deck)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			log := logrus.WithField("component", "validate")
			for _, spec := range cfg.Carousels {
				ec, err := config.EngineConfig(spec)
				if err != nil {
					return fmt.Errorf("carousel %q: %w", spec.Name, err)
				}
				engine, err := carousel.New(ec, len(spec.Slides), carousel.WithLogger(log))
				if err != nil {
					return fmt.Errorf("carousel %q: %w", spec.Name, err)
				}
				policy := engine.Config().Policy
				resolver := engine.Resolver()
				fmt.Fprintf(out, "%s (%s, %d slides)\n", spec.Name, policy, len(spec.Slides))
				fmt.Fprintf(out, "  breakpoints %s\n", describeThresholds(resolver.Thresholds()))
				for _, bp := range resolver.Tiers() {
					ipp := resolver.ItemsPerPage(bp)
					pager := paging.NewController(policy)
					pager.Recompute(len(spec.Slides), ipp)
					fmt.Fprintf(out, "  %-10s %d per page, %d positions\n", bp, ipp, pager.PageCount())
				}
			}
			fmt.Fprintf(out, "%s: ok\n", settings.Deck)
			return nil
		},
	}
}

func describeThresholds(t geometry.Thresholds) string {
	desc := fmt.Sprintf("medium >= %d, wide >= %d", t.Medium, t.Wide)
	if t.ExtraWide > 0 {
		desc += fmt.Sprintf(", extra-wide >= %d", t.ExtraWide)
	}
	return desc
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the sample deck to the deck path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			if _, err := os.Stat(settings.Deck); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", settings.Deck)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			svc := config.NewConfigService(settings.Deck)
			if err := svc.SaveToPath(config.DefaultConfig(), settings.Deck); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", settings.Deck)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing deck")
	return cmd
}
