package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/carousel/internal/catalog"
	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/logging"
	"github.com/five82/carousel/internal/prefs"
	"github.com/five82/carousel/internal/state"
	"github.com/five82/carousel/internal/ui"
)

// Options configure the carousel application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/carousel/prefs.toml
	ItemsPath  string
	LogPath    string
	PollEvery  int // seconds; zero uses default
}

// loadConfig reads the config files with the command line paths layered on
// top.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.LoadWith(opts.ConfigPath, config.Overrides{
		ItemsFile: opts.ItemsPath,
		LogFile:   opts.LogPath,
	})
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Run boots the carousel TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = closer.Close() }()

	userPrefs := prefs.Load(opts.PrefsPath)

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	log.Info("starting",
		"items_file", cfg.ItemsFile,
		"locale", cfg.Locale,
		"theme", userPrefs.Theme,
		"poll", interval,
	)

	store := &state.Store{}
	load := newLoader(cfg.ItemsFile, cfg.Carousel.ItemLength)

	// Do initial refresh to populate store before UI starts
	_ = refresh(store, load, log)

	// Placeholders never change, so only a real file is watched.
	if cfg.ItemsFile != "" {
		StartPoller(ctx, store, load, interval, log)
	}

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		Logger:    log,
		PollTick:  ui.DefaultUIInterval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
	log.Info("stopped", "error", err)
	return err
}

// newLoader reads the items file, falling back to fallback placeholder items
// when no file is configured or the file holds no items.
func newLoader(path string, fallback int) LoadFunc {
	return func() ([]catalog.Item, error) {
		if path == "" {
			return catalog.Placeholder(fallback), nil
		}
		items, err := catalog.Load(path)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return catalog.Placeholder(fallback), nil
		}
		return items, nil
	}
}
