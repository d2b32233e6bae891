package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/five82/vmgrid/internal/config"
	"github.com/five82/vmgrid/internal/inventory"
	"github.com/five82/vmgrid/internal/prefs"
	"github.com/five82/vmgrid/internal/state"
	"github.com/five82/vmgrid/internal/ui"
)

// Options configure the vmgrid application. Non-zero source fields override
// the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/vmgrid/prefs.toml
	DataFile   string
	APIBind    string
	DemoRows   int
	Demo       bool // ignore data_file and api_bind
}

// Run boots the vmgrid TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	provider, err := NewProvider(cfg)
	if err != nil {
		return fmt.Errorf("init inventory source: %w", err)
	}

	restore, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer restore()

	log.Printf("vmgrid starting, source %s", provider.Describe())

	retry := Retry{Every: cfg.RetryEvery, Attempts: cfg.MaxAttempts}
	uiOpts := ui.Options{
		Context: ctx,
		Load: func(ctx context.Context) (*state.Store, error) {
			return LoadStore(ctx, provider, retry)
		},
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// LoadConfig reads the config file and applies the command-line overrides.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load vmgrid config: %w", err)
	}

	if opts.Demo {
		cfg.DataFile = ""
		cfg.APIBind = ""
	}
	if df := strings.TrimSpace(opts.DataFile); df != "" {
		expanded, err := config.ExpandPath(df)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve data file: %w", err)
		}
		cfg.DataFile = expanded
	}
	if bind := strings.TrimSpace(opts.APIBind); bind != "" {
		cfg.APIBind = bind
	}
	if opts.DemoRows > 0 {
		cfg.DemoRows = opts.DemoRows
	}
	return cfg, nil
}

// NewProvider returns the row provider the config selects.
func NewProvider(cfg config.Config) (inventory.Provider, error) {
	switch cfg.Source() {
	case config.SourceFile:
		return inventory.FileSource{Path: cfg.DataFile}, nil
	case config.SourceAPI:
		client, err := inventory.NewClient(cfg.APIBind)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return inventory.DemoSource{Count: cfg.DemoRows}, nil
	}
}
