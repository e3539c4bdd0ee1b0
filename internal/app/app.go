package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/barcart/internal/catalog"
	"github.com/five82/barcart/internal/cocktaildb"
	"github.com/five82/barcart/internal/config"
	"github.com/five82/barcart/internal/favorites"
	"github.com/five82/barcart/internal/kv"
	"github.com/five82/barcart/internal/loader"
	"github.com/five82/barcart/internal/logging"
	"github.com/five82/barcart/internal/metrics"
	"github.com/five82/barcart/internal/ui"
)

// Options configure the barcart application.
type Options struct {
	ConfigPath string // empty uses ~/.config/barcart/config.toml
	Verbose    bool
}

// deps holds everything built from the config. Both the TUI and the
// headless commands start from it.
type deps struct {
	cfg       config.Config
	logger    *zap.Logger
	metrics   *metrics.Metrics
	store     kv.Store
	favorites *favorites.Store
	catalog   *catalog.Catalog
	loader    *loader.Loader
}

func open(opts Options) (*deps, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogPath, opts.Verbose)
	if err != nil {
		return nil, err
	}

	m := metrics.New()

	store, err := kv.Open(cfg.StoreBackend, cfg.StorePath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	favs, err := favorites.Load(store, favorites.WithLogger(logger), favorites.WithMetrics(m))
	if err != nil {
		_ = store.Close()
		_ = logger.Sync()
		return nil, err
	}

	client, err := cocktaildb.NewClient(cocktaildb.Options{
		BaseURL:           cfg.APIURL,
		Timeout:           cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})
	if err != nil {
		_ = store.Close()
		_ = logger.Sync()
		return nil, fmt.Errorf("init api client: %w", err)
	}

	cat := catalog.New()
	return &deps{
		cfg:       cfg,
		logger:    logger,
		metrics:   m,
		store:     store,
		favorites: favs,
		catalog:   cat,
		loader:    loader.New(client, cat, loader.WithLogger(logger), loader.WithMetrics(m)),
	}, nil
}

func (d *deps) close() {
	if err := d.store.Close(); err != nil {
		d.logger.Warn("close store", zap.Error(err))
	}
	_ = d.logger.Sync()
}

// savedTheme returns the persisted theme name, or empty for the default.
func (d *deps) savedTheme() string {
	name, ok, err := d.store.Get(ui.ThemeKey)
	if err != nil {
		d.logger.Warn("read saved theme", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return name
}

// remainingShards is every configured shard not fetched in the priority phase.
func (d *deps) remainingShards() []string {
	return loader.RemainingShards(d.cfg.Shards, d.cfg.PriorityShards)
}

// Run boots the barcart TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	d, err := open(opts)
	if err != nil {
		return err
	}
	defer d.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if addr := d.cfg.MetricsAddr; addr != "" {
		go func() {
			if err := d.metrics.Serve(ctx, addr); err != nil {
				d.logger.Warn("metrics listener stopped", zap.String("addr", addr), zap.Error(err))
			}
		}()
	}

	d.logger.Info("starting barcart",
		zap.String("api", d.cfg.APIURL),
		zap.String("store_backend", d.cfg.StoreBackend),
		zap.Int("shards", len(d.cfg.Shards)))

	program := ui.NewProgram(ctx, ui.Options{
		Catalog:   d.catalog,
		Favorites: d.favorites,
		Prefs:     d.store,
		ThemeName: d.savedTheme(),
		Logger:    d.logger,
	})

	// Start background loading; every merged shard is forwarded to the UI.
	done := StartLoader(ctx, d.loader, d.cfg.PriorityShards, d.remainingShards(), func(p loader.Progress) {
		program.Send(ui.ShardLoadedMsg(p))
	})

	err = ui.Run(ctx, program)
	cancel()
	<-done
	return err
}
