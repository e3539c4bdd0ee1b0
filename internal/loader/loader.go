package loader

import (
	"context"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/barcart/internal/catalog"
	"github.com/five82/barcart/internal/cocktaildb"
	"github.com/five82/barcart/internal/metrics"
)

// Phase identifies which part of the acquisition sequence a shard belongs to.
type Phase string

const (
	PhasePriority Phase = "priority"
	PhaseTail     Phase = "tail"
)

// Progress describes the catalog after one shard has been merged.
type Progress struct {
	Shard      string
	Phase      Phase
	Added      int
	Duplicates int
	Total      int // catalog size after the merge
	Loaded     int // shards finished so far
	Shards     int // shards in this run
	Err        error
	Done       bool
}

// Loader fetches shards and merges them into a catalog. It is the only
// writer of the catalog it was given.
type Loader struct {
	fetcher cocktaildb.ShardFetcher
	catalog *catalog.Catalog
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for shard failures.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMetrics records fetch outcomes and merge counts on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Loader) { l.metrics = m }
}

// New builds a Loader that merges into cat.
func New(fetcher cocktaildb.ShardFetcher, cat *catalog.Catalog, opts ...Option) *Loader {
	l := &Loader{
		fetcher: fetcher,
		catalog: cat,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FetchShard fetches one shard and never fails: errors are logged and the
// shard contributes no records.
func (l *Loader) FetchShard(ctx context.Context, key string) []catalog.Record {
	records, _ := l.fetchShard(ctx, key)
	return records
}

func (l *Loader) fetchShard(ctx context.Context, key string) ([]catalog.Record, error) {
	records, err := l.fetcher.FetchShard(ctx, key)
	switch {
	case err != nil && ctx.Err() != nil:
		l.logger.Debug("shard fetch cancelled", zap.String("shard", key), zap.Error(err))
		return nil, err
	case err != nil:
		l.metrics.ShardFetched(metrics.ResultError)
		l.logger.Warn("shard fetch failed", zap.String("shard", key), zap.Error(err))
		return nil, err
	case len(records) == 0:
		l.metrics.ShardFetched(metrics.ResultEmpty)
	default:
		l.metrics.ShardFetched(metrics.ResultOK)
	}
	return records, nil
}

type shardResult struct {
	key     string
	records []catalog.Record
	err     error
}

// FetchAll runs the acquisition sequence. Priority shards are fetched and
// merged one at a time, in order. Remaining shards are then fetched
// concurrently and merged in completion order by this goroutine alone.
// onShardLoaded, when non-nil, is called after every merge and never
// concurrently. FetchAll returns ctx.Err() if cancelled before every shard
// has reported.
func (l *Loader) FetchAll(ctx context.Context, priority, remaining []string, onShardLoaded func(Progress)) error {
	total := len(priority) + len(remaining)
	loaded := 0

	report := func(phase Phase, res shardResult) {
		merged := l.catalog.Merge(res.records)
		l.metrics.Merged(merged.Added, merged.Duplicates)
		loaded++
		if merged.Duplicates > 0 {
			l.logger.Debug("dropped duplicate records",
				zap.String("shard", res.key),
				zap.Int("duplicates", merged.Duplicates))
		}
		if onShardLoaded == nil {
			return
		}
		onShardLoaded(Progress{
			Shard:      res.key,
			Phase:      phase,
			Added:      merged.Added,
			Duplicates: merged.Duplicates,
			Total:      merged.Total,
			Loaded:     loaded,
			Shards:     total,
			Err:        res.err,
			Done:       loaded == total,
		})
	}

	for _, key := range priority {
		if err := ctx.Err(); err != nil {
			return err
		}
		records, err := l.fetchShard(ctx, key)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		report(PhasePriority, shardResult{key: key, records: records, err: err})
	}

	if len(remaining) == 0 {
		return ctx.Err()
	}

	results := make(chan shardResult, len(remaining))
	// Fetch errors travel in shardResult; the group only waits.
	var g errgroup.Group
	for _, key := range remaining {
		g.Go(func() error {
			records, err := l.fetchShard(ctx, key)
			results <- shardResult{key: key, records: records, err: err}
			return nil
		})
	}
	defer func() { _ = g.Wait() }()

	for range remaining {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-results:
			if err := ctx.Err(); err != nil {
				return err
			}
			report(PhaseTail, res)
		}
	}

	l.logger.Info("catalog loaded",
		zap.Int("shards", total),
		zap.Int("records", l.catalog.Len()))
	return nil
}

// RemainingShards returns all minus priority, keeping the order of all.
func RemainingShards(all, priority []string) []string {
	out := make([]string, 0, len(all))
	for _, key := range all {
		if !slices.Contains(priority, key) {
			out = append(out, key)
		}
	}
	return out
}
