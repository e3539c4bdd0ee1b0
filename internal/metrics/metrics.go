// Package metrics exposes Prometheus counters for catalog loading and
// favorites. All methods are safe on a nil *Metrics.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Shard fetch outcomes.
const (
	ResultOK    = "ok"
	ResultEmpty = "empty"
	ResultError = "error"
)

// Metrics holds the counters for one application instance.
type Metrics struct {
	registry *prometheus.Registry

	shardFetches    *prometheus.CounterVec
	recordsMerged   prometheus.Counter
	duplicates      prometheus.Counter
	favoriteToggles *prometheus.CounterVec
}

// New registers the counters on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		shardFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "barcart_shard_fetches_total",
				Help: "Total number of shard fetches by result",
			},
			[]string{"result"},
		),
		recordsMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "barcart_records_merged_total",
			Help: "Total number of records added to the catalog",
		}),
		duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "barcart_duplicate_records_total",
			Help: "Total number of records dropped as duplicate ids",
		}),
		favoriteToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "barcart_favorite_toggles_total",
				Help: "Total number of favorite toggles by resulting state",
			},
			[]string{"state"},
		),
	}
	m.registry.MustRegister(m.shardFetches, m.recordsMerged, m.duplicates, m.favoriteToggles)
	return m
}

// ShardFetched counts one shard fetch outcome.
func (m *Metrics) ShardFetched(result string) {
	if m == nil {
		return
	}
	m.shardFetches.WithLabelValues(result).Inc()
}

// Merged counts records added and duplicates dropped by one merge.
func (m *Metrics) Merged(added, duplicates int) {
	if m == nil {
		return
	}
	m.recordsMerged.Add(float64(added))
	m.duplicates.Add(float64(duplicates))
}

// FavoriteToggled counts a toggle; on is the membership after the toggle.
func (m *Metrics) FavoriteToggled(on bool) {
	if m == nil {
		return
	}
	state := "off"
	if on {
		state = "on"
	}
	m.favoriteToggles.WithLabelValues(state).Inc()
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
