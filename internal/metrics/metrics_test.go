package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsByLabel(t *testing.T) {
	m := New()

	m.ShardFetched(ResultOK)
	m.ShardFetched(ResultOK)
	m.ShardFetched(ResultError)
	m.Merged(5, 2)
	m.Merged(0, 1)
	m.FavoriteToggled(true)

	if got := testutil.ToFloat64(m.shardFetches.WithLabelValues(ResultOK)); got != 2 {
		t.Fatalf("ok fetches = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.shardFetches.WithLabelValues(ResultError)); got != 1 {
		t.Fatalf("error fetches = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.recordsMerged); got != 5 {
		t.Fatalf("records merged = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.duplicates); got != 3 {
		t.Fatalf("duplicates = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.favoriteToggles.WithLabelValues("on")); got != 1 {
		t.Fatalf("toggles on = %v, want 1", got)
	}
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.ShardFetched(ResultOK)
	m.Merged(1, 1)
	m.FavoriteToggled(false)
	if m.Registry() != nil {
		t.Fatalf("nil metrics returned a registry")
	}
}

func TestMetrics_HandlerExposesCounters(t *testing.T) {
	m := New()
	m.ShardFetched(ResultEmpty)

	srv := httptest.NewServer(m.Handler())
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), `barcart_shard_fetches_total{result="empty"} 1`) {
		t.Fatalf("metrics output missing shard counter:\n%s", body)
	}
}
