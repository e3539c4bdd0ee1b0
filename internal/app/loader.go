package app

import (
	"context"

	"github.com/five82/barcart/internal/loader"
)

// StartLoader launches the acquisition sequence in a background goroutine
// and returns immediately. The returned channel is closed once the
// goroutine has exited.
func StartLoader(ctx context.Context, l *loader.Loader, priority, remaining []string, onShardLoaded func(loader.Progress)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		// FetchAll only fails on cancellation; shard failures are logged
		// by the loader and reported through Progress.Err.
		_ = l.FetchAll(ctx, priority, remaining, onShardLoaded)
	}()
	return done
}
