// Package app provides the orchestration layer for barcart.
//
// # Overview
//
// This package wires together configuration, logging, metrics, the
// key-value store, the TheCocktailDB client, the catalog and the UI. It is
// the composition root where all dependencies are initialized and
// connected.
//
// # Components
//
//   - app.go: Run, which boots the TUI, and the shared dependency setup
//   - loader.go: StartLoader, the background acquisition goroutine
//   - headless.go: search, favorites and categories for the CLI
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read config.toml and env overrides
//	       ├─────> logging.New()        JSON log file
//	       ├─────> kv.Open()            File or SQLite store
//	       ├─────> favorites.Load()     Saved ids
//	       ├─────> metrics.Serve()      Optional /metrics listener
//	       ├─────> StartLoader()        Fetch shards in the background
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Background Loader:
//	┌─────────────────────────────────────────┐
//	│ StartLoader() goroutine                 │
//	│  ├─> priority shards, one at a time     │
//	│  ├─> remaining shards, concurrently     │
//	│  └─> catalog.Merge() per shard          │
//	│      └─> program.Send(ShardLoadedMsg)   │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// Fatal errors (returned from Run and the headless commands):
//   - Configuration file unreadable or invalid
//   - Store could not be opened
//   - Logger could not be created
//
// Recoverable errors (logged, loading continues):
//   - A shard request or decode fails
//   - The metrics listener stops
//   - The saved theme cannot be read
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("barcart failed: %v", err)
//	}
package app
