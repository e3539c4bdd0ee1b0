// Package loader runs the shard acquisition sequence that fills the catalog.
//
// A small priority subset is fetched sequentially so the first screen
// renders quickly. The tail is fanned out with one goroutine per shard and
// no concurrency limit; results flow back over a buffered channel to the
// single FetchAll goroutine, which merges and reports progress. A failed
// shard is logged and contributes nothing. It never aborts the sequence.
package loader
