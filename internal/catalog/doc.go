// Package catalog holds the in-memory drink collection and its filter query.
//
// # Overview
//
// Records arrive one shard at a time from the loader and are appended with
// Merge. The UI and the headless search command read them back with Query,
// which applies three predicates that must all hold:
//
//   - Category: the filter category is CategoryAll, or equals the record
//     category exactly (case-sensitive).
//   - Favorites only: when enabled, the record id must be a favorite.
//   - Free text: the trimmed, lower-cased query must be a substring of the
//     record haystack (name, category, summary, tags, ingredients).
//
// Results keep merge order. No sorting is applied.
//
// # Duplicate ids
//
// Shards are keyed by the first letter of the drink name, so an id should
// only ever arrive once. If it arrives again the first record wins and the
// duplicate is counted in MergeResult.Duplicates.
//
// # Concurrency
//
// A single loader goroutine writes; the UI reads. Catalog guards its slice
// with an RWMutex and every read returns cloned records, the same contract
// the snapshot store follows.
package catalog
