// Package cocktaildb provides an HTTP client for the TheCocktailDB API.
//
// # Overview
//
// The catalog is sharded by the first letter of the drink name. One shard is
// one request:
//
//	GET {base}/search.php?f=m
//
// The response is {"drinks": [...]} where each entry is a flat object with
// numbered strIngredientN/strMeasureN slots (N = 1..15). A shard with no
// drinks returns {"drinks": null}, which decodes to an empty slice.
//
// # Architecture
//
//   - client.go: HTTP client, request handling, optional rate limit
//   - types.go: raw API payloads, tolerant of null fields
//   - normalize.go: raw drink to catalog.Record mapping
//
// # Normalization
//
//   - Category defaults to "Cocktail"; strength is always "Varies"
//   - Missing thumbnails use the placeholder image
//   - Summary is the first 100 runes of the instructions plus "..."
//   - Ingredients join measure and name, skipping empty slots
//   - Method is the instructions as a single step
//   - Tags split strTags on commas
//
// # Error Handling
//
// FetchShard returns wrapped errors for transport failures, HTTP status
// codes >= 400, and undecodable bodies. Isolating those failures per shard
// is the loader's job, not the client's.
package cocktaildb
