// Package config handles loading barcart's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/barcart/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. Apply BARCART_* environment overrides
//
// # Default Values
//
//   - API: https://www.thecocktaildb.com/api/json/v1/1/
//   - Shards: a through z, priority m, g, s
//   - Request timeout: 15 seconds
//   - Rate limit: none
//   - Store: file backend at ~/.local/share/barcart/store.toml
//     (store.db for the sqlite backend)
//   - Log file: ~/.local/state/barcart/barcart.log
//   - Metrics listener: disabled
//
// # TOML Format
//
//	api_url = "https://www.thecocktaildb.com/api/json/v1/1/"
//	shards = ["a", "b", "c"]
//	priority_shards = ["m", "g", "s"]
//	request_timeout_seconds = 15
//	requests_per_second = 0
//	store_backend = "file"
//	store_path = "~/.local/share/barcart/store.toml"
//	log_path = "~/.local/state/barcart/barcart.log"
//	metrics_addr = "127.0.0.1:9464"
//
// Every field is optional. Shard keys are lower-cased and deduplicated.
// request_timeout_seconds = 0 disables the timeout.
//
// # Environment
//
//   - BARCART_API_URL
//   - BARCART_STORE_BACKEND
//   - BARCART_STORE_PATH
//   - BARCART_METRICS_ADDR (set empty to disable)
//   - BARCART_LOG_PATH (set empty to disable logging)
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, invalid TOML, negative
// timeouts or rates, and unknown store backends are.
package config
