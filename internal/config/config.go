package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything barcart reads from config.toml and the
// environment.
type Config struct {
	APIURL            string
	Shards            []string
	PriorityShards    []string
	RequestTimeout    time.Duration // zero disables the timeout
	RequestsPerSecond float64       // zero means unlimited
	StoreBackend      string
	StorePath         string
	LogPath           string
	MetricsAddr       string // empty disables the metrics listener
}

const (
	defaultConfigPath      = "~/.config/barcart/config.toml"
	defaultAPIURL          = "https://www.thecocktaildb.com/api/json/v1/1/"
	defaultLogPath         = "~/.local/state/barcart/barcart.log"
	defaultFileStorePath   = "~/.local/share/barcart/store.toml"
	defaultSQLiteStorePath = "~/.local/share/barcart/store.db"
	defaultRequestTimeout  = 15 * time.Second

	backendFile   = "file"
	backendSQLite = "sqlite"
)

var defaultPriorityShards = []string{"m", "g", "s"}

// Environment overrides, applied after the file.
const (
	EnvAPIURL       = "BARCART_API_URL"
	EnvStoreBackend = "BARCART_STORE_BACKEND"
	EnvStorePath    = "BARCART_STORE_PATH"
	EnvMetricsAddr  = "BARCART_METRICS_ADDR"
	EnvLogPath      = "BARCART_LOG_PATH"
)

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// DefaultShards returns the letters a through z.
func DefaultShards() []string {
	shards := make([]string, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		shards = append(shards, string(c))
	}
	return shards
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		Shards:         DefaultShards(),
		PriorityShards: append([]string(nil), defaultPriorityShards...),
		RequestTimeout: defaultRequestTimeout,
		StoreBackend:   backendFile,
		StorePath:      mustExpand(defaultFileStorePath),
		LogPath:        mustExpand(defaultLogPath),
	}
}

// Load locates and parses config.toml, falling back to defaults when missing,
// then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		return finish(cfg, "")
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL                string   `toml:"api_url"`
		Shards                []string `toml:"shards"`
		PriorityShards        []string `toml:"priority_shards"`
		RequestTimeoutSeconds *int     `toml:"request_timeout_seconds"`
		RequestsPerSecond     float64  `toml:"requests_per_second"`
		StoreBackend          string   `toml:"store_backend"`
		StorePath             string   `toml:"store_path"`
		LogPath               string   `toml:"log_path"`
		MetricsAddr           string   `toml:"metrics_addr"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if shards := normalizeShards(raw.Shards); len(shards) > 0 {
		cfg.Shards = shards
	}
	if shards := normalizeShards(raw.PriorityShards); len(shards) > 0 {
		cfg.PriorityShards = shards
	}
	// Priority shards outside the configured set are never fetched.
	cfg.PriorityShards = keepKnownShards(cfg.PriorityShards, cfg.Shards)
	if raw.RequestTimeoutSeconds != nil {
		if *raw.RequestTimeoutSeconds < 0 {
			return Config{}, fmt.Errorf("request_timeout_seconds must be >= 0")
		}
		cfg.RequestTimeout = time.Duration(*raw.RequestTimeoutSeconds) * time.Second
	}
	if raw.RequestsPerSecond < 0 {
		return Config{}, fmt.Errorf("requests_per_second must be >= 0")
	}
	cfg.RequestsPerSecond = raw.RequestsPerSecond
	if v := strings.TrimSpace(raw.StoreBackend); v != "" {
		cfg.StoreBackend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)

	return finish(cfg, raw.StorePath)
}

// finish applies environment overrides, resolves the store path for the
// chosen backend and validates the result.
func finish(cfg Config, storePath string) (Config, error) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStoreBackend)); v != "" {
		cfg.StoreBackend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvStorePath)); v != "" {
		storePath = v
	}
	if v, ok := os.LookupEnv(EnvMetricsAddr); ok {
		cfg.MetricsAddr = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvLogPath); ok {
		cfg.LogPath = ""
		if v = strings.TrimSpace(v); v != "" {
			cfg.LogPath = mustExpand(v)
		}
	}

	switch cfg.StoreBackend {
	case backendFile, backendSQLite:
	default:
		return Config{}, fmt.Errorf("store_backend %q: want %q or %q", cfg.StoreBackend, backendFile, backendSQLite)
	}

	storePath = strings.TrimSpace(storePath)
	if storePath == "" {
		storePath = defaultFileStorePath
		if cfg.StoreBackend == backendSQLite {
			storePath = defaultSQLiteStorePath
		}
	}
	cfg.StorePath = mustExpand(storePath)
	return cfg, nil
}

func normalizeShards(values []string) []string {
	var out []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func keepKnownShards(priority, shards []string) []string {
	out := make([]string, 0, len(priority))
	for _, p := range priority {
		if slices.Contains(shards, p) {
			out = append(out, p)
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
