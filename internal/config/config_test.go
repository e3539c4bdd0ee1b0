package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIURL, EnvStoreBackend, EnvStorePath, EnvMetricsAddr, EnvLogPath} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
	}
	if len(cfg.Shards) != 26 || cfg.Shards[0] != "a" || cfg.Shards[25] != "z" {
		t.Fatalf("Shards = %v, want a..z", cfg.Shards)
	}
	if diff := cmp.Diff([]string{"m", "g", "s"}, cfg.PriorityShards); diff != "" {
		t.Fatalf("PriorityShards mismatch (-want +got):\n%s", diff)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("RequestTimeout = %v, want 15s", cfg.RequestTimeout)
	}
	if cfg.StoreBackend != "file" {
		t.Fatalf("StoreBackend = %q, want file", cfg.StoreBackend)
	}
	wantStore, err := ExpandPath(defaultFileStorePath)
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if cfg.StorePath != wantStore {
		t.Fatalf("StorePath = %q, want %q", cfg.StorePath, wantStore)
	}
	if !strings.HasPrefix(cfg.LogPath, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", cfg.LogPath, home)
	}
	if cfg.MetricsAddr != "" {
		t.Fatalf("MetricsAddr = %q, want empty", cfg.MetricsAddr)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	path := writeConfig(t, `
api_url = "  http://127.0.0.1:9000/api/  "
shards = ["A", " b ", "", "a", "c"]
priority_shards = ["B"]
request_timeout_seconds = 0
requests_per_second = 2.5
store_backend = " SQLite "
store_path = "~/drinks.db"
log_path = "~/logs/barcart.log"
metrics_addr = " 127.0.0.1:9464 "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://127.0.0.1:9000/api/" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, cfg.Shards); diff != "" {
		t.Fatalf("Shards mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, cfg.PriorityShards); diff != "" {
		t.Fatalf("PriorityShards mismatch (-want +got):\n%s", diff)
	}
	if cfg.RequestTimeout != 0 {
		t.Fatalf("RequestTimeout = %v, want 0", cfg.RequestTimeout)
	}
	if cfg.RequestsPerSecond != 2.5 {
		t.Fatalf("RequestsPerSecond = %v, want 2.5", cfg.RequestsPerSecond)
	}
	if cfg.StoreBackend != "sqlite" {
		t.Fatalf("StoreBackend = %q, want sqlite", cfg.StoreBackend)
	}
	if cfg.StorePath != filepath.Join(home, "drinks.db") {
		t.Fatalf("StorePath = %q, want %q", cfg.StorePath, filepath.Join(home, "drinks.db"))
	}
	if cfg.LogPath != filepath.Join(home, "logs", "barcart.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath)
	}
	if cfg.MetricsAddr != "127.0.0.1:9464" {
		t.Fatalf("MetricsAddr = %q, want 127.0.0.1:9464", cfg.MetricsAddr)
	}
}

func TestLoad_PriorityShardsLimitedToShards(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	cases := []struct {
		name string
		body string
		want []string
	}{
		{"default_priority", `shards = ["a", "b", "g"]`, []string{"g"}},
		{"explicit_priority", "shards = [\"a\", \"b\"]\npriority_shards = [\"z\", \"b\", \"a\"]", []string{"b", "a"}},
		{"none_known", `shards = ["a", "b"]`, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tc.body))
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if diff := cmp.Diff(tc.want, cfg.PriorityShards); diff != "" {
				t.Fatalf("PriorityShards mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_SQLiteBackendDefaultsStorePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	cfg, err := Load(writeConfig(t, `store_backend = "sqlite"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasSuffix(cfg.StorePath, filepath.FromSlash("/barcart/store.db")) {
		t.Fatalf("StorePath = %q, want .../barcart/store.db", cfg.StorePath)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	path := writeConfig(t, `
api_url = "http://file.example/"
metrics_addr = ":9464"
`)
	t.Setenv(EnvAPIURL, "http://env.example/")
	t.Setenv(EnvStoreBackend, "sqlite")
	t.Setenv(EnvStorePath, "~/env.db")
	t.Setenv(EnvMetricsAddr, "")
	t.Setenv(EnvLogPath, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://env.example/" {
		t.Fatalf("APIURL = %q, want env value", cfg.APIURL)
	}
	if cfg.StoreBackend != "sqlite" || cfg.StorePath != filepath.Join(home, "env.db") {
		t.Fatalf("store = %s %q, want sqlite ~/env.db", cfg.StoreBackend, cfg.StorePath)
	}
	if cfg.MetricsAddr != "" {
		t.Fatalf("MetricsAddr = %q, want env to disable it", cfg.MetricsAddr)
	}
	if cfg.LogPath != "" {
		t.Fatalf("LogPath = %q, want env to disable it", cfg.LogPath)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, `api_url = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown backend", `store_backend = "redis"`, "store_backend"},
		{"negative timeout", `request_timeout_seconds = -1`, "request_timeout_seconds"},
		{"negative rate", `requests_per_second = -3.0`, "requests_per_second"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %v, want it to mention %s", err, tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
