package kv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openBackends(t *testing.T) map[string]func() Store {
	t.Helper()
	dir := t.TempDir()
	return map[string]func() Store{
		BackendFile: func() Store {
			s, err := Open(BackendFile, filepath.Join(dir, "nested", "store.toml"))
			if err != nil {
				t.Fatalf("Open(file) returned error: %v", err)
			}
			return s
		},
		BackendSQLite: func() Store {
			s, err := Open(BackendSQLite, filepath.Join(dir, "nested", "store.db"))
			if err != nil {
				t.Fatalf("Open(sqlite) returned error: %v", err)
			}
			return s
		},
	}
}

func TestStore_SetGetAndReopen(t *testing.T) {
	for name, open := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			s := open()
			if _, ok, err := s.Get("favCocktails"); err != nil || ok {
				t.Fatalf("Get on empty store = ok %v, err %v; want missing", ok, err)
			}
			if err := s.Set("favCocktails", `["1","2"]`); err != nil {
				t.Fatalf("Set returned error: %v", err)
			}
			if err := s.Set("favCocktails", `["3"]`); err != nil {
				t.Fatalf("Set returned error: %v", err)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("Close returned error: %v", err)
			}

			reopened := open()
			t.Cleanup(func() { _ = reopened.Close() })
			got, ok, err := reopened.Get("favCocktails")
			if err != nil || !ok {
				t.Fatalf("Get after reopen = ok %v, err %v", ok, err)
			}
			if got != `["3"]` {
				t.Fatalf("Get = %q, want %q", got, `["3"]`)
			}
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("redis", filepath.Join(t.TempDir(), "x"))
	if err == nil || !strings.Contains(err.Error(), "unknown store backend") {
		t.Fatalf("Open(redis) error = %v, want unknown backend", err)
	}
}

func TestOpenFile_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := OpenFile(path); err == nil || !strings.Contains(err.Error(), "parse store") {
		t.Fatalf("OpenFile error = %v, want parse store error", err)
	}
}

func TestFileStore_SetFailureKeepsPreviousValue(t *testing.T) {
	dir := t.TempDir()
	parent := filepath.Join(dir, "state")

	s, err := OpenFile(filepath.Join(parent, "store.toml"))
	if err != nil {
		t.Fatalf("OpenFile returned error: %v", err)
	}

	// The parent directory is now a regular file, so writes must fail.
	if err := os.WriteFile(parent, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := s.Set("theme", "Nord"); err == nil {
		t.Fatalf("Set returned nil error, want write failure")
	}
	if _, ok, _ := s.Get("theme"); ok {
		t.Fatalf("failed Set left a value behind")
	}
}
