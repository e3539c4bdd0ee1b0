// Package favorites keeps the set of favorite record ids and persists it
// to a kv.Store under a single key as a JSON array.
package favorites

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/five82/barcart/internal/kv"
	"github.com/five82/barcart/internal/metrics"
)

// Key is the kv key holding the favorite ids.
const Key = "favCocktails"

// Store is the favorite set. Ids are not validated against the catalog.
type Store struct {
	mu      sync.RWMutex
	kv      kv.Store
	ids     map[string]struct{}
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for decode warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics counts toggles on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// Load reads the persisted set. A value that does not decode as a JSON
// array of strings is logged and treated as empty.
func Load(store kv.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:     store,
		ids:    make(map[string]struct{}),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, ok, err := store.Get(Key)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return s, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("ignoring corrupt favorites value", zap.Error(err))
		return s, nil
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s, nil
}

// IsFavorite reports whether id is in the set.
func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// Toggle flips membership of id and persists the whole set. It returns the
// membership after the flip. When persisting fails the in-memory flip is
// kept and the error is returned.
func (s *Store) Toggle(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, on := s.ids[id]
	on = !on
	if on {
		s.ids[id] = struct{}{}
	} else {
		delete(s.ids, id)
	}
	s.metrics.FavoriteToggled(on)

	if err := s.persistLocked(); err != nil {
		return on, err
	}
	return on, nil
}

// IDs returns the favorite ids sorted.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *Store) sortedLocked() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s *Store) persistLocked() error {
	data, err := json.Marshal(s.sortedLocked())
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.kv.Set(Key, string(data)); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}
