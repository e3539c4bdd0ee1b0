package catalog

import "strings"

// Membership answers favorite lookups for the favorites-only predicate.
type Membership interface {
	IsFavorite(id string) bool
}

// Filter combines the category, favorites and free-text predicates.
// A zero Filter matches everything.
type Filter struct {
	Category      string
	Query         string
	FavoritesOnly bool
	Favorites     Membership
}

// NormalizedQuery returns the trimmed, lower-cased search text.
func (f Filter) NormalizedQuery() string {
	return strings.ToLower(strings.TrimSpace(f.Query))
}

// Matches reports whether r satisfies every active predicate.
func (f Filter) Matches(r Record) bool {
	return f.matches(r, f.NormalizedQuery())
}

func (f Filter) matches(r Record, query string) bool {
	if f.Category != "" && f.Category != CategoryAll && r.Category != f.Category {
		return false
	}
	if f.FavoritesOnly {
		if f.Favorites == nil || !f.Favorites.IsFavorite(r.ID) {
			return false
		}
	}
	if query != "" && !strings.Contains(r.Haystack(), query) {
		return false
	}
	return true
}
