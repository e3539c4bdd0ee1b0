package catalog

import "strings"

// CategoryAll is the filter sentinel that matches every record.
const CategoryAll = "All"

// Defaults applied when the upstream entry leaves a field unset.
const (
	DefaultCategory  = "Cocktail"
	DefaultStrength  = "Varies"
	DefaultGarnish   = "—"
	FallbackImageURL = "https://via.placeholder.com/300x200?text=Cocktail"
)

// Categories lists the filter buttons in display order. Records may carry
// categories outside this list; those only match CategoryAll.
var Categories = []string{
	CategoryAll,
	"Cocktail",
	"Ordinary Drink",
	"Shot",
	"Punch / Party Drink",
	"Beer",
	"Soft Drink",
}

// Record is a normalized drink entry.
type Record struct {
	ID          string
	Name        string
	Category    string
	Strength    string
	ImageURL    string
	Summary     string
	Ingredients []string
	Method      []string
	Tags        []string
	Glass       string
	Garnish     string
}

// Image returns the record image, substituting the placeholder when unset.
func (r Record) Image() string {
	return SafeImage(r.ImageURL)
}

// SafeImage returns url unless it is blank, in which case the placeholder is used.
func SafeImage(url string) string {
	if strings.TrimSpace(url) == "" {
		return FallbackImageURL
	}
	return url
}

// Haystack is the lower-cased text searched by free-text queries.
func (r Record) Haystack() string {
	parts := make([]string, 0, 4+len(r.Ingredients))
	parts = append(parts, r.Name, r.Category, r.Summary, strings.Join(r.Tags, " "))
	parts = append(parts, r.Ingredients...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Clone returns a deep copy so callers can't alias catalog storage.
func (r Record) Clone() Record {
	r.Ingredients = cloneStrings(r.Ingredients)
	r.Method = cloneStrings(r.Method)
	r.Tags = cloneStrings(r.Tags)
	return r
}

// IsKnownCategory reports whether category has a filter button.
func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
