package cocktaildb

import (
	"strings"

	"github.com/five82/barcart/internal/catalog"
)

const summaryLimit = 100

// Normalize maps a raw API drink onto the canonical record shape.
func Normalize(d Drink) catalog.Record {
	category := d.Category
	if category == "" {
		category = catalog.DefaultCategory
	}

	var method []string
	if d.Instructions != "" {
		method = []string{d.Instructions}
	}

	return catalog.Record{
		ID:          d.ID,
		Name:        d.Name,
		Category:    category,
		Strength:    catalog.DefaultStrength,
		ImageURL:    catalog.SafeImage(d.Thumbnail),
		Summary:     summarize(d.Instructions),
		Ingredients: ingredients(d),
		Method:      method,
		Tags:        splitTags(d.Tags),
		Glass:       d.Glass,
		Garnish:     catalog.DefaultGarnish,
	}
}

// NormalizeAll maps every drink in order.
func NormalizeAll(drinks []Drink) []catalog.Record {
	if len(drinks) == 0 {
		return nil
	}
	out := make([]catalog.Record, 0, len(drinks))
	for _, d := range drinks {
		out = append(out, Normalize(d))
	}
	return out
}

func summarize(instructions string) string {
	if instructions == "" {
		return ""
	}
	runes := []rune(instructions)
	if len(runes) > summaryLimit {
		runes = runes[:summaryLimit]
	}
	return string(runes) + "..."
}

func ingredients(d Drink) []string {
	var items []string
	for i := 0; i < maxIngredients; i++ {
		name := strings.TrimSpace(d.Ingredients[i])
		if name == "" {
			continue
		}
		items = append(items, strings.TrimSpace(strings.TrimSpace(d.Measures[i])+" "+name))
	}
	return items
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
