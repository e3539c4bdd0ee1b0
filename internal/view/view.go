// Package view projects catalog records into display-ready view-models.
// Nothing here touches the terminal; the ui package styles the result.
package view

import (
	"fmt"
	"strings"

	"github.com/five82/barcart/internal/catalog"
)

// Favorite button labels.
const (
	LabelSaved = "♥ Saved"
	LabelSave  = "♥ Save to favorites"
)

// Card is one entry of the gallery list.
type Card struct {
	ID         string
	Name       string
	Badge      string
	Summary    string
	Image      string
	Alt        string
	Tags       []string
	IsFavorite bool
}

// List is the rendered gallery. Empty is set instead of Cards when there is
// nothing to show.
type List struct {
	Cards []Card
	Empty bool
}

// Detail is the expanded view of a single record.
type Detail struct {
	ID          string
	Title       string
	Image       string
	Alt         string
	Meta        []string
	Ingredients []string
	Method      []string // numbered, "1. step"
	IsFavorite  bool
	FavLabel    string
}

// RenderCard builds the card for one record.
func RenderCard(r catalog.Record, favs catalog.Membership) Card {
	tags := make([]string, 0, len(r.Tags)+1)
	tags = append(tags, r.Tags...)
	tags = append(tags, r.Strength)

	return Card{
		ID:         r.ID,
		Name:       r.Name,
		Badge:      r.Category,
		Summary:    r.Summary,
		Image:      r.Image(),
		Alt:        r.Name + " cocktail",
		Tags:       tags,
		IsFavorite: isFavorite(favs, r.ID),
	}
}

// RenderList builds cards in record order.
func RenderList(records []catalog.Record, favs catalog.Membership) List {
	if len(records) == 0 {
		return List{Empty: true}
	}
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, RenderCard(r, favs))
	}
	return List{Cards: cards}
}

// RenderDetail builds the detail view for r.
func RenderDetail(r catalog.Record, favs catalog.Membership) Detail {
	var meta []string
	for _, m := range []string{r.Category, r.Glass, r.Garnish, r.Strength} {
		if m != "" {
			meta = append(meta, m)
		}
	}

	fav := isFavorite(favs, r.ID)
	return Detail{
		ID:          r.ID,
		Title:       r.Name,
		Image:       r.Image(),
		Alt:         r.Name + " cocktail photo",
		Meta:        meta,
		Ingredients: append([]string(nil), r.Ingredients...),
		Method:      numbered(r.Method),
		IsFavorite:  fav,
		FavLabel:    FavoriteLabel(fav),
	}
}

// FavoriteLabel returns the detail button text for the given membership.
func FavoriteLabel(on bool) string {
	if on {
		return LabelSaved
	}
	return LabelSave
}

// RecipeText is the plain-text block copied to the clipboard.
func RecipeText(r catalog.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n\nIngredients:\n", r.Name, r.Category)
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "- %s\n", ing)
	}
	b.WriteString("\nMethod:\n")
	for _, step := range numbered(r.Method) {
		b.WriteString(step)
		b.WriteByte('\n')
	}
	return b.String()
}

func numbered(steps []string) []string {
	if len(steps) == 0 {
		return nil
	}
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	return out
}

func isFavorite(favs catalog.Membership, id string) bool {
	return favs != nil && favs.IsFavorite(id)
}
