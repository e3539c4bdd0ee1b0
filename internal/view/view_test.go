package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/barcart/internal/catalog"
)

type favSet map[string]bool

func (f favSet) IsFavorite(id string) bool { return f[id] }

func gimlet() catalog.Record {
	return catalog.Record{
		ID:          "1",
		Name:        "Gimlet",
		Category:    "Cocktail",
		Strength:    "Varies",
		Summary:     "Shake and strain....",
		Ingredients: []string{"2 oz Gin", "1 oz Lime"},
		Method:      []string{"Shake and strain."},
		Tags:        []string{"IBA"},
		Glass:       "Coupe",
		Garnish:     "—",
	}
}

func TestRecipeText_LiteralBlock(t *testing.T) {
	got := RecipeText(gimlet())
	want := "Gimlet (Cocktail)\n\nIngredients:\n- 2 oz Gin\n- 1 oz Lime\n\nMethod:\n1. Shake and strain.\n"
	if got != want {
		t.Fatalf("RecipeText = %q, want %q", got, want)
	}
}

func TestRenderList_EmptyState(t *testing.T) {
	got := RenderList(nil, nil)
	if !got.Empty || len(got.Cards) != 0 {
		t.Fatalf("RenderList(nil) = %+v, want empty state", got)
	}
}

func TestRenderList_CardFields(t *testing.T) {
	r := gimlet()
	r.ImageURL = ""

	got := RenderList([]catalog.Record{r}, favSet{"1": true})
	want := List{Cards: []Card{{
		ID:         "1",
		Name:       "Gimlet",
		Badge:      "Cocktail",
		Summary:    "Shake and strain....",
		Image:      catalog.FallbackImageURL,
		Alt:        "Gimlet cocktail",
		Tags:       []string{"IBA", "Varies"},
		IsFavorite: true,
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RenderList mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCard_DoesNotAliasTags(t *testing.T) {
	r := gimlet()
	r.Tags = make([]string, 1, 4)
	r.Tags[0] = "IBA"

	_ = RenderCard(r, nil)
	if len(r.Tags) != 1 || r.Tags[:2][1] != "" {
		t.Fatalf("RenderCard wrote into the record tag slice: %q", r.Tags[:2])
	}
}

func TestRenderDetail_MetaOmitsEmpty(t *testing.T) {
	r := gimlet()
	r.Glass = ""

	got := RenderDetail(r, favSet{})
	want := Detail{
		ID:          "1",
		Title:       "Gimlet",
		Image:       catalog.FallbackImageURL,
		Alt:         "Gimlet cocktail photo",
		Meta:        []string{"Cocktail", "—", "Varies"},
		Ingredients: []string{"2 oz Gin", "1 oz Lime"},
		Method:      []string{"1. Shake and strain."},
		FavLabel:    LabelSave,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RenderDetail mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDetail_FavoriteLabel(t *testing.T) {
	got := RenderDetail(gimlet(), favSet{"1": true})
	if !got.IsFavorite || got.FavLabel != LabelSaved {
		t.Fatalf("FavLabel = %q (fav %v), want %q", got.FavLabel, got.IsFavorite, LabelSaved)
	}
}
