package cocktaildb

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/barcart/internal/catalog"
)

func TestNormalize_Defaults(t *testing.T) {
	rec := Normalize(Drink{ID: "1", Name: "Plain"})

	want := catalog.Record{
		ID:       "1",
		Name:     "Plain",
		Category: catalog.DefaultCategory,
		Strength: catalog.DefaultStrength,
		ImageURL: catalog.FallbackImageURL,
		Garnish:  catalog.DefaultGarnish,
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_FullDrink(t *testing.T) {
	var d Drink
	raw := `{
		"idDrink": "17222",
		"strDrink": "A1",
		"strCategory": "Cocktail",
		"strDrinkThumb": "https://img/a1.jpg",
		"strInstructions": "Pour all ingredients into a cocktail shaker.",
		"strTags": " Sour , ,Classic",
		"strGlass": "Cocktail glass",
		"strIngredient1": "Gin", "strMeasure1": "1 3/4 shot ",
		"strIngredient2": null, "strMeasure2": "1 dash",
		"strIngredient3": "Grenadine", "strMeasure3": null,
		"strIngredient4": " ", "strMeasure4": "2 oz",
		"strIngredient5": "Lime", "strMeasure5": "\n"
	}`
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	rec := Normalize(d)
	want := catalog.Record{
		ID:          "17222",
		Name:        "A1",
		Category:    "Cocktail",
		Strength:    "Varies",
		ImageURL:    "https://img/a1.jpg",
		Summary:     "Pour all ingredients into a cocktail shaker....",
		Ingredients: []string{"1 3/4 shot Gin", "Grenadine", "Lime"},
		Method:      []string{"Pour all ingredients into a cocktail shaker."},
		Tags:        []string{"Sour", "Classic"},
		Glass:       "Cocktail glass",
		Garnish:     "—",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_SummaryTruncatesRunes(t *testing.T) {
	long := strings.Repeat("é", 150)
	got := Normalize(Drink{ID: "1", Instructions: long}).Summary
	want := strings.Repeat("é", 100) + "..."
	if got != want {
		t.Fatalf("Summary = %q, want %q", got, want)
	}

	short := Normalize(Drink{ID: "2", Instructions: "Stir."}).Summary
	if short != "Stir...." {
		t.Fatalf("Summary = %q, want %q", short, "Stir....")
	}
}

func TestDrink_UnmarshalNumericID(t *testing.T) {
	var d Drink
	if err := json.Unmarshal([]byte(`{"idDrink": 11000, "strDrink": "Mojito"}`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.ID != "11000" {
		t.Fatalf("ID = %q, want 11000", d.ID)
	}
}

func TestNormalizeAll_Empty(t *testing.T) {
	if got := NormalizeAll(nil); got != nil {
		t.Fatalf("NormalizeAll(nil) = %v, want nil", got)
	}
}
