package cocktaildb

import (
	"encoding/json"
	"strconv"
)

// maxIngredients is the number of strIngredientN/strMeasureN slots per drink.
const maxIngredients = 15

// SearchResponse mirrors /search.php. Drinks is nil when the API returns
// `"drinks": null` or omits the field.
type SearchResponse struct {
	Drinks []Drink `json:"drinks"`
}

// Drink is a raw API entry. Every field is nullable upstream; null decodes
// to the empty string.
type Drink struct {
	ID           string
	Name         string
	Category     string
	Thumbnail    string
	Instructions string
	Tags         string
	Glass        string
	Ingredients  [maxIngredients]string
	Measures     [maxIngredients]string
}

// UnmarshalJSON reads the flat strIngredientN/strMeasureN layout.
func (d *Drink) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = Drink{
		ID:           stringField(raw, "idDrink"),
		Name:         stringField(raw, "strDrink"),
		Category:     stringField(raw, "strCategory"),
		Thumbnail:    stringField(raw, "strDrinkThumb"),
		Instructions: stringField(raw, "strInstructions"),
		Tags:         stringField(raw, "strTags"),
		Glass:        stringField(raw, "strGlass"),
	}
	for i := 0; i < maxIngredients; i++ {
		n := strconv.Itoa(i + 1)
		d.Ingredients[i] = stringField(raw, "strIngredient"+n)
		d.Measures[i] = stringField(raw, "strMeasure"+n)
	}
	return nil
}

func stringField(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
