package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/five82/barcart/internal/catalog"
	"github.com/five82/barcart/internal/view"
)

// SearchOptions narrow a headless search. Filters combine the same way the
// gallery does: category, then favorites, then text.
type SearchOptions struct {
	Query         string
	Category      string // matched case-insensitively against catalog.Categories
	FavoritesOnly bool
}

// Search loads every shard and writes the matching cards to w, or
// "No drinks found." when nothing matches.
func Search(ctx context.Context, opts Options, search SearchOptions, w io.Writer) error {
	category, err := canonicalCategory(search.Category)
	if err != nil {
		return err
	}

	d, err := open(opts)
	if err != nil {
		return err
	}
	defer d.close()

	if err := d.loader.FetchAll(ctx, d.cfg.PriorityShards, d.remainingShards(), nil); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	records := d.catalog.Query(catalog.Filter{
		Category:      category,
		Query:         search.Query,
		FavoritesOnly: search.FavoritesOnly,
		Favorites:     d.favorites,
	})
	return writeList(w, view.RenderList(records, d.favorites))
}

// ListFavorites writes the saved ids to w, one per line.
func ListFavorites(opts Options, w io.Writer) error {
	d, err := open(opts)
	if err != nil {
		return err
	}
	defer d.close()

	ids := d.favorites.IDs()
	if len(ids) == 0 {
		_, err := fmt.Fprintln(w, "No favorites saved.")
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}

// ToggleFavorite flips id in the saved set and reports the new state.
func ToggleFavorite(opts Options, id string, w io.Writer) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("favorite id is empty")
	}

	d, err := open(opts)
	if err != nil {
		return err
	}
	defer d.close()

	on, err := d.favorites.Toggle(id)
	if err != nil {
		return err
	}
	if on {
		_, err = fmt.Fprintf(w, "♥ saved %s\n", id)
	} else {
		_, err = fmt.Fprintf(w, "removed %s\n", id)
	}
	return err
}

// Categories writes the category filter names in display order.
func Categories(w io.Writer) error {
	for _, c := range catalog.Categories {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}

func canonicalCategory(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return catalog.CategoryAll, nil
	}
	for _, c := range catalog.Categories {
		if strings.EqualFold(c, name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}

func writeList(w io.Writer, list view.List) error {
	if list.Empty {
		_, err := fmt.Fprintln(w, "No drinks found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, card := range list.Cards {
		heart := " "
		if card.IsFavorite {
			heart = "♥"
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\n", heart, card.ID, card.Name, card.Badge, card.Summary)
	}
	return tw.Flush()
}
