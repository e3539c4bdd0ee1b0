package ui

import (
	"fmt"
	"strconv"

	"github.com/five82/barcart/internal/catalog"
)

// renderHeader renders the status line and the filter bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	line := styles.Header.Width(m.width).MaxHeight(1)

	favCount := 0
	if m.favs != nil {
		favCount = m.favs.Len()
	}

	parts := []string{
		bg.Render("barcart", styles.Logo),
		m.loadingStatus(styles, bg),
		bg.Render("Drinks:", styles.MutedText) + bg.Space() +
			bg.Render(strconv.Itoa(m.catalog.Len()), styles.Text),
		bg.Render("Showing:", styles.MutedText) + bg.Space() +
			bg.Render(strconv.Itoa(len(m.records)), styles.Text),
		bg.Render("♥", styles.DangerText) + bg.Space() +
			bg.Render(strconv.Itoa(favCount), styles.Text),
	}

	return line.Render(bg.Join(parts, "  ")) + "\n" + line.Render(m.renderFilterBar(styles, bg))
}

// loadingStatus describes shard progress.
func (m Model) loadingStatus(styles Styles, bg BgStyle) string {
	p := m.progress
	switch {
	case p.Shards == 0:
		return bg.Render("Loading...", styles.WarningText.Bold(true))
	case !p.Done:
		return bg.Render(fmt.Sprintf("Loading %d/%d", p.Loaded, p.Shards), styles.WarningText.Bold(true))
	default:
		return bg.Render(fmt.Sprintf("● %d/%d shards", p.Loaded, p.Shards), styles.SuccessText)
	}
}

// renderFilterBar renders category buttons, the favorites toggle and the
// active query.
func (m Model) renderFilterBar(styles Styles, bg BgStyle) string {
	parts := make([]string, 0, len(catalog.Categories)+2)
	for i, c := range catalog.Categories {
		label := fmt.Sprintf("%d %s", i+1, c)
		if c == m.category {
			parts = append(parts, styles.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, bg.Render(label, styles.MutedText))
		}
	}

	favStyle := styles.FaintText
	if m.favoritesOnly {
		favStyle = styles.DangerText
	}
	parts = append(parts, bg.Render("f ♥ "+ternary(m.favoritesOnly, "only", "all"), favStyle))

	if q := m.search.Value(); q != "" && !m.searching {
		parts = append(parts, bg.Render("/ "+truncate(q, 24), styles.AccentText))
	}
	return bg.Join(parts, "  ")
}
