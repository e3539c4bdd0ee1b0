package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/barcart/internal/catalog"
	"github.com/five82/barcart/internal/view"
)

// filter returns the catalog filter for the current state.
func (m Model) filter() catalog.Filter {
	return catalog.Filter{
		Category:      m.category,
		Query:         m.search.Value(),
		FavoritesOnly: m.favoritesOnly,
		Favorites:     m.membership(),
	}
}

// membership returns the favorite set, or nil when there is none.
func (m Model) membership() catalog.Membership {
	if m.favs == nil {
		return nil
	}
	return m.favs
}

// refresh requeries the catalog and keeps the selected record when it is
// still visible.
func (m *Model) refresh() {
	prev, hadPrev := m.selectedRecord()

	m.records = m.catalog.Query(m.filter())

	m.selected = 0
	if hadPrev {
		for i, r := range m.records {
			if r.ID == prev.ID {
				m.selected = i
				break
			}
		}
	}
	m.clampScroll()
}

func (m *Model) setCategory(idx int) {
	n := len(catalog.Categories)
	idx = ((idx % n) + n) % n
	if catalog.Categories[idx] == m.category {
		return
	}
	m.category = catalog.Categories[idx]
	m.refresh()
}

func (m Model) categoryIndex() int {
	for i, c := range catalog.Categories {
		if c == m.category {
			return i
		}
	}
	return 0
}

func (m Model) selectedRecord() (catalog.Record, bool) {
	if m.selected < 0 || m.selected >= len(m.records) {
		return catalog.Record{}, false
	}
	return m.records[m.selected], true
}

func (m *Model) moveSelection(delta int) {
	if len(m.records) == 0 {
		m.selected = 0
		return
	}
	m.selected = min(max(m.selected+delta, 0), len(m.records)-1)
	m.clampScroll()
}

// listHeight is the number of terminal rows available for cards.
func (m Model) listHeight() int {
	return max(m.height-headerLines-footerLines, 0)
}

// pageSize is the number of cards that fit on screen.
func (m Model) pageSize() int {
	return max(m.listHeight()/cardLines, 1)
}

func (m *Model) clampScroll() {
	if m.selected >= len(m.records) {
		m.selected = max(len(m.records)-1, 0)
	}
	page := m.pageSize()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+page {
		m.offset = m.selected - page + 1
	}
	m.offset = min(m.offset, max(len(m.records)-page, 0))
	m.offset = max(m.offset, 0)
}

// renderMain renders header, gallery and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderList renders the visible window of cards, padded to the list height.
func (m Model) renderList() string {
	height := m.listHeight()
	list := view.RenderList(m.records, m.membership())
	if list.Empty {
		return m.renderEmpty(height)
	}

	lines := make([]string, 0, height)
	end := min(len(list.Cards), m.offset+m.pageSize())
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderCard(list.Cards[i], i == m.selected)...)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}

// renderCard renders one card as cardLines lines.
func (m Model) renderCard(card view.Card, selected bool) []string {
	styles := m.theme.Styles()
	width := max(m.width-6, 10)

	marker := " "
	if selected {
		marker = styles.AccentText.Render("▌")
	}
	heart := styles.FaintText.Render("♡")
	if card.IsFavorite {
		heart = styles.DangerText.Render("♥")
	}
	nameStyle := styles.Text.Bold(true)
	if selected {
		nameStyle = nameStyle.Foreground(lipgloss.Color(m.theme.Accent))
	}

	name := nameStyle.Render(truncate(card.Name, width/2))
	badge := styles.CategoryStyle(card.Badge).Render(card.Badge)

	summary := card.Summary
	if summary == "" {
		summary = "No instructions."
	}

	var tags string
	if m.width >= LayoutCompactWidth {
		tags = "    " + styles.FaintText.Render(truncate(strings.Join(card.Tags, " · "), width))
	}

	return []string{
		marker + " " + heart + " " + name + "  " + badge,
		"    " + styles.MutedText.Render(truncate(summary, width)),
		tags,
		"",
	}
}

// renderEmpty renders the empty state centered in the list area.
func (m Model) renderEmpty(height int) string {
	styles := m.theme.Styles()
	text := styles.MutedText.Render("No drinks found.")
	if m.catalog.Len() == 0 && !m.progress.Done {
		text = styles.WarningText.Render("Loading drinks...")
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, text)
}

// renderFooter shows the search input while editing, then any toast, then
// key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	footer := styles.Footer.Width(m.width).MaxHeight(footerLines)

	if m.searching {
		return footer.Render(m.search.View())
	}
	if m.toast.text != "" {
		style := styles.SuccessText
		if m.toast.level == toastWarn {
			style = styles.WarningText.Bold(true)
		}
		return footer.Render(bg.Render(m.toast.text, style))
	}

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		hints = append(hints, bg.Render(h.Key, styles.AccentText)+bg.Space()+bg.Render(h.Desc, styles.MutedText))
	}
	return footer.Render(bg.Join(hints, "  "))
}
