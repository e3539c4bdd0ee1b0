package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/barcart/internal/view"
)

// handleDetailKey processes keyboard input while the recipe overlay is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.closeDetail()
		return m, nil
	case key.Matches(msg, m.keys.ToggleFavorite):
		return m.toggleFavorite(m.detailID)
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyRecord(m.detailID)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m *Model) openDetail(id string) {
	m.showDetail = true
	m.detailID = id
	m.layoutDetail()
	m.detailViewport.GotoTop()
}

func (m *Model) closeDetail() {
	m.showDetail = false
	m.detailID = ""
}

// detailWidth is the outer width of the overlay box.
func (m Model) detailWidth() int {
	return max(min(detailMaxWidth, m.width-detailMargin*2), 24)
}

// layoutDetail sizes the viewport and fills it with the current record.
func (m *Model) layoutDetail() {
	rec, ok := m.catalog.Find(m.detailID)
	if !ok {
		m.closeDetail()
		return
	}
	d := view.RenderDetail(rec, m.membership())

	inner := m.detailWidth() - 4 // border and padding
	content := m.detailContent(d, inner)
	lines := strings.Count(content, "\n") + 1

	// Title, rule and action lines plus the border sit outside the viewport.
	maxHeight := max(m.height-detailMargin*2-5, 3)

	m.detailViewport.Width = inner
	m.detailViewport.Height = min(lines, maxHeight)
	m.detailViewport.SetContent(content)
}

// detailContent renders the scrollable body of the overlay.
func (m Model) detailContent(d view.Detail, width int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.MutedText.Render("Image "))
	b.WriteString(styles.AccentText.Render(truncate(d.Image, width-6)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("      " + d.Alt))
	b.WriteString("\n")
	if len(d.Meta) > 0 {
		b.WriteString(styles.Text.Render(strings.Join(d.Meta, " · ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Ingredients"))
	b.WriteString("\n")
	if len(d.Ingredients) == 0 {
		b.WriteString(styles.FaintText.Render("  none listed"))
		b.WriteString("\n")
	}
	for _, ing := range d.Ingredients {
		b.WriteString(styles.Text.Render("  • " + truncate(ing, width-4)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Method"))
	if len(d.Method) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("  no instructions"))
	}
	for _, step := range d.Method {
		for i, line := range wrap(step, width-5) {
			indent := "  "
			if i > 0 {
				indent = "     "
			}
			b.WriteString("\n")
			b.WriteString(styles.Text.Render(indent + line))
		}
	}
	return b.String()
}

// renderDetailBox renders the overlay box without placement.
func (m Model) renderDetailBox() string {
	styles := m.theme.Styles()
	inner := m.detailWidth() - 4

	rec, _ := m.catalog.Find(m.detailID)
	fav := m.favs != nil && m.favs.IsFavorite(m.detailID)

	favStyle := styles.MutedText
	if fav {
		favStyle = styles.DangerText
	}
	actions := []string{
		styles.AccentText.Render("s") + " " + favStyle.Render(view.FavoriteLabel(fav)),
		styles.AccentText.Render("c") + " " + styles.MutedText.Render("Copy"),
		styles.AccentText.Render("esc") + " " + styles.MutedText.Render("Close"),
	}

	scroll := ""
	if m.detailViewport.TotalLineCount() > m.detailViewport.Height {
		scroll = styles.FaintText.Render(fmt.Sprintf(" %3.f%%", m.detailViewport.ScrollPercent()*100))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Text.Bold(true).Render(truncate(rec.Name, inner-6))+scroll,
		styles.FaintText.Render(strings.Repeat("─", inner)),
		m.detailViewport.View(),
		"",
		strings.Join(actions, "   "),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(0, 1).
		Width(m.detailWidth() - 2).
		Render(body)
}

// renderDetail centers the overlay on screen.
func (m Model) renderDetail() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.renderDetailBox(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// insideDetail reports whether the cell (x, y) falls on the overlay box.
func (m Model) insideDetail(x, y int) bool {
	box := m.renderDetailBox()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	left := max(m.width-w, 0) / 2
	top := max(m.height-h, 0) / 2
	return x >= left && x < left+w && y >= top && y < top+h
}
