package ui

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/barcart/internal/catalog"
	"github.com/five82/barcart/internal/clipboard"
	"github.com/five82/barcart/internal/favorites"
	"github.com/five82/barcart/internal/kv"
	"github.com/five82/barcart/internal/loader"
	"github.com/five82/barcart/internal/view"
)

// ThemeKey is the kv key holding the saved theme name.
const ThemeKey = "theme"

// Options configures the UI.
type Options struct {
	Catalog   *catalog.Catalog
	Favorites *favorites.Store
	Prefs     kv.Store // theme persistence; nil disables saving
	Clipboard clipboard.Writer
	ThemeName string
	Logger    *zap.Logger
}

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastWarn
)

// toast is a transient footer message.
type toast struct {
	text  string
	level toastLevel
	seq   int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Dependencies
	catalog *catalog.Catalog
	favs    *favorites.Store
	prefs   kv.Store
	clip    clipboard.Writer
	logger  *zap.Logger
	keys    keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Filter state
	category      string
	favoritesOnly bool
	search        textinput.Model
	searching     bool

	// List state
	records  []catalog.Record
	selected int
	offset   int

	// Detail overlay
	showDetail     bool
	detailID       string
	detailViewport viewport.Model

	// Help overlay
	showHelp bool

	progress loader.Progress
	toast    toast
	toastSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.New()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = DefaultThemeName
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "name, ingredient or tag"
	search.CharLimit = 64

	m := Model{
		catalog:        cat,
		favs:           opts.Favorites,
		prefs:          opts.Prefs,
		clip:           clip,
		logger:         logger,
		keys:           DefaultKeyMap(),
		theme:          GetTheme(themeName),
		category:       catalog.CategoryAll,
		search:         search,
		detailViewport: viewport.New(0, 0),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = max(10, msg.Width-10)
		m.clampScroll()
		if m.showDetail {
			m.layoutDetail()
		}
		return m, nil

	case ShardLoadedMsg:
		m.progress = loader.Progress(msg)
		m.refresh()
		if m.showDetail {
			m.layoutDetail()
		}
		return m, nil

	case copyResultMsg:
		return m.handleCopyResult(msg)

	case toastExpiredMsg:
		if msg.seq == m.toast.seq {
			m.toast = toast{}
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showDetail {
		return m.renderDetail()
	}
	return m.renderMain()
}

// handleKey routes keyboard input to the active layer: help, search input,
// detail overlay, then the gallery.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.showDetail {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refresh()
		}

	case key.Matches(msg, m.keys.NextCategory):
		m.setCategory(m.categoryIndex() + 1)

	case key.Matches(msg, m.keys.PrevCategory):
		m.setCategory(m.categoryIndex() - 1)

	case key.Matches(msg, m.keys.PickCategory):
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(catalog.Categories) {
			m.setCategory(n - 1)
		}

	case key.Matches(msg, m.keys.FavoritesOnly):
		m.favoritesOnly = !m.favoritesOnly
		m.refresh()

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(-len(m.records))
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(len(m.records))
	case key.Matches(msg, m.keys.PageUp):
		m.moveSelection(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.moveSelection(m.pageSize())

	case key.Matches(msg, m.keys.Open):
		if rec, ok := m.selectedRecord(); ok {
			m.openDetail(rec.ID)
		}

	case key.Matches(msg, m.keys.Copy):
		if rec, ok := m.selectedRecord(); ok {
			return m, m.copyRecord(rec.ID)
		}

	case key.Matches(msg, m.keys.ToggleFavorite):
		if rec, ok := m.selectedRecord(); ok {
			return m.toggleFavorite(rec.ID)
		}
	}

	return m, nil
}

// handleMouse closes the detail overlay on a click outside it, scrolls with
// the wheel, and selects the clicked card.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}

	if m.showDetail {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.insideDetail(msg.X, msg.Y) {
			m.closeDetail()
			return m, nil
		}
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveSelection(-1)
	case tea.MouseButtonWheelDown:
		m.moveSelection(1)
	case tea.MouseButtonLeft:
		row := msg.Y - headerLines
		if row >= 0 && row < m.listHeight() {
			idx := m.offset + row/cardLines
			if idx < len(m.records) {
				m.selected = idx
			}
		}
	}
	return m, nil
}

// cycleTheme switches to the next theme and saves the choice.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefs == nil {
		return m, nil
	}
	if err := m.prefs.Set(ThemeKey, m.theme.Name); err != nil {
		m.logger.Warn("theme not saved", zap.String("theme", m.theme.Name), zap.Error(err))
		cmd := m.setToast("Theme not saved: "+err.Error(), toastWarn)
		return m, cmd
	}
	return m, nil
}

// toggleFavorite flips id in the favorite set. The list is requeried only
// in favorites-only mode, where the record must disappear.
func (m Model) toggleFavorite(id string) (tea.Model, tea.Cmd) {
	if m.favs == nil || id == "" {
		return m, nil
	}

	var cmd tea.Cmd
	if _, err := m.favs.Toggle(id); err != nil {
		m.logger.Warn("favorite not saved", zap.String("id", id), zap.Error(err))
		cmd = m.setToast("Favorite not saved: "+err.Error(), toastWarn)
	}
	if m.favoritesOnly {
		m.refresh()
	}
	if m.showDetail {
		m.layoutDetail()
	}
	return m, cmd
}

// copyRecord writes the recipe block for id to the clipboard off the
// update loop.
func (m Model) copyRecord(id string) tea.Cmd {
	rec, ok := m.catalog.Find(id)
	if !ok {
		return nil
	}
	clip := m.clip
	return func() tea.Msg {
		return copyResultMsg{name: rec.Name, err: clip.WriteText(view.RecipeText(rec))}
	}
}

func (m Model) handleCopyResult(msg copyResultMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case msg.err == nil:
		cmd = m.setToast("Recipe copied to clipboard", toastInfo)
	case errors.Is(msg.err, clipboard.ErrUnsupported):
		cmd = m.setToast("Clipboard unavailable", toastWarn)
	default:
		m.logger.Warn("copy failed", zap.String("drink", msg.name), zap.Error(msg.err))
		cmd = m.setToast("Copy failed: "+msg.err.Error(), toastWarn)
	}
	return m, cmd
}

// setToast shows text in the footer and schedules its removal.
func (m *Model) setToast(text string, level toastLevel) tea.Cmd {
	m.toastSeq++
	m.toast = toast{text: text, level: level, seq: m.toastSeq}
	seq := m.toastSeq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// Messages

// ShardLoadedMsg reports that the loader merged one shard into the catalog.
type ShardLoadedMsg loader.Progress

type copyResultMsg struct {
	name string
	err  error
}

type toastExpiredMsg struct {
	seq int
}

// NewProgram builds the Bubble Tea program for opts. The program stops when
// ctx is cancelled.
func NewProgram(ctx context.Context, opts Options) *tea.Program {
	return tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, p *tea.Program) error {
	_, err := p.Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
