package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/jot/internal/config"
	"github.com/marcus/jot/internal/keymap"
	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/state"
	"github.com/marcus/jot/internal/styles"
)

// Pane identifies the focused pane.
type Pane int

const (
	PaneList Pane = iota
	PaneEditor
)

const (
	minListWidth = 24
	// maxTitleLength is the maximum length for note titles derived from content.
	maxTitleLength = 80
)

// Model is the root bubbletea model: a note list on the left, an
// editor/preview pane on the right. All note state lives in the store;
// the model holds only the derived view and transient UI state.
type Model struct {
	store  *note.Store
	km     *keymap.Registry
	logger *slog.Logger

	width  int
	height int
	ready  bool

	// Derived view state, recomputed after every mutation.
	view       []note.Note
	query      string
	sortMode   note.SortMode
	pinnedOnly bool

	// List pane state
	activePane Pane
	cursor     int
	scrollOff  int
	pendingG   bool // g pressed, waiting for the second g

	// Search state
	searchMode  bool
	searchInput textinput.Model

	// Editor state
	editor   textarea.Model
	editorID string // id of the note loaded in the editor ("" = none)
	dirty    bool

	// Preview state
	markdownOn bool
	md         *markdownRenderer

	// Delete confirmation state
	confirmDelete bool

	// Toast state
	toast      string
	toastErr   bool
	toastUntil time.Time

	showFooter bool
}

// New creates the application model.
func New(store *note.Store, cfg *config.Config, km *keymap.Registry, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.Placeholder = "start typing..."
	ta.FocusedStyle = textarea.Style{
		Base:             lipgloss.NewStyle(),
		CursorLine:       lipgloss.NewStyle(),
		CursorLineNumber: styles.Muted,
		EndOfBuffer:      styles.Muted,
		LineNumber:       styles.Muted,
		Placeholder:      styles.Muted,
		Prompt:           lipgloss.NewStyle(),
		Text:             lipgloss.NewStyle(),
	}
	ta.BlurredStyle = ta.FocusedStyle
	ta.Blur()

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.CharLimit = 0

	sortMode := cfg.UI.DefaultSort
	if last := state.GetSortMode(); last != "" {
		sortMode = last
	}

	m := Model{
		store:       store,
		km:          km,
		logger:      logger,
		sortMode:    note.ParseSortMode(sortMode),
		searchInput: ti,
		editor:      ta,
		markdownOn:  state.GetMarkdownPreview(),
		pinnedOnly:  state.GetPinnedFilter(),
		md:          newMarkdownRenderer(cfg.UI.MarkdownStyle),
		showFooter:  cfg.UI.ShowFooter,
	}
	m.refreshView()
	return m
}

// Init starts the toast expiry ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// refreshView recomputes the derived view from the raw collection and the
// current query, sort mode, and pinned filter, then re-aligns the cursor
// with the selection.
func (m *Model) refreshView() {
	m.view = note.DeriveView(m.store.Notes(), m.query, m.sortMode, m.pinnedOnly)
	m.syncCursor()
}

// syncCursor points the cursor at the selected note when it is visible in
// the view; otherwise the cursor is clamped and selection is left alone.
func (m *Model) syncCursor() {
	id := m.store.SelectedID()
	for i := range m.view {
		if m.view[i].ID == id {
			m.cursor = i
			m.ensureCursorVisible()
			return
		}
	}
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// cursorNote returns the note under the cursor, or nil.
func (m *Model) cursorNote() *note.Note {
	if len(m.view) == 0 || m.cursor < 0 || m.cursor >= len(m.view) {
		return nil
	}
	n := m.view[m.cursor]
	return &n
}

func (m *Model) ensureCursorVisible() {
	h := m.listHeight()
	if h <= 0 {
		return
	}
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	}
	if m.cursor >= m.scrollOff+h {
		m.scrollOff = m.cursor - h + 1
	}
	if m.scrollOff < 0 {
		m.scrollOff = 0
	}
}

// listWidth returns the width of the list pane content area.
func (m *Model) listWidth() int {
	w := m.width / 3
	return max(w, minListWidth)
}

// listHeight returns the number of visible list rows.
func (m *Model) listHeight() int {
	// header + borders + footer
	h := m.height - 2 - 2
	if m.showFooter {
		h--
	}
	if m.searchMode {
		h--
	}
	return h
}

// editorWidth returns the width of the editor pane content area.
func (m *Model) editorWidth() int {
	// list pane + borders and padding on both panes
	return max(m.width-m.listWidth()-6, 20)
}

func (m *Model) updateEditorDimensions() {
	m.editor.SetWidth(m.editorWidth())
	m.editor.SetHeight(max(m.listHeight()-3, 3))
}

// TickMsg drives toast expiry.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
