package app

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jot/internal/msg"
	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/state"
	"github.com/marcus/jot/internal/styles"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKey(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.updateEditorDimensions()
		m.ensureCursorVisible()
		return m, nil

	case msg.ToastMsg:
		m.toast = message.Message
		m.toastErr = message.IsError
		m.toastUntil = time.Now().Add(message.Duration)
		return m, nil

	case TickMsg:
		if m.toast != "" && time.Now().After(m.toastUntil) {
			m.toast = ""
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := key.String()

	// Delete confirmation intercepts everything.
	if m.confirmDelete {
		m.confirmDelete = false
		if k == "y" || k == "enter" {
			return m.deleteSelected()
		}
		return m, nil
	}

	if m.searchMode {
		return m.handleSearchKey(key)
	}

	if m.activePane == PaneEditor {
		return m.handleEditorKey(key)
	}

	return m.handleListKey(key)
}

func (m Model) handleListKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := key.String()

	// g g sequence for cursor-top
	if m.pendingG {
		m.pendingG = false
		if k == "g" {
			return m.runCommand("cursor-top")
		}
		// fall through to normal handling
	} else if k == "g" {
		m.pendingG = true
		return m, nil
	}

	if cmd, ok := m.km.Lookup("list", k); ok {
		return m.runCommand(cmd)
	}
	return m, nil
}

// runCommand executes a list-context command by id.
func (m Model) runCommand(cmd string) (tea.Model, tea.Cmd) {
	switch cmd {
	case "quit":
		return m, tea.Quit

	case "cursor-down":
		return m.moveCursor(1), nil

	case "cursor-up":
		return m.moveCursor(-1), nil

	case "cursor-top":
		return m.moveCursorTo(0), nil

	case "cursor-bottom":
		return m.moveCursorTo(len(m.view) - 1), nil

	case "new-note":
		return m.createNote()

	case "delete-note":
		if m.store.Selected() != nil {
			m.confirmDelete = true
		}
		return m, nil

	case "toggle-pin":
		id := m.store.SelectedID()
		if id == "" {
			return m, nil
		}
		if err := m.store.TogglePin(id); err != nil {
			return m, msg.ShowError("Save failed: "+err.Error(), 5*time.Second)
		}
		m.refreshView()
		return m, nil

	case "cycle-color":
		return m.cycleColor()

	case "clear-color":
		id := m.store.SelectedID()
		if id == "" {
			return m, nil
		}
		if err := m.store.SetColor(id, nil); err != nil {
			return m, msg.ShowError("Save failed: "+err.Error(), 5*time.Second)
		}
		m.refreshView()
		return m, nil

	case "cycle-sort":
		m.sortMode = m.sortMode.Next()
		m.refreshView()
		if err := state.SetSortMode(m.sortMode.String()); err != nil {
			m.logger.Warn("failed to save sort preference", "error", err)
		}
		return m, msg.ShowToast("Sort: "+m.sortMode.String(), 2*time.Second)

	case "toggle-pinned-filter":
		m.pinnedOnly = !m.pinnedOnly
		m.refreshView()
		if err := state.SetPinnedFilter(m.pinnedOnly); err != nil {
			m.logger.Warn("failed to save view state", "error", err)
		}
		return m, nil

	case "search":
		m.searchMode = true
		m.searchInput.SetValue(m.query)
		m.searchInput.Focus()
		return m, nil

	case "yank-content":
		return m, m.yank(false)

	case "yank-title":
		return m, m.yank(true)

	case "toggle-markdown":
		m.markdownOn = !m.markdownOn
		if err := state.SetMarkdownPreview(m.markdownOn); err != nil {
			m.logger.Warn("failed to save view state", "error", err)
		}
		return m, nil

	case "open-editor":
		return m.openEditor(), nil
	}

	return m, nil
}

func (m Model) handleEditorKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.km.Lookup("editor", key.String()); ok {
		switch cmd {
		case "quit":
			return m, tea.Quit
		case "back":
			var c tea.Cmd
			if m.dirty {
				c = m.saveEditor()
			}
			m.editor.Blur()
			m.activePane = PaneList
			return m, c
		case "save-note":
			return m, m.saveEditor()
		}
	}

	before := m.editor.Value()
	var c tea.Cmd
	m.editor, c = m.editor.Update(key)
	if m.editor.Value() != before {
		m.dirty = true
	}
	return m, c
}

func (m Model) handleSearchKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.km.Lookup("search", key.String()); ok {
		switch cmd {
		case "quit":
			return m, tea.Quit
		case "cancel":
			m.searchMode = false
			m.query = ""
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.refreshView()
			return m, nil
		case "confirm":
			m.searchMode = false
			m.searchInput.Blur()
			return m, nil
		case "cursor-down":
			return m.moveCursor(1), nil
		case "cursor-up":
			return m.moveCursor(-1), nil
		}
	}

	// Every other key edits the query; the view filters incrementally.
	var c tea.Cmd
	m.searchInput, c = m.searchInput.Update(key)
	m.query = m.searchInput.Value()
	m.refreshView()
	return m, c
}

// moveCursor moves the cursor within the view and selects the note under it.
func (m Model) moveCursor(delta int) Model {
	return m.moveCursorTo(m.cursor + delta)
}

func (m Model) moveCursorTo(idx int) Model {
	if len(m.view) == 0 {
		return m
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.view) {
		idx = len(m.view) - 1
	}
	m.cursor = idx
	m.store.Select(m.view[idx].ID)
	m.ensureCursorVisible()
	return m
}

// createNote makes a fresh note and drops straight into the editor.
func (m Model) createNote() (tea.Model, tea.Cmd) {
	n, err := m.store.Create()
	if err != nil {
		return m, msg.ShowError("Create failed: "+err.Error(), 5*time.Second)
	}
	// Creating while the pinned filter hides the new note would be
	// confusing; drop the filter so it is visible.
	m.pinnedOnly = false
	m.refreshView()
	m.logger.Debug("created note", "id", n.ID)
	return m.openEditor(), nil
}

// openEditor loads the selected note into the textarea and focuses it.
func (m Model) openEditor() Model {
	n := m.store.Selected()
	if n == nil {
		return m
	}
	m.editorID = n.ID
	m.editor.SetValue(n.Content)
	m.editor.CursorEnd()
	m.editor.Focus()
	m.updateEditorDimensions()
	m.dirty = false
	m.activePane = PaneEditor
	return m
}

// saveEditor writes the editor buffer back to the note: content plus the
// title derived from its first line, in a single update.
func (m *Model) saveEditor() tea.Cmd {
	if m.editorID == "" {
		return nil
	}
	content := m.editor.Value()
	title := titleFromContent(content)
	if err := m.store.Update(m.editorID, note.Patch{Title: &title, Content: &content}); err != nil {
		return msg.ShowError("Save failed: "+err.Error(), 5*time.Second)
	}
	m.dirty = false
	m.refreshView()
	return msg.ShowToast("Saved", time.Second)
}

// deleteSelected removes the selected note; the store reselects the
// closest neighbor.
func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	id := m.store.SelectedID()
	if id == "" {
		return m, nil
	}
	if err := m.store.Delete(id); err != nil {
		return m, msg.ShowError("Delete failed: "+err.Error(), 5*time.Second)
	}
	if m.editorID == id {
		m.editorID = ""
		m.editor.Blur()
		m.activePane = PaneList
	}
	m.refreshView()
	return m, msg.ShowToast("Deleted", 2*time.Second)
}

// cycleColor advances the selected note's color tag through the palette.
func (m Model) cycleColor() (tea.Model, tea.Cmd) {
	n := m.store.Selected()
	if n == nil {
		return m, nil
	}
	order := styles.NoteColorOrder
	next := order[0]
	if n.Color != nil {
		for i, token := range order {
			if token == *n.Color && i+1 < len(order) {
				next = order[i+1]
				break
			}
		}
	}
	if err := m.store.SetColor(n.ID, &next); err != nil {
		return m, msg.ShowError("Save failed: "+err.Error(), 5*time.Second)
	}
	m.refreshView()
	return m, nil
}

// yank copies the selected note's title or content to the system clipboard.
func (m Model) yank(titleOnly bool) tea.Cmd {
	n := m.store.Selected()
	if n == nil {
		return nil
	}
	text := n.Content
	what := "content"
	if titleOnly {
		text = n.Title
		what = "title"
	}
	if err := clipboard.WriteAll(text); err != nil {
		return msg.ShowError("Copy failed: "+err.Error(), 2*time.Second)
	}
	return msg.ShowToast("Copied note "+what, 2*time.Second)
}

// titleFromContent derives the title from the first line of the content.
func titleFromContent(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	line = strings.TrimSpace(line)
	if len([]rune(line)) > maxTitleLength {
		line = string([]rune(line)[:maxTitleLength])
	}
	return line
}
