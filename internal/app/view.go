package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/styles"
)

// View renders the whole application.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.renderHeader()

	listPane := m.renderListPane()
	editorPane := m.renderEditorPane()
	panes := lipgloss.JoinHorizontal(lipgloss.Top, listPane, editorPane)

	sections := []string{header, panes}
	if m.showFooter {
		sections = append(sections, m.renderFooter())
	}

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().Width(m.width).Height(m.height).MaxHeight(m.height).Render(out)
}

func (m Model) renderHeader() string {
	left := styles.BarTitle.Render(" jot ")

	sortChip := styles.BarChip.Render("sort:" + m.sortMode.String())
	pinChip := styles.BarChip.Render("pinned")
	if m.pinnedOnly {
		pinChip = styles.BarChipActive.Render("pinned")
	}

	count := styles.BarText.Render(fmt.Sprintf(" %d notes", m.store.Len()))

	var query string
	if m.query != "" && !m.searchMode {
		query = styles.BarText.Render(" /" + m.query)
	}

	bar := left + " " + sortChip + " " + pinChip + count + query
	return styles.Header.Width(m.width).Render(ansi.Truncate(bar, m.width, "…"))
}

func (m Model) renderListPane() string {
	w := m.listWidth()
	h := m.listHeight()

	var b strings.Builder
	if m.searchMode {
		b.WriteString(ansi.Truncate(m.searchInput.View(), w, "…"))
		b.WriteString("\n")
	}

	if len(m.view) == 0 {
		empty := "no notes - press n"
		if m.query != "" || m.pinnedOnly {
			empty = "no matches"
		}
		b.WriteString(styles.Muted.Render(empty))
	} else {
		end := min(m.scrollOff+h, len(m.view))
		for i := m.scrollOff; i < end; i++ {
			b.WriteString(m.renderListRow(m.view[i], i == m.cursor, w))
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	style := styles.PanelInactive
	if m.activePane == PaneList {
		style = styles.PanelActive
	}
	return style.Width(w + 2).Height(m.height - m.headerFooterHeight()).Render(b.String())
}

func (m Model) renderListRow(n note.Note, selected bool, width int) string {
	prefix := "  "
	if selected {
		prefix = styles.ListCursor.Render("> ")
	}

	pin := " "
	if n.Pinned {
		pin = styles.PinMarker.Render("*")
	}

	dot := " "
	if n.Color != nil {
		if c, ok := styles.NoteColor(*n.Color); ok {
			dot = lipgloss.NewStyle().Foreground(c).Render("#")
		}
	}

	title := n.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	when := relTime(n.UpdatedAt)

	avail := width - 2 - 1 - 1 - 2 - runewidth.StringWidth(when) - 1
	if avail < 1 {
		avail = 1
	}
	title = runewidth.Truncate(title, avail, "…")
	pad := strings.Repeat(" ", max(avail-runewidth.StringWidth(title), 0))

	titleStyle := styles.ListItemNormal
	if selected {
		titleStyle = styles.ListCursor
	}

	row := prefix + pin + dot + " " + titleStyle.Render(title) + pad + " " + styles.Muted.Render(when)
	return ansi.Truncate(row, width, "…")
}

func (m Model) renderEditorPane() string {
	w := m.editorWidth()
	h := m.height - m.headerFooterHeight()

	n := m.store.Selected()

	var body string
	switch {
	case n == nil:
		body = styles.Muted.Render("select or create a note")

	case m.activePane == PaneEditor:
		body = m.renderNoteMeta(n) + "\n" + m.editor.View()

	default:
		content := n.Content
		if m.markdownOn {
			content = m.md.Render(content, w)
		}
		lines := strings.Split(content, "\n")
		maxLines := max(h-4, 1)
		if len(lines) > maxLines {
			lines = append(lines[:maxLines], styles.Muted.Render("..."))
		}
		body = m.renderNoteMeta(n) + "\n" + strings.Join(lines, "\n")
	}

	style := styles.PanelInactive
	if m.activePane == PaneEditor {
		style = styles.PanelActive
	}
	return style.Width(w + 2).Height(h).Render(body)
}

// renderNoteMeta renders the title line and timestamps above the note body.
func (m Model) renderNoteMeta(n *note.Note) string {
	title := n.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	meta := fmt.Sprintf("created %s - updated %s", relTime(n.CreatedAt), relTime(n.UpdatedAt))
	if n.Color != nil {
		meta += " - " + *n.Color
	}
	if m.dirty {
		meta += " - unsaved"
	}
	return styles.Title.Render(ansi.Truncate(title, m.editorWidth(), "…")) + "\n" +
		styles.Muted.Render(meta) + "\n"
}

func (m Model) renderFooter() string {
	if m.confirmDelete {
		return styles.ToastError.Render("Delete note? (y/n)")
	}
	if m.toast != "" {
		style := styles.ToastSuccess
		if m.toastErr {
			style = styles.ToastError
		}
		return style.Render(m.toast)
	}

	var hints string
	switch {
	case m.searchMode:
		hints = "enter confirm · esc cancel"
	case m.activePane == PaneEditor:
		hints = "esc back · ctrl+s save"
	default:
		hints = "n new · d delete · p pin · c color · s sort · f pinned · / search · enter edit · q quit"
	}
	return styles.Footer.Width(m.width).Render(ansi.Truncate(" "+hints, m.width, "…"))
}

// headerFooterHeight is the vertical space used outside the panes.
func (m Model) headerFooterHeight() int {
	h := 1
	if m.showFooter {
		h++
	}
	return h
}

// relTime formats a ms-epoch timestamp relative to now.
func relTime(ms int64) string {
	t := time.UnixMilli(ms)
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
	return t.Format("Jan 2")
}
