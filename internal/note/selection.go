package note

// Selection tracks the active note independently of any derived view. At
// most one note is selected; the zero value selects nothing.
type Selection struct {
	id string
}

// ID returns the selected note id, or "" when nothing is selected.
func (s *Selection) ID() string { return s.id }

// Select sets the selection unconditionally. The UI may select any note
// present in the raw collection, regardless of the current filter or sort.
// An empty id clears the selection.
func (s *Selection) Select(id string) { s.id = id }

// Clear drops the selection.
func (s *Selection) Clear() { s.id = "" }

// nextAfterDelete picks the id to select once the note at idx has been
// removed. notes is the collection after removal. Prefers the note that
// shifted into the deleted slot, falls back to the previous note, then to
// none.
func nextAfterDelete(notes []Note, idx int) string {
	if len(notes) == 0 {
		return ""
	}
	if idx < len(notes) {
		return notes[idx].ID
	}
	return notes[len(notes)-1].ID
}
