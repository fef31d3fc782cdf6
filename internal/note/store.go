package note

import (
	"log/slog"
	"time"
)

// Patch describes a partial update to a note. Nil fields are left
// unchanged. Applying a multi-field patch is a single mutation and a
// single persistence write.
type Patch struct {
	Title   *string
	Content *string
	Pinned  *bool
}

// Store owns the canonical in-memory note collection and its selection.
// New notes are prepended; display order is always re-derived through
// DeriveView. Every mutation persists the full collection through the
// adapter before returning. Mutations on unknown ids are silent no-ops:
// the UI may race a stale reference against a deletion.
//
// The store is single-goroutine state; all calls come from the UI event
// loop.
type Store struct {
	adapter Adapter
	notes   []Note
	sel     Selection
	now     func() time.Time
	logger  *slog.Logger
}

// NewStore loads the collection from the adapter. The first loaded note
// becomes selected; an empty or corrupt collection starts with no
// selection.
func NewStore(adapter Adapter, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		adapter: adapter,
		now:     time.Now,
		logger:  logger,
	}
	s.notes = adapter.Load()
	if len(s.notes) > 0 {
		s.sel.Select(s.notes[0].ID)
	}
	return s
}

// Notes returns the collection in insertion order. Callers must not
// mutate the returned slice.
func (s *Store) Notes() []Note { return s.notes }

// Len returns the number of notes.
func (s *Store) Len() int { return len(s.notes) }

// Get returns a copy of the note with the given id, or nil.
func (s *Store) Get(id string) *Note {
	if i := s.index(id); i >= 0 {
		n := s.notes[i]
		return &n
	}
	return nil
}

// SelectedID returns the id of the selected note, or "".
func (s *Store) SelectedID() string { return s.sel.ID() }

// Selected returns a copy of the selected note, or nil.
func (s *Store) Selected() *Note { return s.Get(s.sel.ID()) }

// Select sets the selection unconditionally.
func (s *Store) Select(id string) { s.sel.Select(id) }

// Create prepends a fresh empty note, selects it, and persists.
func (s *Store) Create() (*Note, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	now := s.now().UnixMilli()
	n := Note{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes = append([]Note{n}, s.notes...)
	s.sel.Select(n.ID)
	if err := s.save(); err != nil {
		return nil, err
	}
	s.logger.Debug("note created", "id", n.ID)
	return &n, nil
}

// Update applies the patch to the note with the given id, bumps UpdatedAt,
// and persists. ID and CreatedAt are never touched.
func (s *Store) Update(id string, p Patch) error {
	i := s.index(id)
	if i < 0 {
		return nil
	}
	n := &s.notes[i]
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Pinned != nil {
		n.Pinned = *p.Pinned
	}
	n.UpdatedAt = s.now().UnixMilli()
	return s.save()
}

// Delete removes the note with the given id and persists. When the deleted
// note was selected, selection moves to its closest neighbor: the note that
// shifted into the deleted slot, else the previous note, else none.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return nil
	}
	wasSelected := s.sel.ID() == id
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	if wasSelected {
		s.sel.Select(nextAfterDelete(s.notes, i))
	}
	if err := s.save(); err != nil {
		return err
	}
	s.logger.Debug("note deleted", "id", id)
	return nil
}

// TogglePin flips the pinned flag, bumps UpdatedAt, and persists.
func (s *Store) TogglePin(id string) error {
	i := s.index(id)
	if i < 0 {
		return nil
	}
	s.notes[i].Pinned = !s.notes[i].Pinned
	s.notes[i].UpdatedAt = s.now().UnixMilli()
	return s.save()
}

// SetColor sets (or clears, with nil) the color token, bumps UpdatedAt,
// and persists.
func (s *Store) SetColor(id string, color *string) error {
	i := s.index(id)
	if i < 0 {
		return nil
	}
	s.notes[i].Color = color
	s.notes[i].UpdatedAt = s.now().UnixMilli()
	return s.save()
}

func (s *Store) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) save() error {
	return s.adapter.Save(s.notes)
}
