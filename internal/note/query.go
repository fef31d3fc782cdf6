package note

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode determines display ordering. Pinned notes sort first in every mode.
type SortMode int

const (
	// SortUpdated orders by most recently updated.
	SortUpdated SortMode = iota
	// SortCreated orders by most recently created.
	SortCreated
	// SortAlpha orders by title, case-insensitive.
	SortAlpha
)

// String returns the display name for the sort mode.
func (m SortMode) String() string {
	switch m {
	case SortCreated:
		return "created"
	case SortAlpha:
		return "alpha"
	default:
		return "updated"
	}
}

// ParseSortMode maps a config value to a sort mode. Unknown values fall
// back to SortUpdated.
func ParseSortMode(s string) SortMode {
	switch s {
	case "created":
		return SortCreated
	case "alpha":
		return SortAlpha
	default:
		return SortUpdated
	}
}

// Next cycles to the following sort mode.
func (m SortMode) Next() SortMode {
	switch m {
	case SortUpdated:
		return SortCreated
	case SortCreated:
		return SortAlpha
	default:
		return SortUpdated
	}
}

// titleCollator provides locale-aware, case-insensitive title comparison.
// Collators are not safe for concurrent use; all querying happens on the
// single UI goroutine.
var titleCollator = collate.New(language.Und, collate.IgnoreCase)

// Matches reports whether the note matches the query: the trimmed query
// must be a case-insensitive substring of the title or the content. An
// empty query matches everything.
func Matches(n Note, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// Filter returns the notes matching the query, restricted to pinned notes
// when pinnedOnly is set. Input order is preserved and the input slice is
// never mutated.
func Filter(notes []Note, query string, pinnedOnly bool) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if pinnedOnly && !n.Pinned {
			continue
		}
		if !Matches(n, query) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// SortNotes returns a new slice ordered by the given mode, pinned notes
// first. The sort is stable: notes with equal keys keep their input order.
func SortNotes(notes []Note, mode SortMode) []Note {
	out := slices.Clone(notes)
	slices.SortStableFunc(out, func(a, b Note) int {
		if a.Pinned != b.Pinned {
			if a.Pinned {
				return -1
			}
			return 1
		}
		switch mode {
		case SortCreated:
			return cmpDesc(a.CreatedAt, b.CreatedAt)
		case SortAlpha:
			return titleCollator.CompareString(a.Title, b.Title)
		default:
			return cmpDesc(a.UpdatedAt, b.UpdatedAt)
		}
	})
	return out
}

// DeriveView computes the filtered and sorted view the UI renders. Pure:
// the underlying collection is never touched.
func DeriveView(notes []Note, query string, mode SortMode, pinnedOnly bool) []Note {
	return SortNotes(Filter(notes, query, pinnedOnly), mode)
}

func cmpDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
