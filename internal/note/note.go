package note

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Note is a single user-authored text entry.
//
// CreatedAt and UpdatedAt are milliseconds since the Unix epoch and are
// persisted as JSON numbers. Color is a color token (see the styles
// package for the known tokens); nil means no color.
type Note struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
	Pinned    bool    `json:"pinned"`
	Color     *string `json:"color"`
}

// newID creates a new note ID with "nt-" prefix and 8 hex chars.
func newID() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return "nt-" + hex.EncodeToString(b), nil
}
