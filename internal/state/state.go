// Package state persists view preferences that are not worth a config
// edit: toggles the user flips while working and expects to survive a
// restart. Unlike the note collection, losing this file costs nothing.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent view preferences.
type State struct {
	// MarkdownPreview renders the preview pane through glamour when true.
	MarkdownPreview *bool `json:"markdownPreview,omitempty"`

	// PinnedFilter restricts the list to pinned notes.
	PinnedFilter bool `json:"pinnedFilter,omitempty"`

	// SortMode is the last-used sort mode. Empty means the config default.
	SortMode string `json:"sortMode,omitempty"`
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "jot"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetMarkdownPreview reports whether the markdown preview is on.
// Defaults to true when no preference is saved.
func GetMarkdownPreview() bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil || current.MarkdownPreview == nil {
		return true
	}
	return *current.MarkdownPreview
}

// SetMarkdownPreview saves the markdown preview preference.
func SetMarkdownPreview(on bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.MarkdownPreview = &on
	mu.Unlock()
	return Save()
}

// GetSortMode returns the last-used sort mode, or "" when none is saved.
func GetSortMode() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.SortMode
}

// SetSortMode saves the sort mode preference.
func SetSortMode(mode string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.SortMode = mode
	mu.Unlock()
	return Save()
}

// GetPinnedFilter reports whether the pinned filter is on.
func GetPinnedFilter() bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return false
	}
	return current.PinnedFilter
}

// SetPinnedFilter saves the pinned filter preference.
func SetPinnedFilter(on bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.PinnedFilter = on
	mu.Unlock()
	return Save()
}
