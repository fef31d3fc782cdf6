package note

import (
	"encoding/json"
	"fmt"

	"github.com/marcus/jot/internal/storage"
)

// DefaultKey is the storage key the note collection lives under.
const DefaultKey = "notes"

// Adapter persists the full note collection as one JSON array under a
// single key in a key-value store.
type Adapter struct {
	kv  storage.KV
	key string
}

// NewAdapter wraps the given store. An empty key uses DefaultKey.
func NewAdapter(kv storage.KV, key string) Adapter {
	if key == "" {
		key = DefaultKey
	}
	return Adapter{kv: kv, key: key}
}

// Load reads the collection. Absent, unreadable, or unparseable data all
// yield an empty collection; loading never fails.
func (a Adapter) Load() []Note {
	raw, ok, err := a.kv.Get(a.key)
	if err != nil || !ok {
		return nil
	}
	var notes []Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil
	}
	return notes
}

// Save serializes the whole collection and writes it in a single Set call.
// Write failures propagate to the caller.
func (a Adapter) Save(notes []Note) error {
	if notes == nil {
		notes = []Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	if err := a.kv.Set(a.key, string(data)); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}
	return nil
}
