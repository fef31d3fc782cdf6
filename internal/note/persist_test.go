package note

import (
	"encoding/json"
	"testing"

	"github.com/marcus/jot/internal/storage"
)

func TestAdapter_LoadAbsent(t *testing.T) {
	a := NewAdapter(storage.NewMemoryKV(), "")
	if got := a.Load(); len(got) != 0 {
		t.Errorf("Load() on absent key = %d notes, want 0", len(got))
	}
}

func TestAdapter_LoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", "{{{"},
		{"non-array", `{"id":"nt-1"}`},
		{"wrong element types", `[{"id":123}]`},
		{"plain text", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemoryKV()
			kv.Set(DefaultKey, tt.raw)
			a := NewAdapter(kv, "")
			if got := a.Load(); len(got) != 0 {
				t.Errorf("Load() = %d notes, want 0 for corrupt data", len(got))
			}
		})
	}
}

func TestAdapter_SaveLoad(t *testing.T) {
	kv := storage.NewMemoryKV()
	a := NewAdapter(kv, "")

	blue := "blue"
	notes := []Note{
		{ID: "nt-1", Title: "one", Content: "first", CreatedAt: 100, UpdatedAt: 200, Pinned: true},
		{ID: "nt-2", Title: "two", CreatedAt: 150, UpdatedAt: 150, Color: &blue},
	}
	if err := a.Save(notes); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got := a.Load()
	if len(got) != 2 {
		t.Fatalf("Load() = %d notes, want 2", len(got))
	}
	if got[0].ID != "nt-1" || !got[0].Pinned || got[0].UpdatedAt != 200 {
		t.Errorf("note 0 = %+v", got[0])
	}
	if got[1].Color == nil || *got[1].Color != "blue" {
		t.Error("note 1 should keep its color token")
	}
}

func TestAdapter_SaveNilWritesEmptyArray(t *testing.T) {
	kv := storage.NewMemoryKV()
	a := NewAdapter(kv, "")

	if err := a.Save(nil); err != nil {
		t.Fatalf("Save(nil) failed: %v", err)
	}
	raw, ok, _ := kv.Get(DefaultKey)
	if !ok {
		t.Fatal("Save(nil) should still write the key")
	}
	if raw != "[]" {
		t.Errorf("persisted payload = %q, want []", raw)
	}
}

func TestAdapter_PersistedLayout(t *testing.T) {
	kv := storage.NewMemoryKV()
	a := NewAdapter(kv, "")

	a.Save([]Note{{ID: "nt-1", CreatedAt: 5, UpdatedAt: 7}})

	raw, _, _ := kv.Get(DefaultKey)
	var payload []map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("persisted payload is not a JSON array: %v", err)
	}
	n := payload[0]
	for _, field := range []string{"id", "title", "content", "createdAt", "updatedAt", "pinned", "color"} {
		if _, ok := n[field]; !ok {
			t.Errorf("persisted note missing field %q", field)
		}
	}
	if n["color"] != nil {
		t.Errorf("absent color should persist as null, got %v", n["color"])
	}
	if _, ok := n["createdAt"].(float64); !ok {
		t.Errorf("createdAt should be a JSON number, got %T", n["createdAt"])
	}
}

func TestAdapter_CustomKey(t *testing.T) {
	kv := storage.NewMemoryKV()
	a := NewAdapter(kv, "scratch")

	a.Save([]Note{{ID: "nt-1"}})
	if _, ok, _ := kv.Get("scratch"); !ok {
		t.Error("Save should write under the configured key")
	}
	if _, ok, _ := kv.Get(DefaultKey); ok {
		t.Error("Save should not touch the default key")
	}
}
