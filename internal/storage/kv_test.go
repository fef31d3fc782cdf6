package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	if _, ok, err := kv.Get("notes"); ok || err != nil {
		t.Errorf("Get on empty store = ok %v, err %v, want absent", ok, err)
	}

	if err := kv.Set("notes", "[]"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	v, ok, err := kv.Get("notes")
	if err != nil || !ok || v != "[]" {
		t.Errorf("Get() = %q, %v, %v, want [], true, nil", v, ok, err)
	}

	kv.Set("notes", `[{"id":"nt-1"}]`)
	v, _, _ = kv.Get("notes")
	if v != `[{"id":"nt-1"}]` {
		t.Errorf("overwrite: Get() = %q", v)
	}
}

func TestNullKV(t *testing.T) {
	kv := NullKV{}

	if err := kv.Set("notes", "data"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if _, ok, _ := kv.Get("notes"); ok {
		t.Error("NullKV should report every key absent, even after a write")
	}
}

func TestFileKV(t *testing.T) {
	dir := t.TempDir()
	kv := NewFileKV(dir)

	if _, ok, err := kv.Get("notes"); ok || err != nil {
		t.Errorf("Get on fresh dir = ok %v, err %v, want absent", ok, err)
	}

	if err := kv.Set("notes", `["a"]`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	v, ok, err := kv.Get("notes")
	if err != nil || !ok || v != `["a"]` {
		t.Errorf("Get() = %q, %v, %v", v, ok, err)
	}

	if err := kv.Set("notes", `["b"]`); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	v, _, _ = kv.Get("notes")
	if v != `["b"]` {
		t.Errorf("after overwrite Get() = %q, want [\"b\"]", v)
	}
}

func TestFileKV_CreatesDirOnFirstWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	kv := NewFileKV(dir)

	if err := kv.Set("notes", "[]"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.json")); err != nil {
		t.Errorf("expected notes.json under %s: %v", dir, err)
	}
}

func TestFileKV_KeysAreIndependent(t *testing.T) {
	kv := NewFileKV(t.TempDir())

	kv.Set("notes", "a")
	kv.Set("scratch", "b")

	if v, _, _ := kv.Get("notes"); v != "a" {
		t.Errorf("notes = %q, want a", v)
	}
	if v, _, _ := kv.Get("scratch"); v != "b" {
		t.Errorf("scratch = %q, want b", v)
	}
}

func TestFileKV_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv := NewFileKV(dir)
	kv.Set("notes", "[]")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "notes.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("dir contents = %v, want [notes.json]", names)
	}
}
