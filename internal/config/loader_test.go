package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	def := Default()
	if cfg.Storage.Backend != def.Storage.Backend {
		t.Errorf("backend = %q, want %q", cfg.Storage.Backend, def.Storage.Backend)
	}
	if cfg.Storage.Key != "notes" {
		t.Errorf("key = %q, want notes", cfg.Storage.Key)
	}
	if !cfg.UI.ShowFooter {
		t.Error("ShowFooter should default to true")
	}
	if cfg.UI.DefaultSort != "updated" {
		t.Errorf("defaultSort = %q, want updated", cfg.UI.DefaultSort)
	}
}

func TestLoadFrom_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  "storage": {"backend": "sqlite"},
  "ui": {"showFooter": false},
  "keymap": {"overrides": {"x": "delete-note"}}
}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("backend = %q, want sqlite", cfg.Storage.Backend)
	}
	// Unset fields keep their defaults.
	if cfg.Storage.Key != "notes" {
		t.Errorf("key = %q, want default notes", cfg.Storage.Key)
	}
	if cfg.UI.DefaultSort != "updated" {
		t.Errorf("defaultSort = %q, want default updated", cfg.UI.DefaultSort)
	}
	// An explicit false must override a true default.
	if cfg.UI.ShowFooter {
		t.Error("ShowFooter = true, want false from the file")
	}
	if cfg.Keymap.Overrides["x"] != "delete-note" {
		t.Errorf("override for x = %q, want delete-note", cfg.Keymap.Overrides["x"])
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte("{bad"), 0644)

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should fail on invalid JSON")
	}
}

func TestLoadFrom_RepairsUnknownValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"storage": {"backend": "redis"}, "ui": {"defaultSort": "size"}}`
	os.WriteFile(path, []byte(data), 0644)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("unknown backend should fall back to file, got %q", cfg.Storage.Backend)
	}
	if cfg.UI.DefaultSort != "updated" {
		t.Errorf("unknown sort should fall back to updated, got %q", cfg.UI.DefaultSort)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandPath("~/notes"); got != filepath.Join(home, "notes") {
		t.Errorf("ExpandPath(~/notes) = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandPath(/abs/path) = %q, want unchanged", got)
	}
	if got := ExpandPath("relative"); got != "relative" {
		t.Errorf("ExpandPath(relative) = %q, want unchanged", got)
	}
}
