package config

// Config is the root configuration structure.
type Config struct {
	Storage StorageConfig `json:"storage"`
	UI      UIConfig      `json:"ui"`
	Keymap  KeymapConfig  `json:"keymap"`
}

// StorageConfig selects where and how notes are persisted.
type StorageConfig struct {
	Backend string `json:"backend"` // "file", "sqlite", or "none"
	Dir     string `json:"dir"`     // data directory (supports ~ expansion)
	Key     string `json:"key"`     // storage key for the note collection
}

// UIConfig configures appearance and default view state.
type UIConfig struct {
	ShowFooter    bool   `json:"showFooter"`
	DefaultSort   string `json:"defaultSort"`   // "updated", "created", or "alpha"
	MarkdownStyle string `json:"markdownStyle"` // glamour style name for the preview
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Dir:     "~/.local/share/jot",
			Key:     "notes",
		},
		UI: UIConfig{
			ShowFooter:    true,
			DefaultSort:   "updated",
			MarkdownStyle: "dark",
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
	}
}

// Validate checks the configuration for errors, repairing what it can.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite", "none":
	default:
		c.Storage.Backend = "file"
	}
	switch c.UI.DefaultSort {
	case "updated", "created", "alpha":
	default:
		c.UI.DefaultSort = "updated"
	}
	if c.Storage.Key == "" {
		c.Storage.Key = "notes"
	}
	return nil
}
