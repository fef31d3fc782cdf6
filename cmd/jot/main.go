package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jot/internal/app"
	"github.com/marcus/jot/internal/config"
	"github.com/marcus/jot/internal/keymap"
	"github.com/marcus/jot/internal/note"
	"github.com/marcus/jot/internal/state"
	"github.com/marcus/jot/internal/storage"
	"github.com/marcus/jot/internal/version"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	dataDir      = flag.String("data", "", "data directory (overrides config)")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("jot version %s\n", version.Resolve(Version))
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Storage.Dir = config.ExpandPath(*dataDir)
	}

	// View preferences are best-effort; a broken state file is not fatal.
	if err := state.Init(); err != nil {
		logger.Warn("failed to load view state", "error", err)
	}

	// Pick the storage backend
	kv, closeKV, err := openStorage(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer closeKV()

	store := note.NewStore(note.NewAdapter(kv, cfg.Storage.Key), logger)

	// Create keymap registry and apply user overrides
	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	for key, cmdID := range cfg.Keymap.Overrides {
		km.SetUserOverride(key, cmdID)
	}

	model := app.New(store, cfg, km, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// openStorage builds the key-value store the config names. The returned
// close func is a no-op for backends without a connection to release.
func openStorage(cfg *config.Config) (storage.KV, func(), error) {
	switch cfg.Storage.Backend {
	case "none":
		return storage.NullKV{}, func() {}, nil
	case "sqlite":
		kv, err := storage.OpenSQLiteKV(filepath.Join(cfg.Storage.Dir, "jot.db"))
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { kv.Close() }, nil
	default:
		return storage.NewFileKV(cfg.Storage.Dir), func() {}, nil
	}
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jot [options]\n\n")
		fmt.Fprintf(os.Stderr, "A local-first note-taking TUI.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
