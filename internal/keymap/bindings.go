package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},

		// List context
		{Key: "q", Command: "quit", Context: "list"},
		{Key: "j", Command: "cursor-down", Context: "list"},
		{Key: "down", Command: "cursor-down", Context: "list"},
		{Key: "k", Command: "cursor-up", Context: "list"},
		{Key: "up", Command: "cursor-up", Context: "list"},
		{Key: "g g", Command: "cursor-top", Context: "list"},
		{Key: "G", Command: "cursor-bottom", Context: "list"},
		{Key: "n", Command: "new-note", Context: "list"},
		{Key: "d", Command: "delete-note", Context: "list"},
		{Key: "p", Command: "toggle-pin", Context: "list"},
		{Key: "c", Command: "cycle-color", Context: "list"},
		{Key: "C", Command: "clear-color", Context: "list"},
		{Key: "s", Command: "cycle-sort", Context: "list"},
		{Key: "f", Command: "toggle-pinned-filter", Context: "list"},
		{Key: "/", Command: "search", Context: "list"},
		{Key: "y", Command: "yank-content", Context: "list"},
		{Key: "Y", Command: "yank-title", Context: "list"},
		{Key: "v", Command: "toggle-markdown", Context: "list"},
		{Key: "enter", Command: "open-editor", Context: "list"},
		{Key: "tab", Command: "open-editor", Context: "list"},

		// Editor context (all other keys go to the textarea)
		{Key: "esc", Command: "back", Context: "editor"},
		{Key: "ctrl+s", Command: "save-note", Context: "editor"},

		// Search context
		{Key: "esc", Command: "cancel", Context: "search"},
		{Key: "enter", Command: "confirm", Context: "search"},
		{Key: "down", Command: "cursor-down", Context: "search"},
		{Key: "up", Command: "cursor-up", Context: "search"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
