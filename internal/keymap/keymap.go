// Package keymap resolves key chords to command identifiers per UI context,
// with user overrides from config taking precedence over defaults.
package keymap

// Binding maps a key chord to a command in a given context. The "global"
// context applies everywhere a more specific context has no binding.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry holds registered bindings and user overrides.
type Registry struct {
	bindings  map[string]map[string]string // context -> key -> command
	overrides map[string]string            // key -> command, applies in all contexts
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings:  make(map[string]map[string]string),
		overrides: make(map[string]string),
	}
}

// RegisterBinding adds a binding, replacing any existing default for the
// same context and key.
func (r *Registry) RegisterBinding(b Binding) {
	ctx := r.bindings[b.Context]
	if ctx == nil {
		ctx = make(map[string]string)
		r.bindings[b.Context] = ctx
	}
	ctx[b.Key] = b.Command
}

// SetUserOverride maps a key to a command ahead of all defaults.
func (r *Registry) SetUserOverride(key, command string) {
	r.overrides[key] = command
}

// Lookup resolves a key in a context: user overrides first, then the
// context's defaults, then the global context.
func (r *Registry) Lookup(context, key string) (string, bool) {
	if cmd, ok := r.overrides[key]; ok {
		return cmd, true
	}
	if cmd, ok := r.bindings[context][key]; ok {
		return cmd, true
	}
	if cmd, ok := r.bindings["global"][key]; ok {
		return cmd, true
	}
	return "", false
}
