package ui

// Registry maps names to actions. Each Manager owns its own registry.
type Registry struct {
	actions map[string]Action
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]Action),
	}
}

// Register inserts or replaces the action stored under name.
// Empty names are accepted.
func (r *Registry) Register(name string, a Action) {
	r.actions[name] = a
}

// Lookup returns the action stored under name
func (r *Registry) Lookup(name string) (Action, bool) {
	a, ok := r.actions[name]
	return a, ok
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.actions[name]
	return ok
}

func (r *Registry) Len() int {
	return len(r.actions)
}

// Reset removes every entry
func (r *Registry) Reset() {
	r.actions = make(map[string]Action)
}
