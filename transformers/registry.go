package transformers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/devtin/schema-validator/contracts"
)

// Transformer is the capability set registered for one type name.
type Transformer struct {
	// Settings are default settings merged under the explicit settings of
	// every leaf resolving to this type.
	Settings map[string]any

	// Loaders is an ordered chain of type names whose stages run on the
	// value before this type's own stages. A loader failure short-circuits
	// the field with that loader's error.
	Loaders []string

	// Cast performs lenient input coercion. Optional.
	Cast contracts.Hook

	// Validate checks the cast value without transforming it by contract,
	// though the hook signature allows it. Optional.
	Validate contracts.Hook

	// Parse performs the final coercion and returns the sanitized value.
	// Required.
	Parse contracts.Hook
}

// Registry maps type names to transformers. It is read-mostly: fully
// populated before parsing starts, looked up on every leaf construction and
// parse, never shrunk during normal operation.
type Registry struct {
	entries map[string]*Transformer
	mu      sync.RWMutex
}

// NewRegistry creates an empty transformer registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Transformer),
	}
}

// Register registers a transformer under a type name. Registering an already
// known name replaces the previous entry.
func (r *Registry) Register(name string, t *Transformer) error {
	if name == "" {
		return fmt.Errorf("type name cannot be empty")
	}
	if t == nil {
		return fmt.Errorf("transformer cannot be nil")
	}
	if t.Parse == nil {
		return fmt.Errorf("transformer %s must declare a parse hook", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = t
	return nil
}

// Lookup retrieves the transformer registered for a type name.
func (r *Registry) Lookup(name string) (*Transformer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.entries[name]
	return t, exists
}

// IsRegistered checks whether a type name is known.
func (r *Registry) IsRegistered(name string) bool {
	_, exists := r.Lookup(name)
	return exists
}

// Names returns all registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry instance holding the built-in types.
var globalRegistry = NewRegistry()

// Default returns the global transformer registry.
func Default() *Registry {
	return globalRegistry
}

// Register registers a transformer with the global registry.
func Register(name string, t *Transformer) error {
	return globalRegistry.Register(name, t)
}

// MustRegister registers a transformer with the global registry and panics
// on error. Intended for init-time registration of custom types.
func MustRegister(name string, t *Transformer) {
	if err := Register(name, t); err != nil {
		panic(fmt.Sprintf("transformers: %v", err))
	}
}

// Lookup retrieves a transformer from the global registry.
func Lookup(name string) (*Transformer, bool) {
	return globalRegistry.Lookup(name)
}
