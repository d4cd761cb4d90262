package defaults

import (
	"reflect"
	"sync"
)

// Factory constructs a substitute implementation for one contract type.
type Factory func() any

// Registry is a concurrency-safe table of per-type substitute factories. The
// type synthesizer populates it at startup; afterwards entries are read-only
// per key. Parallel tests may register and resolve factories for distinct
// types concurrently; only atomic registration and lookup per type is
// guaranteed.
type Registry struct {
	mu        sync.RWMutex
	factories map[reflect.Type]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[reflect.Type]Factory)}
}

// Register installs the factory for t, replacing any previous registration.
func (r *Registry) Register(t reflect.Type, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[t] = factory
}

// Lookup returns the factory registered for t.
func (r *Registry) Lookup(t reflect.Type) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[t]
	return factory, ok
}

// global is the process-wide registry shared by generated substitutes.
var global = NewRegistry()

// Register installs a factory in the process-wide registry.
func Register(t reflect.Type, factory Factory) {
	global.Register(t, factory)
}

// Default returns the process-wide registry.
func Default() *Registry {
	return global
}
