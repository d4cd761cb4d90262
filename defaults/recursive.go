package defaults

import (
	"reflect"
	"sync"
)

// errType identifies the error interface, which always defaults to nil
// rather than a substitute.
var errType = reflect.TypeOf((*error)(nil)).Elem()

// Recursive behaves like Empty for value-like and container-like types, but
// resolves interface-typed results into auto-generated substitutes obtained
// from a factory registry. Substitutes are cached per type so every
// subsequent access returns the identical instance, preserving reference
// identity. Interface types with no registered factory produce the absent
// value (nil) instead of failing.
type Recursive struct {
	registry *Registry

	mu    sync.Mutex
	cache map[reflect.Type]any
}

// NewRecursive creates a recursive provider backed by registry. A nil
// registry means the process-wide one.
func NewRecursive(registry *Registry) *Recursive {
	if registry == nil {
		registry = Default()
	}
	return &Recursive{
		registry: registry,
		cache:    make(map[reflect.Type]any),
	}
}

// Value implements Provider.
func (r *Recursive) Value(t reflect.Type) any {
	if t == nil || t.Kind() != reflect.Interface || t == errType {
		return Empty{}.Value(t)
	}

	r.mu.Lock()
	if v, ok := r.cache[t]; ok {
		r.mu.Unlock()
		return v
	}
	factory, ok := r.registry.Lookup(t)
	if !ok {
		r.mu.Unlock()
		return nil
	}
	// Reserve the cache slot before running the factory. A cyclic contract
	// that transitively resolves its own type observes the reservation and
	// gets the absent value instead of recursing without bound.
	r.cache[t] = nil
	r.mu.Unlock()

	v := factory()

	r.mu.Lock()
	r.cache[t] = v
	r.mu.Unlock()
	return v
}
