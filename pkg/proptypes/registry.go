package proptypes

import (
	"maps"
	"slices"
	"sync"
)

// TypeFunc validates a present value against d at path p.
// Container validators recurse through v.Check. A TypeFunc must return
// violations rather than panic; panics are recovered by the engine and
// reported as a single violation.
type TypeFunc func(v *Validator, value any, d *Descriptor, p Path) ValidationErrors

// Registry maps type tags to validator functions.
//
// Registration is a configuration-time operation: register custom types
// before handing the registry to validators, then optionally Freeze it.
type Registry struct {
	mu     sync.RWMutex
	types  map[Type]TypeFunc
	frozen bool
}

// NewRegistry returns a registry seeded with the built-in types.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[Type]TypeFunc, len(builtins))}
	maps.Copy(r.types, builtins)
	return r
}

// Register adds or replaces the validator for tag. The last registration wins.
func (r *Registry) Register(tag Type, fn TypeFunc) error {
	if tag == "" {
		return configErr("register", ErrEmptyType)
	}
	if fn == nil {
		return configErr("register", errorf(ErrNilTypeFunc, "type %q", tag))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errorf(ErrRegistryFrozen, "cannot register type %q", tag)
	}
	r.types[tag] = fn
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(tag Type, fn TypeFunc) {
	if err := r.Register(tag, fn); err != nil {
		panic(err)
	}
}

// Lookup returns the validator registered for tag.
func (r *Registry) Lookup(tag Type) (TypeFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.types[tag]
	return fn, ok
}

// Has reports whether a validator is registered for tag.
func (r *Registry) Has(tag Type) bool {
	_, ok := r.Lookup(tag)
	return ok
}

// Types lists registered tags in lexical order.
func (r *Registry) Types() []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.types))
}

// Freeze rejects further registrations.
func (r *Registry) Freeze() *Registry {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
	return r
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Clone returns an unfrozen copy that can be extended independently.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Registry{types: maps.Clone(r.types)}
}
