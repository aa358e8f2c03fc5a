package surrogate

import (
	"fmt"
	"reflect"
	"sync"
)

// Factory reconstructs a fresh error of template's exact concrete type,
// copying every semantically relevant field from the template and using the
// supplied cause as the new value's cause. Factories must be pure: they
// never mutate the template. The fresh value carries the stack of the
// goroutine invoking the factory.
type Factory func(template, cause error) error

// Registry maps exact error types to reconstruction factories. It is
// insert-only: entries are added during process initialization (built-ins,
// then any Installer hooks) and never removed. Lookups are safe concurrently
// with registrations of other types.
type Registry struct {
	mu        sync.RWMutex
	factories map[reflect.Type]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[reflect.Type]Factory)}
}

// Register binds a factory to template's exact concrete type. Registering
// the same type twice is a programming error and panics, like
// database/sql.Register: a silently raced or overwritten factory would make
// reconstruction nondeterministic. template may be a typed nil pointer.
func (r *Registry) Register(template error, factory Factory) {
	if factory == nil {
		panic("surrogate: Register with nil factory")
	}
	key := reflect.TypeOf(template)
	if key == nil {
		panic("surrogate: Register with untyped nil template")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[key]; dup {
		panic(fmt.Sprintf("surrogate: Register called twice for type %v", key))
	}
	r.factories[key] = factory
}

// Registered reports whether a factory is bound to template's exact type.
func (r *Registry) Registered(template error) bool {
	key := reflect.TypeOf(template)
	if key == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[key]
	return ok
}

// Types returns the registered types as a copy.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]reflect.Type, 0, len(r.factories))
	for t := range r.factories {
		out = append(out, t)
	}
	return out
}

// Reconstruct recreates template on the calling goroutine with the template
// itself as the cause, so the surrogate's chain still reaches the value
// carrying the original stack. See ReconstructCause.
func (r *Registry) Reconstruct(template error) error {
	return r.ReconstructCause(template, template)
}

// ReconstructCause recreates template on the calling goroutine with an
// explicit cause. Safe defaults keep information intact: a nil template
// yields nil, an unregistered type returns the template itself (original
// stack and all), and a factory returning nil falls back to the template.
func (r *Registry) ReconstructCause(template, cause error) error {
	if template == nil {
		return nil
	}
	key := reflect.TypeOf(template)
	r.mu.RLock()
	factory, ok := r.factories[key]
	r.mu.RUnlock()
	if !ok {
		return template
	}
	if out := factory(template, cause); out != nil {
		return out
	}
	return template
}

// Installer is a registration callback supplied by another package or
// plugin. Installers run during process initialization, before the registry
// serves reconstruction traffic.
type Installer func(*Registry)

// Install runs each installer against the registry.
func (r *Registry) Install(installers ...Installer) {
	for _, install := range installers {
		if install != nil {
			install(r)
		}
	}
}

// Default is the process-wide registry, pre-populated with factories for the
// kit's own error types. Third-party packages extend it from their init
// functions or via Install.
var Default = func() *Registry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
}()

// Register binds a factory in the default registry. See Registry.Register.
func Register(template error, factory Factory) {
	Default.Register(template, factory)
}

// Reconstruct recreates template via the default registry with the template
// as its own cause.
func Reconstruct(template error) error {
	return Default.Reconstruct(template)
}

// ReconstructCause recreates template via the default registry with an
// explicit cause.
func ReconstructCause(template, cause error) error {
	return Default.ReconstructCause(template, cause)
}
