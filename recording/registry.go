package recording

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

var (
	// ErrBackendNotFound is returned when no factory is registered under
	// the requested name.
	ErrBackendNotFound = errors.New("recording: unknown backend")

	// ErrBackendExists is returned when a name is registered twice.
	ErrBackendExists = errors.New("recording: backend already registered")

	// ErrNilFactory is returned when a nil factory is registered.
	ErrNilFactory = errors.New("recording: nil backend factory")
)

// BackendFactory creates a fresh backend for one playback.
type BackendFactory func() Backend

// Registry maps backend names to factories. It is safe for concurrent use.
// Most programs use the package-level functions, which operate on a shared
// registry filled from backend packages' init functions.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]BackendFactory)}
}

// Register adds factory under name.
func (r *Registry) Register(name string, factory BackendFactory) error {
	if factory == nil {
		return fmt.Errorf("%w: %q", ErrNilFactory, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[name]; dup {
		return fmt.Errorf("%w: %q", ErrBackendExists, name)
	}
	r.factories[name] = factory
	return nil
}

// Unregister removes name. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.factories, name)
	r.mu.Unlock()
}

// New creates a backend by name. The error hints at a missing blank
// import, which is the usual cause.
func (r *Registry) New(name string) (Backend, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrBackendNotFound, name)
	}
	return factory(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Len returns the number of registered backends.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// defaultRegistry backs the package-level functions.
var defaultRegistry = NewRegistry()

// Register adds a backend to the shared registry. Backend packages call it
// from init, in the manner of database/sql drivers:
//
//	func init() {
//	    recording.Register("raster", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
//
// Register panics on a nil factory or a duplicate name so that conflicts
// surface during program initialization.
func Register(name string, factory BackendFactory) {
	if err := defaultRegistry.Register(name, factory); err != nil {
		panic(err)
	}
}

// Unregister removes a backend from the shared registry.
func Unregister(name string) {
	defaultRegistry.Unregister(name)
}

// NewBackend creates a backend from the shared registry:
//
//	import _ "github.com/treeviewer/highlight/recording/backends/raster"
//
//	backend, err := recording.NewBackend("raster")
func NewBackend(name string) (Backend, error) {
	return defaultRegistry.New(name)
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the sorted names in the shared registry.
func Backends() []string {
	return defaultRegistry.Names()
}

// IsRegistered reports whether the shared registry knows name.
func IsRegistered(name string) bool {
	return defaultRegistry.Has(name)
}

// Count returns the number of backends in the shared registry.
func Count() int {
	return defaultRegistry.Len()
}
