package backend

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/ndview"
)

// Factory is a function that creates a new backend instance.
// Factories are registered via Register and called by New.
type Factory func() ndview.Backend

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers a backend factory with the given name. The
// built-in backends register themselves in init(), following the
// database/sql driver pattern:
//
//	func init() {
//	    backend.Register("svg", func() ndview.Backend {
//	        return NewSVG(DefaultWidth, DefaultHeight)
//	    })
//	}
//
// Register panics if factory is nil or a backend with the same name
// is already registered, so duplicate registrations are caught during
// program initialization rather than silently overwriting backends.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("backend: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("backend: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend from the registry. This is primarily
// useful for testing to clean up between tests. If the backend is not
// registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the sorted names of all registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// New creates a new backend instance by name. Returns an error if the
// backend is not registered.
func New(name string) (ndview.Backend, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("backend: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}
