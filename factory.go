package pathkit

import (
	"fmt"
	"sync"
)

// BackendFactory is a function that creates a Backend from a config
type BackendFactory func(cfg *Config) (Backend, error)

var (
	backendFactories = make(map[Variant]BackendFactory)
	factoryMutex     sync.RWMutex
)

// RegisterBackend registers a backend factory for a path variant.
// Driver packages call this from their init functions; importing a
// driver is what makes its variant available.
func RegisterBackend(v Variant, factory BackendFactory) {
	factoryMutex.Lock()
	defer factoryMutex.Unlock()
	backendFactories[v] = factory
}

// CreateBackend creates a backend instance for a variant from config
func CreateBackend(v Variant, cfg *Config) (Backend, error) {
	factoryMutex.RLock()
	factory, exists := backendFactories[v]
	factoryMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("no backend registered for %s paths", v)
	}

	return factory(cfg)
}

// BackendFor returns the backend serving the path's variant
func BackendFor(p Path, cfg *Config) (Backend, error) {
	return CreateBackend(p.Variant(), cfg)
}
