package render

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a Device. Backends register one from their init function.
type Factory func() (Device, error)

var (
	regMu     sync.RWMutex
	factories = make(map[string]Factory)
)

// defaultOrder is the preference order for Default when no backend is named.
// GPU backends come first; "null" is the headless fallback and always available.
var defaultOrder = []string{"gl", "null"}

// Register makes a backend available under the given name. Registering the
// same name twice replaces the earlier factory.
func Register(name string, f Factory) {
	regMu.Lock()
	defer regMu.Unlock()
	factories[name] = f
}

// Unregister removes a backend. Mainly for tests.
func Unregister(name string) {
	regMu.Lock()
	defer regMu.Unlock()
	delete(factories, name)
}

// Available returns the registered backend names, sorted.
func Available() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	regMu.RLock()
	defer regMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get creates the named backend. The device is not initialized; call Init
// once a context exists.
func Get(name string) (Device, error) {
	regMu.RLock()
	f, ok := factories[name]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("render: no backend registered as %q (available: %v)", name, Available())
	}
	return f()
}

// Default creates the preferred available backend: each name in the priority
// order first, then any other registered backend.
func Default() (Device, error) {
	for _, name := range defaultOrder {
		if IsRegistered(name) {
			return Get(name)
		}
	}
	names := Available()
	if len(names) == 0 {
		return nil, fmt.Errorf("render: no backends registered")
	}
	return Get(names[0])
}

// Select returns the named backend if name is non-empty, otherwise Default.
func Select(name string) (Device, error) {
	if name == "" {
		return Default()
	}
	return Get(name)
}
