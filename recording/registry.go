package recording

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/batch"
)

// TargetFactory creates a render target of the given size in pixels.
// Factories are registered via Register() and called by NewTarget().
type TargetFactory func(width, height int) batch.RenderTarget

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]TargetFactory)
)

func init() {
	Register("recording", func(width, height int) batch.RenderTarget {
		return NewRecorder(batch.ViewFromRect(batch.R(0, 0, float64(width), float64(height))))
	})
}

// Register registers a target factory with the given name.
// This function is typically called from init() in target packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("raster", func(w, h int) batch.RenderTarget {
//	        return NewPixmapTarget(w, h)
//	    })
//	}
//
// Register panics if factory is nil or a target with the same name is
// already registered.
func Register(name string, factory TargetFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a target factory from the registry.
// This is primarily useful for testing. If the name is not registered,
// this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// NewTarget creates a render target by name.
// Returns an error if no factory is registered under name.
func NewTarget(name string, width, height int) (batch.RenderTarget, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown target %q (forgotten import?)", name)
	}
	return factory(width, height), nil
}

// Targets returns a sorted list of registered target names.
func Targets() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a target with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
