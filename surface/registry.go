// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	transform "github.com/gogpu/gg-transform"
)

// TargetFactory creates a new DrawTarget of the given size.
// Implementations should validate the size and return descriptive errors.
type TargetFactory func(size transform.Size) (transform.DrawTarget, error)

// RegistryEntry represents a registered target backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: hardware displays
	//   - 50: simulated displays
	//   - 10: in-memory images
	Priority int

	// Factory creates target instances.
	Factory TargetFactory

	// Available reports if the backend is available on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered target backends.
//
// Display drivers register themselves so that programs can pick a target by
// name without importing the driver directly.
//
// Example registration:
//
//	func init() {
//	    surface.Register("ssd1306", 100, ssd1306Factory, ssd1306Present)
//	}
//
// Example usage:
//
//	t, err := surface.NewTargetByName("ssd1306", transform.Sz(128, 64))
//	// or auto-select best available:
//	t, err := surface.NewTarget(transform.Sz(128, 64))
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewTarget.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory TargetFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewTarget creates a target using the best available backend.
func NewTarget(size transform.Size) (transform.DrawTarget, error) {
	return globalRegistry.NewTarget(size)
}

// NewTargetByName creates a target using a specific named backend.
func NewTargetByName(name string, size transform.Size) (transform.DrawTarget, error) {
	return globalRegistry.NewTargetByName(name, size)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory TargetFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// NewTarget creates a target using the best available backend.
func (r *Registry) NewTarget(size transform.Size) (transform.DrawTarget, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	// Try each available backend in priority order
	var lastErr error
	for _, name := range available {
		t, err := r.NewTargetByName(name, size)
		if err == nil {
			return t, nil
		}
		transform.Logger().Warn("surface: backend failed, trying next", "backend", name, "err", err)
		lastErr = err
	}
	return nil, lastErr
}

// NewTargetByName creates a target using a specific backend.
func (r *Registry) NewTargetByName(name string, size transform.Size) (transform.DrawTarget, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.Width, size.Height)
	}

	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	t, err := entry.Factory(size)
	if err != nil {
		return nil, err
	}
	transform.Logger().Info("surface: target created", "backend", name, "size", size)
	return t, nil
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name.
// If onlyAvailable is true, filters to available backends only.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no target backends are
	// registered or available on the current system.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	// ErrInvalidSize is returned when a target is requested with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("surface: invalid target size")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// init registers the built-in ImageTarget backend.
func init() {
	Register("image", 10, func(size transform.Size) (transform.DrawTarget, error) {
		return NewImageTarget(size.Width, size.Height), nil
	}, nil)
}
