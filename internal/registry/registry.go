// Package registry provides a global registry of weapon presets.
// Built-in presets register themselves in init() functions; presets loaded
// from configuration are merged in by the CLI before a run starts.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/flyer/internal/config"
)

var (
	presets = make(map[string]config.WeaponPreset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Typically called from an init() function.
// Panics if a preset with the same name is already registered or the record is invalid.
func Register(p config.WeaponPreset) {
	mu.Lock()
	defer mu.Unlock()

	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("registry: invalid preset: %v", err))
	}
	if _, exists := presets[p.Name]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.Name))
	}

	presets[p.Name] = p
}

// Override adds or replaces a preset. Returns an error for invalid records.
func Override(p config.WeaponPreset) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("registry: invalid preset: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	presets[p.Name] = p
	return nil
}

// Lookup returns the preset registered under name.
// Returns an error if the name is not registered.
func Lookup(name string) (config.WeaponPreset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[name]
	if !ok {
		return config.WeaponPreset{}, fmt.Errorf("registry: unknown preset %q", name)
	}
	return p, nil
}

// Exists checks if a preset with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[name]
	return ok
}

// List returns all registered presets, sorted by name.
func List() []config.WeaponPreset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]config.WeaponPreset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// unregister removes a preset. Used by tests to keep the global map clean.
func unregister(name string) {
	mu.Lock()
	defer mu.Unlock()

	delete(presets, name)
}
