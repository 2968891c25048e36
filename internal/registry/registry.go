// Package registry provides a global registry of simulation variants.
// Variants register themselves in init() functions, allowing the CLI to
// discover named configurations without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gridworm/gridworm/internal/config"
)

// Variant is a named, preconfigured simulation.
type Variant struct {
	ID     string
	Title  string
	Config config.Config
}

// Info contains display metadata about a registered variant.
type Info struct {
	ID    string
	Title string
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from a preset package's init() function.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns information about all registered variants, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(variants))
	for _, v := range variants {
		result = append(result, Info{ID: v.ID, Title: v.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns a variant by its ID.
// Returns an error if the variant is not registered.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
