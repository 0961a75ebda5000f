// Package variant provides a global registry of playable rule variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package variant

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-threes/internal/threes"
)

// Info contains metadata about a registered variant.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Definition describes a rule variant: its metadata plus the baseline
// configuration a new game of this variant starts from.
type Definition struct {
	Info
	// Defaults returns the baseline config for this variant. Callers may
	// override individual fields (seed, size, strategy) before New.
	Defaults func() threes.Config
}

var (
	defs = make(map[string]Definition)
	mu   sync.RWMutex
)

// Register adds a variant definition to the registry.
// Panics if a variant with the same ID is already registered.
func Register(d Definition) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := defs[d.ID]; exists {
		panic(fmt.Sprintf("variant: %q already registered", d.ID))
	}
	defs[d.ID] = d
}

// List returns information about all registered variants, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(defs))
	for _, d := range defs {
		result = append(result, d.Info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns the definition for a variant ID.
func Get(id string) (Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := defs[id]
	if !ok {
		return Definition{}, fmt.Errorf("variant: unknown variant %q", id)
	}
	return d, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := defs[id]
	return ok
}

// Create instantiates a new game of the given variant, applying overrides
// on top of the variant's baseline config before construction.
func Create(id string, override func(*threes.Config)) (*threes.Game, error) {
	d, err := Get(id)
	if err != nil {
		return nil, err
	}

	cfg := d.Defaults()
	if override != nil {
		override(&cfg)
	}
	return threes.New(cfg)
}
