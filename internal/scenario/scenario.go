// Package scenario provides a global registry of named starting layouts.
// Scenarios register themselves in init() functions, allowing the platform
// and CLI to discover and build them without hardcoded dependencies.
package scenario

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/railgrid/railgrid/internal/sim"
)

// BuildFunc populates a freshly reset world with rails and trains.
// The RNG is seeded by the platform for reproducible procedural layouts.
type BuildFunc func(w *sim.World, rng *rand.Rand)

// Info contains metadata about a registered scenario.
type Info struct {
	Name  string
	Title string
}

var (
	builders = make(map[string]BuildFunc)
	titles   = make(map[string]string)
	mu       sync.RWMutex
)

// Register adds a scenario to the registry. Typically called from init().
// Panics if a scenario with the same name is already registered.
func Register(name, title string, f BuildFunc) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := builders[name]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", name))
	}
	builders[name] = f
	titles[name] = title
}

// List returns information about all registered scenarios, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(builders))
	for name := range builders {
		result = append(result, Info{Name: name, Title: titles[name]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Exists checks if a scenario with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := builders[name]
	return ok
}

// Build resets the world and populates it from the named scenario.
func Build(name string, w *sim.World, rng *rand.Rand) error {
	mu.RLock()
	f, ok := builders[name]
	mu.RUnlock()

	if !ok {
		return fmt.Errorf("scenario: unknown scenario %q", name)
	}
	w.Reset()
	f(w, rng)
	return nil
}
