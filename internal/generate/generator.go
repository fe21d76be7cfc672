// Package generate turns a feature selection into service scaffolds.
package generate

import (
	"fmt"
	"sort"
)

// Generator emits the scaffold files for a single feature.
type Generator interface {
	// FeatureID is the catalog feature this generator serves.
	FeatureID() string

	// Emit writes the feature's scaffold under outputDir and returns the
	// created file paths relative to outputDir.
	Emit(outputDir string) ([]string, error)
}

// Registry maps feature ids to their generators.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

// Register adds a generator. Registering the same feature twice is an error.
func (r *Registry) Register(g Generator) error {
	id := g.FeatureID()
	if _, exists := r.generators[id]; exists {
		return fmt.Errorf("generator for feature %q already registered", id)
	}
	r.generators[id] = g
	return nil
}

// Get returns the generator for a feature, if one is registered.
func (r *Registry) Get(featureID string) (Generator, bool) {
	g, ok := r.generators[featureID]
	return g, ok
}

// Names returns the registered feature ids in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for id := range r.generators {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// Default returns the registry of shipped generators.
// TODO: add generators for the remaining services; only inventory ships today.
func Default() *Registry {
	return &Registry{generators: map[string]Generator{
		"inventory": InventoryGenerator{},
	}}
}
