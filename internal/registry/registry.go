// Package registry indexes capsule definitions for template lookup.
package registry

import (
	"sort"

	"github.com/starford/dagaz/internal/models"
)

// Registry holds capsule definitions keyed by id. Registration happens
// once at startup; during compilation the registry is read-only and safe
// for concurrent readers without synchronization.
type Registry struct {
	defs map[string]models.CapsuleDefinition
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{defs: make(map[string]models.CapsuleDefinition)}
}

// Register indexes definitions by id. A definition with an id that was
// already registered replaces the prior entry (last registration wins).
func (r *Registry) Register(defs ...models.CapsuleDefinition) {
	for _, d := range defs {
		r.defs[d.ID] = d
	}
}

// Lookup returns the definition registered under id.
func (r *Registry) Lookup(id string) (models.CapsuleDefinition, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// Supports reports whether id is registered and declares a template for p.
func (r *Registry) Supports(id string, p models.Platform) bool {
	d, ok := r.defs[id]
	if !ok {
		return false
	}
	_, ok = d.Templates[p]
	return ok
}

// IDs returns every registered capsule id in sorted order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.defs))
	for id := range r.defs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}
