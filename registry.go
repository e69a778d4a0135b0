package schema

import (
	"fmt"
	"sync"
)

// Registry maps tool/prompt/resource names to their compiled Schema, per
// spec.md §6: a dispatcher looks up the schema for an incoming call by
// name before validating its params. The zero value is ready to use.
//
// Registry is safe for concurrent use, the same guarantee the teacher
// gives its own package-level validator registries (registry.go), backed
// there by sync.Map rather than a mutex-guarded map.
type Registry struct {
	schemas sync.Map // name (string) -> *Schema
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds or replaces the schema for name.
func (r *Registry) Register(name string, s *Schema) {
	r.schemas.Store(name, s)
}

// Lookup returns the schema registered for name, if any.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	v, ok := r.schemas.Load(name)
	if !ok {
		return nil, false
	}
	return v.(*Schema), true
}

// Validate looks up name and validates input against it, returning an
// error if name is not registered.
func (r *Registry) Validate(name string, input any) (map[string]any, error) {
	s, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("schema: no schema registered for %q", name)
	}
	return s.Validate(input)
}
