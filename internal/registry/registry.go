// Package registry tracks the artifact packages a job pulls in. Packages
// have structural identity: registering the same (role, name, version)
// triple twice collapses to one entry.
package registry

import (
	"fmt"
	"sort"

	"github.com/vk/jobwirego/internal/descriptor"
	"github.com/vk/jobwirego/internal/ident"
)

// Registry is an in-memory set of package triples. It is not safe for
// concurrent mutation; build it up front, then hand List to conversion.
type Registry struct {
	packages map[descriptor.Package]struct{}
}

// New creates an empty package registry.
func New() *Registry {
	return &Registry{packages: make(map[descriptor.Package]struct{})}
}

// Add records one package triple. Role and name must be well-formed
// identifiers and the version non-negative; duplicates are a no-op.
func (r *Registry) Add(p descriptor.Package) error {
	if !ident.Valid(p.Role) || !ident.Valid(p.Name) {
		return fmt.Errorf("malformed package name %s/%s", p.Role, p.Name)
	}
	if p.Version < 0 {
		return fmt.Errorf("package %s/%s has negative version %d", p.Role, p.Name, p.Version)
	}
	r.packages[p] = struct{}{}
	return nil
}

// List returns the registered packages ordered by role, name, version.
func (r *Registry) List() []descriptor.Package {
	out := make([]descriptor.Package, 0, len(r.packages))
	for p := range r.packages {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Role != out[j].Role {
			return out[i].Role < out[j].Role
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Version < out[j].Version
	})
	return out
}
