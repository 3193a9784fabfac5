// SPDX-License-Identifier: MPL-2.0

package deck

import (
	"sort"
	"strings"
)

// Registry is the top-level aggregate: every collection, keyed by name.
// Names are case-sensitive and unique. The zero value is not usable; call
// NewRegistry.
type Registry struct {
	collections map[string]*Collection
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{collections: make(map[string]*Collection)}
}

// Names returns all collection names in lexicographic order. Sorted output
// is a determinism guarantee for listings and menus, independent of map
// iteration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create adds a new empty collection. The name is trimmed; a blank name is
// rejected with ErrEmptyField and a taken name with ErrDuplicateName.
func (r *Registry) Create(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyField
	}
	if _, ok := r.collections[name]; ok {
		return ErrDuplicateName
	}
	r.collections[name] = &Collection{Name: name}
	return nil
}

// Delete removes a collection and every card in it. Confirmation of
// destructive intent is the caller's job.
func (r *Registry) Delete(name string) error {
	if _, ok := r.collections[name]; !ok {
		return ErrNotFound
	}
	delete(r.collections, name)
	return nil
}

// Collection returns the named collection, or ErrNotFound.
func (r *Registry) Collection(name string) (*Collection, error) {
	c, ok := r.collections[name]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Put inserts a collection under its name, replacing any existing entry.
// It is the store's hydration hook; interactive code goes through Create.
func (r *Registry) Put(c *Collection) {
	r.collections[c.Name] = c
}

// Len returns the number of collections.
func (r *Registry) Len() int { return len(r.collections) }

// Clone returns a deep copy. The write-through layer mutates a clone and
// swaps it in only after a successful save.
func (r *Registry) Clone() *Registry {
	out := NewRegistry()
	for name, c := range r.collections {
		out.collections[name] = &Collection{Name: name, Cards: c.Snapshot()}
	}
	return out
}

// Equal reports whether two registries hold the same collections with the
// same cards in the same order.
func (r *Registry) Equal(other *Registry) bool {
	if r.Len() != other.Len() {
		return false
	}
	for name, c := range r.collections {
		oc, ok := other.collections[name]
		if !ok || len(c.Cards) != len(oc.Cards) {
			return false
		}
		for i := range c.Cards {
			if c.Cards[i] != oc.Cards[i] {
				return false
			}
		}
	}
	return true
}
