package generators

import (
	"fmt"

	"mockapi/src/domain"
)

// Registry is the declared dependency graph: entity -> parent entities.
type Registry struct {
	generators map[domain.EntityKey]Generator
	keys       []domain.EntityKey
}

func NewRegistry(gens ...Generator) (*Registry, error) {
	r := &Registry{generators: make(map[domain.EntityKey]Generator, len(gens))}
	for _, g := range gens {
		if _, exists := r.generators[g.Key()]; exists {
			return nil, fmt.Errorf("Registry.NewRegistry - duplicate generator for %s", g.Key())
		}
		r.generators[g.Key()] = g
		r.keys = append(r.keys, g.Key())
	}
	return r, nil
}

// DefaultRegistry wires the twelve published entities.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		New(domain.Users, nil, generateUsers),
		New(domain.PostCategories, nil, generatePostCategories),
		New(domain.ProductCategories, nil, generateProductCategories),
		New(domain.Posts, []domain.EntityKey{domain.Users, domain.PostCategories}, generatePosts),
		New(domain.Comments, []domain.EntityKey{domain.Posts}, generateComments),
		New(domain.Products, []domain.EntityKey{domain.ProductCategories}, generateProducts),
		New(domain.Carts, []domain.EntityKey{domain.Users, domain.Products}, generateCarts),
		New(domain.Orders, []domain.EntityKey{domain.Users, domain.Products}, generateOrders),
		New(domain.Payments, []domain.EntityKey{domain.Orders}, generatePayments),
		New(domain.Notes, []domain.EntityKey{domain.Users}, generateNotes),
		New(domain.Todos, []domain.EntityKey{domain.Users}, generateTodos),
		New(domain.Photos, nil, generatePhotos),
	)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Get(key domain.EntityKey) (Generator, bool) {
	g, ok := r.generators[key]
	return g, ok
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []domain.EntityKey {
	keys := make([]domain.EntityKey, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Plan sorts the registered generators topologically so every parent comes
// before its children. A dependency on an unregistered entity or a cycle is
// an error.
func (r *Registry) Plan() ([]domain.EntityKey, error) {
	index := make(map[domain.EntityKey]int, len(r.keys))
	for i, key := range r.keys {
		index[key] = i
	}

	deps := make([][]int, len(r.keys))
	for i, key := range r.keys {
		for _, dep := range r.generators[key].DependsOn() {
			j, ok := index[dep]
			if !ok {
				return nil, fmt.Errorf("Registry.Plan - %s depends on %s: %w", key, dep, domain.ErrMissingParent)
			}
			deps[i] = append(deps[i], j)
		}
	}

	order, err := topoSort(len(r.keys), func(i int) []int { return deps[i] })
	if err != nil {
		return nil, fmt.Errorf("Registry.Plan - failed to sort generators: %w", err)
	}

	plan := make([]domain.EntityKey, len(order))
	for i, idx := range order {
		plan[i] = r.keys[idx]
	}
	return plan, nil
}
