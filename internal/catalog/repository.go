package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Repository is the read surface of the product catalog.
type Repository interface {
	FindAll(ctx context.Context, f Filter) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
}

// InMemoryRepository serves the seeded product list. Products are copied out
// on every read so callers can never mutate the catalog.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []Product
}

func NewInMemoryRepository(products []Product) *InMemoryRepository {
	cp := make([]Product, len(products))
	copy(cp, products)
	return &InMemoryRepository{products: cp}
}

// FindAll applies the filter and orders the result featured-first, then by
// createdAt descending.
func (r *InMemoryRepository) FindAll(_ context.Context, f Filter) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Featured != result[j].Featured {
			return result[i].Featured
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// FindByID returns (nil, nil) when no product has the id.
func (r *InMemoryRepository) FindByID(_ context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

// Search matches the query as a case-insensitive substring of the product
// name, description or category.
func (r *InMemoryRepository) Search(_ context.Context, query string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	result := make([]Product, 0)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			result = append(result, p)
		}
	}
	return result, nil
}
