package customer

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/atelier-moda/storefront/internal/catalog"
	"github.com/atelier-moda/storefront/internal/persist"
)

// Favorites is the per-session wishlist, deduplicated by product id.
type Favorites struct {
	mu       sync.Mutex
	products []catalog.Product

	store persist.Store
	key   string
	log   logrus.FieldLogger
}

func NewFavorites(store persist.Store, key string, log logrus.FieldLogger) *Favorites {
	f := &Favorites{store: store, key: key, log: log}
	if _, err := store.Load(key, &f.products); err != nil {
		log.WithError(err).Warn("customer: failed to restore persisted favorites")
		f.products = nil
	}
	return f
}

// Add appends the product unless it is already a favorite.
func (f *Favorites) Add(p catalog.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.products {
		if existing.ID == p.ID {
			return
		}
	}
	f.products = append(f.products, p)
	f.flush()
}

// Remove is a no-op for products not in the list.
func (f *Favorites) Remove(productID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.products[:0]
	for _, p := range f.products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	f.products = kept
	f.flush()
}

func (f *Favorites) IsFavorite(productID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (f *Favorites) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = nil
	f.flush()
}

func (f *Favorites) List() []catalog.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]catalog.Product, len(f.products))
	copy(cp, f.products)
	return cp
}

func (f *Favorites) flush() {
	if err := f.store.Save(f.key, f.products); err != nil {
		f.log.WithError(err).Warn("customer: failed to persist favorites")
	}
}
