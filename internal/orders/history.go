package orders

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/atelier-moda/storefront/internal/persist"
)

// History is the append-only order store. Orders are kept most-recent-first
// and never mutated or deleted.
type History struct {
	mu     sync.Mutex
	orders []Order

	store persist.Store
	key   string
	log   logrus.FieldLogger
}

// NewHistory restores persisted orders if present.
func NewHistory(store persist.Store, key string, log logrus.FieldLogger) *History {
	h := &History{store: store, key: key, log: log}
	if _, err := store.Load(key, &h.orders); err != nil {
		log.WithError(err).Warn("orders: failed to restore persisted history")
		h.orders = nil
	}
	return h
}

// Add prepends the order.
func (h *History) Add(o Order) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.orders = append([]Order{o}, h.orders...)
	h.flush()
}

// ByUser returns the user's orders in store order (most recent first).
func (h *History) ByUser(userID string) []Order {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]Order, 0)
	for _, o := range h.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result
}

// HasOrders is the first-order discount eligibility signal.
func (h *History) HasOrders(userID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, o := range h.orders {
		if o.UserID == userID {
			return true
		}
	}
	return false
}

func (h *History) flush() {
	if err := h.store.Save(h.key, h.orders); err != nil {
		h.log.WithError(err).Warn("orders: failed to persist history")
	}
}
