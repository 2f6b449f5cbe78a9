// Package cart holds the line items a session accumulates while browsing.
package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/atelier-moda/storefront/internal/catalog"
	"github.com/atelier-moda/storefront/internal/persist"
)

var (
	// ErrInvalidQuantity rejects quantities below one. A decrement to zero
	// is a remove, not a stored quantity.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrLineNotFound reports an update against a line the cart does not hold.
	ErrLineNotFound = errors.New("cart line not found")
)

// LineItem is one (product, size, color) selection with a quantity. The
// product is embedded whole so cart totals survive catalog changes.
type LineItem struct {
	Product       catalog.Product `json:"product"`
	Quantity      int             `json:"quantity"`
	SelectedSize  string          `json:"selectedSize"`
	SelectedColor string          `json:"selectedColor"`
}

// Key identifies a cart line. Add, update and remove all use the full
// composite key, so one variant of a product never shadows another.
type Key struct {
	ProductID string
	Size      string
	Color     string
}

func (l LineItem) key() Key {
	return Key{ProductID: l.Product.ID, Size: l.SelectedSize, Color: l.SelectedColor}
}

// Cart is the aggregate for one session. Every mutation happens as a single
// state replace under the lock, then the whole state is persisted under the
// cart's storage key.
type Cart struct {
	mu    sync.Mutex
	items []LineItem

	store persist.Store
	key   string
	log   logrus.FieldLogger
}

// New restores the cart persisted under key, or starts empty.
func New(store persist.Store, key string, log logrus.FieldLogger) *Cart {
	c := &Cart{store: store, key: key, log: log}
	if _, err := store.Load(key, &c.items); err != nil {
		log.WithError(err).Warn("cart: failed to restore persisted state")
		c.items = nil
	}
	return c
}

// AddItem merges into an existing line with the same (product, size, color)
// or appends a new one.
func (c *Cart) AddItem(p catalog.Product, quantity int, size, color string) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	k := Key{ProductID: p.ID, Size: size, Color: color}
	for i := range c.items {
		if c.items[i].key() == k {
			c.items[i].Quantity += quantity
			c.flush()
			return nil
		}
	}
	c.items = append(c.items, LineItem{
		Product:       p,
		Quantity:      quantity,
		SelectedSize:  size,
		SelectedColor: color,
	})
	c.flush()
	return nil
}

// UpdateQuantity sets the quantity of one line.
func (c *Cart) UpdateQuantity(k Key, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].key() == k {
			c.items[i].Quantity = quantity
			c.flush()
			return nil
		}
	}
	return ErrLineNotFound
}

// RemoveItem drops one line. Removing a line the cart does not hold is a
// no-op.
func (c *Cart) RemoveItem(k Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, it := range c.items {
		if it.key() != k {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.flush()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.flush()
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]LineItem, len(c.items))
	copy(cp, c.items)
	return cp
}

// TotalPrice is the sum of price * quantity over all lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// TotalItems is the sum of quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// flush persists the current state. Callers hold the lock.
func (c *Cart) flush() {
	if err := c.store.Save(c.key, c.items); err != nil {
		c.log.WithError(err).Warn("cart: failed to persist state")
	}
}
