// Package customer holds per-session user state: profile, address book and
// favorites.
package customer

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/atelier-moda/storefront/internal/orders"
	"github.com/atelier-moda/storefront/internal/persist"
)

// ErrAddressNotFound reports an address id with no entry in the book.
var ErrAddressNotFound = errors.New("address not found")

// Address is one delivery address. At most one address is the default.
type Address struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postalCode"`
	IsDefault  bool   `json:"isDefault"`
}

// User is the session profile. An empty/zero user with IsAuthenticated false
// is the guest state.
type User struct {
	ID              string    `json:"id,omitempty"`
	Name            string    `json:"name,omitempty"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Addresses       []Address `json:"addresses,omitempty"`
	IsAuthenticated bool      `json:"isAuthenticated"`
}

// Profile owns the user state for one session.
type Profile struct {
	mu   sync.Mutex
	user User

	store persist.Store
	key   string
	log   logrus.FieldLogger
}

func NewProfile(store persist.Store, key string, log logrus.FieldLogger) *Profile {
	p := &Profile{store: store, key: key, log: log}
	if _, err := store.Load(key, &p.user); err != nil {
		log.WithError(err).Warn("customer: failed to restore persisted profile")
		p.user = User{}
	}
	return p
}

// Login replaces the profile with the given user, marked authenticated.
func (p *Profile) Login(u User) {
	p.mu.Lock()
	defer p.mu.Unlock()
	u.IsAuthenticated = true
	p.user = u
	p.flush()
}

// Logout resets to the guest state.
func (p *Profile) Logout() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.user = User{}
	p.flush()
}

// Current returns a copy of the user, addresses included.
func (p *Profile) Current() User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

// AddAddress assigns an id and appends the address. The first address, or an
// address flagged default, becomes the single default.
func (p *Profile) AddAddress(a Address) Address {
	p.mu.Lock()
	defer p.mu.Unlock()

	a.ID = uuid.NewString()
	if len(p.user.Addresses) == 0 {
		a.IsDefault = true
	}
	if a.IsDefault {
		p.clearDefault()
	}
	p.user.Addresses = append(p.user.Addresses, a)
	p.flush()
	return a
}

// UpdateAddress replaces the address with the same id.
func (p *Profile) UpdateAddress(a Address) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.user.Addresses {
		if p.user.Addresses[i].ID == a.ID {
			if a.IsDefault {
				p.clearDefault()
			}
			p.user.Addresses[i] = a
			p.flush()
			return nil
		}
	}
	return ErrAddressNotFound
}

// RemoveAddress drops the address. If the default was removed, the first
// remaining address inherits the flag.
func (p *Profile) RemoveAddress(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	removedDefault := false
	kept := p.user.Addresses[:0]
	found := false
	for _, a := range p.user.Addresses {
		if a.ID == id {
			found = true
			removedDefault = a.IsDefault
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return ErrAddressNotFound
	}
	p.user.Addresses = kept
	if removedDefault && len(p.user.Addresses) > 0 {
		p.user.Addresses[0].IsDefault = true
	}
	p.flush()
	return nil
}

// SetDefaultAddress moves the default flag to the given address.
func (p *Profile) SetDefaultAddress(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	found := false
	for i := range p.user.Addresses {
		if p.user.Addresses[i].ID == id {
			found = true
		}
	}
	if !found {
		return ErrAddressNotFound
	}
	for i := range p.user.Addresses {
		p.user.Addresses[i].IsDefault = p.user.Addresses[i].ID == id
	}
	p.flush()
	return nil
}

// UserID returns the profile id, or the guest sentinel when unauthenticated.
func (p *Profile) UserID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.user.IsAuthenticated && p.user.ID != "" {
		return p.user.ID
	}
	return orders.GuestUserID
}

func (p *Profile) clearDefault() {
	for i := range p.user.Addresses {
		p.user.Addresses[i].IsDefault = false
	}
}

func (p *Profile) snapshot() User {
	u := p.user
	u.Addresses = append([]Address(nil), p.user.Addresses...)
	return u
}

func (p *Profile) flush() {
	if err := p.store.Save(p.key, p.user); err != nil {
		p.log.WithError(err).Warn("customer: failed to persist profile")
	}
}
