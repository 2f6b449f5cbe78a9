package handlers

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/atelier-moda/storefront/internal/cart"
	"github.com/atelier-moda/storefront/internal/checkout"
	"github.com/atelier-moda/storefront/internal/coupon"
	"github.com/atelier-moda/storefront/internal/customer"
	"github.com/atelier-moda/storefront/internal/orders"
	"github.com/atelier-moda/storefront/internal/persist"
)

// Persistence keys. Session-scoped stores get a ":<session-id>" suffix; the
// order history is shared across sessions so the coupon eligibility check can
// see a user's orders regardless of device.
const (
	cartStorageKey      = "cart-storage"
	couponStorageKey    = "coupon-storage"
	favoritesStorageKey = "favorites-storage"
	userStorageKey      = "user-storage"
	orderStorageKey     = "order-storage"
)

const sessionHeader = "X-Session-Id"

// Session bundles the state containers owned by one browsing session.
type Session struct {
	ID        string
	Cart      *cart.Cart
	Coupon    *coupon.Engine
	Favorites *customer.Favorites
	Profile   *customer.Profile
	Checkout  *checkout.Service
}

// UserID resolves the identity orders are recorded under: the profile id
// when authenticated, otherwise a session-scoped guest id. The history store
// is shared, so guests on different sessions must never read each other's
// orders or consume each other's first-order discount.
func (s *Session) UserID() string {
	if id := s.Profile.UserID(); id != orders.GuestUserID {
		return id
	}
	return orders.GuestUserID + ":" + s.ID
}

// CouponConfig carries the promotion settings sessions are created with.
type CouponConfig struct {
	Code    string
	Percent int64
}

// SessionManager creates session state containers on demand and hands back
// the same container for the same session id.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	store   persist.Store
	history *orders.History
	pricing checkout.Pricing
	promo   CouponConfig
	log     logrus.FieldLogger
}

func NewSessionManager(store persist.Store, history *orders.History, pricing checkout.Pricing, promo CouponConfig, log logrus.FieldLogger) *SessionManager {
	return &SessionManager{
		sessions: map[string]*Session{},
		store:    store,
		history:  history,
		pricing:  pricing,
		promo:    promo,
		log:      log,
	}
}

// Get returns the session for id, creating it (and restoring its persisted
// state) on first sight.
func (m *SessionManager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}

	log := m.log.WithField("session", id)
	c := cart.New(m.store, cartStorageKey+":"+id, log)
	e := coupon.New(m.promo.Code, m.promo.Percent, m.store, couponStorageKey+":"+id, log)
	s := &Session{
		ID:        id,
		Cart:      c,
		Coupon:    e,
		Favorites: customer.NewFavorites(m.store, favoritesStorageKey+":"+id, log),
		Profile:   customer.NewProfile(m.store, userStorageKey+":"+id, log),
		Checkout:  checkout.NewService(c, e, m.history, m.pricing),
	}
	m.sessions[id] = s
	return s
}

const sessionContextKey = "storefront-session"

// SessionMiddleware resolves the caller's session from the X-Session-Id
// header, minting a fresh id when none is sent, and echoes the id back.
func SessionMiddleware(m *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(sessionHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(sessionHeader, id)
		c.Set(sessionContextKey, m.Get(id))
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *Session {
	return c.MustGet(sessionContextKey).(*Session)
}
