// Package coupon implements the first-order promotional discount.
package coupon

import (
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/atelier-moda/storefront/internal/persist"
)

var (
	// ErrInvalidCode reports a submitted code that does not match the
	// promotion, compared case-insensitively. The message is user-facing.
	ErrInvalidCode = errors.New(`Geçersiz kod. İlk siparişinizde "İLK10" kodunu kullanarak %10 indirim kazanabilirsiniz.`)
	// ErrAlreadyOrdered reports a valid code submitted by a user with prior
	// orders. The promotion only covers a first order.
	ErrAlreadyOrdered = errors.New("Bu indirim yalnızca ilk siparişinizde geçerlidir.")
)

// The code contains a dotted capital İ, so comparisons must uppercase with
// Turkish casing rules. ASCII or simple Unicode folding would not match a
// lowercase "ilk10" against "İLK10".
var upper = cases.Upper(language.Turkish)

// State is the persisted shape of the discount.
type State struct {
	Code      string `json:"code"`
	Percent   int64  `json:"discount"`
	IsApplied bool   `json:"isApplied"`
}

// Engine is a two-state machine: NotApplied and Applied. It never reads the
// cart or the order history itself; eligibility is passed in by the caller.
type Engine struct {
	mu    sync.Mutex
	state State

	store persist.Store
	key   string
	log   logrus.FieldLogger
}

// New restores persisted state if present; the configured code and percent
// always win over whatever was persisted.
func New(code string, percent int64, store persist.Store, key string, log logrus.FieldLogger) *Engine {
	e := &Engine{
		state: State{Code: code, Percent: percent},
		store: store,
		key:   key,
		log:   log,
	}
	var saved State
	if ok, err := store.Load(key, &saved); err != nil {
		log.WithError(err).Warn("coupon: failed to restore persisted state")
	} else if ok {
		e.state.IsApplied = saved.IsApplied
	}
	return e
}

// Apply transitions to Applied when the code matches and the user has no
// prior orders. On failure the state is unchanged.
func (e *Engine) Apply(code string, hasPriorOrders bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if upper.String(strings.TrimSpace(code)) != upper.String(e.state.Code) {
		return ErrInvalidCode
	}
	if hasPriorOrders {
		return ErrAlreadyOrdered
	}
	e.state.IsApplied = true
	e.flush()
	return nil
}

// Remove transitions back to NotApplied. It has no precondition and is called
// both by user action and unconditionally after checkout.
func (e *Engine) Remove() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.IsApplied = false
	e.flush()
}

// Discount returns the discount for the given pre-discount subtotal: zero
// when not applied, otherwise subtotal * percent / 100.
func (e *Engine) Discount(subtotal decimal.Decimal) decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.IsApplied {
		return decimal.Zero
	}
	return subtotal.Mul(decimal.NewFromInt(e.state.Percent)).Div(decimal.NewFromInt(100))
}

// Current returns a copy of the discount state.
func (e *Engine) Current() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) flush() {
	if err := e.store.Save(e.key, e.state); err != nil {
		e.log.WithError(err).Warn("coupon: failed to persist state")
	}
}
