// Package checkout composes the cart, the coupon engine and the shipping
// rule into a payable total, and materializes orders.
package checkout

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelier-moda/storefront/internal/cart"
	"github.com/atelier-moda/storefront/internal/coupon"
	"github.com/atelier-moda/storefront/internal/orders"
	"github.com/atelier-moda/storefront/internal/validation"
)

// ErrEmptyCart rejects a checkout against an empty cart.
var ErrEmptyCart = errors.New("sepetiniz boş")

// Pricing carries the fixed shipping configuration.
type Pricing struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
}

// Quote is the priced breakdown of the current cart. Discount is applied
// before shipping is evaluated.
type Quote struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	ShippingCost   decimal.Decimal `json:"shippingCost"`
	Total          decimal.Decimal `json:"total"`
}

// Service runs the pricing pipeline for one session.
type Service struct {
	mu sync.Mutex

	cart    *cart.Cart
	coupon  *coupon.Engine
	history *orders.History
	pricing Pricing

	validator *validation.CheckoutValidator
	nowFunc   func() time.Time
	idFunc    func() string
}

func NewService(c *cart.Cart, e *coupon.Engine, h *orders.History, p Pricing) *Service {
	return &Service{
		cart:      c,
		coupon:    e,
		history:   h,
		pricing:   p,
		validator: validation.NewCheckoutValidator(),
		nowFunc:   time.Now,
		idFunc:    uuid.NewString,
	}
}

// Quote prices the current cart: subtotal, discount, shipping off the
// discounted subtotal, and the payable total.
func (s *Service) Quote() Quote {
	return s.quoteFor(s.cart.Items())
}

// quoteFor prices a fixed set of lines. Submit uses it so the stored totals
// always derive from the snapshot the order carries, never from a cart that
// may have been mutated mid-submission.
func (s *Service) quoteFor(items []cart.LineItem) Quote {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	discount := s.coupon.Discount(subtotal)
	afterDiscount := subtotal.Sub(discount)
	shipping := ShippingCost(afterDiscount, s.pricing.FreeShippingThreshold, s.pricing.FlatShippingFee)
	return Quote{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		ShippingCost:   shipping,
		Total:          afterDiscount.Add(shipping),
	}
}

// Submit validates the form, prices the cart and materializes the order.
// Validation failures abort before any state mutation. On success the order
// append, the cart clear and the coupon reset happen as one transition under
// the service lock, so no observer ever sees a cleared cart with a still
// applied coupon.
func (s *Service) Submit(req validation.CheckoutRequest, userID string) (*orders.Order, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.nowFunc()
	quote := s.quoteFor(items)
	if userID == "" {
		userID = orders.GuestUserID
	}

	snapshot := make([]orders.LineItem, 0, len(items))
	for _, it := range items {
		snapshot = append(snapshot, orders.LineItem{
			ProductID:    it.Product.ID,
			ProductName:  it.Product.Name,
			ProductImage: it.Product.PrimaryImage(),
			Size:         it.SelectedSize,
			Color:        it.SelectedColor,
			Quantity:     it.Quantity,
			Price:        it.Product.Price,
		})
	}

	order := orders.Order{
		ID:             s.idFunc(),
		OrderNumber:    fmt.Sprintf("ORD-%d", now.UnixMilli()),
		UserID:         userID,
		Items:          snapshot,
		Subtotal:       quote.Subtotal,
		DiscountAmount: quote.DiscountAmount,
		ShippingCost:   quote.ShippingCost,
		TotalAmount:    quote.Total,
		CustomerInfo: orders.CustomerInfo{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.PhoneCountry + " " + req.Phone,
			Address:   req.Address,
		},
		Status:    orders.StatusPending,
		CreatedAt: now,
	}

	// finalize as one transition: append, clear cart, reset coupon
	s.history.Add(order)
	s.cart.Clear()
	s.coupon.Remove()

	return &order, nil
}
