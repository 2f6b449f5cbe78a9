package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. The storefront only ever creates pending orders; the rest
// belong to fulfillment.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// GuestUserID is the sentinel for unauthenticated checkouts.
const GuestUserID = "guest"

// LineItem is an immutable snapshot of a cart line at checkout time. It
// deliberately copies name, image and unit price so later catalog changes
// never rewrite order history.
type LineItem struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage"`
	Size         string          `json:"size"`
	Color        string          `json:"color"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

// CustomerInfo is the contact and delivery snapshot captured at checkout.
type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Order is materialized exactly once per successful checkout and never
// mutated afterwards. DiscountAmount is persisted explicitly so the applied
// discount stays recoverable from history; TotalAmount is the payable
// total: subtotal - discount + shipping.
type Order struct {
	ID             string          `json:"id"`
	OrderNumber    string          `json:"orderNumber"`
	UserID         string          `json:"userId"`
	Items          []LineItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	ShippingCost   decimal.Decimal `json:"shippingCost"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	CustomerInfo   CustomerInfo    `json:"customerInfo"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
}
