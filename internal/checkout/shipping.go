package checkout

import "github.com/shopspring/decimal"

// ShippingCost is free at or above the threshold, the flat fee below it.
// The amount passed in must be the discount-adjusted subtotal; the discount
// may push an order below the free-shipping threshold.
func ShippingCost(amount, threshold, fee decimal.Decimal) decimal.Decimal {
	if amount.GreaterThanOrEqual(threshold) {
		return decimal.Zero
	}
	return fee
}
