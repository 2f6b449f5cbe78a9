package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestShippingCost(t *testing.T) {
	threshold := decimal.NewFromInt(2000)
	fee := decimal.NewFromInt(50)

	tests := []struct {
		name   string
		amount int64
		want   int64
	}{
		{"below threshold", 1000, 50},
		{"exactly at threshold is free", 2000, 0},
		{"above threshold", 2500, 0},
		{"just below threshold", 1999, 50},
		{"zero amount", 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShippingCost(decimal.NewFromInt(tt.amount), threshold, fee)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Fatalf("ShippingCost(%d) = %s, want %d", tt.amount, got, tt.want)
			}
		})
	}
}
