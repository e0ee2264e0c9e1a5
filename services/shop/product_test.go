package shop

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	today     = time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)
	yesterday = today.AddDate(0, 0, -1)
	tomorrow  = today.AddDate(0, 0, 1)
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProductCapabilities(t *testing.T) {
	testCases := []struct {
		name       string
		product    *Product
		isExpiring bool
		shippable  bool
	}{
		{
			name:    "Plain product",
			product: NewProduct("Scratch card", amount("5"), 10),
		},
		{
			name:       "Expiring product",
			product:    NewExpiringProduct("Biscuits", amount("3"), 10, tomorrow),
			isExpiring: true,
		},
		{
			name:      "Shippable product",
			product:   NewShippableProduct("TV", amount("400"), 10, 8.5),
			shippable: true,
		},
		{
			name:       "Expiring shippable product",
			product:    NewExpiringShippableProduct("Cheese", amount("12.50"), 10, tomorrow, 0.4),
			isExpiring: true,
			shippable:  true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isExpiring, tc.product.IsExpiring())
			assert.Equal(t, tc.shippable, tc.product.IsShippable())
		})
	}
}

func TestProductStock(t *testing.T) {
	t.Run("Availability", func(t *testing.T) {
		p := NewProduct("Scratch card", amount("5"), 3)
		assert.True(t, p.IsAvailable(0))
		assert.True(t, p.IsAvailable(3))
		assert.False(t, p.IsAvailable(4))
	})

	t.Run("Deduct stock", func(t *testing.T) {
		p := NewProduct("Scratch card", amount("5"), 3)
		err := p.DeductStock(2)
		assert.NoError(t, err)
		assert.Equal(t, 1, p.Stock)
	})

	t.Run("Deduct more than in stock", func(t *testing.T) {
		p := NewProduct("Scratch card", amount("5"), 3)
		err := p.DeductStock(4)
		var outOfStock *OutOfStockError
		assert.ErrorAs(t, err, &outOfStock)
		assert.Equal(t, "only 3 of Scratch card available, requested 4", err.Error())
		assert.Equal(t, 3, p.Stock)
	})
}

func TestProductExpiration(t *testing.T) {
	testCases := []struct {
		name       string
		expiryDate time.Time
		expired    bool
	}{
		{name: "Expires tomorrow", expiryDate: tomorrow, expired: false},
		{name: "Expires today", expiryDate: today.Add(-10 * time.Hour), expired: false},
		{name: "Expired yesterday", expiryDate: yesterday, expired: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewExpiringProduct("Biscuits", amount("3"), 10, tc.expiryDate)
			assert.Equal(t, tc.expired, p.Expiry.IsExpired(today))

			err := p.CheckExpiration(today)
			if tc.expired {
				var expired *ExpiredProductError
				assert.ErrorAs(t, err, &expired)
				assert.Equal(t, "Biscuits", expired.Product)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("Non expiring product never expires", func(t *testing.T) {
		p := NewProduct("Scratch card", amount("5"), 3)
		assert.NoError(t, p.CheckExpiration(today.AddDate(100, 0, 0)))
	})
}
