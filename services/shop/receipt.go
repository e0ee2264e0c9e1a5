package shop

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Receipt struct {
	UID              string
	CreatedAt        time.Time
	Subtotal         decimal.Decimal
	ShippingCost     decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
}

// Confirmation renders the text shown to the customer after a successful checkout.
func (r Receipt) Confirmation() string {
	return fmt.Sprintf("Checkout successful\nSubtotal: %s, Shipping: %s, Total: %s\nRemaining balance: %s\n",
		r.Subtotal.StringFixed(2), r.ShippingCost.StringFixed(2), r.Total.StringFixed(2), r.RemainingBalance.StringFixed(2))
}
