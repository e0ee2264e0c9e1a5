package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/MarcGrol/shopcheckout/lib/mylog"
)

// Checkout validates the cart again, charges the customer and deducts stock.
// Any failure aborts the whole checkout. Payment always precedes fulfillment, so a
// rejected charge leaves all stock untouched.
func (s *CheckoutService) Checkout(c context.Context, customer *Customer, cart *Cart) (Receipt, error) {
	s.logger.Log(c, customer.Name, mylog.SeverityInfo, "Start checkout for customer %s", customer.Name)

	if cart.IsEmpty() {
		err := &CartEmptyError{}
		s.logger.Log(c, customer.Name, mylog.SeverityWarn, "Checkout refused: %s", err)
		return Receipt{}, err
	}

	items := cart.Items()
	now := s.nower.Now()

	// Stock is not reserved by the cart: time passed and stock may have changed since adding.
	err := revalidate(items, now)
	if err != nil {
		s.logger.Log(c, customer.Name, mylog.SeverityWarn, "Checkout refused: %s", err)
		return Receipt{}, err
	}

	shippingCost := s.shipping.Calculate(cart.Shippables())
	subtotal := cart.Total()
	total := subtotal.Add(shippingCost)

	err = customer.Charge(total)
	if err != nil {
		s.logger.Log(c, customer.Name, mylog.SeverityWarn, "Payment refused: %s", err)
		return Receipt{}, err
	}

	err = fulfill(items)
	if err != nil {
		customer.Refund(total)
		s.logger.Log(c, customer.Name, mylog.SeverityError, "Fulfillment failed, refunded %s: %s", total.StringFixed(2), err)
		return Receipt{}, err
	}

	receipt := Receipt{
		UID:              s.uuider.Create(),
		CreatedAt:        now,
		Subtotal:         subtotal,
		ShippingCost:     shippingCost,
		Total:            total,
		RemainingBalance: customer.Balance,
	}

	s.logger.Log(c, receipt.UID, mylog.SeverityInfo, "Checkout completed for customer %s: total %s", customer.Name, total.StringFixed(2))

	_, err = fmt.Fprint(s.out, receipt.Confirmation())
	if err != nil {
		s.logger.Log(c, receipt.UID, mylog.SeverityWarn, "Error writing confirmation: %s", err)
	}

	return receipt, nil
}

func revalidate(items []CartItem, now time.Time) error {
	for _, item := range items {
		if item.Product.IsExpiring() {
			err := item.Product.CheckExpiration(now)
			if err != nil {
				return err
			}
		}
		if !item.Product.IsAvailable(item.Quantity) {
			return &OutOfStockError{Product: item.Product.Name, Requested: item.Quantity, Available: item.Product.Stock}
		}
	}
	return nil
}

// fulfill deducts stock in cart order. On failure the lines already deducted are restocked.
func fulfill(items []CartItem) error {
	for i, item := range items {
		err := item.Product.DeductStock(item.Quantity)
		if err != nil {
			for _, done := range items[:i] {
				done.Product.restock(done.Quantity)
			}
			return err
		}
	}
	return nil
}
