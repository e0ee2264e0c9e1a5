package shop

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type CartEmptyError struct{}

func (e *CartEmptyError) Error() string {
	return "cart is empty"
}

type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be positive, got %d", e.Quantity)
}

type InsufficientBalanceError struct {
	Needed    decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: need %s, have %s", e.Needed.StringFixed(2), e.Available.StringFixed(2))
}

type ExpiredProductError struct {
	Product    string
	ExpiryDate time.Time
}

func (e *ExpiredProductError) Error() string {
	return fmt.Sprintf("%s has expired on %s", e.Product, e.ExpiryDate.Format(time.DateOnly))
}

type OutOfStockError struct {
	Product   string
	Requested int
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("only %d of %s available, requested %d", e.Available, e.Product, e.Requested)
}
