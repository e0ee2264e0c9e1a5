package shop

import "github.com/shopspring/decimal"

type Customer struct {
	Name    string
	Balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{
		Name:    name,
		Balance: balance,
	}
}

func (c *Customer) Charge(amount decimal.Decimal) error {
	if c.Balance.LessThan(amount) {
		return &InsufficientBalanceError{Needed: amount, Available: c.Balance}
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}

// Refund returns a previously charged amount.
func (c *Customer) Refund(amount decimal.Decimal) {
	c.Balance = c.Balance.Add(amount)
}
