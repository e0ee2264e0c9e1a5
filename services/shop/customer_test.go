package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomer(t *testing.T) {
	t.Run("Charge within balance", func(t *testing.T) {
		customer := NewCustomer("Eva", amount("100"))
		err := customer.Charge(amount("100"))
		assert.NoError(t, err)
		assert.Equal(t, "0.00", customer.Balance.StringFixed(2))
	})

	t.Run("Charge exceeding balance", func(t *testing.T) {
		customer := NewCustomer("Eva", amount("100"))
		err := customer.Charge(amount("100.01"))
		var insufficient *InsufficientBalanceError
		assert.ErrorAs(t, err, &insufficient)
		assert.Equal(t, "insufficient balance: need 100.01, have 100.00", err.Error())
		assert.Equal(t, "100.00", customer.Balance.StringFixed(2))
	})

	t.Run("Refund", func(t *testing.T) {
		customer := NewCustomer("Eva", amount("10"))
		customer.Refund(amount("2.50"))
		assert.Equal(t, "12.50", customer.Balance.StringFixed(2))
	})
}
