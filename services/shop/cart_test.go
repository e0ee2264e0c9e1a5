package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopcheckout/lib/mytime"
)

func newTestCart(ctrl *gomock.Controller) *Cart {
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(today).AnyTimes()
	return NewCart(nower)
}

func TestCartAdd(t *testing.T) {

	t.Run("Add within stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cart := newTestCart(ctrl)
		p := NewProduct("Scratch card", amount("5"), 3)

		for q := 1; q <= 3; q++ {
			err := cart.Add(p, q)
			assert.NoError(t, err)
		}

		assert.False(t, cart.IsEmpty())
		assert.Len(t, cart.Items(), 3)
		assert.Equal(t, 3, p.Stock)
	})

	t.Run("Add beyond stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cart := newTestCart(ctrl)
		p := NewProduct("Scratch card", amount("5"), 3)

		err := cart.Add(p, 4)

		var outOfStock *OutOfStockError
		assert.ErrorAs(t, err, &outOfStock)
		assert.True(t, cart.IsEmpty())
		assert.Equal(t, 3, p.Stock)
	})

	t.Run("Non positive quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cart := newTestCart(ctrl)
		products := []*Product{
			NewProduct("Scratch card", amount("5"), 3),
			NewProduct("Sold out", amount("5"), 0),
			NewExpiringProduct("Old milk", amount("1"), 3, yesterday),
		}

		for _, p := range products {
			for _, q := range []int{0, -1, -100} {
				err := cart.Add(p, q)
				var invalid *InvalidQuantityError
				assert.ErrorAs(t, err, &invalid)
			}
		}
		assert.True(t, cart.IsEmpty())
	})

	t.Run("Expired product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cart := newTestCart(ctrl)
		p := NewExpiringShippableProduct("Cheese", amount("12"), 100, yesterday, 0.5)

		err := cart.Add(p, 1)

		var expired *ExpiredProductError
		assert.ErrorAs(t, err, &expired)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("Product expiring today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cart := newTestCart(ctrl)
		p := NewExpiringProduct("Biscuits", amount("3"), 5, today)

		err := cart.Add(p, 1)
		assert.NoError(t, err)
	})

	t.Run("Line total fixed when adding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cart := newTestCart(ctrl)
		p := NewProduct("Scratch card", amount("2.50"), 10)

		err := cart.Add(p, 3)
		assert.NoError(t, err)
		p.UnitPrice = amount("100")

		assert.Equal(t, "7.50", cart.Items()[0].LineTotal.StringFixed(2))
		assert.Equal(t, "7.50", cart.Total().StringFixed(2))
	})
}

func TestCartTotalsAndShippables(t *testing.T) {
	ctrl := gomock.NewController(t)
	cart := newTestCart(ctrl)

	cheese := NewExpiringShippableProduct("Cheese", amount("12.50"), 10, tomorrow, 0.4)
	tv := NewShippableProduct("TV", amount("400"), 5, 8)
	card := NewProduct("Scratch card", amount("5"), 10)

	assert.NoError(t, cart.Add(cheese, 2))
	assert.NoError(t, cart.Add(card, 1))
	assert.NoError(t, cart.Add(tv, 1))

	assert.Equal(t, "430.00", cart.Total().StringFixed(2))
	assert.ElementsMatch(t, []*Product{cheese, cheese, tv}, cart.Shippables())

	items := cart.Items()
	assert.Equal(t, cheese, items[0].Product)
	assert.Equal(t, card, items[1].Product)
	assert.Equal(t, tv, items[2].Product)
}

func TestEmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	cart := newTestCart(ctrl)

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "0.00", cart.Total().StringFixed(2))
	assert.Empty(t, cart.Shippables())
}
