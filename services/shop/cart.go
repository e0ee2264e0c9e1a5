package shop

import (
	"github.com/shopspring/decimal"

	"github.com/MarcGrol/shopcheckout/lib/mytime"
)

type CartItem struct {
	Product   *Product
	Quantity  int
	LineTotal decimal.Decimal
}

// Cart collects line items. Stock is checked when adding but only deducted at checkout.
type Cart struct {
	nower mytime.Nower
	items []CartItem
}

func NewCart(nower mytime.Nower) *Cart {
	return &Cart{
		nower: nower,
		items: []CartItem{},
	}
}

func (c *Cart) Add(product *Product, quantity int) error {
	if quantity <= 0 {
		return &InvalidQuantityError{Quantity: quantity}
	}

	if product.IsExpiring() {
		err := product.CheckExpiration(c.nower.Now())
		if err != nil {
			return err
		}
	}

	if !product.IsAvailable(quantity) {
		return &OutOfStockError{Product: product.Name, Requested: quantity, Available: product.Stock}
	}

	c.items = append(c.items, CartItem{
		Product:   product,
		Quantity:  quantity,
		LineTotal: product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	})

	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns the line items in the order they were added.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal)
	}
	return total
}

// Shippables returns every shippable product once per unit ordered.
func (c *Cart) Shippables() []*Product {
	units := []*Product{}
	for _, item := range c.items {
		if !item.Product.IsShippable() {
			continue
		}
		for i := 0; i < item.Quantity; i++ {
			units = append(units, item.Product)
		}
	}
	return units
}
