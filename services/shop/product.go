package shop

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expiry is the capability of a product that can no longer be sold after a given day.
type Expiry struct {
	Date time.Time
}

// IsExpired reports whether the calendar day of now lies strictly after the expiry day.
// A product is still valid on its expiry day itself.
func (e Expiry) IsExpired(now time.Time) bool {
	return dateOf(now).After(dateOf(e.Date))
}

func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Shipping is the capability of a product that is physically shipped.
type Shipping struct {
	Weight float64 // kg per unit
}

type Product struct {
	Name      string
	UnitPrice decimal.Decimal
	Stock     int
	Expiry    *Expiry   // nil when the product does not expire
	Shipping  *Shipping // nil when the product is not shipped
}

func NewProduct(name string, price decimal.Decimal, stock int) *Product {
	return &Product{
		Name:      name,
		UnitPrice: price,
		Stock:     stock,
	}
}

func NewExpiringProduct(name string, price decimal.Decimal, stock int, expiryDate time.Time) *Product {
	p := NewProduct(name, price, stock)
	p.Expiry = &Expiry{Date: expiryDate}
	return p
}

func NewShippableProduct(name string, price decimal.Decimal, stock int, weight float64) *Product {
	p := NewProduct(name, price, stock)
	p.Shipping = &Shipping{Weight: weight}
	return p
}

func NewExpiringShippableProduct(name string, price decimal.Decimal, stock int, expiryDate time.Time, weight float64) *Product {
	p := NewProduct(name, price, stock)
	p.Expiry = &Expiry{Date: expiryDate}
	p.Shipping = &Shipping{Weight: weight}
	return p
}

func (p *Product) IsExpiring() bool {
	return p.Expiry != nil
}

func (p *Product) IsShippable() bool {
	return p.Shipping != nil
}

func (p *Product) IsAvailable(requestedQty int) bool {
	return p.Stock >= requestedQty
}

func (p *Product) DeductStock(qty int) error {
	if !p.IsAvailable(qty) {
		return &OutOfStockError{Product: p.Name, Requested: qty, Available: p.Stock}
	}
	p.Stock -= qty
	return nil
}

func (p *Product) restock(qty int) {
	p.Stock += qty
}

// CheckExpiration fails when the product has the expiry capability and is expired at now.
func (p *Product) CheckExpiration(now time.Time) error {
	if p.IsExpiring() && p.Expiry.IsExpired(now) {
		return &ExpiredProductError{Product: p.Name, ExpiryDate: p.Expiry.Date}
	}
	return nil
}
