package shop

import "time"

type OrderRequest struct {
	Lines []OrderLine `form:"lines"`
}

type OrderLine struct {
	Product  string `form:"product"`
	Quantity int    `form:"quantity"`
}

type ProductResponse struct {
	Name       string
	UnitPrice  string
	Stock      int
	ExpiryDate string  `json:",omitempty"`
	Weight     float64 `json:",omitempty"`
}

func newProductResponse(p *Product) ProductResponse {
	resp := ProductResponse{
		Name:      p.Name,
		UnitPrice: p.UnitPrice.StringFixed(2),
		Stock:     p.Stock,
	}
	if p.IsExpiring() {
		resp.ExpiryDate = p.Expiry.Date.Format(time.DateOnly)
	}
	if p.IsShippable() {
		resp.Weight = p.Shipping.Weight
	}
	return resp
}

type CustomerResponse struct {
	Name    string
	Balance string
}

type ReceiptResponse struct {
	UID              string
	CreatedAt        time.Time
	Subtotal         string
	ShippingCost     string
	Total            string
	RemainingBalance string
}

func newReceiptResponse(r Receipt) ReceiptResponse {
	return ReceiptResponse{
		UID:              r.UID,
		CreatedAt:        r.CreatedAt,
		Subtotal:         r.Subtotal.StringFixed(2),
		ShippingCost:     r.ShippingCost.StringFixed(2),
		Total:            r.Total.StringFixed(2),
		RemainingBalance: r.RemainingBalance.StringFixed(2),
	}
}
