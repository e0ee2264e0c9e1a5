package shop

import "github.com/shopspring/decimal"

type ShippingConfig struct {
	FlatFee   decimal.Decimal
	RatePerKg decimal.Decimal
}

func DefaultShippingConfig() ShippingConfig {
	return ShippingConfig{
		FlatFee:   decimal.NewFromInt(10),
		RatePerKg: decimal.NewFromInt(20),
	}
}

type ShippingService struct {
	config ShippingConfig
}

func NewShippingService(config ShippingConfig) *ShippingService {
	return &ShippingService{
		config: config,
	}
}

// Calculate expects one entry per shipped unit, as produced by Cart.Shippables.
func (s *ShippingService) Calculate(units []*Product) decimal.Decimal {
	if len(units) == 0 {
		return decimal.Zero
	}

	totalWeight := decimal.Zero
	for _, u := range units {
		if u.IsShippable() {
			totalWeight = totalWeight.Add(decimal.NewFromFloat(u.Shipping.Weight))
		}
	}

	return s.config.FlatFee.Add(s.config.RatePerKg.Mul(totalWeight))
}
