package main

import (
	"context"

	"github.com/dexsdk/sdkcore"
)

// Service prices currency pairs and converts amounts at a price.
type Service interface {
	Price(ctx context.Context, base, quote sdkcore.CurrencyAmount) (sdkcore.Price, error)
	Quote(ctx context.Context, p sdkcore.Price, amount sdkcore.CurrencyAmount) (sdkcore.CurrencyAmount, error)
}

type service struct{}

// NewService returns a Service backed by exact rational arithmetic.
func NewService() Service {
	return service{}
}

func (service) Price(_ context.Context, base, quote sdkcore.CurrencyAmount) (sdkcore.Price, error) {
	return sdkcore.NewPriceFromAmounts(base, quote)
}

func (service) Quote(_ context.Context, p sdkcore.Price, amount sdkcore.CurrencyAmount) (sdkcore.CurrencyAmount, error) {
	return p.Quote(amount)
}
