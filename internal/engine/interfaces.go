package engine

import (
	"context"
	"rebalancer/types"
)

type portfolioStore interface {
	FindAll(ctx context.Context) ([]types.Portfolio, error)
}

type priceSource interface {
	CurrentPrices(ctx context.Context) (types.PriceTable, error)
}
