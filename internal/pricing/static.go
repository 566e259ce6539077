package pricing

import (
	"context"
	"rebalancer/types"
)

// Static serves a fixed price table, standing in for a live market data
// feed. A production deployment swaps in an implementation backed by a real
// quote source behind the same contract; repository.Database provides one.
type Static struct {
	prices types.PriceTable
}

func NewStatic(prices types.PriceTable) *Static {
	table := make(types.PriceTable, len(prices))
	for class, price := range prices {
		table[class] = price
	}
	return &Static{prices: table}
}

// CurrentPrices returns a copy of the table so callers can never mutate the
// source mid-batch.
func (s *Static) CurrentPrices(_ context.Context) (types.PriceTable, error) {
	table := make(types.PriceTable, len(s.prices))
	for class, price := range s.prices {
		table[class] = price
	}
	return table, nil
}
