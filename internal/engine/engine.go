package engine

import (
	"context"
	"fmt"
	"rebalancer/types"
)

// Engine ties a portfolio store, a price source and the rebalancer into one
// batch run: load everything, fetch prices once, fan out.
type Engine struct {
	store      portfolioStore
	prices     priceSource
	rebalancer *Rebalancer
}

func NewEngine(store portfolioStore, prices priceSource, rebalancer *Rebalancer) *Engine {
	return &Engine{
		store:      store,
		prices:     prices,
		rebalancer: rebalancer,
	}
}

// Run computes a trade plan for every stored portfolio. Collaborators are
// only consulted before the concurrent phase; the price table is read-only
// once the fan-out starts.
func (e *Engine) Run(ctx context.Context) ([]types.RebalancingResult, error) {
	portfolios, err := e.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load portfolios: %w", err)
	}
	prices, err := e.prices.CurrentPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}
	return e.rebalancer.ProcessBatch(ctx, portfolios, prices), nil
}
